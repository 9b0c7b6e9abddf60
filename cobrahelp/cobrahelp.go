// Package cobrahelp snapshots github.com/spf13/cobra commands into jsonhelp states and adds a --json-help flag to
// a command tree.
package cobrahelp

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/golang/glog"
	"github.com/napalu/jsonhelp"
	"github.com/napalu/jsonhelp/types"
	"github.com/napalu/jsonhelp/util"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

const (
	// FlagName is the name of the persistent flag requesting JSON help
	FlagName = "json-help"
	// ChoicesAnnotation is the flag annotation listing the accepted values of a flag
	ChoicesAnnotation = "jsonhelp_choices"
)

// Snapshot returns the configuration tables of cmd: its local and inherited flags, its visible subcommands and its
// usage line. The root command name is used as the program name.
func Snapshot(cmd *cobra.Command) *jsonhelp.State {
	root := cmd.Root()
	state := jsonhelp.NewState(
		jsonhelp.WithProgramName(root.Name()),
		jsonhelp.WithCommandPath(strings.Fields(cmd.CommandPath())...),
	)

	seen := map[string]struct{}{}
	visit := func(f *pflag.Flag) {
		if _, ok := seen[f.Name]; ok {
			return
		}
		seen[f.Name] = struct{}{}
		addFlag(state, f)
	}
	cmd.LocalFlags().VisitAll(visit)
	cmd.InheritedFlags().VisitAll(visit)

	for _, sub := range cmd.Commands() {
		if sub.Hidden {
			continue
		}
		record := jsonhelp.CommandRecord{
			Command:     sub.Use,
			Description: sub.Short,
			Aliases:     sub.Aliases,
		}
		if sub.Deprecated != "" {
			record.Deprecated = jsonhelp.Deprecated(sub.Deprecated)
		}
		state.Commands = append(state.Commands, record)
	}

	usage := jsonhelp.ProgramPlaceholder + strings.TrimPrefix(cmd.UseLine(), root.Name())
	state.Usage = []jsonhelp.UsageRecord{{
		Command:     usage,
		Description: jsonhelp.EncodeDescription(cmd.Short, cmd.Long, ""),
	}}

	return state
}

// Usage renders the JSON help of cmd
func Usage(cmd *cobra.Command) (string, error) {
	return jsonhelp.Usage(Snapshot(cmd))
}

// AddFlag registers the persistent --json-help flag on root, unless it exists already
func AddFlag(root *cobra.Command) {
	if root.PersistentFlags().Lookup(FlagName) != nil {
		return
	}
	root.PersistentFlags().Bool(FlagName, false, "Print the help of the command as JSON")
}

// Requested reports whether args ask for JSON help. Arguments after "--" are operands.
func Requested(args []string) bool {
	for _, arg := range args {
		if arg == "--" {
			return false
		}
		name, value, hasValue := strings.Cut(arg, "=")
		if name != "--"+FlagName {
			continue
		}
		if !hasValue {
			return true
		}
		if b, err := strconv.ParseBool(value); err == nil && b {
			return true
		}
	}

	return false
}

// Execute runs root with args. When args request JSON help the addressed command is described on the output of
// root instead of being run, so that neither its argument validation nor its required flags apply.
func Execute(root *cobra.Command, args []string) error {
	AddFlag(root)

	if !Requested(args) {
		root.SetArgs(args)
		return root.Execute()
	}

	cmd, _, err := root.Find(args)
	if err != nil {
		return err
	}
	glog.V(1).Infof("rendering JSON help of %q", cmd.CommandPath())

	return Write(root.OutOrStdout(), cmd)
}

// Write renders the JSON help of cmd to w followed by a newline
func Write(w io.Writer, cmd *cobra.Command) error {
	out, err := Usage(cmd)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)

	return err
}

func addFlag(state *jsonhelp.State, f *pflag.Flag) {
	typeOf := optionType(f.Value.Type())
	jsonhelp.WithOption(typeOf, f.Name)(state)

	if f.Shorthand != "" {
		state.Aliases[f.Name] = []string{f.Shorthand}
	}
	// pflag hides deprecated flags, they are still described
	if f.Hidden && f.Deprecated == "" {
		state.Hidden = append(state.Hidden, f.Name)
	}
	if f.Usage != "" {
		state.Descriptions[f.Name] = f.Usage
	}
	if f.Deprecated != "" {
		state.Deprecated[f.Name] = jsonhelp.Deprecated(f.Deprecated)
	}
	if values, ok := f.Annotations[cobra.BashCompOneRequiredFlag]; ok && len(values) > 0 && values[0] == "true" {
		state.Required[f.Name] = true
	}

	if def, err := defaultValue(f.DefValue, typeOf); err != nil {
		glog.V(2).Infof("ignoring default %q of flag %q: %v", f.DefValue, f.Name, err)
	} else if def != nil {
		state.Defaults[f.Name] = def
	}

	if accepted := f.Annotations[ChoicesAnnotation]; len(accepted) > 0 {
		choices, err := util.TypedChoices(accepted, typeOf)
		if err != nil {
			glog.V(2).Infof("ignoring choices of flag %q: %v", f.Name, err)
			return
		}
		state.Choices[f.Name] = choices
	}
}

// optionType maps a pflag value type name to an option type
func optionType(valueType string) types.OptionType {
	switch {
	case valueType == "bool":
		return types.Boolean
	case strings.HasSuffix(valueType, "Slice"), strings.HasSuffix(valueType, "Array"):
		return types.Array
	case valueType == "count",
		strings.HasPrefix(valueType, "int"),
		strings.HasPrefix(valueType, "uint"),
		strings.HasPrefix(valueType, "float"):
		return types.Number
	default:
		return types.String
	}
}

func defaultValue(value string, typeOf types.OptionType) (any, error) {
	if typeOf == types.Array {
		value = strings.TrimSuffix(strings.TrimPrefix(value, "["), "]")
		if value == "" {
			return nil, nil
		}
		return util.TypedDefault(value, typeOf, false, func(r rune) bool { return r == ',' })
	}

	return util.TypedDefault(value, typeOf, false, nil)
}
