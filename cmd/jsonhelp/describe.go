package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/golang/glog"
	"github.com/napalu/jsonhelp"
	"github.com/napalu/jsonhelp/cobrahelp"
	"github.com/napalu/jsonhelp/encoding"
	"github.com/napalu/jsonhelp/errs"
	"github.com/napalu/jsonhelp/surface"
	"github.com/napalu/jsonhelp/util"
	"github.com/spf13/cobra"
)

// terminalChecker decides whether stdin is interactive
var terminalChecker = util.DefaultTerminalChecker

type describeOptions struct {
	args    string
	program string
	output  string
	format  string
}

func newDescribeCmd() *cobra.Command {
	opts := &describeOptions{}
	cmd := &cobra.Command{
		Use:   "describe <definition-file|->",
		Short: "Print the JSON help of a command of a definition",
		Long: "Describe loads a JSON or YAML command definition, resolves the active command from the arguments " +
			"given with --args and prints its help as JSON. A definition file named - is read from stdin.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return describe(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(
		&opts.args, "args", "",
		"Command line of the described program, used to select the command (e.g., \"generate component\")")
	cmd.Flags().StringVar(
		&opts.program, "program", "",
		"Program name, overriding the name found in the definition")
	cmd.Flags().StringVarP(
		&opts.output, "output", "o", "",
		"Write the help to a file instead of stdout")
	cmd.Flags().StringVar(
		&opts.format, "format", strings.TrimPrefix(encoding.DefaultExt(), "."),
		"Format of a definition read from stdin (json or yaml)")
	_ = cmd.Flags().SetAnnotation("format", cobrahelp.ChoicesAnnotation, []string{"json", "yaml"})

	return cmd
}

func describe(cmd *cobra.Command, path string, opts *describeOptions) error {
	def, err := readDefinition(cmd.InOrStdin(), path, opts.format)
	if err != nil {
		return err
	}
	glog.V(1).Infof("loaded definition %s", path)

	parser, err := surface.FromDefinition(def)
	if err != nil {
		return err
	}
	if opts.program != "" {
		parser.SetProgramName(opts.program)
	}

	commandPath, err := parser.ResolveString(opts.args)
	if err != nil {
		return err
	}
	glog.V(2).Infof("resolved command path %q", commandPath)

	state, err := parser.Snapshot(commandPath)
	if err != nil {
		return err
	}
	out, err := jsonhelp.Usage(state)
	if err != nil {
		return err
	}

	if opts.output == "" {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
		return err
	}
	if err := os.WriteFile(opts.output, []byte(out+"\n"), 0o644); err != nil {
		return errs.ErrWriteOutput.WithArgs(opts.output).Wrap(err)
	}
	glog.V(1).Infof("wrote %s", opts.output)

	return nil
}

// readDefinition decodes the definition at path, or from in when path is "-"
func readDefinition(in io.Reader, path, format string) (*surface.Definition, error) {
	def := &surface.Definition{}
	if path != "-" {
		if err := encoding.ReadFile(path, def); err != nil {
			return nil, err
		}
		return def, nil
	}

	m, ok := encoding.Marshalers["."+strings.ToLower(format)]
	if !ok {
		return nil, errs.ErrUnsupportedDefinition.WithArgs(format)
	}

	var data []byte
	var err error
	if f, isFile := in.(*os.File); isFile {
		data, err = util.ReadPiped(f, terminalChecker)
	} else {
		data, err = io.ReadAll(in)
	}
	if err != nil {
		return nil, errs.ErrReadDefinition.WithArgs("stdin").Wrap(err)
	}
	if err := m.Unmarshal(data, def); err != nil {
		return nil, errs.ErrDecodeDefinition.WithArgs("stdin").Wrap(err)
	}

	return def, nil
}
