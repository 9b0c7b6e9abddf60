package jsonhelp

import (
	"sort"
	"strings"

	"github.com/napalu/jsonhelp/types"
	"github.com/napalu/jsonhelp/util"
)

func (s *State) typeTable(t types.OptionType) []string {
	switch t {
	case types.Array:
		return s.Arrays
	case types.String:
		return s.Strings
	case types.Boolean:
		return s.Booleans
	case types.Number:
		return s.Numbers
	default:
		return nil
	}
}

func (s *State) allAliases() map[string]struct{} {
	lists := make([][]string, 0, len(s.Aliases))
	for _, aliases := range s.Aliases {
		lists = append(lists, aliases)
	}

	return util.Set(lists...)
}

func extractOptions(state *State) []OptionDescriptor {
	aliases := state.allAliases()
	hidden := util.Set(state.Hidden)
	visited := map[string]struct{}{}
	options := []OptionDescriptor{}

	for _, t := range types.ClassificationOrder {
		for _, name := range state.typeTable(t) {
			if _, ok := aliases[name]; ok {
				continue
			}
			if _, ok := hidden[name]; ok {
				continue
			}
			if _, ok := visited[name]; ok {
				continue
			}
			visited[name] = struct{}{}
			options = append(options, buildOption(state, name, t, hidden))
		}
	}

	sort.SliceStable(options, func(i, j int) bool {
		return options[i].Name < options[j].Name
	})

	return options
}

func buildOption(state *State, name string, t types.OptionType, hidden map[string]struct{}) OptionDescriptor {
	option := OptionDescriptor{
		Name:        name,
		Type:        t,
		Deprecated:  state.Deprecated[name],
		Default:     state.Defaults[name],
		Required:    state.Required[name],
		Enum:        state.Choices[name],
		Description: strings.TrimPrefix(state.Descriptions[name], DescriptionSentinel),
		Aliases: util.Unique(state.Aliases[name], func(alias string) bool {
			_, ok := hidden[alias]
			return ok
		}),
	}

	if idx := util.IndexOf(state.Positional, name); idx >= 0 {
		option.Positional = &idx
	}

	return option
}

func extractSubcommands(state *State) []SubcommandDescriptor {
	if len(state.Commands) == 0 {
		return nil
	}

	subcommands := make([]SubcommandDescriptor, 0, len(state.Commands))
	for _, record := range state.Commands {
		name, _, _ := strings.Cut(record.Command, " ")
		aliases := record.Aliases
		if aliases == nil {
			aliases = []string{}
		}
		subcommands = append(subcommands, SubcommandDescriptor{
			Name:        name,
			Command:     record.Command,
			Description: record.Description,
			Aliases:     aliases,
			Deprecated:  record.Deprecated,
		})
	}

	sort.SliceStable(subcommands, func(i, j int) bool {
		return subcommands[i].Name < subcommands[j].Name
	})

	return subcommands
}

func applyUsage(doc *HelpDocument, state *State) {
	if len(state.Usage) == 0 {
		return
	}

	usage := state.Usage[0]
	doc.Command = strings.Replace(usage.Command, ProgramPlaceholder, state.ProgramName, 1)
	if usage.Description == "" {
		return
	}

	switch d := ParseDescription(usage.Description).(type) {
	case StructuredDescription:
		doc.Description = d.Describe
		doc.LongDescription = d.LongDescription
		doc.LongDescriptionRelativePath = d.LongDescriptionRelativePath
	case PlainDescription:
		doc.Description = d.Text
	}
}
