package jsonhelp

import (
	"github.com/napalu/jsonhelp/types"
)

// DescriptionSentinel is the marker some parsers prepend to option descriptions. It is stripped as a prefix.
const DescriptionSentinel = "__yargsString__:"

// ProgramPlaceholder is replaced by State.ProgramName in the first usage record
const ProgramPlaceholder = "$0"

// State is a read-only snapshot of the configuration tables of a command definition at the moment help is
// requested. All tables are sparse: a name missing from a table has no value for that attribute.
type State struct {
	// Type tables, visited in types.ClassificationOrder
	Arrays   []string
	Strings  []string
	Booleans []string
	Numbers  []string

	// Aliases maps a canonical option name to its alternate names
	Aliases      map[string][]string
	Hidden       []string
	Defaults     map[string]any
	Required     map[string]bool
	Choices      map[string][]any
	Deprecated   map[string]Deprecation
	Positional   []string
	Descriptions map[string]string

	// Commands lists the direct subcommands of the active command
	Commands []CommandRecord
	// CommandPath is the active command context, innermost last
	CommandPath []string
	ProgramName string
	Usage       []UsageRecord
}

// CommandRecord describes a registered subcommand. Command is the full command string, e.g. "generate <schematic>".
type CommandRecord struct {
	Command     string
	Description string
	IsDefault   bool
	Aliases     []string
	Deprecated  Deprecation
}

// UsageRecord is a usage line of the active command. Command may contain ProgramPlaceholder and Description may be
// an encoded StructuredDescription.
type UsageRecord struct {
	Command     string
	Description string
}

// OptionDescriptor is the normalized description of one option
type OptionDescriptor struct {
	Name        string           `json:"name"`
	Type        types.OptionType `json:"type"`
	Deprecated  Deprecation      `json:"deprecated"`
	Aliases     []string         `json:"aliases,omitempty"`
	Default     any              `json:"default,omitempty"`
	Required    bool             `json:"required,omitempty"`
	Enum        []any            `json:"enum,omitempty"`
	Description string           `json:"description,omitempty"`
	Positional  *int             `json:"positional,omitempty"`
}

// SubcommandDescriptor is the normalized description of one subcommand
type SubcommandDescriptor struct {
	Name        string      `json:"name"`
	Command     string      `json:"command"`
	Description string      `json:"description"`
	Aliases     []string    `json:"aliases"`
	Deprecated  Deprecation `json:"deprecated"`
}

// HelpDocument is the machine-readable help of the active command
type HelpDocument struct {
	Name                        string                 `json:"name"`
	Command                     string                 `json:"command,omitempty"`
	Description                 string                 `json:"description,omitempty"`
	LongDescription             string                 `json:"longDescription,omitempty"`
	LongDescriptionRelativePath string                 `json:"longDescriptionRelativePath,omitempty"`
	Options                     []OptionDescriptor     `json:"options"`
	Subcommands                 []SubcommandDescriptor `json:"subcommands,omitempty"`
}

// ConfigureStateFunc is used when building a State with NewState
type ConfigureStateFunc func(state *State)
