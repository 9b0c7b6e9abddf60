package surface

import (
	"strings"
	"sync"

	"github.com/iancoleman/strcase"
	"github.com/napalu/jsonhelp"
	"github.com/napalu/jsonhelp/types"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// DefaultMaxDepth is the deepest command nesting accepted by AddCommand and NewParserFromStruct
const DefaultMaxDepth = 5

// Flag describes a command-line option
type Flag struct {
	Description string
	TypeOf      types.OptionType
	Required    bool
	Hidden      bool
	// Short is the single-dash form of the flag, rendered as an alias
	Short   string
	Aliases []string
	// DefaultValue is converted to a literal of TypeOf when a snapshot is taken
	DefaultValue string
	// DefaultList is the default of an array flag given element by element. It takes precedence over
	// DefaultValue and is never split.
	DefaultList    []string
	AcceptedValues []string
	Deprecated     jsonhelp.Deprecation
	// Position marks the flag as positional. Positionals are listed in ascending Position order.
	Position *int
	// TimeValued string defaults are normalized to RFC 3339
	TimeValued bool
}

// Command describes a command and its subcommands. Subcommands are registered together with their parent.
type Command struct {
	Name string
	// Usage is the positional signature shown after the command name, e.g. "<name> [options]"
	Usage                       string
	Description                 string
	LongDescription             string
	LongDescriptionRelativePath string
	Aliases                     []string
	Deprecated                  jsonhelp.Deprecation
	Hidden                      bool
	IsDefault                   bool
	Subcommands                 []Command
	path                        string
}

// Path returns the space-separated path of a registered command
func (c *Command) Path() string {
	return c.path
}

// Parser is a registry of commands and flags. It resolves the active command of an argument list and takes
// snapshots of the configuration tables visible in a command context.
type Parser struct {
	mu                   sync.RWMutex
	programName          string
	description          string
	longDescription      string
	registeredCommands   *orderedmap.OrderedMap[string, *Command]
	acceptedFlags        *orderedmap.OrderedMap[string, *FlagInfo]
	listFunc             types.ListDelimiterFunc
	flagNameConverter    NameConversionFunc
	commandNameConverter NameConversionFunc
	maxDepth             int
}

// FlagInfo is a registered flag together with the command path it is scoped to (empty for global flags)
type FlagInfo struct {
	Name        string
	CommandPath string
	Flag        *Flag
}

// ConfigureParserFunc is used when defining Parser options
type ConfigureParserFunc func(p *Parser, err *error)

// ConfigureFlagFunc is used when defining Flag options
type ConfigureFlagFunc func(flag *Flag)

// ConfigureCommandFunc is used when defining Command options
type ConfigureCommandFunc func(command *Command)

// NameConversionFunc converts a struct field name to a command/flag name
type NameConversionFunc func(string) string

// Built-in conversion strategies
var (
	// ToKebabCase converts a string to kebab case "my-command-name"
	ToKebabCase NameConversionFunc = strcase.ToKebab

	// ToSnakeCase converts a string to snake case "my_command_name"
	ToSnakeCase NameConversionFunc = strcase.ToSnake

	// ToLowerCamelCase converts a string to lower camel case "myCommandName"
	ToLowerCamelCase NameConversionFunc = strcase.ToLowerCamel

	// ToLowerCase converts a string to lower case "mycommandname"
	ToLowerCase NameConversionFunc = func(s string) string {
		return strings.ToLower(s)
	}

	DefaultFlagNameConverter    = ToLowerCamelCase
	DefaultCommandNameConverter = ToLowerCase
)
