package surface

import "github.com/napalu/jsonhelp"

// NewCommand creates and returns a new Command configured by configs
func NewCommand(configs ...ConfigureCommandFunc) *Command {
	cmd := &Command{}
	cmd.Set(configs...)

	return cmd
}

// Set applies configs to the command
func (c *Command) Set(configs ...ConfigureCommandFunc) {
	for _, config := range configs {
		config(c)
	}
}

// WithName sets the name used to invoke the command
func WithName(name string) ConfigureCommandFunc {
	return func(command *Command) {
		command.Name = name
	}
}

// WithUsage sets the positional signature of the command, e.g. "<name>"
func WithUsage(usage string) ConfigureCommandFunc {
	return func(command *Command) {
		command.Usage = usage
	}
}

// WithCommandDescription sets the short description of the command
func WithCommandDescription(description string) ConfigureCommandFunc {
	return func(command *Command) {
		command.Description = description
	}
}

// WithLongDescription sets the long description and, optionally, the path of the document it was read from
func WithLongDescription(longDescription, relativePath string) ConfigureCommandFunc {
	return func(command *Command) {
		command.LongDescription = longDescription
		command.LongDescriptionRelativePath = relativePath
	}
}

// WithCommandAliases adds alternate names of the command
func WithCommandAliases(aliases ...string) ConfigureCommandFunc {
	return func(command *Command) {
		command.Aliases = append(command.Aliases, aliases...)
	}
}

// WithCommandDeprecated marks the command as deprecated
func WithCommandDeprecated(message string) ConfigureCommandFunc {
	return func(command *Command) {
		command.Deprecated = jsonhelp.Deprecated(message)
	}
}

// SetCommandHidden hides the command from the subcommands of its parent
func SetCommandHidden(hidden bool) ConfigureCommandFunc {
	return func(command *Command) {
		command.Hidden = hidden
	}
}

// SetDefaultCommand marks the command as the default of its parent
func SetDefaultCommand(isDefault bool) ConfigureCommandFunc {
	return func(command *Command) {
		command.IsDefault = isDefault
	}
}

// WithSubcommands appends subcommands
func WithSubcommands(subcommands ...*Command) ConfigureCommandFunc {
	return func(command *Command) {
		for _, sub := range subcommands {
			command.Subcommands = append(command.Subcommands, *sub)
		}
	}
}
