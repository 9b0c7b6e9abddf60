package jsonhelp

import "github.com/napalu/jsonhelp/types"

// NewState returns a State configured by configs. Every table is initialized so that the With* functions can be
// applied in any order.
func NewState(configs ...ConfigureStateFunc) *State {
	s := &State{
		Aliases:      map[string][]string{},
		Defaults:     map[string]any{},
		Required:     map[string]bool{},
		Choices:      map[string][]any{},
		Deprecated:   map[string]Deprecation{},
		Descriptions: map[string]string{},
	}
	for _, config := range configs {
		config(s)
	}

	return s
}

// WithOption appends names to the type table of t
func WithOption(t types.OptionType, names ...string) ConfigureStateFunc {
	return func(s *State) {
		switch t {
		case types.Array:
			s.Arrays = append(s.Arrays, names...)
		case types.String:
			s.Strings = append(s.Strings, names...)
		case types.Boolean:
			s.Booleans = append(s.Booleans, names...)
		case types.Number:
			s.Numbers = append(s.Numbers, names...)
		}
	}
}

// WithArray declares array options
func WithArray(names ...string) ConfigureStateFunc {
	return WithOption(types.Array, names...)
}

// WithString declares string options
func WithString(names ...string) ConfigureStateFunc {
	return WithOption(types.String, names...)
}

// WithBoolean declares boolean options
func WithBoolean(names ...string) ConfigureStateFunc {
	return WithOption(types.Boolean, names...)
}

// WithNumber declares number options
func WithNumber(names ...string) ConfigureStateFunc {
	return WithOption(types.Number, names...)
}

// WithAlias registers alternate names of an option
func WithAlias(name string, aliases ...string) ConfigureStateFunc {
	return func(s *State) {
		s.Aliases[name] = append(s.Aliases[name], aliases...)
	}
}

// WithHidden hides options from the help document
func WithHidden(names ...string) ConfigureStateFunc {
	return func(s *State) {
		s.Hidden = append(s.Hidden, names...)
	}
}

// WithDefault sets the default literal of an option
func WithDefault(name string, value any) ConfigureStateFunc {
	return func(s *State) {
		s.Defaults[name] = value
	}
}

// WithRequired marks options as required
func WithRequired(names ...string) ConfigureStateFunc {
	return func(s *State) {
		for _, name := range names {
			s.Required[name] = true
		}
	}
}

// WithChoices sets the accepted values of an option
func WithChoices(name string, choices ...any) ConfigureStateFunc {
	return func(s *State) {
		s.Choices[name] = choices
	}
}

// WithDeprecated marks an option as deprecated. An empty message renders as true.
func WithDeprecated(name, message string) ConfigureStateFunc {
	return func(s *State) {
		s.Deprecated[name] = Deprecated(message)
	}
}

// WithPositional appends names to the positional group, in order
func WithPositional(names ...string) ConfigureStateFunc {
	return func(s *State) {
		s.Positional = append(s.Positional, names...)
	}
}

// WithDescription sets the description of an option
func WithDescription(name, description string) ConfigureStateFunc {
	return func(s *State) {
		s.Descriptions[name] = description
	}
}

// WithCommand registers a subcommand record
func WithCommand(record CommandRecord) ConfigureStateFunc {
	return func(s *State) {
		s.Commands = append(s.Commands, record)
	}
}

// WithCommandPath sets the active command context, outermost first
func WithCommandPath(path ...string) ConfigureStateFunc {
	return func(s *State) {
		s.CommandPath = path
	}
}

// WithProgramName sets the value substituted for the program placeholder of the usage line
func WithProgramName(name string) ConfigureStateFunc {
	return func(s *State) {
		s.ProgramName = name
	}
}

// WithUsage appends a usage record
func WithUsage(command, description string) ConfigureStateFunc {
	return func(s *State) {
		s.Usage = append(s.Usage, UsageRecord{Command: command, Description: description})
	}
}
