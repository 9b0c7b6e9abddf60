package surface

import (
	"github.com/napalu/jsonhelp"
	"github.com/napalu/jsonhelp/types"
)

// NewFlag convenience initialization method to configure flags. Flags are strings unless configured otherwise.
func NewFlag(configs ...ConfigureFlagFunc) *Flag {
	flag := &Flag{TypeOf: types.String}
	flag.Set(configs...)

	return flag
}

// Set applies configs to the flag
func (f *Flag) Set(configs ...ConfigureFlagFunc) {
	for _, config := range configs {
		config(f)
	}
}

// WithShortFlag sets the single-dash form of the flag
func WithShortFlag(shortFlag string) ConfigureFlagFunc {
	return func(flag *Flag) {
		flag.Short = shortFlag
	}
}

// WithAliases adds alternate names
func WithAliases(aliases ...string) ConfigureFlagFunc {
	return func(flag *Flag) {
		flag.Aliases = append(flag.Aliases, aliases...)
	}
}

// WithDescription sets the flag description
func WithDescription(description string) ConfigureFlagFunc {
	return func(flag *Flag) {
		flag.Description = description
	}
}

// WithType sets the option type
func WithType(typeOf types.OptionType) ConfigureFlagFunc {
	return func(flag *Flag) {
		flag.TypeOf = typeOf
	}
}

// SetRequired marks the flag as required
func SetRequired(required bool) ConfigureFlagFunc {
	return func(flag *Flag) {
		flag.Required = required
	}
}

// SetHidden hides the flag from help output
func SetHidden(hidden bool) ConfigureFlagFunc {
	return func(flag *Flag) {
		flag.Hidden = hidden
	}
}

// WithDefaultValue sets the textual default value
func WithDefaultValue(defaultValue string) ConfigureFlagFunc {
	return func(flag *Flag) {
		flag.DefaultValue = defaultValue
	}
}

// WithDefaultValues sets the default elements of an array flag
func WithDefaultValues(values ...string) ConfigureFlagFunc {
	return func(flag *Flag) {
		flag.DefaultList = values
	}
}

// WithAcceptedValues restricts the flag to values
func WithAcceptedValues(values ...string) ConfigureFlagFunc {
	return func(flag *Flag) {
		flag.AcceptedValues = values
	}
}

// WithDeprecated marks the flag as deprecated. An empty message is allowed.
func WithDeprecated(message string) ConfigureFlagFunc {
	return func(flag *Flag) {
		flag.Deprecated = jsonhelp.Deprecated(message)
	}
}

// WithPosition makes the flag positional
func WithPosition(idx int) ConfigureFlagFunc {
	return func(flag *Flag) {
		flag.Position = &idx
	}
}

// SetTimeValued marks a string flag as holding a point in time
func SetTimeValued(timeValued bool) ConfigureFlagFunc {
	return func(flag *Flag) {
		flag.TimeValued = timeValued
	}
}
