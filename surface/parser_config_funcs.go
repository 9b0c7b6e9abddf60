package surface

import "github.com/napalu/jsonhelp/types"

// NewParserWith allows initialization of Parser using option functions. The caller should always test for error on
// return because Parser will be nil when an error occurs during initialization.
//
// Configuration example:
//
//	parser, err := NewParserWith(
//		WithProgramName("ng"),
//		WithCommand(NewCommand(
//			WithName("build"),
//			WithUsage("<project>"),
//			WithCommandDescription("Compiles an application"))),
//		WithFlag("verbose", NewFlag(
//			WithType(types.Boolean),
//			WithShortFlag("v"),
//			WithDescription("Verbose output"))),
//		WithFlag("project", NewFlag(
//			WithPosition(0),
//			SetRequired(true)), "build"))
func NewParserWith(configs ...ConfigureParserFunc) (*Parser, error) {
	parser := NewParser()

	var err error
	for _, config := range configs {
		config(parser, &err)
		if err != nil {
			return nil, err
		}
	}

	return parser, nil
}

// WithFlag is a wrapper for AddFlag
func WithFlag(name string, flag *Flag, commandPath ...string) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		*err = p.AddFlag(name, flag, commandPath...)
	}
}

// WithCommand is a wrapper for AddCommand
func WithCommand(command *Command, parentPath ...string) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		*err = p.AddCommand(command, parentPath...)
	}
}

// WithProgramName sets the name substituted for "$0" in usage lines
func WithProgramName(name string) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.SetProgramName(name)
	}
}

// WithProgramDescription sets the description of the root context
func WithProgramDescription(description, longDescription string) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.SetDescription(description, longDescription)
	}
}

// WithListDelimiterFunc sets the function splitting array defaults
func WithListDelimiterFunc(delimiterFunc types.ListDelimiterFunc) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.listFunc = delimiterFunc
	}
}

// WithFlagNameConverter sets the conversion of struct field names to flag names
func WithFlagNameConverter(converter NameConversionFunc) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.flagNameConverter = converter
	}
}

// WithCommandNameConverter sets the conversion of struct field names to command names
func WithCommandNameConverter(converter NameConversionFunc) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.commandNameConverter = converter
	}
}

// WithMaxDepth sets the deepest accepted command nesting
func WithMaxDepth(depth int) ConfigureParserFunc {
	return func(p *Parser, err *error) {
		p.maxDepth = depth
	}
}
