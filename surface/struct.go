package surface

import (
	"reflect"
	"time"

	"github.com/napalu/jsonhelp"
	"github.com/napalu/jsonhelp/errs"
	"github.com/napalu/jsonhelp/internal/parse"
	"github.com/napalu/jsonhelp/types"
	"github.com/napalu/jsonhelp/util"
)

// NewParserFromStruct builds a Parser from the `jsonhelp` tags of a struct. Fields tagged with kind:command
// become commands; the tagged fields of their (struct) type are scoped to that command. Untagged struct fields are
// traversed as flag groups, other untagged fields and fields tagged "-" are ignored.
//
// Example:
//
//	type Options struct {
//		Verbose bool `jsonhelp:"short:v;desc:Verbose output"`
//		Build   struct {
//			Project string `jsonhelp:"pos:0;required:true;desc:Project name"`
//		} `jsonhelp:"kind:command;usage:<project>;desc:Compiles an application"`
//	}
func NewParserFromStruct[T any](structWithTags *T, configs ...ConfigureParserFunc) (*Parser, error) {
	parser, err := NewParserWith(configs...)
	if err != nil {
		return nil, err
	}

	value, err := util.UnwrapValue(reflect.ValueOf(structWithTags))
	if err != nil {
		return nil, err
	}
	if value.Kind() != reflect.Struct {
		return nil, errs.ErrOnlyStructsCanBeTagged.WithArgs(value.Kind().String())
	}

	if err := parser.processStruct(value.Type(), nil, 0); err != nil {
		return nil, err
	}

	return parser, nil
}

func (p *Parser) processStruct(st reflect.Type, commandPath []string, level int) error {
	if level > p.maxDepth {
		return errs.ErrRecursionDepthExceeded.WithArgs(p.maxDepth)
	}

	for i := 0; i < st.NumField(); i++ {
		field := st.Field(i)
		if !field.IsExported() {
			continue
		}

		tag, tagged := field.Tag.Lookup(parse.TagName)
		if tag == "-" {
			continue
		}
		if !tagged {
			if isFlagGroup(field.Type) {
				if err := p.processStruct(util.UnwrapType(field.Type), commandPath, level+1); err != nil {
					return err
				}
			}
			continue
		}

		config, err := parse.UnmarshalTagFormat(tag, field)
		if err != nil {
			return errs.ErrProcessingField.WithArgs(field.Name).Wrap(err)
		}

		if config.Kind == types.KindCommand {
			if err := p.processCommandField(field, config, commandPath, level); err != nil {
				return err
			}
			continue
		}

		if isFlagGroup(field.Type) {
			if err := p.processStruct(util.UnwrapType(field.Type), commandPath, level+1); err != nil {
				return err
			}
			continue
		}

		name := config.Name
		if name == "" {
			name = p.flagNameConverter(field.Name)
		}
		flag := toFlag(config)
		flag.TimeValued = parse.IsTimeField(field)
		if err := p.AddFlag(name, flag, commandPath...); err != nil {
			return errs.ErrProcessingField.WithArgs(field.Name).Wrap(err)
		}
	}

	return nil
}

func (p *Parser) processCommandField(field reflect.StructField, config *types.TagConfig, commandPath []string, level int) error {
	name := config.Name
	if name == "" {
		name = p.commandNameConverter(field.Name)
	}

	cmd := &Command{
		Name:            name,
		Usage:           config.Usage,
		Description:     config.Description,
		LongDescription: config.LongDescription,
		Aliases:         config.Aliases,
		Hidden:          config.Hidden,
	}
	if config.Deprecated {
		cmd.Deprecated = jsonhelp.Deprecated(config.DeprecatedMsg)
	}
	if err := p.AddCommand(cmd, commandPath...); err != nil {
		return errs.ErrProcessingField.WithArgs(field.Name).Wrap(err)
	}

	if t := util.UnwrapType(field.Type); t.Kind() == reflect.Struct {
		path := append(append([]string(nil), commandPath...), name)
		return p.processStruct(t, path, level+1)
	}

	return nil
}

func toFlag(c *types.TagConfig) *Flag {
	flag := &Flag{
		Description:    c.Description,
		TypeOf:         c.TypeOf,
		Required:       c.Required,
		Hidden:         c.Hidden,
		Short:          c.Short,
		Aliases:        c.Aliases,
		DefaultValue:   c.Default,
		AcceptedValues: c.AcceptedValues,
		Position:       c.Position,
	}
	if c.Deprecated {
		flag.Deprecated = jsonhelp.Deprecated(c.DeprecatedMsg)
	}

	return flag
}

func isFlagGroup(t reflect.Type) bool {
	t = util.UnwrapType(t)
	return t.Kind() == reflect.Struct && t != reflect.TypeOf(time.Time{})
}
