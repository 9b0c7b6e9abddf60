package surface

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/napalu/jsonhelp"
	"github.com/napalu/jsonhelp/errs"
	"github.com/napalu/jsonhelp/types"
	"github.com/napalu/jsonhelp/types/queue"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"
)

// Definition is the file representation of a command-line interface. Flags and commands keep the order in which
// they are declared.
type Definition struct {
	Program         string                                            `json:"program" yaml:"program"`
	Description     string                                            `json:"description,omitempty" yaml:"description,omitempty"`
	LongDescription string                                            `json:"longDescription,omitempty" yaml:"longDescription,omitempty"`
	Flags           *orderedmap.OrderedMap[string, FlagDefinition]    `json:"flags,omitempty" yaml:"flags,omitempty"`
	Commands        *orderedmap.OrderedMap[string, CommandDefinition] `json:"commands,omitempty" yaml:"commands,omitempty"`
}

// FlagDefinition is the file representation of a Flag
type FlagDefinition struct {
	Type        string           `json:"type,omitempty" yaml:"type,omitempty"`
	Short       string           `json:"short,omitempty" yaml:"short,omitempty"`
	Aliases     []string         `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	Description string           `json:"description,omitempty" yaml:"description,omitempty"`
	Default     any              `json:"default,omitempty" yaml:"default,omitempty"`
	Required    bool             `json:"required,omitempty" yaml:"required,omitempty"`
	Hidden      bool             `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	Deprecated  DeprecationValue `json:"deprecated" yaml:"deprecated,omitempty"`
	Accepted    []string         `json:"accepted,omitempty" yaml:"accepted,omitempty"`
	Position    *int             `json:"position,omitempty" yaml:"position,omitempty"`
	Time        bool             `json:"time,omitempty" yaml:"time,omitempty"`
}

// CommandDefinition is the file representation of a Command
type CommandDefinition struct {
	Usage                       string                                            `json:"usage,omitempty" yaml:"usage,omitempty"`
	Description                 string                                            `json:"description,omitempty" yaml:"description,omitempty"`
	LongDescription             string                                            `json:"longDescription,omitempty" yaml:"longDescription,omitempty"`
	LongDescriptionRelativePath string                                            `json:"longDescriptionRelativePath,omitempty" yaml:"longDescriptionRelativePath,omitempty"`
	Aliases                     []string                                          `json:"aliases,omitempty" yaml:"aliases,omitempty"`
	Deprecated                  DeprecationValue                                  `json:"deprecated" yaml:"deprecated,omitempty"`
	Hidden                      bool                                              `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	Default                     bool                                              `json:"default,omitempty" yaml:"default,omitempty"`
	Flags                       *orderedmap.OrderedMap[string, FlagDefinition]    `json:"flags,omitempty" yaml:"flags,omitempty"`
	Commands                    *orderedmap.OrderedMap[string, CommandDefinition] `json:"commands,omitempty" yaml:"commands,omitempty"`
}

// UnmarshalJSON rejects unknown keys
func (fd *FlagDefinition) UnmarshalJSON(data []byte) error {
	type plain FlagDefinition
	return decodeStrictJSON(data, (*plain)(fd))
}

// UnmarshalYAML rejects unknown keys. A timestamp default keeps its source text.
func (fd *FlagDefinition) UnmarshalYAML(node *yaml.Node) error {
	type plain FlagDefinition
	if err := decodeStrictYAML(node, (*plain)(fd)); err != nil {
		return err
	}
	if def := mappingValue(node, "default"); def != nil && def.Kind == yaml.ScalarNode && def.ShortTag() == "!!timestamp" {
		fd.Default = def.Value
	}

	return nil
}

// UnmarshalJSON rejects unknown keys
func (cd *CommandDefinition) UnmarshalJSON(data []byte) error {
	type plain CommandDefinition
	return decodeStrictJSON(data, (*plain)(cd))
}

// UnmarshalYAML rejects unknown keys
func (cd *CommandDefinition) UnmarshalYAML(node *yaml.Node) error {
	type plain CommandDefinition
	return decodeStrictYAML(node, (*plain)(cd))
}

// DeprecationValue is a jsonhelp.Deprecation which can also be read from and written to YAML
type DeprecationValue struct {
	jsonhelp.Deprecation
}

// UnmarshalYAML accepts false, true, null or a message
func (d *DeprecationValue) UnmarshalYAML(node *yaml.Node) error {
	var v interface{}
	if err := node.Decode(&v); err != nil {
		return err
	}

	switch t := v.(type) {
	case nil:
		d.Deprecation = jsonhelp.NotDeprecated
	case bool:
		if t {
			d.Deprecation = jsonhelp.Deprecated("")
		} else {
			d.Deprecation = jsonhelp.NotDeprecated
		}
	case string:
		d.Deprecation = jsonhelp.Deprecated(t)
	default:
		return errs.ErrInvalidDeprecation.WithArgs(node.Value)
	}

	return nil
}

// IsZero reports whether the value is NotDeprecated
func (d DeprecationValue) IsZero() bool {
	return !d.IsDeprecated()
}

// MarshalYAML renders false, true or the message
func (d DeprecationValue) MarshalYAML() (interface{}, error) {
	switch {
	case !d.IsDeprecated():
		return false, nil
	case d.Message() == "":
		return true, nil
	default:
		return d.Message(), nil
	}
}

type pendingDefinition struct {
	name   string
	def    CommandDefinition
	parent []string
}

// FromDefinition builds a Parser from a decoded definition. Commands are registered breadth-first so that the
// flags of a command are added once its path exists.
func FromDefinition(def *Definition, configs ...ConfigureParserFunc) (*Parser, error) {
	if def == nil {
		return nil, errs.ErrNilPointer
	}

	parser, err := NewParserWith(configs...)
	if err != nil {
		return nil, err
	}
	parser.SetProgramName(def.Program)
	parser.SetDescription(def.Description, def.LongDescription)

	if err := parser.addFlagDefinitions(def.Flags, nil); err != nil {
		return nil, err
	}

	q := queue.New[pendingDefinition]()
	enqueueDefinitions(q, def.Commands, nil)
	for q.Len() > 0 {
		next, _ := q.Dequeue()
		cmd := &Command{
			Name:                        next.name,
			Usage:                       next.def.Usage,
			Description:                 next.def.Description,
			LongDescription:             next.def.LongDescription,
			LongDescriptionRelativePath: next.def.LongDescriptionRelativePath,
			Aliases:                     next.def.Aliases,
			Deprecated:                  next.def.Deprecated.Deprecation,
			Hidden:                      next.def.Hidden,
			IsDefault:                   next.def.Default,
		}
		if err := parser.AddCommand(cmd, next.parent...); err != nil {
			return nil, err
		}

		path := append(append([]string(nil), next.parent...), next.name)
		if err := parser.addFlagDefinitions(next.def.Flags, path); err != nil {
			return nil, err
		}
		enqueueDefinitions(q, next.def.Commands, path)
	}

	return parser, nil
}

func enqueueDefinitions(q *queue.Q[pendingDefinition], commands *orderedmap.OrderedMap[string, CommandDefinition], parent []string) {
	if commands == nil {
		return
	}
	for pair := commands.Oldest(); pair != nil; pair = pair.Next() {
		q.Enqueue(pendingDefinition{name: pair.Key, def: pair.Value, parent: parent})
	}
}

func (p *Parser) addFlagDefinitions(flags *orderedmap.OrderedMap[string, FlagDefinition], commandPath []string) error {
	if flags == nil {
		return nil
	}

	for pair := flags.Oldest(); pair != nil; pair = pair.Next() {
		name, fd := pair.Key, pair.Value
		typeOf := types.String
		if fd.Type != "" {
			typeOf = types.OptionTypeFromString(fd.Type)
			if typeOf == types.Empty {
				return errs.ErrMissingOptionType.WithArgs(name)
			}
		}

		flag := &Flag{
			Description:    fd.Description,
			TypeOf:         typeOf,
			Required:       fd.Required,
			Hidden:         fd.Hidden,
			Short:          fd.Short,
			Aliases:        fd.Aliases,
			DefaultValue:   defaultString(fd.Default),
			DefaultList:    defaultList(fd.Default, typeOf),
			AcceptedValues: fd.Accepted,
			Deprecated:     fd.Deprecated.Deprecation,
			Position:       fd.Position,
			TimeValued:     fd.Time,
		}
		if err := p.AddFlag(name, flag, commandPath...); err != nil {
			return err
		}
	}

	return nil
}

// defaultString turns a decoded default literal back into its textual form
func defaultString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case time.Time:
		return t.Format(time.RFC3339)
	case []any:
		parts := make([]string, 0, len(t))
		for _, e := range t {
			parts = append(parts, defaultString(e))
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(t)
	}
}

// defaultList keeps the elements of a list default of an array flag apart
func defaultList(v any, typeOf types.OptionType) []string {
	elements, ok := v.([]any)
	if !ok || typeOf != types.Array {
		return nil
	}

	list := make([]string, 0, len(elements))
	for _, e := range elements {
		list = append(list, defaultString(e))
	}

	return list
}

func decodeStrictJSON(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	return dec.Decode(v)
}

// decodeStrictYAML decodes node with known fields only, which yaml.Node.Decode cannot do
func decodeStrictYAML(node *yaml.Node, v any) error {
	data, err := yaml.Marshal(node)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	return dec.Decode(v)
}

func mappingValue(node *yaml.Node, key string) *yaml.Node {
	if node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}

	return nil
}
