// Package encoding reads and writes definition files. The format is chosen by file extension.
package encoding

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/napalu/jsonhelp/errs"
	"gopkg.in/yaml.v3"
)

const (
	JSONExt = ".json"
	YAMLExt = ".yaml"
	YMLExt  = ".yml"
)

// Exts contains the supported extensions, preferred first
var Exts = []string{JSONExt, YAMLExt, YMLExt}

// Marshaler is a type that knows how to marshal and unmarshal data in one format
type Marshaler interface {
	IsJSONLike() bool
	IsYAMLLike() bool
	Marshal(v interface{}) ([]byte, error)
	Unmarshal(data []byte, v interface{}) error
}

// Marshalers maps an extension to the Marshaler of that format
var Marshalers = map[string]Marshaler{
	JSONExt: JSON,
	YAMLExt: YAML,
	YMLExt:  YAML,
}

// Detect returns the marshaler for path. Paths without an extension use the default marshaler.
func Detect(path string) (Marshaler, string) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		ext = DefaultExt()
	}

	return Marshalers[ext], ext
}

// Default returns the default marshaler
func Default() Marshaler {
	return Marshalers[DefaultExt()]
}

// DefaultExt returns the default extension
func DefaultExt() string {
	return Exts[0]
}

// ReadFile decodes the file at path into v using the marshaler detected from its extension
func ReadFile(path string, v interface{}) error {
	m, ext := Detect(path)
	if m == nil {
		return errs.ErrUnsupportedDefinition.WithArgs(ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return errs.ErrReadDefinition.WithArgs(path).Wrap(err)
	}
	if err := m.Unmarshal(data, v); err != nil {
		return errs.ErrDecodeDefinition.WithArgs(path).Wrap(err)
	}

	return nil
}

// JSON reads and writes indented JSON
var JSON Marshaler = &jsonMarshaler{}

type jsonMarshaler struct{}

func (m *jsonMarshaler) IsJSONLike() bool {
	return true
}

func (m *jsonMarshaler) IsYAMLLike() bool {
	return false
}

func (m *jsonMarshaler) Marshal(v interface{}) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

func (m *jsonMarshaler) Unmarshal(data []byte, v interface{}) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// YAML reads and writes YAML
var YAML Marshaler = &yamlMarshaler{}

type yamlMarshaler struct{}

func (m *yamlMarshaler) IsJSONLike() bool {
	return false
}

func (m *yamlMarshaler) IsYAMLLike() bool {
	return true
}

func (m *yamlMarshaler) Marshal(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func (m *yamlMarshaler) Unmarshal(data []byte, v interface{}) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(v)
}
