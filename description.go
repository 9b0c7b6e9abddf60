package jsonhelp

import (
	"encoding/json"
	"strings"
)

// Description is the result of parsing a raw command description: either StructuredDescription or
// PlainDescription.
type Description interface {
	// Summary returns the short description text
	Summary() string
	isDescription()
}

// StructuredDescription is a description encoded as a JSON object
type StructuredDescription struct {
	Describe                    string `json:"describe"`
	LongDescription             string `json:"longDescription"`
	LongDescriptionRelativePath string `json:"longDescriptionRelativePath"`
}

// PlainDescription is a description used verbatim
type PlainDescription struct {
	Text string
}

func (s StructuredDescription) Summary() string {
	return s.Describe
}

func (StructuredDescription) isDescription() {}

func (p PlainDescription) Summary() string {
	return p.Text
}

func (PlainDescription) isDescription() {}

// ParseDescription decodes raw as a structured description when it is a JSON object. Anything else, including
// valid JSON which is not an object, is returned as plain text. Fields of the object which are not strings are
// kept as their JSON text.
func ParseDescription(raw string) Description {
	if !strings.HasPrefix(strings.TrimSpace(raw), "{") {
		return PlainDescription{Text: raw}
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(raw), &fields); err != nil {
		return PlainDescription{Text: raw}
	}

	return StructuredDescription{
		Describe:                    descriptionField(fields, "describe"),
		LongDescription:             descriptionField(fields, "longDescription"),
		LongDescriptionRelativePath: descriptionField(fields, "longDescriptionRelativePath"),
	}
}

func descriptionField(fields map[string]any, key string) string {
	switch v := fields[key].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(data)
	}
}

// EncodeDescription is the inverse of ParseDescription for the structured form. A description without long text
// is returned as the plain summary.
func EncodeDescription(describe, longDescription, longDescriptionRelativePath string) string {
	if longDescription == "" && longDescriptionRelativePath == "" {
		return describe
	}

	data, err := json.Marshal(StructuredDescription{
		Describe:                    describe,
		LongDescription:             longDescription,
		LongDescriptionRelativePath: longDescriptionRelativePath,
	})
	if err != nil {
		return describe
	}

	return string(data)
}
