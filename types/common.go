package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// OptionType classifies an option by the kind of value it accepts (Array, String, Boolean, Number)
type OptionType int

const (
	Empty   OptionType = iota // Empty denotes an option which has not been classified
	Array                     // Array denotes an option accepting a list of values
	String                    // String denotes an option accepting a single string value
	Boolean                   // Boolean denotes a switch which does not require a value
	Number                    // Number denotes an option accepting a numeric value
)

// ClassificationOrder is the order in which type tables are visited when an option name appears in more than
// one table. The first table wins.
var ClassificationOrder = []OptionType{Array, String, Boolean, Number}

// String returns the string representation of an OptionType
func (o OptionType) String() string {
	switch o {
	case Array:
		return "array"
	case String:
		return "string"
	case Boolean:
		return "boolean"
	case Number:
		return "number"
	case Empty:
		fallthrough
	default:
		return "empty"
	}
}

// MarshalJSON renders the OptionType by name
func (o OptionType) MarshalJSON() ([]byte, error) {
	if o == Empty {
		return nil, fmt.Errorf("%w: %d", ErrUnknownOptionType, int(o))
	}

	return json.Marshal(o.String())
}

// UnmarshalJSON accepts the names produced by MarshalJSON
func (o *OptionType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	t := OptionTypeFromString(s)
	if t == Empty {
		return fmt.Errorf("%w: %q", ErrUnknownOptionType, s)
	}
	*o = t

	return nil
}

// OptionTypeFromString converts a name to an OptionType. A few aliases commonly found in CLI definitions are accepted
// ("bool", "list", "int", "float", ...). Unknown names yield Empty.
func OptionTypeFromString(s string) OptionType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "array", "list", "slice", "chained":
		return Array
	case "string", "str", "single", "file":
		return String
	case "boolean", "bool", "standalone", "switch":
		return Boolean
	case "number", "int", "integer", "float", "count":
		return Number
	default:
		return Empty
	}
}

// Kind is used to define the kind of entity a struct tag represents
type Kind string

const (
	KindFlag    Kind = "flag"
	KindCommand Kind = "command"
	KindEmpty   Kind = ""
)

// TagConfig is used to store struct tag information about a flag or command
type TagConfig struct {
	Kind            Kind
	Name            string
	Short           string
	Aliases         []string
	TypeOf          OptionType
	Description     string
	LongDescription string
	Usage           string
	Default         string
	Required        bool
	Hidden          bool
	Deprecated      bool
	DeprecatedMsg   string
	AcceptedValues  []string
	Position        *int
}

// ListDelimiterFunc signature to match when supplying a user-defined function to check for the runes which form list delimiters.
// Defaults to ',' || r == '|' || r == ' '.
type ListDelimiterFunc func(matchOn rune) bool

var (
	ErrUnknownOptionType = errors.New("unknown option type")
)
