package parse

import (
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/napalu/jsonhelp/errs"
	"github.com/napalu/jsonhelp/types"
	"github.com/napalu/jsonhelp/util"
)

// TagName is the struct tag key read by UnmarshalTagFormat callers
const TagName = "jsonhelp"

const listSeparator = "|"

var timeType = reflect.TypeOf(time.Time{})

// InferFieldType derives the option type of a struct field (or reflect.Type) when the tag does not name one
func InferFieldType(field interface{}) types.OptionType {
	var t reflect.Type

	switch f := field.(type) {
	case reflect.StructField:
		if f.Type == nil {
			return types.Empty
		}
		t = util.UnwrapType(f.Type)
	case reflect.Type:
		if f == nil {
			return types.Empty
		}
		t = util.UnwrapType(f)
	default:
		return types.Empty
	}

	switch t.Kind() {
	case reflect.Bool:
		return types.Boolean
	case reflect.Slice, reflect.Array:
		switch util.UnwrapType(t.Elem()).Kind() {
		case reflect.Struct, reflect.Map, reflect.Func, reflect.Chan, reflect.Interface:
			return types.Empty
		}
		return types.Array
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		if t == reflect.TypeOf(time.Duration(0)) {
			return types.String
		}
		return types.Number
	case reflect.String:
		return types.String
	default:
		if t == timeType {
			return types.String
		}
		return types.Empty
	}
}

// IsTimeField reports whether the field holds a time.Time (possibly behind pointers)
func IsTimeField(field reflect.StructField) bool {
	return field.Type != nil && util.UnwrapType(field.Type) == timeType
}

// UnmarshalTagFormat parses a tag of the form "key:value;key:value". Values run up to the next ';', list values
// are separated by '|'. An empty kind is treated as a flag.
func UnmarshalTagFormat(tag string, field reflect.StructField) (*types.TagConfig, error) {
	config := &types.TagConfig{}

	for _, part := range strings.Split(tag, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		key, value, found := strings.Cut(part, ":")
		if !found {
			return nil, errs.ErrInvalidTagFormat.WithArgs(field.Name, part)
		}

		switch strings.TrimSpace(key) {
		case "kind":
			switch types.Kind(value) {
			case types.KindFlag, types.KindCommand, types.KindEmpty:
				config.Kind = types.Kind(value)
			default:
				return nil, errs.ErrInvalidKind.WithArgs(field.Name, value)
			}
		case "name":
			config.Name = value
		case "short":
			config.Short = value
		case "alias":
			config.Aliases = listValues(value)
		case "type":
			config.TypeOf = types.OptionTypeFromString(value)
			if config.TypeOf == types.Empty {
				return nil, errs.ErrInvalidTagValue.WithArgs("type", field.Name)
			}
		case "desc":
			config.Description = value
		case "long":
			config.LongDescription = value
		case "usage":
			config.Usage = value
		case "default":
			config.Default = value
		case "required":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return nil, errs.ErrInvalidTagValue.WithArgs("required", field.Name).Wrap(err)
			}
			config.Required = b
		case "hidden":
			b, err := strconv.ParseBool(value)
			if err != nil {
				return nil, errs.ErrInvalidTagValue.WithArgs("hidden", field.Name).Wrap(err)
			}
			config.Hidden = b
		case "deprecated":
			config.Deprecated, config.DeprecatedMsg = deprecation(value)
		case "accepted":
			config.AcceptedValues = listValues(value)
		case "pos":
			pos, err := Position(value)
			if err != nil {
				return nil, errs.ErrInvalidTagValue.WithArgs("pos", field.Name).Wrap(err)
			}
			config.Position = &pos
		default:
			return nil, errs.ErrUnrecognizedTagKey.WithArgs(key, field.Name)
		}
	}

	if config.Kind == types.KindEmpty {
		config.Kind = types.KindFlag
	}

	if config.TypeOf == types.Empty && config.Kind == types.KindFlag {
		config.TypeOf = InferFieldType(field)
	}

	return config, nil
}

// Position parses a positional index. Both "N" and the braced form "{idx:N}" are accepted.
func Position(input string) (int, error) {
	input = strings.TrimSpace(input)
	if strings.HasPrefix(input, "{") && strings.HasSuffix(input, "}") {
		key, value, found := strings.Cut(input[1:len(input)-1], ":")
		if !found || !strings.EqualFold(strings.TrimSpace(key), "idx") {
			return 0, errs.ErrInvalidTagFormat.WithArgs("pos", input)
		}
		input = strings.TrimSpace(value)
	}

	idx, err := strconv.Atoi(input)
	if err != nil {
		return 0, errs.ErrParseNumber.WithArgs(input)
	}
	if idx < 0 {
		return 0, errs.ErrNegativePosition.WithArgs(input)
	}

	return idx, nil
}

func deprecation(value string) (bool, string) {
	if b, err := strconv.ParseBool(value); err == nil {
		return b, ""
	}

	return true, value
}

func listValues(value string) []string {
	var out []string
	for _, v := range strings.Split(value, listSeparator) {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}

	return out
}
