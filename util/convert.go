package util

import (
	"strconv"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/napalu/jsonhelp/errs"
	"github.com/napalu/jsonhelp/types"
)

// DefaultListDelimiter splits list values on ',', '|' and ' '
func DefaultListDelimiter(r rune) bool {
	return r == ',' || r == '|' || r == ' '
}

// TypedValue converts the textual representation of a value to a literal matching typeOf:
//   - Boolean: bool
//   - Number: int64 when the value is integral, float64 otherwise
//   - Array: []string split with delimiterFunc (DefaultListDelimiter when nil)
//   - String: the value unchanged
func TypedValue(value string, typeOf types.OptionType, delimiterFunc types.ListDelimiterFunc) (any, error) {
	switch typeOf {
	case types.Boolean:
		b, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return nil, errs.ErrParseBool.WithArgs(value)
		}
		return b, nil
	case types.Number:
		return parseNumber(value)
	case types.Array:
		if delimiterFunc == nil {
			delimiterFunc = DefaultListDelimiter
		}
		return strings.FieldsFunc(value, delimiterFunc), nil
	default:
		return value, nil
	}
}

// TypedDefault converts a default value. Empty defaults have no literal and yield nil. Time-valued string
// defaults are accepted in any format dateparse understands, read as UTC when they carry no zone, and
// normalized to RFC 3339.
func TypedDefault(value string, typeOf types.OptionType, timeValued bool, delimiterFunc types.ListDelimiterFunc) (any, error) {
	if value == "" {
		return nil, nil
	}

	if timeValued && typeOf == types.String {
		t, err := dateparse.ParseIn(value, time.UTC)
		if err != nil {
			return nil, errs.ErrParseTime.WithArgs(value)
		}
		return t.Format(time.RFC3339), nil
	}

	return TypedValue(value, typeOf, delimiterFunc)
}

// TypedChoices converts accepted values to literals. Array options list their element choices as strings.
func TypedChoices(values []string, typeOf types.OptionType) ([]any, error) {
	if len(values) == 0 {
		return nil, nil
	}

	choices := make([]any, 0, len(values))
	for _, v := range values {
		if typeOf == types.Array {
			choices = append(choices, v)
			continue
		}
		c, err := TypedValue(v, typeOf, nil)
		if err != nil {
			return nil, err
		}
		choices = append(choices, c)
	}

	return choices, nil
}

func parseNumber(value string) (any, error) {
	value = strings.TrimSpace(value)
	if i, err := strconv.ParseInt(value, 10, 64); err == nil {
		return i, nil
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f, nil
	}

	return nil, errs.ErrParseNumber.WithArgs(value)
}
