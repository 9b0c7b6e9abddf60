package jsonhelp

import (
	"bytes"
	"encoding/json"

	"github.com/napalu/jsonhelp/errs"
)

// Deprecation marks an option or command as deprecated, optionally with a message. The zero value is
// NotDeprecated.
//
// It serializes as false (not deprecated), true (deprecated without a message) or as the message string.
type Deprecation struct {
	deprecated bool
	message    string
}

// NotDeprecated is the Deprecation of anything still supported
var NotDeprecated = Deprecation{}

// Deprecated returns a Deprecation carrying message. An empty message serializes as true.
func Deprecated(message string) Deprecation {
	return Deprecation{deprecated: true, message: message}
}

// IsDeprecated reports whether the Deprecation marks something as deprecated
func (d Deprecation) IsDeprecated() bool {
	return d.deprecated
}

// Message returns the deprecation message, if any
func (d Deprecation) Message() string {
	return d.message
}

// MarshalJSON renders false, true or the message
func (d Deprecation) MarshalJSON() ([]byte, error) {
	switch {
	case !d.deprecated:
		return []byte("false"), nil
	case d.message == "":
		return []byte("true"), nil
	default:
		return json.Marshal(d.message)
	}
}

// UnmarshalJSON accepts false, true, null or a message string
func (d *Deprecation) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch string(data) {
	case "null", "false":
		*d = NotDeprecated
		return nil
	case "true":
		*d = Deprecated("")
		return nil
	}

	var message string
	if err := json.Unmarshal(data, &message); err != nil {
		return errs.ErrInvalidDeprecation.WithArgs(string(data))
	}
	*d = Deprecated(message)

	return nil
}
