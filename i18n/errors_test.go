package i18n

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestTranslatableErrors(t *testing.T) {
	err := NewError("jsonhelp.error.command_not_found")

	assert.Equal(t, "command not found: %s", err.Error())

	withArgs := err.WithArgs("serve")
	assert.Equal(t, "command not found: serve", withArgs.Error())
	assert.Equal(t, []interface{}{"serve"}, withArgs.Args())
	assert.Equal(t, "jsonhelp.error.command_not_found", withArgs.Key())

	wrapped := withArgs.Wrap(errors.New("inner"))
	assert.Equal(t, "command not found: serve: inner", wrapped.Error())
	assert.NotNil(t, wrapped.Unwrap())

	assert.True(t, errors.Is(wrapped, err))
	assert.True(t, errors.Is(fmt.Errorf("outer: %w", withArgs), err))
	assert.False(t, errors.Is(withArgs, NewError("jsonhelp.error.command_not_found")))
}

func TestFormatWithProvider(t *testing.T) {
	inner := NewError("jsonhelp.error.parse.number").WithArgs("abc")
	err := NewError("jsonhelp.error.invalid_default").WithArgs("abc", "port").Wrap(inner)

	assert.Equal(t, `invalid default value "abc" for flag 'port': invalid number value: abc`, err.Error())
	assert.Equal(t, `ungültiger Standardwert "abc" für Flag 'port': ungültiger Zahlenwert: abc`,
		err.Format(Default().Provider(language.German)))
}

func TestUnknownKeyRendersKey(t *testing.T) {
	err := NewError("some.unknown.key")
	assert.Equal(t, "some.unknown.key", err.Error())
}

func TestSetDefaultMessageProvider(t *testing.T) {
	SetDefaultMessageProvider(Default().Provider(language.French))
	defer SetDefaultMessageProvider(nil)

	assert.Equal(t, "pointeur nil", NewError("jsonhelp.error.nil_pointer").Error())
}
