package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/napalu/jsonhelp/i18n"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func TestSentinelsHaveDefaultTranslations(t *testing.T) {
	all := []i18n.TranslatableError{
		ErrNoActiveCommandContext, ErrNilState, ErrRender,
		ErrCommandNotFound, ErrCommandNotFoundWithSuggestions, ErrCommandAlreadyExists,
		ErrEmptyCommandName, ErrEmptyFlag, ErrFlagAlreadyExists, ErrShortFlagConflict,
		ErrMissingOptionType, ErrInvalidDefault, ErrNegativePosition, ErrDuplicatePosition,
		ErrRecursionDepthExceeded, ErrNilPointer, ErrOnlyStructsCanBeTagged, ErrProcessingField,
		ErrSplitArguments, ErrInvalidTagFormat, ErrUnrecognizedTagKey, ErrInvalidKind,
		ErrInvalidTagValue, ErrUnsupportedDefinition, ErrReadDefinition, ErrDecodeDefinition,
		ErrStdinIsTerminal, ErrInvalidDeprecation, ErrLanguageUnavailable, ErrWriteOutput,
		ErrParseBool, ErrParseNumber, ErrParseTime,
	}

	for _, lang := range i18n.Default().Languages() {
		for _, err := range all {
			assert.True(t, i18n.Default().HasKey(lang, err.Key()), "%s: missing %s", lang, err.Key())
		}
	}
}

func TestWithProvider(t *testing.T) {
	err := ErrCommandNotFound.WithArgs("srv")
	de := WithProvider(fmt.Errorf("resolve: %w", err), i18n.Default().Provider(language.German))

	assert.Equal(t, "Befehl nicht gefunden: srv", de.Error())
	assert.True(t, errors.Is(de, ErrCommandNotFound))

	plain := errors.New("plain")
	assert.Same(t, plain, WithProvider(plain, i18n.Default().Provider(language.German)))
	assert.NoError(t, WithProvider(nil, nil))
}
