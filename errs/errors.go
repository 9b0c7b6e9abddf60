package errs

import (
	"github.com/napalu/jsonhelp/i18n"
)

// Extraction errors
var (
	ErrNoActiveCommandContext = i18n.NewError(ErrNoActiveCommandContextKey)
	ErrNilState               = i18n.NewError(ErrNilStateKey)
	ErrRender                 = i18n.NewError(ErrRenderKey)
)

// Registry errors
var (
	ErrCommandNotFound                = i18n.NewError(ErrCommandNotFoundKey)
	ErrCommandNotFoundWithSuggestions = i18n.NewError(ErrCommandNotFoundWithSuggestionsKey)
	ErrCommandAlreadyExists           = i18n.NewError(ErrCommandAlreadyExistsKey)
	ErrEmptyCommandName               = i18n.NewError(ErrEmptyCommandNameKey)
	ErrEmptyFlag                      = i18n.NewError(ErrEmptyFlagKey)
	ErrFlagAlreadyExists              = i18n.NewError(ErrFlagAlreadyExistsKey)
	ErrShortFlagConflict              = i18n.NewError(ErrShortFlagConflictKey)
	ErrMissingOptionType              = i18n.NewError(ErrMissingOptionTypeKey)
	ErrInvalidDefault                 = i18n.NewError(ErrInvalidDefaultKey)
	ErrNegativePosition               = i18n.NewError(ErrNegativePositionKey)
	ErrDuplicatePosition              = i18n.NewError(ErrDuplicatePositionKey)
	ErrRecursionDepthExceeded         = i18n.NewError(ErrRecursionDepthExceededKey)
	ErrNilPointer                     = i18n.NewError(ErrNilPointerKey)
	ErrOnlyStructsCanBeTagged         = i18n.NewError(ErrOnlyStructsCanBeTaggedKey)
	ErrProcessingField                = i18n.NewError(ErrProcessingFieldKey)
	ErrSplitArguments                 = i18n.NewError(ErrSplitArgumentsKey)
)

// Tag and definition errors
var (
	ErrInvalidTagFormat      = i18n.NewError(ErrInvalidTagFormatKey)
	ErrUnrecognizedTagKey    = i18n.NewError(ErrUnrecognizedTagKeyKey)
	ErrInvalidKind           = i18n.NewError(ErrInvalidKindKey)
	ErrInvalidTagValue       = i18n.NewError(ErrInvalidTagValueKey)
	ErrUnsupportedDefinition = i18n.NewError(ErrUnsupportedDefinitionKey)
	ErrReadDefinition        = i18n.NewError(ErrReadDefinitionKey)
	ErrDecodeDefinition      = i18n.NewError(ErrDecodeDefinitionKey)
	ErrStdinIsTerminal       = i18n.NewError(ErrStdinIsTerminalKey)
	ErrInvalidDeprecation    = i18n.NewError(ErrInvalidDeprecationKey)
	ErrLanguageUnavailable   = i18n.NewError(ErrLanguageUnavailableKey)
	ErrWriteOutput           = i18n.NewError(ErrWriteOutputKey)
)

// Value conversion errors
var (
	ErrParseBool   = i18n.NewError(ErrParseBoolKey)
	ErrParseNumber = i18n.NewError(ErrParseNumberKey)
	ErrParseTime   = i18n.NewError(ErrParseTimeKey)
)
