// Package errs declares the translatable errors returned by jsonhelp packages.
// This file contains constants for all translation keys.
package errs

const (
	prefixKey = "jsonhelp"
)

const (
	ErrorPrefixKey    = prefixKey + ".error"
	ParseErrorPathKey = ErrorPrefixKey + ".parse"
)

// Extraction errors
const (
	ErrNoActiveCommandContextKey = ErrorPrefixKey + ".no_active_command_context"
	ErrNilStateKey               = ErrorPrefixKey + ".nil_state"
	ErrRenderKey                 = ErrorPrefixKey + ".render"
)

// Registry errors
const (
	ErrCommandNotFoundKey                = ErrorPrefixKey + ".command_not_found"
	ErrCommandNotFoundWithSuggestionsKey = ErrorPrefixKey + ".command_not_found_with_suggestions"
	ErrCommandAlreadyExistsKey           = ErrorPrefixKey + ".command_already_exists"
	ErrEmptyCommandNameKey               = ErrorPrefixKey + ".empty_command_name"
	ErrEmptyFlagKey                      = ErrorPrefixKey + ".empty_flag"
	ErrFlagAlreadyExistsKey              = ErrorPrefixKey + ".flag_already_exists"
	ErrShortFlagConflictKey              = ErrorPrefixKey + ".short_flag_conflict"
	ErrMissingOptionTypeKey              = ErrorPrefixKey + ".missing_option_type"
	ErrInvalidDefaultKey                 = ErrorPrefixKey + ".invalid_default"
	ErrNegativePositionKey               = ErrorPrefixKey + ".negative_position"
	ErrDuplicatePositionKey              = ErrorPrefixKey + ".duplicate_position"
	ErrRecursionDepthExceededKey         = ErrorPrefixKey + ".recursion_depth_exceeded"
	ErrNilPointerKey                     = ErrorPrefixKey + ".nil_pointer"
	ErrOnlyStructsCanBeTaggedKey         = ErrorPrefixKey + ".only_structs_can_be_tagged"
	ErrProcessingFieldKey                = ErrorPrefixKey + ".processing_field"
	ErrSplitArgumentsKey                 = ErrorPrefixKey + ".split_arguments"
)

// Tag and definition errors
const (
	ErrInvalidTagFormatKey      = ErrorPrefixKey + ".invalid_tag_format"
	ErrUnrecognizedTagKeyKey    = ErrorPrefixKey + ".unrecognized_tag_key"
	ErrInvalidKindKey           = ErrorPrefixKey + ".invalid_kind"
	ErrInvalidTagValueKey       = ErrorPrefixKey + ".invalid_tag_value"
	ErrUnsupportedDefinitionKey = ErrorPrefixKey + ".unsupported_definition_format"
	ErrReadDefinitionKey        = ErrorPrefixKey + ".read_definition"
	ErrDecodeDefinitionKey      = ErrorPrefixKey + ".decode_definition"
	ErrStdinIsTerminalKey       = ErrorPrefixKey + ".stdin_is_terminal"
	ErrInvalidDeprecationKey    = ErrorPrefixKey + ".invalid_deprecation"
	ErrLanguageUnavailableKey   = ErrorPrefixKey + ".language_unavailable"
	ErrWriteOutputKey           = ErrorPrefixKey + ".write_output"
)

// Value conversion errors
const (
	ErrParseBoolKey   = ParseErrorPathKey + ".bool"
	ErrParseNumberKey = ParseErrorPathKey + ".number"
	ErrParseTimeKey   = ParseErrorPathKey + ".time"
)
