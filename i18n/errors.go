package i18n

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/text/language"
)

// TranslatableError represents an error that can be translated
type TranslatableError interface {
	error
	Key() string
	Args() []interface{}
	Unwrap() error
	WithArgs(args ...interface{}) TranslatableError
	Wrap(err error) TranslatableError
	Format(provider MessageProvider) string
}

// MessageProvider resolves a translation key to a message
type MessageProvider interface {
	GetMessage(key string) string
}

// TrError represents a translatable error with optional formatting arguments
// and error wrapping support. It implements both the TranslatableError interface
// and the standard error interface.
//
// Example usage:
//
//	err := NewError("jsonhelp.error.command_not_found")
//	err = err.WithArgs("serve")
//	err = err.Wrap(originalError)
type TrError struct {
	// sentinel is shared by all copies of an error so that errors.Is matches derived values
	sentinel error
	key      string
	args     []interface{}
	wrapped  error
}

// bundleProvider implements MessageProvider for one language of a Bundle
type bundleProvider struct {
	bundle *Bundle
	lang   language.Tag
}

func (p *bundleProvider) GetMessage(key string) string {
	p.bundle.mu.RLock()
	defer p.bundle.mu.RUnlock()

	if msg, ok := p.bundle.translations[p.lang][key]; ok {
		return msg
	}
	if msg, ok := p.bundle.translations[p.bundle.defaultLang][key]; ok {
		return msg
	}

	return key
}

// NewError creates a new translatable error with a key
func NewError(key string) *TrError {
	return &TrError{
		sentinel: errors.New(key),
		key:      key,
	}
}

// Error returns the message in the default language, formatted with args if provided
func (e *TrError) Error() string {
	return e.Format(getDefaultProvider())
}

// Format returns the message resolved by provider, formatted with args if provided
func (e *TrError) Format(provider MessageProvider) string {
	msg := e.key
	if provider != nil {
		msg = provider.GetMessage(e.key)
	}
	if len(e.args) > 0 {
		msg = fmt.Sprintf(msg, e.args...)
	}

	if e.wrapped != nil {
		var te TranslatableError
		if errors.As(e.wrapped, &te) {
			return fmt.Sprintf("%s: %s", msg, te.Format(provider))
		}
		return fmt.Sprintf("%s: %v", msg, e.wrapped)
	}

	return msg
}

// WithArgs returns a copy of the error with format arguments
func (e *TrError) WithArgs(args ...interface{}) TranslatableError {
	return &TrError{
		sentinel: e.sentinel,
		key:      e.key,
		args:     args,
		wrapped:  e.wrapped,
	}
}

// Wrap returns a new error that wraps another error
func (e *TrError) Wrap(err error) TranslatableError {
	return &TrError{
		sentinel: e.sentinel,
		key:      e.key,
		args:     e.args,
		wrapped:  err,
	}
}

// Is implements errors.Is for comparison with the sentinel error
func (e *TrError) Is(target error) bool {
	if t, ok := target.(*TrError); ok {
		return e.sentinel == t.sentinel
	}

	return target == e.sentinel
}

// Key returns the translation key
func (e *TrError) Key() string {
	return e.key
}

// Args returns the format arguments
func (e *TrError) Args() []interface{} {
	return e.args
}

// Unwrap returns the wrapped error
func (e *TrError) Unwrap() error {
	return e.wrapped
}

var (
	defaultProvider    MessageProvider
	defaultProviderMux sync.RWMutex
)

// SetDefaultMessageProvider replaces the provider used by TrError.Error. Passing nil restores the
// English provider of the default bundle.
func SetDefaultMessageProvider(p MessageProvider) {
	defaultProviderMux.Lock()
	defer defaultProviderMux.Unlock()
	defaultProvider = p
}

func getDefaultProvider() MessageProvider {
	defaultProviderMux.RLock()
	p := defaultProvider
	defaultProviderMux.RUnlock()
	if p != nil {
		return p
	}

	return Default().Provider(language.English)
}
