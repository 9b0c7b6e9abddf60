package errs

import (
	"errors"

	"github.com/napalu/jsonhelp/i18n"
)

// ErrWithProvider wraps a TranslatableError with a specific MessageProvider
type ErrWithProvider struct {
	te       i18n.TranslatableError
	provider i18n.MessageProvider
}

// WithProvider renders err through provider when err is (or wraps) a TranslatableError. Other errors are
// returned unchanged.
func WithProvider(err error, provider i18n.MessageProvider) error {
	var te i18n.TranslatableError
	if err == nil || !errors.As(err, &te) {
		return err
	}

	return &ErrWithProvider{
		te:       te,
		provider: provider,
	}
}

func (e *ErrWithProvider) Error() string {
	return e.te.Format(e.provider)
}

func (e *ErrWithProvider) Unwrap() error {
	return e.te
}
