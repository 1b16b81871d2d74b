package sys

import (
	"errors"
	"io/fs"

	errs "github.com/srlehn/dghost/internal/errors"
)

// boundary contract violations, never retried
var ErrContract = errors.New(`boundary contract violation`)

// resource failures
var (
	ErrNotFound           = errors.New(`asset not found`)
	ErrNamespace          = errors.New(`path outside of asset namespace`)
	ErrExhausted          = errors.New(`too many open assets`)
	ErrBadHandle          = errors.New(`invalid asset handle`)
	ErrIO                 = errors.New(`asset i/o failure`)
	ErrDisplayUnavailable = errors.New(`display unavailable`)
	ErrDisplayBusy        = errors.New(`display busy`)
	ErrInputClosed        = errors.New(`keyboard input closed`)
)

func errorf(format string, a ...any) error { return errs.Errorf(format, a...) }

func contractErrorf(format string, a ...any) error {
	return errs.Mark(ErrContract, errs.Errorf(format, a...))
}

// assetError maps asset store errors onto the boundary taxonomy.
func assetError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrNamespace), errors.Is(err, ErrIO):
		return errs.New(err)
	case errors.Is(err, fs.ErrNotExist):
		return errs.Mark(ErrNotFound, err)
	case errors.Is(err, fs.ErrInvalid), errors.Is(err, fs.ErrPermission):
		return errs.Mark(ErrNamespace, err)
	}
	return errs.Mark(ErrIO, err)
}
