package util

import (
	"github.com/pingcap/errors"
)

type malformedInputErr interface {
	malformed()
}

type malformedInputWrapper struct {
	error
}

func (malformedInputWrapper) malformed() {}

func (w malformedInputWrapper) Unwrap() error { return w.error }

// WrapMalformedInputError marks an error as caused by an input record that
// can't be parsed. Such errors are never recovered from.
func WrapMalformedInputError(err error) error {
	if err == nil {
		return nil
	}
	return malformedInputWrapper{err}
}

// IsMalformedInputError checks if an error is wrapped by
// WrapMalformedInputError. It supports pingcap/errors package.
func IsMalformedInputError(err error) bool {
	for err != nil {
		if _, ok := err.(malformedInputErr); ok {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}

// MalformedInputf creates a malformed input error with the given format.
func MalformedInputf(format string, args ...any) error {
	return WrapMalformedInputError(errors.Errorf(format, args...))
}
