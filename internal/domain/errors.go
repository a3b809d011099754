package domain

import (
	"errors"
	"fmt"
)

var (
	ErrVendorUnavailable      = errors.New("vendor unavailable")
	ErrVendorDataInvalid      = errors.New("vendor data invalid")
	ErrVendorTimeout          = fmt.Errorf("%w: job timed out", ErrVendorUnavailable)
	ErrPreconditionFailed     = errors.New("precondition failed")
	ErrPersistenceUnavailable = errors.New("persistence unavailable")
	ErrInputInvalid           = errors.New("invalid input")
	ErrTooManyKeywords        = fmt.Errorf("%w: too many keywords", ErrInputInvalid)
	ErrNotFound               = errors.New("not found")
)

// Invalid wraps ErrInputInvalid with a caller-facing reason.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInputInvalid, fmt.Sprintf(format, args...))
}
