package apperror

import (
	"errors"
	"fmt"
)

// Error kinds shared by every usecase. Specific errors wrap one of these so
// the delivery layer can map them to HTTP status codes with errors.Is.
var (
	ErrNotFound             = errors.New("not found")
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrInvalidTransition    = errors.New("invalid transition")
	ErrAlreadyPresent       = errors.New("already present")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("forbidden")
	ErrUnsupportedOperation = errors.New("unsupported operation")
)

// Wrap builds an error carrying the given kind.
func Wrap(kind error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), kind)
}
