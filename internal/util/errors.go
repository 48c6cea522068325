// internal/util/errors.go
package util

import "errors"

// Common application-specific errors.
var (
	ErrNotFound          = errors.New("resource not found")
	ErrInvalidInput      = errors.New("invalid input provided")
	ErrDepositNotFound   = errors.New("deposit not found")
	ErrDepositExists     = errors.New("deposit number already exists")
	ErrEventNotPublished = errors.New("creation event not published")
)

// IsError reports whether err matches the given sentinel error.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}
