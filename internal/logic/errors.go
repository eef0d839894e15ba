package logic

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound covers entities that are absent or addressed outside
	// their parent scope.
	ErrNotFound = errors.New("resource not found")

	// ErrForbidden covers authenticated callers lacking the required
	// authorship, ownership or membership.
	ErrForbidden = errors.New("you do not have permission to perform this action")

	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrInvalidRefreshToken  = errors.New("invalid or expired refresh token")
	ErrEmailTaken           = errors.New("email is already registered")
	ErrDuplicateContributor = errors.New("user is already a contributor on this project")
)

// ValidationError reports a malformed or missing field on create/update.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validationf builds a ValidationError from a format string.
func Validationf(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
