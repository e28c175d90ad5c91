package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrUnbalanced indicates that a journal entry's debit and credit totals differ.
// This is the one failure a caller is expected to correct and retry.
var ErrUnbalanced = errors.New("journal entry is unbalanced")

// ErrConflict indicates the operation conflicts with the current state of the
// resource (e.g. editing a posted entry, duplicate opening balance).
var ErrConflict = errors.New("resource state conflict")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// AppError wraps a lower-level error with an HTTP-ish status code and a message.
// The repository layer uses it for persistence failures.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping the given cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
