package apperrors

import (
	"net/http"
)

// Factories for the common business-logic failures. Handlers and services use
// these instead of building AppError values by hand.

// ErrNotFound converts a repository miss (e.g. gorm.ErrRecordNotFound) into a 404.
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

// NewNotFoundError builds a fresh 404 without an underlying error.
func NewNotFoundError(domain, message string) *AppError {
	return New(CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrAlreadyExists reports a uniqueness violation as a 409.
func ErrAlreadyExists(err error, domain, message string) *AppError {
	return Wrap(err, CodeAlreadyExists, domain, message, http.StatusConflict)
}

// NewConflictError reports a state conflict as a 409.
func NewConflictError(domain, message string) *AppError {
	return New(CodeConflict, domain, message, http.StatusConflict)
}

// NewInvalidStatusError reports an illegal lifecycle transition.
func NewInvalidStatusError(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// NewInvalidOperationError reports an operation the current state does not allow.
func NewInvalidOperationError(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}
