package domain

import (
	"errors"
	"fmt"
)

// ErrorCode enumerates the failure kinds that cross component boundaries.
type ErrorCode string

const (
	CodeValidation         ErrorCode = "ValidationError"
	CodeUniqueConstraint   ErrorCode = "UniqueConstraintError"
	CodeNoDataFound        ErrorCode = "NoDataFoundError"
	CodeAuthentication     ErrorCode = "AuthenticationError"
	CodeSomethingWentWrong ErrorCode = "SomethingWentWrongError"
)

// Violation is a single field-level failure inside a structured error.
type Violation struct {
	Message string `json:"message"`
	Key     string `json:"key"`
}

// Error is the uniform structured failure value. Every operation fails with
// exactly one of these; transport adapters relay it without constructing new
// codes.
type Error struct {
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Details []Violation `json:"details,omitempty"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewValidationError reports malformed input with field-level details.
func NewValidationError(details []Violation) *Error {
	return &Error{
		Code:    CodeValidation,
		Message: "Validation error",
		Details: details,
	}
}

// NewUniqueConstraintError reports a violated uniqueness invariant.
func NewUniqueConstraintError(message string, details ...Violation) *Error {
	return &Error{Code: CodeUniqueConstraint, Message: message, Details: details}
}

// NewNoDataFoundError reports a missing target or related record.
func NewNoDataFoundError(message string, details ...Violation) *Error {
	return &Error{Code: CodeNoDataFound, Message: message, Details: details}
}

// NewAuthenticationError reports a credential mismatch. Callers use one
// generic message for unknown usernames and wrong passwords alike.
func NewAuthenticationError(message string) *Error {
	return &Error{Code: CodeAuthentication, Message: message}
}

// NewSomethingWentWrongError wraps unclassified failures.
func NewSomethingWentWrongError(message string, details ...Violation) *Error {
	return &Error{Code: CodeSomethingWentWrong, Message: message, Details: details}
}

// AsError returns err as a structured *Error, wrapping unclassified errors
// so the taxonomy is the only failure shape leaving a component.
func AsError(err error) *Error {
	var structured *Error
	if errors.As(err, &structured) {
		return structured
	}
	return NewSomethingWentWrongError(err.Error())
}
