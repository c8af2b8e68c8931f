package models

import (
	"errors"
	"fmt"
)

const (
	CodeValidation          = "VALIDATION_ERROR"
	CodeNotFound            = "NOT_FOUND"
	CodeInsufficientCredits = "INSUFFICIENT_CREDITS"
	CodeAIUnavailable       = "AI_UNAVAILABLE"
	CodeInternal            = "INTERNAL_ERROR"
)

// AppError carries a machine-readable code alongside the user-facing message.
type AppError struct {
	Code    string
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

func NewValidationError(message string) *AppError {
	return &AppError{Code: CodeValidation, Message: message}
}

func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

func NewInsufficientCreditsError(needed, available int) *AppError {
	return &AppError{
		Code:    CodeInsufficientCredits,
		Message: fmt.Sprintf("%d credits needed, %d available", needed, available),
	}
}

func NewUpstreamError(message string, err error) *AppError {
	return &AppError{Code: CodeAIUnavailable, Message: message, Err: err}
}

func NewInternalError(err error) *AppError {
	return &AppError{Code: CodeInternal, Message: "Internal server error", Err: err}
}

// ErrorCode returns the AppError code in err's chain, or CodeInternal.
func ErrorCode(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return CodeInternal
}
