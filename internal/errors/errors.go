package errors

import (
	"errors"
	"fmt"

	"surveylens/domain/core"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   appErr,
		}
	}
	return &AppError{
		Code:    CodeFor(err),
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// GetCode returns the error code if it's an AppError, otherwise the code
// derived from the domain sentinel chain.
func GetCode(err error) string {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return CodeFor(err)
}

// Predefined error codes
const (
	CodeUnsupportedFormat   = "UNSUPPORTED_FORMAT"
	CodeParseError          = "PARSE_ERROR"
	CodeInsufficientData    = "INSUFFICIENT_DATA"
	CodeConstantInput       = "CONSTANT_INPUT"
	CodeInvalidSelection    = "INVALID_SELECTION"
	CodeUnknownMethod       = "UNKNOWN_METHOD"
	CodeUnsupportedLanguage = "UNSUPPORTED_LANGUAGE"
	CodeNotFound            = "NOT_FOUND"
	CodeConfigInvalid       = "CONFIG_INVALID"
	CodeInternalError       = "INTERNAL_ERROR"
)

// CodeFor maps a domain sentinel error onto its boundary code.
func CodeFor(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, core.ErrUnsupportedFormat):
		return CodeUnsupportedFormat
	case errors.Is(err, core.ErrParse):
		return CodeParseError
	case errors.Is(err, core.ErrInsufficientData):
		return CodeInsufficientData
	case errors.Is(err, core.ErrConstantInput):
		return CodeConstantInput
	case errors.Is(err, core.ErrInvalidSelection):
		return CodeInvalidSelection
	case errors.Is(err, core.ErrUnknownMethod):
		return CodeUnknownMethod
	case errors.Is(err, core.ErrUnsupportedLanguage):
		return CodeUnsupportedLanguage
	case errors.Is(err, core.ErrNotFound):
		return CodeNotFound
	default:
		return CodeInternalError
	}
}

// Common error constructors
func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

func InternalError(message string) *AppError {
	return New(CodeInternalError, message)
}
