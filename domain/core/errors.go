package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Upload errors
	ErrUnsupportedFormat = errors.New("unsupported file format")
	ErrParse             = errors.New("failed to parse tabular data")

	// Analysis errors
	ErrInsufficientData = errors.New("insufficient data for analysis")
	ErrConstantInput    = errors.New("constant input: correlation undefined")
	ErrInvalidSelection = errors.New("invalid variable selection")
	ErrUnknownMethod    = errors.New("unknown correlation method")

	// Localization errors
	ErrUnsupportedLanguage = errors.New("unsupported language")

	// Not found errors
	ErrNotFound        = errors.New("resource not found")
	ErrColumnNotFound  = fmt.Errorf("%w: column", ErrNotFound)
	ErrDatasetNotFound = fmt.Errorf("%w: dataset", ErrNotFound)
)

// Error constructors with context
func NewParseError(detail string, cause error) error {
	if cause != nil {
		return fmt.Errorf("%w: %s: %v", ErrParse, detail, cause)
	}
	return fmt.Errorf("%w: %s", ErrParse, detail)
}

func NewFormatError(extension string) error {
	return fmt.Errorf("%w: %q", ErrUnsupportedFormat, extension)
}

func NewSelectionError(reason string) error {
	return fmt.Errorf("%w: %s", ErrInvalidSelection, reason)
}

func NewInsufficientDataError(n int) error {
	return fmt.Errorf("%w: %d valid paired observations, need at least 2", ErrInsufficientData, n)
}

func NewConstantInputError(column string) error {
	return fmt.Errorf("%w: column %s has zero variance", ErrConstantInput, column)
}

func NewLanguageError(lang string) error {
	return fmt.Errorf("%w: %q", ErrUnsupportedLanguage, lang)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsUploadError(err error) bool {
	return errors.Is(err, ErrUnsupportedFormat) || errors.Is(err, ErrParse)
}

func IsAnalysisError(err error) bool {
	return errors.Is(err, ErrInsufficientData) ||
		errors.Is(err, ErrConstantInput) ||
		errors.Is(err, ErrInvalidSelection) ||
		errors.Is(err, ErrUnknownMethod)
}
