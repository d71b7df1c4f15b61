package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dshills/rebind/internal/config/loader"
)

// Errors returned by configuration operations.
var (
	// ErrFileNotFound indicates the profile file doesn't exist.
	ErrFileNotFound = loader.ErrNotFound

	// ErrUnsupportedFormat indicates the profile file extension is unknown.
	ErrUnsupportedFormat = loader.ErrUnsupportedFormat

	// ErrValidationFailed indicates the profile failed validation.
	ErrValidationFailed = errors.New("validation failed")

	// ErrTypeMismatch indicates an override value has the wrong type.
	ErrTypeMismatch = errors.New("type mismatch")
)

// ParseError represents an error while parsing a profile file.
type ParseError = loader.ParseError

// ValidationError describes a validation failure for a setting.
type ValidationError struct {
	// Path is the setting path that failed validation.
	Path string
	// Message describes the validation error.
	Message string
	// Value is the invalid value.
	Value any
	// Code categorizes the validation error.
	Code ValidationErrorCode
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (value: %v)", e.Path, e.Message, e.Value)
}

// Is matches ErrValidationFailed.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// ValidationErrorCode categorizes validation errors.
type ValidationErrorCode uint8

const (
	// ErrCodeRequiredMissing indicates a required setting is missing.
	ErrCodeRequiredMissing ValidationErrorCode = iota
	// ErrCodeOutOfRange indicates a numeric value is out of range.
	ErrCodeOutOfRange
	// ErrCodeInvalidEnum indicates the value is not in the allowed set.
	ErrCodeInvalidEnum
	// ErrCodeInvalidButton indicates a button spec doesn't parse.
	ErrCodeInvalidButton
)

// String returns a human-readable name for the error code.
func (c ValidationErrorCode) String() string {
	switch c {
	case ErrCodeRequiredMissing:
		return "required_missing"
	case ErrCodeOutOfRange:
		return "out_of_range"
	case ErrCodeInvalidEnum:
		return "invalid_enum"
	case ErrCodeInvalidButton:
		return "invalid_button"
	default:
		return "unknown"
	}
}

// ValidationErrors collects every problem found in a profile.
type ValidationErrors []*ValidationError

// Error joins the individual messages.
func (errs ValidationErrors) Error() string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Error()
	}
	return fmt.Sprintf("%d validation error(s): %s", len(errs), strings.Join(msgs, "; "))
}

// Is matches ErrValidationFailed.
func (errs ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

// TypeError is returned when an override has the wrong type.
type TypeError struct {
	// Path is the setting path.
	Path string
	// Expected is the expected type name.
	Expected string
	// Actual is the value received.
	Actual any
}

// Error implements the error interface.
func (e *TypeError) Error() string {
	return fmt.Sprintf("type error for %s: expected %s, got %T (%v)", e.Path, e.Expected, e.Actual, e.Actual)
}

// Is implements error matching for TypeError.
func (e *TypeError) Is(target error) bool {
	return target == ErrTypeMismatch
}
