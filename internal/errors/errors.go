// Package errors provides error handling utilities.
package errors

import (
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeInput indicates an input validation error
	TypeInput Type = "INPUT_ERROR"

	// TypeNegativeDuration indicates a negative rental or service duration
	TypeNegativeDuration Type = "NEGATIVE_DURATION"

	// TypeMissingRate indicates a required tier or rate is not configured
	TypeMissingRate Type = "MISSING_RATE"

	// TypeInvalidShiftCount indicates a shift count outside {1, 2, 3}
	TypeInvalidShiftCount Type = "INVALID_SHIFT_COUNT"

	// TypeInvalidFrequency indicates an unsupported service frequency
	TypeInvalidFrequency Type = "INVALID_FREQUENCY"

	// TypeUnresolvableTier indicates the optimizer was given no usable tiers
	TypeUnresolvableTier Type = "UNRESOLVABLE_TIER"

	// TypeParsing indicates a catalog parsing error
	TypeParsing Type = "PARSING_ERROR"

	// TypeConfig indicates a configuration error
	TypeConfig Type = "CONFIG_ERROR"

	// TypeNotFound indicates a resource not found error
	TypeNotFound Type = "NOT_FOUND"

	// TypeInternal indicates an internal error
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error represents a domain error with context
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Type, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is checks if the error is of a specific type
func (e *Error) Is(t Type) bool {
	return e.Type == t
}

// WithContext adds context to the error
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates a new error
func New(errType Type, message string) *Error {
	return &Error{
		Type:    errType,
		Message: message,
	}
}

// Newf creates a new formatted error
func Newf(errType Type, format string, args ...interface{}) *Error {
	return &Error{
		Type:    errType,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with context
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

// IsType checks if an error is of a specific type
func IsType(err error, t Type) bool {
	if e, ok := err.(*Error); ok {
		return e.Type == t
	}
	return false
}

// Input creates an input error
func Input(message string) *Error {
	return New(TypeInput, message)
}

// NegativeDuration creates a negative duration error
func NegativeDuration(message string) *Error {
	return New(TypeNegativeDuration, message)
}

// MissingRate creates a missing rate error
func MissingRate(rate string) *Error {
	return Newf(TypeMissingRate, "rate not configured: %s", rate)
}

// InvalidShiftCount creates an invalid shift count error
func InvalidShiftCount(shiftCount int) *Error {
	return Newf(TypeInvalidShiftCount, "shift count must be 1, 2, or 3, got %d", shiftCount)
}

// InvalidFrequency creates an invalid frequency error
func InvalidFrequency(frequency string) *Error {
	return Newf(TypeInvalidFrequency, "unsupported times per week: %s", frequency)
}

// UnresolvableTier creates an unresolvable tier error
func UnresolvableTier(message string) *Error {
	return New(TypeUnresolvableTier, message)
}

// Parsing creates a parsing error
func Parsing(message string, cause error) *Error {
	return Wrap(TypeParsing, message, cause)
}

// NotFound creates a not found error
func NotFound(resourceType, identifier string) *Error {
	return Newf(TypeNotFound, "%s not found: %s", resourceType, identifier)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}
