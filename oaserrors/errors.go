package oaserrors

import (
	"errors"
	"fmt"
)

// Sentinel errors for use with errors.Is().
// These allow quick checks without type assertions.
var (
	// ErrParse indicates a source document could not be decoded.
	ErrParse = errors.New("parse error")

	// ErrInvalidType indicates a schema declared a type outside the valid set.
	ErrInvalidType = errors.New("invalid type")

	// ErrShape indicates a node value had the wrong shape for its key.
	ErrShape = errors.New("shape error")

	// ErrConversion indicates a schema conversion could not be performed.
	ErrConversion = errors.New("conversion error")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// ParseError represents a failure to decode a source document.
type ParseError struct {
	// Path is the file path or source identifier
	Path string
	// Format is the detected source format ("json" or "yaml"), if known
	Format string
	// Message describes the parsing failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	msg := "parse error"
	if e.Path != "" {
		msg += " in " + e.Path
	}
	if e.Format != "" {
		msg += " (" + e.Format + ")"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ParseError) Is(target error) bool {
	return target == ErrParse
}

// InvalidTypeError is returned when a schema's type is present but is not
// one of integer, number, string, boolean, object, or array.
// It aborts the whole conversion; no partial result is produced.
type InvalidTypeError struct {
	// Type is the offending type value
	Type string
	// Path is the location of the schema node (e.g., "#/properties/id")
	Path string
}

// Error returns a human-readable error message.
func (e *InvalidTypeError) Error() string {
	msg := fmt.Sprintf("type %q is not a valid type", e.Type)
	if e.Path != "" {
		msg += " at " + e.Path
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *InvalidTypeError) Is(target error) bool {
	return target == ErrInvalidType
}

// ShapeError represents a node value whose kind does not fit the key it is
// stored under, such as a list where a schema object is expected.
type ShapeError struct {
	// Path is the location of the node holding the key
	Path string
	// Key is the offending key
	Key string
	// Expected describes the accepted kinds (e.g., "object or array")
	Expected string
	// Actual is the kind that was found
	Actual string
}

// Error returns a human-readable error message.
func (e *ShapeError) Error() string {
	msg := "shape error"
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Key != "" {
		msg += fmt.Sprintf(": %q", e.Key)
	}
	if e.Expected != "" {
		msg += " must be " + e.Expected
	}
	if e.Actual != "" {
		msg += ", got " + e.Actual
	}
	return msg
}

// Is reports whether target matches this error type.
func (e *ShapeError) Is(target error) bool {
	return target == ErrShape
}

// ConversionError represents a schema that could not be converted at all,
// for example because it was absent after preparation.
type ConversionError struct {
	// Path is the location where conversion failed
	Path string
	// Message describes the conversion failure
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConversionError) Error() string {
	msg := "conversion error"
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConversionError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConversionError) Is(target error) bool {
	return target == ErrConversion
}

// ConfigError represents an invalid configuration or input.
// This includes invalid options, missing required inputs, and conflicting settings.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
