// Package libbundle provides the plugin framework for the bundler CLI.
//
// This file contains:
//   - ConfigError: a recoverable, user-facing configuration error
//   - IsConfigError: helper to classify errors at the CLI boundary
//
// A ConfigError aborts the current command cleanly; anything else that
// escapes the framework is treated as an unexpected fault.
package libbundle

import (
	"errors"
	"fmt"
)

// ConfigError represents a recoverable configuration failure: a flag value,
// environment variable or config file supplied by the user that failed
// validation. The CLI top-level handler prints the message and terminates
// the current command without reporting an internal crash.
type ConfigError struct {
	// Field is the flag or environment variable the error refers to.
	Field string
	// Value is the offending value. Omitted from the message when nil.
	Value interface{}
	// Reason describes the failure. May span multiple lines.
	Reason string
	// Err is the underlying cause, if any.
	Err error
}

func (e *ConfigError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("configuration error in field '%s': %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("configuration error in field '%s': %s (value: %v)", e.Field, e.Reason, e.Value)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a ConfigError for the given field.
//
// Example:
//
//	return libbundle.NewConfigError("replace", "entries must be key=value pairs")
func NewConfigError(field, format string, args ...interface{}) *ConfigError {
	return &ConfigError{
		Field:  field,
		Reason: fmt.Sprintf(format, args...),
	}
}

// IsConfigError reports whether err is, or wraps, a ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
