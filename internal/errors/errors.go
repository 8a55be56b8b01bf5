// Package errors provides sentinel errors and user-facing error rendering
// for the velac CLI.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for known conditions.
var (
	// ErrValidation indicates a manifest or configuration validation
	// failure.
	ErrValidation = errors.New("validation error")

	// ErrNotFound indicates a project, module, or file was not found.
	ErrNotFound = errors.New("not found")

	// ErrNoToolchain indicates no toolchain is registered for the
	// requested target.
	ErrNoToolchain = errors.New("no toolchain")
)

// DetailError captures structured error information for user-facing
// failures.
type DetailError struct {
	// Type is the error category (required).
	Type string

	// Message is the specific description (required).
	Message string

	// Location is the file path the error is attributed to (optional).
	Location string

	// Hint provides actionable guidance (optional).
	Hint string

	// Cause is the underlying error (optional).
	Cause error
}

// Error implements the error interface.
func (e *DetailError) Error() string {
	var b strings.Builder

	b.WriteString("Error: ")
	b.WriteString(e.Type)
	b.WriteString("\n")

	if e.Location != "" {
		b.WriteString("  Location: ")
		b.WriteString(e.Location)
		b.WriteString("\n")
	}

	b.WriteString("\n  ")
	b.WriteString(e.Message)
	b.WriteString("\n")

	if e.Hint != "" {
		b.WriteString("\nHint: ")
		b.WriteString(e.Hint)
		b.WriteString("\n")
	}

	return b.String()
}

// Unwrap returns the underlying error.
func (e *DetailError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a validation error with details.
func NewValidationError(message, location, hint string) error {
	return &DetailError{
		Type:     "validation failed",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrValidation,
	}
}

// NewNotFoundError creates a not found error with details.
func NewNotFoundError(message, location, hint string) error {
	return &DetailError{
		Type:     "not found",
		Message:  message,
		Location: location,
		Hint:     hint,
		Cause:    ErrNotFound,
	}
}

// NewNoToolchainError creates an error for an unregistered target.
func NewNoToolchainError(target string, available []string) error {
	hint := "build with a velac distribution that bundles this target"
	if len(available) > 0 {
		hint = fmt.Sprintf("available targets: %s", strings.Join(available, ", "))
	}
	return &DetailError{
		Type:    "no toolchain",
		Message: fmt.Sprintf("no toolchain registered for target %q", target),
		Hint:    hint,
		Cause:   ErrNoToolchain,
	}
}

// Wrap wraps an error with a sentinel error type.
func Wrap(sentinel error, message string) error {
	return fmt.Errorf("%s: %w", message, sentinel)
}
