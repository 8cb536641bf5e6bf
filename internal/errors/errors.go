package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ErrorKind classifies the failure mode of an upstream call.
type ErrorKind string

const (
	// KindTransport covers connection failures and non-2xx HTTP statuses.
	KindTransport ErrorKind = "transport"
	// KindTimeout covers deadline and network-timeout failures.
	KindTimeout ErrorKind = "timeout"
	// KindUnknown covers everything that could not be classified.
	KindUnknown ErrorKind = "unknown"
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
//
// Returns:
//   - string: The error message string.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
// It allows for the creation of configuration-specific errors with dynamic
// content.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// UpstreamError encapsulates a failed call to an external data source while
// preserving the original cause. The Kind field allows callers to distinguish
// transport failures from timeouts without inspecting error strings.
type UpstreamError struct {
	// Source is the name of the upstream source that failed.
	Source string
	// Kind classifies the failure mode.
	Kind ErrorKind
	// Cause is the underlying error that triggered this upstream error.
	Cause error
}

// Error returns a formatted message describing the upstream failure.
//
// Returns:
//   - string: The error message string.
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %q failed (%s): %v", e.Source, e.Kind, e.Cause)
}

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
//
// Returns:
//   - error: The underlying cause of the UpstreamError.
func (e *UpstreamError) Unwrap() error { return e.Cause }

// NewUpstreamError creates an UpstreamError for the named source.
//
// Parameters:
//   - source: The name of the upstream source.
//   - kind: The failure classification.
//   - cause: The underlying error.
//
// Returns:
//   - error: A new UpstreamError instance.
func NewUpstreamError(source string, kind ErrorKind, cause error) error {
	return &UpstreamError{Source: source, Kind: kind, Cause: cause}
}

// KindOf extracts the ErrorKind from an error chain. Errors that do not wrap
// an UpstreamError are classified as KindUnknown, except for context deadline
// errors which map to KindTimeout.
//
// Parameters:
//   - err: The error to classify.
//
// Returns:
//   - ErrorKind: The failure classification.
func KindOf(err error) ErrorKind {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue.Kind
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return KindTimeout
	}
	return KindUnknown
}

// ProcessingError encapsulates a failure of the combination step while
// preserving the original cause. Unlike upstream failures, a ProcessingError
// is fatal for the request and propagates to the caller.
type ProcessingError struct {
	// Cause is the underlying error that triggered this processing error.
	Cause error
}

// Error returns the error message from the underlying cause.
//
// Returns:
//   - string: The error message string from the wrapped error.
func (e *ProcessingError) Error() string {
	return fmt.Sprintf("processing failed: %v", e.Cause)
}

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
//
// Returns:
//   - error: The underlying cause of the ProcessingError.
func (e *ProcessingError) Unwrap() error { return e.Cause }

// ValidationError represents an input validation failure. It identifies which
// field failed validation and provides a human-readable explanation.
type ValidationError struct {
	// Field is the name of the field that failed validation.
	Field string
	// Message explains the validation failure.
	Message string
}

// Error returns a formatted message describing the validation failure.
//
// Returns:
//   - string: The error message string.
func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for %q: %s", e.Field, e.Message)
}

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
//
// Parameters:
//   - err: The error to check.
//
// Returns:
//   - bool: true if the error is a context error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
