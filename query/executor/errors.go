package executor

import (
	"errors"
	"fmt"
)

// Error types for backend execution.
var (
	// ErrUnsupportedBackend is returned for an unrecognized backend name.
	ErrUnsupportedBackend = errors.New("unsupported backend")

	// ErrConnection is returned when the connection target cannot be
	// reached.
	ErrConnection = errors.New("connection failed")

	// ErrExecution is returned when the backend reports a failure while
	// executing a statement.
	ErrExecution = errors.New("statement execution failed")
)

// UnsupportedBackendError names the backend that has no registered driver.
type UnsupportedBackendError struct {
	Backend string
}

// Error implements the error interface.
func (e *UnsupportedBackendError) Error() string {
	return fmt.Sprintf("unsupported backend %q", e.Backend)
}

// Is reports whether the error matches ErrUnsupportedBackend.
func (e *UnsupportedBackendError) Is(target error) bool {
	return target == ErrUnsupportedBackend
}

// ConnectionError wraps a failure to reach a connection target.
type ConnectionError struct {
	Target string
	Cause  error
}

// Error implements the error interface.
func (e *ConnectionError) Error() string {
	return fmt.Sprintf("failed to connect to %q: %v", e.Target, e.Cause)
}

// Unwrap returns the underlying driver error.
func (e *ConnectionError) Unwrap() error { return e.Cause }

// Is reports whether the error matches ErrConnection.
func (e *ConnectionError) Is(target error) bool {
	return target == ErrConnection
}

// ExecutionError surfaces a backend-reported failure verbatim: the driver's
// diagnostic text is attached, never swallowed.
type ExecutionError struct {
	Operation string
	Table     string
	Cause     error
}

// Error implements the error interface.
func (e *ExecutionError) Error() string {
	return fmt.Sprintf("%s on %q failed: %v", e.Operation, e.Table, e.Cause)
}

// Unwrap returns the underlying driver error.
func (e *ExecutionError) Unwrap() error { return e.Cause }

// Is reports whether the error matches ErrExecution.
func (e *ExecutionError) Is(target error) bool {
	return target == ErrExecution
}
