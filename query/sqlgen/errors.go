package sqlgen

import (
	"errors"
	"fmt"
)

// Error types for statement generation.
var (
	// ErrMissingPredicate is returned when an update or delete is generated
	// without an explicit predicate.
	ErrMissingPredicate = errors.New("missing predicate")

	// ErrSchemaMismatch is returned when a record instance does not
	// structurally match its schema.
	ErrSchemaMismatch = errors.New("record does not match schema")
)

// MissingPredicateError guards against accidental full-table mutation: it
// names the operation that was generated without a predicate.
type MissingPredicateError struct {
	Operation Operation
	Table     string
}

// Error implements the error interface.
func (e *MissingPredicateError) Error() string {
	return fmt.Sprintf("%s on %q requires an explicit predicate", e.Operation, e.Table)
}

// Is reports whether the error matches ErrMissingPredicate.
func (e *MissingPredicateError) Is(target error) bool {
	return target == ErrMissingPredicate
}

// SchemaMismatchError describes a structural mismatch (field name or count)
// between a record instance and its schema.
type SchemaMismatchError struct {
	Table  string
	Detail string
}

// Error implements the error interface.
func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("table %q: record does not match schema: %s", e.Table, e.Detail)
}

// Is reports whether the error matches ErrSchemaMismatch.
func (e *SchemaMismatchError) Is(target error) bool {
	return target == ErrSchemaMismatch
}
