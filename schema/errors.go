package schema

import (
	"errors"
	"fmt"

	"github.com/kingler-db/kingler-go/runtime/types"
)

// Error types for schema derivation.
var (
	// ErrUnsupportedType is returned when a field's semantic type has no
	// SQL column mapping.
	ErrUnsupportedType = errors.New("unsupported field type")

	// ErrEmptySchema is returned when a record type declares zero fields.
	ErrEmptySchema = errors.New("record type has no fields")

	// ErrDuplicateField is returned when a record type declares the same
	// field name twice.
	ErrDuplicateField = errors.New("duplicate field name")

	// ErrMultiplePrimaryKeys is returned when more than one field is marked
	// as the primary key.
	ErrMultiplePrimaryKeys = errors.New("multiple primary key fields")
)

// UnsupportedTypeError names the field whose declared type cannot be mapped.
type UnsupportedTypeError struct {
	Field    string
	Declared types.SemanticType
}

// Error implements the error interface.
func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("field %q: unsupported field type %s", e.Field, e.Declared)
}

// Is reports whether the error matches ErrUnsupportedType.
func (e *UnsupportedTypeError) Is(target error) bool {
	return target == ErrUnsupportedType
}

// EmptySchemaError names the record type that declared zero fields.
type EmptySchemaError struct {
	Table string
}

// Error implements the error interface.
func (e *EmptySchemaError) Error() string {
	return fmt.Sprintf("record type for table %q has no fields", e.Table)
}

// Is reports whether the error matches ErrEmptySchema.
func (e *EmptySchemaError) Is(target error) bool {
	return target == ErrEmptySchema
}
