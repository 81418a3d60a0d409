package client

import (
	"errors"
	"fmt"

	"github.com/kingler-db/kingler-go/runtime/types"
)

// ErrTypeMismatch is returned when a field's runtime value disagrees with
// its declared semantic type.
var ErrTypeMismatch = errors.New("value does not match declared field type")

// TypeMismatchError names the field whose runtime value disagrees with its
// declared semantic type. No coercion is attempted; the caller supplies the
// correctly typed value.
type TypeMismatchError struct {
	Field    string
	Declared types.SemanticType
	Got      string
}

// Error implements the error interface.
func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("field %q declared %s, got %s", e.Field, e.Declared, e.Got)
}

// Is reports whether the error matches ErrTypeMismatch.
func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}
