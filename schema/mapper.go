package schema

import "github.com/kingler-db/kingler-go/runtime/types"

// MapType maps a field's semantic type to its normalized SQL column type.
// All integer widths, signed and unsigned, collapse to INTEGER and both
// float widths collapse to REAL; the loss of width information is accepted,
// not hidden. Unrecognized types fail with an UnsupportedTypeError naming
// the field.
func MapType(field types.FieldDescriptor) (types.SQLType, error) {
	switch field.Type {
	case types.TypeString:
		return types.SQLText, nil
	case types.TypeBool:
		return types.SQLBoolean, nil
	case types.TypeInt8, types.TypeInt16, types.TypeInt32, types.TypeInt64,
		types.TypeUint8, types.TypeUint16, types.TypeUint32, types.TypeUint64:
		return types.SQLInteger, nil
	case types.TypeFloat32, types.TypeFloat64:
		return types.SQLReal, nil
	case types.TypeBytes:
		return types.SQLBlob, nil
	default:
		return "", &UnsupportedTypeError{Field: field.Name, Declared: field.Type}
	}
}
