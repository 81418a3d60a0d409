package client

import (
	"fmt"
	"math"

	"github.com/kingler-db/kingler-go/query/sqlgen"
	"github.com/kingler-db/kingler-go/runtime/types"
	"github.com/kingler-db/kingler-go/schema"
)

// Bind converts a record instance's field values into bound parameters in
// schema field order. Placeholders and bound values must align positionally,
// so the order here is the single most safety-critical invariant in the
// pipeline: it is exactly the schema's column order.
func Bind(s *schema.TableSchema, rec types.Record) ([]types.BoundValue, error) {
	fields := rec.DescribeFields()
	values := rec.Values()

	if len(fields) != len(s.Columns) {
		return nil, &sqlgen.SchemaMismatchError{
			Table:  s.Table,
			Detail: fmt.Sprintf("record describes %d fields, schema has %d columns", len(fields), len(s.Columns)),
		}
	}
	if len(values) != len(fields) {
		return nil, &sqlgen.SchemaMismatchError{
			Table:  s.Table,
			Detail: fmt.Sprintf("record supplies %d values for %d fields", len(values), len(fields)),
		}
	}

	bound := make([]types.BoundValue, len(s.Columns))
	for i, col := range s.Columns {
		if fields[i].Name != col.Name {
			return nil, &sqlgen.SchemaMismatchError{
				Table:  s.Table,
				Detail: fmt.Sprintf("field %d is %q, schema column is %q", i, fields[i].Name, col.Name),
			}
		}
		value, err := bindValue(values[i], col.FieldDescriptor)
		if err != nil {
			return nil, err
		}
		bound[i] = value
	}
	return bound, nil
}

// bindValue converts one runtime value into the BoundValue variant matching
// the field's declared semantic type. The runtime type must agree with the
// declaration; the only accepted transformations are the documented width
// collapses to int64/float64. A nil value binds as SQL NULL; NOT NULL
// enforcement belongs to the backend.
func bindValue(v interface{}, field types.FieldDescriptor) (types.BoundValue, error) {
	if v == nil {
		return types.NullValue(), nil
	}

	switch field.Type {
	case types.TypeString:
		if s, ok := v.(string); ok {
			return types.TextValue(s), nil
		}
	case types.TypeBool:
		if b, ok := v.(bool); ok {
			return types.BooleanValue(b), nil
		}
	case types.TypeInt8:
		if i, ok := v.(int8); ok {
			return types.IntegerValue(int64(i)), nil
		}
	case types.TypeInt16:
		if i, ok := v.(int16); ok {
			return types.IntegerValue(int64(i)), nil
		}
	case types.TypeInt32:
		if i, ok := v.(int32); ok {
			return types.IntegerValue(int64(i)), nil
		}
	case types.TypeInt64:
		switch i := v.(type) {
		case int64:
			return types.IntegerValue(i), nil
		case int:
			return types.IntegerValue(int64(i)), nil
		}
	case types.TypeUint8:
		if i, ok := v.(uint8); ok {
			return types.IntegerValue(int64(i)), nil
		}
	case types.TypeUint16:
		if i, ok := v.(uint16); ok {
			return types.IntegerValue(int64(i)), nil
		}
	case types.TypeUint32:
		if i, ok := v.(uint32); ok {
			return types.IntegerValue(int64(i)), nil
		}
	case types.TypeUint64:
		if i, ok := v.(uint64); ok {
			if i > math.MaxInt64 {
				return types.BoundValue{}, &TypeMismatchError{
					Field:    field.Name,
					Declared: field.Type,
					Got:      fmt.Sprintf("uint64 value %d overflows INTEGER", i),
				}
			}
			return types.IntegerValue(int64(i)), nil
		}
	case types.TypeFloat32:
		if f, ok := v.(float32); ok {
			return types.RealValue(float64(f)), nil
		}
	case types.TypeFloat64:
		if f, ok := v.(float64); ok {
			return types.RealValue(f), nil
		}
	case types.TypeBytes:
		if b, ok := v.([]byte); ok {
			return types.BytesValue(b), nil
		}
	}

	return types.BoundValue{}, &TypeMismatchError{
		Field:    field.Name,
		Declared: field.Type,
		Got:      fmt.Sprintf("%T", v),
	}
}

// bindPredicate resolves a caller-supplied predicate against the schema and
// binds its value through the referenced column's declared type.
func bindPredicate(s *schema.TableSchema, pred types.Predicate) (*sqlgen.Predicate, error) {
	col, ok := s.Column(pred.Field)
	if !ok {
		return nil, &sqlgen.SchemaMismatchError{
			Table:  s.Table,
			Detail: fmt.Sprintf("predicate references unknown column %q", pred.Field),
		}
	}
	value, err := bindValue(pred.Value, col.FieldDescriptor)
	if err != nil {
		return nil, err
	}
	return &sqlgen.Predicate{Column: col.Name, Value: value}, nil
}
