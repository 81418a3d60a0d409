// Package types provides the runtime types shared by the kingler mapping
// pipeline: semantic field types, normalized SQL column types, the tagged
// bound-value union, and the uniform execution result shape.
package types

import "fmt"

// SemanticType identifies the language-level type of a record field before
// it is mapped to a SQL column type.
type SemanticType int

const (
	TypeInvalid SemanticType = iota
	TypeString
	TypeBool
	TypeInt8
	TypeInt16
	TypeInt32
	TypeInt64
	TypeUint8
	TypeUint16
	TypeUint32
	TypeUint64
	TypeFloat32
	TypeFloat64
	TypeBytes
)

// String returns the declared type name used in diagnostics.
func (t SemanticType) String() string {
	switch t {
	case TypeString:
		return "string"
	case TypeBool:
		return "bool"
	case TypeInt8:
		return "int8"
	case TypeInt16:
		return "int16"
	case TypeInt32:
		return "int32"
	case TypeInt64:
		return "int64"
	case TypeUint8:
		return "uint8"
	case TypeUint16:
		return "uint16"
	case TypeUint32:
		return "uint32"
	case TypeUint64:
		return "uint64"
	case TypeFloat32:
		return "float32"
	case TypeFloat64:
		return "float64"
	case TypeBytes:
		return "[]byte"
	default:
		return fmt.Sprintf("SemanticType(%d)", int(t))
	}
}

// SQLType is a normalized SQL column type. Dialects may render these
// differently but the normalized set is fixed.
type SQLType string

const (
	SQLText    SQLType = "TEXT"
	SQLInteger SQLType = "INTEGER"
	SQLReal    SQLType = "REAL"
	SQLBoolean SQLType = "BOOLEAN"
	SQLBlob    SQLType = "BLOB"
)

// FieldDescriptor describes one column-mapped field of a record type.
// Descriptors are immutable once derived.
type FieldDescriptor struct {
	Name       string
	Type       SemanticType
	Nullable   bool
	PrimaryKey bool
}

// Record is implemented by types that can be persisted. DescribeFields and
// Values must agree in length and order; the pipeline checks this and fails
// with a schema mismatch when they drift apart.
type Record interface {
	// TableName returns the table name, taken verbatim.
	TableName() string

	// DescribeFields returns the ordered field descriptors for the type.
	DescribeFields() []FieldDescriptor

	// Values returns the runtime field values in DescribeFields order.
	Values() []interface{}
}

// ValueKind tags a BoundValue variant.
type ValueKind int

const (
	KindNull ValueKind = iota
	KindText
	KindInteger
	KindReal
	KindBoolean
	KindBytes
)

// String returns the variant name used in diagnostics.
func (k ValueKind) String() string {
	switch k {
	case KindNull:
		return "Null"
	case KindText:
		return "Text"
	case KindInteger:
		return "Integer"
	case KindReal:
		return "Real"
	case KindBoolean:
		return "Boolean"
	case KindBytes:
		return "Bytes"
	default:
		return fmt.Sprintf("ValueKind(%d)", int(k))
	}
}

// BoundValue is a backend-neutral parameter substituted for a statement
// placeholder at execution time. Exactly one variant is populated, selected
// by Kind. Numeric values keep their numeric representation end to end.
type BoundValue struct {
	Kind    ValueKind
	Text    string
	Integer int64
	Real    float64
	Boolean bool
	Bytes   []byte
}

// NullValue returns the Null variant.
func NullValue() BoundValue { return BoundValue{Kind: KindNull} }

// TextValue returns a Text variant holding s.
func TextValue(s string) BoundValue { return BoundValue{Kind: KindText, Text: s} }

// IntegerValue returns an Integer variant holding i.
func IntegerValue(i int64) BoundValue { return BoundValue{Kind: KindInteger, Integer: i} }

// RealValue returns a Real variant holding f.
func RealValue(f float64) BoundValue { return BoundValue{Kind: KindReal, Real: f} }

// BooleanValue returns a Boolean variant holding b.
func BooleanValue(b bool) BoundValue { return BoundValue{Kind: KindBoolean, Boolean: b} }

// BytesValue returns a Bytes variant holding p.
func BytesValue(p []byte) BoundValue { return BoundValue{Kind: KindBytes, Bytes: p} }

// DriverArg returns the database/sql argument for the value. Null becomes a
// nil interface so drivers see SQL NULL.
func (v BoundValue) DriverArg() interface{} {
	switch v.Kind {
	case KindText:
		return v.Text
	case KindInteger:
		return v.Integer
	case KindReal:
		return v.Real
	case KindBoolean:
		return v.Boolean
	case KindBytes:
		return v.Bytes
	default:
		return nil
	}
}

// Predicate narrows a select, update or delete to rows where Field equals
// Value. Value is bound through the field's declared type, never inlined
// into SQL text.
type Predicate struct {
	Field string
	Value interface{}
}

// Row maps column names to backend-neutral values for one result row.
type Row map[string]BoundValue

// ExecutionResult is the uniform outcome of executing one statement.
// Rows is nil for statements that do not return a result set.
type ExecutionResult struct {
	RowsAffected uint64
	LastInsertID int64
	Rows         []Row
}
