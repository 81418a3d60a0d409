// Package schema derives relational table definitions from record type
// descriptions and caches them in a process-wide registry.
package schema

import (
	"fmt"

	"github.com/kingler-db/kingler-go/runtime/types"
)

// PrimaryKeyField is the field name that is inferred as the primary key.
// The convention is deliberately narrow: no annotation mechanism exists,
// only the literal name matches.
const PrimaryKeyField = "id"

// Column is one field of a table definition together with its mapped SQL
// column type.
type Column struct {
	types.FieldDescriptor
	SQLType types.SQLType
}

// TableSchema is the ordered column definition set for one table. Schemas
// are immutable once built; callers cache them through a Registry.
type TableSchema struct {
	Table   string
	Columns []Column
}

// Column returns the column with the given name, or false when the schema
// has no such column.
func (s *TableSchema) Column(name string) (Column, bool) {
	for _, col := range s.Columns {
		if col.Name == name {
			return col, true
		}
	}
	return Column{}, false
}

// ColumnNames returns the column names in schema order.
func (s *TableSchema) ColumnNames() []string {
	names := make([]string, len(s.Columns))
	for i, col := range s.Columns {
		names[i] = col.Name
	}
	return names
}

// PrimaryKey returns the primary key column, or false when the schema has
// none. Schemas without a primary key are valid.
func (s *TableSchema) PrimaryKey() (Column, bool) {
	for _, col := range s.Columns {
		if col.PrimaryKey {
			return col, true
		}
	}
	return Column{}, false
}

// Build derives a table definition from a record type description. The
// table name is taken verbatim. A field literally named "id" is marked as
// the primary key with a NOT NULL constraint; absence of such a field
// yields a schema with no primary key. Build is pure: it performs no
// caching and no I/O.
func Build(rec types.Record) (*TableSchema, error) {
	table := rec.TableName()
	fields := rec.DescribeFields()
	if len(fields) == 0 {
		return nil, &EmptySchemaError{Table: table}
	}

	seen := make(map[string]struct{}, len(fields))
	pkCount := 0
	columns := make([]Column, 0, len(fields))

	for _, field := range fields {
		if _, dup := seen[field.Name]; dup {
			return nil, fmt.Errorf("table %q: %w: %q", table, ErrDuplicateField, field.Name)
		}
		seen[field.Name] = struct{}{}

		if field.Name == PrimaryKeyField {
			field.PrimaryKey = true
			field.Nullable = false
		}
		if field.PrimaryKey {
			pkCount++
			if pkCount > 1 {
				return nil, fmt.Errorf("table %q: %w", table, ErrMultiplePrimaryKeys)
			}
		}

		sqlType, err := MapType(field)
		if err != nil {
			return nil, err
		}
		columns = append(columns, Column{FieldDescriptor: field, SQLType: sqlType})
	}

	return &TableSchema{Table: table, Columns: columns}, nil
}
