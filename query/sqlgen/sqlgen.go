// Package sqlgen renders parameterized SQL statements from table schemas.
// Values never appear in the SQL text; every value flows through a bound
// parameter aligned positionally with its placeholder.
package sqlgen

import (
	"fmt"
	"strings"

	"github.com/kingler-db/kingler-go/runtime/types"
	"github.com/kingler-db/kingler-go/schema"
)

// Operation identifies the kind of statement being generated.
type Operation int

const (
	OpCreateTable Operation = iota
	OpInsert
	OpSelect
	OpUpdate
	OpDelete
)

// String returns the operation name used in diagnostics.
func (op Operation) String() string {
	switch op {
	case OpCreateTable:
		return "create table"
	case OpInsert:
		return "insert"
	case OpSelect:
		return "select"
	case OpUpdate:
		return "update"
	case OpDelete:
		return "delete"
	default:
		return fmt.Sprintf("Operation(%d)", int(op))
	}
}

// Statement is a fully rendered SQL text plus its bound parameters, in
// placeholder order. Statements are immutable value objects created per
// operation invocation.
type Statement struct {
	Op     Operation
	Table  string
	SQL    string
	Params []types.BoundValue
}

// DriverArgs returns the parameters as database/sql arguments.
func (s *Statement) DriverArgs() []interface{} {
	args := make([]interface{}, len(s.Params))
	for i, p := range s.Params {
		args[i] = p.DriverArg()
	}
	return args
}

// Predicate is an already-bound equality predicate (column = value).
type Predicate struct {
	Column string
	Value  types.BoundValue
}

// Generator renders statements for one backend, consulting its Dialect for
// quoting, placeholder and type-spelling policy.
type Generator struct {
	dialect Dialect
}

// NewGenerator creates a generator for the given dialect.
func NewGenerator(dialect Dialect) *Generator {
	return &Generator{dialect: dialect}
}

// Dialect returns the dialect policy the generator consults.
func (g *Generator) Dialect() Dialect { return g.dialect }

// CreateTable renders an idempotent CREATE TABLE IF NOT EXISTS statement.
// Column order matches schema field order and the rendered text is
// deterministic, so generating twice yields byte-identical SQL.
func (g *Generator) CreateTable(s *schema.TableSchema) (*Statement, error) {
	cols := make([]string, len(s.Columns))
	for i, col := range s.Columns {
		def := fmt.Sprintf("%s %s", g.dialect.QuoteIdentifier(col.Name), g.dialect.ColumnType(col.SQLType))
		if col.PrimaryKey {
			def += " PRIMARY KEY"
		}
		if !col.Nullable {
			def += " NOT NULL"
		}
		cols[i] = def
	}

	sql := fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (%s)",
		g.dialect.QuoteIdentifier(s.Table), strings.Join(cols, ", "))

	return &Statement{Op: OpCreateTable, Table: s.Table, SQL: sql}, nil
}

// Insert renders an INSERT with one placeholder per schema field. The
// params must already be bound in schema field order; a count mismatch is
// rejected before any SQL is produced.
func (g *Generator) Insert(s *schema.TableSchema, params []types.BoundValue) (*Statement, error) {
	if len(params) != len(s.Columns) {
		return nil, &SchemaMismatchError{
			Table:  s.Table,
			Detail: fmt.Sprintf("have %d bound values, schema has %d columns", len(params), len(s.Columns)),
		}
	}

	cols := make([]string, len(s.Columns))
	placeholders := make([]string, len(s.Columns))
	for i, col := range s.Columns {
		cols[i] = g.dialect.QuoteIdentifier(col.Name)
		placeholders[i] = g.dialect.Placeholder(i + 1)
	}

	sql := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		g.dialect.QuoteIdentifier(s.Table),
		strings.Join(cols, ", "),
		strings.Join(placeholders, ", "))

	return &Statement{Op: OpInsert, Table: s.Table, SQL: sql, Params: params}, nil
}

// Select renders a SELECT over all schema columns, optionally narrowed by
// an equality predicate. Columns are listed explicitly in schema order so
// result scanning stays positionally aligned.
func (g *Generator) Select(s *schema.TableSchema, pred *Predicate) (*Statement, error) {
	cols := make([]string, len(s.Columns))
	for i, col := range s.Columns {
		cols[i] = g.dialect.QuoteIdentifier(col.Name)
	}

	sql := fmt.Sprintf("SELECT %s FROM %s",
		strings.Join(cols, ", "), g.dialect.QuoteIdentifier(s.Table))

	var params []types.BoundValue
	if pred != nil {
		sql += fmt.Sprintf(" WHERE %s = %s",
			g.dialect.QuoteIdentifier(pred.Column), g.dialect.Placeholder(1))
		params = []types.BoundValue{pred.Value}
	}

	return &Statement{Op: OpSelect, Table: s.Table, SQL: sql, Params: params}, nil
}

// Update renders an UPDATE setting every schema column from the bound
// params. An explicit predicate is required; its absence fails before any
// SQL is produced.
func (g *Generator) Update(s *schema.TableSchema, params []types.BoundValue, pred *Predicate) (*Statement, error) {
	if pred == nil {
		return nil, &MissingPredicateError{Operation: OpUpdate, Table: s.Table}
	}
	if len(params) != len(s.Columns) {
		return nil, &SchemaMismatchError{
			Table:  s.Table,
			Detail: fmt.Sprintf("have %d bound values, schema has %d columns", len(params), len(s.Columns)),
		}
	}

	sets := make([]string, len(s.Columns))
	for i, col := range s.Columns {
		sets[i] = fmt.Sprintf("%s = %s", g.dialect.QuoteIdentifier(col.Name), g.dialect.Placeholder(i+1))
	}

	sql := fmt.Sprintf("UPDATE %s SET %s WHERE %s = %s",
		g.dialect.QuoteIdentifier(s.Table),
		strings.Join(sets, ", "),
		g.dialect.QuoteIdentifier(pred.Column),
		g.dialect.Placeholder(len(s.Columns)+1))

	all := make([]types.BoundValue, 0, len(params)+1)
	all = append(all, params...)
	all = append(all, pred.Value)

	return &Statement{Op: OpUpdate, Table: s.Table, SQL: sql, Params: all}, nil
}

// Delete renders a DELETE narrowed by an equality predicate. An explicit
// predicate is required; its absence fails before any SQL is produced.
func (g *Generator) Delete(s *schema.TableSchema, pred *Predicate) (*Statement, error) {
	if pred == nil {
		return nil, &MissingPredicateError{Operation: OpDelete, Table: s.Table}
	}

	sql := fmt.Sprintf("DELETE FROM %s WHERE %s = %s",
		g.dialect.QuoteIdentifier(s.Table),
		g.dialect.QuoteIdentifier(pred.Column),
		g.dialect.Placeholder(1))

	return &Statement{Op: OpDelete, Table: s.Table, SQL: sql, Params: []types.BoundValue{pred.Value}}, nil
}
