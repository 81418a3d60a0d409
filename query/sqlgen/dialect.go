package sqlgen

import (
	"fmt"

	"github.com/kingler-db/kingler-go/runtime/types"
)

// Dialect is the per-backend policy for the syntax differences the
// generator must not hardcode: identifier quoting, placeholder style and
// column type rendering.
type Dialect interface {
	// Name returns the provider name the dialect serves.
	Name() string

	// QuoteIdentifier renders a table or column name for the backend.
	QuoteIdentifier(name string) string

	// Placeholder renders the parameter placeholder at a 1-based position.
	Placeholder(position int) string

	// ColumnType renders a normalized SQL type in the backend's DDL syntax.
	ColumnType(t types.SQLType) string
}

// NewDialect returns the dialect policy for a provider name, or false for
// an unrecognized provider.
func NewDialect(provider string) (Dialect, bool) {
	switch provider {
	case "sqlite", "sqlite3":
		return SQLiteDialect{}, true
	case "postgresql", "postgres":
		return PostgresDialect{}, true
	case "mysql":
		return MySQLDialect{}, true
	default:
		return nil, false
	}
}

// SQLiteDialect renders SQL for SQLite. Identifiers are emitted verbatim
// and the normalized column types are used as-is; SQLite's type affinity
// accepts all of them. An INTEGER PRIMARY KEY auto-assigns rowids without
// any autoincrement keyword.
type SQLiteDialect struct{}

func (SQLiteDialect) Name() string { return "sqlite" }

func (SQLiteDialect) QuoteIdentifier(name string) string { return name }

func (SQLiteDialect) Placeholder(position int) string { return "?" }

func (SQLiteDialect) ColumnType(t types.SQLType) string { return string(t) }

// PostgresDialect renders SQL for PostgreSQL: double-quoted identifiers,
// numbered placeholders, BYTEA and DOUBLE PRECISION type spellings.
type PostgresDialect struct{}

func (PostgresDialect) Name() string { return "postgres" }

func (PostgresDialect) QuoteIdentifier(name string) string {
	return fmt.Sprintf(`"%s"`, name)
}

func (PostgresDialect) Placeholder(position int) string {
	return fmt.Sprintf("$%d", position)
}

func (PostgresDialect) ColumnType(t types.SQLType) string {
	switch t {
	case types.SQLInteger:
		return "BIGINT"
	case types.SQLReal:
		return "DOUBLE PRECISION"
	case types.SQLBlob:
		return "BYTEA"
	default:
		return string(t)
	}
}

// MySQLDialect renders SQL for MySQL: backtick-quoted identifiers and
// question-mark placeholders.
type MySQLDialect struct{}

func (MySQLDialect) Name() string { return "mysql" }

func (MySQLDialect) QuoteIdentifier(name string) string {
	return fmt.Sprintf("`%s`", name)
}

func (MySQLDialect) Placeholder(position int) string { return "?" }

func (MySQLDialect) ColumnType(t types.SQLType) string {
	switch t {
	case types.SQLInteger:
		return "BIGINT"
	case types.SQLReal:
		return "DOUBLE"
	case types.SQLText:
		return "TEXT"
	default:
		return string(t)
	}
}
