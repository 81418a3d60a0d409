// Package executor runs generated statements against concrete database
// backends and maps results into a uniform shape. The core never sees a
// backend's wire protocol; everything goes through the capability set
// connect, prepare, bind, step and finalize exposed by database/sql.
package executor

import (
	"context"
	"database/sql"

	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/lib/pq"              // PostgreSQL driver
	_ "github.com/mattn/go-sqlite3"    // SQLite driver

	"github.com/kingler-db/kingler-go/query/sqlgen"
	"github.com/kingler-db/kingler-go/runtime/types"
	"github.com/kingler-db/kingler-go/schema"
)

// Executor abstracts over concrete database engines. Implementations assume
// exclusive use of the underlying connection for the duration of one
// Execute call; cancellation is delegated to the backend via ctx.
type Executor interface {
	// Connect verifies the connection target is reachable.
	Connect(ctx context.Context) error

	// Execute runs one statement and returns a uniform result. The table
	// schema drives result-set decoding for statements that return rows.
	Execute(ctx context.Context, stmt *sqlgen.Statement, tableSchema *schema.TableSchema) (*types.ExecutionResult, error)

	// Close releases the underlying connection handle.
	Close() error
}

// driverName maps backend names to registered database/sql driver names.
func driverName(backend string) string {
	switch backend {
	case "sqlite", "sqlite3":
		return "sqlite3"
	case "postgresql", "postgres":
		return "postgres"
	case "mysql":
		return "mysql"
	default:
		return ""
	}
}

// SQLExecutor executes statements through database/sql with one of the
// registered drivers.
type SQLExecutor struct {
	db      *sql.DB
	backend string
	target  string
}

// NewSQLExecutor opens a database handle for the given backend name and
// connection target. The handle is lazy; Connect performs the reachability
// check.
func NewSQLExecutor(backend, target string) (*SQLExecutor, error) {
	name := driverName(backend)
	if name == "" {
		return nil, &UnsupportedBackendError{Backend: backend}
	}

	db, err := sql.Open(name, target)
	if err != nil {
		return nil, &ConnectionError{Target: target, Cause: err}
	}

	return &SQLExecutor{db: db, backend: backend, target: target}, nil
}

// NewSQLExecutorFromDB wraps an existing database handle.
func NewSQLExecutorFromDB(backend string, db *sql.DB) *SQLExecutor {
	return &SQLExecutor{db: db, backend: backend}
}

// Connect verifies the connection target is reachable.
func (e *SQLExecutor) Connect(ctx context.Context) error {
	if err := e.db.PingContext(ctx); err != nil {
		return &ConnectionError{Target: e.target, Cause: err}
	}
	return nil
}

// Close releases the underlying connection handle.
func (e *SQLExecutor) Close() error {
	return e.db.Close()
}

// DB returns the underlying database handle.
func (e *SQLExecutor) DB() *sql.DB {
	return e.db
}

// Execute prepares the statement, binds its parameters, steps it to
// completion and finalizes it. Backend failures are surfaced verbatim
// inside an ExecutionError.
func (e *SQLExecutor) Execute(ctx context.Context, stmt *sqlgen.Statement, tableSchema *schema.TableSchema) (*types.ExecutionResult, error) {
	prepared, err := e.db.PrepareContext(ctx, stmt.SQL)
	if err != nil {
		return nil, &ExecutionError{Operation: stmt.Op.String(), Table: stmt.Table, Cause: err}
	}
	defer prepared.Close()

	if stmt.Op == sqlgen.OpSelect {
		rows, err := prepared.QueryContext(ctx, stmt.DriverArgs()...)
		if err != nil {
			return nil, &ExecutionError{Operation: stmt.Op.String(), Table: stmt.Table, Cause: err}
		}
		defer rows.Close()

		decoded, err := scanRows(rows, tableSchema)
		if err != nil {
			return nil, &ExecutionError{Operation: stmt.Op.String(), Table: stmt.Table, Cause: err}
		}
		return &types.ExecutionResult{RowsAffected: uint64(len(decoded)), Rows: decoded}, nil
	}

	res, err := prepared.ExecContext(ctx, stmt.DriverArgs()...)
	if err != nil {
		return nil, &ExecutionError{Operation: stmt.Op.String(), Table: stmt.Table, Cause: err}
	}

	result := &types.ExecutionResult{}
	if affected, err := res.RowsAffected(); err == nil {
		result.RowsAffected = uint64(affected)
	}
	// Not every backend reports insert ids (lib/pq does not); absence is
	// not an error.
	if id, err := res.LastInsertId(); err == nil {
		result.LastInsertID = id
	}
	return result, nil
}
