// Package client provides the public handle for the kingler mapping layer:
// it derives schemas from record types, generates dialect-correct SQL,
// binds values and dispatches through a backend executor.
package client

import (
	"context"

	"github.com/kingler-db/kingler-go/query/executor"
	"github.com/kingler-db/kingler-go/query/sqlgen"
	"github.com/kingler-db/kingler-go/runtime/types"
	"github.com/kingler-db/kingler-go/schema"
)

// Client is a handle onto one backend connection target. Operations are
// synchronous and non-reentrant with respect to the underlying connection;
// concurrent callers targeting the same table coordinate externally.
type Client struct {
	executor  executor.Executor
	generator *sqlgen.Generator
	registry  *schema.Registry
	backend   string
}

// Open creates a handle for the named backend and connection target and
// verifies the target is reachable. Unrecognized backend names fail with an
// UnsupportedBackendError, unreachable targets with a ConnectionError.
func Open(ctx context.Context, backend, target string) (*Client, error) {
	dialect, ok := sqlgen.NewDialect(backend)
	if !ok {
		return nil, &executor.UnsupportedBackendError{Backend: backend}
	}

	exec, err := executor.NewSQLExecutor(backend, target)
	if err != nil {
		return nil, err
	}
	if err := exec.Connect(ctx); err != nil {
		exec.Close()
		return nil, err
	}

	return &Client{
		executor:  exec,
		generator: sqlgen.NewGenerator(dialect),
		registry:  schema.NewRegistry(),
		backend:   backend,
	}, nil
}

// NewClient wraps an existing executor. Used when the caller owns the
// connection lifecycle, and by tests substituting a fake backend.
func NewClient(backend string, exec executor.Executor) (*Client, error) {
	dialect, ok := sqlgen.NewDialect(backend)
	if !ok {
		return nil, &executor.UnsupportedBackendError{Backend: backend}
	}
	return &Client{
		executor:  exec,
		generator: sqlgen.NewGenerator(dialect),
		registry:  schema.NewRegistry(),
		backend:   backend,
	}, nil
}

// Backend returns the backend name the handle was opened with.
func (c *Client) Backend() string { return c.backend }

// Registry returns the handle's schema registry.
func (c *Client) Registry() *schema.Registry { return c.registry }

// Ping verifies the connection target is still reachable.
func (c *Client) Ping(ctx context.Context) error {
	return c.executor.Connect(ctx)
}

// Close releases the underlying connection handle.
func (c *Client) Close() error {
	return c.executor.Close()
}

// CreateTable derives the record type's schema and creates its table. The
// generated DDL is idempotent, so creating an existing table is not an
// error.
func (c *Client) CreateTable(ctx context.Context, rec types.Record) (*types.ExecutionResult, error) {
	s, err := c.registry.Derive(rec)
	if err != nil {
		return nil, err
	}
	stmt, err := c.generator.CreateTable(s)
	if err != nil {
		return nil, err
	}
	return c.executor.Execute(ctx, stmt, s)
}

// Insert inserts one record instance. Every value flows through a bound
// parameter; nothing is inlined into the SQL text.
func (c *Client) Insert(ctx context.Context, rec types.Record) (*types.ExecutionResult, error) {
	s, err := c.registry.Derive(rec)
	if err != nil {
		return nil, err
	}
	params, err := Bind(s, rec)
	if err != nil {
		return nil, err
	}
	stmt, err := c.generator.Insert(s, params)
	if err != nil {
		return nil, err
	}
	return c.executor.Execute(ctx, stmt, s)
}

// Select returns rows of the record's table, optionally narrowed by an
// equality predicate. A nil predicate selects all rows.
func (c *Client) Select(ctx context.Context, rec types.Record, pred *types.Predicate) (*types.ExecutionResult, error) {
	s, err := c.registry.Derive(rec)
	if err != nil {
		return nil, err
	}

	var bound *sqlgen.Predicate
	if pred != nil {
		bound, err = bindPredicate(s, *pred)
		if err != nil {
			return nil, err
		}
	}

	stmt, err := c.generator.Select(s, bound)
	if err != nil {
		return nil, err
	}
	return c.executor.Execute(ctx, stmt, s)
}

// Update rewrites every column of the rows matching the predicate from the
// record instance. The predicate is mandatory; a zero predicate fails with
// a MissingPredicateError before any SQL is generated.
func (c *Client) Update(ctx context.Context, rec types.Record, pred types.Predicate) (*types.ExecutionResult, error) {
	s, err := c.registry.Derive(rec)
	if err != nil {
		return nil, err
	}
	if pred.Field == "" {
		return nil, &sqlgen.MissingPredicateError{Operation: sqlgen.OpUpdate, Table: s.Table}
	}

	params, err := Bind(s, rec)
	if err != nil {
		return nil, err
	}
	bound, err := bindPredicate(s, pred)
	if err != nil {
		return nil, err
	}

	stmt, err := c.generator.Update(s, params, bound)
	if err != nil {
		return nil, err
	}
	return c.executor.Execute(ctx, stmt, s)
}

// Delete removes the rows matching the predicate. The predicate is
// mandatory; a zero predicate fails with a MissingPredicateError before any
// SQL is generated.
func (c *Client) Delete(ctx context.Context, rec types.Record, pred types.Predicate) (*types.ExecutionResult, error) {
	s, err := c.registry.Derive(rec)
	if err != nil {
		return nil, err
	}
	if pred.Field == "" {
		return nil, &sqlgen.MissingPredicateError{Operation: sqlgen.OpDelete, Table: s.Table}
	}

	bound, err := bindPredicate(s, pred)
	if err != nil {
		return nil, err
	}

	stmt, err := c.generator.Delete(s, bound)
	if err != nil {
		return nil, err
	}
	return c.executor.Execute(ctx, stmt, s)
}
