package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingler-db/kingler-go/query/executor"
	"github.com/kingler-db/kingler-go/query/sqlgen"
	"github.com/kingler-db/kingler-go/runtime/types"
	"github.com/kingler-db/kingler-go/schema"
)

// fakeExecutor records the statements reaching the backend.
type fakeExecutor struct {
	statements []*sqlgen.Statement
	result     *types.ExecutionResult
	err        error
}

func (f *fakeExecutor) Connect(ctx context.Context) error { return nil }
func (f *fakeExecutor) Close() error                      { return nil }

func (f *fakeExecutor) Execute(ctx context.Context, stmt *sqlgen.Statement, s *schema.TableSchema) (*types.ExecutionResult, error) {
	f.statements = append(f.statements, stmt)
	if f.err != nil {
		return nil, f.err
	}
	if f.result != nil {
		return f.result, nil
	}
	return &types.ExecutionResult{}, nil
}

func newFakeClient(t *testing.T) (*Client, *fakeExecutor) {
	t.Helper()
	fake := &fakeExecutor{}
	c, err := NewClient("sqlite", fake)
	require.NoError(t, err)
	return c, fake
}

func TestNewClient_UnsupportedBackend(t *testing.T) {
	_, err := NewClient("mongodb", &fakeExecutor{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, executor.ErrUnsupportedBackend))

	var backendErr *executor.UnsupportedBackendError
	require.True(t, errors.As(err, &backendErr))
	assert.Equal(t, "mongodb", backendErr.Backend)
}

func TestClient_FailsBeforeBackend(t *testing.T) {
	ctx := context.Background()

	t.Run("update without predicate executes no SQL", func(t *testing.T) {
		c, fake := newFakeClient(t)
		_, err := c.Update(ctx, product{ID: 1, Name: "Apple", Price: 10}, types.Predicate{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, sqlgen.ErrMissingPredicate))
		assert.Empty(t, fake.statements)
	})

	t.Run("delete without predicate executes no SQL", func(t *testing.T) {
		c, fake := newFakeClient(t)
		_, err := c.Delete(ctx, product{}, types.Predicate{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, sqlgen.ErrMissingPredicate))
		assert.Empty(t, fake.statements)
	})

	t.Run("mismatched record executes no SQL", func(t *testing.T) {
		c, fake := newFakeClient(t)
		// Prime the schema from the well-formed type, then insert an
		// instance missing a field.
		_, err := c.CreateTable(ctx, product{})
		require.NoError(t, err)
		fake.statements = nil

		rec := mismatchRecord{
			fields: product{}.DescribeFields()[:2],
			values: []interface{}{int64(1), "Apple"},
		}
		_, err = c.Insert(ctx, rec)
		require.Error(t, err)
		assert.True(t, errors.Is(err, sqlgen.ErrSchemaMismatch))
		assert.Empty(t, fake.statements)
	})

	t.Run("empty record type executes no SQL and caches nothing", func(t *testing.T) {
		c, fake := newFakeClient(t)
		_, err := c.CreateTable(ctx, mismatchRecord{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, schema.ErrEmptySchema))
		assert.Empty(t, fake.statements)
		_, ok := c.Registry().Lookup("product")
		assert.False(t, ok)
	})
}

func TestClient_SchemaDerivedOnce(t *testing.T) {
	ctx := context.Background()
	c, _ := newFakeClient(t)

	_, err := c.CreateTable(ctx, product{})
	require.NoError(t, err)
	_, err = c.Insert(ctx, product{ID: 1, Name: "Apple", Price: 10})
	require.NoError(t, err)
	_, err = c.Insert(ctx, product{ID: 2, Name: "Banana", Price: 9})
	require.NoError(t, err)

	stats := c.Registry().GetStats()
	assert.Equal(t, int64(1), stats.Misses, "schema derived once per type")
	assert.Equal(t, int64(2), stats.Hits)
}

// user mirrors the original example program's second record type.
type user struct {
	ID     int64
	Name   string
	Age    uint8
	Active bool
}

func (user) TableName() string { return "user" }

func (user) DescribeFields() []types.FieldDescriptor {
	return []types.FieldDescriptor{
		{Name: "id", Type: types.TypeInt64},
		{Name: "name", Type: types.TypeString, Nullable: true},
		{Name: "age", Type: types.TypeUint8, Nullable: true},
		{Name: "active", Type: types.TypeBool, Nullable: true},
	}
}

func (u user) Values() []interface{} {
	return []interface{}{u.ID, u.Name, u.Age, u.Active}
}

func TestClient_SQLiteRoundTrip(t *testing.T) {
	ctx := context.Background()

	// Shared-cache DSN so every pooled connection sees the same in-memory
	// database.
	c, err := Open(ctx, "sqlite", "file:client_test?mode=memory&cache=shared")
	require.NoError(t, err)
	defer c.Close()

	_, err = c.CreateTable(ctx, product{})
	require.NoError(t, err)
	// Idempotent: creating the same table again must not error.
	_, err = c.CreateTable(ctx, product{})
	require.NoError(t, err)

	res, err := c.Insert(ctx, product{ID: 1, Name: "Apple", Price: 10})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), res.RowsAffected)
	assert.Equal(t, int64(1), res.LastInsertID)

	_, err = c.Insert(ctx, product{ID: 2, Name: "Banana", Price: 9})
	require.NoError(t, err)

	t.Run("select all", func(t *testing.T) {
		res, err := c.Select(ctx, product{}, nil)
		require.NoError(t, err)
		require.Len(t, res.Rows, 2)
		assert.Equal(t, types.IntegerValue(1), res.Rows[0]["id"])
		assert.Equal(t, types.TextValue("Apple"), res.Rows[0]["name"])
		assert.Equal(t, types.IntegerValue(10), res.Rows[0]["price"])
	})

	t.Run("select with predicate", func(t *testing.T) {
		res, err := c.Select(ctx, product{}, &types.Predicate{Field: "name", Value: "Banana"})
		require.NoError(t, err)
		require.Len(t, res.Rows, 1)
		assert.Equal(t, types.IntegerValue(2), res.Rows[0]["id"])
	})

	t.Run("update", func(t *testing.T) {
		res, err := c.Update(ctx, product{ID: 2, Name: "Banana", Price: 12}, types.Predicate{Field: "id", Value: int64(2)})
		require.NoError(t, err)
		assert.Equal(t, uint64(1), res.RowsAffected)

		check, err := c.Select(ctx, product{}, &types.Predicate{Field: "id", Value: int64(2)})
		require.NoError(t, err)
		require.Len(t, check.Rows, 1)
		assert.Equal(t, types.IntegerValue(12), check.Rows[0]["price"])
	})

	t.Run("delete", func(t *testing.T) {
		res, err := c.Delete(ctx, product{}, types.Predicate{Field: "id", Value: int64(1)})
		require.NoError(t, err)
		assert.Equal(t, uint64(1), res.RowsAffected)

		remaining, err := c.Select(ctx, product{}, nil)
		require.NoError(t, err)
		assert.Len(t, remaining.Rows, 1)
	})

	t.Run("constraint violation surfaces backend diagnostics", func(t *testing.T) {
		_, err := c.Insert(ctx, product{ID: 2, Name: "Cherry", Price: 3})
		require.Error(t, err)
		assert.True(t, errors.Is(err, executor.ErrExecution))

		var execErr *executor.ExecutionError
		require.True(t, errors.As(err, &execErr))
		assert.NotEmpty(t, execErr.Cause.Error())
	})

	t.Run("boolean fields survive the round trip", func(t *testing.T) {
		_, err := c.CreateTable(ctx, user{})
		require.NoError(t, err)
		_, err = c.Insert(ctx, user{ID: 1, Name: "John Doe", Age: 25, Active: true})
		require.NoError(t, err)

		res, err := c.Select(ctx, user{}, &types.Predicate{Field: "active", Value: true})
		require.NoError(t, err)
		require.Len(t, res.Rows, 1)
		assert.Equal(t, types.BooleanValue(true), res.Rows[0]["active"])
		assert.Equal(t, types.IntegerValue(25), res.Rows[0]["age"])
	})
}

func TestOpen_UnsupportedBackend(t *testing.T) {
	_, err := Open(context.Background(), "oracle", "whatever")
	require.Error(t, err)
	assert.True(t, errors.Is(err, executor.ErrUnsupportedBackend))
}
