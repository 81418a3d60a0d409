package sqlgen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kingler-db/kingler-go/runtime/types"
	"github.com/kingler-db/kingler-go/schema"
)

func productSchema() *schema.TableSchema {
	return &schema.TableSchema{
		Table: "product",
		Columns: []schema.Column{
			{FieldDescriptor: types.FieldDescriptor{Name: "id", Type: types.TypeInt64, PrimaryKey: true}, SQLType: types.SQLInteger},
			{FieldDescriptor: types.FieldDescriptor{Name: "name", Type: types.TypeString, Nullable: true}, SQLType: types.SQLText},
			{FieldDescriptor: types.FieldDescriptor{Name: "price", Type: types.TypeUint8, Nullable: true}, SQLType: types.SQLInteger},
		},
	}
}

func productParams() []types.BoundValue {
	return []types.BoundValue{
		types.IntegerValue(1),
		types.TextValue("Apple"),
		types.IntegerValue(10),
	}
}

func newTestGenerator(t *testing.T, provider string) *Generator {
	t.Helper()
	dialect, ok := NewDialect(provider)
	require.True(t, ok)
	return NewGenerator(dialect)
}

func TestNewDialect(t *testing.T) {
	tests := []struct {
		provider string
		want     string
		ok       bool
	}{
		{"sqlite", "sqlite", true},
		{"sqlite3", "sqlite", true},
		{"postgres", "postgres", true},
		{"postgresql", "postgres", true},
		{"mysql", "mysql", true},
		{"oracle", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			dialect, ok := NewDialect(tt.provider)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, dialect.Name())
			}
		})
	}
}

func TestGenerator_CreateTable(t *testing.T) {
	tests := []struct {
		provider string
		want     string
	}{
		{
			provider: "sqlite",
			want:     "CREATE TABLE IF NOT EXISTS product (id INTEGER PRIMARY KEY NOT NULL, name TEXT, price INTEGER)",
		},
		{
			provider: "postgres",
			want:     `CREATE TABLE IF NOT EXISTS "product" ("id" BIGINT PRIMARY KEY NOT NULL, "name" TEXT, "price" BIGINT)`,
		},
		{
			provider: "mysql",
			want:     "CREATE TABLE IF NOT EXISTS `product` (`id` BIGINT PRIMARY KEY NOT NULL, `name` TEXT, `price` BIGINT)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.provider, func(t *testing.T) {
			gen := newTestGenerator(t, tt.provider)

			stmt, err := gen.CreateTable(productSchema())
			require.NoError(t, err)
			assert.Equal(t, OpCreateTable, stmt.Op)
			assert.Equal(t, tt.want, stmt.SQL)
			assert.Empty(t, stmt.Params)

			// Idempotence: generating twice yields byte-identical text.
			again, err := gen.CreateTable(productSchema())
			require.NoError(t, err)
			assert.Equal(t, stmt.SQL, again.SQL)
		})
	}
}

func TestGenerator_Insert(t *testing.T) {
	t.Run("sqlite placeholders in schema order", func(t *testing.T) {
		gen := newTestGenerator(t, "sqlite")

		stmt, err := gen.Insert(productSchema(), productParams())
		require.NoError(t, err)
		assert.Equal(t, "INSERT INTO product (id, name, price) VALUES (?, ?, ?)", stmt.SQL)
		require.Len(t, stmt.Params, 3)
		assert.Equal(t, types.IntegerValue(1), stmt.Params[0])
		assert.Equal(t, types.TextValue("Apple"), stmt.Params[1])
		assert.Equal(t, types.IntegerValue(10), stmt.Params[2])
	})

	t.Run("postgres numbered placeholders", func(t *testing.T) {
		gen := newTestGenerator(t, "postgres")

		stmt, err := gen.Insert(productSchema(), productParams())
		require.NoError(t, err)
		assert.Equal(t, `INSERT INTO "product" ("id", "name", "price") VALUES ($1, $2, $3)`, stmt.SQL)
	})

	t.Run("parameter count mismatch", func(t *testing.T) {
		gen := newTestGenerator(t, "sqlite")

		_, err := gen.Insert(productSchema(), productParams()[:2])
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrSchemaMismatch))
	})
}

func TestGenerator_Select(t *testing.T) {
	gen := newTestGenerator(t, "sqlite")

	t.Run("without predicate", func(t *testing.T) {
		stmt, err := gen.Select(productSchema(), nil)
		require.NoError(t, err)
		assert.Equal(t, "SELECT id, name, price FROM product", stmt.SQL)
		assert.Empty(t, stmt.Params)
	})

	t.Run("with predicate", func(t *testing.T) {
		stmt, err := gen.Select(productSchema(), &Predicate{Column: "name", Value: types.TextValue("Apple")})
		require.NoError(t, err)
		assert.Equal(t, "SELECT id, name, price FROM product WHERE name = ?", stmt.SQL)
		require.Len(t, stmt.Params, 1)
		assert.Equal(t, types.TextValue("Apple"), stmt.Params[0])
	})
}

func TestGenerator_Update(t *testing.T) {
	t.Run("predicate value follows set params", func(t *testing.T) {
		gen := newTestGenerator(t, "sqlite")

		stmt, err := gen.Update(productSchema(), productParams(), &Predicate{Column: "id", Value: types.IntegerValue(1)})
		require.NoError(t, err)
		assert.Equal(t, "UPDATE product SET id = ?, name = ?, price = ? WHERE id = ?", stmt.SQL)
		require.Len(t, stmt.Params, 4)
		assert.Equal(t, types.IntegerValue(1), stmt.Params[3])
	})

	t.Run("postgres placeholder numbering spans set and where", func(t *testing.T) {
		gen := newTestGenerator(t, "postgres")

		stmt, err := gen.Update(productSchema(), productParams(), &Predicate{Column: "id", Value: types.IntegerValue(1)})
		require.NoError(t, err)
		assert.Equal(t, `UPDATE "product" SET "id" = $1, "name" = $2, "price" = $3 WHERE "id" = $4`, stmt.SQL)
	})

	t.Run("missing predicate", func(t *testing.T) {
		gen := newTestGenerator(t, "sqlite")

		_, err := gen.Update(productSchema(), productParams(), nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMissingPredicate))
	})
}

func TestGenerator_Delete(t *testing.T) {
	gen := newTestGenerator(t, "sqlite")

	t.Run("with predicate", func(t *testing.T) {
		stmt, err := gen.Delete(productSchema(), &Predicate{Column: "id", Value: types.IntegerValue(1)})
		require.NoError(t, err)
		assert.Equal(t, "DELETE FROM product WHERE id = ?", stmt.SQL)
		require.Len(t, stmt.Params, 1)
	})

	t.Run("missing predicate", func(t *testing.T) {
		_, err := gen.Delete(productSchema(), nil)
		require.Error(t, err)

		var predErr *MissingPredicateError
		require.True(t, errors.As(err, &predErr))
		assert.Equal(t, OpDelete, predErr.Operation)
		assert.Equal(t, "product", predErr.Table)
	})
}

func TestStatement_DriverArgs(t *testing.T) {
	stmt := &Statement{Params: []types.BoundValue{
		types.IntegerValue(7),
		types.TextValue("x"),
		types.NullValue(),
	}}

	args := stmt.DriverArgs()
	require.Len(t, args, 3)
	assert.Equal(t, int64(7), args[0])
	assert.Equal(t, "x", args[1])
	assert.Nil(t, args[2])
}
