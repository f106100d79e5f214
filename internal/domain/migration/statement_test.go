//go:build unit
// +build unit

package migration

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		stmt     string
		expected Kind
	}{
		{
			name:     "create table",
			stmt:     "CREATE TABLE orders (id UUID PRIMARY KEY);",
			expected: KindCreateTable,
		},
		{
			name:     "create table lowercase",
			stmt:     "create table orders (id uuid primary key);",
			expected: KindCreateTable,
		},
		{
			name:     "create type",
			stmt:     "CREATE TYPE order_status AS ENUM ('pending');",
			expected: KindCreateType,
		},
		{
			name:     "create index",
			stmt:     "CREATE INDEX idx_orders_status ON orders (status);",
			expected: KindCreateIndex,
		},
		{
			name:     "create unique index",
			stmt:     "CREATE UNIQUE INDEX idx_orders_number ON orders (number);",
			expected: KindCreateIndex,
		},
		{
			name:     "comment",
			stmt:     "COMMENT ON TABLE orders IS 'customer orders';",
			expected: KindComment,
		},
		{
			name:     "do block is generic",
			stmt:     "DO $$ BEGIN NULL; END$$;",
			expected: KindGenericSQL,
		},
		{
			name:     "leading whitespace tolerated",
			stmt:     "  \n  CREATE TABLE t (id INT);",
			expected: KindCreateTable,
		},
		{
			name:     "alter table is generic",
			stmt:     "ALTER TABLE orders ADD COLUMN note TEXT;",
			expected: KindGenericSQL,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.stmt))
		})
	}
}

func TestIsAlreadyExists(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{
			name:     "relation already exists",
			err:      errors.New(`ERROR: relation "orders" already exists (SQLSTATE 42P07)`),
			expected: true,
		},
		{
			name:     "type already exists",
			err:      errors.New(`ERROR: type "order_status" already exists (SQLSTATE 42710)`),
			expected: true,
		},
		{
			name:     "syntax error",
			err:      errors.New("ERROR: syntax error at or near \"CREAT\""),
			expected: false,
		},
		{
			name:     "nil error",
			err:      nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsAlreadyExists(tt.err))
		})
	}
}

func TestSummary(t *testing.T) {
	t.Run("first line only", func(t *testing.T) {
		stmt := "CREATE TABLE orders (\n  id UUID\n);"
		assert.Equal(t, "CREATE TABLE orders (", Summary(stmt))
	})

	t.Run("long line truncated", func(t *testing.T) {
		stmt := "CREATE TABLE " + strings.Repeat("x", 200)
		got := Summary(stmt)
		assert.Len(t, got, 123)
		assert.True(t, strings.HasSuffix(got, "..."))
	})

	t.Run("whitespace trimmed", func(t *testing.T) {
		assert.Equal(t, "SELECT 1;", Summary("  SELECT 1;  "))
	})
}
