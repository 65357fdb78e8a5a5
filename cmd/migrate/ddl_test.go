package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const schema = `-- products
CREATE TABLE products (
  product_id STRING(36) NOT NULL, -- uuid
) PRIMARY KEY (product_id);

CREATE INDEX idx_products_expiry ON products(expiry_date);

CREATE TABLE outbox_events (
  event_id STRING(36) NOT NULL,
) PRIMARY KEY (event_id);
`

func TestSplitDDLStatements(t *testing.T) {
	stmts := splitDDLStatements(schema)

	assert.Len(t, stmts, 3)
	assert.Equal(t, "CREATE TABLE products (\nproduct_id STRING(36) NOT NULL,\n) PRIMARY KEY (product_id)", stmts[0])
	assert.Equal(t, "CREATE INDEX idx_products_expiry ON products(expiry_date)", stmts[1])
	assert.Empty(t, splitDDLStatements("-- nothing here\n\n"))
}

func TestObjectName(t *testing.T) {
	tests := map[string]string{
		"CREATE TABLE products (x INT64) PRIMARY KEY (x)":        "TABLE products",
		"create index Idx_A on products(x)":                      "INDEX idx_a",
		"CREATE UNIQUE NULL_FILTERED INDEX idx_b ON products(x)": "INDEX idx_b",
		"CREATE TABLE `outbox_events` (x INT64) PRIMARY KEY (x)": "TABLE outbox_events",
	}
	for stmt, want := range tests {
		got, ok := objectName(stmt)
		assert.True(t, ok, stmt)
		assert.Equal(t, want, got)
	}

	_, ok := objectName("ALTER TABLE products ADD COLUMN y INT64")
	assert.False(t, ok)
}

func TestPendingStatements(t *testing.T) {
	stmts := splitDDLStatements(schema)

	t.Run("empty database gets everything", func(t *testing.T) {
		assert.Equal(t, stmts, pendingStatements(stmts, nil))
	})

	t.Run("existing objects are skipped", func(t *testing.T) {
		existing := []string{"CREATE TABLE products (\n  product_id STRING(36) NOT NULL,\n) PRIMARY KEY(product_id)"}
		pending := pendingStatements(stmts, existing)
		assert.Len(t, pending, 2)
		assert.Contains(t, pending[0], "idx_products_expiry")
	})

	t.Run("fully migrated database is a no-op", func(t *testing.T) {
		assert.Empty(t, pendingStatements(stmts, stmts))
	})
}
