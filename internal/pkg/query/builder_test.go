package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_BasicSelect(t *testing.T) {
	stmt := From("products").
		Select("product_id", "name", "category").
		Build()

	assert.Equal(t, "SELECT product_id, name, category FROM products", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_SelectAllColumns(t *testing.T) {
	stmt := From("seller_verifications").Build()

	assert.Equal(t, "SELECT * FROM seller_verifications", stmt.SQL)
	assert.Empty(t, stmt.Params)
}

func TestBuilder_MultipleWhereConditions(t *testing.T) {
	stmt := From("products").
		Select("product_id", "name").
		Where(Eq("category", "soaps")).
		Where(Gte("expiry_date", "2024-02-15")).
		Build()

	assert.Equal(t, "SELECT product_id, name FROM products WHERE category = @p0 AND expiry_date >= @p1", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0": "soaps",
		"p1": "2024-02-15",
	}, stmt.Params)
}

func TestBuilder_OrderBy(t *testing.T) {
	t.Run("single key", func(t *testing.T) {
		stmt := From("products").
			Select("product_id").
			OrderBy("final_price", Asc).
			Build()

		assert.Equal(t, "SELECT product_id FROM products ORDER BY final_price ASC", stmt.SQL)
	})

	t.Run("tie breaker", func(t *testing.T) {
		stmt := From("products").
			Select("product_id").
			OrderBy("discount_percentage", Desc).
			ThenBy("product_id", Asc).
			Build()

		assert.Equal(t, "SELECT product_id FROM products ORDER BY discount_percentage DESC, product_id ASC", stmt.SQL)
	})

	t.Run("OrderBy replaces previous keys", func(t *testing.T) {
		stmt := From("products").
			Select("product_id").
			OrderBy("created_at", Desc).
			ThenBy("product_id", Asc).
			OrderBy("expiry_date", Asc).
			Build()

		assert.Equal(t, "SELECT product_id FROM products ORDER BY expiry_date ASC", stmt.SQL)
	})
}

func TestBuilder_LimitAndOffset(t *testing.T) {
	stmt := From("products").
		Select("product_id", "name").
		Limit(10).
		Offset(20).
		Build()

	assert.Equal(t, "SELECT product_id, name FROM products LIMIT @limit OFFSET @offset", stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"limit":  int64(10),
		"offset": int64(20),
	}, stmt.Params)
}

func TestBuilder_CompleteQuery(t *testing.T) {
	stmt := From("seller_verifications").
		Select("seller_id", "verification_status").
		Where(Eq("verification_status", "pending")).
		OrderBy("created_at", Desc).
		Limit(50).
		Build()

	expectedSQL := "SELECT seller_id, verification_status FROM seller_verifications WHERE verification_status = @p0 ORDER BY created_at DESC LIMIT @limit"
	assert.Equal(t, expectedSQL, stmt.SQL)
	assert.Equal(t, map[string]interface{}{
		"p0":    "pending",
		"limit": int64(50),
	}, stmt.Params)
}

func TestBuilder_Count(t *testing.T) {
	builder := From("products").
		Select("product_id", "name").
		Where(Eq("category", "detergents")).
		OrderBy("created_at", Desc).
		Limit(50).
		Offset(100)

	countStmt := builder.Count().Build()
	assert.Equal(t, "SELECT COUNT(*) FROM products WHERE category = @p0", countStmt.SQL)
	assert.Equal(t, map[string]interface{}{"p0": "detergents"}, countStmt.Params)

	// Original builder is unchanged.
	mainStmt := builder.Build()
	assert.Contains(t, mainStmt.SQL, "ORDER BY created_at DESC LIMIT @limit OFFSET @offset")
}

func TestBuilder_Immutability(t *testing.T) {
	base := From("products").Select("product_id")

	stmt1 := base.Where(Eq("category", "soaps")).Build()
	stmt2 := base.Where(Gt("quantity_available", int64(0))).Build()

	assert.Contains(t, stmt1.SQL, "category = @p0")
	assert.NotContains(t, stmt1.SQL, "quantity_available")

	assert.Contains(t, stmt2.SQL, "quantity_available > @p0")
	assert.NotContains(t, stmt2.SQL, "category")
}

func TestCondition_Comparisons(t *testing.T) {
	tests := []struct {
		name string
		cond Condition
		want string
	}{
		{"eq", Eq("status", "pending"), "status = @p3"},
		{"gte", Gte("expiry_date", "x"), "expiry_date >= @p3"},
		{"lte", Lte("final_price", "x"), "final_price <= @p3"},
		{"gt", Gt("quantity_available", "x"), "quantity_available > @p3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, params := tt.cond.SQL(3)
			assert.Equal(t, tt.want, sql)
			assert.Len(t, params, 1)
			assert.Contains(t, params, "p3")
		})
	}
}

func TestBuilder_NullConditionsDoNotConsumeParams(t *testing.T) {
	stmt := From("seller_verifications").
		Select("seller_id").
		Where(IsNull("rejection_reason")).
		Where(IsNotNull("verification_date")).
		Where(Eq("verification_status", "approved")).
		Build()

	assert.Equal(t, "SELECT seller_id FROM seller_verifications WHERE rejection_reason IS NULL AND verification_date IS NOT NULL AND verification_status = @p0", stmt.SQL)
	assert.Equal(t, map[string]interface{}{"p0": "approved"}, stmt.Params)
}

func TestBuilder_String(t *testing.T) {
	str := From("products").Select("product_id").Where(Eq("category", "soaps")).String()
	require.NotEmpty(t, str)
	assert.Contains(t, str, "SQL:")
	assert.Contains(t, str, "Params:")
}
