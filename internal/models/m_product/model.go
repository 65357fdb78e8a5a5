package m_product

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the products table.
// The catalog is owned by seller tooling; this service writes rows only
// when seeding fixtures and stock.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for inserting or replacing a product.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.InsertOrUpdate(
		TableName,
		Columns(),
		[]interface{}{
			data.ProductID,
			data.SellerID,
			data.Name,
			data.Description,
			data.Category,
			data.ImageURL,
			&data.OriginalPrice,
			&data.FinalPrice,
			data.DiscountPercentage,
			data.ManufacturingDate,
			data.ExpiryDate,
			data.QuantityAvailable,
			data.Latitude,
			data.Longitude,
			spanner.CommitTimestamp,
			spanner.CommitTimestamp,
		},
	)
}

// UpdateStockMut sets the available quantity of a product.
func (m *Model) UpdateStockMut(productID string, quantity int64) *spanner.Mutation {
	return spanner.Update(
		TableName,
		[]string{ProductID, QuantityAvailable, UpdatedAt},
		[]interface{}{productID, quantity, spanner.CommitTimestamp},
	)
}

