package m_seller_verification

import (
	"cloud.google.com/go/spanner"
)

// Model provides a facade for type-safe operations on the seller_verifications table.
type Model struct{}

// NewModel creates a new Model instance.
func NewModel() *Model {
	return &Model{}
}

// InsertMut creates a Spanner mutation for a new verification request.
func (m *Model) InsertMut(data *Data) *spanner.Mutation {
	return spanner.Insert(
		TableName,
		Columns(),
		[]interface{}{
			data.SellerID,
			data.BusinessName,
			data.DocumentURL,
			data.VerificationStatus,
			data.RejectionReason,
			data.VerificationDate,
			data.Version,
			spanner.CommitTimestamp,
			spanner.CommitTimestamp,
		},
	)
}

// UpdateMut creates a Spanner mutation that writes only the given columns.
// seller_id is always part of the key and must not be in updates.
func (m *Model) UpdateMut(sellerID string, updates map[string]interface{}) *spanner.Mutation {
	cols := make([]string, 0, len(updates)+1)
	vals := make([]interface{}, 0, len(updates)+1)

	cols = append(cols, SellerID)
	vals = append(vals, sellerID)

	for _, col := range Columns() {
		if v, ok := updates[col]; ok {
			cols = append(cols, col)
			vals = append(vals, v)
		}
	}

	return spanner.Update(TableName, cols, vals)
}

// KeyFor returns the primary key of a seller's verification row.
func KeyFor(sellerID string) spanner.Key {
	return spanner.Key{sellerID}
}
