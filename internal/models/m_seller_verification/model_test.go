package m_seller_verification

import (
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
)

func TestModel_Mutations(t *testing.T) {
	m := NewModel()

	assert.NotNil(t, m.InsertMut(&Data{SellerID: "seller-1", BusinessName: "Fresh Mart", VerificationStatus: "pending"}))
	assert.NotNil(t, m.UpdateMut("seller-1", map[string]interface{}{
		VerificationStatus: "approved",
		RejectionReason:    spanner.NullString{},
		Version:            int64(2),
	}))
}

func TestColumns(t *testing.T) {
	cols := Columns()
	assert.Equal(t, SellerID, cols[0])
	assert.Len(t, cols, 9)
}
