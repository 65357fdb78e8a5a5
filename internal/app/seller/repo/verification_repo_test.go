package repo

import (
	"testing"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/expiry-deals-service/internal/app/seller/domain"
	"github.com/light-bringer/expiry-deals-service/internal/models/m_seller_verification"
)

var now = time.Date(2024, 1, 16, 9, 0, 0, 0, time.UTC)

func TestUpdateColumns(t *testing.T) {
	t.Run("unchanged aggregate writes nothing", func(t *testing.T) {
		v := domain.ReconstructSellerVerification("seller-1", "Fresh Mart", "", domain.StatusPending, nil, nil, 1, now, now)
		assert.Empty(t, updateColumns(v))
	})

	t.Run("approval clears the reason", func(t *testing.T) {
		reason := "blurry photo"
		v := domain.ReconstructSellerVerification("seller-1", "Fresh Mart", "", domain.StatusRejected, &reason, &now, 3, now, now)
		v.Approve(now.Add(time.Hour))

		updates := updateColumns(v)
		assert.Equal(t, "approved", updates[m_seller_verification.VerificationStatus])
		assert.Equal(t, spanner.NullString{}, updates[m_seller_verification.RejectionReason])
		assert.Equal(t, spanner.NullTime{Time: now.Add(time.Hour), Valid: true}, updates[m_seller_verification.VerificationDate])
	})

	t.Run("rejection stores the reason", func(t *testing.T) {
		v := domain.ReconstructSellerVerification("seller-1", "Fresh Mart", "", domain.StatusPending, nil, nil, 1, now, now)
		v.Reject("", now)

		updates := updateColumns(v)
		assert.Equal(t, "rejected", updates[m_seller_verification.VerificationStatus])
		assert.Equal(t, spanner.NullString{StringVal: domain.DefaultRejectionReason, Valid: true}, updates[m_seller_verification.RejectionReason])
	})
}

func TestVerificationDataRoundTrip(t *testing.T) {
	v, err := domain.NewSellerVerification("seller-9", "Organic Hub", "https://docs.example.com/gst.pdf", now)
	require.NoError(t, err)
	v.Reject("GST number mismatch", now)

	back := dataToVerification(verificationToData(v))
	assert.Equal(t, "seller-9", back.SellerID())
	assert.Equal(t, "Organic Hub", back.BusinessName())
	assert.Equal(t, "https://docs.example.com/gst.pdf", back.DocumentURL())
	assert.Equal(t, domain.StatusRejected, back.Status())
	require.NotNil(t, back.RejectionReason())
	assert.Equal(t, "GST number mismatch", *back.RejectionReason())
	assert.Equal(t, now, *back.VerificationDate())
	assert.False(t, back.Changes().HasChanges())

	dto := dataToDTO(verificationToData(v))
	assert.Equal(t, domain.StatusRejected, dto.Status)
	assert.Equal(t, "GST number mismatch", *dto.RejectionReason)
}

func TestListByStatusStatement(t *testing.T) {
	stmt := listByStatusStatement(domain.StatusPending, 20)

	assert.Contains(t, stmt.SQL, "FROM seller_verifications")
	assert.Contains(t, stmt.SQL, "WHERE verification_status = @p0")
	assert.Contains(t, stmt.SQL, "ORDER BY created_at DESC, seller_id ASC")
	assert.Equal(t, "pending", stmt.Params["p0"])
	assert.Equal(t, int64(20), stmt.Params["limit"])
}
