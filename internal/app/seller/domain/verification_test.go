package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	productdomain "github.com/light-bringer/expiry-deals-service/internal/app/product/domain"
)

var reviewedAt = time.Date(2024, 1, 16, 9, 0, 0, 0, time.UTC)

func TestNewSellerVerification(t *testing.T) {
	v, err := NewSellerVerification("seller-1", "Fresh Mart", "", reviewedAt)
	require.NoError(t, err)
	assert.Equal(t, StatusPending, v.Status())
	assert.Nil(t, v.RejectionReason())
	assert.Nil(t, v.VerificationDate())

	_, err = NewSellerVerification(" ", "Fresh Mart", "", reviewedAt)
	assert.True(t, errors.Is(err, productdomain.ErrValidation))

	_, err = NewSellerVerification("seller-1", "", "", reviewedAt)
	assert.True(t, errors.Is(err, productdomain.ErrValidation))
}

func TestSellerVerification_Reject(t *testing.T) {
	t.Run("blank reason uses the default", func(t *testing.T) {
		v, err := NewSellerVerification("seller-1", "Fresh Mart", "", reviewedAt)
		require.NoError(t, err)

		v.Reject("  ", reviewedAt)

		assert.Equal(t, StatusRejected, v.Status())
		require.NotNil(t, v.RejectionReason())
		assert.Equal(t, DefaultRejectionReason, *v.RejectionReason())
		assert.Equal(t, reviewedAt, *v.VerificationDate())
		assert.True(t, v.Changes().Dirty(FieldStatus))

		require.Len(t, v.DomainEvents(), 1)
		event := v.DomainEvents()[0]
		assert.Equal(t, EventVerificationRejected, event.EventType())
		assert.Equal(t, "seller-1", event.AggregateID())
	})

	t.Run("explicit reason is kept", func(t *testing.T) {
		v, err := NewSellerVerification("seller-1", "Fresh Mart", "", reviewedAt)
		require.NoError(t, err)

		v.Reject("Licence expired", reviewedAt)
		assert.Equal(t, "Licence expired", *v.RejectionReason())
	})
}

func TestSellerVerification_Approve(t *testing.T) {
	reason := "Documentation incomplete"
	v := ReconstructSellerVerification("seller-1", "Fresh Mart", "", StatusRejected, &reason, nil, 2, reviewedAt, reviewedAt)
	assert.False(t, v.Changes().HasChanges())

	later := reviewedAt.Add(24 * time.Hour)
	v.Approve(later)

	assert.Equal(t, StatusApproved, v.Status())
	assert.Nil(t, v.RejectionReason())
	assert.Equal(t, later, *v.VerificationDate())
	assert.Equal(t, int64(2), v.Version())
	assert.True(t, v.Changes().Dirty(FieldRejectionReason))

	require.Len(t, v.DomainEvents(), 1)
	assert.Equal(t, EventVerificationApproved, v.DomainEvents()[0].EventType())
}

func TestParseStatus(t *testing.T) {
	st, err := ParseStatus("")
	require.NoError(t, err)
	assert.Equal(t, StatusPending, st)

	st, err = ParseStatus("Approved")
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, st)

	_, err = ParseStatus("banned")
	assert.True(t, errors.Is(err, productdomain.ErrValidation))
}
