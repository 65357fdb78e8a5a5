package m_seller_verification

import (
	"time"

	"cloud.google.com/go/spanner"
)

// Data represents the database model for the seller_verifications table.
type Data struct {
	SellerID           string             `spanner:"seller_id"`
	BusinessName       string             `spanner:"business_name"`
	DocumentURL        spanner.NullString `spanner:"document_url"`
	VerificationStatus string             `spanner:"verification_status"`
	RejectionReason    spanner.NullString `spanner:"rejection_reason"`
	VerificationDate   spanner.NullTime   `spanner:"verification_date"`
	Version            int64              `spanner:"version"`
	CreatedAt          time.Time          `spanner:"created_at"`
	UpdatedAt          time.Time          `spanner:"updated_at"`
}
