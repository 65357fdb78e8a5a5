package m_seller_verification

// Field name constants for the seller_verifications table.
const (
	TableName = "seller_verifications"

	SellerID           = "seller_id"
	BusinessName       = "business_name"
	DocumentURL        = "document_url"
	VerificationStatus = "verification_status"
	RejectionReason    = "rejection_reason"
	VerificationDate   = "verification_date"
	Version            = "version"
	CreatedAt          = "created_at"
	UpdatedAt          = "updated_at"
)

// Columns returns every column in Data order.
func Columns() []string {
	return []string{
		SellerID,
		BusinessName,
		DocumentURL,
		VerificationStatus,
		RejectionReason,
		VerificationDate,
		Version,
		CreatedAt,
		UpdatedAt,
	}
}
