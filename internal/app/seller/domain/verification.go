package domain

import (
	"errors"
	"strings"
	"time"

	productdomain "github.com/light-bringer/expiry-deals-service/internal/app/product/domain"
)

// DefaultRejectionReason is stored when an admin rejects without a reason.
const DefaultRejectionReason = "Documentation incomplete"

// ErrVerificationNotFound is returned when no verification record exists for a seller.
var ErrVerificationNotFound = errors.New("verification record not found")

// Field names for change tracking
const (
	FieldStatus           = "status"
	FieldRejectionReason  = "rejection_reason"
	FieldVerificationDate = "verification_date"
)

// Status is the review state of a seller.
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// ParseStatus parses a status filter. Empty means pending.
func ParseStatus(s string) (Status, error) {
	switch st := Status(strings.ToLower(strings.TrimSpace(s))); st {
	case "":
		return StatusPending, nil
	case StatusPending, StatusApproved, StatusRejected:
		return st, nil
	default:
		return "", productdomain.NewValidationError("status", "must be one of pending, approved, rejected")
	}
}

// SellerVerification is the aggregate root for a seller's verification review.
type SellerVerification struct {
	sellerID         string
	businessName     string
	documentURL      string
	status           Status
	rejectionReason  *string
	verificationDate *time.Time
	version          int64
	createdAt        time.Time
	updatedAt        time.Time

	changes *ChangeTracker
	events  []DomainEvent
}

// NewSellerVerification creates a pending verification request.
func NewSellerVerification(sellerID, businessName, documentURL string, now time.Time) (*SellerVerification, error) {
	if strings.TrimSpace(sellerID) == "" {
		return nil, productdomain.NewValidationError("sellerId", "is required")
	}
	if strings.TrimSpace(businessName) == "" {
		return nil, productdomain.NewValidationError("businessName", "is required")
	}

	return &SellerVerification{
		sellerID:     sellerID,
		businessName: businessName,
		documentURL:  documentURL,
		status:       StatusPending,
		createdAt:    now,
		updatedAt:    now,
		changes:      NewChangeTracker(),
	}, nil
}

// ReconstructSellerVerification rebuilds an aggregate loaded from storage.
func ReconstructSellerVerification(
	sellerID, businessName, documentURL string,
	status Status,
	rejectionReason *string,
	verificationDate *time.Time,
	version int64,
	createdAt, updatedAt time.Time,
) *SellerVerification {
	return &SellerVerification{
		sellerID:         sellerID,
		businessName:     businessName,
		documentURL:      documentURL,
		status:           status,
		rejectionReason:  rejectionReason,
		verificationDate: verificationDate,
		version:          version,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
		changes:          NewChangeTracker(),
	}
}

// Approve marks the seller verified and clears any earlier rejection reason.
// A decision can be revised; every review refreshes the verification date.
func (v *SellerVerification) Approve(now time.Time) {
	v.status = StatusApproved
	v.rejectionReason = nil
	v.verificationDate = &now
	v.updatedAt = now
	v.markReviewed()

	v.events = append(v.events, &VerificationApprovedEvent{SellerID: v.sellerID, ApprovedAt: now})
}

// Reject marks the seller rejected. A blank reason becomes DefaultRejectionReason.
func (v *SellerVerification) Reject(reason string, now time.Time) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = DefaultRejectionReason
	}

	v.status = StatusRejected
	v.rejectionReason = &reason
	v.verificationDate = &now
	v.updatedAt = now
	v.markReviewed()

	v.events = append(v.events, &VerificationRejectedEvent{SellerID: v.sellerID, Reason: reason, RejectedAt: now})
}

func (v *SellerVerification) markReviewed() {
	v.changes.MarkDirty(FieldStatus)
	v.changes.MarkDirty(FieldRejectionReason)
	v.changes.MarkDirty(FieldVerificationDate)
}

func (v *SellerVerification) SellerID() string     { return v.sellerID }
func (v *SellerVerification) BusinessName() string { return v.businessName }
func (v *SellerVerification) DocumentURL() string  { return v.documentURL }
func (v *SellerVerification) Status() Status       { return v.status }
func (v *SellerVerification) Version() int64       { return v.version }
func (v *SellerVerification) CreatedAt() time.Time { return v.createdAt }
func (v *SellerVerification) UpdatedAt() time.Time { return v.updatedAt }

// RejectionReason returns the stored reason, or nil unless rejected.
func (v *SellerVerification) RejectionReason() *string {
	if v.rejectionReason == nil {
		return nil
	}
	r := *v.rejectionReason
	return &r
}

// VerificationDate returns when the last review happened.
func (v *SellerVerification) VerificationDate() *time.Time {
	if v.verificationDate == nil {
		return nil
	}
	d := *v.verificationDate
	return &d
}

// Changes returns the change tracker.
func (v *SellerVerification) Changes() *ChangeTracker {
	return v.changes
}

// DomainEvents returns the events raised since loading.
func (v *SellerVerification) DomainEvents() []DomainEvent {
	return v.events
}

// ClearEvents drops recorded events once they are committed.
func (v *SellerVerification) ClearEvents() {
	v.events = nil
}
