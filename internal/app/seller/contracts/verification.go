package contracts

import (
	"context"
	"time"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/expiry-deals-service/internal/app/seller/domain"
	"github.com/light-bringer/expiry-deals-service/internal/pkg/committer"
)

// VerificationRepository defines the write side of seller verification.
type VerificationRepository interface {
	// GetBySellerID loads the aggregate for a seller
	GetBySellerID(ctx context.Context, sellerID string) (*domain.SellerVerification, error)

	// InsertMut creates a mutation for a new verification request
	InsertMut(v *domain.SellerVerification) *spanner.Mutation

	// UpdateMut creates a mutation for the dirty fields of v, or nil when unchanged
	UpdateMut(v *domain.SellerVerification) *spanner.Mutation
}

// VerificationReadModel lists verification records for the admin console.
type VerificationReadModel interface {
	ListByStatus(ctx context.Context, status domain.Status, limit int) ([]*VerificationDTO, error)
}

// Committer applies a commit plan guarded by a row version.
type Committer interface {
	ApplyWithVersionCheck(ctx context.Context, guard committer.VersionGuard, expectedVersion int64, plan *committer.CommitPlan) error
}

// VerificationDTO is a read-only verification record.
type VerificationDTO struct {
	SellerID         string
	BusinessName     string
	DocumentURL      string
	Status           domain.Status
	RejectionReason  *string
	VerificationDate *time.Time
	CreatedAt        time.Time
}
