package review_seller

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	outboxcontracts "github.com/light-bringer/expiry-deals-service/internal/app/outbox/contracts"
	productdomain "github.com/light-bringer/expiry-deals-service/internal/app/product/domain"
	"github.com/light-bringer/expiry-deals-service/internal/app/seller/contracts"
	"github.com/light-bringer/expiry-deals-service/internal/app/seller/domain"
	"github.com/light-bringer/expiry-deals-service/internal/models/m_seller_verification"
	"github.com/light-bringer/expiry-deals-service/internal/pkg/clock"
	"github.com/light-bringer/expiry-deals-service/internal/pkg/committer"
)

// Request contains an admin decision on a seller.
type Request struct {
	SellerID        string
	Approved        bool
	RejectionReason string
}

// Response is the verification state after the decision.
type Response struct {
	Verification *contracts.VerificationDTO
}

// Interactor handles the review seller use case.
type Interactor struct {
	repo       contracts.VerificationRepository
	outboxRepo outboxcontracts.OutboxRepository
	committer  contracts.Committer
	clock      clock.Clock
}

// NewInteractor creates a new review seller interactor.
func NewInteractor(
	repo contracts.VerificationRepository,
	outboxRepo outboxcontracts.OutboxRepository,
	committer contracts.Committer,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		repo:       repo,
		outboxRepo: outboxRepo,
		committer:  committer,
		clock:      clock,
	}
}

// Execute approves or rejects a seller following the Golden Mutation Pattern.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*Response, error) {
	sellerID := strings.TrimSpace(req.SellerID)
	if sellerID == "" {
		return nil, productdomain.NewValidationError("sellerId", "is required")
	}

	// 1. Load aggregate
	verification, err := i.repo.GetBySellerID(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	expectedVersion := verification.Version()

	// 2. Call domain method
	now := i.clock.Now()
	if req.Approved {
		verification.Approve(now)
	} else {
		verification.Reject(req.RejectionReason, now)
	}

	// 3. Create commit plan
	plan := committer.NewPlan()

	// 4. Add repository mutation
	plan.Add(i.repo.UpdateMut(verification))

	// 5. Add outbox events
	for _, event := range verification.DomainEvents() {
		payload, err := i.serializeEvent(event)
		if err != nil {
			return nil, fmt.Errorf("failed to serialize event: %w", err)
		}
		outboxEvent := i.outboxRepo.EnrichEvent(event, payload)
		plan.Add(i.outboxRepo.InsertMut(outboxEvent))
	}

	// 6. Apply plan with optimistic locking
	guard := committer.VersionGuard{
		Table:         m_seller_verification.TableName,
		Key:           m_seller_verification.KeyFor(sellerID),
		VersionColumn: m_seller_verification.Version,
	}
	if err := i.committer.ApplyWithVersionCheck(ctx, guard, expectedVersion, plan); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	verification.ClearEvents()

	return &Response{Verification: toDTO(verification)}, nil
}

// serializeEvent converts a domain event to JSON payload.
func (i *Interactor) serializeEvent(event domain.DomainEvent) (string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func toDTO(v *domain.SellerVerification) *contracts.VerificationDTO {
	return &contracts.VerificationDTO{
		SellerID:         v.SellerID(),
		BusinessName:     v.BusinessName(),
		DocumentURL:      v.DocumentURL(),
		Status:           v.Status(),
		RejectionReason:  v.RejectionReason(),
		VerificationDate: v.VerificationDate(),
		CreatedAt:        v.CreatedAt(),
	}
}
