package list_verifications

import (
	"context"

	"github.com/light-bringer/expiry-deals-service/internal/app/seller/contracts"
	"github.com/light-bringer/expiry-deals-service/internal/app/seller/domain"
)

// DefaultLimit bounds the admin listing.
const DefaultLimit = 100

// Request selects verification records by status. Empty means pending.
type Request struct {
	Status string
	Limit  int
}

// Query handles the list verifications query use case.
type Query struct {
	readModel contracts.VerificationReadModel
}

// NewQuery creates a new list verifications query.
func NewQuery(readModel contracts.VerificationReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute lists verification records newest first.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*contracts.VerificationDTO, error) {
	status, err := domain.ParseStatus(req.Status)
	if err != nil {
		return nil, err
	}

	limit := req.Limit
	if limit <= 0 || limit > DefaultLimit {
		limit = DefaultLimit
	}

	return q.readModel.ListByStatus(ctx, status, limit)
}
