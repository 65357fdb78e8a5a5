package get_summary

import (
	"context"
	"fmt"
	"strings"

	"github.com/light-bringer/expiry-deals-service/internal/app/cart/contracts"
	"github.com/light-bringer/expiry-deals-service/internal/app/product/domain"
	"github.com/light-bringer/expiry-deals-service/internal/pkg/clock"
)

// Request selects the cart and the order-level delivery mode.
type Request struct {
	CartID       string
	DeliveryMode string
}

// Query handles the cart summary query.
type Query struct {
	store      contracts.CartStore
	calculator *domain.PricingCalculator
	clock      clock.Clock
}

// NewQuery creates a new cart summary query.
func NewQuery(store contracts.CartStore, calculator *domain.PricingCalculator, clk clock.Clock) *Query {
	return &Query{
		store:      store,
		calculator: calculator,
		clock:      clk,
	}
}

// Execute prices the cart for today.
func (q *Query) Execute(ctx context.Context, req *Request) (*domain.CartSummary, error) {
	if strings.TrimSpace(req.CartID) == "" {
		return nil, domain.NewValidationError("cartId", "is required")
	}
	mode, err := domain.ParseDeliveryMode(req.DeliveryMode)
	if err != nil {
		return nil, err
	}

	lines, err := q.store.Lines(ctx, req.CartID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	return q.calculator.SummarizeCart(lines, mode, clock.Today(q.clock))
}
