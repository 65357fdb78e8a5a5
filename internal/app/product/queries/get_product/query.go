package get_product

import (
	"context"
	"strings"

	"github.com/light-bringer/expiry-deals-service/internal/app/product/contracts"
	"github.com/light-bringer/expiry-deals-service/internal/app/product/domain"
	"github.com/light-bringer/expiry-deals-service/internal/pkg/clock"
)

// Request contains the product ID to retrieve.
type Request struct {
	ProductID    string
	DeliveryMode string
	// Quantity is the amount the shopper is about to select; zero skips the warning.
	Quantity int64
}

// Response is the product detail view.
type Response struct {
	contracts.PricedProduct
	// QuantityWarning asks the shopper to confirm Quantity before adding it.
	QuantityWarning bool
}

// Query handles the get product query use case.
type Query struct {
	readModel  contracts.ReadModel
	calculator *domain.PricingCalculator
	clock      clock.Clock
}

// NewQuery creates a new get product query.
func NewQuery(readModel contracts.ReadModel, calculator *domain.PricingCalculator, clk clock.Clock) *Query {
	return &Query{
		readModel:  readModel,
		calculator: calculator,
		clock:      clk,
	}
}

// Execute retrieves a product by ID and derives its pricing for today.
func (q *Query) Execute(ctx context.Context, req *Request) (*Response, error) {
	if strings.TrimSpace(req.ProductID) == "" {
		return nil, domain.NewValidationError("productId", "is required")
	}
	if req.Quantity < 0 {
		return nil, domain.NewValidationError("quantity", "must not be negative")
	}
	mode, err := domain.ParseDeliveryMode(req.DeliveryMode)
	if err != nil {
		return nil, err
	}

	product, err := q.readModel.GetProductByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	pricing, err := q.calculator.Derive(product, clock.Today(q.clock), mode)
	if err != nil {
		return nil, err
	}

	resp := &Response{
		PricedProduct: contracts.PricedProduct{Product: product, Pricing: pricing},
	}
	if req.Quantity > 0 {
		resp.QuantityWarning = q.calculator.QuantityChangeWarning(pricing.DaysUntilExpiry, req.Quantity, domain.WarningContextProductDetail)
	}

	return resp, nil
}
