package add_item

import (
	"context"
	"errors"
	"fmt"

	"github.com/light-bringer/expiry-deals-service/internal/app/cart/contracts"
	catalog "github.com/light-bringer/expiry-deals-service/internal/app/product/contracts"
	"github.com/light-bringer/expiry-deals-service/internal/app/product/domain"
	"github.com/light-bringer/expiry-deals-service/internal/pkg/clock"
)

// Request contains the data to add a product to a cart.
type Request struct {
	CartID       string
	ProductID    string
	Quantity     int64
	DeliveryMode string
	// Confirmed acknowledges the expiry warning for this quantity.
	Confirmed bool
}

// Interactor handles the add item use case.
type Interactor struct {
	store      contracts.CartStore
	catalog    catalog.ReadModel
	calculator *domain.PricingCalculator
	clock      clock.Clock
}

// NewInteractor creates a new add item interactor.
func NewInteractor(
	store contracts.CartStore,
	catalog catalog.ReadModel,
	calculator *domain.PricingCalculator,
	clock clock.Clock,
) *Interactor {
	return &Interactor{
		store:      store,
		catalog:    catalog,
		calculator: calculator,
		clock:      clock,
	}
}

// Execute adds the product to the cart, merging with an existing line.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*contracts.MutationResult, error) {
	// 1. Validate input
	if err := contracts.ValidateIDs(req.CartID, req.ProductID); err != nil {
		return nil, err
	}
	if req.Quantity < 1 {
		return nil, domain.NewValidationError("quantity", "must be at least 1")
	}
	mode, err := domain.ParseDeliveryMode(req.DeliveryMode)
	if err != nil {
		return nil, err
	}

	// 2. Load the current product snapshot
	product, err := i.catalog.GetProductByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if !product.IsAvailable() {
		return nil, domain.ErrProductUnavailable
	}

	// 3. Merge with the existing line
	now := i.clock.Now()
	quantity := req.Quantity
	addedAt := now
	existing, err := i.store.Get(ctx, req.CartID, req.ProductID)
	switch {
	case err == nil:
		quantity += existing.Quantity
		addedAt = existing.AddedAt
	case !errors.Is(err, domain.ErrCartLineNotFound):
		return nil, fmt.Errorf("failed to load cart line: %w", err)
	}

	if quantity > product.QuantityAvailable {
		return nil, fmt.Errorf("%w: %d requested, %d available", domain.ErrInsufficientStock, quantity, product.QuantityAvailable)
	}

	// 4. Expiry warning on the requested amount
	daysLeft := i.calculator.DaysUntilExpiry(product.ExpiryDate, clock.Today(i.clock))
	if i.calculator.QuantityChangeWarning(daysLeft, req.Quantity, domain.WarningContextProductDetail) && !req.Confirmed {
		return contracts.NeedsConfirmation(daysLeft, req.Quantity), nil
	}

	// 5. Persist
	line, err := domain.NewCartLine(product, quantity, mode, addedAt)
	if err != nil {
		return nil, err
	}
	if err := i.store.Put(ctx, req.CartID, line); err != nil {
		return nil, fmt.Errorf("failed to save cart line: %w", err)
	}

	return &contracts.MutationResult{Applied: true, Line: line}, nil
}
