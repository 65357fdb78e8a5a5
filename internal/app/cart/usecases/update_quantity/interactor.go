package update_quantity

import (
	"context"
	"fmt"

	"github.com/light-bringer/expiry-deals-service/internal/app/cart/contracts"
	"github.com/light-bringer/expiry-deals-service/internal/app/product/domain"
	"github.com/light-bringer/expiry-deals-service/internal/pkg/clock"
)

// MinQuantity is the floor applied to quantity changes; removing a line is a separate operation.
const MinQuantity = 1

// Request contains the data to change a line's quantity.
type Request struct {
	CartID    string
	ProductID string
	Quantity  int64
	Confirmed bool
}

// Interactor handles the update quantity use case.
type Interactor struct {
	store      contracts.CartStore
	calculator *domain.PricingCalculator
	clock      clock.Clock
}

// NewInteractor creates a new update quantity interactor.
func NewInteractor(store contracts.CartStore, calculator *domain.PricingCalculator, clock clock.Clock) *Interactor {
	return &Interactor{
		store:      store,
		calculator: calculator,
		clock:      clock,
	}
}

// Execute sets the quantity of an existing cart line.
func (i *Interactor) Execute(ctx context.Context, req *Request) (*contracts.MutationResult, error) {
	if err := contracts.ValidateIDs(req.CartID, req.ProductID); err != nil {
		return nil, err
	}

	line, err := i.store.Get(ctx, req.CartID, req.ProductID)
	if err != nil {
		return nil, err
	}

	quantity := req.Quantity
	if quantity < MinQuantity {
		quantity = MinQuantity
	}
	if quantity > line.Product.QuantityAvailable {
		return nil, fmt.Errorf("%w: %d requested, %d available", domain.ErrInsufficientStock, quantity, line.Product.QuantityAvailable)
	}

	daysLeft := i.calculator.DaysUntilExpiry(line.Product.ExpiryDate, clock.Today(i.clock))
	if i.calculator.QuantityChangeWarning(daysLeft, quantity, domain.WarningContextCart) && !req.Confirmed {
		result := contracts.NeedsConfirmation(daysLeft, quantity)
		result.Line = line
		return result, nil
	}

	line.Quantity = quantity
	if err := i.store.Put(ctx, req.CartID, line); err != nil {
		return nil, fmt.Errorf("failed to save cart line: %w", err)
	}

	return &contracts.MutationResult{Applied: true, Line: line}, nil
}
