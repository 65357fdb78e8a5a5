package remove_item

import (
	"context"

	"github.com/light-bringer/expiry-deals-service/internal/app/cart/contracts"
)

// Request identifies the line to remove.
type Request struct {
	CartID    string
	ProductID string
}

// Interactor handles the remove item use case.
type Interactor struct {
	store contracts.CartStore
}

// NewInteractor creates a new remove item interactor.
func NewInteractor(store contracts.CartStore) *Interactor {
	return &Interactor{store: store}
}

// Execute removes a product from the cart.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	if err := contracts.ValidateIDs(req.CartID, req.ProductID); err != nil {
		return err
	}
	return i.store.Remove(ctx, req.CartID, req.ProductID)
}
