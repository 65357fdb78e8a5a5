package clear_cart

import (
	"context"
	"strings"

	"github.com/light-bringer/expiry-deals-service/internal/app/cart/contracts"
	"github.com/light-bringer/expiry-deals-service/internal/app/product/domain"
)

// Request identifies the cart to empty.
type Request struct {
	CartID string
}

// Interactor handles the clear cart use case.
type Interactor struct {
	store contracts.CartStore
}

// NewInteractor creates a new clear cart interactor.
func NewInteractor(store contracts.CartStore) *Interactor {
	return &Interactor{store: store}
}

// Execute removes every line of the cart.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	if strings.TrimSpace(req.CartID) == "" {
		return domain.NewValidationError("cartId", "is required")
	}
	return i.store.Clear(ctx, req.CartID)
}
