package contracts

import (
	"context"

	"github.com/light-bringer/expiry-deals-service/internal/app/product/domain"
)

// CartStore persists the lines of shopper carts.
// Lines keep insertion order; Put on an existing product replaces it in place.
type CartStore interface {
	// Lines returns all lines of a cart. An unknown cart is empty.
	Lines(ctx context.Context, cartID string) ([]*domain.CartLine, error)

	// Get returns one line or domain.ErrCartLineNotFound.
	Get(ctx context.Context, cartID, productID string) (*domain.CartLine, error)

	// Put inserts or replaces the line for line.ProductID().
	Put(ctx context.Context, cartID string, line *domain.CartLine) error

	// Remove deletes one line or returns domain.ErrCartLineNotFound.
	Remove(ctx context.Context, cartID, productID string) error

	// Clear deletes the whole cart.
	Clear(ctx context.Context, cartID string) error
}
