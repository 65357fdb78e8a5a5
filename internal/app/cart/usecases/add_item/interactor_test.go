package add_item

import (
	"context"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/expiry-deals-service/internal/app/cart/contracts"
	"github.com/light-bringer/expiry-deals-service/internal/app/cart/repo"
	catalog "github.com/light-bringer/expiry-deals-service/internal/app/product/contracts"
	"github.com/light-bringer/expiry-deals-service/internal/app/product/domain"
	"github.com/light-bringer/expiry-deals-service/internal/pkg/clock"
)

type stubCatalog map[string]*domain.Product

func (s stubCatalog) GetProductByID(_ context.Context, id string) (*domain.Product, error) {
	if p, ok := s[id]; ok {
		return p.Copy(), nil
	}
	return nil, domain.ErrProductNotFound
}

func (s stubCatalog) ListProducts(context.Context, *catalog.ListFilter) (*catalog.ListResult, error) {
	return &catalog.ListResult{}, nil
}

var today = civil.Date{Year: 2024, Month: 1, Day: 16}

func product(id string, expiry civil.Date, stock int64) *domain.Product {
	return &domain.Product{
		ID:                id,
		OriginalPrice:     domain.NewMoneyFromInt(100),
		FinalPrice:        domain.NewMoneyFromInt(60),
		ExpiryDate:        expiry,
		QuantityAvailable: stock,
	}
}

func setup(t *testing.T) (*Interactor, contracts.CartStore) {
	t.Helper()
	store := repo.NewMemoryStore()
	products := stubCatalog{
		"jam":   product("jam", today.AddDays(60), 5),
		"bread": product("bread", today.AddDays(1), 10),
		"gone":  product("gone", today.AddDays(60), 0),
	}
	return NewInteractor(store, products, domain.NewPricingCalculator(), clock.NewMockClockOn(today)), store
}

func TestInteractor_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("adds a new line", func(t *testing.T) {
		uc, store := setup(t)

		res, err := uc.Execute(ctx, &Request{CartID: "c1", ProductID: "jam", Quantity: 2, DeliveryMode: "pickup"})
		require.NoError(t, err)
		assert.True(t, res.Applied)
		assert.Equal(t, int64(2), res.Line.Quantity)
		assert.Equal(t, domain.DeliveryModePickup, res.Line.DeliveryMode)

		lines, err := store.Lines(ctx, "c1")
		require.NoError(t, err)
		assert.Len(t, lines, 1)
	})

	t.Run("merges quantity with the existing line", func(t *testing.T) {
		uc, store := setup(t)

		_, err := uc.Execute(ctx, &Request{CartID: "c1", ProductID: "jam", Quantity: 2})
		require.NoError(t, err)
		_, err = uc.Execute(ctx, &Request{CartID: "c1", ProductID: "jam", Quantity: 3})
		require.NoError(t, err)

		line, err := store.Get(ctx, "c1", "jam")
		require.NoError(t, err)
		assert.Equal(t, int64(5), line.Quantity)
	})

	t.Run("merged quantity cannot exceed stock", func(t *testing.T) {
		uc, store := setup(t)

		_, err := uc.Execute(ctx, &Request{CartID: "c1", ProductID: "jam", Quantity: 4})
		require.NoError(t, err)
		_, err = uc.Execute(ctx, &Request{CartID: "c1", ProductID: "jam", Quantity: 2})
		assert.ErrorIs(t, err, domain.ErrInsufficientStock)

		line, err := store.Get(ctx, "c1", "jam")
		require.NoError(t, err)
		assert.Equal(t, int64(4), line.Quantity)
	})

	t.Run("near expiry needs confirmation above one unit", func(t *testing.T) {
		uc, store := setup(t)

		res, err := uc.Execute(ctx, &Request{CartID: "c1", ProductID: "bread", Quantity: 2})
		require.NoError(t, err)
		assert.False(t, res.Applied)
		assert.True(t, res.RequiresConfirmation)
		assert.Contains(t, res.Warning, "1 day")

		_, err = store.Get(ctx, "c1", "bread")
		assert.ErrorIs(t, err, domain.ErrCartLineNotFound)

		res, err = uc.Execute(ctx, &Request{CartID: "c1", ProductID: "bread", Quantity: 2, Confirmed: true})
		require.NoError(t, err)
		assert.True(t, res.Applied)
	})

	t.Run("single unit near expiry is fine", func(t *testing.T) {
		uc, _ := setup(t)
		res, err := uc.Execute(ctx, &Request{CartID: "c1", ProductID: "bread", Quantity: 1})
		require.NoError(t, err)
		assert.True(t, res.Applied)
	})

	t.Run("errors", func(t *testing.T) {
		uc, _ := setup(t)

		_, err := uc.Execute(ctx, &Request{CartID: "c1", ProductID: "gone", Quantity: 1})
		assert.ErrorIs(t, err, domain.ErrProductUnavailable)

		_, err = uc.Execute(ctx, &Request{CartID: "c1", ProductID: "ghost", Quantity: 1})
		assert.ErrorIs(t, err, domain.ErrProductNotFound)

		_, err = uc.Execute(ctx, &Request{CartID: "c1", ProductID: "jam", Quantity: 0})
		assert.ErrorIs(t, err, domain.ErrValidation)

		_, err = uc.Execute(ctx, &Request{ProductID: "jam", Quantity: 1})
		assert.ErrorIs(t, err, domain.ErrValidation)

		_, err = uc.Execute(ctx, &Request{CartID: "c1", ProductID: "jam", Quantity: 1, DeliveryMode: "post"})
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}
