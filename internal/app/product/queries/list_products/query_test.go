package list_products

import (
	"context"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/expiry-deals-service/internal/app/product/contracts"
	"github.com/light-bringer/expiry-deals-service/internal/app/product/domain"
	"github.com/light-bringer/expiry-deals-service/internal/pkg/clock"
)

type recordingReadModel struct {
	lastFilter *contracts.ListFilter
	products   []*domain.Product
}

func (r *recordingReadModel) GetProductByID(context.Context, string) (*domain.Product, error) {
	return nil, domain.ErrProductNotFound
}

func (r *recordingReadModel) ListProducts(_ context.Context, filter *contracts.ListFilter) (*contracts.ListResult, error) {
	r.lastFilter = filter
	return &contracts.ListResult{Products: r.products, TotalCount: int64(len(r.products))}, nil
}

func ptr(f float64) *float64 { return &f }

func TestQuery_Execute(t *testing.T) {
	ctx := context.Background()
	today := civil.Date{Year: 2024, Month: 1, Day: 16}

	soap := &domain.Product{
		ID:            "soap",
		OriginalPrice: domain.NewMoneyFromInt(100),
		FinalPrice:    domain.NewMoneyFromInt(80),
		ExpiryDate:    civil.Date{Year: 2024, Month: 4, Day: 1},
		Location:      &domain.GeoPoint{Latitude: 19.1136, Longitude: 72.8697},
	}

	newQuery := func() (*Query, *recordingReadModel) {
		rm := &recordingReadModel{products: []*domain.Product{soap}}
		return NewQuery(rm, domain.NewPricingCalculator(), clock.NewMockClockOn(today)), rm
	}

	t.Run("annotates every product", func(t *testing.T) {
		q, rm := newQuery()
		resp, err := q.Execute(ctx, &Request{Category: "soaps"})
		require.NoError(t, err)

		require.Len(t, resp.Products, 1)
		assert.Equal(t, domain.UrgencySafe, resp.Products[0].Pricing.UrgencyTier)
		assert.Equal(t, int64(20), resp.Products[0].Pricing.DiscountPercentage)
		assert.Nil(t, resp.Products[0].DistanceKm)

		assert.Equal(t, "soaps", rm.lastFilter.Category)
		assert.Equal(t, contracts.SortNewest, rm.lastFilter.SortBy)
		assert.Nil(t, rm.lastFilter.MinExpiryDate)
	})

	t.Run("expiry window becomes a minimum expiry date", func(t *testing.T) {
		q, rm := newQuery()
		_, err := q.Execute(ctx, &Request{Expiry: "90days", SortBy: "expiry-urgent"})
		require.NoError(t, err)

		require.NotNil(t, rm.lastFilter.MinExpiryDate)
		assert.Equal(t, civil.Date{Year: 2024, Month: 4, Day: 15}, *rm.lastFilter.MinExpiryDate)
		assert.Equal(t, contracts.SortExpiryUrgent, rm.lastFilter.SortBy)
	})

	t.Run("distance filter reports distance", func(t *testing.T) {
		q, rm := newQuery()
		resp, err := q.Execute(ctx, &Request{Latitude: ptr(19.0760), Longitude: ptr(72.8777), DistanceKm: 10})
		require.NoError(t, err)

		require.NotNil(t, rm.lastFilter.Origin)
		assert.Equal(t, 10.0, rm.lastFilter.MaxDistanceKm)
		require.NotNil(t, resp.Products[0].DistanceKm)
		assert.Less(t, *resp.Products[0].DistanceKm, 10.0)
	})

	t.Run("invalid input", func(t *testing.T) {
		q, _ := newQuery()
		bad := []*Request{
			{SortBy: "cheapest"},
			{Expiry: "7days"},
			{DistanceKm: 5},
			{DistanceKm: -1},
			{DistanceKm: 5, Latitude: ptr(120), Longitude: ptr(0)},
			{DeliveryMode: "boat"},
			{PageSize: -1},
		}
		for _, req := range bad {
			_, err := q.Execute(ctx, req)
			assert.ErrorIs(t, err, domain.ErrValidation, "%+v", req)
		}
	})
}
