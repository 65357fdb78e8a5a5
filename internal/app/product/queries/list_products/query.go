package list_products

import (
	"context"

	"cloud.google.com/go/civil"

	"github.com/light-bringer/expiry-deals-service/internal/app/product/contracts"
	"github.com/light-bringer/expiry-deals-service/internal/app/product/domain"
	"github.com/light-bringer/expiry-deals-service/internal/pkg/clock"
)

// Request contains filtering and pagination parameters.
type Request struct {
	Category     string
	SortBy       string
	Expiry       string
	Latitude     *float64
	Longitude    *float64
	DistanceKm   float64
	PageSize     int
	DeliveryMode string
}

// Response contains annotated products.
type Response struct {
	Products   []*contracts.PricedProduct
	TotalCount int64
}

// Query handles the list products query use case.
type Query struct {
	readModel  contracts.ReadModel
	calculator *domain.PricingCalculator
	clock      clock.Clock
}

// NewQuery creates a new list products query.
func NewQuery(readModel contracts.ReadModel, calculator *domain.PricingCalculator, clk clock.Clock) *Query {
	return &Query{
		readModel:  readModel,
		calculator: calculator,
		clock:      clk,
	}
}

// Execute retrieves products matching the request and annotates each one.
func (q *Query) Execute(ctx context.Context, req *Request) (*Response, error) {
	today := clock.Today(q.clock)

	filter, err := q.buildFilter(req, today)
	if err != nil {
		return nil, err
	}
	mode, err := domain.ParseDeliveryMode(req.DeliveryMode)
	if err != nil {
		return nil, err
	}

	result, err := q.readModel.ListProducts(ctx, filter)
	if err != nil {
		return nil, err
	}

	products := make([]*contracts.PricedProduct, 0, len(result.Products))
	for _, p := range result.Products {
		pricing, err := q.calculator.Derive(p, today, mode)
		if err != nil {
			return nil, err
		}

		priced := &contracts.PricedProduct{Product: p, Pricing: pricing}
		if filter.Origin != nil && p.Location != nil {
			d := domain.DistanceKm(*filter.Origin, *p.Location)
			priced.DistanceKm = &d
		}
		products = append(products, priced)
	}

	return &Response{
		Products:   products,
		TotalCount: result.TotalCount,
	}, nil
}

func (q *Query) buildFilter(req *Request, today civil.Date) (*contracts.ListFilter, error) {
	sortBy, err := contracts.ParseSortKey(req.SortBy)
	if err != nil {
		return nil, err
	}
	window, err := contracts.ParseExpiryWindow(req.Expiry)
	if err != nil {
		return nil, err
	}
	if req.PageSize < 0 {
		return nil, domain.NewValidationError("pageSize", "must not be negative")
	}

	filter := &contracts.ListFilter{
		Category: req.Category,
		SortBy:   sortBy,
		PageSize: req.PageSize,
	}

	if window != contracts.ExpiryAny {
		minExpiry := today.AddDays(window.MinDays())
		filter.MinExpiryDate = &minExpiry
	}

	if req.DistanceKm < 0 {
		return nil, domain.NewValidationError("distance", "must not be negative")
	}
	if req.DistanceKm > 0 {
		if req.Latitude == nil || req.Longitude == nil {
			return nil, domain.NewValidationError("lat", "lat and lng are required with a distance filter")
		}
		origin := domain.GeoPoint{Latitude: *req.Latitude, Longitude: *req.Longitude}
		if err := origin.Validate(); err != nil {
			return nil, err
		}
		filter.Origin = &origin
		filter.MaxDistanceKm = req.DistanceKm
	}

	return filter, nil
}
