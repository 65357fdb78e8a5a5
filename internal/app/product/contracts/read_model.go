package contracts

import (
	"context"
	"strings"

	"cloud.google.com/go/civil"

	"github.com/light-bringer/expiry-deals-service/internal/app/product/domain"
)

// Page size bounds for catalog listings.
const (
	DefaultPageSize = 50
	MaxPageSize     = 100
)

// SortKey orders catalog listings.
type SortKey string

const (
	SortNewest       SortKey = "newest"
	SortPriceAsc     SortKey = "price-asc"
	SortPriceDesc    SortKey = "price-desc"
	SortDiscount     SortKey = "discount"
	SortExpiryUrgent SortKey = "expiry-urgent"
)

// ParseSortKey parses a sort key. Empty means newest first.
func ParseSortKey(s string) (SortKey, error) {
	switch key := SortKey(strings.TrimSpace(s)); key {
	case "":
		return SortNewest, nil
	case SortNewest, SortPriceAsc, SortPriceDesc, SortDiscount, SortExpiryUrgent:
		return key, nil
	default:
		return "", domain.NewValidationError("sortBy", "must be one of newest, price-asc, price-desc, discount, expiry-urgent")
	}
}

// ExpiryWindow keeps only products whose expiry is at least N days away.
type ExpiryWindow string

const (
	ExpiryAny      ExpiryWindow = ""
	ExpiryIn30Days ExpiryWindow = "30days"
	Expiry90Days   ExpiryWindow = "90days"
	Expiry180Days  ExpiryWindow = "180days"
)

// ParseExpiryWindow parses an expiry window. Empty means no restriction.
func ParseExpiryWindow(s string) (ExpiryWindow, error) {
	switch w := ExpiryWindow(strings.TrimSpace(s)); w {
	case ExpiryAny, ExpiryIn30Days, Expiry90Days, Expiry180Days:
		return w, nil
	default:
		return "", domain.NewValidationError("expiry", "must be one of 30days, 90days, 180days")
	}
}

// MinDays returns the minimum days to expiry the window requires.
func (w ExpiryWindow) MinDays() int {
	switch w {
	case ExpiryIn30Days:
		return 30
	case Expiry90Days:
		return 90
	case Expiry180Days:
		return 180
	default:
		return 0
	}
}

// ListFilter defines filtering options for listing products.
type ListFilter struct {
	Category string
	SortBy   SortKey
	// MinExpiryDate excludes products expiring before this day when set.
	MinExpiryDate *civil.Date
	// Origin and MaxDistanceKm restrict results to sellers near the shopper.
	Origin        *domain.GeoPoint
	MaxDistanceKm float64
	PageSize      int
}

// ListResult contains product list results.
type ListResult struct {
	Products   []*domain.Product
	TotalCount int64
}

// ReadModel defines the interface for catalog queries.
type ReadModel interface {
	// GetProductByID retrieves a product snapshot by ID
	GetProductByID(ctx context.Context, productID string) (*domain.Product, error)

	// ListProducts retrieves products matching the filter
	ListProducts(ctx context.Context, filter *ListFilter) (*ListResult, error)
}

// PricedProduct is a catalog record annotated with its derived pricing.
type PricedProduct struct {
	Product *domain.Product
	Pricing *domain.DerivedPricing
	// DistanceKm is set when the listing was filtered by distance.
	DistanceKm *float64
}
