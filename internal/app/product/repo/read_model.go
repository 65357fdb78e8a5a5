package repo

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/expiry-deals-service/internal/app/product/contracts"
	"github.com/light-bringer/expiry-deals-service/internal/app/product/domain"
	"github.com/light-bringer/expiry-deals-service/internal/models/m_product"
	"github.com/light-bringer/expiry-deals-service/internal/pkg/query"
)

// ReadModelImpl implements ReadModel for Spanner.
type ReadModelImpl struct {
	client *spanner.Client
}

// NewReadModel creates a new ReadModel implementation.
func NewReadModel(client *spanner.Client) contracts.ReadModel {
	return &ReadModelImpl{
		client: client,
	}
}

// GetProductByID retrieves a product snapshot by ID.
func (rm *ReadModelImpl) GetProductByID(ctx context.Context, productID string) (*domain.Product, error) {
	row, err := rm.client.Single().ReadRow(ctx, m_product.TableName, spanner.Key{productID}, m_product.Columns())
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound || errors.Is(err, iterator.Done) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to read product: %w", err)
	}

	var data m_product.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse product: %w", err)
	}

	return dataToProduct(&data), nil
}

// ListProducts retrieves products matching the filter.
// The distance filter runs after the query, so the page limit is applied in Go
// when an origin is given.
func (rm *ReadModelImpl) ListProducts(ctx context.Context, filter *contracts.ListFilter) (*contracts.ListResult, error) {
	if filter == nil {
		filter = &contracts.ListFilter{}
	}
	pageSize := normalizePageSize(filter.PageSize)

	iter := rm.client.Single().Query(ctx, listStatement(filter, pageSize))
	defer iter.Stop()

	products := make([]*domain.Product, 0, pageSize)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate products: %w", err)
		}

		var data m_product.Data
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse product: %w", err)
		}

		p := dataToProduct(&data)
		if !withinDistance(p, filter) {
			continue
		}

		products = append(products, p)
		if len(products) == pageSize {
			break
		}
	}

	return &contracts.ListResult{
		Products:   products,
		TotalCount: int64(len(products)),
	}, nil
}

func listStatement(filter *contracts.ListFilter, pageSize int) spanner.Statement {
	q := query.From(m_product.TableName).Select(m_product.Columns()...)

	if filter.Category != "" {
		q = q.Where(query.Eq(m_product.Category, filter.Category))
	}
	if filter.MinExpiryDate != nil {
		q = q.Where(query.Gte(m_product.ExpiryDate, *filter.MinExpiryDate))
	}
	if filter.Origin != nil {
		q = q.Where(query.IsNotNull(m_product.Latitude)).Where(query.IsNotNull(m_product.Longitude))
	}

	switch filter.SortBy {
	case contracts.SortPriceAsc:
		q = q.OrderBy(m_product.FinalPrice, query.Asc)
	case contracts.SortPriceDesc:
		q = q.OrderBy(m_product.FinalPrice, query.Desc)
	case contracts.SortDiscount:
		q = q.OrderBy(m_product.DiscountPercentage, query.Desc)
	case contracts.SortExpiryUrgent:
		q = q.OrderBy(m_product.ExpiryDate, query.Asc)
	default:
		q = q.OrderBy(m_product.CreatedAt, query.Desc)
	}
	q = q.ThenBy(m_product.ProductID, query.Asc)

	if filter.Origin == nil {
		q = q.Limit(int64(pageSize))
	}

	return q.Build()
}

func normalizePageSize(size int) int {
	if size <= 0 {
		return contracts.DefaultPageSize
	}
	if size > contracts.MaxPageSize {
		return contracts.MaxPageSize
	}
	return size
}

func withinDistance(p *domain.Product, filter *contracts.ListFilter) bool {
	if filter.Origin == nil || filter.MaxDistanceKm <= 0 {
		return true
	}
	if p.Location == nil {
		return false
	}
	return domain.DistanceKm(*filter.Origin, *p.Location) <= filter.MaxDistanceKm
}

// dataToProduct converts database Data to a domain snapshot.
func dataToProduct(data *m_product.Data) *domain.Product {
	p := &domain.Product{
		ID:                 data.ProductID,
		Name:               data.Name,
		Description:        data.Description.StringVal,
		Category:           data.Category,
		SellerID:           data.SellerID,
		ImageURL:           data.ImageURL.StringVal,
		OriginalPrice:      domain.NewMoneyFromRat(&data.OriginalPrice),
		FinalPrice:         domain.NewMoneyFromRat(&data.FinalPrice),
		DiscountPercentage: data.DiscountPercentage,
		ExpiryDate:         data.ExpiryDate,
		QuantityAvailable:  data.QuantityAvailable,
		CreatedAt:          data.CreatedAt,
	}

	if data.ManufacturingDate.Valid {
		mfg := data.ManufacturingDate.Date
		p.ManufacturingDate = &mfg
	}
	if data.Latitude.Valid && data.Longitude.Valid {
		p.Location = &domain.GeoPoint{
			Latitude:  data.Latitude.Float64,
			Longitude: data.Longitude.Float64,
		}
	}

	return p
}

// ProductToData converts a domain snapshot to its database row.
func ProductToData(p *domain.Product) *m_product.Data {
	data := &m_product.Data{
		ProductID:          p.ID,
		SellerID:           p.SellerID,
		Name:               p.Name,
		Description:        spanner.NullString{StringVal: p.Description, Valid: p.Description != ""},
		Category:           p.Category,
		ImageURL:           spanner.NullString{StringVal: p.ImageURL, Valid: p.ImageURL != ""},
		DiscountPercentage: p.DiscountPercentage,
		ExpiryDate:         p.ExpiryDate,
		QuantityAvailable:  p.QuantityAvailable,
		CreatedAt:          p.CreatedAt,
	}
	if p.OriginalPrice != nil {
		data.OriginalPrice.Set(p.OriginalPrice.Rat())
	}
	if p.FinalPrice != nil {
		data.FinalPrice.Set(p.FinalPrice.Rat())
	}
	if p.ManufacturingDate != nil {
		data.ManufacturingDate = spanner.NullDate{Date: *p.ManufacturingDate, Valid: true}
	}
	if p.Location != nil {
		data.Latitude = spanner.NullFloat64{Float64: p.Location.Latitude, Valid: true}
		data.Longitude = spanner.NullFloat64{Float64: p.Location.Longitude, Valid: true}
	}
	return data
}
