package testutil

import (
	"context"
	"testing"

	"cloud.google.com/go/civil"
	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/expiry-deals-service/internal/app/product/domain"
	productrepo "github.com/light-bringer/expiry-deals-service/internal/app/product/repo"
	sellerdomain "github.com/light-bringer/expiry-deals-service/internal/app/seller/domain"
	sellerrepo "github.com/light-bringer/expiry-deals-service/internal/app/seller/repo"
	"github.com/light-bringer/expiry-deals-service/internal/models/m_outbox"
	"github.com/light-bringer/expiry-deals-service/internal/models/m_product"
	"github.com/light-bringer/expiry-deals-service/internal/pkg/clock"
)

// ProductOption customizes a fixture product before it is inserted.
type ProductOption func(p *domain.Product)

// WithCategory sets the product category.
func WithCategory(category string) ProductOption {
	return func(p *domain.Product) { p.Category = category }
}

// WithPrices sets the original and final prices in whole rupees.
func WithPrices(original, final int64) ProductOption {
	return func(p *domain.Product) {
		p.OriginalPrice = domain.NewMoneyFromInt(original)
		p.FinalPrice = domain.NewMoneyFromInt(final)
	}
}

// WithExpiry sets the expiry date.
func WithExpiry(d civil.Date) ProductOption {
	return func(p *domain.Product) { p.ExpiryDate = d }
}

// WithStock sets the available quantity.
func WithStock(qty int64) ProductOption {
	return func(p *domain.Product) { p.QuantityAvailable = qty }
}

// WithLocation sets the seller location.
func WithLocation(lat, lng float64) ProductOption {
	return func(p *domain.Product) { p.Location = &domain.GeoPoint{Latitude: lat, Longitude: lng} }
}

// CreateTestProduct inserts a valid product expiring 30 days after today and returns it.
func CreateTestProduct(t *testing.T, client *spanner.Client, name string, today civil.Date, opts ...ProductOption) *domain.Product {
	t.Helper()

	mfg := today.AddDays(-30)
	p := &domain.Product{
		ID:                uuid.New().String(),
		Name:              name,
		Category:          "bakery",
		SellerID:          "seller-" + uuid.New().String()[:8],
		OriginalPrice:     domain.NewMoneyFromInt(200),
		FinalPrice:        domain.NewMoneyFromInt(120),
		ManufacturingDate: &mfg,
		ExpiryDate:        today.AddDays(30),
		QuantityAvailable: 10,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.DiscountPercentage = p.EffectiveDiscountPercentage()
	require.NoError(t, p.Validate(), "invalid fixture product")

	mutation := m_product.NewModel().InsertMut(productrepo.ProductToData(p))
	_, err := client.Apply(context.Background(), []*spanner.Mutation{mutation})
	require.NoError(t, err, "failed to create test product")

	return p
}

// SetTestProductStock overwrites a product's available quantity.
func SetTestProductStock(t *testing.T, client *spanner.Client, productID string, qty int64) {
	t.Helper()

	mutation := m_product.NewModel().UpdateStockMut(productID, qty)
	_, err := client.Apply(context.Background(), []*spanner.Mutation{mutation})
	require.NoError(t, err, "failed to update product stock")
}

// CreatePendingVerification inserts a pending seller verification.
func CreatePendingVerification(t *testing.T, client *spanner.Client, clk clock.Clock, businessName string) string {
	t.Helper()

	sellerID := uuid.New().String()
	v, err := sellerdomain.NewSellerVerification(sellerID, businessName, "https://docs.example.com/"+sellerID, clk.Now())
	require.NoError(t, err)

	mutation := sellerrepo.NewVerificationRepo(client, clk).InsertMut(v)
	_, err = client.Apply(context.Background(), []*spanner.Mutation{mutation})
	require.NoError(t, err, "failed to create test verification")

	return sellerID
}

// CreateTestOutboxEvent inserts an outbox event with the given status.
func CreateTestOutboxEvent(t *testing.T, client *spanner.Client, eventType, aggregateID, status string) string {
	t.Helper()

	eventID := uuid.New().String()
	data := &m_outbox.Data{
		EventID:     eventID,
		EventType:   eventType,
		AggregateID: aggregateID,
		Payload:     spanner.NullJSON{Value: map[string]interface{}{"sellerId": aggregateID}, Valid: true},
		Status:      status,
	}

	_, err := client.Apply(context.Background(), []*spanner.Mutation{m_outbox.NewModel().InsertMut(data)})
	require.NoError(t, err, "failed to create test outbox event")

	return eventID
}

// AssertOutboxEvent verifies an outbox event of the given type exists for the aggregate.
func AssertOutboxEvent(t *testing.T, client *spanner.Client, eventType, aggregateID string) *m_outbox.Data {
	t.Helper()

	stmt := spanner.Statement{
		SQL: "SELECT event_id, event_type, aggregate_id, payload, status, created_at, processed_at, retry_count, error_message " +
			"FROM outbox_events WHERE event_type = @eventType AND aggregate_id = @aggregateID",
		Params: map[string]interface{}{"eventType": eventType, "aggregateID": aggregateID},
	}

	iter := client.Single().Query(context.Background(), stmt)
	defer iter.Stop()

	row, err := iter.Next()
	require.NoError(t, err, "outbox event not found for type: %s", eventType)

	var data m_outbox.Data
	require.NoError(t, row.ToStruct(&data))
	return &data
}

