package pricing

import (
	"context"
	"net"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"

	cartrepo "github.com/light-bringer/expiry-deals-service/internal/app/cart/repo"
	"github.com/light-bringer/expiry-deals-service/internal/app/cart/queries/get_summary"
	catalog "github.com/light-bringer/expiry-deals-service/internal/app/product/contracts"
	"github.com/light-bringer/expiry-deals-service/internal/app/product/domain"
	"github.com/light-bringer/expiry-deals-service/internal/app/product/queries/get_product"
	"github.com/light-bringer/expiry-deals-service/internal/pkg/clock"
)

var today = civil.Date{Year: 2024, Month: 1, Day: 16}

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

func setupServer(t *testing.T) *PricingServiceClient {
	t.Helper()

	mfg := civil.Date{Year: 2024, Month: 1, Day: 1}
	bread := &domain.Product{
		ID: "bread", Name: "Whole Wheat Bread", Category: "bakery",
		OriginalPrice: domain.NewMoneyFromInt(200), FinalPrice: domain.NewMoneyFromInt(90),
		ManufacturingDate: &mfg, ExpiryDate: civil.Date{Year: 2024, Month: 1, Day: 31}, QuantityAvailable: 5,
	}
	clk := clock.NewMockClockOn(today)
	calc := domain.NewPricingCalculator()
	store := cartrepo.NewMemoryStore()

	line, err := domain.NewCartLine(bread, 2, domain.DeliveryModeDelivery, clk.Now())
	require.NoError(t, err)
	require.NoError(t, store.Put(context.Background(), "c1", line))

	products := stubCatalog{"bread": bread}
	handler := NewHandler(get_product.NewQuery(products, calc, clk), get_summary.NewQuery(store, calc, clk))

	lis := bufconn.Listen(1024 * 1024)
	server := grpc.NewServer()
	RegisterPricingServiceServer(server, handler)
	go func() {
		_ = server.Serve(lis)
	}()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return NewPricingServiceClient(conn)
}

func mustStruct(t *testing.T, fields map[string]interface{}) *structpb.Struct {
	t.Helper()
	s, err := structpb.NewStruct(fields)
	require.NoError(t, err)
	return s
}

func TestHandler_QuoteProduct(t *testing.T) {
	client := setupServer(t)
	ctx := context.Background()

	t.Run("prices a product", func(t *testing.T) {
		out, err := client.QuoteProduct(ctx, mustStruct(t, map[string]interface{}{
			"productId":    "bread",
			"deliveryMode": "pickup",
		}))
		require.NoError(t, err)

		pricing := out.GetFields()["pricing"].GetStructValue().AsMap()
		assert.Equal(t, "SOON", pricing["urgencyTier"])
		assert.Equal(t, "HOT", pricing["dealTier"])
		assert.Equal(t, float64(55), pricing["discountPercentage"])
		assert.Equal(t, "90.00", pricing["adjustedFinalPrice"])
		assert.InDelta(t, 50.0, pricing["freshnessPercent"], 0.001)
	})

	t.Run("unknown product", func(t *testing.T) {
		_, err := client.QuoteProduct(ctx, mustStruct(t, map[string]interface{}{"productId": "ghost"}))
		assert.Equal(t, codes.NotFound, status.Code(err))
	})

	t.Run("invalid delivery mode", func(t *testing.T) {
		_, err := client.QuoteProduct(ctx, mustStruct(t, map[string]interface{}{"productId": "bread", "deliveryMode": "drone"}))
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})

	t.Run("fractional quantity", func(t *testing.T) {
		_, err := client.QuoteProduct(ctx, mustStruct(t, map[string]interface{}{"productId": "bread", "quantity": 1.5}))
		assert.Equal(t, codes.InvalidArgument, status.Code(err))
	})
}

func TestHandler_SummarizeCart(t *testing.T) {
	client := setupServer(t)

	out, err := client.SummarizeCart(context.Background(), mustStruct(t, map[string]interface{}{"cartId": "c1"}))
	require.NoError(t, err)

	summary := out.AsMap()
	assert.Equal(t, "180.00", summary["subtotal"])
	assert.Equal(t, "40.00", summary["deliveryFee"])
	assert.Equal(t, "220.00", summary["total"])
	assert.Equal(t, float64(2), summary["itemCount"])

	_, err = client.SummarizeCart(context.Background(), mustStruct(t, map[string]interface{}{}))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}
