package services

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/redis/go-redis/v9"

	cartcontracts "github.com/light-bringer/expiry-deals-service/internal/app/cart/contracts"
	"github.com/light-bringer/expiry-deals-service/internal/app/cart/queries/get_summary"
	cartrepo "github.com/light-bringer/expiry-deals-service/internal/app/cart/repo"
	"github.com/light-bringer/expiry-deals-service/internal/app/cart/usecases/add_item"
	"github.com/light-bringer/expiry-deals-service/internal/app/cart/usecases/clear_cart"
	"github.com/light-bringer/expiry-deals-service/internal/app/cart/usecases/remove_item"
	"github.com/light-bringer/expiry-deals-service/internal/app/cart/usecases/update_quantity"
	"github.com/light-bringer/expiry-deals-service/internal/app/outbox/queries/list_events"
	outboxrepo "github.com/light-bringer/expiry-deals-service/internal/app/outbox/repo"
	"github.com/light-bringer/expiry-deals-service/internal/app/product/domain"
	"github.com/light-bringer/expiry-deals-service/internal/app/product/queries/get_product"
	"github.com/light-bringer/expiry-deals-service/internal/app/product/queries/list_products"
	productrepo "github.com/light-bringer/expiry-deals-service/internal/app/product/repo"
	"github.com/light-bringer/expiry-deals-service/internal/app/seller/queries/list_verifications"
	sellerrepo "github.com/light-bringer/expiry-deals-service/internal/app/seller/repo"
	"github.com/light-bringer/expiry-deals-service/internal/app/seller/usecases/review_seller"
	"github.com/light-bringer/expiry-deals-service/internal/pkg/clock"
	"github.com/light-bringer/expiry-deals-service/internal/pkg/committer"
	"github.com/light-bringer/expiry-deals-service/internal/transport/grpc/pricing"
	httptransport "github.com/light-bringer/expiry-deals-service/internal/transport/http"
)

// Config holds what the container needs to build its dependencies.
type Config struct {
	SpannerDB string

	// RedisAddr selects the Redis cart store; empty keeps carts in memory.
	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	CartTTL        time.Duration
	MarketLocation *time.Location
	RequestTimeout time.Duration
}

// ServiceOptions holds all dependencies for the application.
type ServiceOptions struct {
	SpannerClient  *spanner.Client
	RedisClient    *redis.Client
	PricingHandler *pricing.Handler
	HTTPRouter     http.Handler
}

// NewServiceOptions creates and wires up all application dependencies.
func NewServiceOptions(ctx context.Context, cfg Config) (*ServiceOptions, error) {
	// 1. Initialize Spanner client
	spannerClient, err := spanner.NewClient(ctx, cfg.SpannerDB)
	if err != nil {
		return nil, fmt.Errorf("failed to create Spanner client: %w", err)
	}
	opts := &ServiceOptions{SpannerClient: spannerClient}

	// 2. Create infrastructure components
	loc := cfg.MarketLocation
	if loc == nil {
		loc = time.UTC
	}
	clk := clock.NewRealClockIn(loc)
	comm := committer.NewCommitter(spannerClient)
	calc := domain.NewPricingCalculator()

	cartStore, err := opts.newCartStore(ctx, cfg, clk)
	if err != nil {
		opts.Close()
		return nil, err
	}

	// 3. Create repositories
	readModel := productrepo.NewReadModel(spannerClient)
	outboxRepo := outboxrepo.NewOutboxRepo(spannerClient)
	eventsReadModel := outboxrepo.NewEventsReadModel(spannerClient)
	verificationRepo := sellerrepo.NewVerificationRepo(spannerClient, clk)

	// 4. Create command use cases (write operations)
	addItem := add_item.NewInteractor(cartStore, readModel, calc, clk)
	updateQuantity := update_quantity.NewInteractor(cartStore, calc, clk)
	removeItem := remove_item.NewInteractor(cartStore)
	clearCart := clear_cart.NewInteractor(cartStore)
	reviewSeller := review_seller.NewInteractor(verificationRepo, outboxRepo, comm, clk)

	// 5. Create query use cases (read operations)
	getProduct := get_product.NewQuery(readModel, calc, clk)
	listProducts := list_products.NewQuery(readModel, calc, clk)
	getSummary := get_summary.NewQuery(cartStore, calc, clk)
	listVerifications := list_verifications.NewQuery(verificationRepo)
	listEvents := list_events.NewQuery(eventsReadModel)

	// 6. Create transport handlers
	opts.PricingHandler = pricing.NewHandler(getProduct, getSummary)
	opts.HTTPRouter = httptransport.NewRouter(
		httptransport.NewProductsHandler(getProduct, listProducts),
		httptransport.NewCartHandler(addItem, updateQuantity, removeItem, clearCart, getSummary),
		httptransport.NewAdminHandler(reviewSeller, listVerifications, listEvents),
		cfg.RequestTimeout,
	)

	return opts, nil
}

func (s *ServiceOptions) newCartStore(ctx context.Context, cfg Config, clk clock.Clock) (cartcontracts.CartStore, error) {
	if cfg.RedisAddr == "" {
		log.Printf("REDIS_ADDR not set, carts are kept in memory")
		return cartrepo.NewMemoryStore(), nil
	}

	s.RedisClient = redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := s.RedisClient.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis connection failed: %w", err)
	}
	log.Printf("Redis ping succeeded")

	return cartrepo.NewRedisStore(s.RedisClient, cfg.CartTTL, clk), nil
}

// Close closes all resources.
func (s *ServiceOptions) Close() {
	if s.RedisClient != nil {
		if err := s.RedisClient.Close(); err != nil {
			log.Printf("redis close error: %v", err)
		}
	}
	if s.SpannerClient != nil {
		s.SpannerClient.Close()
	}
}
