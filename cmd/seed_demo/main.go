package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"

	"github.com/light-bringer/expiry-deals-service/internal/app/product/domain"
	productrepo "github.com/light-bringer/expiry-deals-service/internal/app/product/repo"
	sellerdomain "github.com/light-bringer/expiry-deals-service/internal/app/seller/domain"
	sellerrepo "github.com/light-bringer/expiry-deals-service/internal/app/seller/repo"
	"github.com/light-bringer/expiry-deals-service/internal/models/m_product"
	"github.com/light-bringer/expiry-deals-service/internal/pkg/clock"
	"github.com/light-bringer/expiry-deals-service/internal/pkg/committer"
)

type demoProduct struct {
	name      string
	category  string
	original  int64
	final     int64
	shelfDays int
	daysLeft  int
	stock     int64
}

var catalog = []demoProduct{
	{"Whole Wheat Bread", "bakery", 60, 25, 10, 2, 12},
	{"Greek Yogurt 4-pack", "dairy", 240, 150, 30, 8, 20},
	{"Neem Soap Bar", "personal-care", 90, 60, 730, 45, 40},
	{"Basmati Rice 5kg", "pantry", 780, 620, 540, 120, 15},
	{"Sunscreen SPF 50", "personal-care", 450, 200, 720, 25, 6},
}

func main() {
	defaultDB := os.Getenv("SPANNER_DATABASE")
	if defaultDB == "" {
		defaultDB = "projects/test-project/instances/dev-instance/databases/expiry-deals-db"
	}
	spannerDB := flag.String("database", defaultDB, "Spanner database")
	flag.Parse()

	ctx := context.Background()
	client, err := spanner.NewClient(ctx, *spannerDB)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}
	defer client.Close()

	if err := seed(ctx, client, clock.NewRealClock()); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
}

func seed(ctx context.Context, client *spanner.Client, clk clock.Clock) error {
	today := clock.Today(clk)
	sellerID := uuid.New().String()

	plan := committer.NewPlan()
	model := m_product.NewModel()

	for _, d := range catalog {
		mfg := today.AddDays(d.daysLeft - d.shelfDays)
		p := &domain.Product{
			ID:                uuid.New().String(),
			Name:              d.name,
			Category:          d.category,
			SellerID:          sellerID,
			OriginalPrice:     domain.NewMoneyFromInt(d.original),
			FinalPrice:        domain.NewMoneyFromInt(d.final),
			ManufacturingDate: &mfg,
			ExpiryDate:        today.AddDays(d.daysLeft),
			QuantityAvailable: d.stock,
			Location:          &domain.GeoPoint{Latitude: 19.0760, Longitude: 72.8777},
		}
		p.DiscountPercentage = p.EffectiveDiscountPercentage()
		if err := p.Validate(); err != nil {
			return fmt.Errorf("demo product %q: %w", d.name, err)
		}
		plan.Add(model.InsertMut(productrepo.ProductToData(p)))
		fmt.Printf("Product %s: %s expires %s\n", p.ID, p.Name, p.ExpiryDate)
	}

	verification, err := sellerdomain.NewSellerVerification(sellerID, "Demo Fresh Mart", "", clk.Now())
	if err != nil {
		return err
	}
	plan.Add(sellerrepo.NewVerificationRepo(client, clk).InsertMut(verification))

	if err := committer.NewCommitter(client).Apply(ctx, plan); err != nil {
		return err
	}

	fmt.Printf("\nSeller %s is pending verification\n", sellerID)
	fmt.Println("Now try:")
	fmt.Println("  curl 'http://localhost:8080/api/v1/products?sortBy=expiry-urgent'")
	fmt.Println("  curl 'http://localhost:8080/api/v1/admin/verify-seller'")
	fmt.Printf("  curl -X POST http://localhost:8080/api/v1/admin/verify-seller -d '{\"sellerId\":%q,\"approved\":true}'\n", sellerID)
	return nil
}
