package m_product

import (
	"math/big"
	"time"

	"cloud.google.com/go/civil"
	"cloud.google.com/go/spanner"
)

// Data represents the database model for the products table.
// Prices are NUMERIC columns so they sort correctly in SQL.
type Data struct {
	ProductID          string              `spanner:"product_id"`
	SellerID           string              `spanner:"seller_id"`
	Name               string              `spanner:"name"`
	Description        spanner.NullString  `spanner:"description"`
	Category           string              `spanner:"category"`
	ImageURL           spanner.NullString  `spanner:"image_url"`
	OriginalPrice      big.Rat             `spanner:"original_price"`
	FinalPrice         big.Rat             `spanner:"final_price"`
	DiscountPercentage int64               `spanner:"discount_percentage"`
	ManufacturingDate  spanner.NullDate    `spanner:"manufacturing_date"`
	ExpiryDate         civil.Date          `spanner:"expiry_date"`
	QuantityAvailable  int64               `spanner:"quantity_available"`
	Latitude           spanner.NullFloat64 `spanner:"latitude"`
	Longitude          spanner.NullFloat64 `spanner:"longitude"`
	CreatedAt          time.Time           `spanner:"created_at"`
	UpdatedAt          time.Time           `spanner:"updated_at"`
}
