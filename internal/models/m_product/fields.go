package m_product

// Field name constants for the products table.
// These provide type-safe field references and prevent typos.
const (
	TableName = "products"

	ProductID          = "product_id"
	SellerID           = "seller_id"
	Name               = "name"
	Description        = "description"
	Category           = "category"
	ImageURL           = "image_url"
	OriginalPrice      = "original_price"
	FinalPrice         = "final_price"
	DiscountPercentage = "discount_percentage"
	ManufacturingDate  = "manufacturing_date"
	ExpiryDate         = "expiry_date"
	QuantityAvailable  = "quantity_available"
	Latitude           = "latitude"
	Longitude          = "longitude"
	CreatedAt          = "created_at"
	UpdatedAt          = "updated_at"
)

// Columns returns every column in Data order.
func Columns() []string {
	return []string{
		ProductID,
		SellerID,
		Name,
		Description,
		Category,
		ImageURL,
		OriginalPrice,
		FinalPrice,
		DiscountPercentage,
		ManufacturingDate,
		ExpiryDate,
		QuantityAvailable,
		Latitude,
		Longitude,
		CreatedAt,
		UpdatedAt,
	}
}
