package domain

import "time"

// CartLine is one product in a shopper's cart with the chosen quantity.
// The product is a snapshot taken when the line was added or last refreshed.
type CartLine struct {
	Product      *Product     `json:"product"`
	Quantity     int64        `json:"quantity"`
	DeliveryMode DeliveryMode `json:"deliveryMode"`
	AddedAt      time.Time    `json:"addedAt"`
}

// NewCartLine creates a validated cart line.
func NewCartLine(p *Product, quantity int64, mode DeliveryMode, addedAt time.Time) (*CartLine, error) {
	if p == nil {
		return nil, NewValidationError("product", "is required")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if quantity < 1 {
		return nil, NewValidationError("quantity", "must be at least 1")
	}
	if err := mode.Validate(); err != nil {
		return nil, err
	}

	return &CartLine{
		Product:      p.Copy(),
		Quantity:     quantity,
		DeliveryMode: mode,
		AddedAt:      addedAt,
	}, nil
}

// ProductID returns the ID of the product on this line.
func (l *CartLine) ProductID() string {
	return l.Product.ID
}

// LineTotal returns finalPrice × quantity.
func (l *CartLine) LineTotal() *Money {
	return l.Product.FinalPrice.MultiplyByInt(l.Quantity)
}

// GreenImpact is the environmental tally of an order.
type GreenImpact struct {
	WasteSavedKg   float64 `json:"wasteSavedKg"`
	GreenPoints    int64   `json:"greenPoints"`
	CO2PreventedKg float64 `json:"co2PreventedKg"`
}

// CartLineSummary is a priced cart line.
type CartLineSummary struct {
	Line      *CartLine
	Pricing   *DerivedPricing
	LineTotal *Money
	// NeedsAttention is set when the line's quantity is unlikely to be
	// consumed before expiry.
	NeedsAttention bool
}

// CartSummary is the priced view of a whole cart.
type CartSummary struct {
	Lines           []CartLineSummary
	ItemCount       int64
	Subtotal        *Money
	DeliveryFee     *Money
	Total           *Money
	AverageDiscount int64
	DeliveryMode    DeliveryMode
	GreenImpact     GreenImpact
}
