package domain

import (
	"math/big"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

// Product is a read-only snapshot of a listed near-expiry item.
// The catalog owns the record; the engine only derives from it.
type Product struct {
	ID                 string      `json:"id"`
	Name               string      `json:"name"`
	Description        string      `json:"description,omitempty"`
	Category           string      `json:"category"`
	SellerID           string      `json:"sellerId"`
	ImageURL           string      `json:"imageUrl,omitempty"`
	OriginalPrice      *Money      `json:"originalPrice"`
	FinalPrice         *Money      `json:"finalPrice"`
	DiscountPercentage int64       `json:"discountPercentage"`
	ManufacturingDate  *civil.Date `json:"manufacturingDate,omitempty"`
	ExpiryDate         civil.Date  `json:"expiryDate"`
	QuantityAvailable  int64       `json:"quantityAvailable"`
	Location           *GeoPoint   `json:"location,omitempty"`
	CreatedAt          time.Time   `json:"createdAt"`
}

// Validate checks the snapshot is usable for pricing.
func (p *Product) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return NewValidationError("id", "is required")
	}
	if p.OriginalPrice == nil {
		return NewValidationError("originalPrice", "is required")
	}
	if p.OriginalPrice.IsNegative() {
		return NewValidationError("originalPrice", "must not be negative")
	}
	if p.FinalPrice == nil {
		return NewValidationError("finalPrice", "is required")
	}
	if p.FinalPrice.IsNegative() {
		return NewValidationError("finalPrice", "must not be negative")
	}
	if p.DiscountPercentage < 0 || p.DiscountPercentage > 100 {
		return NewValidationError("discountPercentage", "must be between 0 and 100")
	}
	if isZeroDate(p.ExpiryDate) {
		return NewValidationError("expiryDate", "is required")
	}
	if !p.ExpiryDate.IsValid() {
		return NewValidationError("expiryDate", "is not a valid calendar date")
	}
	if p.ManufacturingDate != nil {
		if !p.ManufacturingDate.IsValid() {
			return NewValidationError("manufacturingDate", "is not a valid calendar date")
		}
		if p.ManufacturingDate.After(p.ExpiryDate) {
			return NewValidationError("manufacturingDate", "must not be after expiryDate")
		}
	}
	if p.QuantityAvailable < 0 {
		return NewValidationError("quantityAvailable", "must not be negative")
	}
	if p.Location != nil {
		if err := p.Location.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// IsAvailable reports whether at least one unit is in stock.
func (p *Product) IsAvailable() bool {
	return p.QuantityAvailable > 0
}

// EffectiveDiscountPercentage returns the stored discount, or derives it from
// the two prices when the listing left it at zero. Derived values round half up.
func (p *Product) EffectiveDiscountPercentage() int64 {
	if p.DiscountPercentage > 0 {
		return p.DiscountPercentage
	}
	if p.OriginalPrice == nil || p.FinalPrice == nil || !p.OriginalPrice.IsPositive() {
		return 0
	}
	if !p.FinalPrice.LessThan(p.OriginalPrice) {
		return 0
	}

	saved := p.OriginalPrice.Subtract(p.FinalPrice).Rat()
	pct := new(big.Rat).Quo(saved.Mul(saved, big.NewRat(100, 1)), p.OriginalPrice.Rat())
	return roundHalfUp(pct)
}

func roundHalfUp(r *big.Rat) int64 {
	shifted := new(big.Rat).Add(r, big.NewRat(1, 2))
	return new(big.Int).Div(shifted.Num(), shifted.Denom()).Int64()
}

// Copy returns a deep copy of the snapshot.
func (p *Product) Copy() *Product {
	cp := *p
	if p.OriginalPrice != nil {
		cp.OriginalPrice = p.OriginalPrice.Copy()
	}
	if p.FinalPrice != nil {
		cp.FinalPrice = p.FinalPrice.Copy()
	}
	if p.ManufacturingDate != nil {
		d := *p.ManufacturingDate
		cp.ManufacturingDate = &d
	}
	if p.Location != nil {
		loc := *p.Location
		cp.Location = &loc
	}
	return &cp
}
