// Package views renders pricing results for the HTTP and gRPC transports.
// Money is rendered as a fixed-point string with two decimals.
package views

import (
	"encoding/json"
	"fmt"
	"time"

	cartcontracts "github.com/light-bringer/expiry-deals-service/internal/app/cart/contracts"
	productcontracts "github.com/light-bringer/expiry-deals-service/internal/app/product/contracts"
	"github.com/light-bringer/expiry-deals-service/internal/app/product/domain"
	sellercontracts "github.com/light-bringer/expiry-deals-service/internal/app/seller/contracts"
	"github.com/light-bringer/expiry-deals-service/internal/models/m_outbox"
)

// Product is a catalog record with its derived pricing.
type Product struct {
	ID                 string           `json:"id"`
	Name               string           `json:"name"`
	Description        string           `json:"description,omitempty"`
	Category           string           `json:"category"`
	SellerID           string           `json:"sellerId"`
	ImageURL           string           `json:"imageUrl,omitempty"`
	OriginalPrice      string           `json:"originalPrice"`
	FinalPrice         string           `json:"finalPrice"`
	ManufacturingDate  string           `json:"manufacturingDate,omitempty"`
	ExpiryDate         string           `json:"expiryDate"`
	QuantityAvailable  int64            `json:"quantityAvailable"`
	Location           *domain.GeoPoint `json:"location,omitempty"`
	DistanceKm         *float64         `json:"distanceKm,omitempty"`
	Pricing            *Pricing         `json:"pricing"`
	QuantityWarning    bool             `json:"quantityWarning,omitempty"`
	QuantityWarningMsg string           `json:"quantityWarningMessage,omitempty"`
}

// Pricing is the derived view of a product for one day and delivery mode.
type Pricing struct {
	DaysUntilExpiry    int                 `json:"daysUntilExpiry"`
	Expired            bool                `json:"expired"`
	FreshnessPercent   float64             `json:"freshnessPercent"`
	UrgencyTier        domain.UrgencyTier  `json:"urgencyTier"`
	UrgencyLabel       string              `json:"urgencyLabel"`
	UrgencyColor       string              `json:"urgencyColor"`
	DealTier           domain.DealTier     `json:"dealTier"`
	DealLabel          string              `json:"dealLabel"`
	DiscountPercentage int64               `json:"discountPercentage"`
	DeliveryMode       domain.DeliveryMode `json:"deliveryMode"`
	AdjustedFinalPrice string              `json:"adjustedFinalPrice"`
	GreenImpact        domain.GreenImpact  `json:"greenImpact"`
}

// ProductList is a page of catalog records.
type ProductList struct {
	Products   []*Product `json:"products"`
	TotalCount int64      `json:"totalCount"`
}

// CartLine is a priced line of a cart.
type CartLine struct {
	Product        *Product            `json:"product"`
	Quantity       int64               `json:"quantity"`
	DeliveryMode   domain.DeliveryMode `json:"deliveryMode"`
	AddedAt        time.Time           `json:"addedAt"`
	LineTotal      string              `json:"lineTotal"`
	NeedsAttention bool                `json:"needsAttention"`
}

// CartSummary is the priced view of a cart.
type CartSummary struct {
	Lines           []*CartLine         `json:"lines"`
	ItemCount       int64               `json:"itemCount"`
	Subtotal        string              `json:"subtotal"`
	DeliveryFee     string              `json:"deliveryFee"`
	Total           string              `json:"total"`
	AverageDiscount int64               `json:"averageDiscount"`
	DeliveryMode    domain.DeliveryMode `json:"deliveryMode"`
	GreenImpact     domain.GreenImpact  `json:"greenImpact"`
}

// Mutation is the outcome of a cart change.
type Mutation struct {
	Applied              bool   `json:"applied"`
	RequiresConfirmation bool   `json:"requiresConfirmation"`
	Warning              string `json:"warning,omitempty"`
	ProductID            string `json:"productId,omitempty"`
	Quantity             int64  `json:"quantity,omitempty"`
}

// Verification is a seller verification record.
type Verification struct {
	SellerID         string     `json:"sellerId"`
	BusinessName     string     `json:"businessName"`
	DocumentURL      string     `json:"documentUrl,omitempty"`
	Status           string     `json:"status"`
	RejectionReason  *string    `json:"rejectionReason,omitempty"`
	VerificationDate *time.Time `json:"verificationDate,omitempty"`
	CreatedAt        time.Time  `json:"createdAt"`
}

// Event is an outbox record.
type Event struct {
	EventID      string          `json:"eventId"`
	EventType    string          `json:"eventType"`
	AggregateID  string          `json:"aggregateId"`
	Payload      json.RawMessage `json:"payload"`
	Status       string          `json:"status"`
	RetryCount   int64           `json:"retryCount"`
	ErrorMessage string          `json:"errorMessage,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	ProcessedAt  *time.Time      `json:"processedAt,omitempty"`
}

// EventList is a page of outbox records.
type EventList struct {
	Events     []*Event `json:"events"`
	TotalCount int64    `json:"totalCount"`
}

func money(m *domain.Money) string {
	if m == nil {
		return domain.Zero().String()
	}
	return m.String()
}

// NewProduct renders a catalog record. pricing may be nil for raw records.
func NewProduct(p *domain.Product, pricing *domain.DerivedPricing) *Product {
	v := &Product{
		ID:                p.ID,
		Name:              p.Name,
		Description:       p.Description,
		Category:          p.Category,
		SellerID:          p.SellerID,
		ImageURL:          p.ImageURL,
		OriginalPrice:     money(p.OriginalPrice),
		FinalPrice:        money(p.FinalPrice),
		ExpiryDate:        p.ExpiryDate.String(),
		QuantityAvailable: p.QuantityAvailable,
		Location:          p.Location,
	}
	if p.ManufacturingDate != nil {
		v.ManufacturingDate = p.ManufacturingDate.String()
	}
	if pricing != nil {
		v.Pricing = NewPricing(pricing)
	}
	return v
}

// NewPricing renders derived pricing.
func NewPricing(d *domain.DerivedPricing) *Pricing {
	return &Pricing{
		DaysUntilExpiry:    d.DaysUntilExpiry,
		Expired:            d.Expired,
		FreshnessPercent:   d.FreshnessPercent,
		UrgencyTier:        d.UrgencyTier,
		UrgencyLabel:       d.UrgencyTier.Label(),
		UrgencyColor:       d.UrgencyTier.Color(),
		DealTier:           d.DealTier,
		DealLabel:          d.DealTier.Label(),
		DiscountPercentage: d.DiscountPercentage,
		DeliveryMode:       d.DeliveryMode,
		AdjustedFinalPrice: money(d.AdjustedFinalPrice),
		GreenImpact:        d.GreenImpact,
	}
}

// NewPricedProduct renders a listing entry.
func NewPricedProduct(pp *productcontracts.PricedProduct) *Product {
	v := NewProduct(pp.Product, pp.Pricing)
	v.DistanceKm = pp.DistanceKm
	return v
}

// NewProductList renders a catalog page.
func NewProductList(products []*productcontracts.PricedProduct, total int64) *ProductList {
	out := &ProductList{Products: make([]*Product, 0, len(products)), TotalCount: total}
	for _, p := range products {
		out.Products = append(out.Products, NewPricedProduct(p))
	}
	return out
}

// NewCartSummary renders a priced cart.
func NewCartSummary(s *domain.CartSummary) *CartSummary {
	v := &CartSummary{
		Lines:           make([]*CartLine, 0, len(s.Lines)),
		ItemCount:       s.ItemCount,
		Subtotal:        money(s.Subtotal),
		DeliveryFee:     money(s.DeliveryFee),
		Total:           money(s.Total),
		AverageDiscount: s.AverageDiscount,
		DeliveryMode:    s.DeliveryMode,
		GreenImpact:     s.GreenImpact,
	}
	for _, l := range s.Lines {
		v.Lines = append(v.Lines, &CartLine{
			Product:        NewProduct(l.Line.Product, l.Pricing),
			Quantity:       l.Line.Quantity,
			DeliveryMode:   l.Line.DeliveryMode,
			AddedAt:        l.Line.AddedAt,
			LineTotal:      money(l.LineTotal),
			NeedsAttention: l.NeedsAttention,
		})
	}
	return v
}

// NewMutation renders the outcome of a cart change.
func NewMutation(r *cartcontracts.MutationResult) *Mutation {
	v := &Mutation{
		Applied:              r.Applied,
		RequiresConfirmation: r.RequiresConfirmation,
		Warning:              r.Warning,
	}
	if r.Line != nil {
		v.ProductID = r.Line.ProductID()
		v.Quantity = r.Line.Quantity
	}
	return v
}

// NewVerification renders a verification record.
func NewVerification(dto *sellercontracts.VerificationDTO) *Verification {
	return &Verification{
		SellerID:         dto.SellerID,
		BusinessName:     dto.BusinessName,
		DocumentURL:      dto.DocumentURL,
		Status:           string(dto.Status),
		RejectionReason:  dto.RejectionReason,
		VerificationDate: dto.VerificationDate,
		CreatedAt:        dto.CreatedAt,
	}
}

// NewEventList renders outbox records.
func NewEventList(events []*m_outbox.Data, total int64) (*EventList, error) {
	out := &EventList{Events: make([]*Event, 0, len(events)), TotalCount: total}
	for _, e := range events {
		payload, err := e.PayloadBytes()
		if err != nil {
			return nil, fmt.Errorf("failed to encode payload of event %s: %w", e.EventID, err)
		}
		v := &Event{
			EventID:      e.EventID,
			EventType:    e.EventType,
			AggregateID:  e.AggregateID,
			Payload:      payload,
			Status:       e.Status,
			RetryCount:   e.RetryCount,
			ErrorMessage: e.ErrorMessage.StringVal,
			CreatedAt:    e.CreatedAt,
		}
		if e.ProcessedAt.Valid {
			processedAt := e.ProcessedAt.Time
			v.ProcessedAt = &processedAt
		}
		out.Events = append(out.Events, v)
	}
	return out, nil
}
