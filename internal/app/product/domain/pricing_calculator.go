package domain

import (
	"errors"
	"math"

	"cloud.google.com/go/civil"
)

// DefaultFreshnessPercent is reported when a product has no manufacturing
// date. It is a placeholder policy, not a measurement.
const DefaultFreshnessPercent = 50.0

// Green impact heuristics.
const (
	WasteSavedKgPerLine    = 0.25
	CO2KgPerWasteKg        = 2.0
	GreenPointUnitsDivisor = 10
)

// PricingCalculator derives the commercial state of near-expiry products.
// It holds no state and every method is a pure function of its arguments;
// "today" is always passed in by the caller.
type PricingCalculator struct{}

// NewPricingCalculator creates a new PricingCalculator instance.
func NewPricingCalculator() *PricingCalculator {
	return &PricingCalculator{}
}

// DaysUntilExpiry returns the whole days from today to expiry.
// Negative values mean the product has already expired.
func (pc *PricingCalculator) DaysUntilExpiry(expiry, today civil.Date) int {
	return DaysBetween(today, expiry)
}

// FreshnessPercent estimates the share of shelf life remaining, clamped to [0, 100].
func (pc *PricingCalculator) FreshnessPercent(manufactured *civil.Date, expiry, today civil.Date) float64 {
	if manufactured == nil {
		return DefaultFreshnessPercent
	}

	ratio, err := pc.shelfLifeRatio(*manufactured, expiry, today)
	if errors.Is(err, errDegenerateShelfLife) {
		return 0
	}

	return math.Max(0, math.Min(100, ratio*100))
}

func (pc *PricingCalculator) shelfLifeRatio(manufactured, expiry, today civil.Date) (float64, error) {
	total := DaysBetween(manufactured, expiry)
	if total == 0 {
		return 0, errDegenerateShelfLife
	}
	remaining := DaysBetween(today, expiry)
	return float64(remaining) / float64(total), nil
}

// UrgencyTier classifies days remaining. Exactly 10 is URGENT and exactly 30 is SOON.
func (pc *PricingCalculator) UrgencyTier(daysLeft int) UrgencyTier {
	switch {
	case daysLeft <= UrgentMaxDays:
		return UrgencyUrgent
	case daysLeft <= SoonMaxDays:
		return UrgencySoon
	default:
		return UrgencySafe
	}
}

// DealTier classifies a discount percentage.
func (pc *PricingCalculator) DealTier(discountPercentage int64) DealTier {
	switch {
	case discountPercentage >= HotDealMinDiscount:
		return DealHot
	case discountPercentage >= GoodDealMinDiscount:
		return DealGood
	default:
		return DealFair
	}
}

// EffectivePrice adds the delivery surcharge when delivery is chosen.
func (pc *PricingCalculator) EffectivePrice(finalPrice *Money, mode DeliveryMode) *Money {
	return finalPrice.Add(mode.Surcharge())
}

// QuantityChangeWarning reports whether the shopper should confirm a quantity
// that is unlikely to be used before the product expires. Advisory only.
func (pc *PricingCalculator) QuantityChangeWarning(daysLeft int, requested int64, ctx WarningContext) bool {
	return daysLeft <= ExpiryWarningMaxDays && requested > ctx.QuantityThreshold()
}

// GreenImpact estimates the environmental effect of an order.
// Waste is counted per distinct line, not per unit.
func (pc *PricingCalculator) GreenImpact(lineCount int, orderTotal *Money) GreenImpact {
	waste := WasteSavedKgPerLine * float64(lineCount)
	points := int64(0)
	if orderTotal.IsPositive() {
		points = orderTotal.FloorDiv(GreenPointUnitsDivisor)
	}
	return GreenImpact{
		WasteSavedKg:   waste,
		GreenPoints:    points,
		CO2PreventedKg: waste * CO2KgPerWasteKg,
	}
}

// DerivedPricing is the projection shown next to a product. It is never stored.
type DerivedPricing struct {
	DaysUntilExpiry    int
	Expired            bool
	FreshnessPercent   float64
	UrgencyTier        UrgencyTier
	DealTier           DealTier
	DiscountPercentage int64
	DeliveryMode       DeliveryMode
	AdjustedFinalPrice *Money
	// GreenImpact treats the single product as a one-line order.
	GreenImpact GreenImpact
}

// Derive computes every derived quantity of a product for the given day.
func (pc *PricingCalculator) Derive(p *Product, today civil.Date, mode DeliveryMode) (*DerivedPricing, error) {
	if p == nil {
		return nil, NewValidationError("product", "is required")
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if !today.IsValid() {
		return nil, NewValidationError("today", "is not a valid calendar date")
	}
	if err := mode.Validate(); err != nil {
		return nil, err
	}

	days := pc.DaysUntilExpiry(p.ExpiryDate, today)
	discount := p.EffectiveDiscountPercentage()
	adjusted := pc.EffectivePrice(p.FinalPrice, mode)

	return &DerivedPricing{
		DaysUntilExpiry:    days,
		Expired:            days < 0,
		FreshnessPercent:   pc.FreshnessPercent(p.ManufacturingDate, p.ExpiryDate, today),
		UrgencyTier:        pc.UrgencyTier(days),
		DealTier:           pc.DealTier(discount),
		DiscountPercentage: discount,
		DeliveryMode:       mode,
		AdjustedFinalPrice: adjusted,
		GreenImpact:        pc.GreenImpact(1, adjusted),
	}, nil
}

// SummarizeCart prices a whole cart. The delivery surcharge is charged once
// per order, not per line; green points are computed on the total including it.
func (pc *PricingCalculator) SummarizeCart(lines []*CartLine, mode DeliveryMode, today civil.Date) (*CartSummary, error) {
	if err := mode.Validate(); err != nil {
		return nil, err
	}

	summary := &CartSummary{
		Lines:        make([]CartLineSummary, 0, len(lines)),
		Subtotal:     Zero(),
		DeliveryFee:  Zero(),
		Total:        Zero(),
		DeliveryMode: mode,
	}
	if len(lines) == 0 {
		return summary, nil
	}

	var discountSum int64
	for _, line := range lines {
		if line == nil || line.Quantity < 1 {
			return nil, NewValidationError("quantity", "must be at least 1")
		}

		pricing, err := pc.Derive(line.Product, today, mode)
		if err != nil {
			return nil, err
		}

		total := line.LineTotal()
		summary.Lines = append(summary.Lines, CartLineSummary{
			Line:           line,
			Pricing:        pricing,
			LineTotal:      total,
			NeedsAttention: pc.QuantityChangeWarning(pricing.DaysUntilExpiry, line.Quantity, WarningContextCart),
		})
		summary.ItemCount += line.Quantity
		summary.Subtotal = summary.Subtotal.Add(total)
		discountSum += pricing.DiscountPercentage
	}

	summary.DeliveryFee = mode.Surcharge()
	summary.Total = summary.Subtotal.Add(summary.DeliveryFee)
	summary.AverageDiscount = int64(math.Round(float64(discountSum) / float64(len(lines))))
	summary.GreenImpact = pc.GreenImpact(len(lines), summary.Total)

	return summary, nil
}
