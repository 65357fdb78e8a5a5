package domain

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) civil.Date {
	return civil.Date{Year: y, Month: m, Day: d}
}

func TestPricingCalculator_DaysUntilExpiry(t *testing.T) {
	pc := NewPricingCalculator()
	today := date(2024, 1, 16)

	assert.Equal(t, 0, pc.DaysUntilExpiry(today, today))
	assert.Equal(t, 15, pc.DaysUntilExpiry(date(2024, 1, 31), today))
	assert.Equal(t, -1, pc.DaysUntilExpiry(date(2024, 1, 15), today))
	assert.Equal(t, 1, pc.DaysUntilExpiry(date(2024, 3, 1), date(2024, 2, 29)), "leap day")

	t.Run("past expiry is always negative", func(t *testing.T) {
		for d := 1; d <= 400; d++ {
			assert.Less(t, pc.DaysUntilExpiry(today.AddDays(-d), today), 0)
		}
	})
}

func TestPricingCalculator_FreshnessPercent(t *testing.T) {
	pc := NewPricingCalculator()
	mfg := date(2024, 1, 1)
	expiry := date(2024, 1, 31)

	t.Run("half of shelf life left", func(t *testing.T) {
		assert.InDelta(t, 50.0, pc.FreshnessPercent(&mfg, expiry, date(2024, 1, 16)), 0.001)
	})

	t.Run("missing manufacturing date uses default", func(t *testing.T) {
		assert.Equal(t, DefaultFreshnessPercent, pc.FreshnessPercent(nil, expiry, date(2024, 1, 16)))
		assert.Equal(t, 50.0, pc.FreshnessPercent(nil, expiry, date(2030, 1, 1)))
	})

	t.Run("same-day shelf life is zero", func(t *testing.T) {
		same := expiry
		assert.Equal(t, 0.0, pc.FreshnessPercent(&same, expiry, date(2024, 1, 16)))
	})

	t.Run("clamped to range", func(t *testing.T) {
		assert.Equal(t, 100.0, pc.FreshnessPercent(&mfg, expiry, date(2023, 12, 1)))
		assert.Equal(t, 0.0, pc.FreshnessPercent(&mfg, expiry, date(2024, 3, 1)))
	})

	t.Run("always within bounds", func(t *testing.T) {
		for offset := -60; offset <= 60; offset++ {
			f := pc.FreshnessPercent(&mfg, expiry, mfg.AddDays(offset))
			assert.GreaterOrEqual(t, f, 0.0)
			assert.LessOrEqual(t, f, 100.0)
		}
	})
}

func TestPricingCalculator_UrgencyTier(t *testing.T) {
	pc := NewPricingCalculator()

	tests := []struct {
		daysLeft int
		want     UrgencyTier
	}{
		{-5, UrgencyUrgent},
		{0, UrgencyUrgent},
		{10, UrgencyUrgent},
		{11, UrgencySoon},
		{30, UrgencySoon},
		{31, UrgencySafe},
		{365, UrgencySafe},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, pc.UrgencyTier(tt.daysLeft), "daysLeft=%d", tt.daysLeft)
	}

	assert.Equal(t, "red", UrgencyUrgent.Color())
	assert.Equal(t, "orange", UrgencySoon.Color())
	assert.Equal(t, "green", UrgencySafe.Color())
}

func TestPricingCalculator_DealTier(t *testing.T) {
	pc := NewPricingCalculator()
	rank := map[DealTier]int{DealFair: 0, DealGood: 1, DealHot: 2}

	t.Run("boundaries", func(t *testing.T) {
		assert.Equal(t, DealFair, pc.DealTier(29))
		assert.Equal(t, DealGood, pc.DealTier(30))
		assert.Equal(t, DealGood, pc.DealTier(49))
		assert.Equal(t, DealHot, pc.DealTier(50))
	})

	t.Run("monotonic over 0..100", func(t *testing.T) {
		prev := rank[pc.DealTier(0)]
		for pct := int64(1); pct <= 100; pct++ {
			cur := rank[pc.DealTier(pct)]
			assert.GreaterOrEqual(t, cur, prev, "pct=%d", pct)
			prev = cur
		}
	})
}

func TestPricingCalculator_EffectivePrice(t *testing.T) {
	pc := NewPricingCalculator()
	price := NewMoneyFromInt(100)

	assert.Equal(t, 140.0, pc.EffectivePrice(price, DeliveryModeDelivery).Float64())
	assert.Equal(t, 100.0, pc.EffectivePrice(price, DeliveryModePickup).Float64())
}

func TestPricingCalculator_QuantityChangeWarning(t *testing.T) {
	pc := NewPricingCalculator()

	tests := []struct {
		name     string
		daysLeft int
		qty      int64
		ctx      WarningContext
		want     bool
	}{
		{"cart allows two", 2, 2, WarningContextCart, false},
		{"cart warns on three", 2, 3, WarningContextCart, true},
		{"detail warns on two", 2, 2, WarningContextProductDetail, true},
		{"detail allows one", 1, 1, WarningContextProductDetail, false},
		{"plenty of time", 3, 50, WarningContextCart, false},
		{"expired stock", -1, 3, WarningContextCart, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pc.QuantityChangeWarning(tt.daysLeft, tt.qty, tt.ctx))
		})
	}
}

func TestPricingCalculator_GreenImpact(t *testing.T) {
	pc := NewPricingCalculator()

	impact := pc.GreenImpact(3, NewMoneyFromInt(245))
	assert.Equal(t, 0.75, impact.WasteSavedKg)
	assert.Equal(t, 1.5, impact.CO2PreventedKg)
	assert.Equal(t, int64(24), impact.GreenPoints)

	empty := pc.GreenImpact(0, Zero())
	assert.Equal(t, GreenImpact{}, empty)
}

func TestPricingCalculator_Derive(t *testing.T) {
	pc := NewPricingCalculator()

	t.Run("hot deal scenario", func(t *testing.T) {
		p := newTestProduct(t)

		got, err := pc.Derive(p, date(2024, 1, 16), DeliveryModeDelivery)
		require.NoError(t, err)

		assert.Equal(t, 15, got.DaysUntilExpiry)
		assert.False(t, got.Expired)
		assert.InDelta(t, 50.0, got.FreshnessPercent, 0.001)
		assert.Equal(t, UrgencySoon, got.UrgencyTier)
		assert.Equal(t, int64(55), got.DiscountPercentage)
		assert.Equal(t, DealHot, got.DealTier)
		assert.Equal(t, 130.0, got.AdjustedFinalPrice.Float64())
		assert.Equal(t, int64(13), got.GreenImpact.GreenPoints)
	})

	t.Run("expired product is flagged", func(t *testing.T) {
		got, err := pc.Derive(newTestProduct(t), date(2024, 2, 2), DeliveryModePickup)
		require.NoError(t, err)
		assert.Equal(t, -2, got.DaysUntilExpiry)
		assert.True(t, got.Expired)
		assert.Equal(t, UrgencyUrgent, got.UrgencyTier)
	})

	t.Run("invalid product", func(t *testing.T) {
		p := newTestProduct(t)
		p.ExpiryDate = civil.Date{}
		_, err := pc.Derive(p, date(2024, 1, 16), DeliveryModeDelivery)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("invalid mode", func(t *testing.T) {
		_, err := pc.Derive(newTestProduct(t), date(2024, 1, 16), DeliveryMode("teleport"))
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("does not mutate input", func(t *testing.T) {
		p := newTestProduct(t)
		_, err := pc.Derive(p, date(2024, 1, 16), DeliveryModeDelivery)
		require.NoError(t, err)
		assert.Equal(t, 90.0, p.FinalPrice.Float64())
		assert.Equal(t, int64(0), p.DiscountPercentage)
	})
}

func TestPricingCalculator_SummarizeCart(t *testing.T) {
	pc := NewPricingCalculator()
	today := date(2024, 1, 29)
	addedAt := time.Date(2024, 1, 29, 10, 0, 0, 0, time.UTC)

	bread := newTestProduct(t) // 90, 55% off, expires in 2 days

	milk := newTestProduct(t)
	milk.ID = "prod-2"
	milk.FinalPrice = NewMoneyFromInt(50)
	milk.OriginalPrice = NewMoneyFromInt(100)
	milk.ExpiryDate = date(2024, 3, 1)

	rice := newTestProduct(t)
	rice.ID = "prod-3"
	rice.FinalPrice = NewMoneyFromInt(15)
	rice.DiscountPercentage = 10
	rice.ExpiryDate = date(2024, 6, 1)

	l1, err := NewCartLine(bread, 3, DeliveryModeDelivery, addedAt)
	require.NoError(t, err)
	l2, err := NewCartLine(milk, 1, DeliveryModeDelivery, addedAt)
	require.NoError(t, err)
	l3, err := NewCartLine(rice, 1, DeliveryModeDelivery, addedAt)
	require.NoError(t, err)

	t.Run("delivery", func(t *testing.T) {
		summary, err := pc.SummarizeCart([]*CartLine{l1, l2, l3}, DeliveryModeDelivery, today)
		require.NoError(t, err)

		require.Len(t, summary.Lines, 3)
		assert.Equal(t, int64(5), summary.ItemCount)
		assert.Equal(t, 335.0, summary.Subtotal.Float64()) // 270 + 50 + 15
		assert.Equal(t, 40.0, summary.DeliveryFee.Float64())
		assert.Equal(t, 375.0, summary.Total.Float64())
		assert.Equal(t, int64(38), summary.AverageDiscount) // (55+50+10)/3 = 38.33
		assert.Equal(t, 0.75, summary.GreenImpact.WasteSavedKg)
		assert.Equal(t, 1.5, summary.GreenImpact.CO2PreventedKg)
		assert.Equal(t, int64(37), summary.GreenImpact.GreenPoints)

		assert.True(t, summary.Lines[0].NeedsAttention)
		assert.False(t, summary.Lines[1].NeedsAttention)
		assert.Equal(t, 270.0, summary.Lines[0].LineTotal.Float64())
	})

	t.Run("pickup has no fee", func(t *testing.T) {
		summary, err := pc.SummarizeCart([]*CartLine{l1, l2, l3}, DeliveryModePickup, today)
		require.NoError(t, err)
		assert.True(t, summary.DeliveryFee.IsZero())
		assert.Equal(t, 335.0, summary.Total.Float64())
		assert.Equal(t, int64(33), summary.GreenImpact.GreenPoints)
	})

	t.Run("empty cart", func(t *testing.T) {
		summary, err := pc.SummarizeCart(nil, DeliveryModeDelivery, today)
		require.NoError(t, err)
		assert.Empty(t, summary.Lines)
		assert.True(t, summary.Total.IsZero())
		assert.Equal(t, GreenImpact{}, summary.GreenImpact)
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		bad := *l2
		bad.Quantity = 0
		_, err := pc.SummarizeCart([]*CartLine{&bad}, DeliveryModeDelivery, today)
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestNewCartLine(t *testing.T) {
	p := newTestProduct(t)

	_, err := NewCartLine(p, 0, DeliveryModeDelivery, time.Now())
	assert.ErrorIs(t, err, ErrValidation)

	line, err := NewCartLine(p, 2, DeliveryModePickup, time.Now())
	require.NoError(t, err)
	assert.Equal(t, "prod-1", line.ProductID())
	assert.Equal(t, 180.0, line.LineTotal().Float64())

	p.FinalPrice = NewMoneyFromInt(1)
	assert.Equal(t, 180.0, line.LineTotal().Float64(), "line keeps its own snapshot")
}
