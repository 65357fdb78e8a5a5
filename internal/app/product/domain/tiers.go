package domain

// Urgency thresholds in days remaining. Bounds are inclusive on the lower tier.
const (
	UrgentMaxDays = 10
	SoonMaxDays   = 30
)

// Deal thresholds in discount percent.
const (
	HotDealMinDiscount  = 50
	GoodDealMinDiscount = 30
)

// UrgencyTier classifies a product by days remaining before expiry.
type UrgencyTier string

const (
	UrgencyUrgent UrgencyTier = "URGENT"
	UrgencySoon   UrgencyTier = "SOON"
	UrgencySafe   UrgencyTier = "SAFE"
)

// Label returns the badge text shown to shoppers.
func (u UrgencyTier) Label() string {
	switch u {
	case UrgencyUrgent:
		return "Urgent"
	case UrgencySoon:
		return "Soon"
	default:
		return "Safe"
	}
}

// Color returns the badge color.
func (u UrgencyTier) Color() string {
	switch u {
	case UrgencyUrgent:
		return "red"
	case UrgencySoon:
		return "orange"
	default:
		return "green"
	}
}

// DealTier classifies a product by discount depth.
type DealTier string

const (
	DealHot  DealTier = "HOT"
	DealGood DealTier = "GOOD"
	DealFair DealTier = "FAIR"
)

// Label returns the badge text shown to shoppers.
func (d DealTier) Label() string {
	switch d {
	case DealHot:
		return "Hot Deal"
	case DealGood:
		return "Good Deal"
	default:
		return "Fair Deal"
	}
}
