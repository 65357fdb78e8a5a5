package domain

import "strings"

// DeliverySurchargeUnits is the flat fee added when delivery is chosen over pickup.
const DeliverySurchargeUnits = 40

// DeliveryMode is how the shopper receives the order.
type DeliveryMode string

const (
	DeliveryModeDelivery DeliveryMode = "delivery"
	DeliveryModePickup   DeliveryMode = "pickup"
)

// ParseDeliveryMode parses a delivery mode. An empty value means delivery,
// which is what the storefront preselects.
func ParseDeliveryMode(s string) (DeliveryMode, error) {
	switch DeliveryMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", DeliveryModeDelivery:
		return DeliveryModeDelivery, nil
	case DeliveryModePickup:
		return DeliveryModePickup, nil
	default:
		return "", NewValidationError("deliveryMode", "must be \"delivery\" or \"pickup\"")
	}
}

// Validate checks the mode is one of the known values.
func (m DeliveryMode) Validate() error {
	if m != DeliveryModeDelivery && m != DeliveryModePickup {
		return NewValidationError("deliveryMode", "must be \"delivery\" or \"pickup\"")
	}
	return nil
}

// Surcharge returns the delivery fee for this mode.
func (m DeliveryMode) Surcharge() *Money {
	if m == DeliveryModeDelivery {
		return NewMoneyFromInt(DeliverySurchargeUnits)
	}
	return Zero()
}

// WarningContext selects the quantity threshold of the expiry-conflict warning.
// The cart and product-detail screens historically disagree (2 vs 1 units)
// and both thresholds are kept as-is.
type WarningContext int

const (
	WarningContextCart WarningContext = iota
	WarningContextProductDetail
)

// ExpiryWarningMaxDays is the remaining-days bound under which large
// quantities trigger the warning.
const ExpiryWarningMaxDays = 2

// QuantityThreshold returns the largest quantity that does not warn.
func (c WarningContext) QuantityThreshold() int64 {
	if c == WarningContextProductDetail {
		return 1
	}
	return 2
}
