package contracts

import (
	"fmt"
	"strings"

	"github.com/light-bringer/expiry-deals-service/internal/app/product/domain"
)

// MutationResult describes the outcome of a cart change.
// A change that needs shopper confirmation is not applied.
type MutationResult struct {
	Applied              bool
	RequiresConfirmation bool
	Warning              string
	Line                 *domain.CartLine
}

// NeedsConfirmation builds the result for a change held back by the expiry warning.
func NeedsConfirmation(daysLeft int, quantity int64) *MutationResult {
	return &MutationResult{
		RequiresConfirmation: true,
		Warning:              ExpiryWarning(daysLeft, quantity),
	}
}

// ExpiryWarning is the message shown when a quantity may not be used before expiry.
func ExpiryWarning(daysLeft int, quantity int64) string {
	if daysLeft < 0 {
		return fmt.Sprintf("This product has already expired. Do you still want %d units?", quantity)
	}
	unit := "days"
	if daysLeft == 1 {
		unit = "day"
	}
	return fmt.Sprintf("This product expires in %d %s. Are you sure you can use %d units before then?", daysLeft, unit, quantity)
}

// ValidateIDs checks the cart and product identifiers are present.
func ValidateIDs(cartID, productID string) error {
	if strings.TrimSpace(cartID) == "" {
		return domain.NewValidationError("cartId", "is required")
	}
	if strings.TrimSpace(productID) == "" {
		return domain.NewValidationError("productId", "is required")
	}
	return nil
}
