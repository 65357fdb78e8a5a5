package domain

import (
	"errors"
	"fmt"
)

// ErrValidation is the kind shared by every ValidationError.
// Use errors.Is(err, ErrValidation) to detect malformed input.
var ErrValidation = errors.New("validation failed")

// Catalog and cart errors as sentinel values
var (
	ErrProductNotFound    = errors.New("product not found")
	ErrProductUnavailable = errors.New("product is out of stock")
	ErrInsufficientStock  = errors.New("requested quantity exceeds available stock")
	ErrCartLineNotFound   = errors.New("product is not in the cart")
)

// errDegenerateShelfLife is raised when manufacturing and expiry fall on the
// same day. It never leaves the package: freshness recovers it as 0.
var errDegenerateShelfLife = errors.New("shelf life is zero days")

// ValidationError reports a malformed or missing input field.
type ValidationError struct {
	Field  string
	Reason string
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Unwrap makes errors.Is(err, ErrValidation) true.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
