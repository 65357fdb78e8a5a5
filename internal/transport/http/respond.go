package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/light-bringer/expiry-deals-service/internal/app/product/domain"
	sellerdomain "github.com/light-bringer/expiry-deals-service/internal/app/seller/domain"
	"github.com/light-bringer/expiry-deals-service/internal/pkg/committer"
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// handleDomainError converts use case errors to HTTP status codes.
func handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		respondJSON(w, http.StatusBadRequest, ErrorResponse{
			Error:   vErr.Error(),
			Code:    "invalid_argument",
			Details: vErr.Field,
		})

	case errors.Is(err, domain.ErrProductNotFound):
		respondError(w, http.StatusNotFound, "not_found", "product not found")

	case errors.Is(err, domain.ErrCartLineNotFound):
		respondError(w, http.StatusNotFound, "not_found", "product is not in the cart")

	case errors.Is(err, sellerdomain.ErrVerificationNotFound):
		respondError(w, http.StatusNotFound, "not_found", "verification record not found")

	case errors.Is(err, domain.ErrProductUnavailable):
		respondError(w, http.StatusConflict, "product_unavailable", "product is out of stock")

	case errors.Is(err, domain.ErrInsufficientStock):
		respondError(w, http.StatusConflict, "insufficient_stock", err.Error())

	case errors.Is(err, committer.ErrOptimisticLockConflict):
		respondError(w, http.StatusConflict, "version_conflict", "record was modified concurrently, retry")

	default:
		log.Printf("%s %s failed: %v", r.Method, r.URL.Path, err)
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return false
	}
	return true
}
