package http

import (
	"net/http"
	"strconv"

	"github.com/light-bringer/expiry-deals-service/internal/app/outbox/queries/list_events"
	"github.com/light-bringer/expiry-deals-service/internal/app/seller/queries/list_verifications"
	"github.com/light-bringer/expiry-deals-service/internal/app/seller/usecases/review_seller"
	"github.com/light-bringer/expiry-deals-service/internal/transport/views"
)

// AdminHandler serves seller verification and the outbox listing.
type AdminHandler struct {
	reviewSeller      *review_seller.Interactor
	listVerifications *list_verifications.Query
	listEvents        *list_events.Query
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(
	reviewSeller *review_seller.Interactor,
	listVerifications *list_verifications.Query,
	listEvents *list_events.Query,
) *AdminHandler {
	return &AdminHandler{
		reviewSeller:      reviewSeller,
		listVerifications: listVerifications,
		listEvents:        listEvents,
	}
}

// ReviewSellerRequestDTO is the body of POST /admin/verify-seller.
type ReviewSellerRequestDTO struct {
	SellerID        string `json:"sellerId"`
	Approved        bool   `json:"approved"`
	RejectionReason string `json:"rejectionReason"`
}

// ReviewSellerResponseDTO confirms a verification decision.
type ReviewSellerResponseDTO struct {
	Message      string              `json:"message"`
	Verification *views.Verification `json:"verification"`
}

// ListVerifications handles GET /api/v1/admin/verify-seller.
func (h *AdminHandler) ListVerifications(w http.ResponseWriter, r *http.Request) {
	records, err := h.listVerifications.Execute(r.Context(), &list_verifications.Request{
		Status: r.URL.Query().Get("status"),
	})
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	out := make([]*views.Verification, 0, len(records))
	for _, rec := range records {
		out = append(out, views.NewVerification(rec))
	}
	respondJSON(w, http.StatusOK, out)
}

// ReviewSeller handles POST /api/v1/admin/verify-seller.
func (h *AdminHandler) ReviewSeller(w http.ResponseWriter, r *http.Request) {
	var body ReviewSellerRequestDTO
	if !decodeBody(w, r, &body) {
		return
	}

	resp, err := h.reviewSeller.Execute(r.Context(), &review_seller.Request{
		SellerID:        body.SellerID,
		Approved:        body.Approved,
		RejectionReason: body.RejectionReason,
	})
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, ReviewSellerResponseDTO{
		Message:      "Seller verification updated",
		Verification: views.NewVerification(resp.Verification),
	})
}

// ListEvents handles GET /api/v1/events.
func (h *AdminHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := &list_events.Request{}

	if eventType := q.Get("event_type"); eventType != "" {
		req.EventType = &eventType
	}
	if aggregateID := q.Get("aggregate_id"); aggregateID != "" {
		req.AggregateID = &aggregateID
	}
	if status := q.Get("status"); status != "" {
		req.Status = &status
	}
	if limitStr := q.Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			req.Limit = limit
		}
	}

	events, total, err := h.listEvents.Execute(r.Context(), req)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	resp, err := views.NewEventList(events, total)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, resp)
}
