package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/light-bringer/expiry-deals-service/internal/app/cart/queries/get_summary"
	"github.com/light-bringer/expiry-deals-service/internal/app/cart/usecases/add_item"
	"github.com/light-bringer/expiry-deals-service/internal/app/cart/usecases/clear_cart"
	"github.com/light-bringer/expiry-deals-service/internal/app/cart/usecases/remove_item"
	"github.com/light-bringer/expiry-deals-service/internal/app/cart/usecases/update_quantity"
	"github.com/light-bringer/expiry-deals-service/internal/transport/views"
)

// CartHandler serves shopper carts.
type CartHandler struct {
	addItem        *add_item.Interactor
	updateQuantity *update_quantity.Interactor
	removeItem     *remove_item.Interactor
	clearCart      *clear_cart.Interactor
	getSummary     *get_summary.Query
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(
	addItem *add_item.Interactor,
	updateQuantity *update_quantity.Interactor,
	removeItem *remove_item.Interactor,
	clearCart *clear_cart.Interactor,
	getSummary *get_summary.Query,
) *CartHandler {
	return &CartHandler{
		addItem:        addItem,
		updateQuantity: updateQuantity,
		removeItem:     removeItem,
		clearCart:      clearCart,
		getSummary:     getSummary,
	}
}

// AddItemRequestDTO is the body of POST /carts/{cartID}/items.
type AddItemRequestDTO struct {
	ProductID    string `json:"productId"`
	Quantity     int64  `json:"quantity"`
	DeliveryMode string `json:"deliveryMode"`
	Confirmed    bool   `json:"confirmed"`
}

// UpdateQuantityRequestDTO is the body of PUT /carts/{cartID}/items/{productID}.
type UpdateQuantityRequestDTO struct {
	Quantity  int64 `json:"quantity"`
	Confirmed bool  `json:"confirmed"`
}

// GetCart handles GET /api/v1/carts/{cartID}.
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	summary, err := h.getSummary.Execute(r.Context(), &get_summary.Request{
		CartID:       chi.URLParam(r, "cartID"),
		DeliveryMode: r.URL.Query().Get("deliveryMode"),
	})
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, views.NewCartSummary(summary))
}

// AddItem handles POST /api/v1/carts/{cartID}/items.
// A held-back change answers 200 with applied=false and the warning.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var body AddItemRequestDTO
	if !decodeBody(w, r, &body) {
		return
	}

	result, err := h.addItem.Execute(r.Context(), &add_item.Request{
		CartID:       chi.URLParam(r, "cartID"),
		ProductID:    body.ProductID,
		Quantity:     body.Quantity,
		DeliveryMode: body.DeliveryMode,
		Confirmed:    body.Confirmed,
	})
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	status := http.StatusCreated
	if !result.Applied {
		status = http.StatusOK
	}
	respondJSON(w, status, views.NewMutation(result))
}

// UpdateQuantity handles PUT /api/v1/carts/{cartID}/items/{productID}.
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	var body UpdateQuantityRequestDTO
	if !decodeBody(w, r, &body) {
		return
	}

	result, err := h.updateQuantity.Execute(r.Context(), &update_quantity.Request{
		CartID:    chi.URLParam(r, "cartID"),
		ProductID: chi.URLParam(r, "productID"),
		Quantity:  body.Quantity,
		Confirmed: body.Confirmed,
	})
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, views.NewMutation(result))
}

// RemoveItem handles DELETE /api/v1/carts/{cartID}/items/{productID}.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	err := h.removeItem.Execute(r.Context(), &remove_item.Request{
		CartID:    chi.URLParam(r, "cartID"),
		ProductID: chi.URLParam(r, "productID"),
	})
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ClearCart handles DELETE /api/v1/carts/{cartID}.
func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.clearCart.Execute(r.Context(), &clear_cart.Request{CartID: chi.URLParam(r, "cartID")}); err != nil {
		handleDomainError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
