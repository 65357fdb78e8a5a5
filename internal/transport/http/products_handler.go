package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/light-bringer/expiry-deals-service/internal/app/cart/contracts"
	"github.com/light-bringer/expiry-deals-service/internal/app/product/queries/get_product"
	"github.com/light-bringer/expiry-deals-service/internal/app/product/queries/list_products"
	"github.com/light-bringer/expiry-deals-service/internal/transport/views"
)

// ProductsHandler serves the marketplace catalog.
type ProductsHandler struct {
	getProduct   *get_product.Query
	listProducts *list_products.Query
}

// NewProductsHandler creates a new catalog handler.
func NewProductsHandler(getProduct *get_product.Query, listProducts *list_products.Query) *ProductsHandler {
	return &ProductsHandler{
		getProduct:   getProduct,
		listProducts: listProducts,
	}
}

// List handles GET /api/v1/products.
func (h *ProductsHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := &list_products.Request{
		Category:     q.Get("category"),
		SortBy:       q.Get("sortBy"),
		Expiry:       q.Get("expiry"),
		DeliveryMode: q.Get("deliveryMode"),
	}

	var ok bool
	if req.Latitude, ok = optionalFloat(w, q.Get("lat"), "lat"); !ok {
		return
	}
	if req.Longitude, ok = optionalFloat(w, q.Get("lng"), "lng"); !ok {
		return
	}
	distance, ok := optionalFloat(w, q.Get("distance"), "distance")
	if !ok {
		return
	}
	if distance != nil {
		req.DistanceKm = *distance
	}
	if s := q.Get("pageSize"); s != "" {
		size, err := strconv.Atoi(s)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid_argument", "pageSize must be an integer")
			return
		}
		req.PageSize = size
	}

	resp, err := h.listProducts.Execute(r.Context(), req)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, views.NewProductList(resp.Products, resp.TotalCount))
}

// Get handles GET /api/v1/products/{productID}.
func (h *ProductsHandler) Get(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := &get_product.Request{
		ProductID:    chi.URLParam(r, "productID"),
		DeliveryMode: q.Get("deliveryMode"),
	}
	if s := q.Get("quantity"); s != "" {
		qty, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid_argument", "quantity must be an integer")
			return
		}
		req.Quantity = qty
	}

	resp, err := h.getProduct.Execute(r.Context(), req)
	if err != nil {
		handleDomainError(w, r, err)
		return
	}

	v := views.NewPricedProduct(&resp.PricedProduct)
	if resp.QuantityWarning {
		v.QuantityWarning = true
		v.QuantityWarningMsg = contracts.ExpiryWarning(resp.Pricing.DaysUntilExpiry, req.Quantity)
	}
	respondJSON(w, http.StatusOK, v)
}

func optionalFloat(w http.ResponseWriter, s, name string) (*float64, bool) {
	if s == "" {
		return nil, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_argument", name+" must be a number")
		return nil, false
	}
	return &f, true
}
