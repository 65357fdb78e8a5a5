package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// DefaultRequestTimeout bounds a request when no timeout is configured.
const DefaultRequestTimeout = 30 * time.Second

// NewRouter builds the HTTP API.
func NewRouter(products *ProductsHandler, carts *CartHandler, admin *AdminHandler, requestTimeout time.Duration) http.Handler {
	if requestTimeout <= 0 {
		requestTimeout = DefaultRequestTimeout
	}

	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", products.List)
		r.Get("/products/{productID}", products.Get)

		r.Route("/carts/{cartID}", func(r chi.Router) {
			r.Get("/", carts.GetCart)
			r.Delete("/", carts.ClearCart)
			r.Post("/items", carts.AddItem)
			r.Put("/items/{productID}", carts.UpdateQuantity)
			r.Delete("/items/{productID}", carts.RemoveItem)
		})

		r.Get("/admin/verify-seller", admin.ListVerifications)
		r.Post("/admin/verify-seller", admin.ReviewSeller)
		r.Get("/events", admin.ListEvents)
	})

	return otelhttp.NewHandler(r, "expiry-deals-http")
}
