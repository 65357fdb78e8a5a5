package pricing

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/light-bringer/expiry-deals-service/internal/app/cart/queries/get_summary"
	"github.com/light-bringer/expiry-deals-service/internal/app/product/queries/get_product"
	"github.com/light-bringer/expiry-deals-service/internal/transport/views"
)

// Handler implements PricingServiceServer.
// It's a thin coordinator that delegates to queries.
type Handler struct {
	getProduct *get_product.Query
	getSummary *get_summary.Query
}

// NewHandler creates a new gRPC pricing handler.
func NewHandler(getProduct *get_product.Query, getSummary *get_summary.Query) *Handler {
	return &Handler{
		getProduct: getProduct,
		getSummary: getSummary,
	}
}

// QuoteProduct prices one product for today.
// Request fields: productId, deliveryMode, quantity.
func (h *Handler) QuoteProduct(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	productID, err := stringField(in, "productId")
	if err != nil {
		return nil, err
	}
	mode, err := stringField(in, "deliveryMode")
	if err != nil {
		return nil, err
	}
	quantity, err := intField(in, "quantity")
	if err != nil {
		return nil, err
	}

	resp, err := h.getProduct.Execute(ctx, &get_product.Request{
		ProductID:    productID,
		DeliveryMode: mode,
		Quantity:     quantity,
	})
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	v := views.NewPricedProduct(&resp.PricedProduct)
	v.QuantityWarning = resp.QuantityWarning
	return toStruct(v)
}

// SummarizeCart prices a stored cart.
// Request fields: cartId, deliveryMode.
func (h *Handler) SummarizeCart(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	cartID, err := stringField(in, "cartId")
	if err != nil {
		return nil, err
	}
	mode, err := stringField(in, "deliveryMode")
	if err != nil {
		return nil, err
	}

	summary, err := h.getSummary.Execute(ctx, &get_summary.Request{
		CartID:       cartID,
		DeliveryMode: mode,
	})
	if err != nil {
		return nil, mapDomainErrorToGRPC(err)
	}

	return toStruct(views.NewCartSummary(summary))
}
