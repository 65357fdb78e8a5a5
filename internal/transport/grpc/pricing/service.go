package pricing

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified gRPC service name.
const ServiceName = "pricing.v1.PricingService"

const (
	quoteProductMethod  = "/" + ServiceName + "/QuoteProduct"
	summarizeCartMethod = "/" + ServiceName + "/SummarizeCart"
)

// PricingServiceServer is the server API for the pricing service.
// Messages are google.protobuf.Struct so clients need no generated stubs.
type PricingServiceServer interface {
	QuoteProduct(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SummarizeCart(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

// RegisterPricingServiceServer registers srv on s.
func RegisterPricingServiceServer(s grpc.ServiceRegistrar, srv PricingServiceServer) {
	s.RegisterService(&PricingServiceDesc, srv)
}

// PricingServiceDesc describes the pricing service for grpc.Server.
var PricingServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*PricingServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "QuoteProduct", Handler: quoteProductHandler},
		{MethodName: "SummarizeCart", Handler: summarizeCartHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "pricing/v1/pricing.proto",
}

func quoteProductHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PricingServiceServer).QuoteProduct(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: quoteProductMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PricingServiceServer).QuoteProduct(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

func summarizeCartHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PricingServiceServer).SummarizeCart(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: summarizeCartMethod}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PricingServiceServer).SummarizeCart(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

// PricingServiceClient is the client API for the pricing service.
type PricingServiceClient struct {
	cc grpc.ClientConnInterface
}

// NewPricingServiceClient creates a client over cc.
func NewPricingServiceClient(cc grpc.ClientConnInterface) *PricingServiceClient {
	return &PricingServiceClient{cc: cc}
}

// QuoteProduct prices a single product.
func (c *PricingServiceClient) QuoteProduct(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, quoteProductMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

// SummarizeCart prices a stored cart.
func (c *PricingServiceClient) SummarizeCart(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, summarizeCartMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}
