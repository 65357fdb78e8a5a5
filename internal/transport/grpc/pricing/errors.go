package pricing

import (
	"errors"
	"log"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/light-bringer/expiry-deals-service/internal/app/product/domain"
)

// mapDomainErrorToGRPC converts domain errors to gRPC status codes.
func mapDomainErrorToGRPC(err error) error {
	if err == nil {
		return nil
	}

	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		return status.Error(codes.InvalidArgument, vErr.Error())

	case errors.Is(err, domain.ErrProductNotFound):
		return status.Error(codes.NotFound, "product not found")

	case errors.Is(err, domain.ErrCartLineNotFound):
		return status.Error(codes.NotFound, "product is not in the cart")

	case errors.Is(err, domain.ErrProductUnavailable):
		return status.Error(codes.FailedPrecondition, "product is out of stock")

	case errors.Is(err, domain.ErrInsufficientStock):
		return status.Error(codes.FailedPrecondition, err.Error())

	default:
		log.Printf("pricing rpc failed: %v", err)
		return status.Error(codes.Internal, "internal server error")
	}
}
