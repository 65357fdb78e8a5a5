package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/light-bringer/expiry-deals-service/internal/transport/grpc/pricing"
)

func main() {
	addr := flag.String("addr", "localhost:9090", "Pricing service address")
	productID := flag.String("product", "", "Product to quote")
	cartID := flag.String("cart", "", "Cart to summarize instead of a product")
	mode := flag.String("mode", "delivery", "Delivery mode (delivery or pickup)")
	quantity := flag.Int("quantity", 0, "Quantity the shopper is about to select")
	flag.Parse()

	if *productID == "" && *cartID == "" {
		log.Fatal("Error: -product or -cart is required")
	}

	conn, err := grpc.NewClient(*addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		log.Fatalf("Failed to connect: %v", err)
	}
	defer conn.Close()

	client := pricing.NewPricingServiceClient(conn)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var out *structpb.Struct
	if *cartID != "" {
		in, _ := structpb.NewStruct(map[string]interface{}{"cartId": *cartID, "deliveryMode": *mode})
		out, err = client.SummarizeCart(ctx, in)
	} else {
		in, _ := structpb.NewStruct(map[string]interface{}{"productId": *productID, "deliveryMode": *mode, "quantity": *quantity})
		out, err = client.QuoteProduct(ctx, in)
	}
	if err != nil {
		log.Fatalf("Request failed: %v", err)
	}

	fmt.Println(protojson.MarshalOptions{Multiline: true}.Format(out))
}
