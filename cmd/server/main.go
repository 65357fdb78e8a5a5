package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"github.com/light-bringer/expiry-deals-service/internal/services"
	"github.com/light-bringer/expiry-deals-service/internal/transport/grpc/pricing"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

func run() error {
	ctx := context.Background()

	// 1. Load configuration from environment variables
	_ = godotenv.Load()
	config, err := loadConfig()
	if err != nil {
		return err
	}

	log.Printf("Starting Expiry Deals Service...")
	log.Printf("Spanner Database: %s", config.Services.SpannerDB)
	log.Printf("Market time zone: %s", config.Services.MarketLocation)
	log.Printf("gRPC Port: %s", config.GRPCPort)
	log.Printf("HTTP Port: %s", config.HTTPPort)

	// 2. Initialize service dependencies (DI container)
	serviceOpts, err := services.NewServiceOptions(ctx, config.Services)
	if err != nil {
		return fmt.Errorf("failed to initialize service: %w", err)
	}
	defer serviceOpts.Close()

	// 3. Create gRPC server
	grpcServer := grpc.NewServer(grpc.StatsHandler(otelgrpc.NewServerHandler()))

	// 4. Register services
	pricing.RegisterPricingServiceServer(grpcServer, serviceOpts.PricingHandler)

	// 5. Enable reflection (for grpcurl and debugging)
	reflection.Register(grpcServer)

	// 6. Start gRPC server listening
	lis, err := net.Listen("tcp", ":"+config.GRPCPort)
	if err != nil {
		return fmt.Errorf("failed to listen on gRPC port: %w", err)
	}

	// 7. Start gRPC server in background
	go func() {
		log.Printf("gRPC server listening on :%s", config.GRPCPort)
		if err := grpcServer.Serve(lis); err != nil {
			log.Printf("gRPC server error: %v", err)
		}
	}()

	// 8. Start HTTP server in background
	httpServer := &http.Server{
		Addr:         ":" + config.HTTPPort,
		Handler:      serviceOpts.HTTPRouter,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: config.Services.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("HTTP server listening on :%s", config.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("HTTP server error: %v", err)
		}
	}()

	// 9. Graceful shutdown handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	log.Println("Shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	grpcServer.GracefulStop()

	return nil
}

// Config holds application configuration.
type Config struct {
	GRPCPort        string
	HTTPPort        string
	ShutdownTimeout time.Duration
	Services        services.Config
}

// loadConfig loads configuration from environment variables with defaults.
func loadConfig() (Config, error) {
	loc, err := time.LoadLocation(getEnv("MARKET_TIMEZONE", "Asia/Kolkata"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid MARKET_TIMEZONE: %w", err)
	}

	cartTTL, err := time.ParseDuration(getEnv("CART_TTL", "168h"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid CART_TTL: %w", err)
	}

	requestTimeout, err := time.ParseDuration(getEnv("REQUEST_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid REQUEST_TIMEOUT: %w", err)
	}

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	return Config{
		GRPCPort:        getEnv("GRPC_PORT", "9090"),
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		ShutdownTimeout: 10 * time.Second,
		Services: services.Config{
			// Default for local development with emulator
			SpannerDB:      getEnv("SPANNER_DATABASE", "projects/test-project/instances/dev-instance/databases/expiry-deals-db"),
			RedisAddr:      os.Getenv("REDIS_ADDR"),
			RedisPassword:  os.Getenv("REDIS_PASSWORD"),
			RedisDB:        redisDB,
			CartTTL:        cartTTL,
			MarketLocation: loc,
			RequestTimeout: requestTimeout,
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
