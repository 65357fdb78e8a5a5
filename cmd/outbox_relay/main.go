package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"cloud.google.com/go/spanner"
	"github.com/joho/godotenv"

	"github.com/light-bringer/expiry-deals-service/internal/app/outbox/relay"
	"github.com/light-bringer/expiry-deals-service/internal/app/outbox/repo"
)

func main() {
	_ = godotenv.Load()

	cfg := relay.DefaultConfig()
	spannerDB := flag.String("database", getEnv("SPANNER_DATABASE", "projects/test-project/instances/dev-instance/databases/expiry-deals-db"), "Spanner database")
	brokers := flag.String("brokers", getEnv("KAFKA_BROKERS", "localhost:9092"), "Comma-separated Kafka seed brokers")
	flag.StringVar(&cfg.TopicPrefix, "topic-prefix", getEnv("TOPIC_PREFIX", cfg.TopicPrefix), "Prefix for event topics")
	flag.IntVar(&cfg.BatchSize, "batch", cfg.BatchSize, "Events per pass")
	flag.Int64Var(&cfg.MaxRetries, "max-retries", cfg.MaxRetries, "Publish attempts before an event is marked failed")
	flag.DurationVar(&cfg.PollInterval, "interval", cfg.PollInterval, "Delay between passes")
	once := flag.Bool("once", false, "Run a single pass and exit")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := spanner.NewClient(ctx, *spannerDB)
	if err != nil {
		log.Fatalf("Failed to create Spanner client: %v", err)
	}
	defer client.Close()

	publisher, err := relay.NewKafkaPublisher(splitBrokers(*brokers))
	if err != nil {
		log.Fatalf("Failed to create Kafka publisher: %v", err)
	}
	defer publisher.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	if err := publisher.Ping(pingCtx); err != nil {
		log.Printf("Warning: no Kafka broker reachable yet: %v", err)
	}
	cancel()

	r := relay.New(repo.NewOutboxRepo(client), publisher, cfg)

	if *once {
		stats, err := r.RunOnce(ctx)
		if err != nil {
			log.Fatalf("Relay pass failed: %v", err)
		}
		log.Printf("Published %d, failed %d, deferred %d", stats.Published, stats.Failed, stats.Deferred)
		return
	}

	log.Printf("Relaying outbox events to %s (topic prefix %q)", *brokers, cfg.TopicPrefix)
	if err := r.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("Relay stopped: %v", err)
	}
	log.Println("Relay stopped")
}

func splitBrokers(s string) []string {
	var out []string
	for _, b := range strings.Split(s, ",") {
		if b = strings.TrimSpace(b); b != "" {
			out = append(out, b)
		}
	}
	return out
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
