package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/expiry-deals-service/internal/app/outbox/repo"
)

// Configuration for outbox cleanup job
type Config struct {
	SpannerDB              string
	CompletedRetentionDays int
	FailedRetentionDays    int
	DryRun                 bool
}

func main() {
	config := Config{}
	flag.StringVar(&config.SpannerDB, "database", "", "Spanner database (required, format: projects/PROJECT/instances/INSTANCE/databases/DATABASE)")
	flag.IntVar(&config.CompletedRetentionDays, "completed-retention", 30, "Retention days for completed events")
	flag.IntVar(&config.FailedRetentionDays, "failed-retention", 90, "Retention days for failed events")
	flag.BoolVar(&config.DryRun, "dry-run", false, "Show what would be deleted without actually deleting")
	flag.Parse()

	if config.SpannerDB == "" {
		log.Fatal("Error: -database flag is required")
	}

	if err := cleanupOutbox(context.Background(), config); err != nil {
		log.Fatalf("Cleanup failed: %v", err)
	}

	log.Println("Cleanup completed successfully")
}

func cleanupOutbox(ctx context.Context, config Config) error {
	client, err := spanner.NewClient(ctx, config.SpannerDB)
	if err != nil {
		return fmt.Errorf("failed to create Spanner client: %w", err)
	}
	defer client.Close()

	day := 24 * time.Hour
	policy := repo.NewRetentionPolicy(
		time.Now().UTC(),
		time.Duration(config.CompletedRetentionDays)*day,
		time.Duration(config.FailedRetentionDays)*day,
	)

	log.Printf("Starting outbox cleanup...")
	log.Printf("  Completed events cutoff: %s (retention: %d days)", policy.CompletedBefore.Format(time.RFC3339), config.CompletedRetentionDays)
	log.Printf("  Failed events cutoff: %s (retention: %d days)", policy.FailedBefore.Format(time.RFC3339), config.FailedRetentionDays)
	log.Printf("  Dry run: %v", config.DryRun)

	outbox := repo.NewOutboxRepo(client)

	if config.DryRun {
		counts, err := outbox.CountExpired(ctx, policy)
		if err != nil {
			return err
		}
		var total int64
		for status, count := range counts {
			log.Printf("  Would delete %d %s events", count, status)
			total += count
		}
		log.Printf("DRY RUN: Would delete %d total events", total)
		log.Println("Run without --dry-run to actually delete events")
		return nil
	}

	deleted, err := outbox.PurgeExpired(ctx, policy)
	if err != nil {
		return err
	}
	log.Printf("Successfully deleted %d events", deleted)

	return nil
}
