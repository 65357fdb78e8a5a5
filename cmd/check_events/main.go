package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/expiry-deals-service/internal/app/outbox/queries/list_events"
	"github.com/light-bringer/expiry-deals-service/internal/app/outbox/repo"
)

func main() {
	defaultDB := os.Getenv("SPANNER_DATABASE")
	if defaultDB == "" {
		defaultDB = "projects/test-project/instances/dev-instance/databases/expiry-deals-db"
	}
	spannerDB := flag.String("database", defaultDB, "Spanner database")
	status := flag.String("status", "", "Only events in this status (pending, completed, failed)")
	limit := flag.Int("limit", 10, "Maximum number of events")
	flag.Parse()

	ctx := context.Background()

	client, err := spanner.NewClient(ctx, *spannerDB)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}
	defer client.Close()

	req := &list_events.Request{Limit: *limit}
	if *status != "" {
		req.Status = status
	}

	events, _, err := list_events.NewQuery(repo.NewEventsReadModel(client)).Execute(ctx, req)
	if err != nil {
		log.Fatalf("Failed to list events: %v", err)
	}

	if len(events) == 0 {
		fmt.Println("No events found!")
		return
	}

	fmt.Println("Events in outbox_events table:")
	for i, e := range events {
		fmt.Printf("%d. %s - %s (aggregate: %s, status: %s, retries: %d)\n", i+1, e.EventType, e.EventID, e.AggregateID, e.Status, e.RetryCount)
		if e.ErrorMessage.Valid {
			fmt.Printf("   last error: %s\n", e.ErrorMessage.StringVal)
		}
	}
	fmt.Printf("\nTotal: %d events\n", len(events))
}
