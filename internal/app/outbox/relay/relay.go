// Package relay moves committed outbox events to Kafka.
//
// Events are read oldest first. Each publish runs through a circuit breaker;
// while the breaker is open the batch stops early and the remaining events
// stay pending without spending a retry.
package relay

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/light-bringer/expiry-deals-service/internal/app/outbox/contracts"
	"github.com/light-bringer/expiry-deals-service/internal/models/m_outbox"
)

// Config tunes the relay.
type Config struct {
	TopicPrefix  string
	BatchSize    int
	MaxRetries   int64
	PollInterval time.Duration
	// BreakerFailures is the number of consecutive publish failures that opens the breaker.
	BreakerFailures uint32
	BreakerTimeout  time.Duration
}

// DefaultConfig returns the relay defaults.
func DefaultConfig() Config {
	return Config{
		TopicPrefix:     "expiry-deals",
		BatchSize:       100,
		MaxRetries:      5,
		PollInterval:    5 * time.Second,
		BreakerFailures: 3,
		BreakerTimeout:  30 * time.Second,
	}
}

// Stats summarizes one relay pass.
type Stats struct {
	Published int
	Failed    int
	Deferred  int
}

// Relay drains the outbox into a Publisher.
type Relay struct {
	source    contracts.RelaySource
	publisher Publisher
	breaker   *gobreaker.CircuitBreaker[struct{}]
	cfg       Config
}

// New creates a Relay.
func New(source contracts.RelaySource, publisher Publisher, cfg Config) *Relay {
	breaker := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        "outbox-publisher",
		MaxRequests: 1,
		Timeout:     cfg.BreakerTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.BreakerFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Printf("circuit breaker %s: %s -> %s", name, from, to)
		},
	})

	return &Relay{
		source:    source,
		publisher: publisher,
		breaker:   breaker,
		cfg:       cfg,
	}
}

// TopicFor returns the Kafka topic of an event type.
func TopicFor(prefix, eventType string) string {
	if prefix == "" {
		return eventType
	}
	return prefix + "." + eventType
}

// RunOnce publishes one batch of pending events.
func (r *Relay) RunOnce(ctx context.Context) (Stats, error) {
	var stats Stats

	events, err := r.source.Pending(ctx, r.cfg.BatchSize)
	if err != nil {
		return stats, fmt.Errorf("failed to load pending events: %w", err)
	}

	for i, event := range events {
		err := r.publish(ctx, event)
		switch {
		case err == nil:
			if err := r.source.MarkCompleted(ctx, event.EventID); err != nil {
				return stats, err
			}
			stats.Published++

		case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
			stats.Deferred += len(events) - i
			return stats, nil

		default:
			log.Printf("failed to publish event %s (%s): %v", event.EventID, event.EventType, err)
			if err := r.source.MarkAttemptFailed(ctx, event, err, r.cfg.MaxRetries); err != nil {
				return stats, err
			}
			stats.Failed++
		}
	}

	return stats, nil
}

// Run polls the outbox until ctx is cancelled.
func (r *Relay) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.cfg.PollInterval)
	defer ticker.Stop()

	for {
		stats, err := r.RunOnce(ctx)
		if err != nil {
			log.Printf("outbox relay pass failed: %v", err)
		} else if stats.Published+stats.Failed+stats.Deferred > 0 {
			log.Printf("outbox relay: published=%d failed=%d deferred=%d", stats.Published, stats.Failed, stats.Deferred)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (r *Relay) publish(ctx context.Context, event *m_outbox.Data) error {
	payload, err := event.PayloadBytes()
	if err != nil {
		return fmt.Errorf("invalid payload: %w", err)
	}

	msg := Message{
		Topic: TopicFor(r.cfg.TopicPrefix, event.EventType),
		Key:   event.AggregateID,
		Value: payload,
		Headers: map[string]string{
			"event_id":   event.EventID,
			"event_type": event.EventType,
		},
	}

	_, err = r.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, r.publisher.Publish(ctx, msg)
	})
	return err
}
