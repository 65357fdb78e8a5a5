package contracts

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/expiry-deals-service/internal/models/m_outbox"
)

// DomainEvent is the base interface for all domain events written to the outbox.
type DomainEvent interface {
	EventType() string
	AggregateID() string
}

// OutboxEvent represents an enriched domain event ready for persistence.
type OutboxEvent struct {
	EventID     string
	EventType   string
	AggregateID string
	Payload     string // JSON
	Status      string
}

// OutboxRepository defines the interface for outbox event persistence.
type OutboxRepository interface {
	// InsertMut creates a mutation for inserting an outbox event
	InsertMut(event *OutboxEvent) *spanner.Mutation

	// EnrichEvent converts a domain event to an outbox event with metadata
	EnrichEvent(event DomainEvent, payload string) *OutboxEvent
}

// RelaySource is the side of the outbox the relay drains.
type RelaySource interface {
	// Pending returns up to limit pending events, oldest first.
	Pending(ctx context.Context, limit int) ([]*m_outbox.Data, error)

	// MarkCompleted records a successful publish.
	MarkCompleted(ctx context.Context, eventID string) error

	// MarkAttemptFailed increments the retry count and stores the error.
	// The event becomes failed once retryCount reaches maxRetries.
	MarkAttemptFailed(ctx context.Context, event *m_outbox.Data, cause error, maxRetries int64) error
}
