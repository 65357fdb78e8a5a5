package repo

import (
	"context"
	"encoding/json"
	"fmt"

	"cloud.google.com/go/spanner"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/expiry-deals-service/internal/app/outbox/contracts"
	"github.com/light-bringer/expiry-deals-service/internal/models/m_outbox"
	"github.com/light-bringer/expiry-deals-service/internal/pkg/query"
)

// maxErrorMessageLen bounds the stored publish error.
const maxErrorMessageLen = 1024

// OutboxRepo implements OutboxRepository and RelaySource for Spanner.
type OutboxRepo struct {
	client *spanner.Client
	model  *m_outbox.Model
}

// NewOutboxRepo creates a new OutboxRepo.
func NewOutboxRepo(client *spanner.Client) *OutboxRepo {
	return &OutboxRepo{
		client: client,
		model:  m_outbox.NewModel(),
	}
}

// InsertMut creates a mutation for inserting an outbox event.
func (r *OutboxRepo) InsertMut(event *contracts.OutboxEvent) *spanner.Mutation {
	return r.model.InsertMut(eventToData(event))
}

// EnrichEvent converts a domain event to an outbox event with metadata.
func (r *OutboxRepo) EnrichEvent(event contracts.DomainEvent, payload string) *contracts.OutboxEvent {
	return &contracts.OutboxEvent{
		EventID:     uuid.New().String(),
		EventType:   event.EventType(),
		AggregateID: event.AggregateID(),
		Payload:     payload,
		Status:      m_outbox.StatusPending,
	}
}

// Pending returns up to limit pending events, oldest first.
func (r *OutboxRepo) Pending(ctx context.Context, limit int) ([]*m_outbox.Data, error) {
	stmt := query.From(m_outbox.TableName).
		Select(m_outbox.Columns()...).
		Where(query.Eq(m_outbox.Status, m_outbox.StatusPending)).
		OrderBy(m_outbox.CreatedAt, query.Asc).
		Limit(int64(limit)).
		Build()

	return scanEvents(r.client.Single().Query(ctx, stmt))
}

// MarkCompleted records a successful publish.
func (r *OutboxRepo) MarkCompleted(ctx context.Context, eventID string) error {
	if _, err := r.client.Apply(ctx, []*spanner.Mutation{r.model.CompletedMut(eventID)}); err != nil {
		return fmt.Errorf("failed to mark event %s completed: %w", eventID, err)
	}
	return nil
}

// MarkAttemptFailed increments the retry count and stores the error.
func (r *OutboxRepo) MarkAttemptFailed(ctx context.Context, event *m_outbox.Data, cause error, maxRetries int64) error {
	retries := event.RetryCount + 1
	status := m_outbox.StatusPending
	if retries >= maxRetries {
		status = m_outbox.StatusFailed
	}

	msg := cause.Error()
	if len(msg) > maxErrorMessageLen {
		msg = msg[:maxErrorMessageLen]
	}

	mut := r.model.AttemptFailedMut(event.EventID, status, retries, msg)
	if _, err := r.client.Apply(ctx, []*spanner.Mutation{mut}); err != nil {
		return fmt.Errorf("failed to record publish failure for %s: %w", event.EventID, err)
	}
	return nil
}

func eventToData(event *contracts.OutboxEvent) *m_outbox.Data {
	// RawMessage keeps the payload as a JSON object instead of a JSON string
	payload := spanner.NullJSON{Value: json.RawMessage(event.Payload), Valid: event.Payload != ""}

	return &m_outbox.Data{
		EventID:     event.EventID,
		EventType:   event.EventType,
		AggregateID: event.AggregateID,
		Payload:     payload,
		Status:      event.Status,
		RetryCount:  0,
	}
}

func scanEvents(iter *spanner.RowIterator) ([]*m_outbox.Data, error) {
	defer iter.Stop()

	var events []*m_outbox.Data
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to iterate events: %w", err)
		}

		var event m_outbox.Data
		if err := row.ToStruct(&event); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, &event)
	}
	return events, nil
}
