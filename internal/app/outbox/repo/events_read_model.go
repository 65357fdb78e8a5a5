package repo

import (
	"context"

	"cloud.google.com/go/spanner"

	"github.com/light-bringer/expiry-deals-service/internal/app/outbox/queries/list_events"
	"github.com/light-bringer/expiry-deals-service/internal/models/m_outbox"
	"github.com/light-bringer/expiry-deals-service/internal/pkg/query"
)

// EventsReadModel implements the list_events.EventsReadModel interface for Spanner.
type EventsReadModel struct {
	client *spanner.Client
}

// NewEventsReadModel creates a new EventsReadModel.
func NewEventsReadModel(client *spanner.Client) *EventsReadModel {
	return &EventsReadModel{
		client: client,
	}
}

// ListEvents retrieves events from the outbox_events table with filtering.
func (r *EventsReadModel) ListEvents(ctx context.Context, req *list_events.Request) ([]*m_outbox.Data, int64, error) {
	events, err := scanEvents(r.client.Single().Query(ctx, listEventsStatement(req)))
	if err != nil {
		return nil, 0, err
	}
	return events, int64(len(events)), nil
}

func listEventsStatement(req *list_events.Request) spanner.Statement {
	q := query.From(m_outbox.TableName).Select(m_outbox.Columns()...)

	if req.EventType != nil {
		q = q.Where(query.Eq(m_outbox.EventType, *req.EventType))
	}
	if req.AggregateID != nil {
		q = q.Where(query.Eq(m_outbox.AggregateID, *req.AggregateID))
	}
	if req.Status != nil {
		q = q.Where(query.Eq(m_outbox.Status, *req.Status))
	}

	return q.OrderBy(m_outbox.CreatedAt, query.Desc).Limit(int64(req.Limit)).Build()
}
