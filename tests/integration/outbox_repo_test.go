//go:build integration

package integration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/expiry-deals-service/internal/app/outbox/queries/list_events"
	"github.com/light-bringer/expiry-deals-service/internal/app/outbox/relay"
	"github.com/light-bringer/expiry-deals-service/internal/app/outbox/repo"
	"github.com/light-bringer/expiry-deals-service/internal/models/m_outbox"
	"github.com/light-bringer/expiry-deals-service/tests/testutil"
)

type recordingPublisher struct {
	messages []relay.Message
	err      error
}

func (p *recordingPublisher) Publish(_ context.Context, msg relay.Message) error {
	if p.err != nil {
		return p.err
	}
	p.messages = append(p.messages, msg)
	return nil
}

func TestOutboxRepo_RelayLifecycle(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	outboxRepo := repo.NewOutboxRepo(client)

	first := testutil.CreateTestOutboxEvent(t, client, "seller.verification.approved", "seller-1", m_outbox.StatusPending)
	testutil.CreateTestOutboxEvent(t, client, "seller.verification.rejected", "seller-2", m_outbox.StatusCompleted)

	t.Run("pending only returns pending events", func(t *testing.T) {
		events, err := outboxRepo.Pending(ctx, 10)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, first, events[0].EventID)
	})

	t.Run("failed attempts count up to failure", func(t *testing.T) {
		events, err := outboxRepo.Pending(ctx, 10)
		require.NoError(t, err)

		require.NoError(t, outboxRepo.MarkAttemptFailed(ctx, events[0], errors.New("broker down"), 2))
		events, err = outboxRepo.Pending(ctx, 10)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, int64(1), events[0].RetryCount)
		assert.Equal(t, "broker down", events[0].ErrorMessage.StringVal)
	})

	t.Run("relay publishes and completes", func(t *testing.T) {
		publisher := &recordingPublisher{}
		cfg := relay.DefaultConfig()
		r := relay.New(outboxRepo, publisher, cfg)

		stats, err := r.RunOnce(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, stats.Published)
		require.Len(t, publisher.messages, 1)
		assert.Equal(t, "expiry-deals.seller.verification.approved", publisher.messages[0].Topic)
		assert.Equal(t, "seller-1", publisher.messages[0].Key)

		events, err := outboxRepo.Pending(ctx, 10)
		require.NoError(t, err)
		assert.Empty(t, events)
	})
}

func TestEventsReadModel_ListEvents(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	q := list_events.NewQuery(repo.NewEventsReadModel(client))

	testutil.CreateTestOutboxEvent(t, client, "seller.verification.approved", "seller-1", m_outbox.StatusPending)
	testutil.CreateTestOutboxEvent(t, client, "seller.verification.rejected", "seller-2", m_outbox.StatusPending)
	testutil.CreateTestOutboxEvent(t, client, "seller.verification.approved", "seller-3", m_outbox.StatusFailed)

	t.Run("all events", func(t *testing.T) {
		events, total, err := q.Execute(ctx, &list_events.Request{})
		require.NoError(t, err)
		assert.Len(t, events, 3)
		assert.Equal(t, int64(3), total)
	})

	t.Run("filter by type and status", func(t *testing.T) {
		eventType := "seller.verification.approved"
		status := m_outbox.StatusFailed
		events, _, err := q.Execute(ctx, &list_events.Request{EventType: &eventType, Status: &status})
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, "seller-3", events[0].AggregateID)
	})

	t.Run("filter by aggregate", func(t *testing.T) {
		aggregateID := "seller-2"
		events, _, err := q.Execute(ctx, &list_events.Request{AggregateID: &aggregateID})
		require.NoError(t, err)
		require.Len(t, events, 1)
	})
}

func TestOutboxRepo_Retention(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	outboxRepo := repo.NewOutboxRepo(client)

	pending := testutil.CreateTestOutboxEvent(t, client, "seller.verification.approved", "seller-1", m_outbox.StatusPending)
	testutil.CreateTestOutboxEvent(t, client, "seller.verification.approved", "seller-2", m_outbox.StatusFailed)
	completed := testutil.CreateTestOutboxEvent(t, client, "seller.verification.approved", "seller-3", m_outbox.StatusPending)
	require.NoError(t, outboxRepo.MarkCompleted(ctx, completed))

	// A policy anchored in the future treats every finished event as expired.
	policy := repo.NewRetentionPolicy(time.Now().Add(time.Hour), 0, 0)

	counts, err := outboxRepo.CountExpired(ctx, policy)
	require.NoError(t, err)
	assert.Equal(t, int64(1), counts[m_outbox.StatusCompleted])
	assert.Equal(t, int64(1), counts[m_outbox.StatusFailed])

	purged, err := outboxRepo.PurgeExpired(ctx, policy)
	require.NoError(t, err)
	assert.Equal(t, int64(2), purged)

	testutil.AssertRowCount(t, client, m_outbox.TableName, 1)
	events, err := outboxRepo.Pending(ctx, 10)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, pending, events[0].EventID)
}
