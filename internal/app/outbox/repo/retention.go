package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/expiry-deals-service/internal/models/m_outbox"
)

// RetentionPolicy bounds how long finished events are kept.
// Completed events age from processed_at, failed ones from created_at.
type RetentionPolicy struct {
	CompletedBefore time.Time
	FailedBefore    time.Time
}

// NewRetentionPolicy builds a policy relative to now.
func NewRetentionPolicy(now time.Time, completedRetention, failedRetention time.Duration) RetentionPolicy {
	return RetentionPolicy{
		CompletedBefore: now.Add(-completedRetention),
		FailedBefore:    now.Add(-failedRetention),
	}
}

const expiredPredicate = `(status = @completed AND processed_at < @completedBefore)
   OR (status = @failed AND created_at < @failedBefore)`

func (p RetentionPolicy) params() map[string]interface{} {
	return map[string]interface{}{
		"completed":       m_outbox.StatusCompleted,
		"failed":          m_outbox.StatusFailed,
		"completedBefore": p.CompletedBefore,
		"failedBefore":    p.FailedBefore,
	}
}

func countExpiredStatement(p RetentionPolicy) spanner.Statement {
	return spanner.Statement{
		SQL:    fmt.Sprintf("SELECT %s, COUNT(*) FROM %s WHERE %s GROUP BY %s", m_outbox.Status, m_outbox.TableName, expiredPredicate, m_outbox.Status),
		Params: p.params(),
	}
}

func purgeExpiredStatement(p RetentionPolicy) spanner.Statement {
	return spanner.Statement{
		SQL:    fmt.Sprintf("DELETE FROM %s WHERE %s", m_outbox.TableName, expiredPredicate),
		Params: p.params(),
	}
}

// CountExpired returns how many events per status the policy would remove.
func (r *OutboxRepo) CountExpired(ctx context.Context, p RetentionPolicy) (map[string]int64, error) {
	iter := r.client.Single().Query(ctx, countExpiredStatement(p))
	defer iter.Stop()

	counts := make(map[string]int64)
	for {
		row, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to count expired events: %w", err)
		}

		var status string
		var count int64
		if err := row.Columns(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to parse row: %w", err)
		}
		counts[status] = count
	}

	return counts, nil
}

// PurgeExpired deletes events older than the policy allows.
func (r *OutboxRepo) PurgeExpired(ctx context.Context, p RetentionPolicy) (int64, error) {
	var deleted int64
	_, err := r.client.ReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		n, err := txn.Update(ctx, purgeExpiredStatement(p))
		if err != nil {
			return fmt.Errorf("failed to delete events: %w", err)
		}
		deleted = n
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("cleanup transaction failed: %w", err)
	}
	return deleted, nil
}
