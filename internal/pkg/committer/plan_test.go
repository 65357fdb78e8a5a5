package committer

import (
	"context"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommitPlan(t *testing.T) {
	t.Run("new plan is empty", func(t *testing.T) {
		plan := NewPlan()
		assert.True(t, plan.IsEmpty())
		assert.Equal(t, 0, plan.Count())
	})

	t.Run("nil mutations are ignored", func(t *testing.T) {
		plan := NewPlan()
		plan.Add(nil)
		plan.AddMultiple([]*spanner.Mutation{nil, nil})
		assert.True(t, plan.IsEmpty())
	})

	t.Run("collects mutations in order", func(t *testing.T) {
		first := spanner.Delete("outbox_events", spanner.Key{"e-1"})
		second := spanner.Delete("outbox_events", spanner.Key{"e-2"})

		plan := NewPlan()
		plan.Add(first)
		plan.AddMultiple([]*spanner.Mutation{second})

		require.Equal(t, 2, plan.Count())
		assert.Same(t, first, plan.Mutations()[0])
		assert.Same(t, second, plan.Mutations()[1])
	})
}

func TestCommitter_EmptyPlanIsNoop(t *testing.T) {
	// A nil client is never touched when there is nothing to commit.
	c := NewCommitter(nil)
	ctx := context.Background()

	assert.NoError(t, c.Apply(ctx, NewPlan()))
	assert.NoError(t, c.ApplyWithVersionCheck(ctx, VersionGuard{Table: "seller_verifications", Key: spanner.Key{"s-1"}}, 1, NewPlan()))
}
