package list_events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/expiry-deals-service/internal/models/m_outbox"
)

type recordingReadModel struct {
	last *Request
}

func (r *recordingReadModel) ListEvents(_ context.Context, req *Request) ([]*m_outbox.Data, int64, error) {
	r.last = req
	return []*m_outbox.Data{{EventID: "e1"}}, 1, nil
}

func TestQuery_Execute(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"default", 0, DefaultLimit},
		{"negative", -1, DefaultLimit},
		{"explicit", 10, 10},
		{"capped", 5000, MaxLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rm := &recordingReadModel{}
			events, total, err := NewQuery(rm).Execute(context.Background(), &Request{Limit: tt.limit})
			require.NoError(t, err)
			assert.Len(t, events, 1)
			assert.Equal(t, int64(1), total)
			assert.Equal(t, tt.want, rm.last.Limit)
		})
	}
}
