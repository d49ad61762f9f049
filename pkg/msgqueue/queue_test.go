package msgqueue

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bitnation/pangea-core/pkg/db"
	"github.com/bitnation/pangea-core/pkg/events"
)

func TestQueue_AddJobStoresAndAnnounces(t *testing.T) {
	var stored *db.MessageJob
	store := &MockStore{
		CreateMessageJobFunc: func(ctx context.Context, m *db.MessageJob) error {
			m.ID = 7
			stored = m
			return nil
		},
	}
	bus := events.NewBus()
	added, cancel := bus.Subscribe(events.TopicMessageAdded)
	defer cancel()

	q := NewQueue(store, bus, zap.NewNop())

	rec, err := q.AddJob(context.Background(),
		NewMsg("nation.join.succeed", map[string]any{"nationName": "Beta"}, true).Display("nation.heading"))
	require.NoError(t, err)
	require.Equal(t, int64(7), rec.ID)
	require.Same(t, stored, rec)

	select {
	case got := <-added:
		require.Same(t, rec, got.(*db.MessageJob))
	case <-time.After(time.Second):
		t.Fatal("expected a message-added event")
	}
}

func TestQueue_AddJobStoreFailure(t *testing.T) {
	storeErr := errors.New("disk full")
	store := &MockStore{
		CreateMessageJobFunc: func(ctx context.Context, m *db.MessageJob) error {
			return storeErr
		},
	}
	q := NewQueue(store, events.NewBus(), zap.NewNop())

	_, err := q.AddJob(context.Background(), NewMsg("some.key", nil, false))
	require.ErrorIs(t, err, storeErr)
}

func TestQueue_FetchMessagesCreationOrder(t *testing.T) {
	store := &MockStore{
		RecentMessageJobsFunc: func(ctx context.Context, count int) ([]*db.MessageJob, error) {
			require.Equal(t, 2, count)
			return []*db.MessageJob{{ID: 5}, {ID: 4}}, nil
		},
	}
	q := NewQueue(store, events.NewBus(), zap.NewNop())

	msgs, err := q.FetchMessages(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	require.Equal(t, int64(4), msgs[0].ID)
	require.Equal(t, int64(5), msgs[1].ID)
}

func TestQueue_RemoveJobAbsentIsNoop(t *testing.T) {
	store := &MockStore{
		DeleteMessageJobFunc: func(ctx context.Context, id int64) error {
			return db.ErrMessageNotFound
		},
	}
	q := NewQueue(store, events.NewBus(), zap.NewNop())

	require.NoError(t, q.RemoveJob(context.Background(), 99))
}
