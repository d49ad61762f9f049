// Package msgqueue persists user-facing messages emitted by background work
// so the UI can surface them whenever it next looks.
package msgqueue

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/bitnation/pangea-core/internal/metrics"
	"github.com/bitnation/pangea-core/pkg/db"
	"github.com/bitnation/pangea-core/pkg/events"
)

// Store is the subset of persistence the queue needs.
type Store interface {
	CreateMessageJob(ctx context.Context, m *db.MessageJob) error
	RecentMessageJobs(ctx context.Context, count int) ([]*db.MessageJob, error)
	DeleteMessageJob(ctx context.Context, id int64) error
}

// Queue is the durable message queue.
type Queue struct {
	store  Store
	bus    *events.Bus
	logger *zap.Logger
}

// NewQueue creates a message queue on top of the given store.
func NewQueue(store Store, bus *events.Bus, logger *zap.Logger) *Queue {
	return &Queue{
		store:  store,
		bus:    bus,
		logger: logger,
	}
}

// AddJob persists the message and announces it on the bus. The returned
// record carries the assigned id.
func (q *Queue) AddJob(ctx context.Context, msg *Msg) (*db.MessageJob, error) {
	rec, err := msg.record()
	if err != nil {
		return nil, err
	}

	if err := q.store.CreateMessageJob(ctx, rec); err != nil {
		return nil, err
	}

	q.logger.Debug("message queued",
		zap.Int64("id", rec.ID),
		zap.String("key", rec.Msg),
	)
	metrics.MessagesTotal.Inc()
	q.bus.Emit(events.TopicMessageAdded, rec)

	return rec, nil
}

// FetchMessages returns up to count of the most recent messages in creation
// order, oldest of the window first.
func (q *Queue) FetchMessages(ctx context.Context, count int) ([]*db.MessageJob, error) {
	recent, err := q.store.RecentMessageJobs(ctx, count)
	if err != nil {
		return nil, err
	}

	// RecentMessageJobs hands back newest first
	for i, j := 0, len(recent)-1; i < j; i, j = i+1, j-1 {
		recent[i], recent[j] = recent[j], recent[i]
	}
	return recent, nil
}

// RemoveJob deletes the message with the given id. Removing a message that
// is already gone is not an error.
func (q *Queue) RemoveJob(ctx context.Context, id int64) error {
	err := q.store.DeleteMessageJob(ctx, id)
	if errors.Is(err, db.ErrMessageNotFound) {
		return nil
	}
	return err
}
