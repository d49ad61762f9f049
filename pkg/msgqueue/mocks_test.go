package msgqueue

import (
	"context"

	"github.com/bitnation/pangea-core/pkg/db"
)

// MockStore implements Store with overridable functions.
type MockStore struct {
	CreateMessageJobFunc  func(ctx context.Context, m *db.MessageJob) error
	RecentMessageJobsFunc func(ctx context.Context, count int) ([]*db.MessageJob, error)
	DeleteMessageJobFunc  func(ctx context.Context, id int64) error
}

func (m *MockStore) CreateMessageJob(ctx context.Context, rec *db.MessageJob) error {
	if m.CreateMessageJobFunc != nil {
		return m.CreateMessageJobFunc(ctx, rec)
	}
	return nil
}

func (m *MockStore) RecentMessageJobs(ctx context.Context, count int) ([]*db.MessageJob, error) {
	if m.RecentMessageJobsFunc != nil {
		return m.RecentMessageJobsFunc(ctx, count)
	}
	return nil, nil
}

func (m *MockStore) DeleteMessageJob(ctx context.Context, id int64) error {
	if m.DeleteMessageJobFunc != nil {
		return m.DeleteMessageJobFunc(ctx, id)
	}
	return nil
}
