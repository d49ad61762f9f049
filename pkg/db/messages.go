package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/bitnation/pangea-core/pkg/db/dao"
)

// ErrMessageNotFound is returned when a message job id does not exist.
var ErrMessageNotFound = errors.New("message job not found")

// toMessageJobDao converts a MessageJob to its table mapping.
func toMessageJobDao(m *MessageJob) *dao.MessageJobDao {
	d := &dao.MessageJobDao{
		ID:        m.ID,
		Msg:       m.Msg,
		Params:    m.Params,
		Interpret: m.Interpret,
		Display:   m.Display,
		Version:   m.Version,
		CreatedAt: m.CreatedAt,
	}
	if m.Heading != "" {
		d.Heading = &m.Heading
	}
	return d
}

// toMessageJob converts a MessageJobDao to MessageJob.
func toMessageJob(d *dao.MessageJobDao) *MessageJob {
	m := &MessageJob{
		ID:        d.ID,
		Msg:       d.Msg,
		Params:    d.Params,
		Interpret: d.Interpret,
		Display:   d.Display,
		Version:   d.Version,
		CreatedAt: d.CreatedAt,
	}
	if d.Heading != nil {
		m.Heading = *d.Heading
	}
	return m
}

// CreateMessageJob persists a new message, assigning it the next id. The
// creation time is stamped here so the returned message matches the stored
// row.
func (s *Store) CreateMessageJob(ctx context.Context, m *MessageJob) error {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		var maxID sql.NullInt64
		err := tx.NewSelect().
			Model((*dao.MessageJobDao)(nil)).
			ColumnExpr("MAX(id)").
			Scan(ctx, &maxID)
		if err != nil {
			return fmt.Errorf("failed to allocate message id: %w", err)
		}

		m.ID = maxID.Int64 + 1

		d := toMessageJobDao(m)
		_, err = tx.NewInsert().
			Model(d).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create message job: %w", err)
		}
		return nil
	})
}

// RecentMessageJobs returns up to count messages, newest first.
func (s *Store) RecentMessageJobs(ctx context.Context, count int) ([]*MessageJob, error) {
	var daos []dao.MessageJobDao
	err := s.db.NewSelect().
		Model(&daos).
		Order("id DESC").
		Limit(count).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list message jobs: %w", err)
	}

	msgs := make([]*MessageJob, len(daos))
	for i := range daos {
		msgs[i] = toMessageJob(&daos[i])
	}
	return msgs, nil
}

// DeleteMessageJob removes the message with the given id.
func (s *Store) DeleteMessageJob(ctx context.Context, id int64) error {
	res, err := s.db.NewDelete().
		Model((*dao.MessageJobDao)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete message job: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete message job: %w", err)
	}
	if affected == 0 {
		return ErrMessageNotFound
	}
	return nil
}
