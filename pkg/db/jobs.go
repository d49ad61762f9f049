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

var (
	// ErrNationNotFound is returned when a referenced nation row does not exist.
	ErrNationNotFound = errors.New("nation not found")
	// ErrNationLocked is returned when a nation already has an in-flight
	// transaction and cannot be mutated.
	ErrNationLocked = errors.New("nation locked by pending transaction")
)

// toTransactionJobDao converts a TransactionJob to its table mapping.
func toTransactionJobDao(job *TransactionJob) *dao.TransactionJobDao {
	return &dao.TransactionJobDao{
		ID:        job.ID,
		TxHash:    job.TxHash,
		Status:    int(job.Status),
		Type:      string(job.Type),
		CreatedAt: job.CreatedAt,
	}
}

// toTransactionJob converts a TransactionJobDao to TransactionJob.
func toTransactionJob(d *dao.TransactionJobDao) *TransactionJob {
	return &TransactionJob{
		ID:        d.ID,
		TxHash:    d.TxHash,
		Status:    JobStatus(d.Status),
		Type:      JobType(d.Type),
		CreatedAt: d.CreatedAt,
	}
}

// CreateTransactionJob persists a new job and fills in its assigned id. The
// creation time is stamped here so the returned job matches the stored row.
func (s *Store) CreateTransactionJob(ctx context.Context, job *TransactionJob) error {
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now().UTC()
	}
	d := toTransactionJobDao(job)

	_, err := s.db.NewInsert().
		Model(d).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create transaction job: %w", err)
	}

	job.ID = d.ID
	return nil
}

// CreateTransactionJobForNation persists a new job and atomically links it to
// the nation, locking the nation against further state changes until the job
// resolves. Fails with ErrNationLocked if the nation already has an in-flight
// transaction.
func (s *Store) CreateTransactionJobForNation(ctx context.Context, job *TransactionJob, nationID int64) error {
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now().UTC()
	}
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		d := toTransactionJobDao(job)

		_, err := tx.NewInsert().
			Model(d).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create transaction job: %w", err)
		}

		res, err := tx.NewUpdate().
			Model((*dao.NationDao)(nil)).
			Set("tx_id = ?", d.ID).
			Set("state_mutate_allowed = ?", false).
			Where("id = ?", nationID).
			Where("state_mutate_allowed = ?", true).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to link transaction job to nation: %w", err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to link transaction job to nation: %w", err)
		}
		if affected == 0 {
			exists, err := tx.NewSelect().
				Model((*dao.NationDao)(nil)).
				Where("id = ?", nationID).
				Exists(ctx)
			if err != nil {
				return fmt.Errorf("failed to link transaction job to nation: %w", err)
			}
			if !exists {
				return ErrNationNotFound
			}
			return ErrNationLocked
		}

		job.ID = d.ID
		return nil
	})
}

// PendingTransactionJobs returns every job still waiting for a receipt,
// oldest first.
func (s *Store) PendingTransactionJobs(ctx context.Context) ([]*TransactionJob, error) {
	var daos []dao.TransactionJobDao
	err := s.db.NewSelect().
		Model(&daos).
		Where("status = ?", int(JobStatusPending)).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending transaction jobs: %w", err)
	}

	jobs := make([]*TransactionJob, len(daos))
	for i := range daos {
		jobs[i] = toTransactionJob(&daos[i])
	}
	return jobs, nil
}

// TransactionJobByHash returns the job tracking the given transaction hash,
// or nil if no job tracks it.
func (s *Store) TransactionJobByHash(ctx context.Context, txHash string) (*TransactionJob, error) {
	d := new(dao.TransactionJobDao)
	err := s.db.NewSelect().
		Model(d).
		Where("tx_hash = ?", txHash).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction job: %w", err)
	}
	return toTransactionJob(d), nil
}

// ResolveTransactionJob moves a pending job to its terminal status and
// releases the lock on any nation linked to it. Jobs that already resolved
// are left untouched.
func (s *Store) ResolveTransactionJob(ctx context.Context, jobID int64, status JobStatus) error {
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewUpdate().
			Model((*dao.TransactionJobDao)(nil)).
			Set("status = ?", int(status)).
			Where("id = ?", jobID).
			Where("status = ?", int(JobStatusPending)).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to resolve transaction job: %w", err)
		}

		_, err = tx.NewUpdate().
			Model((*dao.NationDao)(nil)).
			Set("state_mutate_allowed = ?", true).
			Where("tx_id = ?", jobID).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to release nation lock: %w", err)
		}
		return nil
	})
}
