// Package txqueue tracks broadcast transactions until their receipts settle
// them, and turns every settlement into a user-facing message.
package txqueue

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/bitnation/pangea-core/internal/metrics"
	"github.com/bitnation/pangea-core/pkg/apperrors"
	"github.com/bitnation/pangea-core/pkg/db"
	"github.com/bitnation/pangea-core/pkg/ethereum"
	"github.com/bitnation/pangea-core/pkg/events"
	"github.com/bitnation/pangea-core/pkg/msgqueue"
)

// DefaultProcessingInterval is how often the queue sweeps its pending jobs
// when no interval is configured.
const DefaultProcessingInterval = 60 * time.Second

var txHashPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{64}$`)

// Store defines the persistence operations the queue needs
type Store interface {
	CreateTransactionJob(ctx context.Context, job *db.TransactionJob) error
	CreateTransactionJobForNation(ctx context.Context, job *db.TransactionJob, nationID int64) error
	PendingTransactionJobs(ctx context.Context) ([]*db.TransactionJob, error)
	ResolveTransactionJob(ctx context.Context, jobID int64, status db.JobStatus) error
	NationByJobID(ctx context.Context, jobID int64) (*db.Nation, error)
}

// ChainReader defines the chain lookups the queue needs
type ChainReader interface {
	TransactionReceipt(ctx context.Context, txHash string) (*ethereum.Receipt, error)
	TransactionInfo(ctx context.Context, txHash string) (*ethereum.TransactionInfo, error)
}

// MessageSink receives the messages settled jobs produce
type MessageSink interface {
	AddJob(ctx context.Context, msg *msgqueue.Msg) (*db.MessageJob, error)
}

// JobFactory validates and builds a pending transaction job. It performs no
// I/O; the job is not persisted until SaveJob or SaveJobForNation.
func JobFactory(txHash string, jobType db.JobType) (*db.TransactionJob, error) {
	if !db.ValidJobType(jobType) {
		return nil, apperrors.InvalidJobType(string(jobType))
	}
	if !txHashPattern.MatchString(txHash) {
		return nil, apperrors.InvalidTxHash(txHash)
	}

	return &db.TransactionJob{
		TxHash: txHash,
		Status: db.JobStatusPending,
		Type:   jobType,
	}, nil
}

// Queue is the durable transaction queue and its processor
type Queue struct {
	store    Store
	chain    ChainReader
	messages MessageSink
	bus      *events.Bus
	logger   *zap.Logger
	interval time.Duration

	mu      sync.Mutex
	active  []*db.TransactionJob
	started bool
	stopped bool

	stopCh chan struct{}
	wg     sync.WaitGroup
}

// NewQueue creates a transaction queue. An interval of zero falls back to
// DefaultProcessingInterval.
func NewQueue(
	store Store,
	chain ChainReader,
	messages MessageSink,
	bus *events.Bus,
	interval time.Duration,
	logger *zap.Logger,
) *Queue {
	if interval <= 0 {
		interval = DefaultProcessingInterval
	}
	return &Queue{
		store:    store,
		chain:    chain,
		messages: messages,
		bus:      bus,
		logger:   logger,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// SaveJob persists the job and adds it to the working set
func (q *Queue) SaveJob(ctx context.Context, job *db.TransactionJob) (*db.TransactionJob, error) {
	if err := q.store.CreateTransactionJob(ctx, job); err != nil {
		return nil, apperrors.WriteFailed(err)
	}

	q.track(job)
	return job, nil
}

// SaveJobForNation persists the job, links it to the nation and locks the
// nation against further submissions, all atomically
func (q *Queue) SaveJobForNation(ctx context.Context, job *db.TransactionJob, nationID int64) (*db.TransactionJob, error) {
	err := q.store.CreateTransactionJobForNation(ctx, job, nationID)
	switch {
	case err == nil:
	case errors.Is(err, db.ErrNationNotFound):
		return nil, apperrors.NationNotFound(nationID)
	case errors.Is(err, db.ErrNationLocked):
		return nil, apperrors.AlreadySubmitted(nationID)
	default:
		return nil, apperrors.WriteFailed(err)
	}

	q.track(job)
	return job, nil
}

// Pending returns a snapshot of the jobs still waiting for a receipt
func (q *Queue) Pending() []*db.TransactionJob {
	q.mu.Lock()
	defer q.mu.Unlock()
	jobs := make([]*db.TransactionJob, len(q.active))
	copy(jobs, q.active)
	return jobs
}

func (q *Queue) track(job *db.TransactionJob) {
	q.mu.Lock()
	q.active = append(q.active, job)
	count := len(q.active)
	q.mu.Unlock()

	q.logger.Info("transaction job queued",
		zap.Int64("id", job.ID),
		zap.String("type", string(job.Type)),
		zap.String("tx_hash", job.TxHash))
	metrics.PendingJobs.Set(float64(count))
	q.bus.Emit(events.TopicTransactionJobAdded, job)
}

// Start loads every pending job from the store and begins the processing
// loop: one cycle immediately, then one per interval. Calling Start on a
// running queue is a no-op.
func (q *Queue) Start(ctx context.Context) error {
	q.mu.Lock()
	if q.started {
		q.mu.Unlock()
		return nil
	}

	pending, err := q.store.PendingTransactionJobs(ctx)
	if err != nil {
		q.mu.Unlock()
		return apperrors.WriteFailed(err)
	}
	q.active = pending
	q.started = true
	q.mu.Unlock()

	q.logger.Info("transaction queue started",
		zap.Int("pending_jobs", len(pending)),
		zap.Duration("interval", q.interval))
	metrics.PendingJobs.Set(float64(len(pending)))

	q.wg.Add(1)
	go q.run(ctx)
	return nil
}

// Stop halts the processing loop and waits for an in-flight cycle to finish
func (q *Queue) Stop() {
	q.mu.Lock()
	if !q.started || q.stopped {
		q.mu.Unlock()
		return
	}
	q.stopped = true
	q.mu.Unlock()

	close(q.stopCh)
	q.wg.Wait()
	q.logger.Info("transaction queue stopped")
}

func (q *Queue) run(ctx context.Context) {
	defer q.wg.Done()

	q.processCycle(ctx)

	ticker := time.NewTicker(q.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-q.stopCh:
			return
		case <-ticker.C:
			q.processCycle(ctx)
		}
	}
}

// processCycle visits every active job in order. A job leaves the working
// set only once its receipt settled it; fetch errors and unmined
// transactions leave it in place for the next cycle.
func (q *Queue) processCycle(ctx context.Context) {
	started := time.Now()

	q.mu.Lock()
	jobs := make([]*db.TransactionJob, len(q.active))
	copy(jobs, q.active)
	q.mu.Unlock()

	settledIDs := make(map[int64]bool)
	for _, job := range jobs {
		settled, err := q.processJob(ctx, job)
		if err != nil {
			q.logger.Warn("job processing failed, will retry",
				zap.Int64("id", job.ID),
				zap.String("tx_hash", job.TxHash),
				zap.Error(err))
			metrics.JobProcessingErrors.WithLabelValues(string(job.Type)).Inc()
		}
		if settled {
			settledIDs[job.ID] = true
		}
	}

	// Drop only the jobs this cycle settled. Jobs saved while the sweep ran
	// were appended to q.active concurrently and must stay in the working set.
	q.mu.Lock()
	kept := q.active[:0]
	for _, job := range q.active {
		if !settledIDs[job.ID] {
			kept = append(kept, job)
		}
	}
	q.active = kept
	pending := len(kept)
	q.mu.Unlock()

	metrics.PendingJobs.Set(float64(pending))
	metrics.CyclesTotal.Inc()
	metrics.CycleDuration.Observe(time.Since(started).Seconds())
	q.bus.Emit(events.TopicTransactionCycleFinished, pending)
}

// processJob checks one job against the chain. It reports whether the job
// settled and left the working set.
func (q *Queue) processJob(ctx context.Context, job *db.TransactionJob) (bool, error) {
	receipt, err := q.chain.TransactionReceipt(ctx, job.TxHash)
	if err != nil {
		return false, err
	}
	if receipt == nil {
		// not mined yet
		return false, nil
	}

	msg, err := q.dispatch(ctx, job, receipt)
	if err != nil {
		return false, err
	}

	// The settlement message must land before the job leaves the working
	// set. Resolving a job is idempotent, so keeping the job around and
	// re-dispatching on the next cycle retries the enqueue without side
	// effects.
	if msg != nil {
		if _, err := q.messages.AddJob(ctx, msg); err != nil {
			return false, fmt.Errorf("queueing settlement message: %w", err)
		}
	}

	outcome := "failed"
	if receipt.Succeeded() {
		outcome = "success"
	}
	metrics.JobsProcessedTotal.WithLabelValues(string(job.Type), outcome).Inc()
	q.logger.Info("transaction job settled",
		zap.Int64("id", job.ID),
		zap.String("type", string(job.Type)),
		zap.String("outcome", outcome))

	return true, nil
}
