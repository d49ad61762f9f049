package txqueue

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bitnation/pangea-core/pkg/apperrors"
	"github.com/bitnation/pangea-core/pkg/db"
	"github.com/bitnation/pangea-core/pkg/ethereum"
	"github.com/bitnation/pangea-core/pkg/events"
	"github.com/bitnation/pangea-core/pkg/msgqueue"
)

func testHash(b byte) string {
	return fmt.Sprintf("0x%064x", b)
}

func newTestQueue(store Store, chain ChainReader, messages MessageSink) (*Queue, *events.Bus) {
	bus := events.NewBus()
	return NewQueue(store, chain, messages, bus, time.Minute, zap.NewNop()), bus
}

func TestJobFactory(t *testing.T) {
	job, err := JobFactory(testHash(0x01), db.JobTypeNationCreate)
	require.NoError(t, err)
	require.Equal(t, db.JobStatusPending, job.Status)
	require.Equal(t, db.JobTypeNationCreate, job.Type)
	require.Zero(t, job.ID)

	_, err = JobFactory(testHash(0x01), db.JobType("NATION_DESTROY"))
	require.Error(t, err)
	require.Equal(t, apperrors.KeyInvalidJobType, apperrors.TransKey(err))

	for _, bad := range []string{
		"",
		"0x123",
		"1234567890123456789012345678901234567890123456789012345678901234",
		"0xzz34567890123456789012345678901234567890123456789012345678901234",
		testHash(0x01) + "ff",
	} {
		_, err = JobFactory(bad, db.JobTypeEthSend)
		require.Error(t, err, "hash %q should be rejected", bad)
		require.Equal(t, apperrors.KeyInvalidTxHash, apperrors.TransKey(err))
	}
}

func TestQueue_SaveJob(t *testing.T) {
	store := &MockStore{
		CreateTransactionJobFunc: func(ctx context.Context, job *db.TransactionJob) error {
			job.ID = 11
			return nil
		},
	}
	q, bus := newTestQueue(store, &MockChain{}, &MockMessages{})
	added, cancel := bus.Subscribe(events.TopicTransactionJobAdded)
	defer cancel()

	job, _ := JobFactory(testHash(0x01), db.JobTypeEthSend)
	saved, err := q.SaveJob(context.Background(), job)
	require.NoError(t, err)
	require.Equal(t, int64(11), saved.ID)

	select {
	case got := <-added:
		require.Same(t, saved, got.(*db.TransactionJob))
	case <-time.After(time.Second):
		t.Fatal("expected a job-added event")
	}
}

func TestQueue_SaveJobStoreFailure(t *testing.T) {
	store := &MockStore{
		CreateTransactionJobFunc: func(ctx context.Context, job *db.TransactionJob) error {
			return errors.New("disk full")
		},
	}
	q, _ := newTestQueue(store, &MockChain{}, &MockMessages{})

	job, _ := JobFactory(testHash(0x01), db.JobTypeEthSend)
	_, err := q.SaveJob(context.Background(), job)
	require.Error(t, err)
	require.Equal(t, apperrors.KeyWriteFailed, apperrors.TransKey(err))
}

func TestQueue_SaveJobForNationErrorMapping(t *testing.T) {
	tests := []struct {
		name     string
		storeErr error
		wantKey  string
	}{
		{"missing nation", db.ErrNationNotFound, apperrors.KeyNationNotFound},
		{"locked nation", db.ErrNationLocked, apperrors.KeyAlreadySubmitted},
		{"other failure", errors.New("disk full"), apperrors.KeyWriteFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := &MockStore{
				CreateTransactionJobForNationFunc: func(ctx context.Context, job *db.TransactionJob, nationID int64) error {
					return tt.storeErr
				},
			}
			q, _ := newTestQueue(store, &MockChain{}, &MockMessages{})

			job, _ := JobFactory(testHash(0x01), db.JobTypeNationCreate)
			_, err := q.SaveJobForNation(context.Background(), job, 1)
			require.Error(t, err)
			require.Equal(t, tt.wantKey, apperrors.TransKey(err))
		})
	}
}

func TestQueue_StartLoadsPendingAndIsIdempotent(t *testing.T) {
	loads := 0
	store := &MockStore{
		PendingTransactionJobsFunc: func(ctx context.Context) ([]*db.TransactionJob, error) {
			loads++
			return []*db.TransactionJob{
				{ID: 1, TxHash: testHash(0x01), Status: db.JobStatusPending, Type: db.JobTypeEthSend},
			}, nil
		},
	}
	q, _ := newTestQueue(store, &MockChain{}, &MockMessages{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	require.NoError(t, q.Start(ctx))
	require.NoError(t, q.Start(ctx))
	require.Equal(t, 1, loads)
	q.Stop()
	q.Stop()
}

func TestQueue_ProcessCycleKeepsUnminedJobs(t *testing.T) {
	chain := &MockChain{
		TransactionReceiptFunc: func(ctx context.Context, txHash string) (*ethereum.Receipt, error) {
			return nil, nil
		},
	}
	q, _ := newTestQueue(&MockStore{}, chain, &MockMessages{})
	q.active = []*db.TransactionJob{
		{ID: 1, TxHash: testHash(0x01), Status: db.JobStatusPending, Type: db.JobTypeEthSend},
	}

	q.processCycle(context.Background())
	require.Len(t, q.active, 1)
}

func TestQueue_ProcessCycleRetriesOnFetchError(t *testing.T) {
	calls := 0
	chain := &MockChain{
		TransactionReceiptFunc: func(ctx context.Context, txHash string) (*ethereum.Receipt, error) {
			calls++
			return nil, errors.New("rpc down")
		},
	}
	q, _ := newTestQueue(&MockStore{}, chain, &MockMessages{})
	q.active = []*db.TransactionJob{
		{ID: 1, TxHash: testHash(0x01), Status: db.JobStatusPending, Type: db.JobTypeEthSend},
	}

	q.processCycle(context.Background())
	q.processCycle(context.Background())
	require.Len(t, q.active, 1)
	require.Equal(t, 2, calls)
}

func TestQueue_ProcessCycleSettlesAndEmits(t *testing.T) {
	resolved := make(map[int64]db.JobStatus)
	store := &MockStore{
		ResolveTransactionJobFunc: func(ctx context.Context, jobID int64, status db.JobStatus) error {
			resolved[jobID] = status
			return nil
		},
	}
	chain := &MockChain{
		TransactionReceiptFunc: func(ctx context.Context, txHash string) (*ethereum.Receipt, error) {
			return &ethereum.Receipt{TxHash: txHash, Status: ethereum.ReceiptStatusSuccessful}, nil
		},
		TransactionInfoFunc: func(ctx context.Context, txHash string) (*ethereum.TransactionInfo, error) {
			return &ethereum.TransactionInfo{TxHash: txHash, From: "0xaa", To: "0xbb"}, nil
		},
	}
	messages := &MockMessages{}
	q, bus := newTestQueue(store, chain, messages)
	finished, cancel := bus.Subscribe(events.TopicTransactionCycleFinished)
	defer cancel()

	q.active = []*db.TransactionJob{
		{ID: 1, TxHash: testHash(0x01), Status: db.JobStatusPending, Type: db.JobTypeEthSend},
	}
	q.processCycle(context.Background())

	require.Empty(t, q.active)
	require.Equal(t, db.JobStatusSuccess, resolved[1])
	require.Len(t, messages.Added, 1)

	select {
	case remaining := <-finished:
		require.Equal(t, 0, remaining.(int))
	case <-time.After(time.Second):
		t.Fatal("expected a cycle-finished event")
	}
}

func TestQueue_ProcessCycleKeepsJobsSavedMidCycle(t *testing.T) {
	store := &MockStore{
		CreateTransactionJobFunc: func(ctx context.Context, job *db.TransactionJob) error {
			job.ID = 2
			return nil
		},
	}
	q, _ := newTestQueue(store, &MockChain{}, &MockMessages{})

	// a job saved while the sweep is running, as an API handler would
	chain := &MockChain{
		TransactionReceiptFunc: func(ctx context.Context, txHash string) (*ethereum.Receipt, error) {
			late, err := JobFactory(testHash(0x02), db.JobTypeEthSend)
			require.NoError(t, err)
			_, err = q.SaveJob(ctx, late)
			require.NoError(t, err)
			return nil, nil
		},
	}
	q.chain = chain

	q.active = []*db.TransactionJob{
		{ID: 1, TxHash: testHash(0x01), Status: db.JobStatusPending, Type: db.JobTypeEthSend},
	}
	q.processCycle(context.Background())

	pending := q.Pending()
	require.Len(t, pending, 2)
	ids := []int64{pending[0].ID, pending[1].ID}
	require.ElementsMatch(t, []int64{1, 2}, ids)
}

func TestQueue_ProcessCycleRetriesMessageDelivery(t *testing.T) {
	store := &MockStore{
		ResolveTransactionJobFunc: func(ctx context.Context, jobID int64, status db.JobStatus) error {
			return nil
		},
	}
	chain := &MockChain{
		TransactionReceiptFunc: func(ctx context.Context, txHash string) (*ethereum.Receipt, error) {
			return &ethereum.Receipt{TxHash: txHash, Status: ethereum.ReceiptStatusSuccessful}, nil
		},
		TransactionInfoFunc: func(ctx context.Context, txHash string) (*ethereum.TransactionInfo, error) {
			return &ethereum.TransactionInfo{TxHash: txHash, From: "0xaa", To: "0xbb"}, nil
		},
	}
	attempts := 0
	messages := &MockMessages{
		AddJobFunc: func(ctx context.Context, msg *msgqueue.Msg) (*db.MessageJob, error) {
			attempts++
			if attempts == 1 {
				return nil, errors.New("disk full")
			}
			return &db.MessageJob{ID: 1}, nil
		},
	}
	q, _ := newTestQueue(store, chain, messages)
	q.active = []*db.TransactionJob{
		{ID: 1, TxHash: testHash(0x01), Status: db.JobStatusPending, Type: db.JobTypeEthSend},
	}

	// first cycle fails to queue the settlement message, job stays put
	q.processCycle(context.Background())
	require.Len(t, q.Pending(), 1)

	// next cycle re-dispatches and delivers it
	q.processCycle(context.Background())
	require.Empty(t, q.Pending())
	require.Equal(t, 2, attempts)
	require.Equal(t, "transaction.eth_send.succeed", messages.Added[len(messages.Added)-1].Key)
}

func TestQueue_ProcessCycleKeepsJobWhenHandlerFails(t *testing.T) {
	store := &MockStore{
		NationByJobIDFunc: func(ctx context.Context, jobID int64) (*db.Nation, error) {
			// job claims a nation link that does not exist
			return nil, nil
		},
	}
	chain := &MockChain{
		TransactionReceiptFunc: func(ctx context.Context, txHash string) (*ethereum.Receipt, error) {
			return &ethereum.Receipt{TxHash: txHash, Status: ethereum.ReceiptStatusSuccessful}, nil
		},
	}
	q, _ := newTestQueue(store, chain, &MockMessages{})
	q.active = []*db.TransactionJob{
		{ID: 1, TxHash: testHash(0x01), Status: db.JobStatusPending, Type: db.JobTypeNationJoin},
	}

	q.processCycle(context.Background())
	require.Len(t, q.active, 1)
}
