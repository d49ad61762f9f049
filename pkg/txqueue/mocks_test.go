package txqueue

import (
	"context"

	"github.com/bitnation/pangea-core/pkg/db"
	"github.com/bitnation/pangea-core/pkg/ethereum"
	"github.com/bitnation/pangea-core/pkg/msgqueue"
)

// MockStore is a mock implementation of Store
type MockStore struct {
	CreateTransactionJobFunc          func(ctx context.Context, job *db.TransactionJob) error
	CreateTransactionJobForNationFunc func(ctx context.Context, job *db.TransactionJob, nationID int64) error
	PendingTransactionJobsFunc        func(ctx context.Context) ([]*db.TransactionJob, error)
	ResolveTransactionJobFunc         func(ctx context.Context, jobID int64, status db.JobStatus) error
	NationByJobIDFunc                 func(ctx context.Context, jobID int64) (*db.Nation, error)
}

func (m *MockStore) CreateTransactionJob(ctx context.Context, job *db.TransactionJob) error {
	if m.CreateTransactionJobFunc != nil {
		return m.CreateTransactionJobFunc(ctx, job)
	}
	return nil
}

func (m *MockStore) CreateTransactionJobForNation(ctx context.Context, job *db.TransactionJob, nationID int64) error {
	if m.CreateTransactionJobForNationFunc != nil {
		return m.CreateTransactionJobForNationFunc(ctx, job, nationID)
	}
	return nil
}

func (m *MockStore) PendingTransactionJobs(ctx context.Context) ([]*db.TransactionJob, error) {
	if m.PendingTransactionJobsFunc != nil {
		return m.PendingTransactionJobsFunc(ctx)
	}
	return nil, nil
}

func (m *MockStore) ResolveTransactionJob(ctx context.Context, jobID int64, status db.JobStatus) error {
	if m.ResolveTransactionJobFunc != nil {
		return m.ResolveTransactionJobFunc(ctx, jobID, status)
	}
	return nil
}

func (m *MockStore) NationByJobID(ctx context.Context, jobID int64) (*db.Nation, error) {
	if m.NationByJobIDFunc != nil {
		return m.NationByJobIDFunc(ctx, jobID)
	}
	return nil, nil
}

// MockChain is a mock implementation of ChainReader
type MockChain struct {
	TransactionReceiptFunc func(ctx context.Context, txHash string) (*ethereum.Receipt, error)
	TransactionInfoFunc    func(ctx context.Context, txHash string) (*ethereum.TransactionInfo, error)
}

func (m *MockChain) TransactionReceipt(ctx context.Context, txHash string) (*ethereum.Receipt, error) {
	if m.TransactionReceiptFunc != nil {
		return m.TransactionReceiptFunc(ctx, txHash)
	}
	return nil, nil
}

func (m *MockChain) TransactionInfo(ctx context.Context, txHash string) (*ethereum.TransactionInfo, error) {
	if m.TransactionInfoFunc != nil {
		return m.TransactionInfoFunc(ctx, txHash)
	}
	return nil, nil
}

// MockMessages is a mock implementation of MessageSink
type MockMessages struct {
	AddJobFunc func(ctx context.Context, msg *msgqueue.Msg) (*db.MessageJob, error)

	Added []*msgqueue.Msg
}

func (m *MockMessages) AddJob(ctx context.Context, msg *msgqueue.Msg) (*db.MessageJob, error) {
	m.Added = append(m.Added, msg)
	if m.AddJobFunc != nil {
		return m.AddJobFunc(ctx, msg)
	}
	return &db.MessageJob{}, nil
}
