package nation

import (
	"context"

	"github.com/bitnation/pangea-core/pkg/db"
	"github.com/bitnation/pangea-core/pkg/ethereum"
)

// MockStore is a mock implementation of Store
type MockStore struct {
	CreateNationFunc          func(ctx context.Context, n *db.Nation) error
	NationByIDFunc            func(ctx context.Context, id int64) (*db.Nation, error)
	NationsFunc               func(ctx context.Context) ([]*db.Nation, error)
	SaveNationFunc            func(ctx context.Context, n *db.Nation) error
	DeleteNationFunc          func(ctx context.Context, id int64) error
	NationByTxHashAndTypeFunc func(ctx context.Context, txHash string, jobType db.JobType) (*db.Nation, error)
	NationByContractIDFunc    func(ctx context.Context, contractID int64) (*db.Nation, error)
	SetNationContractIDFunc   func(ctx context.Context, id, contractID int64) error
	UpdateNationChainDataFunc func(ctx context.Context, id, citizens int64, joined bool) error
}

func (m *MockStore) CreateNation(ctx context.Context, n *db.Nation) error {
	if m.CreateNationFunc != nil {
		return m.CreateNationFunc(ctx, n)
	}
	return nil
}

func (m *MockStore) NationByID(ctx context.Context, id int64) (*db.Nation, error) {
	if m.NationByIDFunc != nil {
		return m.NationByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockStore) Nations(ctx context.Context) ([]*db.Nation, error) {
	if m.NationsFunc != nil {
		return m.NationsFunc(ctx)
	}
	return nil, nil
}

func (m *MockStore) SaveNation(ctx context.Context, n *db.Nation) error {
	if m.SaveNationFunc != nil {
		return m.SaveNationFunc(ctx, n)
	}
	return nil
}

func (m *MockStore) DeleteNation(ctx context.Context, id int64) error {
	if m.DeleteNationFunc != nil {
		return m.DeleteNationFunc(ctx, id)
	}
	return nil
}

func (m *MockStore) NationByTxHashAndType(ctx context.Context, txHash string, jobType db.JobType) (*db.Nation, error) {
	if m.NationByTxHashAndTypeFunc != nil {
		return m.NationByTxHashAndTypeFunc(ctx, txHash, jobType)
	}
	return nil, nil
}

func (m *MockStore) NationByContractID(ctx context.Context, contractID int64) (*db.Nation, error) {
	if m.NationByContractIDFunc != nil {
		return m.NationByContractIDFunc(ctx, contractID)
	}
	return nil, nil
}

func (m *MockStore) SetNationContractID(ctx context.Context, id, contractID int64) error {
	if m.SetNationContractIDFunc != nil {
		return m.SetNationContractIDFunc(ctx, id, contractID)
	}
	return nil
}

func (m *MockStore) UpdateNationChainData(ctx context.Context, id, citizens int64, joined bool) error {
	if m.UpdateNationChainDataFunc != nil {
		return m.UpdateNationChainDataFunc(ctx, id, citizens, joined)
	}
	return nil
}

// MockChain is a mock implementation of ChainClient
type MockChain struct {
	CreateNationFunc        func(ctx context.Context, nationJSON string) (string, error)
	JoinNationFunc          func(ctx context.Context, contractID int64) (string, error)
	LeaveNationFunc         func(ctx context.Context, contractID int64) (string, error)
	GetNumCitizensFunc      func(ctx context.Context, contractID int64) (int64, error)
	GetJoinedNationsFunc    func(ctx context.Context) ([]int64, error)
	GetNationMetaDataFunc   func(ctx context.Context, contractID int64) (string, error)
	FilterNationCreatedFunc func(ctx context.Context, fromBlock, toBlock uint64) ([]*ethereum.NationCreatedEvent, error)
}

func (m *MockChain) CreateNation(ctx context.Context, nationJSON string) (string, error) {
	if m.CreateNationFunc != nil {
		return m.CreateNationFunc(ctx, nationJSON)
	}
	return "", nil
}

func (m *MockChain) JoinNation(ctx context.Context, contractID int64) (string, error) {
	if m.JoinNationFunc != nil {
		return m.JoinNationFunc(ctx, contractID)
	}
	return "", nil
}

func (m *MockChain) LeaveNation(ctx context.Context, contractID int64) (string, error) {
	if m.LeaveNationFunc != nil {
		return m.LeaveNationFunc(ctx, contractID)
	}
	return "", nil
}

func (m *MockChain) GetNumCitizens(ctx context.Context, contractID int64) (int64, error) {
	if m.GetNumCitizensFunc != nil {
		return m.GetNumCitizensFunc(ctx, contractID)
	}
	return 0, nil
}

func (m *MockChain) GetJoinedNations(ctx context.Context) ([]int64, error) {
	if m.GetJoinedNationsFunc != nil {
		return m.GetJoinedNationsFunc(ctx)
	}
	return nil, nil
}

func (m *MockChain) GetNationMetaData(ctx context.Context, contractID int64) (string, error) {
	if m.GetNationMetaDataFunc != nil {
		return m.GetNationMetaDataFunc(ctx, contractID)
	}
	return "", nil
}

func (m *MockChain) FilterNationCreated(ctx context.Context, fromBlock, toBlock uint64) ([]*ethereum.NationCreatedEvent, error) {
	if m.FilterNationCreatedFunc != nil {
		return m.FilterNationCreatedFunc(ctx, fromBlock, toBlock)
	}
	return nil, nil
}

// MockTxQueue is a mock implementation of TransactionQueue
type MockTxQueue struct {
	SaveJobForNationFunc func(ctx context.Context, job *db.TransactionJob, nationID int64) (*db.TransactionJob, error)

	Saved []*db.TransactionJob
}

func (m *MockTxQueue) SaveJobForNation(ctx context.Context, job *db.TransactionJob, nationID int64) (*db.TransactionJob, error) {
	m.Saved = append(m.Saved, job)
	if m.SaveJobForNationFunc != nil {
		return m.SaveJobForNationFunc(ctx, job, nationID)
	}
	job.ID = int64(len(m.Saved))
	return job, nil
}
