package nation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bitnation/pangea-core/pkg/db"
	"github.com/bitnation/pangea-core/pkg/ethereum"
)

func TestIndex_BackfillsContractID(t *testing.T) {
	var backfilledID, backfilledContract int64
	store := &MockStore{
		NationByTxHashAndTypeFunc: func(ctx context.Context, txHash string, jobType db.JobType) (*db.Nation, error) {
			require.Equal(t, testHash(0xaa), txHash)
			require.Equal(t, db.JobTypeNationCreate, jobType)
			return &db.Nation{ID: 3, IDInSmartContract: -1}, nil
		},
		SetNationContractIDFunc: func(ctx context.Context, id, contractID int64) error {
			backfilledID = id
			backfilledContract = contractID
			return nil
		},
	}
	chain := &MockChain{
		FilterNationCreatedFunc: func(ctx context.Context, fromBlock, toBlock uint64) ([]*ethereum.NationCreatedEvent, error) {
			return []*ethereum.NationCreatedEvent{
				{NationID: 7, Founder: "0xdead", BlockNumber: 12, TxHash: testHash(0xaa)},
			}, nil
		},
	}
	s := newTestService(store, chain, &MockTxQueue{})

	require.NoError(t, s.Index(context.Background()))
	require.Equal(t, int64(3), backfilledID)
	require.Equal(t, int64(7), backfilledContract)
}

func TestIndex_AdoptsUnknownNationFromMetadata(t *testing.T) {
	var adopted *db.Nation
	store := &MockStore{
		CreateNationFunc: func(ctx context.Context, n *db.Nation) error {
			n.ID = 1
			adopted = n
			return nil
		},
	}
	chain := &MockChain{
		FilterNationCreatedFunc: func(ctx context.Context, fromBlock, toBlock uint64) ([]*ethereum.NationCreatedEvent, error) {
			return []*ethereum.NationCreatedEvent{
				{NationID: 4, TxHash: testHash(0xbb)},
			}, nil
		},
		GetNationMetaDataFunc: func(ctx context.Context, contractID int64) (string, error) {
			require.Equal(t, int64(4), contractID)
			return `{"nationName":"Mare Liberum","nationDescription":"open seas","virtualNation":true}`, nil
		},
	}
	s := newTestService(store, chain, &MockTxQueue{})

	require.NoError(t, s.Index(context.Background()))
	require.NotNil(t, adopted)
	require.Equal(t, int64(4), adopted.IDInSmartContract)
	require.True(t, adopted.Created)
	require.Equal(t, "Mare Liberum", adopted.NationName)
	require.True(t, adopted.VirtualNation)
	require.True(t, adopted.StateMutateAllowed)
}

func TestIndex_SkipsKnownNations(t *testing.T) {
	created := false
	store := &MockStore{
		NationByContractIDFunc: func(ctx context.Context, contractID int64) (*db.Nation, error) {
			return &db.Nation{ID: 1, IDInSmartContract: contractID}, nil
		},
		CreateNationFunc: func(ctx context.Context, n *db.Nation) error {
			created = true
			return nil
		},
	}
	chain := &MockChain{
		FilterNationCreatedFunc: func(ctx context.Context, fromBlock, toBlock uint64) ([]*ethereum.NationCreatedEvent, error) {
			return []*ethereum.NationCreatedEvent{{NationID: 4, TxHash: testHash(0xcc)}}, nil
		},
	}
	s := newTestService(store, chain, &MockTxQueue{})

	require.NoError(t, s.Index(context.Background()))
	require.False(t, created)
}

func TestIndex_EventErrorDoesNotStopSweep(t *testing.T) {
	var adopted int
	store := &MockStore{
		CreateNationFunc: func(ctx context.Context, n *db.Nation) error {
			adopted++
			return nil
		},
	}
	chain := &MockChain{
		FilterNationCreatedFunc: func(ctx context.Context, fromBlock, toBlock uint64) ([]*ethereum.NationCreatedEvent, error) {
			return []*ethereum.NationCreatedEvent{
				{NationID: 1, TxHash: testHash(0x01)},
				{NationID: 2, TxHash: testHash(0x02)},
			}, nil
		},
		GetNationMetaDataFunc: func(ctx context.Context, contractID int64) (string, error) {
			if contractID == 1 {
				return "", errors.New("rpc timeout")
			}
			return `{"nationName":"Second","nationDescription":"d"}`, nil
		},
	}
	s := newTestService(store, chain, &MockTxQueue{})

	require.NoError(t, s.Index(context.Background()))
	require.Equal(t, 1, adopted)
}

func TestIndex_RefreshesChainData(t *testing.T) {
	type update struct {
		id       int64
		citizens int64
		joined   bool
	}
	var updates []update
	store := &MockStore{
		NationsFunc: func(ctx context.Context) ([]*db.Nation, error) {
			return []*db.Nation{
				{ID: 1, IDInSmartContract: 10},
				{ID: 2, IDInSmartContract: -1}, // draft, never touches the chain
				{ID: 3, IDInSmartContract: 30},
			}, nil
		},
		UpdateNationChainDataFunc: func(ctx context.Context, id, citizens int64, joined bool) error {
			updates = append(updates, update{id, citizens, joined})
			return nil
		},
	}
	chain := &MockChain{
		GetJoinedNationsFunc: func(ctx context.Context) ([]int64, error) {
			return []int64{30}, nil
		},
		GetNumCitizensFunc: func(ctx context.Context, contractID int64) (int64, error) {
			return contractID * 2, nil
		},
	}
	s := newTestService(store, chain, &MockTxQueue{})

	require.NoError(t, s.Index(context.Background()))
	require.Equal(t, []update{{1, 20, false}, {3, 60, true}}, updates)
}

func TestIndex_CitizenCountFailureSkipsNation(t *testing.T) {
	var updated []int64
	store := &MockStore{
		NationsFunc: func(ctx context.Context) ([]*db.Nation, error) {
			return []*db.Nation{
				{ID: 1, IDInSmartContract: 10},
				{ID: 2, IDInSmartContract: 20},
			}, nil
		},
		UpdateNationChainDataFunc: func(ctx context.Context, id, citizens int64, joined bool) error {
			updated = append(updated, id)
			return nil
		},
	}
	chain := &MockChain{
		GetNumCitizensFunc: func(ctx context.Context, contractID int64) (int64, error) {
			if contractID == 10 {
				return 0, errors.New("rpc timeout")
			}
			return 5, nil
		},
	}
	s := newTestService(store, chain, &MockTxQueue{})

	require.NoError(t, s.Index(context.Background()))
	require.Equal(t, []int64{2}, updated)
}

func TestIndex_FilterFailure(t *testing.T) {
	chain := &MockChain{
		FilterNationCreatedFunc: func(ctx context.Context, fromBlock, toBlock uint64) ([]*ethereum.NationCreatedEvent, error) {
			return nil, errors.New("rpc down")
		},
	}
	s := newTestService(&MockStore{}, chain, &MockTxQueue{})

	require.Error(t, s.Index(context.Background()))
}
