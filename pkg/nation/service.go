// Package nation implements the draft, submit, join and leave lifecycle of
// nations. Every mutation that needs on-chain confirmation goes through the
// transaction queue; this service never resolves jobs itself.
package nation

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/bitnation/pangea-core/pkg/apperrors"
	"github.com/bitnation/pangea-core/pkg/db"
	"github.com/bitnation/pangea-core/pkg/ethereum"
	"github.com/bitnation/pangea-core/pkg/txqueue"
)

// Store defines the persistence operations the service needs
type Store interface {
	CreateNation(ctx context.Context, n *db.Nation) error
	NationByID(ctx context.Context, id int64) (*db.Nation, error)
	Nations(ctx context.Context) ([]*db.Nation, error)
	SaveNation(ctx context.Context, n *db.Nation) error
	DeleteNation(ctx context.Context, id int64) error
	NationByTxHashAndType(ctx context.Context, txHash string, jobType db.JobType) (*db.Nation, error)
	NationByContractID(ctx context.Context, contractID int64) (*db.Nation, error)
	SetNationContractID(ctx context.Context, id, contractID int64) error
	UpdateNationChainData(ctx context.Context, id, citizens int64, joined bool) error
}

// ChainClient defines the contract interactions the service needs
type ChainClient interface {
	CreateNation(ctx context.Context, nationJSON string) (string, error)
	JoinNation(ctx context.Context, contractID int64) (string, error)
	LeaveNation(ctx context.Context, contractID int64) (string, error)
	GetNumCitizens(ctx context.Context, contractID int64) (int64, error)
	GetJoinedNations(ctx context.Context) ([]int64, error)
	GetNationMetaData(ctx context.Context, contractID int64) (string, error)
	FilterNationCreated(ctx context.Context, fromBlock, toBlock uint64) ([]*ethereum.NationCreatedEvent, error)
}

// TransactionQueue attaches jobs to nations
type TransactionQueue interface {
	SaveJobForNation(ctx context.Context, job *db.TransactionJob, nationID int64) (*db.TransactionJob, error)
}

// DraftInput carries the user-editable fields of a nation
type DraftInput struct {
	NationName              string `json:"nationName" validate:"required,min=1,max=255"`
	NationDescription       string `json:"nationDescription" validate:"required"`
	Exists                  bool   `json:"exists"`
	VirtualNation           bool   `json:"virtualNation"`
	NationCode              string `json:"nationCode"`
	LawEnforcementMechanism string `json:"lawEnforcementMechanism"`
	Profit                  bool   `json:"profit"`
	NonCitizenUse           bool   `json:"nonCitizenUse"`
	DiplomaticRecognition   bool   `json:"diplomaticRecognition"`
	DecisionMakingProcess   string `json:"decisionMakingProcess"`
	GovernanceService       string `json:"governanceService"`
}

// Service coordinates nation state between the local store, the chain and
// the transaction queue
type Service struct {
	store     Store
	chain     ChainClient
	txQueue   TransactionQueue
	logger    *zap.Logger
	validate  *validator.Validate
	callDelay time.Duration
	fromBlock uint64
}

// NewService creates a nation service. callDelay spaces out chain calls
// during indexing; zero disables the delay.
func NewService(
	store Store,
	chain ChainClient,
	txQueue TransactionQueue,
	callDelay time.Duration,
	fromBlock uint64,
	logger *zap.Logger,
) *Service {
	return &Service{
		store:     store,
		chain:     chain,
		txQueue:   txQueue,
		logger:    logger,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		callDelay: callDelay,
		fromBlock: fromBlock,
	}
}

// SaveDraft persists a new local-only draft with the next sequential id
func (s *Service) SaveDraft(ctx context.Context, input *DraftInput) (*db.Nation, error) {
	if err := s.validate.Struct(input); err != nil {
		return nil, apperrors.DraftSaveFailed(err)
	}

	n := &db.Nation{
		IDInSmartContract:       -1,
		NationName:              input.NationName,
		NationDescription:       input.NationDescription,
		Exists:                  input.Exists,
		VirtualNation:           input.VirtualNation,
		NationCode:              input.NationCode,
		LawEnforcementMechanism: input.LawEnforcementMechanism,
		Profit:                  input.Profit,
		NonCitizenUse:           input.NonCitizenUse,
		DiplomaticRecognition:   input.DiplomaticRecognition,
		DecisionMakingProcess:   input.DecisionMakingProcess,
		GovernanceService:       input.GovernanceService,
		StateMutateAllowed:      true,
	}
	if err := s.store.CreateNation(ctx, n); err != nil {
		return nil, apperrors.DraftSaveFailed(err)
	}

	s.logger.Info("draft saved",
		zap.Int64("id", n.ID),
		zap.String("name", n.NationName))
	return n, nil
}

// UpdateDraft overwrites the descriptive fields of a draft in place
func (s *Service) UpdateDraft(ctx context.Context, id int64, input *DraftInput) (*db.Nation, error) {
	n, err := s.store.NationByID(ctx, id)
	if err != nil {
		return nil, apperrors.WriteFailed(err)
	}
	if n == nil {
		return nil, apperrors.NationNotFound(id)
	}
	if n.IDInSmartContract >= 0 {
		return nil, apperrors.AlreadySubmitted(id)
	}
	if err := s.validate.Struct(input); err != nil {
		return nil, apperrors.DraftSaveFailed(err)
	}

	n.NationName = input.NationName
	n.NationDescription = input.NationDescription
	n.Exists = input.Exists
	n.VirtualNation = input.VirtualNation
	n.NationCode = input.NationCode
	n.LawEnforcementMechanism = input.LawEnforcementMechanism
	n.Profit = input.Profit
	n.NonCitizenUse = input.NonCitizenUse
	n.DiplomaticRecognition = input.DiplomaticRecognition
	n.DecisionMakingProcess = input.DecisionMakingProcess
	n.GovernanceService = input.GovernanceService

	if err := s.store.SaveNation(ctx, n); err != nil {
		return nil, apperrors.WriteFailed(err)
	}
	return n, nil
}

// SubmitDraft sends the draft to the contract and attaches the resulting
// NATION_CREATE job, locking the nation until the job resolves
func (s *Service) SubmitDraft(ctx context.Context, id int64) (*db.Nation, error) {
	n, err := s.store.NationByID(ctx, id)
	if err != nil {
		return nil, apperrors.WriteFailed(err)
	}
	if n == nil {
		return nil, apperrors.NationNotFound(id)
	}
	if n.IDInSmartContract >= 0 || n.Created {
		return nil, apperrors.AlreadySubmitted(id)
	}
	if !n.StateMutateAllowed {
		return nil, apperrors.StateMutateNotPossible(id)
	}

	payload, err := json.Marshal(draftFromNation(n))
	if err != nil {
		return nil, fmt.Errorf("failed to encode nation: %w", err)
	}

	txHash, err := s.chain.CreateNation(ctx, string(payload))
	if err != nil {
		return nil, apperrors.ChainSubmitFailed(err)
	}

	job, err := txqueue.JobFactory(txHash, db.JobTypeNationCreate)
	if err != nil {
		return nil, err
	}
	if _, err := s.txQueue.SaveJobForNation(ctx, job, n.ID); err != nil {
		return nil, err
	}

	n.TxID = &job.ID
	n.StateMutateAllowed = false
	s.logger.Info("draft submitted",
		zap.Int64("id", n.ID),
		zap.String("tx_hash", txHash))
	return n, nil
}

// SaveAndSubmit saves a draft and immediately submits it
func (s *Service) SaveAndSubmit(ctx context.Context, input *DraftInput) (*db.Nation, error) {
	n, err := s.SaveDraft(ctx, input)
	if err != nil {
		return nil, err
	}
	return s.SubmitDraft(ctx, n.ID)
}

// DeleteDraft removes a nation that never left the device
func (s *Service) DeleteDraft(ctx context.Context, id int64) error {
	n, err := s.store.NationByID(ctx, id)
	if err != nil {
		return apperrors.WriteFailed(err)
	}
	if n == nil {
		return apperrors.NationNotFound(id)
	}
	if n.IDInSmartContract >= 0 || n.TxID != nil {
		return apperrors.AlreadySubmitted(id)
	}

	if err := s.store.DeleteNation(ctx, id); err != nil {
		return apperrors.WriteFailed(err)
	}
	return nil
}

// JoinNation submits a citizenship join for an on-chain nation
func (s *Service) JoinNation(ctx context.Context, id int64) (*db.Nation, error) {
	return s.mutateMembership(ctx, id, db.JobTypeNationJoin, s.chain.JoinNation)
}

// LeaveNation submits a citizenship leave for an on-chain nation
func (s *Service) LeaveNation(ctx context.Context, id int64) (*db.Nation, error) {
	return s.mutateMembership(ctx, id, db.JobTypeNationLeave, s.chain.LeaveNation)
}

func (s *Service) mutateMembership(
	ctx context.Context,
	id int64,
	jobType db.JobType,
	submit func(ctx context.Context, contractID int64) (string, error),
) (*db.Nation, error) {
	n, err := s.store.NationByID(ctx, id)
	if err != nil {
		return nil, apperrors.WriteFailed(err)
	}
	if n == nil {
		return nil, apperrors.NationNotFound(id)
	}
	if !n.StateMutateAllowed || n.IDInSmartContract < 0 {
		return nil, apperrors.StateMutateNotPossible(id)
	}

	txHash, err := submit(ctx, n.IDInSmartContract)
	if err != nil {
		return nil, apperrors.ChainSubmitFailed(err)
	}

	job, err := txqueue.JobFactory(txHash, jobType)
	if err != nil {
		return nil, err
	}
	if _, err := s.txQueue.SaveJobForNation(ctx, job, n.ID); err != nil {
		return nil, err
	}

	n.TxID = &job.ID
	n.StateMutateAllowed = false
	return n, nil
}

// All returns every locally known nation
func (s *Service) All(ctx context.Context) ([]*db.Nation, error) {
	nations, err := s.store.Nations(ctx)
	if err != nil {
		return nil, apperrors.WriteFailed(err)
	}
	return nations, nil
}

// Get returns a single nation by its local id
func (s *Service) Get(ctx context.Context, id int64) (*db.Nation, error) {
	n, err := s.store.NationByID(ctx, id)
	if err != nil {
		return nil, apperrors.WriteFailed(err)
	}
	if n == nil {
		return nil, apperrors.NationNotFound(id)
	}
	return n, nil
}

// draftFromNation rebuilds the submit payload from a stored nation.
func draftFromNation(n *db.Nation) *DraftInput {
	return &DraftInput{
		NationName:              n.NationName,
		NationDescription:       n.NationDescription,
		Exists:                  n.Exists,
		VirtualNation:           n.VirtualNation,
		NationCode:              n.NationCode,
		LawEnforcementMechanism: n.LawEnforcementMechanism,
		Profit:                  n.Profit,
		NonCitizenUse:           n.NonCitizenUse,
		DiplomaticRecognition:   n.DiplomaticRecognition,
		DecisionMakingProcess:   n.DecisionMakingProcess,
		GovernanceService:       n.GovernanceService,
	}
}
