package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/bitnation/pangea-core/pkg/db/dao"
)

// toNationDao converts a Nation to its table mapping.
func toNationDao(n *Nation) *dao.NationDao {
	return &dao.NationDao{
		ID:                      n.ID,
		IDInSmartContract:       n.IDInSmartContract,
		TxID:                    n.TxID,
		Created:                 n.Created,
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
		Citizens:                n.Citizens,
		Joined:                  n.Joined,
		StateMutateAllowed:      n.StateMutateAllowed,
	}
}

// toNation converts a NationDao to Nation.
func toNation(d *dao.NationDao) *Nation {
	return &Nation{
		ID:                      d.ID,
		IDInSmartContract:       d.IDInSmartContract,
		TxID:                    d.TxID,
		Created:                 d.Created,
		NationName:              d.NationName,
		NationDescription:       d.NationDescription,
		Exists:                  d.Exists,
		VirtualNation:           d.VirtualNation,
		NationCode:              d.NationCode,
		LawEnforcementMechanism: d.LawEnforcementMechanism,
		Profit:                  d.Profit,
		NonCitizenUse:           d.NonCitizenUse,
		DiplomaticRecognition:   d.DiplomaticRecognition,
		DecisionMakingProcess:   d.DecisionMakingProcess,
		GovernanceService:       d.GovernanceService,
		Citizens:                d.Citizens,
		Joined:                  d.Joined,
		StateMutateAllowed:      d.StateMutateAllowed,
	}
}

// CreateNation persists a new nation, assigning it the next local id.
// Ids are assigned sequentially per store so drafts keep a stable identity
// across schema versions.
func (s *Store) CreateNation(ctx context.Context, n *Nation) error {
	return s.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		var maxID sql.NullInt64
		err := tx.NewSelect().
			Model((*dao.NationDao)(nil)).
			ColumnExpr("MAX(id)").
			Scan(ctx, &maxID)
		if err != nil {
			return fmt.Errorf("failed to allocate nation id: %w", err)
		}

		n.ID = maxID.Int64 + 1

		d := toNationDao(n)
		_, err = tx.NewInsert().
			Model(d).
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to create nation: %w", err)
		}
		return nil
	})
}

// NationByID returns the nation with the given local id, or nil if absent.
func (s *Store) NationByID(ctx context.Context, id int64) (*Nation, error) {
	d := new(dao.NationDao)
	err := s.db.NewSelect().
		Model(d).
		Where("n.id = ?", id).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get nation: %w", err)
	}
	return toNation(d), nil
}

// Nations returns every stored nation ordered by local id.
func (s *Store) Nations(ctx context.Context) ([]*Nation, error) {
	var daos []dao.NationDao
	err := s.db.NewSelect().
		Model(&daos).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list nations: %w", err)
	}

	nations := make([]*Nation, len(daos))
	for i := range daos {
		nations[i] = toNation(&daos[i])
	}
	return nations, nil
}

// SaveNation overwrites the stored row for the nation's id.
func (s *Store) SaveNation(ctx context.Context, n *Nation) error {
	d := toNationDao(n)
	res, err := s.db.NewUpdate().
		Model(d).
		WherePK().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save nation: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to save nation: %w", err)
	}
	if affected == 0 {
		return ErrNationNotFound
	}
	return nil
}

// DeleteNation removes the nation with the given local id.
func (s *Store) DeleteNation(ctx context.Context, id int64) error {
	res, err := s.db.NewDelete().
		Model((*dao.NationDao)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete nation: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete nation: %w", err)
	}
	if affected == 0 {
		return ErrNationNotFound
	}
	return nil
}

// NationByJobID returns the nation linked to the given transaction job, or
// nil if no nation is linked to it.
func (s *Store) NationByJobID(ctx context.Context, jobID int64) (*Nation, error) {
	d := new(dao.NationDao)
	err := s.db.NewSelect().
		Model(d).
		Where("n.tx_id = ?", jobID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get nation by job: %w", err)
	}
	return toNation(d), nil
}

// NationByTxHashAndType returns the nation whose linked job matches both the
// transaction hash and job type, or nil when there is no match.
func (s *Store) NationByTxHashAndType(ctx context.Context, txHash string, jobType JobType) (*Nation, error) {
	d := new(dao.NationDao)
	err := s.db.NewSelect().
		Model(d).
		Join("JOIN transaction_jobs AS tj ON tj.id = n.tx_id").
		Where("tj.tx_hash = ?", txHash).
		Where("tj.type = ?", string(jobType)).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get nation by tx hash: %w", err)
	}
	return toNation(d), nil
}

// NationByContractID returns the nation carrying the given on-chain id, or
// nil if it has not been indexed locally.
func (s *Store) NationByContractID(ctx context.Context, contractID int64) (*Nation, error) {
	d := new(dao.NationDao)
	err := s.db.NewSelect().
		Model(d).
		Where("n.id_in_smart_contract = ?", contractID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get nation by contract id: %w", err)
	}
	return toNation(d), nil
}

// SetNationContractID records the on-chain id the contract assigned to a
// locally created nation and marks it as created.
func (s *Store) SetNationContractID(ctx context.Context, id, contractID int64) error {
	res, err := s.db.NewUpdate().
		Model((*dao.NationDao)(nil)).
		Set("id_in_smart_contract = ?", contractID).
		Set("created = ?", true).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to set nation contract id: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to set nation contract id: %w", err)
	}
	if affected == 0 {
		return ErrNationNotFound
	}
	return nil
}

// UpdateNationChainData refreshes the values the indexer reads off the chain.
func (s *Store) UpdateNationChainData(ctx context.Context, id, citizens int64, joined bool) error {
	res, err := s.db.NewUpdate().
		Model((*dao.NationDao)(nil)).
		Set("citizens = ?", citizens).
		Set("joined = ?", joined).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update nation chain data: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update nation chain data: %w", err)
	}
	if affected == 0 {
		return ErrNationNotFound
	}
	return nil
}
