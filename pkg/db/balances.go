package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bitnation/pangea-core/pkg/db/dao"
)

// toAccountBalanceDao converts an AccountBalance to its table mapping.
func toAccountBalanceDao(b *AccountBalance) *dao.AccountBalanceDao {
	return &dao.AccountBalanceDao{
		ID:       b.ID,
		Address:  b.Address,
		Amount:   b.Amount,
		Currency: b.Currency,
		SyncedAt: b.SyncedAt,
	}
}

// toAccountBalance converts an AccountBalanceDao to AccountBalance.
func toAccountBalance(d *dao.AccountBalanceDao) *AccountBalance {
	return &AccountBalance{
		ID:       d.ID,
		Address:  d.Address,
		Amount:   d.Amount,
		Currency: d.Currency,
		SyncedAt: d.SyncedAt,
	}
}

// UpsertAccountBalance stores the latest synced balance for an account,
// replacing any previous value for the same id.
func (s *Store) UpsertAccountBalance(ctx context.Context, b *AccountBalance) error {
	if b.SyncedAt.IsZero() {
		b.SyncedAt = time.Now().UTC()
	}
	d := toAccountBalanceDao(b)

	_, err := s.db.NewInsert().
		Model(d).
		On("CONFLICT (id) DO UPDATE").
		Set("amount = EXCLUDED.amount").
		Set("synced_at = EXCLUDED.synced_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert account balance: %w", err)
	}
	return nil
}

// AccountBalance returns the stored balance with the given id, or nil if
// the account was never synced.
func (s *Store) AccountBalance(ctx context.Context, id string) (*AccountBalance, error) {
	d := new(dao.AccountBalanceDao)
	err := s.db.NewSelect().
		Model(d).
		Where("id = ?", id).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account balance: %w", err)
	}
	return toAccountBalance(d), nil
}

// AccountBalancesByAddress returns every stored balance for an address.
func (s *Store) AccountBalancesByAddress(ctx context.Context, address string) ([]*AccountBalance, error) {
	var daos []dao.AccountBalanceDao
	err := s.db.NewSelect().
		Model(&daos).
		Where("address = ?", address).
		Order("id ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list account balances: %w", err)
	}

	balances := make([]*AccountBalance, len(daos))
	for i := range daos {
		balances[i] = toAccountBalance(&daos[i])
	}
	return balances, nil
}
