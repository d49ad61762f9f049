package dao

import (
	"time"

	"github.com/uptrace/bun"
)

// AccountBalanceDao is a data access object that maps directly to the
// 'account_balances' table. Amount is kept as a decimal string in wei.
type AccountBalanceDao struct {
	bun.BaseModel `bun:"table:account_balances,alias:ab"`
	ID            string    `bun:"id,pk,type:varchar(128)"`
	Address       string    `bun:"address,notnull,type:varchar(42)"`
	Amount        string    `bun:"amount,notnull"`
	Currency      string    `bun:"currency,notnull,type:varchar(8)"`
	SyncedAt      time.Time `bun:"synced_at,nullzero,default:current_timestamp"`
}
