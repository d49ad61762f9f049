package dao

import (
	"time"

	"github.com/uptrace/bun"
)

// TransactionJobDao is a data access object that maps directly to the
// 'transaction_jobs' table.
type TransactionJobDao struct {
	bun.BaseModel `bun:"table:transaction_jobs,alias:tj"`
	ID            int64     `bun:"id,pk,autoincrement"`
	TxHash        string    `bun:"tx_hash,unique,notnull,type:varchar(66)"`
	Status        int       `bun:"status,notnull"`
	Type          string    `bun:"type,notnull,type:varchar(32)"`
	CreatedAt     time.Time `bun:"created_at,nullzero,default:current_timestamp"`
}
