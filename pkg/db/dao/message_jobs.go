package dao

import (
	"time"

	"github.com/uptrace/bun"
)

// MessageJobDao is a data access object that maps directly to the
// 'message_jobs' table. Rows are append-only; the only mutation ever applied
// is removal by id.
type MessageJobDao struct {
	bun.BaseModel `bun:"table:message_jobs,alias:mj"`
	ID            int64     `bun:"id,pk"`
	Msg           string    `bun:"msg,notnull"`
	Params        string    `bun:"params,notnull"`
	Interpret     bool      `bun:"interpret,notnull"`
	Display       bool      `bun:"display,notnull"`
	Heading       *string   `bun:"heading"`
	Version       int       `bun:"version,notnull"`
	CreatedAt     time.Time `bun:"created_at,nullzero,default:current_timestamp"`
}
