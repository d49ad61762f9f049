package pangeadb

import (
	"context"
	"database/sql"
	"log"

	"github.com/uptrace/bun"

	"github.com/bitnation/pangea-core/pkg/db/dao"
	mghelper "github.com/bitnation/pangea-core/pkg/sqlutil/migrations"
)

func upCreateAccountBalances(ctx context.Context, db *bun.DB) error {
	return db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		log.Println("creating account_balances table...")
		if err := mghelper.CreateSchema(ctx, tx, &dao.AccountBalanceDao{}); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, tx, &dao.AccountBalanceDao{}, "address")
	})
}

func downCreateAccountBalances(ctx context.Context, db *bun.DB) error {
	return db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		log.Println("dropping account_balances table...")
		return mghelper.DropTables(ctx, tx, &dao.AccountBalanceDao{})
	})
}

func init() {
	Migrations.MustRegister(upCreateAccountBalances, downCreateAccountBalances)
}
