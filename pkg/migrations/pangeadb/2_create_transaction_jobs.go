package pangeadb

import (
	"context"
	"database/sql"
	"log"

	"github.com/uptrace/bun"

	"github.com/bitnation/pangea-core/pkg/db/dao"
	mghelper "github.com/bitnation/pangea-core/pkg/sqlutil/migrations"
)

// Version 2 introduces transaction_jobs and replaces the flat tx_hash column
// on nations with a tx_id link. Legacy rows carry nothing beyond the
// submission hash, so backfilled jobs are recorded as pending NATION_CREATE
// submissions; the next processing cycle resolves them against the chain.
func upCreateTransactionJobs(ctx context.Context, db *bun.DB) error {
	return db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		log.Println("creating transaction_jobs table and nation tx link...")
		if err := mghelper.CreateSchema(ctx, tx, &dao.TransactionJobDao{}); err != nil {
			return err
		}
		if err := mghelper.CreateModelUniqueIndexes(ctx, tx, &dao.TransactionJobDao{}, "tx_hash"); err != nil {
			return err
		}

		// tx_id stays a soft link: SQLite refuses to drop columns bound
		// by a foreign key constraint, which would strand the down path.
		stmts := []string{
			`ALTER TABLE "nations" ADD COLUMN "tx_id" INTEGER`,
			`ALTER TABLE "nations" ADD COLUMN "state_mutate_allowed" BOOLEAN NOT NULL DEFAULT true`,
			`INSERT INTO "transaction_jobs" ("tx_hash", "status", "type", "created_at")
				SELECT "tx_hash", 200, 'NATION_CREATE', CURRENT_TIMESTAMP
				FROM "nations" WHERE "tx_hash" IS NOT NULL AND "tx_hash" != ''`,
			`UPDATE "nations" SET "tx_id" = (
				SELECT "id" FROM "transaction_jobs" WHERE "transaction_jobs"."tx_hash" = "nations"."tx_hash"
			) WHERE "tx_hash" IS NOT NULL AND "tx_hash" != ''`,
			`UPDATE "nations" SET "state_mutate_allowed" = false WHERE "tx_id" IS NOT NULL`,
			`ALTER TABLE "nations" DROP COLUMN "tx_hash"`,
		}
		for _, stmt := range stmts {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return err
			}
		}

		return mghelper.CreateModelIndexes(ctx, tx, &dao.NationDao{}, "tx_id")
	})
}

func downCreateTransactionJobs(ctx context.Context, db *bun.DB) error {
	return db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		log.Println("dropping transaction_jobs table and nation tx link...")
		stmts := []string{
			`DROP INDEX IF EXISTS "idx_nations_tx_id"`,
			`ALTER TABLE "nations" ADD COLUMN "tx_hash" VARCHAR(66)`,
			`UPDATE "nations" SET "tx_hash" = (
				SELECT "tx_hash" FROM "transaction_jobs" WHERE "transaction_jobs"."id" = "nations"."tx_id"
			) WHERE "tx_id" IS NOT NULL`,
			`ALTER TABLE "nations" DROP COLUMN "state_mutate_allowed"`,
			`ALTER TABLE "nations" DROP COLUMN "tx_id"`,
		}
		for _, stmt := range stmts {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return err
			}
		}
		return mghelper.DropTables(ctx, tx, &dao.TransactionJobDao{})
	})
}

func init() {
	Migrations.MustRegister(upCreateTransactionJobs, downCreateTransactionJobs)
}
