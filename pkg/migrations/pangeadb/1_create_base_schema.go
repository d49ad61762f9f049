package pangeadb

import (
	"context"
	"database/sql"
	"log"

	"github.com/uptrace/bun"

	"github.com/bitnation/pangea-core/pkg/db/dao"
	mghelper "github.com/bitnation/pangea-core/pkg/sqlutil/migrations"
)

// Version 1 is the original on-disk layout: message jobs plus nations that
// track their submission through a flat tx_hash column. The nations DDL is
// spelled out instead of derived from a model because no current model has
// this shape anymore.
const legacyNationsDDL = `
CREATE TABLE IF NOT EXISTS "nations" (
	"id" INTEGER NOT NULL PRIMARY KEY,
	"id_in_smart_contract" INTEGER NOT NULL DEFAULT -1,
	"tx_hash" VARCHAR(66),
	"created" BOOLEAN NOT NULL,
	"nation_name" VARCHAR NOT NULL,
	"nation_description" VARCHAR NOT NULL,
	"exists" BOOLEAN NOT NULL,
	"virtual_nation" BOOLEAN NOT NULL,
	"nation_code" VARCHAR NOT NULL,
	"law_enforcement_mechanism" VARCHAR NOT NULL,
	"profit" BOOLEAN NOT NULL,
	"non_citizen_use" BOOLEAN NOT NULL,
	"diplomatic_recognition" BOOLEAN NOT NULL,
	"decision_making_process" VARCHAR NOT NULL,
	"governance_service" VARCHAR NOT NULL,
	"citizens" INTEGER NOT NULL DEFAULT 0,
	"joined" BOOLEAN NOT NULL DEFAULT false
)`

func upCreateBaseSchema(ctx context.Context, db *bun.DB) error {
	return db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		log.Println("creating message_jobs and nations tables...")
		if err := mghelper.CreateSchema(ctx, tx, &dao.MessageJobDao{}); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, legacyNationsDDL); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, tx, &dao.NationDao{}, "id_in_smart_contract")
	})
}

func downCreateBaseSchema(ctx context.Context, db *bun.DB) error {
	return db.RunInTx(ctx, &sql.TxOptions{}, func(ctx context.Context, tx bun.Tx) error {
		log.Println("dropping message_jobs and nations tables...")
		if err := mghelper.DropTables(ctx, tx, &dao.MessageJobDao{}); err != nil {
			return err
		}
		_, err := tx.ExecContext(ctx, `DROP TABLE IF EXISTS "nations"`)
		return err
	})
}

func init() {
	Migrations.MustRegister(upCreateBaseSchema, downCreateBaseSchema)
}
