package main

import (
	"flag"
	"log"

	"github.com/uptrace/bun/migrate"

	"github.com/bitnation/pangea-core/pkg/config"
	"github.com/bitnation/pangea-core/pkg/migrations/pangeadb"
	"github.com/bitnation/pangea-core/pkg/sqlutil"
	mghelper "github.com/bitnation/pangea-core/pkg/sqlutil/migrations"
)

func main() {
	cfgPath := flag.String("config", "config.yaml", "Path to configuration file")
	flag.Usage = mghelper.Usage
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("error reading configuration file: %s", err.Error())
	}

	db, err := sqlutil.Connect(cfg.Database.Path)
	if err != nil {
		log.Fatalf("error opening database: %s", err.Error())
	}
	defer db.Close()

	log.Printf("Running migrations for Pangea database (%s)...\n", cfg.Database.Path)

	migrator := migrate.NewMigrator(db, pangeadb.Migrations)

	if err := mghelper.RunMigrations(migrator, flag.Args()...); err != nil {
		mghelper.Exitf(err.Error())
	}
}
