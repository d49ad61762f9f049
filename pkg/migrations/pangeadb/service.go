// Package pangeadb holds all the migrations for the local Pangea database.
//
// The history is append-only: every schema version keeps its numbered file,
// and new shapes are introduced by new migrations rather than by editing old
// ones. A store opened at a newer version runs exactly the missing
// migrations, in ascending order.
package pangeadb

import (
	"github.com/uptrace/bun/migrate"
)

// Migrations is the collection of all migrations for the Pangea database
var Migrations = migrate.NewMigrations()
