// Package db implements the versioned embedded store backing the client:
// transaction jobs, nation records, queued messages and synced balances.
package db

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"
	"go.uber.org/zap"

	"github.com/bitnation/pangea-core/pkg/migrations/pangeadb"
	"github.com/bitnation/pangea-core/pkg/sqlutil"
)

// Store provides persistence for jobs, nations, messages and balances on top
// of a local SQLite file.
type Store struct {
	db     *bun.DB
	logger *zap.Logger
}

// Open opens the database at path and brings its schema up to the current
// version. If a migration fails the database is closed and left at the
// version it had before the failing step.
func Open(path string, logger *zap.Logger) (*Store, error) {
	bunDB, err := sqlutil.Connect(path)
	if err != nil {
		return nil, err
	}

	migrator := migrate.NewMigrator(bunDB, pangeadb.Migrations)

	ctx := context.Background()
	if err := migrator.Init(ctx); err != nil {
		_ = bunDB.Close()
		return nil, fmt.Errorf("failed to init migrations: %w", err)
	}

	group, err := migrator.Migrate(ctx)
	if err != nil {
		_ = bunDB.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	if group.IsZero() {
		logger.Debug("database schema up to date")
	} else {
		logger.Info("database schema migrated", zap.String("group", group.String()))
	}

	return &Store{db: bunDB, logger: logger}, nil
}

// NewStore wraps an already opened bun handle. The caller is responsible for
// running migrations; Open is the usual entry point.
func NewStore(bunDB *bun.DB, logger *zap.Logger) *Store {
	return &Store{db: bunDB, logger: logger}
}

// DB exposes the underlying bun handle.
func (s *Store) DB() *bun.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
