// Package dbtest opens throwaway stores for tests.
package dbtest

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bitnation/pangea-core/pkg/db"
)

// NewStore opens a fully migrated store backed by a temp file that is
// removed when the test finishes.
func NewStore(t *testing.T) *db.Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "pangea.db")
	store, err := db.Open(path, zap.NewNop())
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}
