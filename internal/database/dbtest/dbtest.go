// Package dbtest provides migrated throwaway databases for tests.
package dbtest

import (
	"path/filepath"
	"testing"

	"product-catalog/internal/database"
	"product-catalog/pkg/config"

	"github.com/stretchr/testify/require"
)

// New opens a migrated SQLite database in a temporary directory that is
// removed when the test ends.
func New(t testing.TB) *database.DB {
	t.Helper()

	db, err := database.NewConnection(&config.DatabaseConfig{
		Type:         "sqlite",
		Path:         filepath.Join(t.TempDir(), "catalog.db"),
		MaxOpenConns: 4,
		MaxIdleConns: 4,
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.RunMigrations(db))
	return db
}
