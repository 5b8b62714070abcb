// Package testdb provisions migrated databases for tests.
package testdb

import (
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Quinhas/sgpg-api/pkg/config"
	"github.com/Quinhas/sgpg-api/pkg/database"
)

// SQLite opens a fresh file-backed sqlite database in t's temp dir with every
// migration applied. It is closed when the test ends.
func SQLite(t testing.TB) *sqlx.DB {
	t.Helper()

	db, err := database.NewSQLite(filepath.Join(t.TempDir(), "sgpg.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, database.Migrate(db.DB, config.DriverSQLite, zap.NewNop()))
	return db
}
