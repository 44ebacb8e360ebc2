package persistence

import (
	"database/sql"
	"testing"

	infraDB "quizarena/internal/infra/db"

	"github.com/stretchr/testify/require"
)

// openTestDB abre um SQLite em memória com todas as migrações aplicadas.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := infraDB.NewSQLiteConnection(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	require.NoError(t, infraDB.RunMigrations(db))
	return db
}
