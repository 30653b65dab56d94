package sqlite

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "foodloop.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}
