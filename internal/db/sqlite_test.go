package db

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitSQLiteBootstrapsSchema(t *testing.T) {
	conn, err := InitSQLite(":memory:")
	require.NoError(t, err)
	defer conn.Close()

	for _, table := range []string{"users", "notes"} {
		var name string
		err := conn.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		require.NoError(t, err, "table %s should exist", table)
	}
}

func TestInitSQLiteIdempotent(t *testing.T) {
	path := t.TempDir() + "/notes.db"

	conn, err := InitSQLite(path)
	require.NoError(t, err)
	_, err = conn.Exec("INSERT INTO users (email, password) VALUES (?, ?)", "a@b.c", "x")
	require.NoError(t, err)
	require.NoError(t, conn.Close())

	// Reopening must keep existing data.
	conn, err = InitSQLite(path)
	require.NoError(t, err)
	defer conn.Close()

	var count int
	require.NoError(t, conn.QueryRow("SELECT COUNT(*) FROM users").Scan(&count))
	require.Equal(t, 1, count)
}
