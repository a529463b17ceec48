package db

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// InitSQLite opens (or creates) a SQLite database and bootstraps the schema.
// SQLite allows a single writer, so the pool is capped at one connection;
// this also keeps ":memory:" databases on one connection, which in-memory
// test databases require.
func InitSQLite(path string) (*sql.DB, error) {
	conn, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	conn.SetMaxOpenConns(1)

	createUsersTable := `CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		google_id TEXT UNIQUE,
		name TEXT,
		email TEXT UNIQUE,
		password TEXT,
		picture TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`

	createNotesTable := `CREATE TABLE IF NOT EXISTS notes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER,
		google_id TEXT,
		title TEXT NOT NULL,
		content TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`

	if _, err := conn.Exec(createUsersTable); err != nil {
		return nil, fmt.Errorf("error creating users table: %w", err)
	}
	if _, err := conn.Exec(createNotesTable); err != nil {
		return nil, fmt.Errorf("error creating notes table: %w", err)
	}

	return conn, nil
}
