package db

import (
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"
)

// InitMySQL connects to MySQL and bootstraps the schema.
func InitMySQL(user, password, host, dbName string) (*sql.DB, error) {
	// clientFoundRows: RowsAffected must report matched rows, not changed
	// rows, so updating a note to identical values is not mistaken for a
	// missing id.
	dsn := fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&clientFoundRows=true", user, password, host, dbName)

	conn, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MySQL database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("MySQL ping failed: %w", err)
	}

	createUsersTable := `CREATE TABLE IF NOT EXISTS users (
		id INT AUTO_INCREMENT PRIMARY KEY,
		google_id VARCHAR(255) UNIQUE,
		name VARCHAR(255),
		email VARCHAR(255) UNIQUE,
		password VARCHAR(255),
		picture VARCHAR(512),
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	) ENGINE=InnoDB;`

	createNotesTable := `CREATE TABLE IF NOT EXISTS notes (
		id INT AUTO_INCREMENT PRIMARY KEY,
		user_id INT,
		google_id VARCHAR(255),
		title TEXT NOT NULL,
		content TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	) ENGINE=InnoDB;`

	if _, err := conn.Exec(createUsersTable); err != nil {
		return nil, fmt.Errorf("error creating users table: %w", err)
	}
	if _, err := conn.Exec(createNotesTable); err != nil {
		return nil, fmt.Errorf("error creating notes table: %w", err)
	}

	return conn, nil
}
