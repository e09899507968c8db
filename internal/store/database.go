// Package store archives extraction passes in PostgreSQL.
package store

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// Database wraps the PostgreSQL connection used by the archive.
type Database struct {
	conn *sql.DB
}

// NewDatabase opens a connection and verifies it.
func NewDatabase(dsn string) (*Database, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Database{conn: db}, nil
}

// Close closes the database connection.
func (db *Database) Close() error {
	if db.conn != nil {
		return db.conn.Close()
	}
	return nil
}

// DB returns the underlying *sql.DB for queries.
func (db *Database) DB() *sql.DB {
	return db.conn
}

// Migrate creates the archive schema if it does not exist.
func (db *Database) Migrate() error {
	const schema = `
CREATE TABLE IF NOT EXISTS game_results (
	game_date   TEXT NOT NULL,
	opponent    TEXT NOT NULL,
	score       TEXT NOT NULL,
	result      TEXT NOT NULL,
	location    TEXT NOT NULL,
	archived_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	PRIMARY KEY (game_date, opponent)
)`

	if _, err := db.conn.Exec(schema); err != nil {
		return fmt.Errorf("failed to create game_results table: %w", err)
	}
	return nil
}
