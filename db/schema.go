// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported database types
const (
	TypePostgres = "postgres"
	TypeSQLite   = "sqlite"
)

// Open connects to the database and verifies the connection.
func Open(dbType, url string) (*sql.DB, error) {
	driver, err := DriverName(dbType)
	if err != nil {
		return nil, err
	}

	conn, err := sql.Open(driver, url)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// SQLite allows a single writer; queue writes in the pool instead of
	// failing with SQLITE_BUSY.
	if driver == TypeSQLite {
		conn.SetMaxOpenConns(1)
	}

	return conn, nil
}

// DriverName returns the database/sql driver registered for a database type.
func DriverName(dbType string) (string, error) {
	switch dbType {
	case TypePostgres, "postgresql":
		return TypePostgres, nil
	case TypeSQLite, "sqlite3", "":
		return TypeSQLite, nil
	}
	return "", fmt.Errorf("unsupported database type %q", dbType)
}

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dbType string) error {
	driver, err := DriverName(dbType)
	if err != nil {
		return err
	}

	schema := sqliteSchema
	if driver == TypePostgres {
		schema = postgresSchema
	}

	_, err = db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// DropSchema removes all tables. Used by tests to start from a clean state.
func DropSchema(db *sql.DB) error {
	_, err := db.Exec(`
		DROP TABLE IF EXISTS votes;
		DROP TABLE IF EXISTS candidates;
		DROP TABLE IF EXISTS users;
	`)
	if err != nil {
		return fmt.Errorf("failed to drop schema: %w", err)
	}
	return nil
}

const postgresSchema = `
-- Citizens and their vote quota
CREATE TABLE IF NOT EXISTS users (
    id SERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    address TEXT NOT NULL DEFAULT '',
    mynumber TEXT NOT NULL UNIQUE,
    votes INTEGER NOT NULL CHECK (votes >= 0)
);

-- Candidates
CREATE TABLE IF NOT EXISTS candidates (
    id SERIAL PRIMARY KEY,
    name TEXT NOT NULL UNIQUE,
    political_party TEXT NOT NULL,
    sex TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_candidates_political_party ON candidates(political_party);

-- Votes (one row per vote, a ballot worth N votes is N rows)
CREATE TABLE IF NOT EXISTS votes (
    id SERIAL PRIMARY KEY,
    user_id INTEGER NOT NULL REFERENCES users(id),
    candidate_id INTEGER NOT NULL REFERENCES candidates(id),
    keyword TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_votes_user_id ON votes(user_id);
CREATE INDEX IF NOT EXISTS idx_votes_candidate_id ON votes(candidate_id);
`

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS users (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    address TEXT NOT NULL DEFAULT '',
    mynumber TEXT NOT NULL UNIQUE,
    votes INTEGER NOT NULL CHECK (votes >= 0)
);

CREATE TABLE IF NOT EXISTS candidates (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE,
    political_party TEXT NOT NULL,
    sex TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_candidates_political_party ON candidates(political_party);

CREATE TABLE IF NOT EXISTS votes (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    user_id INTEGER NOT NULL REFERENCES users(id),
    candidate_id INTEGER NOT NULL REFERENCES candidates(id),
    keyword TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_votes_user_id ON votes(user_id);
CREATE INDEX IF NOT EXISTS idx_votes_candidate_id ON votes(candidate_id);
`
