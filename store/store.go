// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/election/db"
	"github.com/danielhkuo/election/models"
)

var (
	ErrNotFound = errors.New("not found")
)

// queryer is satisfied by both *sqlx.DB and *sqlx.Tx
type queryer interface {
	sqlx.ExtContext
	GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
	SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error
}

// DB is the SQL-backed data store. All queries are written with ? placeholders
// and rebound for the connected driver.
type DB struct {
	dbx *sqlx.DB
}

// New wraps an open connection. dbType selects the placeholder style.
func New(conn *sql.DB, dbType string) (*DB, error) {
	driver, err := db.DriverName(dbType)
	if err != nil {
		return nil, err
	}
	return &DB{dbx: sqlx.NewDb(conn, driver)}, nil
}

// castErr replaces sql.ErrNoRows with ErrNotFound
func castErr(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (s *DB) get(ctx context.Context, q queryer, dest interface{}, query string, args ...interface{}) error {
	return castErr(q.GetContext(ctx, dest, s.dbx.Rebind(query), args...))
}

func (s *DB) selectAll(ctx context.Context, q queryer, dest interface{}, query string, args ...interface{}) error {
	return q.SelectContext(ctx, dest, s.dbx.Rebind(query), args...)
}

// FindUserByMynumber returns ErrNotFound when no citizen has the given number.
func (s *DB) FindUserByMynumber(ctx context.Context, mynumber string) (models.User, error) {
	var u models.User
	err := s.get(ctx, s.dbx, &u, `
		SELECT id, name, address, mynumber, votes
		FROM users
		WHERE mynumber = ?
		LIMIT 1
	`, mynumber)
	return u, err
}

// CountVotesByUser returns how many vote rows the user already owns.
func (s *DB) CountVotesByUser(ctx context.Context, userID int64) (int, error) {
	var n int
	err := s.get(ctx, s.dbx, &n, `SELECT COUNT(*) FROM votes WHERE user_id = ?`, userID)
	return n, err
}

func (s *DB) FindCandidateByName(ctx context.Context, name string) (models.Candidate, error) {
	var c models.Candidate
	err := s.get(ctx, s.dbx, &c, `
		SELECT id, name, political_party, sex
		FROM candidates
		WHERE name = ?
		LIMIT 1
	`, name)
	return c, err
}

func (s *DB) FindCandidateByID(ctx context.Context, id int64) (models.Candidate, error) {
	var c models.Candidate
	err := s.get(ctx, s.dbx, &c, `
		SELECT id, name, political_party, sex
		FROM candidates
		WHERE id = ?
	`, id)
	return c, err
}

func (s *DB) FindCandidatesByParty(ctx context.Context, party string) ([]models.Candidate, error) {
	candidates := []models.Candidate{}
	err := s.selectAll(ctx, s.dbx, &candidates, `
		SELECT id, name, political_party, sex
		FROM candidates
		WHERE political_party = ?
		ORDER BY id
	`, party)
	return candidates, err
}

func (s *DB) ListCandidates(ctx context.Context) ([]models.Candidate, error) {
	candidates := []models.Candidate{}
	err := s.selectAll(ctx, s.dbx, &candidates, `
		SELECT id, name, political_party, sex
		FROM candidates
		ORDER BY id
	`)
	return candidates, err
}

// InsertVote writes a single vote row.
func (s *DB) InsertVote(ctx context.Context, userID, candidateID int64, keyword string) error {
	return s.insertVote(ctx, s.dbx, userID, candidateID, keyword)
}

func (s *DB) insertVote(ctx context.Context, q queryer, userID, candidateID int64, keyword string) error {
	_, err := q.ExecContext(ctx, s.dbx.Rebind(`
		INSERT INTO votes (user_id, candidate_id, keyword)
		VALUES (?, ?, ?)
	`), userID, candidateID, keyword)
	return err
}

// InsertVotes writes count identical vote rows in one transaction. Either all
// rows are committed or none are.
func (s *DB) InsertVotes(ctx context.Context, userID, candidateID int64, keyword string, count int) error {
	if count <= 0 {
		return nil
	}

	tx, err := s.dbx.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for i := 0; i < count; i++ {
		if err := s.insertVote(ctx, tx, userID, candidateID, keyword); err != nil {
			return fmt.Errorf("failed to insert vote %d of %d: %w", i+1, count, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit votes: %w", err)
	}
	return nil
}

// DeleteAllVotes removes every vote row. Users and candidates are untouched.
func (s *DB) DeleteAllVotes(ctx context.Context) error {
	_, err := s.dbx.ExecContext(ctx, `DELETE FROM votes`)
	return err
}

func (s *DB) CountVotesByCandidate(ctx context.Context, candidateID int64) (int, error) {
	var n int
	err := s.get(ctx, s.dbx, &n, `SELECT COUNT(*) FROM votes WHERE candidate_id = ?`, candidateID)
	return n, err
}
