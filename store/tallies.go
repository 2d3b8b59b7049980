// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/danielhkuo/election/models"
)

// Per-candidate vote counts. The grouped subquery is outer joined so that
// candidates without votes keep a row with count 0.
const candidateTallySelect = `
	SELECT c.id, c.name, c.political_party, c.sex, COALESCE(v.cnt, 0) AS vote_count
	FROM candidates AS c
	LEFT OUTER JOIN
		(SELECT candidate_id, COUNT(*) AS cnt
		FROM votes
		GROUP BY candidate_id) AS v
	ON c.id = v.candidate_id
`

// CandidateTallies returns every candidate ordered by vote count descending,
// ties by id ascending. limit <= 0 returns all rows.
func (s *DB) CandidateTallies(ctx context.Context, limit int) ([]models.CandidateResult, error) {
	query := candidateTallySelect + `ORDER BY vote_count DESC, c.id ASC`
	return s.candidateTallies(ctx, query, limit)
}

// LowestCandidateTallies returns candidates ordered by vote count ascending,
// ties by id descending, so the result is the reversed tail of CandidateTallies.
func (s *DB) LowestCandidateTallies(ctx context.Context, limit int) ([]models.CandidateResult, error) {
	query := candidateTallySelect + `ORDER BY vote_count ASC, c.id DESC`
	return s.candidateTallies(ctx, query, limit)
}

func (s *DB) candidateTallies(ctx context.Context, query string, limit int) ([]models.CandidateResult, error) {
	results := []models.CandidateResult{}
	var err error
	if limit > 0 {
		err = s.selectAll(ctx, s.dbx, &results, query+` LIMIT ?`, limit)
	} else {
		err = s.selectAll(ctx, s.dbx, &results, query)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query candidate tallies: %w", err)
	}
	return results, nil
}

// PartyTallies groups votes by the party of their candidate. Parties without
// votes do not appear.
func (s *DB) PartyTallies(ctx context.Context) ([]models.PartyResult, error) {
	results := []models.PartyResult{}
	err := s.selectAll(ctx, s.dbx, &results, `
		SELECT c.political_party AS political_party, COUNT(c.id) AS vote_count
		FROM candidates AS c
		JOIN votes AS v ON c.id = v.candidate_id
		GROUP BY c.political_party
		ORDER BY vote_count DESC, c.political_party ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query party tallies: %w", err)
	}
	return results, nil
}

// PartyVoteCount returns the votes cast for all candidates of a party.
// found is false when the party has no votes at all.
func (s *DB) PartyVoteCount(ctx context.Context, party string) (count int, found bool, err error) {
	err = s.get(ctx, s.dbx, &count, `
		SELECT COUNT(*) AS vote_count
		FROM votes AS v
		LEFT JOIN candidates AS c ON v.candidate_id = c.id
		WHERE c.political_party = ?
		GROUP BY c.political_party
	`, party)
	if errors.Is(err, ErrNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to query party votes: %w", err)
	}
	return count, true, nil
}

// SexTallies groups votes by the stored sex of their candidate.
func (s *DB) SexTallies(ctx context.Context) ([]models.SexResult, error) {
	results := []models.SexResult{}
	err := s.selectAll(ctx, s.dbx, &results, `
		SELECT c.sex AS sex, COUNT(c.id) AS vote_count
		FROM candidates AS c
		JOIN votes AS v ON c.id = v.candidate_id
		GROUP BY c.sex
		ORDER BY c.sex
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query sex tallies: %w", err)
	}
	return results, nil
}

// TopKeywords returns the most frequent keywords among votes for any of the
// given candidates, ties by keyword. An empty id list matches nothing.
func (s *DB) TopKeywords(ctx context.Context, candidateIDs []int64, limit int) ([]string, error) {
	keywords := []string{}
	if len(candidateIDs) == 0 {
		return keywords, nil
	}

	query, args, err := sqlx.In(`
		SELECT keyword
		FROM votes
		WHERE candidate_id IN (?)
		GROUP BY keyword
		ORDER BY COUNT(*) DESC, keyword ASC
		LIMIT ?
	`, candidateIDs, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to expand keyword query: %w", err)
	}

	if err := s.selectAll(ctx, s.dbx, &keywords, query, args...); err != nil {
		return nil, fmt.Errorf("failed to query keywords: %w", err)
	}
	return keywords, nil
}
