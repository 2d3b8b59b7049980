// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"context"
	"fmt"

	"github.com/danielhkuo/election/models"
)

// OverallResults returns every candidate with its vote count, most votes
// first. Candidates nobody voted for are included with a count of 0 and sort
// last; equal counts keep candidate id order.
func (e *Engine) OverallResults(ctx context.Context) ([]models.CandidateResult, error) {
	return e.store.CandidateTallies(ctx, 0)
}

// Top returns the first n rows of OverallResults.
func (e *Engine) Top(ctx context.Context, n int) ([]models.CandidateResult, error) {
	if n <= 0 {
		return []models.CandidateResult{}, nil
	}
	return e.store.CandidateTallies(ctx, n)
}

// Bottom returns the n lowest ranked candidates, fewest votes first.
// n <= 0 means 1.
func (e *Engine) Bottom(ctx context.Context, n int) ([]models.CandidateResult, error) {
	if n <= 0 {
		n = models.BottomCandidates
	}
	return e.store.LowestCandidateTallies(ctx, n)
}

// VoiceOfSupporters returns the ten most frequent keywords among votes for
// any of the candidates. No candidates means no keywords.
func (e *Engine) VoiceOfSupporters(ctx context.Context, candidateIDs []int64) ([]string, error) {
	return e.store.TopKeywords(ctx, candidateIDs, models.SupporterVoices)
}

// PartyRanking returns per-party vote totals, highest first. Parties without
// any votes are left out.
func (e *Engine) PartyRanking(ctx context.Context) ([]models.PartyResult, error) {
	return e.store.PartyTallies(ctx)
}

// VotesForParty returns the votes for all candidates of a party, 0 if none.
func (e *Engine) VotesForParty(ctx context.Context, party string) (int, error) {
	count, _, err := e.store.PartyVoteCount(ctx, party)
	return count, err
}

func (e *Engine) SexRanking(ctx context.Context) ([]models.SexResult, error) {
	return e.store.SexTallies(ctx)
}

// SexRatio folds SexRanking into the man/woman summary. Missing categories
// stay 0; unknown stored values are ignored.
func (e *Engine) SexRatio(ctx context.Context) (models.SexRatio, error) {
	var ratio models.SexRatio

	results, err := e.SexRanking(ctx)
	if err != nil {
		return ratio, err
	}

	for _, res := range results {
		switch models.SexOf(res.Sex) {
		case models.SexMan:
			ratio.Man += res.VoteCount
		case models.SexWoman:
			ratio.Woman += res.VoteCount
		}
	}
	return ratio, nil
}

// Index gathers the top page: top 10 and bottom 1 candidates, the party
// ranking and the sex ratio.
func (e *Engine) Index(ctx context.Context) (models.IndexResponse, error) {
	var page models.IndexResponse

	top, err := e.Top(ctx, models.TopCandidates)
	if err != nil {
		return page, err
	}
	bottom, err := e.Bottom(ctx, models.BottomCandidates)
	if err != nil {
		return page, err
	}
	page.Candidates = append(top, bottom...)

	if page.Parties, err = e.PartyRanking(ctx); err != nil {
		return page, err
	}
	if page.SexRatio, err = e.SexRatio(ctx); err != nil {
		return page, err
	}
	return page, nil
}

// CandidatePage returns a candidate, its vote count and its supporters'
// keywords. The error satisfies IsNotFound for unknown ids.
func (e *Engine) CandidatePage(ctx context.Context, id int64) (models.CandidatePage, error) {
	var page models.CandidatePage

	candidate, err := e.store.FindCandidateByID(ctx, id)
	if err != nil {
		return page, err
	}
	page.Candidate = candidate

	if page.Votes, err = e.store.CountVotesByCandidate(ctx, id); err != nil {
		return page, fmt.Errorf("failed to count votes of candidate %d: %w", id, err)
	}
	if page.Keywords, err = e.VoiceOfSupporters(ctx, []int64{id}); err != nil {
		return page, err
	}
	return page, nil
}

// PartyPage returns a party's vote total, its candidates and the keywords
// across all of them. Unknown parties yield an empty page, not an error.
func (e *Engine) PartyPage(ctx context.Context, party string) (models.PartyPage, error) {
	page := models.PartyPage{PoliticalParty: party}

	var err error
	if page.Votes, err = e.VotesForParty(ctx, party); err != nil {
		return page, err
	}
	if page.Candidates, err = e.store.FindCandidatesByParty(ctx, party); err != nil {
		return page, fmt.Errorf("failed to list candidates of party %q: %w", party, err)
	}

	ids := make([]int64, 0, len(page.Candidates))
	for _, c := range page.Candidates {
		ids = append(ids, c.ID)
	}
	if page.Keywords, err = e.VoiceOfSupporters(ctx, ids); err != nil {
		return page, err
	}
	return page, nil
}

// Candidates lists all candidates for the ballot form.
func (e *Engine) Candidates(ctx context.Context) ([]models.Candidate, error) {
	candidates, err := e.store.ListCandidates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	return candidates, nil
}
