// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"context"
	"fmt"

	"github.com/danielhkuo/election/auth"
	"github.com/danielhkuo/election/models"
)

// Cast validates a ballot and, when it passes, writes VoteCount identical vote
// rows for it. Rules are checked in a fixed order and the first failing one is
// returned as a *Rejection. Any other error is a store failure.
//
// Unless the engine was built with WithSerializedQuota, the quota check and
// the insert are separate store calls, so concurrent ballots of one citizen
// may both pass the check.
func (e *Engine) Cast(ctx context.Context, req models.CastRequest) (models.CastResult, error) {
	user, err := e.store.FindUserByMynumber(ctx, req.Mynumber)
	if IsNotFound(err) {
		e.logger.Info("ballot rejected", "reason", ReasonInvalidPersonalInfo,
			"mynumber_hash", auth.HashIdentifier(req.Mynumber, e.salt))
		return models.CastResult{}, reject(ReasonInvalidPersonalInfo)
	}
	if err != nil {
		return models.CastResult{}, fmt.Errorf("failed to find user: %w", err)
	}

	if e.userLocks != nil {
		unlock := e.userLocks.lock(user.ID)
		defer unlock()
	}

	voteCount := req.VoteCount
	if voteCount < 0 {
		voteCount = 0
	}

	alreadyCast, err := e.store.CountVotesByUser(ctx, user.ID)
	if err != nil {
		return models.CastResult{}, fmt.Errorf("failed to count votes of user %d: %w", user.ID, err)
	}

	// Compared against the remaining quota so a huge vote_count cannot wrap
	if voteCount > user.Votes-alreadyCast {
		e.logger.Info("ballot rejected", "reason", ReasonQuotaExceeded, "user_id", user.ID,
			"quota", user.Votes, "already_cast", alreadyCast, "requested", voteCount)
		return models.CastResult{}, reject(ReasonQuotaExceeded)
	}

	if req.Candidate == "" {
		return models.CastResult{}, reject(ReasonCandidateRequired)
	}

	candidate, err := e.store.FindCandidateByName(ctx, req.Candidate)
	if IsNotFound(err) {
		return models.CastResult{}, reject(ReasonCandidateInvalid)
	}
	if err != nil {
		return models.CastResult{}, fmt.Errorf("failed to find candidate: %w", err)
	}

	if req.Keyword == "" {
		return models.CastResult{}, reject(ReasonKeywordRequired)
	}

	// A ballot worth N votes is N identical rows; keyword tallies count rows.
	if err := e.store.InsertVotes(ctx, user.ID, candidate.ID, req.Keyword, voteCount); err != nil {
		return models.CastResult{}, fmt.Errorf("failed to record votes: %w", err)
	}

	e.logger.Info("ballot recorded", "user_id", user.ID, "candidate_id", candidate.ID, "votes", voteCount)

	return models.CastResult{
		UserID:      user.ID,
		CandidateID: candidate.ID,
		Inserted:    voteCount,
		Message:     MessageVoteRecorded,
	}, nil
}
