// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package election checks ballots against citizens' vote quotas and computes
the tallies shown on the site.

# Engine

An Engine works on top of a Store (store.DB in production):

	engine := election.New(st,
		election.WithLogSalt(cfg.LogSalt),
	)

The engine keeps no vote state. Every tally is recomputed from the store.

# Casting

Cast applies these rules in order and stops at the first failure:

 1. the citizen's mynumber must exist
 2. votes already cast plus vote_count must not exceed the citizen's quota
 3. a candidate name must be given
 4. the candidate must exist
 5. a keyword must be given

A failed rule is returned as a *Rejection:

	result, err := engine.Cast(ctx, req)
	if r, ok := election.AsRejection(err); ok {
		// show r.Error() to the voter
	}

Any other error is a store failure. Accepted ballots write vote_count
identical rows in one transaction. A negative vote_count writes nothing.

The quota check and the insert are separate store calls. Two concurrent
ballots of one citizen can both pass the check. WithSerializedQuota runs
them under a per-citizen lock inside the process.

# Tallies

  - OverallResults, Top, Bottom: candidates by vote count (ties by id)
  - PartyRanking, VotesForParty: per-party totals
  - SexRanking, SexRatio: per-sex totals
  - VoiceOfSupporters: the ten most frequent keywords for a set of candidates
  - Index, CandidatePage, PartyPage: the per-page combinations of the above

# Reset

Reset deletes every vote and keeps citizens and candidates.
*/
package election
