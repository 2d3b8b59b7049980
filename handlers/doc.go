// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the election server.

# Handler Types

Each handler is a struct holding the election engine (VotingHandler also
keeps the config for its log salt):

  - VotingHandler: ballot form, casting, reset
  - ResultsHandler: index page, overall results, candidate and party pages

Handlers are created via constructor functions:

	votingHandler := handlers.NewVotingHandler(engine, cfg)

# Casting

	POST /vote → Cast

The body is a form (mynumber, candidate, keyword, vote_count) or the same
fields as JSON. vote_count is read leniently with ParseVoteCount: a value
without a leading integer counts as 0.

Validation failures are not HTTP errors. The response is 200 with the
candidate list, accepted=false, a reason code and the message to show:

	{"candidates": [...], "message": "vote quota exceeded.", "accepted": false, "reason": "vote_quota_exceeded"}

Only store failures produce a 500.

# Results

	GET /                         → Index
	GET /results                  → Results
	GET /candidates/{id}          → Candidate (unknown id redirects to /)
	GET /political_parties/{name} → PoliticalParty

Results are recomputed from the vote table on every request.

# Reset

	GET /initialize, POST /admin/reset → Initialize

Deletes all votes. Calling it repeatedly is harmless.
*/
package handlers
