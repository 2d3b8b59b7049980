// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain, tally, request, and response types.

# Domain Types

Rows of the three election tables:

  - User: citizen with a unique mynumber and a vote quota
  - Candidate: name (unique), political party, sex
  - Vote: one vote row (user, candidate, keyword)

A ballot worth N votes is stored as N identical Vote rows.

# Tally Types

Rows produced by the aggregation queries:

  - CandidateResult: candidate plus vote_count (zero-vote candidates included)
  - PartyResult: political party plus vote_count
  - SexResult: stored sex value plus vote_count
  - SexRatio: the man/woman summary shown on the index page

SexOf maps stored values ("male"/"female", or the Japanese seed data's
"男"/"女") to SexMan and SexWoman.

# Request Types

  - CastRequest: mynumber, candidate, keyword, vote_count

# Response Types

  - CastResult: inserted row count and success message
  - IndexResponse: top/bottom candidates, party ranking, sex ratio
  - CandidatePage, PartyPage: detail pages with supporter keywords
  - VoteFormResponse: candidate list plus cast outcome message
  - ErrorResponse: error, message

# Constants

Page limits:

	TopCandidates    = 10
	BottomCandidates = 1
	SupporterVoices  = 10
*/
package models
