// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the election server.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(engine, cfg)

# Endpoints

Health:

	GET /health

Tallies (public):

	GET /                         - Top 10 + lowest candidate, parties, sex ratio
	GET /results                  - Every candidate with its vote count
	GET /candidates/{id}          - Candidate, votes, supporter keywords
	GET /political_parties/{name} - Party votes, candidates, keywords

Voting:

	GET  /vote - Candidate list for the ballot form
	POST /vote - Cast a ballot

Reset (administrative):

	GET  /initialize  - Delete all votes
	POST /admin/reset - Same, for clients that refuse side effects on GET

# Handler Initialization

The router creates handler instances with dependency injection:

	votingHandler := handlers.NewVotingHandler(engine, cfg)
	resultsHandler := handlers.NewResultsHandler(engine, cfg)

All handlers share the election engine and configuration.
*/
package router
