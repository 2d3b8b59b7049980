// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/election/cliparse"
	"github.com/danielhkuo/election/election"
	"github.com/danielhkuo/election/handlers"
	"github.com/danielhkuo/election/middleware"
)

func NewRouter(engine *election.Engine, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	votingHandler := handlers.NewVotingHandler(engine, cfg)
	resultsHandler := handlers.NewResultsHandler(engine)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Tallies (public)
	mux.HandleFunc("GET /{$}", middleware.WithLogging(resultsHandler.Index))
	mux.HandleFunc("GET /results", middleware.WithLogging(resultsHandler.Results))
	mux.HandleFunc("GET /candidates/{id}", middleware.WithLogging(resultsHandler.Candidate))
	mux.HandleFunc("GET /political_parties/{name}", middleware.WithLogging(resultsHandler.PoliticalParty))

	// Voting
	mux.HandleFunc("GET /vote", middleware.WithLogging(votingHandler.VoteForm))
	mux.HandleFunc("POST /vote", middleware.WithLogging(votingHandler.Cast))

	// Reset (administrative, no parameters)
	mux.HandleFunc("GET /initialize", middleware.WithLogging(votingHandler.Initialize))
	mux.HandleFunc("POST /admin/reset", middleware.WithLogging(votingHandler.Initialize))

	return mux
}
