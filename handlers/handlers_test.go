// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/danielhkuo/election/election"
	"github.com/danielhkuo/election/store"
	"github.com/danielhkuo/election/testutil"
)

// newTestMux wires both handlers onto the production route patterns
func newTestMux(t *testing.T, conn *sql.DB) *http.ServeMux {
	t.Helper()

	st, err := store.New(conn, testutil.DBType())
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	cfg := testutil.GetTestConfig()
	engine := election.New(st,
		election.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		election.WithLogSalt(cfg.LogSalt),
	)

	voting := NewVotingHandler(engine, cfg)
	results := NewResultsHandler(engine)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", results.Index)
	mux.HandleFunc("GET /results", results.Results)
	mux.HandleFunc("GET /candidates/{id}", results.Candidate)
	mux.HandleFunc("GET /political_parties/{name}", results.PoliticalParty)
	mux.HandleFunc("GET /vote", voting.VoteForm)
	mux.HandleFunc("POST /vote", voting.Cast)
	mux.HandleFunc("GET /initialize", voting.Initialize)
	mux.HandleFunc("POST /admin/reset", voting.Initialize)
	return mux
}
