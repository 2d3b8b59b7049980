// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/election/election"
	"github.com/danielhkuo/election/middleware"
)

type ResultsHandler struct {
	engine *election.Engine
}

func NewResultsHandler(engine *election.Engine) *ResultsHandler {
	return &ResultsHandler{engine: engine}
}

// Index handles GET /
// Top 10 candidates followed by the lowest one, the party ranking and the
// man/woman vote split.
func (h *ResultsHandler) Index(w http.ResponseWriter, r *http.Request) {
	page, err := h.engine.Index(r.Context())
	if err != nil {
		slog.Error("failed to compute index tallies", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, page)
}

// Results handles GET /results
func (h *ResultsHandler) Results(w http.ResponseWriter, r *http.Request) {
	results, err := h.engine.OverallResults(r.Context())
	if err != nil {
		slog.Error("failed to compute results", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, results)
}

// Candidate handles GET /candidates/{id}
// Unknown candidates redirect to the top page.
func (h *ResultsHandler) Candidate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	page, err := h.engine.CandidatePage(r.Context(), id)
	if election.IsNotFound(err) {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}
	if err != nil {
		slog.Error("failed to load candidate", "error", err, "candidate_id", id)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, page)
}

// PoliticalParty handles GET /political_parties/{name}
func (h *ResultsHandler) PoliticalParty(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	if name == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "name is required")
		return
	}

	page, err := h.engine.PartyPage(r.Context(), name)
	if err != nil {
		slog.Error("failed to load party", "error", err, "political_party", name)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, page)
}
