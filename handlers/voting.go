// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/danielhkuo/election/auth"
	"github.com/danielhkuo/election/cliparse"
	"github.com/danielhkuo/election/election"
	"github.com/danielhkuo/election/middleware"
	"github.com/danielhkuo/election/models"
)

type VotingHandler struct {
	engine *election.Engine
	cfg    cliparse.Config
}

func NewVotingHandler(engine *election.Engine, cfg cliparse.Config) *VotingHandler {
	return &VotingHandler{engine: engine, cfg: cfg}
}

// VoteForm handles GET /vote
func (h *VotingHandler) VoteForm(w http.ResponseWriter, r *http.Request) {
	candidates, err := h.engine.Candidates(r.Context())
	if err != nil {
		slog.Error("failed to list candidates", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VoteFormResponse{
		Candidates: candidates,
		Message:    "",
	})
}

// Cast handles POST /vote
// Accepts a form (mynumber, candidate, keyword, vote_count) or the same
// fields as JSON. Rejected ballots are a normal 200 response carrying the
// reason; only store failures are errors.
func (h *VotingHandler) Cast(w http.ResponseWriter, r *http.Request) {
	var req models.CastRequest
	if middleware.IsJSON(r) {
		if err := middleware.ParseJSONBody(r, &req); err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid form")
			return
		}
		req = models.CastRequest{
			Mynumber:  r.PostFormValue("mynumber"),
			Candidate: r.PostFormValue("candidate"),
			Keyword:   r.PostFormValue("keyword"),
			VoteCount: ParseVoteCount(r.PostFormValue("vote_count")),
		}
	}

	result, castErr := h.engine.Cast(r.Context(), req)
	rejection, rejected := election.AsRejection(castErr)
	if castErr != nil && !rejected {
		slog.Error("failed to cast ballot", "error", castErr,
			"request_id", middleware.RequestID(r.Context()))
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	// The form is re-rendered with the candidate list either way
	candidates, err := h.engine.Candidates(r.Context())
	if err != nil {
		slog.Error("failed to list candidates", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	resp := models.VoteFormResponse{Candidates: candidates}
	if rejected {
		resp.Message = rejection.Error()
		resp.Reason = string(rejection.Reason)
	} else {
		resp.Message = result.Message
		resp.Accepted = true
	}

	slog.Info("ballot processed",
		"request_id", middleware.RequestID(r.Context()),
		"accepted", resp.Accepted,
		"reason", resp.Reason,
		"client", auth.HashIdentifier(middleware.GetClientIP(r), h.cfg.LogSalt),
	)

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// Initialize handles GET /initialize and POST /admin/reset
func (h *VotingHandler) Initialize(w http.ResponseWriter, r *http.Request) {
	if err := h.engine.Reset(r.Context()); err != nil {
		slog.Error("failed to reset votes", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{
		Message: "votes reset",
	})
}

// ParseVoteCount reads the leading integer of a form value the way a lenient
// form parser would: "3" and "3 votes" are 3, "" and "abc" are 0. Values
// beyond the int range become math.MaxInt or math.MinInt.
func ParseVoteCount(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if errors.Is(err, strconv.ErrRange) {
		// Out of range saturates so that the quota check still rejects it
		if s[0] == '-' {
			return math.MinInt
		}
		return math.MaxInt
	}
	if err != nil {
		return 0
	}
	return n
}
