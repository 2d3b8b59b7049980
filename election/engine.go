// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

import (
	"context"
	"log/slog"
	"sync"

	"github.com/danielhkuo/election/models"
)

// Store is the data access the engine needs. store.DB implements it.
// Lookups report misses with an error for which IsNotFound returns true.
type Store interface {
	FindUserByMynumber(ctx context.Context, mynumber string) (models.User, error)
	CountVotesByUser(ctx context.Context, userID int64) (int, error)
	FindCandidateByName(ctx context.Context, name string) (models.Candidate, error)
	FindCandidateByID(ctx context.Context, id int64) (models.Candidate, error)
	FindCandidatesByParty(ctx context.Context, party string) ([]models.Candidate, error)
	ListCandidates(ctx context.Context) ([]models.Candidate, error)
	InsertVotes(ctx context.Context, userID, candidateID int64, keyword string, count int) error
	DeleteAllVotes(ctx context.Context) error
	CountVotesByCandidate(ctx context.Context, candidateID int64) (int, error)

	CandidateTallies(ctx context.Context, limit int) ([]models.CandidateResult, error)
	LowestCandidateTallies(ctx context.Context, limit int) ([]models.CandidateResult, error)
	PartyTallies(ctx context.Context) ([]models.PartyResult, error)
	PartyVoteCount(ctx context.Context, party string) (int, bool, error)
	SexTallies(ctx context.Context) ([]models.SexResult, error)
	TopKeywords(ctx context.Context, candidateIDs []int64, limit int) ([]string, error)
}

// Engine validates ballots and computes tallies against a Store.
// It holds no vote state of its own; every read goes to the store.
type Engine struct {
	store  Store
	logger *slog.Logger
	salt   string

	// nil unless WithSerializedQuota is set
	userLocks *lockStripes
}

type Option func(*Engine)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLogSalt sets the key used to hash citizen numbers before logging them.
func WithLogSalt(salt string) Option {
	return func(e *Engine) {
		e.salt = salt
	}
}

// WithSerializedQuota makes the quota check and the vote insert of one user
// run under a per-user lock, closing the check-then-insert race between
// concurrent ballots of the same citizen within this process.
func WithSerializedQuota() Option {
	return func(e *Engine) {
		e.userLocks = &lockStripes{}
	}
}

func New(store Store, opts ...Option) *Engine {
	e := &Engine{
		store:  store,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

const stripeCount = 64

type lockStripes struct {
	mu [stripeCount]sync.Mutex
}

func (l *lockStripes) lock(userID int64) func() {
	m := &l.mu[uint64(userID)%stripeCount]
	m.Lock()
	return m.Unlock
}
