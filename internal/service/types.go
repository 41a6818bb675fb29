package service

import (
	"context"
	"errors"

	"github.com/wteng/netpath/internal/domain"
)

// PathRepository is the graph-backed collaborator the planner consumes:
// ranked candidate paths per destination plus point cost lookups.
type PathRepository interface {
	CandidatePaths(ctx context.Context, sourceName, destinationName string, limit int) ([]domain.Candidate, error)
	NodeCost(ctx context.Context, nodeName string) (float64, error)
	EdgeCost(ctx context.Context, fromName, toName string) (float64, error)
}

// Config tunes the planning service.
type Config struct {
	// TopK is the default number of ranked combinations per plan.
	TopK int
	// CandidateLimit caps the candidate paths fetched per destination.
	CandidateLimit int
	// FetchWorkers bounds the concurrent per-destination fetches.
	FetchWorkers int
}

const (
	defaultTopK           = 5
	defaultCandidateLimit = 5
	defaultFetchWorkers   = 4
)

func (c Config) withDefaults() Config {
	if c.TopK <= 0 {
		c.TopK = defaultTopK
	}
	if c.CandidateLimit <= 0 {
		c.CandidateLimit = defaultCandidateLimit
	}
	if c.FetchWorkers <= 0 {
		c.FetchWorkers = defaultFetchWorkers
	}
	return c
}

// ErrMissingSource indicates a plan request without a source device.
var ErrMissingSource = errors.New("source device name is required")
