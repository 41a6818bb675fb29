package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/wteng/netpath/internal/domain"
	"github.com/wteng/netpath/internal/planner"
)

// Planner orchestrates a planning request: it fetches candidate paths for all
// destinations concurrently, substitutes placeholders for destinations
// without any usable path, resolves intrinsic costs and runs the top-K
// combination search.
type Planner struct {
	repo   PathRepository
	logger *slog.Logger
	cfg    Config
}

// NewPlanner creates a planning service. Logger may be nil.
func NewPlanner(repo PathRepository, logger *slog.Logger, cfg Config) *Planner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Planner{
		repo:   repo,
		logger: logger,
		cfg:    cfg.withDefaults(),
	}
}

// Plan computes the ranked combinations for the request. A request with no
// destinations is valid and yields a single empty combination with cost 0.
// Fetch failures abort the plan; missing cost data never does.
func (p *Planner) Plan(ctx context.Context, req domain.PlanRequest) (domain.PlanResult, error) {
	if req.Source == "" {
		return domain.PlanResult{}, ErrMissingSource
	}

	destinations := dedupeNames(req.Destinations)
	candidates, err := p.fetchCandidates(ctx, req.Source, destinations)
	if err != nil {
		return domain.PlanResult{}, fmt.Errorf("fetch candidates from %s: %w", req.Source, err)
	}

	costs := p.resolveCosts(ctx, candidates)

	topK := req.TopK
	if topK <= 0 {
		topK = p.cfg.TopK
	}

	ranked := planner.Search(candidates, costs, topK)
	p.logger.Debug("plan computed",
		"source", req.Source,
		"destinations", len(destinations),
		"combinations", len(ranked),
	)

	return domain.PlanResult{
		Source:       req.Source,
		Destinations: destinations,
		Combinations: ranked,
	}, nil
}

// fetchCandidates retrieves each destination's candidate list over the worker
// pool. Every destination owns one slot, so completion order is irrelevant.
func (p *Planner) fetchCandidates(ctx context.Context, source string, destinations []string) (map[string][]domain.Candidate, error) {
	lists := make([][]domain.Candidate, len(destinations))

	err := runWorkers(ctx, p.cfg.FetchWorkers, len(destinations), func(idx int) error {
		cands, err := p.repo.CandidatePaths(ctx, source, destinations[idx], p.cfg.CandidateLimit)
		if err != nil {
			return err
		}
		lists[idx] = cands
		return nil
	})
	if err != nil {
		return nil, err
	}

	candidates := make(map[string][]domain.Candidate, len(destinations))
	for idx, dest := range destinations {
		if len(lists[idx]) == 0 {
			p.logger.Warn("no candidate paths, substituting placeholder",
				"source", source, "destination", dest)
			candidates[dest] = []domain.Candidate{domain.UnavailableCandidate()}
			continue
		}
		candidates[dest] = lists[idx]
	}
	return candidates, nil
}

// resolveCosts builds the cost lookup for every distinct interior node and
// edge across the fetched candidates. Lookup failures degrade to cost 0 with
// a warning; missing cost data under-counts a combination, it never aborts
// the plan.
func (p *Planner) resolveCosts(ctx context.Context, candidates map[string][]domain.Candidate) planner.CostLookup {
	nodeSet := make(map[string]bool)
	edgeSet := make(map[planner.EdgeKey]bool)
	for _, list := range candidates {
		for _, cand := range list {
			if cand.Unavailable || cand.Path.IsEmpty() {
				continue
			}
			for _, name := range cand.Path.Nodes[1:] {
				nodeSet[name] = true
			}
			for _, edge := range cand.Path.EdgeList() {
				edgeSet[planner.EdgeKey{From: edge.From, To: edge.To}] = true
			}
		}
	}

	nodes := make([]string, 0, len(nodeSet))
	for name := range nodeSet {
		nodes = append(nodes, name)
	}
	edges := make([]planner.EdgeKey, 0, len(edgeSet))
	for key := range edgeSet {
		edges = append(edges, key)
	}

	costs := planner.NewStaticCosts()
	var mu sync.Mutex

	_ = runWorkers(ctx, p.cfg.FetchWorkers, len(nodes)+len(edges), func(idx int) error {
		if idx < len(nodes) {
			name := nodes[idx]
			cost, err := p.repo.NodeCost(ctx, name)
			if err != nil {
				p.logger.Warn("node cost lookup failed, defaulting to 0", "node", name, "error", err)
				return nil
			}
			mu.Lock()
			costs.Nodes[name] = cost
			mu.Unlock()
			return nil
		}

		key := edges[idx-len(nodes)]
		cost, err := p.repo.EdgeCost(ctx, key.From, key.To)
		if err != nil {
			p.logger.Warn("edge cost lookup failed, defaulting to 0", "from", key.From, "to", key.To, "error", err)
			return nil
		}
		mu.Lock()
		costs.Edges[key] = cost
		mu.Unlock()
		return nil
	})

	return costs
}

func dedupeNames(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := make([]string, 0, len(names))
	for _, name := range names {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}
