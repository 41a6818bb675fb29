package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wteng/netpath/internal/domain"
)

type stubRepository struct {
	mu         sync.Mutex
	candidates map[string][]domain.Candidate
	nodeCosts  map[string]float64
	edgeCosts  map[[2]string]float64

	candidateErr error
	nodeCostErr  error

	fetchedDestinations []string
}

func (s *stubRepository) CandidatePaths(_ context.Context, _, destinationName string, _ int) ([]domain.Candidate, error) {
	s.mu.Lock()
	s.fetchedDestinations = append(s.fetchedDestinations, destinationName)
	s.mu.Unlock()

	if s.candidateErr != nil {
		return nil, s.candidateErr
	}
	return s.candidates[destinationName], nil
}

func (s *stubRepository) NodeCost(_ context.Context, nodeName string) (float64, error) {
	if s.nodeCostErr != nil {
		return 0, s.nodeCostErr
	}
	return s.nodeCosts[nodeName], nil
}

func (s *stubRepository) EdgeCost(_ context.Context, fromName, toName string) (float64, error) {
	return s.edgeCosts[[2]string{fromName, toName}], nil
}

func candidate(rawCost float64, nodes ...string) domain.Candidate {
	return domain.Candidate{
		Path:    domain.Path{Nodes: nodes},
		RawCost: rawCost,
	}
}

func TestPlanner_Plan_SharedNodeDiscount(t *testing.T) {
	repo := &stubRepository{
		candidates: map[string][]domain.Candidate{
			"D1": {candidate(10, "A", "M", "D1")},
			"D2": {candidate(8, "A", "M", "D2")},
		},
		nodeCosts: map[string]float64{"M": 3},
	}
	planner := NewPlanner(repo, nil, Config{})

	result, err := planner.Plan(context.Background(), domain.PlanRequest{
		Source:       "A",
		Destinations: []string{"D1", "D2"},
	})

	require.NoError(t, err)
	require.Len(t, result.Combinations, 1)
	require.Equal(t, 15.0, result.Combinations[0].TrueCost)
	require.Equal(t, []string{"M"}, result.Combinations[0].OverlapNodes)
}

func TestPlanner_Plan_EmptyCandidateListGetsPlaceholder(t *testing.T) {
	repo := &stubRepository{
		candidates: map[string][]domain.Candidate{
			"D1": {candidate(10, "A", "X", "D1")},
		},
	}
	planner := NewPlanner(repo, nil, Config{})

	result, err := planner.Plan(context.Background(), domain.PlanRequest{
		Source:       "A",
		Destinations: []string{"D1", "D2"},
	})

	require.NoError(t, err)
	require.Len(t, result.Combinations, 1)
	require.Equal(t, 10.0, result.Combinations[0].TrueCost)

	byDest := make(map[string]domain.Candidate)
	for _, choice := range result.Combinations[0].Combination.Paths {
		byDest[choice.Destination] = choice.Candidate
	}
	require.True(t, byDest["D2"].Unavailable)
	require.Equal(t, 0.0, byDest["D2"].RawCost)
}

func TestPlanner_Plan_MissingSource(t *testing.T) {
	planner := NewPlanner(&stubRepository{}, nil, Config{})

	_, err := planner.Plan(context.Background(), domain.PlanRequest{})

	require.ErrorIs(t, err, ErrMissingSource)
}

func TestPlanner_Plan_NoDestinationsIsIdentity(t *testing.T) {
	planner := NewPlanner(&stubRepository{}, nil, Config{})

	result, err := planner.Plan(context.Background(), domain.PlanRequest{Source: "A"})

	require.NoError(t, err)
	require.Len(t, result.Combinations, 1)
	require.Equal(t, 0.0, result.Combinations[0].TrueCost)
	require.Empty(t, result.Combinations[0].Combination.Paths)
}

func TestPlanner_Plan_FetchErrorAborts(t *testing.T) {
	repo := &stubRepository{candidateErr: errors.New("bolt connection refused")}
	planner := NewPlanner(repo, nil, Config{})

	_, err := planner.Plan(context.Background(), domain.PlanRequest{
		Source:       "A",
		Destinations: []string{"D1"},
	})

	require.Error(t, err)
	require.Contains(t, err.Error(), "bolt connection refused")
}

func TestPlanner_Plan_CostLookupFailureDegradesToZero(t *testing.T) {
	repo := &stubRepository{
		candidates: map[string][]domain.Candidate{
			"D1": {candidate(10, "A", "M", "D1")},
			"D2": {candidate(8, "A", "M", "D2")},
		},
		nodeCostErr: errors.New("cost lookup unavailable"),
	}
	planner := NewPlanner(repo, nil, Config{})

	result, err := planner.Plan(context.Background(), domain.PlanRequest{
		Source:       "A",
		Destinations: []string{"D1", "D2"},
	})

	// Overlap is still detected but priced at 0, so nothing is subtracted.
	require.NoError(t, err)
	require.Len(t, result.Combinations, 1)
	require.Equal(t, 18.0, result.Combinations[0].TrueCost)
	require.Equal(t, []string{"M"}, result.Combinations[0].OverlapNodes)
}

func TestPlanner_Plan_DuplicateDestinationsCollapsed(t *testing.T) {
	repo := &stubRepository{
		candidates: map[string][]domain.Candidate{
			"D1": {candidate(10, "A", "X", "D1")},
		},
	}
	planner := NewPlanner(repo, nil, Config{})

	result, err := planner.Plan(context.Background(), domain.PlanRequest{
		Source:       "A",
		Destinations: []string{"D1", "D1", ""},
	})

	require.NoError(t, err)
	require.Equal(t, []string{"D1"}, result.Destinations)
	require.Len(t, repo.fetchedDestinations, 1)
}

func TestPlanner_Plan_FetchesAllDestinationsConcurrently(t *testing.T) {
	candidates := make(map[string][]domain.Candidate)
	var destinations []string
	for _, dest := range []string{"D1", "D2", "D3", "D4", "D5", "D6", "D7", "D8"} {
		candidates[dest] = []domain.Candidate{candidate(5, "A", "X"+dest, dest)}
		destinations = append(destinations, dest)
	}
	repo := &stubRepository{candidates: candidates}
	planner := NewPlanner(repo, nil, Config{FetchWorkers: 3})

	result, err := planner.Plan(context.Background(), domain.PlanRequest{
		Source:       "A",
		Destinations: destinations,
	})

	require.NoError(t, err)
	require.ElementsMatch(t, destinations, repo.fetchedDestinations)
	require.Equal(t, destinations, result.Destinations)
	require.NotEmpty(t, result.Combinations)
	require.Len(t, result.Combinations[0].Combination.Paths, len(destinations))
}
