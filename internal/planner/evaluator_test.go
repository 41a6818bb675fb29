package planner

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wteng/netpath/internal/domain"
)

func realCandidate(rawCost float64, nodes ...string) domain.Candidate {
	return domain.Candidate{
		Path:    domain.Path{Nodes: nodes},
		RawCost: rawCost,
	}
}

func choice(dest string, cand domain.Candidate) domain.ChosenPath {
	return domain.ChosenPath{Destination: dest, Candidate: cand}
}

func costsWithNodes(nodes map[string]float64) *StaticCosts {
	costs := NewStaticCosts()
	for name, cost := range nodes {
		costs.Nodes[name] = cost
	}
	return costs
}

func TestEvaluate_SinglePathHasNoOverlap(t *testing.T) {
	costs := costsWithNodes(map[string]float64{"X": 1})

	ev := Evaluate([]domain.ChosenPath{
		choice("B", realCandidate(10, "A", "X", "B")),
	}, costs)

	require.Equal(t, 10.0, ev.TrueCost)
	require.Empty(t, ev.OverlapNodes)
}

func TestEvaluate_DisjointPathsSumRawCosts(t *testing.T) {
	costs := costsWithNodes(map[string]float64{"X": 1, "Y": 1})

	ev := Evaluate([]domain.ChosenPath{
		choice("B", realCandidate(10, "A", "X", "B")),
		choice("C", realCandidate(7, "A", "Y", "C")),
	}, costs)

	require.Equal(t, 17.0, ev.TrueCost)
	require.Empty(t, ev.OverlapNodes)
}

func TestEvaluate_SharedInteriorNodeSubtractedOnce(t *testing.T) {
	costs := costsWithNodes(map[string]float64{"M": 3})

	ev := Evaluate([]domain.ChosenPath{
		choice("B", realCandidate(10, "A", "M", "B")),
		choice("C", realCandidate(8, "A", "M", "C")),
	}, costs)

	require.Equal(t, 15.0, ev.TrueCost)
	require.Equal(t, []string{"M"}, ev.OverlapNodes)
}

func TestEvaluate_SharedEdgeSubtracted(t *testing.T) {
	costs := costsWithNodes(map[string]float64{"M": 3})
	costs.Edges[EdgeKey{From: "A", To: "M"}] = 2

	ev := Evaluate([]domain.ChosenPath{
		choice("B", realCandidate(10, "A", "M", "B")),
		choice("C", realCandidate(8, "A", "M", "C")),
	}, costs)

	// Both the shared node M and the shared hop A->M are double-counted.
	require.Equal(t, 13.0, ev.TrueCost)
	require.Equal(t, []string{"M"}, ev.OverlapNodes)
}

func TestEvaluate_NodeSharedByThreePathsChargedOnceOverall(t *testing.T) {
	costs := costsWithNodes(map[string]float64{"M": 3})

	ev := Evaluate([]domain.ChosenPath{
		choice("B", realCandidate(10, "A", "M", "B")),
		choice("C", realCandidate(8, "A", "M", "C")),
		choice("D", realCandidate(6, "A", "M", "D")),
	}, costs)

	// Raw total counts M three times; subtracting twice leaves it charged once.
	require.Equal(t, 10.0+8.0+6.0-3.0-3.0, ev.TrueCost)
	require.Equal(t, []string{"M"}, ev.OverlapNodes)
}

func TestEvaluate_SourceNodeExcludedFromOverlap(t *testing.T) {
	// Every path starts at the source; it must never count as overlap.
	costs := costsWithNodes(map[string]float64{"A": 100})

	ev := Evaluate([]domain.ChosenPath{
		choice("B", realCandidate(10, "A", "X", "B")),
		choice("C", realCandidate(7, "A", "Y", "C")),
	}, costs)

	require.Equal(t, 17.0, ev.TrueCost)
	require.Empty(t, ev.OverlapNodes)
}

func TestEvaluate_PlaceholderContributesNothing(t *testing.T) {
	costs := costsWithNodes(map[string]float64{"X": 1})

	ev := Evaluate([]domain.ChosenPath{
		choice("B", realCandidate(10, "A", "X", "B")),
		choice("C", domain.UnavailableCandidate()),
	}, costs)

	require.Equal(t, 10.0, ev.TrueCost)
	require.Empty(t, ev.OverlapNodes)
}

func TestEvaluate_EmptyInput(t *testing.T) {
	ev := Evaluate(nil, nil)

	require.Equal(t, 0.0, ev.TrueCost)
	require.Empty(t, ev.OverlapNodes)
}

func TestEvaluate_NilCostLookupDefaultsToZero(t *testing.T) {
	ev := Evaluate([]domain.ChosenPath{
		choice("B", realCandidate(10, "A", "M", "B")),
		choice("C", realCandidate(8, "A", "M", "C")),
	}, nil)

	// Overlap is detected but priced at 0 without a lookup.
	require.Equal(t, 18.0, ev.TrueCost)
	require.Equal(t, []string{"M"}, ev.OverlapNodes)
}

func TestEvaluate_OverlapNodesSorted(t *testing.T) {
	costs := costsWithNodes(map[string]float64{"M": 1, "K": 1})

	ev := Evaluate([]domain.ChosenPath{
		choice("B", realCandidate(10, "A", "M", "K", "B")),
		choice("C", realCandidate(8, "A", "M", "K", "C")),
	}, costs)

	require.Equal(t, []string{"K", "M"}, ev.OverlapNodes)
}
