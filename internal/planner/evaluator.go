package planner

import (
	"sort"

	"github.com/wteng/netpath/internal/domain"
)

// Evaluation is the priced view of a set of paths chosen together.
type Evaluation struct {
	// TrueCost is the sum of raw costs minus everything double-counted by
	// node or edge sharing between the paths.
	TrueCost float64
	// OverlapNodes lists device names that appeared in more than one path,
	// sorted for deterministic output.
	OverlapNodes []string
}

// Evaluate prices a set of candidates chosen together, one per destination.
//
// Accounting is pairwise first-occurrence: walking the candidates in order,
// the first path to use a node or edge pays for it; every later occurrence of
// the same element adds its cost to the overlap total, so an element used by
// n paths is charged exactly once in the result. The source device (first
// node of every path) is shared by construction and excluded. Unavailable
// placeholders and paths without nodes contribute nothing.
//
// Evaluate is a pure function; it is safe to call from concurrent search
// branches sharing the same CostLookup.
func Evaluate(chosen []domain.ChosenPath, costs CostLookup) Evaluation {
	if costs == nil {
		costs = zeroCosts{}
	}

	var rawTotal, overlapCost float64
	seenNodes := make(map[string]bool)
	seenEdges := make(map[EdgeKey]bool)
	overlapNodes := make(map[string]bool)

	for _, choice := range chosen {
		cand := choice.Candidate
		if cand.Unavailable || cand.Path.IsEmpty() {
			continue
		}
		rawTotal += cand.RawCost

		for _, name := range interiorNodes(cand.Path) {
			if seenNodes[name] {
				overlapCost += costs.NodeCost(name)
				overlapNodes[name] = true
				continue
			}
			seenNodes[name] = true
		}

		for _, key := range pathEdges(cand.Path) {
			if seenEdges[key] {
				overlapCost += costs.EdgeCost(key.From, key.To)
				continue
			}
			seenEdges[key] = true
		}
	}

	names := make([]string, 0, len(overlapNodes))
	for name := range overlapNodes {
		names = append(names, name)
	}
	sort.Strings(names)

	return Evaluation{
		TrueCost:     rawTotal - overlapCost,
		OverlapNodes: names,
	}
}

// interiorNodes returns the path's device names excluding the source,
// deduplicated while preserving order.
func interiorNodes(p domain.Path) []string {
	if len(p.Nodes) < 2 {
		return nil
	}
	seen := make(map[string]bool, len(p.Nodes)-1)
	names := make([]string, 0, len(p.Nodes)-1)
	for _, name := range p.Nodes[1:] {
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

// pathEdges returns the path's directed hops, deduplicated.
func pathEdges(p domain.Path) []EdgeKey {
	edges := p.EdgeList()
	if len(edges) == 0 {
		return nil
	}
	seen := make(map[EdgeKey]bool, len(edges))
	keys := make([]EdgeKey, 0, len(edges))
	for _, e := range edges {
		key := EdgeKey{From: e.From, To: e.To}
		if seen[key] {
			continue
		}
		seen[key] = true
		keys = append(keys, key)
	}
	return keys
}
