package planner

import (
	"sort"

	"github.com/wteng/netpath/internal/domain"
)

// DefaultTopK is the number of ranked combinations returned when the caller
// does not ask for a specific K.
const DefaultTopK = 5

// Search finds the K cheapest combinations of one candidate path per
// destination, priced by the overlap-aware evaluator.
//
// It is a recursive descent over the unassigned destinations: each step picks
// a destination, tries each of its candidates, re-prices the enlarged partial
// combination and recurses into the rest. Sub-results are memoized on
// (running cost, chosen path set, unassigned set) so equivalent partial states
// reached through different selection orders are computed once. Partial state
// is copied on recurse; sibling branches never alias.
//
// A destination whose candidate list is empty, or contains only unavailable
// placeholders, is covered by a single zero-cost placeholder so every
// combination spans the full destination set. An empty destination map yields
// one empty combination with cost 0.
//
// There is no cost-bound pruning: the cross-product is explored in full and
// sorted, which is tractable only because candidate lists are capped at a
// handful of entries per destination. This is a deliberate scaling limit for
// interactive destination counts, not something to extend to large fan-outs.
//
// Given identical inputs, Search returns identical result sets: destinations
// are iterated in sorted order, candidates in list order, and ties keep their
// first-discovered position.
func Search(candidates map[string][]domain.Candidate, costs CostLookup, k int) []domain.RankedCombination {
	if k <= 0 {
		k = DefaultTopK
	}
	if costs == nil {
		costs = zeroCosts{}
	}

	normalized := make(map[string][]domain.Candidate, len(candidates))
	dests := make([]string, 0, len(candidates))
	for dest, list := range candidates {
		normalized[dest] = usableCandidates(list)
		dests = append(dests, dest)
	}
	sort.Strings(dests)

	s := &search{candidates: normalized, costs: costs, k: k, memo: newMemoTable()}
	results := s.expand(dests, nil, 0)

	ranked := make([]domain.RankedCombination, 0, len(results))
	for _, res := range results {
		ev := Evaluate(res.chosen, costs)
		ranked = append(ranked, domain.RankedCombination{
			Combination:  domain.Combination{Paths: res.chosen},
			TrueCost:     res.cost,
			OverlapNodes: ev.OverlapNodes,
		})
	}
	return ranked
}

// scored is a (partial or complete) combination with its running true cost.
type scored struct {
	chosen []domain.ChosenPath
	cost   float64
}

type search struct {
	candidates map[string][]domain.Candidate
	costs      CostLookup
	k          int
	memo       *memoTable
}

func (s *search) expand(remaining []string, chosen []domain.ChosenPath, runningCost float64) []scored {
	if len(remaining) == 0 {
		return []scored{{chosen: chosen, cost: runningCost}}
	}

	key := memoKey(runningCost, chosen, remaining)
	if cached, ok := s.memo.lookup(key); ok {
		return cached
	}

	var acc []scored
	for i, dest := range remaining {
		rest := make([]string, 0, len(remaining)-1)
		rest = append(rest, remaining[:i]...)
		rest = append(rest, remaining[i+1:]...)

		for _, cand := range s.candidates[dest] {
			next := make([]domain.ChosenPath, 0, len(chosen)+1)
			next = append(next, chosen...)
			next = append(next, domain.ChosenPath{Destination: dest, Candidate: cand})

			ev := Evaluate(next, s.costs)
			for _, sub := range s.expand(rest, next, ev.TrueCost) {
				if containsEquivalent(acc, sub) {
					continue
				}
				acc = append(acc, sub)
			}
		}
	}

	sort.SliceStable(acc, func(a, b int) bool { return acc[a].cost < acc[b].cost })
	if len(acc) > s.k {
		acc = acc[:s.k]
	}

	s.memo.store(key, acc)
	return acc
}

// usableCandidates drops placeholder padding when real candidates exist;
// mixing a free placeholder with real paths would fabricate artificially
// cheap combinations. A list without any real candidate collapses to one
// placeholder so the destination still gets a slot.
func usableCandidates(list []domain.Candidate) []domain.Candidate {
	usable := make([]domain.Candidate, 0, len(list))
	for _, cand := range list {
		if cand.Unavailable || cand.Path.IsEmpty() {
			continue
		}
		usable = append(usable, cand)
	}
	if len(usable) == 0 {
		return []domain.Candidate{domain.UnavailableCandidate()}
	}
	return usable
}

// containsEquivalent reports whether an accumulated entry already represents
// the new combination: same true cost and every chosen path (structurally,
// by node sequence) present in the existing entry.
func containsEquivalent(acc []scored, candidate scored) bool {
	for _, existing := range acc {
		if existing.cost != candidate.cost {
			continue
		}
		if coversPaths(existing.chosen, candidate.chosen) {
			return true
		}
	}
	return false
}

func coversPaths(existing, chosen []domain.ChosenPath) bool {
	sigs := make(map[string]bool, len(existing))
	for _, choice := range existing {
		sigs[candidateSignature(choice.Candidate)] = true
	}
	for _, choice := range chosen {
		if !sigs[candidateSignature(choice.Candidate)] {
			return false
		}
	}
	return true
}
