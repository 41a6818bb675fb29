package domain

// Candidate pairs a path with the raw cost reported by the graph engine.
// Unavailable marks a placeholder slot for a destination that has no usable
// path; it carries no nodes and contributes nothing to combined cost.
type Candidate struct {
	Path        Path
	RawCost     float64
	Unavailable bool
}

// UnavailableCandidate returns the zero-cost placeholder substituted when a
// destination has no candidates.
func UnavailableCandidate() Candidate {
	return Candidate{Unavailable: true}
}

// CandidateSet holds one destination's candidate paths, ordered ascending by
// raw cost as returned by the graph engine.
type CandidateSet struct {
	Destination string
	Candidates  []Candidate
}

// ChosenPath records the candidate selected for one destination within a
// combination.
type ChosenPath struct {
	Destination string
	Candidate   Candidate
}

// Combination assigns exactly one candidate per requested destination.
type Combination struct {
	Paths []ChosenPath
}

// RankedCombination is a combination priced by the overlap-aware evaluator.
// OverlapNodes lists device names whose cost was double-counted across the
// chosen paths and therefore subtracted; downstream renderers use it for
// highlighting.
type RankedCombination struct {
	Combination  Combination
	TrueCost     float64
	OverlapNodes []string
}

// PlanRequest names the source and the destinations to cover, plus how many
// ranked combinations to return.
type PlanRequest struct {
	Source       string
	Destinations []string
	TopK         int
}

// PlanResult is the ordered result set handed to the presentation layer.
type PlanResult struct {
	Source       string
	Destinations []string
	Combinations []RankedCombination
}
