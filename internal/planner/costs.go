package planner

// CostLookup supplies intrinsic node and edge costs for overlap accounting.
// Implementations must return 0 for unknown elements rather than failing;
// missing cost data under-counts a combination, it never aborts one.
type CostLookup interface {
	NodeCost(name string) float64
	EdgeCost(from, to string) float64
}

// EdgeKey identifies a directed edge by its endpoints.
type EdgeKey struct {
	From string
	To   string
}

// StaticCosts is a map-backed CostLookup.
type StaticCosts struct {
	Nodes map[string]float64
	Edges map[EdgeKey]float64
}

// NewStaticCosts returns an empty, mutable StaticCosts.
func NewStaticCosts() *StaticCosts {
	return &StaticCosts{
		Nodes: make(map[string]float64),
		Edges: make(map[EdgeKey]float64),
	}
}

func (s *StaticCosts) NodeCost(name string) float64 {
	if s == nil {
		return 0
	}
	return s.Nodes[name]
}

func (s *StaticCosts) EdgeCost(from, to string) float64 {
	if s == nil {
		return 0
	}
	return s.Edges[EdgeKey{From: from, To: to}]
}

// zeroCosts is the lenient fallback used when no lookup is supplied.
type zeroCosts struct{}

func (zeroCosts) NodeCost(string) float64         { return 0 }
func (zeroCosts) EdgeCost(string, string) float64 { return 0 }
