package domain

import "strings"

// Device is a network element in the topology. Cost is the intrinsic charge for
// routing through the device; source and destination devices carry cost 0.
type Device struct {
	Name   string
	Type   string
	Status string
	Cost   float64
}

// Edge is a directed CONNECTS_TO hop between two devices.
type Edge struct {
	From string
	To   string
}

// Path is an ordered device sequence from the planning source to one
// destination. Edges, when present, mirror the relationships returned by the
// graph engine; otherwise they are implied by consecutive nodes.
type Path struct {
	Nodes []string
	Edges []Edge
}

// IsEmpty reports whether the path carries no devices at all.
func (p Path) IsEmpty() bool {
	return len(p.Nodes) == 0
}

// EdgeList returns the path's hops, deriving them from consecutive nodes when
// the graph engine did not supply explicit relationships.
func (p Path) EdgeList() []Edge {
	if len(p.Edges) > 0 {
		return p.Edges
	}
	if len(p.Nodes) < 2 {
		return nil
	}
	edges := make([]Edge, 0, len(p.Nodes)-1)
	for i := 0; i < len(p.Nodes)-1; i++ {
		edges = append(edges, Edge{From: p.Nodes[i], To: p.Nodes[i+1]})
	}
	return edges
}

// Route renders the path as "A -> B -> C". Two paths are structurally the same
// route exactly when their Route strings match.
func (p Path) Route() string {
	return strings.Join(p.Nodes, " -> ")
}
