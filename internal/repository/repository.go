package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"

	"github.com/wteng/netpath/internal/domain"
	"github.com/wteng/netpath/internal/graph"
)

// DefaultMaxHops bounds the variable-length path match. The planner only ever
// consumes a handful of cheapest paths, but the match itself must not run
// unbounded on cyclic topologies.
const DefaultMaxHops = 10000

// Repository encapsulates all graph queries for path planning: listing
// role-tagged devices, fetching ranked candidate paths and resolving
// intrinsic node/edge costs.
type Repository struct {
	client  graph.Client
	maxHops int
}

// New instantiates a Repository backed by the supplied graph client.
func New(client graph.Client) *Repository {
	return &Repository{client: client, maxHops: DefaultMaxHops}
}

// WithMaxHops overrides the variable-length match bound.
func (r *Repository) WithMaxHops(maxHops int) *Repository {
	if maxHops > 0 {
		r.maxHops = maxHops
	}
	return r
}

// ListSources returns the device names of all Source-labelled nodes.
func (r *Repository) ListSources(ctx context.Context) ([]string, error) {
	res, err := r.client.ExecuteRead(ctx, listSourcesCypher, nil)
	if err != nil {
		return nil, fmt.Errorf("list sources query: %w", err)
	}
	return deviceNames(res), nil
}

// ListDestinations returns all Destination-labelled devices reachable from
// the named source.
func (r *Repository) ListDestinations(ctx context.Context, sourceName string) ([]string, error) {
	if sourceName == "" {
		return nil, errors.New("source name is required")
	}
	res, err := r.client.ExecuteRead(ctx, listDestinationsCypher, map[string]any{
		"sourceName": sourceName,
	})
	if err != nil {
		return nil, fmt.Errorf("list destinations for %s: %w", sourceName, err)
	}
	return deviceNames(res), nil
}

// CandidatePaths fetches up to limit cheapest Active paths between source and
// destination, ordered ascending by raw cost. Records without a decodable
// path value are skipped rather than failing the whole fetch; one bad row
// must not discard the remaining candidates.
func (r *Repository) CandidatePaths(ctx context.Context, sourceName, destinationName string, limit int) ([]domain.Candidate, error) {
	if sourceName == "" || destinationName == "" {
		return nil, errors.New("source and destination names are required")
	}
	if limit <= 0 {
		limit = 5
	}

	query := fmt.Sprintf(candidatePathsCypherTemplate, r.maxHops)
	res, err := r.client.ExecuteRead(ctx, query, map[string]any{
		"sourceName":      sourceName,
		"destinationName": destinationName,
		"limit":           limit,
	})
	if err != nil {
		return nil, fmt.Errorf("candidate paths %s -> %s: %w", sourceName, destinationName, err)
	}

	var candidates []domain.Candidate
	for _, record := range res.Records {
		path, ok := decodePath(record["path"])
		if !ok || path.IsEmpty() {
			continue
		}
		candidates = append(candidates, domain.Candidate{
			Path:    path,
			RawCost: toFloat64(record["totalCost"]),
		})
	}
	return candidates, nil
}

// NodeCost resolves a device's intrinsic cost, defaulting to 0 when the
// device or its cost property is missing.
func (r *Repository) NodeCost(ctx context.Context, nodeName string) (float64, error) {
	res, err := r.client.ExecuteRead(ctx, nodeCostCypher, map[string]any{
		"nodeName": nodeName,
	})
	if err != nil {
		return 0, fmt.Errorf("node cost %s: %w", nodeName, err)
	}
	if len(res.Records) == 0 {
		return 0, nil
	}
	return toFloat64(res.Records[0]["cost"]), nil
}

// EdgeCost resolves the cost of the CONNECTS_TO relationship between two
// devices, defaulting to 0 when no such relationship exists.
func (r *Repository) EdgeCost(ctx context.Context, fromName, toName string) (float64, error) {
	res, err := r.client.ExecuteRead(ctx, edgeCostCypher, map[string]any{
		"startName": fromName,
		"endName":   toName,
	})
	if err != nil {
		return 0, fmt.Errorf("edge cost %s -> %s: %w", fromName, toName, err)
	}
	if len(res.Records) == 0 {
		return 0, nil
	}
	return toFloat64(res.Records[0]["cost"]), nil
}

// ApplyDefaultCosts resets every node's cost by device type: 0 for Source and
// Destination devices, 1 otherwise.
func (r *Repository) ApplyDefaultCosts(ctx context.Context) error {
	if _, err := r.client.ExecuteWrite(ctx, applyDefaultCostsCypher, nil); err != nil {
		return fmt.Errorf("apply default costs: %w", err)
	}
	return nil
}

func deviceNames(res graph.Result) []string {
	var names []string
	for _, record := range res.Records {
		if name := toString(record["deviceName"]); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// decodePath converts a neo4j.Path record value into a domain path. Edges are
// resolved through element IDs because relationship endpoints reference nodes
// by ID, not by property.
func decodePath(value any) (domain.Path, bool) {
	raw, ok := value.(dbtype.Path)
	if !ok {
		return domain.Path{}, false
	}

	namesByID := make(map[string]string, len(raw.Nodes))
	nodes := make([]string, 0, len(raw.Nodes))
	for _, node := range raw.Nodes {
		name := toString(node.Props["device_name"])
		namesByID[node.ElementId] = name
		nodes = append(nodes, name)
	}

	edges := make([]domain.Edge, 0, len(raw.Relationships))
	for _, rel := range raw.Relationships {
		edges = append(edges, domain.Edge{
			From: namesByID[rel.StartElementId],
			To:   namesByID[rel.EndElementId],
		})
	}

	return domain.Path{Nodes: nodes, Edges: edges}, true
}

func toString(value any) string {
	s, _ := value.(string)
	return s
}

func toFloat64(value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int64:
		return float64(v)
	case int:
		return float64(v)
	default:
		return 0
	}
}
