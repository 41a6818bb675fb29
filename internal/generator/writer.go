package generator

import (
	"context"
	"fmt"

	"github.com/wteng/netpath/internal/graph"
)

// Labels cannot be parameterized in Cypher, so each role gets its own
// statement. The Source/Destination labels are what the planner's list
// queries match on.
const seedSourcesCypher = `
UNWIND $devices AS device
MERGE (n:Source {device_name: device.name})
SET n.device_type = device.type,
    n.status = device.status,
    n.cost = device.cost`

const seedDestinationsCypher = `
UNWIND $devices AS device
MERGE (n:Destination {device_name: device.name})
SET n.device_type = device.type,
    n.status = device.status,
    n.cost = device.cost`

const seedRoutersCypher = `
UNWIND $devices AS device
MERGE (n:Router {device_name: device.name})
SET n.device_type = device.type,
    n.status = device.status,
    n.cost = device.cost`

const seedLinksCypher = `
UNWIND $links AS link
MATCH (from {device_name: link.from})
MATCH (to {device_name: link.to})
MERGE (from)-[rel:CONNECTS_TO]->(to)
SET rel.cost = link.cost`

// SeedTopology writes the topology into the graph database: devices first,
// grouped by role label, then the CONNECTS_TO links between them.
func SeedTopology(ctx context.Context, client graph.Client, topo Topology) error {
	byType := map[string][]map[string]any{}
	for _, d := range topo.Devices {
		byType[d.Type] = append(byType[d.Type], map[string]any{
			"name":   d.Name,
			"type":   d.Type,
			"status": d.Status,
			"cost":   d.Cost,
		})
	}

	statements := []struct {
		deviceType string
		cypher     string
	}{
		{"Source", seedSourcesCypher},
		{"Destination", seedDestinationsCypher},
		{"Router", seedRoutersCypher},
	}
	for _, stmt := range statements {
		devices := byType[stmt.deviceType]
		if len(devices) == 0 {
			continue
		}
		if _, err := client.ExecuteWrite(ctx, stmt.cypher, map[string]any{"devices": devices}); err != nil {
			return fmt.Errorf("seed %s devices: %w", stmt.deviceType, err)
		}
	}

	linkParams := make([]map[string]any, 0, len(topo.Links))
	for _, l := range topo.Links {
		linkParams = append(linkParams, map[string]any{
			"from": l.From,
			"to":   l.To,
			"cost": l.Cost,
		})
	}

	if _, err := client.ExecuteWrite(ctx, seedLinksCypher, map[string]any{"links": linkParams}); err != nil {
		return fmt.Errorf("seed links: %w", err)
	}
	return nil
}
