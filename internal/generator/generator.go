package generator

import (
	"fmt"
	"math/rand"
	"time"
)

// DeviceSpec is one generated network device.
type DeviceSpec struct {
	Name   string  `json:"name"`
	Type   string  `json:"type"`
	Status string  `json:"status"`
	Cost   float64 `json:"cost"`
}

// LinkSpec is one generated CONNECTS_TO relationship.
type LinkSpec struct {
	From string  `json:"from"`
	To   string  `json:"to"`
	Cost float64 `json:"cost"`
}

// Topology contains the generated devices and links.
type Topology struct {
	Devices []DeviceSpec `json:"devices"`
	Links   []LinkSpec   `json:"links"`
}

// Generator produces synthetic layered topologies: sources fan out into a
// router mesh which fans into destinations. Shortcut links guarantee several
// candidate paths per (source, destination) pair, some sharing segments.
type Generator struct {
	cfg  Config
	rand *rand.Rand
}

// New returns a configured Generator instance.
func New(cfg Config) *Generator {
	def := DefaultConfig()
	if cfg.NumSources <= 0 {
		cfg.NumSources = def.NumSources
	}
	if cfg.NumDestinations <= 0 {
		cfg.NumDestinations = def.NumDestinations
	}
	if cfg.NumRouters <= 0 {
		cfg.NumRouters = def.NumRouters
	}
	if cfg.ExtraLinks < 0 {
		cfg.ExtraLinks = def.ExtraLinks
	}
	if cfg.InactiveChance < 0 || cfg.InactiveChance >= 1 {
		cfg.InactiveChance = def.InactiveChance
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	return &Generator{
		cfg:  cfg,
		rand: rand.New(rand.NewSource(cfg.Seed)),
	}
}

// Generate synthesises a topology. Costs follow the planning convention:
// role-tagged endpoints cost 0, interior devices cost 1, link costs vary.
func (g *Generator) Generate() Topology {
	var topo Topology

	sources := make([]string, g.cfg.NumSources)
	for i := range sources {
		sources[i] = fmt.Sprintf("SRC-%02d", i+1)
		topo.Devices = append(topo.Devices, DeviceSpec{
			Name:   sources[i],
			Type:   "Source",
			Status: "Active",
			Cost:   0,
		})
	}

	routers := make([]string, g.cfg.NumRouters)
	for i := range routers {
		routers[i] = fmt.Sprintf("RTR-%02d", i+1)
		status := "Active"
		if g.rand.Float64() < g.cfg.InactiveChance {
			status = "Inactive"
		}
		topo.Devices = append(topo.Devices, DeviceSpec{
			Name:   routers[i],
			Type:   "Router",
			Status: status,
			Cost:   1,
		})
	}

	destinations := make([]string, g.cfg.NumDestinations)
	for i := range destinations {
		destinations[i] = fmt.Sprintf("DST-%02d", i+1)
		topo.Devices = append(topo.Devices, DeviceSpec{
			Name:   destinations[i],
			Type:   "Destination",
			Status: "Active",
			Cost:   0,
		})
	}

	// Layered baseline: every source reaches the first routers, routers chain
	// forward, the last routers reach every destination.
	entry := routers[:min(3, len(routers))]
	for _, src := range sources {
		for _, rtr := range entry {
			topo.Links = append(topo.Links, g.link(src, rtr))
		}
	}
	for i := 0; i < len(routers)-1; i++ {
		topo.Links = append(topo.Links, g.link(routers[i], routers[i+1]))
	}
	exit := routers[max(0, len(routers)-3):]
	for _, rtr := range exit {
		for _, dst := range destinations {
			topo.Links = append(topo.Links, g.link(rtr, dst))
		}
	}

	// Shortcuts between random distinct routers, always pointing forward to
	// keep the topology acyclic.
	for i := 0; i < g.cfg.ExtraLinks && len(routers) > 2; i++ {
		a := g.rand.Intn(len(routers) - 1)
		b := a + 1 + g.rand.Intn(len(routers)-a-1)
		topo.Links = append(topo.Links, g.link(routers[a], routers[b]))
	}

	return topo
}

func (g *Generator) link(from, to string) LinkSpec {
	return LinkSpec{
		From: from,
		To:   to,
		Cost: float64(1 + g.rand.Intn(9)),
	}
}
