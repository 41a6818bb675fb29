package generator

// Config controls synthetic topology generation.
type Config struct {
	NumSources      int
	NumDestinations int
	NumRouters      int
	// ExtraLinks adds random router-to-router shortcuts on top of the
	// layered baseline, creating alternative paths with shared segments.
	ExtraLinks int
	// InactiveChance is the probability a router is generated Inactive.
	InactiveChance float64
	Seed           int64
}

// DefaultConfig returns a small topology suitable for demos and local tests.
func DefaultConfig() Config {
	return Config{
		NumSources:      2,
		NumDestinations: 4,
		NumRouters:      10,
		ExtraLinks:      8,
		InactiveChance:  0.05,
		Seed:            1,
	}
}
