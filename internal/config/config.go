package config

import (
	"os"
	"strconv"
)

// Config aggregates application configuration values.
type Config struct {
	Graph   GraphConfig
	Planner PlannerConfig
	Logging LoggingConfig
}

// GraphConfig describes connectivity to the graph database (Neo4j/Neptune).
type GraphConfig struct {
	URI            string
	Database       string
	Username       string
	Password       string
	MaxConnections int
}

// PlannerConfig tunes candidate fetching and combination ranking.
type PlannerConfig struct {
	TopK           int
	CandidateLimit int
	FetchWorkers   int
	MaxHops        int
}

// LoggingConfig controls structured logging settings.
type LoggingConfig struct {
	Level         string
	Format        string // text|json
	IncludeCaller bool
}

const (
	defaultLoggingLevel   = "info"
	defaultLoggingFormat  = "text"
	defaultGraphSessions  = 10
	defaultTopK           = 5
	defaultCandidateLimit = 5
	defaultFetchWorkers   = 4
	defaultMaxHops        = 10000
)

// Load reads configuration from environment variables, applying defaults.
func Load() (Config, error) {
	cfg := Config{
		Graph: GraphConfig{
			URI:            os.Getenv("GRAPH_URI"),
			Database:       valueOrDefault("GRAPH_DATABASE", ""),
			Username:       os.Getenv("GRAPH_USERNAME"),
			Password:       os.Getenv("GRAPH_PASSWORD"),
			MaxConnections: parseIntWithDefault("GRAPH_MAX_CONNECTIONS", defaultGraphSessions),
		},
		Planner: PlannerConfig{
			TopK:           parseIntWithDefault("PLAN_TOP_K", defaultTopK),
			CandidateLimit: parseIntWithDefault("PLAN_CANDIDATE_LIMIT", defaultCandidateLimit),
			FetchWorkers:   parseIntWithDefault("PLAN_FETCH_WORKERS", defaultFetchWorkers),
			MaxHops:        parseIntWithDefault("PLAN_MAX_HOPS", defaultMaxHops),
		},
		Logging: LoggingConfig{
			Level:         valueOrDefault("LOG_LEVEL", defaultLoggingLevel),
			Format:        valueOrDefault("LOG_FORMAT", defaultLoggingFormat),
			IncludeCaller: parseBoolWithDefault("LOG_INCLUDE_CALLER", false),
		},
	}

	return cfg, nil
}

func valueOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseBoolWithDefault(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		val, err := strconv.ParseBool(v)
		if err != nil {
			return fallback
		}
		return val
	}
	return fallback
}

func parseIntWithDefault(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if val, err := strconv.Atoi(v); err == nil {
			return val
		}
	}
	return fallback
}
