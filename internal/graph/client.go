package graph

import (
	"context"
	"errors"
)

// Client is the minimal contract the path repository needs from the underlying
// graph database. Planning is read-heavy; writes exist only for topology
// seeding and for resetting default device costs.
type Client interface {
	ExecuteRead(ctx context.Context, cypher string, params map[string]any) (Result, error)
	ExecuteWrite(ctx context.Context, cypher string, params map[string]any) (Result, error)
	VerifyConnectivity(ctx context.Context) error
	Close(ctx context.Context) error
}

// Result is a simplified query response.
type Result struct {
	Records []Record
}

// Record groups the key-value pairs of one returned row.
type Record map[string]any

// Options configures a graph client implementation.
type Options struct {
	URI            string
	Database       string
	Username       string
	Password       string
	MaxConnections int
}

// ErrMissingURI indicates the graph URI is not provided.
var ErrMissingURI = errors.New("graph URI is required")
