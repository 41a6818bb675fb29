package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/wteng/netpath/internal/config"
	"github.com/wteng/netpath/internal/generator"
	"github.com/wteng/netpath/internal/graph"
	"github.com/wteng/netpath/internal/logging"
)

func main() {
	cfg := generator.DefaultConfig()
	var (
		sources      = flag.Int("sources", cfg.NumSources, "number of source devices")
		destinations = flag.Int("destinations", cfg.NumDestinations, "number of destination devices")
		routers      = flag.Int("routers", cfg.NumRouters, "number of interior routers")
		extraLinks   = flag.Int("extra-links", cfg.ExtraLinks, "number of random router shortcuts")
		seed         = flag.Int64("seed", cfg.Seed, "random seed for deterministic generation")
		writeStdout  = flag.Bool("stdout", false, "write the topology as JSON to stdout instead of seeding the graph")
	)
	flag.Parse()

	gen := generator.New(generator.Config{
		NumSources:      *sources,
		NumDestinations: *destinations,
		NumRouters:      *routers,
		ExtraLinks:      *extraLinks,
		InactiveChance:  cfg.InactiveChance,
		Seed:            *seed,
	})
	topo := gen.Generate()

	if *writeStdout {
		if err := json.NewEncoder(os.Stdout).Encode(topo); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write topology: %v\n", err)
			os.Exit(1)
		}
		return
	}

	appCfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger := logging.New(appCfg.Logging).With("component", "datagen")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	client, err := graph.NewNeo4jClient(ctx, graph.Options{
		URI:            appCfg.Graph.URI,
		Database:       appCfg.Graph.Database,
		Username:       appCfg.Graph.Username,
		Password:       appCfg.Graph.Password,
		MaxConnections: appCfg.Graph.MaxConnections,
	})
	if err != nil {
		logger.Error("failed to create graph client", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := client.Close(context.Background()); err != nil {
			logger.Warn("closing graph client failed", "error", err)
		}
	}()

	if err := generator.SeedTopology(ctx, client, topo); err != nil {
		logger.Error("seeding topology failed", "error", err)
		os.Exit(1)
	}

	logger.Info("topology seeded",
		"devices", len(topo.Devices),
		"links", len(topo.Links),
		"seed", *seed,
	)
}
