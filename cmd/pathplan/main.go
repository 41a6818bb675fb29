package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/wteng/netpath/internal/config"
	"github.com/wteng/netpath/internal/domain"
	"github.com/wteng/netpath/internal/graph"
	"github.com/wteng/netpath/internal/logging"
	"github.com/wteng/netpath/internal/repository"
	"github.com/wteng/netpath/internal/service"
)

func main() {
	var (
		source       = flag.String("source", "", "source device name")
		destinations = flag.String("destinations", "", "comma-separated destination device names")
		topK         = flag.Int("k", 0, "number of ranked combinations to return (0 = configured default)")
		defaultCosts = flag.Bool("apply-default-costs", false, "reset node costs by device type before planning")
		listSources  = flag.Bool("list-sources", false, "print all source devices and exit")
		listDests    = flag.Bool("list-destinations", false, "print destinations reachable from -source and exit")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := logging.New(cfg.Logging).With("component", "pathplan")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	graphClient, err := buildGraphClient(ctx, logger, cfg)
	if err != nil {
		logger.Error("failed to create graph client", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := graphClient.Close(context.Background()); err != nil {
			logger.Warn("closing graph client failed", "error", err)
		}
	}()

	repo := repository.New(graphClient).WithMaxHops(cfg.Planner.MaxHops)

	if *listSources {
		names, err := repo.ListSources(ctx)
		if err != nil {
			logger.Error("listing sources failed", "error", err)
			os.Exit(1)
		}
		printNames(names)
		return
	}

	if *listDests {
		if *source == "" {
			logger.Error("-list-destinations requires -source")
			os.Exit(1)
		}
		names, err := repo.ListDestinations(ctx, *source)
		if err != nil {
			logger.Error("listing destinations failed", "source", *source, "error", err)
			os.Exit(1)
		}
		printNames(names)
		return
	}

	if *defaultCosts {
		if err := repo.ApplyDefaultCosts(ctx); err != nil {
			logger.Error("applying default costs failed", "error", err)
			os.Exit(1)
		}
		logger.Info("default costs applied")
	}

	planner := service.NewPlanner(repo, logger, service.Config{
		TopK:           cfg.Planner.TopK,
		CandidateLimit: cfg.Planner.CandidateLimit,
		FetchWorkers:   cfg.Planner.FetchWorkers,
	})

	req := domain.PlanRequest{
		Source:       *source,
		Destinations: splitNames(*destinations),
		TopK:         *topK,
	}

	start := time.Now()
	result, err := planner.Plan(ctx, req)
	if err != nil {
		logger.Error("planning failed", "source", req.Source, "error", err)
		os.Exit(1)
	}

	logger.Info("plan complete",
		"source", result.Source,
		"destinations", strings.Join(result.Destinations, ","),
		"combinations", len(result.Combinations),
		"duration", time.Since(start).String(),
	)

	for rank, combo := range result.Combinations {
		attrs := []any{
			"rank", rank + 1,
			"trueCost", combo.TrueCost,
		}
		if len(combo.OverlapNodes) > 0 {
			attrs = append(attrs, "overlapNodes", strings.Join(combo.OverlapNodes, ","))
		}
		logger.Info("combination", attrs...)
		for _, choice := range combo.Combination.Paths {
			route := choice.Candidate.Path.Route()
			if choice.Candidate.Unavailable {
				route = "(no available path)"
			}
			logger.Info("  path",
				"destination", choice.Destination,
				"route", route,
				"rawCost", choice.Candidate.RawCost,
			)
		}
	}
}

func buildGraphClient(ctx context.Context, logger *slog.Logger, cfg config.Config) (graph.Client, error) {
	if cfg.Graph.URI == "" {
		return nil, graph.ErrMissingURI
	}
	opts := graph.Options{
		URI:            cfg.Graph.URI,
		Database:       cfg.Graph.Database,
		Username:       cfg.Graph.Username,
		Password:       cfg.Graph.Password,
		MaxConnections: cfg.Graph.MaxConnections,
	}
	client, err := graph.NewNeo4jClient(ctx, opts)
	if err != nil {
		return nil, err
	}
	logger.Info("connected to graph", "uri", cfg.Graph.URI, "database", cfg.Graph.Database)
	return client, nil
}

func splitNames(csv string) []string {
	if csv == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	var names []string
	for _, part := range parts {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func printNames(names []string) {
	for _, name := range names {
		fmt.Println(name)
	}
}
