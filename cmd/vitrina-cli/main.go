package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"vitrina/internal/bootstrap"
	"vitrina/internal/cache"
	"vitrina/internal/config"
	"vitrina/internal/logger"
	"vitrina/internal/repository"
	jsonfile "vitrina/internal/repository/json"
)

func main() {
	var (
		configPath = flag.String("config", "./config/config.yaml", "path to config.yaml")
		feedURL    = flag.String("feed", "", "override catalog feed URL (optional)")
		outputFile = flag.String("out", "", "override output file (optional)")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("load config failed", "err", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Format, cfg.Log.AddSource)
	slog.SetDefault(log)

	// overrides
	if *feedURL != "" {
		cfg.Catalog.FeedURL = *feedURL
	}
	if *outputFile != "" {
		cfg.CLI.OutputFile = *outputFile
	}

	if cfg.Catalog.FeedURL == "" {
		log.Error("feed_url must not be empty (set in config.yaml or via -feed)")
		os.Exit(1)
	}

	transport, err := bootstrap.BuildTransport(cfg, log)
	if err != nil {
		log.Error("build transport failed", "err", err)
		os.Exit(1)
	}

	// свежий in-memory кэш: выгрузка всегда идёт в сеть
	catalogSvc := bootstrap.BuildCatalog(cfg, log, transport, cache.NewMemory())

	repo := jsonfile.New(cfg.CLI.OutputFile, log)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.HTTP.TimeoutSeconds)*time.Second)
	defer cancel()

	snap := catalogSvc.Fetch(ctx)
	if snap.Error != "" {
		log.Error("catalog fetch failed", "msg", snap.Error)
		os.Exit(1)
	}

	res := repository.NewSnapshotResult(time.Now().UTC().Format(time.RFC3339), snap)

	if err := repo.Save(ctx, res); err != nil {
		log.Error("save json failed", "err", err)
		os.Exit(1)
	}

	log.Info("done",
		"env", cfg.Env,
		"count", res.Count,
		"generated_at", res.GeneratedAt,
		"output", cfg.CLI.OutputFile,
	)
}
