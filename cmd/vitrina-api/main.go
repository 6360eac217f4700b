package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "modernc.org/sqlite"

	"vitrina/internal/bootstrap"
	"vitrina/internal/config"
	"vitrina/internal/deeplink"
	httpserver "vitrina/internal/http-server"
	"vitrina/internal/logger"
)

func main() {
	var (
		configPath = flag.String("config", "./config/config.yaml", "path to config.yaml")
		host       = flag.String("host", "", "override host")
		port       = flag.Int("port", 0, "override port")
		feedURL    = flag.String("feed", "", "override catalog feed URL")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("load config failed", "err", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Format, cfg.Log.AddSource).With("env", cfg.Env)
	slog.SetDefault(log)

	if *host != "" {
		cfg.Server.Host = *host
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *feedURL != "" {
		cfg.Catalog.FeedURL = *feedURL
	}

	transport, err := bootstrap.BuildTransport(cfg, log)
	if err != nil {
		log.Error("build transport failed", "err", err)
		os.Exit(1)
	}

	store, closeStore, err := bootstrap.BuildStore(cfg, log)
	if err != nil {
		log.Error("build cache store failed", "err", err)
		os.Exit(1)
	}
	defer func() { _ = closeStore() }()

	catalogSvc := bootstrap.BuildCatalog(cfg, log, transport, store)

	api := httpserver.New(log)
	api.RegisterRoutes(httpserver.Deps{
		Snapshots: catalogSvc,
		Deeplinks: deeplink.New(cfg.Catalog.BotUsername),
		Timeout:   time.Duration(cfg.HTTP.TimeoutSeconds) * time.Second,
	})

	addr := net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port))

	srv := &http.Server{
		Addr:              addr,
		Handler:           api.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		log.Info("api started", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case sig := <-stop:
		log.Info("shutdown signal received", "signal", sig.String())

		// даём запросам завершиться
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("graceful shutdown failed", "err", err)
			_ = srv.Close()
		}
		log.Info("server stopped gracefully")

	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			log.Info("server closed")
			return
		}
		log.Error("server stopped with error", "err", err)
		os.Exit(1)
	}
}
