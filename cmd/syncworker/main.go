package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"newsreader/internal/api"
	"newsreader/internal/config"
	"newsreader/internal/connectivity"
	"newsreader/internal/storage/sqlite"
	"newsreader/internal/syncer"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := setupLogger("info")

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		logger.Error("failed to open local store", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("local store ready", "path", cfg.Database.Path)

	actionStore := sqlite.NewActionStore(db)

	client := api.New(api.Config{
		BaseURL:        cfg.API.BaseURL,
		Timeout:        cfg.API.Timeout,
		CacheTTL:       cfg.API.CacheTTL,
		MaxAttempts:    cfg.API.Retry.MaxAttempts,
		InitialBackoff: cfg.API.Retry.InitialBackoff,
		MaxBackoff:     cfg.API.Retry.MaxBackoff,
	}, logger)

	monitor := connectivity.NewMonitor(connectivity.Config{
		ProbeURL:      cfg.API.BaseURL,
		ProbeInterval: cfg.Connectivity.ProbeInterval,
		ProbeTimeout:  cfg.Connectivity.ProbeTimeout,
	}, logger)

	trigger := syncer.NewTrigger()
	runner := syncer.NewRunner(actionStore, client, logger)
	worker := syncer.NewWorker(
		runner,
		trigger,
		monitor,
		monitor.Changes(),
		cfg.Sync.Interval,
		cfg.Sync.RunTimeout,
		logger,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	go func() {
		if err := monitor.Start(ctx); err != nil && err != context.Canceled {
			logger.Error("connectivity monitor error", "error", err)
		}
	}()

	logger.Info("starting sync worker",
		"api", cfg.API.BaseURL,
		"interval", cfg.Sync.Interval,
	)

	if err := worker.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("sync worker error", "error", err)
		os.Exit(1)
	}
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: logLevel}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	return slog.New(handler)
}
