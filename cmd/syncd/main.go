package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"pagesync/internal/config"
	"pagesync/internal/metrics"
	"pagesync/internal/policy"
	"pagesync/internal/provider"
	"pagesync/internal/publisher"
	"pagesync/internal/scheduler"
	"pagesync/internal/server"
	"pagesync/internal/service"
	"pagesync/internal/storage/postgres"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	// Setup logger
	logger := setupLogger("info")

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger = setupLogger(cfg.LogLevel)

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}
	logger.Info("connected to database")

	// Event publishing is optional: no rabbitmq url means no events.
	var events service.Publisher
	if cfg.RabbitMQ.URL != "" {
		rabbitMQ, err := publisher.NewRabbitMQ(publisher.Config{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			QueueName:  cfg.RabbitMQ.QueueName,
		}, logger)
		if err != nil {
			logger.Error("failed to connect to rabbitmq", "error", err)
			os.Exit(1)
		}
		defer rabbitMQ.Close()
		events = rabbitMQ
	}

	registry := prometheus.NewRegistry()
	syncMetrics := metrics.New(registry)

	// Initialize stores
	postStore := postgres.NewPostStore(db)
	syncStateStore := postgres.NewSyncStateStore(db)

	// Initialize provider client
	providerClient := provider.New(provider.Config{
		BaseURL:        cfg.Provider.BaseURL,
		Token:          cfg.Provider.Token,
		Version:        cfg.Provider.Version,
		Timeout:        cfg.Provider.Timeout,
		PageSize:       cfg.Provider.PageSize,
		MaxAttempts:    cfg.Provider.Retry.MaxAttempts,
		InitialBackoff: cfg.Provider.Retry.InitialBackoff,
		MaxBackoff:     cfg.Provider.Retry.MaxBackoff,
	}, logger)

	// One orchestrator per datasource; no shared mutable state between them.
	syncServices := make([]*service.SyncService, 0, len(cfg.DataSources))
	for _, ds := range cfg.DataSources {
		builder := service.NewBuilder(
			providerClient,
			postStore,
			policy.FromDataSource(ds),
			ds,
			logger,
		)
		syncServices = append(syncServices, service.NewSyncService(
			providerClient,
			builder,
			postStore,
			syncStateStore,
			events,
			syncMetrics,
			logger,
			ds.ID,
			cfg.Sync.Lookback,
		))
	}

	schedulerSyncers := make([]scheduler.Syncer, len(syncServices))
	serverSyncers := make([]server.Syncer, len(syncServices))
	for i, svc := range syncServices {
		schedulerSyncers[i] = svc
		serverSyncers[i] = svc
	}

	sched := scheduler.NewScheduler(schedulerSyncers, syncStateStore, cfg.Sync.Interval, logger)

	srv := server.New(server.Config{
		WebhookSecret: cfg.Server.WebhookSecret,
		SyncSecret:    cfg.Server.SyncSecret,
	}, providerClient, serverSyncers, promhttp.HandlerFor(registry, promhttp.HandlerOpts{}), logger)

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
		if err := srv.ListenAndServe(ctx, cfg.Server.Addr); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			cancel()
		}
	}()

	logger.Info("starting page syncer",
		"datasources", len(cfg.DataSources),
		"interval", cfg.Sync.Interval,
		"addr", cfg.Server.Addr,
	)

	if err := sched.Start(ctx); err != nil && err != context.Canceled {
		logger.Error("scheduler error", "error", err)
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
