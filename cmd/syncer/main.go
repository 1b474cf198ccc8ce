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

	"subscription_syncer/internal/config"
	"subscription_syncer/internal/database"
	"subscription_syncer/internal/metrics"
	"subscription_syncer/internal/publisher"
	"subscription_syncer/internal/scheduler"
	"subscription_syncer/internal/service"
	"subscription_syncer/internal/storage/postgres"
	"subscription_syncer/internal/supplier"
	"subscription_syncer/internal/tracker"
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

	if err := database.RunMigrations(cfg.Database.URL()); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("connected to database")

	// Notification sink
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

	// Stores
	supplierStore := postgres.NewSupplierStore(db)
	resourceStore := postgres.NewResourceStore(db)
	subscriptionStore := postgres.NewSubscriptionStore(db)
	errorStore := postgres.NewErrorStore(db)
	txManager := postgres.NewTransactionManager(db)

	// Error ledger
	errorTracker := tracker.New(errorStore, txManager, rabbitMQ, logger)

	// Supplier client
	client := supplier.NewClient(supplier.Config{
		Timeout:   cfg.Client.Timeout,
		OriginURL: cfg.Client.OriginURL,
		Method:    cfg.Client.Method,
	}, errorTracker, logger)

	// Metrics
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	go func() {
		logger.Info("metrics listening", "addr", cfg.Metrics.Addr)
		if err := http.ListenAndServe(cfg.Metrics.Addr, metrics.Handler(registry)); err != nil {
			logger.Error("metrics server stopped", "error", err)
		}
	}()

	syncService := service.NewSyncService(
		supplierStore,
		resourceStore,
		subscriptionStore,
		client,
		errorTracker,
		collector,
		logger,
		cfg.Sync,
	)

	sched := scheduler.NewScheduler(syncService, cfg.Sync.Interval, cfg.Sync.RunTimeout, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigCh
		logger.Info("received shutdown signal", "signal", sig)
		cancel()
	}()

	logger.Info("starting subscription syncer",
		"interval", cfg.Sync.Interval,
		"enabled", cfg.Sync.Enabled,
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
