package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	channelservice "creatorpay/contexts/content-tracking/channel-service"
	channelpostgres "creatorpay/contexts/content-tracking/channel-service/adapters/postgres"
	contentservice "creatorpay/contexts/content-tracking/content-service"
	"creatorpay/contexts/content-tracking/content-service/adapters/platformstub"
	contentpostgres "creatorpay/contexts/content-tracking/content-service/adapters/postgres"
	contentworkers "creatorpay/contexts/content-tracking/content-service/application/workers"
	paymentruleservice "creatorpay/contexts/payments/payment-rule-service"
	rulepostgres "creatorpay/contexts/payments/payment-rule-service/adapters/postgres"
	payoutservice "creatorpay/contexts/payments/payout-service"
	payoutpostgres "creatorpay/contexts/payments/payout-service/adapters/postgres"
	"creatorpay/internal/platform/cache"
	"creatorpay/internal/platform/config"
	"creatorpay/internal/platform/db"
	"creatorpay/internal/platform/httpserver"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

type WorkerApp struct {
	postgres     *db.Postgres
	redis        *cache.Redis
	viewSync     contentworkers.ViewSyncJob
	pollInterval time.Duration
	logger       *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	ruleRepo := rulepostgres.NewRepository(pg.DB, logger)
	ruleModule := paymentruleservice.NewModule(paymentruleservice.Dependencies{
		Repository:  ruleRepo,
		ContentRef:  ruleRepo,
		Clock:       rulepostgres.SystemClock{},
		IDGenerator: rulepostgres.UUIDGenerator{},
		Logger:      logger,
	})

	contentRepo := contentpostgres.NewRepository(pg.DB, logger)
	contentModule := contentservice.NewModule(contentservice.Dependencies{
		Repository:  contentRepo,
		Rules:       contentRepo,
		ViewSource:  platformstub.NewSource(),
		ViewCache:   noopViewCache{},
		Clock:       contentpostgres.SystemClock{},
		IDGenerator: contentpostgres.UUIDGenerator{},
		Logger:      logger,
	})

	payoutRepo := payoutpostgres.NewRepository(pg.DB, logger)
	payoutModule := payoutservice.NewModule(payoutservice.Dependencies{
		Repository:     payoutRepo,
		Content:        payoutRepo,
		Rates:          payoutRepo,
		Status:         payoutRepo,
		Idempotency:    payoutRepo,
		Clock:          payoutpostgres.SystemClock{},
		IDGenerator:    payoutpostgres.UUIDGenerator{},
		IdempotencyTTL: 7 * 24 * time.Hour,
		Logger:         logger,
	})

	channelRepo := channelpostgres.NewRepository(pg.DB, logger)
	channelModule := channelservice.NewModule(channelservice.Dependencies{
		Repository:  channelRepo,
		Clock:       channelpostgres.SystemClock{},
		IDGenerator: channelpostgres.UUIDGenerator{},
		Logger:      logger,
	})

	server := httpserver.New(
		ruleModule,
		contentModule,
		payoutModule,
		channelModule,
		logger,
		normalizeAddr(cfg.HTTPPort),
	)
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func BuildWorker() (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	redis, err := cache.Connect(cfg.RedisURL, logger)
	if err != nil {
		_ = pg.Close()
		return nil, err
	}

	contentRepo := contentpostgres.NewRepository(pg.DB, logger)
	return &WorkerApp{
		postgres: pg,
		redis:    redis,
		viewSync: contentworkers.ViewSyncJob{
			Repository:  contentRepo,
			Source:      platformstub.NewSource(),
			Cache:       redis,
			Clock:       contentpostgres.SystemClock{},
			IDGenerator: contentpostgres.UUIDGenerator{},
			BatchSize:   cfg.ViewSyncBatchSize,
			CacheTTL:    2 * cfg.ViewSyncInterval,
			Disabled:    cfg.ViewSyncDisabled,
			Logger:      logger,
		},
		pollInterval: cfg.ViewSyncInterval,
		logger:       logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func (w *WorkerApp) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"poll_interval", w.pollInterval.String(),
	)

	for {
		if err := w.viewSync.RunOnce(ctx); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (w *WorkerApp) Close() error {
	var firstErr error
	if w.redis != nil {
		firstErr = w.redis.Close()
	}
	if w.postgres != nil {
		if err := w.postgres.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}

// noopViewCache keeps the api process free of a redis dependency. Only the
// worker's sync loop benefits from caching view counts.
type noopViewCache struct{}

func (noopViewCache) GetViewCount(context.Context, string) (int64, bool, error) {
	return 0, false, nil
}

func (noopViewCache) PutViewCount(context.Context, string, int64, time.Duration) error {
	return nil
}
