package payoutservice

import (
	"log/slog"
	"time"

	httpadapter "creatorpay/contexts/payments/payout-service/adapters/http"
	"creatorpay/contexts/payments/payout-service/adapters/memory"
	"creatorpay/contexts/payments/payout-service/application"
	"creatorpay/contexts/payments/payout-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Repository     ports.PayoutRepository
	Content        ports.ContentProvider
	Rates          ports.RateProvider
	Status         ports.StatusUpdater
	Idempotency    ports.IdempotencyStore
	Clock          ports.Clock
	IDGenerator    ports.IDGenerator
	IdempotencyTTL time.Duration
	Logger         *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:           deps.Repository,
		Content:        deps.Content,
		Rates:          deps.Rates,
		Status:         deps.Status,
		Idempotency:    deps.Idempotency,
		Clock:          deps.Clock,
		IDGen:          deps.IDGenerator,
		IdempotencyTTL: deps.IdempotencyTTL,
		Logger:         deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
	}
}

func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repository:     store,
		Content:        store,
		Rates:          store,
		Status:         store,
		Idempotency:    store,
		Clock:          store,
		IDGenerator:    store,
		IdempotencyTTL: 7 * 24 * time.Hour,
		Logger:         logger,
	})
	module.Store = store
	return module
}
