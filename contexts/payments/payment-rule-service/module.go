package paymentruleservice

import (
	"log/slog"

	httpadapter "creatorpay/contexts/payments/payment-rule-service/adapters/http"
	"creatorpay/contexts/payments/payment-rule-service/adapters/memory"
	"creatorpay/contexts/payments/payment-rule-service/application"
	"creatorpay/contexts/payments/payment-rule-service/domain/entities"
	"creatorpay/contexts/payments/payment-rule-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Repository  ports.Repository
	ContentRef  ports.ContentRefChecker
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repository: deps.Repository,
		ContentRef: deps.ContentRef,
		Clock:      deps.Clock,
		IDGen:      deps.IDGenerator,
		Logger:     deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
	}
}

func NewInMemoryModule(seed []entities.PaymentRule, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Repository:  store,
		ContentRef:  store,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
