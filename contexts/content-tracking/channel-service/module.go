package channelservice

import (
	"log/slog"

	httpadapter "creatorpay/contexts/content-tracking/channel-service/adapters/http"
	"creatorpay/contexts/content-tracking/channel-service/adapters/memory"
	"creatorpay/contexts/content-tracking/channel-service/application"
	"creatorpay/contexts/content-tracking/channel-service/domain/entities"
	"creatorpay/contexts/content-tracking/channel-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Repository  ports.Repository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repository: deps.Repository,
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

func NewInMemoryModule(seed []entities.Channel, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	module := NewModule(Dependencies{
		Repository:  store,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
