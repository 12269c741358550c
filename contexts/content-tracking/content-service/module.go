package contentservice

import (
	"log/slog"
	"time"

	httpadapter "creatorpay/contexts/content-tracking/content-service/adapters/http"
	"creatorpay/contexts/content-tracking/content-service/adapters/memory"
	"creatorpay/contexts/content-tracking/content-service/adapters/platformstub"
	"creatorpay/contexts/content-tracking/content-service/application/commands"
	"creatorpay/contexts/content-tracking/content-service/application/queries"
	"creatorpay/contexts/content-tracking/content-service/application/workers"
	"creatorpay/contexts/content-tracking/content-service/domain/entities"
	"creatorpay/contexts/content-tracking/content-service/ports"
)

type Module struct {
	Handler  httpadapter.Handler
	ViewSync workers.ViewSyncJob
	Store    *memory.Store
	Source   *platformstub.Source
}

type Dependencies struct {
	Repository        ports.Repository
	Rules             ports.RuleDirectory
	ViewSource        ports.ViewSource
	ViewCache         ports.ViewCache
	Clock             ports.Clock
	IDGenerator       ports.IDGenerator
	ViewSyncBatchSize int
	ViewSyncDisabled  bool
	ViewCacheTTL      time.Duration
	Logger            *slog.Logger
}

func NewModule(deps Dependencies) Module {
	return Module{
		Handler: httpadapter.Handler{
			CreateItem: commands.CreateItemUseCase{
				Repository:  deps.Repository,
				Rules:       deps.Rules,
				Clock:       deps.Clock,
				IDGenerator: deps.IDGenerator,
				Logger:      deps.Logger,
			},
			UpdateItem: commands.UpdateItemUseCase{
				Repository: deps.Repository,
				Clock:      deps.Clock,
				Logger:     deps.Logger,
			},
			RecordViews: commands.RecordViewsUseCase{
				Repository:  deps.Repository,
				Clock:       deps.Clock,
				IDGenerator: deps.IDGenerator,
				Logger:      deps.Logger,
			},
			FinalizeItem: commands.FinalizeItemUseCase{
				Repository: deps.Repository,
				Clock:      deps.Clock,
				Logger:     deps.Logger,
			},
			DeleteItem: commands.DeleteItemUseCase{
				Repository: deps.Repository,
				Logger:     deps.Logger,
			},
			GetItem: queries.GetItemUseCase{
				Repository: deps.Repository,
				Rules:      deps.Rules,
				Clock:      deps.Clock,
			},
			ListItems: queries.ListItemsUseCase{
				Repository: deps.Repository,
				Rules:      deps.Rules,
				Clock:      deps.Clock,
			},
			ViewHistory: queries.ViewHistoryUseCase{
				Repository: deps.Repository,
			},
			Logger: deps.Logger,
		},
		ViewSync: workers.ViewSyncJob{
			Repository:  deps.Repository,
			Source:      deps.ViewSource,
			Cache:       deps.ViewCache,
			Clock:       deps.Clock,
			IDGenerator: deps.IDGenerator,
			BatchSize:   deps.ViewSyncBatchSize,
			CacheTTL:    deps.ViewCacheTTL,
			Disabled:    deps.ViewSyncDisabled,
			Logger:      deps.Logger,
		},
	}
}

func NewInMemoryModule(seed []entities.ContentItem, logger *slog.Logger) Module {
	store := memory.NewStore(seed)
	source := platformstub.NewSource()
	module := NewModule(Dependencies{
		Repository:  store,
		Rules:       store,
		ViewSource:  source,
		ViewCache:   store,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	module.Source = source
	return module
}
