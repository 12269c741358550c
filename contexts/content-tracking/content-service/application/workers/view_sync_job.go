package workers

import (
	"context"
	"log/slog"
	"time"

	application "creatorpay/contexts/content-tracking/content-service/application"
	"creatorpay/contexts/content-tracking/content-service/domain/entities"
	"creatorpay/contexts/content-tracking/content-service/ports"
)

// ViewSyncJob refreshes current view counts for tracking items that carry a
// platform ID. One item's fetch or persistence failure is logged and skipped;
// the cycle continues with the remaining items.
type ViewSyncJob struct {
	Repository  ports.Repository
	Source      ports.ViewSource
	Cache       ports.ViewCache
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	BatchSize   int
	CacheTTL    time.Duration
	Disabled    bool
	Logger      *slog.Logger
}

func (j ViewSyncJob) RunOnce(ctx context.Context) error {
	logger := application.ResolveLogger(j.Logger)
	if j.Disabled {
		logger.Info("view sync disabled",
			"event", "view_sync_skipped",
			"module", "content-tracking/content-service",
			"layer", "worker",
		)
		return nil
	}

	limit := j.BatchSize
	if limit <= 0 {
		limit = 100
	}
	items, err := j.Repository.ListSyncableItems(ctx, limit)
	if err != nil {
		logger.Error("view sync list failed",
			"event", "view_sync_list_failed",
			"module", "content-tracking/content-service",
			"layer", "worker",
			"error", err.Error(),
		)
		return err
	}

	synced := 0
	unchanged := 0
	for _, item := range items {
		changed, err := j.syncItem(ctx, item)
		if err != nil {
			logger.Error("view sync item failed",
				"event", "view_sync_item_failed",
				"module", "content-tracking/content-service",
				"layer", "worker",
				"content_id", item.ContentID,
				"platform", string(item.Platform),
				"error", err.Error(),
			)
			continue
		}
		if changed {
			synced++
		} else {
			unchanged++
		}
	}
	logger.Info("view sync cycle finished",
		"event", "view_sync_finished",
		"module", "content-tracking/content-service",
		"layer", "worker",
		"listed", len(items),
		"synced", synced,
		"unchanged", unchanged,
	)
	return nil
}

// syncItem reports whether the item's views were refreshed. A fetched count
// equal to the cached one means the platform reported no movement since the
// last cycle, so the repository writes are skipped.
func (j ViewSyncJob) syncItem(ctx context.Context, item entities.ContentItem) (bool, error) {
	count, err := j.Source.FetchViewCount(ctx, item.Platform, item.PlatformID)
	if err != nil {
		return false, err
	}

	if j.Cache != nil {
		cached, ok, err := j.Cache.GetViewCount(ctx, item.ContentID)
		if err != nil {
			application.ResolveLogger(j.Logger).Warn("view cache read failed",
				"event", "view_cache_get_failed",
				"module", "content-tracking/content-service",
				"layer", "worker",
				"content_id", item.ContentID,
				"error", err.Error(),
			)
		} else if ok && cached == count {
			return false, nil
		}
	}

	now := j.now()
	if err := j.Repository.UpdateViews(ctx, item.ContentID, count, now); err != nil {
		return false, err
	}
	snapshotID, err := j.IDGenerator.NewID(ctx)
	if err != nil {
		return false, err
	}
	if err := j.Repository.UpsertViewSnapshot(ctx, entities.ViewSnapshot{
		SnapshotID:    snapshotID,
		ContentItemID: item.ContentID,
		RecordDate:    now.Truncate(24 * time.Hour),
		ViewCount:     count,
		CreatedAt:     now,
	}); err != nil {
		return false, err
	}

	if j.Cache != nil {
		ttl := j.CacheTTL
		if ttl <= 0 {
			ttl = 24 * time.Hour
		}
		if err := j.Cache.PutViewCount(ctx, item.ContentID, count, ttl); err != nil {
			application.ResolveLogger(j.Logger).Warn("view cache write failed",
				"event", "view_cache_put_failed",
				"module", "content-tracking/content-service",
				"layer", "worker",
				"content_id", item.ContentID,
				"error", err.Error(),
			)
		}
	}
	return true, nil
}

func (j ViewSyncJob) now() time.Time {
	if j.Clock != nil {
		return j.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
