package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "creatorpay/contexts/content-tracking/content-service/application"
	"creatorpay/contexts/content-tracking/content-service/domain/entities"
	domainerrors "creatorpay/contexts/content-tracking/content-service/domain/errors"
	"creatorpay/contexts/content-tracking/content-service/ports"
)

type RecordViewsCommand struct {
	ContentID string
	ViewCount int64
}

// RecordViewsUseCase applies a manually entered view count to an item and
// writes the daily history snapshot. One snapshot exists per calendar day;
// a second record on the same day overwrites the earlier count.
type RecordViewsUseCase struct {
	Repository  ports.Repository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (u RecordViewsUseCase) Execute(ctx context.Context, cmd RecordViewsCommand) (entities.ContentItem, error) {
	if cmd.ViewCount < 0 {
		return entities.ContentItem{}, domainerrors.ErrInvalidViewCount
	}
	item, err := u.Repository.GetItem(ctx, strings.TrimSpace(cmd.ContentID))
	if err != nil {
		return entities.ContentItem{}, err
	}
	if item.Status != entities.StatusTracking {
		return entities.ContentItem{}, domainerrors.ErrAlreadyFinalized
	}

	now := u.Clock.Now().UTC()
	if err := u.Repository.UpdateViews(ctx, item.ContentID, cmd.ViewCount, now); err != nil {
		return entities.ContentItem{}, err
	}

	snapshotID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.ContentItem{}, err
	}
	snapshot := entities.ViewSnapshot{
		SnapshotID:    snapshotID,
		ContentItemID: item.ContentID,
		RecordDate:    now.Truncate(24 * time.Hour),
		ViewCount:     cmd.ViewCount,
		CreatedAt:     now,
	}
	if err := u.Repository.UpsertViewSnapshot(ctx, snapshot); err != nil {
		return entities.ContentItem{}, err
	}

	item.CurrentViews = cmd.ViewCount
	item.UpdatedAt = now
	application.ResolveLogger(u.Logger).Info("content views recorded",
		"event", "content_views_recorded",
		"module", "content-tracking/content-service",
		"layer", "application",
		"content_id", item.ContentID,
		"view_count", cmd.ViewCount,
	)
	return item, nil
}
