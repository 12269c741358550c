package commands

import (
	"context"
	"log/slog"
	"strings"

	application "creatorpay/contexts/content-tracking/content-service/application"
	"creatorpay/contexts/content-tracking/content-service/domain/entities"
	domainerrors "creatorpay/contexts/content-tracking/content-service/domain/errors"
	"creatorpay/contexts/content-tracking/content-service/ports"
)

type FinalizeItemCommand struct {
	ContentID  string
	FinalViews int64
}

// FinalizeItemUseCase freezes an item's view count for payment. The status
// moves forward only: a finalized or paid item cannot be re-finalized, and
// the recorded final views must be at least the starting views.
type FinalizeItemUseCase struct {
	Repository ports.Repository
	Clock      ports.Clock
	Logger     *slog.Logger
}

func (u FinalizeItemUseCase) Execute(ctx context.Context, cmd FinalizeItemCommand) (entities.ContentItem, error) {
	item, err := u.Repository.GetItem(ctx, strings.TrimSpace(cmd.ContentID))
	if err != nil {
		return entities.ContentItem{}, err
	}
	if item.Status != entities.StatusTracking {
		return entities.ContentItem{}, domainerrors.ErrAlreadyFinalized
	}
	if cmd.FinalViews < item.StartingViews {
		return entities.ContentItem{}, domainerrors.ErrFinalViewsTooLow
	}

	now := u.Clock.Now().UTC()
	if err := u.Repository.SetFinalized(ctx, item.ContentID, cmd.FinalViews, now); err != nil {
		return entities.ContentItem{}, err
	}

	finalViews := cmd.FinalViews
	item.FinalViews = &finalViews
	item.CurrentViews = finalViews
	item.Status = entities.StatusFinalized
	item.UpdatedAt = now
	application.ResolveLogger(u.Logger).Info("content item finalized",
		"event", "content_item_finalized",
		"module", "content-tracking/content-service",
		"layer", "application",
		"content_id", item.ContentID,
		"final_views", finalViews,
	)
	return item, nil
}
