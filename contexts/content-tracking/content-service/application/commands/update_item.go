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

// UpdateItemCommand covers the mutable descriptive fields only. UploadDate,
// view counts, status, and the rule reference are managed by their own
// operations.
type UpdateItemCommand struct {
	ContentID        string
	Title            string
	Platform         entities.Platform
	PlatformID       string
	SourceURL        string
	BelongsToChannel bool
	ManagedByManager bool
}

type UpdateItemUseCase struct {
	Repository ports.Repository
	Clock      ports.Clock
	Logger     *slog.Logger
}

func (u UpdateItemUseCase) Execute(ctx context.Context, cmd UpdateItemCommand) (entities.ContentItem, error) {
	current, err := u.Repository.GetItem(ctx, strings.TrimSpace(cmd.ContentID))
	if err != nil {
		return entities.ContentItem{}, err
	}

	current.Title = strings.TrimSpace(cmd.Title)
	current.Platform = cmd.Platform
	current.PlatformID = strings.TrimSpace(cmd.PlatformID)
	current.SourceURL = strings.TrimSpace(cmd.SourceURL)
	current.BelongsToChannel = cmd.BelongsToChannel
	current.ManagedByManager = cmd.ManagedByManager
	current.UpdatedAt = u.Clock.Now().UTC()
	if !current.Validate() {
		return entities.ContentItem{}, domainerrors.ErrInvalidItemInput
	}

	if err := u.Repository.UpdateItem(ctx, current); err != nil {
		return entities.ContentItem{}, err
	}
	application.ResolveLogger(u.Logger).Info("content item updated",
		"event", "content_item_updated",
		"module", "content-tracking/content-service",
		"layer", "application",
		"content_id", current.ContentID,
	)
	return current, nil
}
