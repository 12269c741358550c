package commands

import (
	"context"
	"log/slog"
	"strings"

	application "creatorpay/contexts/content-tracking/content-service/application"
	"creatorpay/contexts/content-tracking/content-service/ports"
)

type DeleteItemUseCase struct {
	Repository ports.Repository
	Logger     *slog.Logger
}

func (u DeleteItemUseCase) Execute(ctx context.Context, contentID string) error {
	if err := u.Repository.DeleteItem(ctx, strings.TrimSpace(contentID)); err != nil {
		return err
	}
	application.ResolveLogger(u.Logger).Info("content item deleted",
		"event", "content_item_deleted",
		"module", "content-tracking/content-service",
		"layer", "application",
		"content_id", contentID,
	)
	return nil
}
