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

// CreateItemCommand contains transport-agnostic input for content creation.
type CreateItemCommand struct {
	Title            string
	Platform         entities.Platform
	PlatformID       string
	SourceURL        string
	UploadDate       time.Time
	StartingViews    int64
	PaymentRuleID    string
	BelongsToChannel bool
	ManagedByManager bool
}

type CreateItemUseCase struct {
	Repository  ports.Repository
	Rules       ports.RuleDirectory
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (u CreateItemUseCase) Execute(ctx context.Context, cmd CreateItemCommand) (entities.ContentItem, error) {
	logger := application.ResolveLogger(u.Logger)

	ruleID := strings.TrimSpace(cmd.PaymentRuleID)
	if ruleID == "" {
		return entities.ContentItem{}, domainerrors.ErrInvalidItemInput
	}
	_, found, err := u.Rules.RuleWindow(ctx, ruleID)
	if err != nil {
		return entities.ContentItem{}, err
	}
	if !found {
		return entities.ContentItem{}, domainerrors.ErrRuleNotFound
	}

	contentID, err := u.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.ContentItem{}, err
	}
	now := u.Clock.Now().UTC()
	item := entities.ContentItem{
		ContentID:        contentID,
		Title:            strings.TrimSpace(cmd.Title),
		Platform:         cmd.Platform,
		PlatformID:       strings.TrimSpace(cmd.PlatformID),
		SourceURL:        strings.TrimSpace(cmd.SourceURL),
		UploadDate:       cmd.UploadDate.UTC(),
		StartingViews:    cmd.StartingViews,
		CurrentViews:     cmd.StartingViews,
		Status:           entities.StatusTracking,
		PaymentRuleID:    ruleID,
		BelongsToChannel: cmd.BelongsToChannel,
		ManagedByManager: cmd.ManagedByManager,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if !item.Validate() {
		return entities.ContentItem{}, domainerrors.ErrInvalidItemInput
	}

	if err := u.Repository.CreateItem(ctx, item); err != nil {
		return entities.ContentItem{}, err
	}
	logger.Info("content item created",
		"event", "content_item_created",
		"module", "content-tracking/content-service",
		"layer", "application",
		"content_id", item.ContentID,
		"platform", string(item.Platform),
		"payment_rule_id", item.PaymentRuleID,
	)
	return item, nil
}
