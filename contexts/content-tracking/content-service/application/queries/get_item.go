package queries

import (
	"context"
	"strings"

	"creatorpay/contexts/content-tracking/content-service/domain/entities"
	"creatorpay/contexts/content-tracking/content-service/ports"
)

// ClassifiedItem pairs an item with its tracking-window classification at
// query time.
type ClassifiedItem struct {
	Item           entities.ContentItem
	Classification entities.Classification
}

type GetItemUseCase struct {
	Repository ports.Repository
	Rules      ports.RuleDirectory
	Clock      ports.Clock
}

func (u GetItemUseCase) Execute(ctx context.Context, contentID string) (ClassifiedItem, error) {
	item, err := u.Repository.GetItem(ctx, strings.TrimSpace(contentID))
	if err != nil {
		return ClassifiedItem{}, err
	}
	return ClassifiedItem{
		Item:           item,
		Classification: classifyAgainstRule(ctx, u.Rules, item, u.Clock),
	}, nil
}

type ViewHistoryUseCase struct {
	Repository ports.Repository
}

func (u ViewHistoryUseCase) Execute(ctx context.Context, contentID string) ([]entities.ViewSnapshot, error) {
	return u.Repository.ListViewHistory(ctx, strings.TrimSpace(contentID))
}
