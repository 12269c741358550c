package queries

import (
	"context"
	"time"

	"creatorpay/contexts/content-tracking/content-service/domain/entities"
	"creatorpay/contexts/content-tracking/content-service/ports"
)

type ListFilter string

const (
	FilterAll         ListFilter = "all"
	FilterActive      ListFilter = "active"
	FilterFinalizable ListFilter = "finalizable"
)

type ListItemsUseCase struct {
	Repository ports.Repository
	Rules      ports.RuleDirectory
	Clock      ports.Clock
}

func (u ListItemsUseCase) Execute(ctx context.Context, filter ListFilter) ([]ClassifiedItem, error) {
	items, err := u.Repository.ListItems(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]ClassifiedItem, 0, len(items))
	for _, item := range items {
		classified := ClassifiedItem{
			Item:           item,
			Classification: classifyAgainstRule(ctx, u.Rules, item, u.Clock),
		}
		switch filter {
		case FilterActive:
			if classified.Classification.Bucket != entities.BucketActive {
				continue
			}
		case FilterFinalizable:
			if classified.Classification.Bucket != entities.BucketFinalizable {
				continue
			}
		}
		out = append(out, classified)
	}
	return out, nil
}

// classifyAgainstRule resolves the item's rule window and classifies it.
// A missing or unreadable rule yields the excluded bucket, matching the
// fail-closed window policy.
func classifyAgainstRule(ctx context.Context, rules ports.RuleDirectory, item entities.ContentItem, clock ports.Clock) entities.Classification {
	now := time.Now().UTC()
	if clock != nil {
		now = clock.Now().UTC()
	}
	days, found, err := rules.RuleWindow(ctx, item.PaymentRuleID)
	if err != nil || !found {
		return entities.Classify(item, 0, now)
	}
	return entities.Classify(item, days, now)
}
