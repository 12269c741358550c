package ports

import (
	"context"
	"time"

	"creatorpay/contexts/content-tracking/content-service/domain/entities"
)

type Repository interface {
	CreateItem(ctx context.Context, item entities.ContentItem) error
	UpdateItem(ctx context.Context, item entities.ContentItem) error
	GetItem(ctx context.Context, contentID string) (entities.ContentItem, error)
	ListItems(ctx context.Context) ([]entities.ContentItem, error)
	DeleteItem(ctx context.Context, contentID string) error

	UpdateViews(ctx context.Context, contentID string, views int64, at time.Time) error
	SetFinalized(ctx context.Context, contentID string, finalViews int64, at time.Time) error

	UpsertViewSnapshot(ctx context.Context, snapshot entities.ViewSnapshot) error
	ListViewHistory(ctx context.Context, contentID string) ([]entities.ViewSnapshot, error)

	ListSyncableItems(ctx context.Context, limit int) ([]entities.ContentItem, error)
}

// RuleDirectory exposes the slice of the payments context this service needs:
// whether a rule exists and how long its tracking window is.
type RuleDirectory interface {
	RuleWindow(ctx context.Context, ruleID string) (trackingPeriodDays int, found bool, err error)
}

// ViewSource fetches the live view count for a piece of content on its host
// platform. Real platform API clients live behind this port.
type ViewSource interface {
	FetchViewCount(ctx context.Context, platform entities.Platform, platformID string) (int64, error)
}

type ViewCache interface {
	GetViewCount(ctx context.Context, contentID string) (int64, bool, error)
	PutViewCount(ctx context.Context, contentID string, count int64, ttl time.Duration) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
