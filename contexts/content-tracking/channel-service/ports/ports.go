package ports

import (
	"context"
	"time"

	"creatorpay/contexts/content-tracking/channel-service/domain/entities"
)

type Repository interface {
	CreateChannel(ctx context.Context, channel entities.Channel) error
	UpdateChannel(ctx context.Context, channel entities.Channel) error
	GetChannel(ctx context.Context, channelID string) (entities.Channel, error)
	ListChannels(ctx context.Context) ([]entities.Channel, error)
	DeleteChannel(ctx context.Context, channelID string) error

	CreateMapping(ctx context.Context, mapping entities.ChannelMapping) error
	ListMappings(ctx context.Context, channelID string) ([]entities.ChannelMapping, error)
	DeleteMapping(ctx context.Context, channelID string, contentItemID string) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
