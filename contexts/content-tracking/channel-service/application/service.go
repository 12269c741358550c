package application

import (
	"context"
	"log/slog"
	"strings"

	"creatorpay/contexts/content-tracking/channel-service/domain/entities"
	domainerrors "creatorpay/contexts/content-tracking/channel-service/domain/errors"
	"creatorpay/contexts/content-tracking/channel-service/ports"
)

type UpsertChannelInput struct {
	Name                 string
	Platform             string
	PlatformID           string
	PlatformURL          string
	DefaultPaymentRuleID *string
}

type Service struct {
	Repository ports.Repository
	Clock      ports.Clock
	IDGen      ports.IDGenerator
	Logger     *slog.Logger
}

func (s Service) CreateChannel(ctx context.Context, input UpsertChannelInput) (entities.Channel, error) {
	channelID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.Channel{}, err
	}
	now := s.Clock.Now().UTC()
	channel := entities.Channel{
		ChannelID:            channelID,
		Name:                 strings.TrimSpace(input.Name),
		Platform:             strings.TrimSpace(input.Platform),
		PlatformID:           strings.TrimSpace(input.PlatformID),
		PlatformURL:          strings.TrimSpace(input.PlatformURL),
		DefaultPaymentRuleID: input.DefaultPaymentRuleID,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if !channel.Validate() {
		return entities.Channel{}, domainerrors.ErrInvalidChannelInput
	}
	if err := s.Repository.CreateChannel(ctx, channel); err != nil {
		return entities.Channel{}, err
	}
	resolveLogger(s.Logger).Info("channel created",
		"event", "channel_created",
		"module", "content-tracking/channel-service",
		"layer", "application",
		"channel_id", channel.ChannelID,
	)
	return channel, nil
}

func (s Service) UpdateChannel(ctx context.Context, channelID string, input UpsertChannelInput) (entities.Channel, error) {
	current, err := s.Repository.GetChannel(ctx, strings.TrimSpace(channelID))
	if err != nil {
		return entities.Channel{}, err
	}
	current.Name = strings.TrimSpace(input.Name)
	current.Platform = strings.TrimSpace(input.Platform)
	current.PlatformID = strings.TrimSpace(input.PlatformID)
	current.PlatformURL = strings.TrimSpace(input.PlatformURL)
	current.DefaultPaymentRuleID = input.DefaultPaymentRuleID
	current.UpdatedAt = s.Clock.Now().UTC()
	if !current.Validate() {
		return entities.Channel{}, domainerrors.ErrInvalidChannelInput
	}
	if err := s.Repository.UpdateChannel(ctx, current); err != nil {
		return entities.Channel{}, err
	}
	return current, nil
}

func (s Service) GetChannel(ctx context.Context, channelID string) (entities.Channel, error) {
	return s.Repository.GetChannel(ctx, strings.TrimSpace(channelID))
}

func (s Service) ListChannels(ctx context.Context) ([]entities.Channel, error) {
	return s.Repository.ListChannels(ctx)
}

func (s Service) DeleteChannel(ctx context.Context, channelID string) error {
	if err := s.Repository.DeleteChannel(ctx, strings.TrimSpace(channelID)); err != nil {
		return err
	}
	resolveLogger(s.Logger).Info("channel deleted",
		"event", "channel_deleted",
		"module", "content-tracking/channel-service",
		"layer", "application",
		"channel_id", channelID,
	)
	return nil
}

func (s Service) MapContent(ctx context.Context, channelID string, contentItemID string) (entities.ChannelMapping, error) {
	channelID = strings.TrimSpace(channelID)
	contentItemID = strings.TrimSpace(contentItemID)
	if contentItemID == "" {
		return entities.ChannelMapping{}, domainerrors.ErrInvalidChannelInput
	}
	if _, err := s.Repository.GetChannel(ctx, channelID); err != nil {
		return entities.ChannelMapping{}, err
	}
	mappingID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.ChannelMapping{}, err
	}
	mapping := entities.ChannelMapping{
		MappingID:     mappingID,
		ChannelID:     channelID,
		ContentItemID: contentItemID,
		CreatedAt:     s.Clock.Now().UTC(),
	}
	if err := s.Repository.CreateMapping(ctx, mapping); err != nil {
		return entities.ChannelMapping{}, err
	}
	return mapping, nil
}

func (s Service) ListMappings(ctx context.Context, channelID string) ([]entities.ChannelMapping, error) {
	if _, err := s.Repository.GetChannel(ctx, strings.TrimSpace(channelID)); err != nil {
		return nil, err
	}
	return s.Repository.ListMappings(ctx, strings.TrimSpace(channelID))
}

func (s Service) UnmapContent(ctx context.Context, channelID string, contentItemID string) error {
	return s.Repository.DeleteMapping(ctx, strings.TrimSpace(channelID), strings.TrimSpace(contentItemID))
}

func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.Default()
}
