package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"creatorpay/contexts/content-tracking/channel-service/application"
	"creatorpay/contexts/content-tracking/channel-service/domain/entities"
	httptransport "creatorpay/contexts/content-tracking/channel-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) CreateChannelHandler(
	ctx context.Context,
	req httptransport.UpsertChannelRequest,
) (httptransport.ChannelResponse, error) {
	channel, err := h.Service.CreateChannel(ctx, inputFromRequest(req))
	if err != nil {
		return httptransport.ChannelResponse{}, err
	}
	return httptransport.ChannelResponse{Status: "success", Data: toDTO(channel)}, nil
}

func (h Handler) UpdateChannelHandler(
	ctx context.Context,
	channelID string,
	req httptransport.UpsertChannelRequest,
) (httptransport.ChannelResponse, error) {
	channel, err := h.Service.UpdateChannel(ctx, channelID, inputFromRequest(req))
	if err != nil {
		return httptransport.ChannelResponse{}, err
	}
	return httptransport.ChannelResponse{Status: "success", Data: toDTO(channel)}, nil
}

func (h Handler) GetChannelHandler(
	ctx context.Context,
	channelID string,
) (httptransport.ChannelResponse, error) {
	channel, err := h.Service.GetChannel(ctx, channelID)
	if err != nil {
		return httptransport.ChannelResponse{}, err
	}
	return httptransport.ChannelResponse{Status: "success", Data: toDTO(channel)}, nil
}

func (h Handler) ListChannelsHandler(ctx context.Context) (httptransport.ChannelListResponse, error) {
	channels, err := h.Service.ListChannels(ctx)
	if err != nil {
		return httptransport.ChannelListResponse{}, err
	}
	resp := httptransport.ChannelListResponse{
		Status: "success",
		Data:   make([]httptransport.ChannelDTO, 0, len(channels)),
	}
	for _, channel := range channels {
		resp.Data = append(resp.Data, toDTO(channel))
	}
	return resp, nil
}

func (h Handler) DeleteChannelHandler(
	ctx context.Context,
	channelID string,
) (httptransport.DeleteChannelResponse, error) {
	if err := h.Service.DeleteChannel(ctx, channelID); err != nil {
		return httptransport.DeleteChannelResponse{}, err
	}
	return httptransport.DeleteChannelResponse{Status: "success"}, nil
}

func (h Handler) MapContentHandler(
	ctx context.Context,
	channelID string,
	req httptransport.MapContentRequest,
) (httptransport.ChannelMappingResponse, error) {
	mapping, err := h.Service.MapContent(ctx, channelID, req.ContentItemID)
	if err != nil {
		return httptransport.ChannelMappingResponse{}, err
	}
	return httptransport.ChannelMappingResponse{
		Status: "success",
		Data:   toMappingDTO(mapping),
	}, nil
}

func (h Handler) ListMappingsHandler(
	ctx context.Context,
	channelID string,
) (httptransport.ChannelMappingListResponse, error) {
	mappings, err := h.Service.ListMappings(ctx, channelID)
	if err != nil {
		return httptransport.ChannelMappingListResponse{}, err
	}
	resp := httptransport.ChannelMappingListResponse{
		Status: "success",
		Data:   make([]httptransport.ChannelMappingDTO, 0, len(mappings)),
	}
	for _, mapping := range mappings {
		resp.Data = append(resp.Data, toMappingDTO(mapping))
	}
	return resp, nil
}

func (h Handler) UnmapContentHandler(
	ctx context.Context,
	channelID string,
	contentItemID string,
) (httptransport.DeleteChannelResponse, error) {
	if err := h.Service.UnmapContent(ctx, channelID, contentItemID); err != nil {
		return httptransport.DeleteChannelResponse{}, err
	}
	return httptransport.DeleteChannelResponse{Status: "success"}, nil
}

func inputFromRequest(req httptransport.UpsertChannelRequest) application.UpsertChannelInput {
	return application.UpsertChannelInput{
		Name:                 req.Name,
		Platform:             req.Platform,
		PlatformID:           req.PlatformID,
		PlatformURL:          req.PlatformURL,
		DefaultPaymentRuleID: req.DefaultPaymentRuleID,
	}
}

func toDTO(channel entities.Channel) httptransport.ChannelDTO {
	return httptransport.ChannelDTO{
		ChannelID:            channel.ChannelID,
		Name:                 channel.Name,
		Platform:             channel.Platform,
		PlatformID:           channel.PlatformID,
		PlatformURL:          channel.PlatformURL,
		DefaultPaymentRuleID: channel.DefaultPaymentRuleID,
		CreatedAt:            channel.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:            channel.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func toMappingDTO(mapping entities.ChannelMapping) httptransport.ChannelMappingDTO {
	return httptransport.ChannelMappingDTO{
		MappingID:     mapping.MappingID,
		ChannelID:     mapping.ChannelID,
		ContentItemID: mapping.ContentItemID,
		CreatedAt:     mapping.CreatedAt.UTC().Format(time.RFC3339),
	}
}
