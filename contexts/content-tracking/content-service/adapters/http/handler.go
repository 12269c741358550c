package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"creatorpay/contexts/content-tracking/content-service/application/commands"
	"creatorpay/contexts/content-tracking/content-service/application/queries"
	"creatorpay/contexts/content-tracking/content-service/domain/entities"
	domainerrors "creatorpay/contexts/content-tracking/content-service/domain/errors"
	httptransport "creatorpay/contexts/content-tracking/content-service/transport/http"
	"creatorpay/internal/platform/format"
)

type Handler struct {
	CreateItem   commands.CreateItemUseCase
	UpdateItem   commands.UpdateItemUseCase
	RecordViews  commands.RecordViewsUseCase
	FinalizeItem commands.FinalizeItemUseCase
	DeleteItem   commands.DeleteItemUseCase
	GetItem      queries.GetItemUseCase
	ListItems    queries.ListItemsUseCase
	ViewHistory  queries.ViewHistoryUseCase
	Logger       *slog.Logger
}

func (h Handler) CreateItemHandler(
	ctx context.Context,
	req httptransport.CreateContentItemRequest,
) (httptransport.ContentItemResponse, error) {
	uploadDate, err := time.Parse("2006-01-02", req.UploadDate)
	if err != nil {
		return httptransport.ContentItemResponse{}, domainerrors.ErrInvalidItemInput
	}
	item, err := h.CreateItem.Execute(ctx, commands.CreateItemCommand{
		Title:            req.Title,
		Platform:         entities.Platform(req.Platform),
		PlatformID:       req.PlatformID,
		SourceURL:        req.SourceURL,
		UploadDate:       uploadDate,
		StartingViews:    req.StartingViews,
		PaymentRuleID:    req.PaymentRuleID,
		BelongsToChannel: req.BelongsToChannel,
		ManagedByManager: req.ManagedByManager,
	})
	if err != nil {
		return httptransport.ContentItemResponse{}, err
	}
	return httptransport.ContentItemResponse{
		Status: "success",
		Data:   toDTO(item, entities.Classification{Status: item.Status}),
	}, nil
}

func (h Handler) UpdateItemHandler(
	ctx context.Context,
	contentID string,
	req httptransport.UpdateContentItemRequest,
) (httptransport.ContentItemResponse, error) {
	item, err := h.UpdateItem.Execute(ctx, commands.UpdateItemCommand{
		ContentID:        contentID,
		Title:            req.Title,
		Platform:         entities.Platform(req.Platform),
		PlatformID:       req.PlatformID,
		SourceURL:        req.SourceURL,
		BelongsToChannel: req.BelongsToChannel,
		ManagedByManager: req.ManagedByManager,
	})
	if err != nil {
		return httptransport.ContentItemResponse{}, err
	}
	return httptransport.ContentItemResponse{
		Status: "success",
		Data:   toDTO(item, entities.Classification{Status: item.Status}),
	}, nil
}

func (h Handler) RecordViewsHandler(
	ctx context.Context,
	contentID string,
	req httptransport.RecordViewsRequest,
) (httptransport.ContentItemResponse, error) {
	item, err := h.RecordViews.Execute(ctx, commands.RecordViewsCommand{
		ContentID: contentID,
		ViewCount: req.ViewCount,
	})
	if err != nil {
		return httptransport.ContentItemResponse{}, err
	}
	return httptransport.ContentItemResponse{
		Status: "success",
		Data:   toDTO(item, entities.Classification{Status: item.Status}),
	}, nil
}

func (h Handler) FinalizeItemHandler(
	ctx context.Context,
	contentID string,
	req httptransport.FinalizeContentItemRequest,
) (httptransport.ContentItemResponse, error) {
	item, err := h.FinalizeItem.Execute(ctx, commands.FinalizeItemCommand{
		ContentID:  contentID,
		FinalViews: req.FinalViews,
	})
	if err != nil {
		return httptransport.ContentItemResponse{}, err
	}
	return httptransport.ContentItemResponse{
		Status: "success",
		Data:   toDTO(item, entities.Classification{Status: item.Status}),
	}, nil
}

func (h Handler) DeleteItemHandler(
	ctx context.Context,
	contentID string,
) (httptransport.DeleteContentItemResponse, error) {
	if err := h.DeleteItem.Execute(ctx, contentID); err != nil {
		return httptransport.DeleteContentItemResponse{}, err
	}
	return httptransport.DeleteContentItemResponse{Status: "success"}, nil
}

func (h Handler) GetItemHandler(
	ctx context.Context,
	contentID string,
) (httptransport.ContentItemResponse, error) {
	classified, err := h.GetItem.Execute(ctx, contentID)
	if err != nil {
		return httptransport.ContentItemResponse{}, err
	}
	return httptransport.ContentItemResponse{
		Status: "success",
		Data:   toDTO(classified.Item, classified.Classification),
	}, nil
}

func (h Handler) ListItemsHandler(
	ctx context.Context,
	bucket string,
) (httptransport.ContentItemListResponse, error) {
	filter := queries.FilterAll
	switch bucket {
	case "active":
		filter = queries.FilterActive
	case "finalizable":
		filter = queries.FilterFinalizable
	}
	classified, err := h.ListItems.Execute(ctx, filter)
	if err != nil {
		return httptransport.ContentItemListResponse{}, err
	}
	resp := httptransport.ContentItemListResponse{
		Status: "success",
		Data:   make([]httptransport.ContentItemDTO, 0, len(classified)),
	}
	for _, row := range classified {
		resp.Data = append(resp.Data, toDTO(row.Item, row.Classification))
	}
	return resp, nil
}

func (h Handler) ViewHistoryHandler(
	ctx context.Context,
	contentID string,
) (httptransport.ViewHistoryResponse, error) {
	snapshots, err := h.ViewHistory.Execute(ctx, contentID)
	if err != nil {
		return httptransport.ViewHistoryResponse{}, err
	}
	resp := httptransport.ViewHistoryResponse{
		Status: "success",
		Data:   make([]httptransport.ViewSnapshotDTO, 0, len(snapshots)),
	}
	for _, snapshot := range snapshots {
		resp.Data = append(resp.Data, httptransport.ViewSnapshotDTO{
			RecordDate: snapshot.RecordDate.UTC().Format("2006-01-02"),
			ViewCount:  snapshot.ViewCount,
		})
	}
	return resp, nil
}

func toDTO(item entities.ContentItem, classification entities.Classification) httptransport.ContentItemDTO {
	dto := httptransport.ContentItemDTO{
		ContentID:        item.ContentID,
		Title:            item.Title,
		Platform:         string(item.Platform),
		PlatformID:       item.PlatformID,
		SourceURL:        item.SourceURL,
		UploadDate:       item.UploadDate.UTC().Format("2006-01-02"),
		StartingViews:    item.StartingViews,
		CurrentViews:     item.CurrentViews,
		CurrentViewsText: format.CompactCount(item.CurrentViews),
		FinalViews:       item.FinalViews,
		Status:           string(item.Status),
		IsFinalizable:    classification.IsFinalizable,
		PaymentRuleID:    item.PaymentRuleID,
		BelongsToChannel: item.BelongsToChannel,
		ManagedByManager: item.ManagedByManager,
		CreatedAt:        item.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:        item.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if !classification.WindowEndsAt.IsZero() {
		dto.WindowEndsAt = classification.WindowEndsAt.UTC().Format(time.RFC3339)
	}
	return dto
}
