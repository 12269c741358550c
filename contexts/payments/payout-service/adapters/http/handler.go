package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"creatorpay/contexts/payments/payout-service/application"
	"creatorpay/contexts/payments/payout-service/domain/entities"
	httptransport "creatorpay/contexts/payments/payout-service/transport/http"
	"creatorpay/internal/platform/format"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) HistoryHandler(
	ctx context.Context,
	contentItemID string,
) (httptransport.PayoutHistoryResponse, error) {
	payouts, err := h.Service.History(ctx, contentItemID)
	if err != nil {
		return httptransport.PayoutHistoryResponse{}, err
	}
	resp := httptransport.PayoutHistoryResponse{
		Status: "success",
		Data:   make([]httptransport.PayoutDTO, 0, len(payouts)),
	}
	for _, payout := range payouts {
		resp.Data = append(resp.Data, toPayoutDTO(payout))
	}
	return resp, nil
}

func (h Handler) ReconcileHandler(
	ctx context.Context,
	contentItemID string,
) (httptransport.ReconciliationResponse, error) {
	rec, err := h.Service.Reconcile(ctx, contentItemID)
	if err != nil {
		return httptransport.ReconciliationResponse{}, err
	}
	return httptransport.ReconciliationResponse{
		Status: "success",
		Data: httptransport.ReconciliationDTO{
			ContentItemID:      rec.ContentItemID,
			TotalEarned:        rec.TotalEarned,
			TotalEarnedText:    format.Currency(rec.TotalEarned),
			AlreadyPaid:        rec.AlreadyPaid,
			AlreadyPaidText:    format.Currency(rec.AlreadyPaid),
			RemainingToPay:     rec.RemainingToPay,
			RemainingToPayText: format.Currency(rec.RemainingToPay),
		},
	}, nil
}

func (h Handler) SummaryHandler(ctx context.Context) (httptransport.SummaryResponse, error) {
	summary, err := h.Service.Summary(ctx)
	if err != nil {
		return httptransport.SummaryResponse{}, err
	}
	resp := httptransport.SummaryResponse{Status: "success"}
	resp.Data.Rows = make([]httptransport.SummaryRowDTO, 0, len(summary.Rows))
	for _, row := range summary.Rows {
		resp.Data.Rows = append(resp.Data.Rows, httptransport.SummaryRowDTO{
			ContentItemID:      row.ContentItemID,
			Title:              row.Title,
			ItemStatus:         row.Status,
			TotalEarned:        row.TotalEarned,
			AlreadyPaid:        row.AlreadyPaid,
			RemainingToPay:     row.RemainingToPay,
			RemainingToPayText: format.Currency(row.RemainingToPay),
			ViewsAtLastPayout:  row.ViewsAtLastPayout,
			CurrentViews:       row.CurrentViews,
			CurrentViewsText:   format.CompactCount(row.CurrentViews),
			FinalViews:         row.FinalViews,
		})
	}
	resp.Data.PendingCount = summary.PendingCount
	resp.Data.PendingTotal = summary.PendingTotal
	resp.Data.PendingTotalText = format.Currency(summary.PendingTotal)
	return resp, nil
}

func (h Handler) ProcessBatchHandler(
	ctx context.Context,
	idempotencyKey string,
	req httptransport.ProcessBatchRequest,
) (httptransport.BatchReportResponse, error) {
	report, replayed, err := h.Service.ProcessBatch(ctx, idempotencyKey, req.ContentItemIDs)
	if err != nil {
		return httptransport.BatchReportResponse{}, err
	}
	resp := httptransport.BatchReportResponse{Status: "success", Replayed: replayed}
	resp.Data.ProcessedCount = report.ProcessedCount
	resp.Data.TotalAmount = report.TotalAmount
	resp.Data.TotalAmountText = format.Currency(report.TotalAmount)
	resp.Data.SkippedCount = report.SkippedCount
	resp.Data.Errors = make([]httptransport.BatchErrorDTO, 0, len(report.Errors))
	for _, batchErr := range report.Errors {
		resp.Data.Errors = append(resp.Data.Errors, httptransport.BatchErrorDTO{
			ContentItemID: batchErr.ContentItemID,
			Reason:        batchErr.Reason,
		})
	}
	return resp, nil
}

func toPayoutDTO(payout entities.Payout) httptransport.PayoutDTO {
	return httptransport.PayoutDTO{
		PayoutID:      payout.PayoutID,
		ContentItemID: payout.ContentItemID,
		Amount:        payout.Amount,
		AmountText:    format.Currency(payout.Amount),
		ViewCount:     payout.ViewCount,
		ViewCountText: format.CompactCount(payout.ViewCount),
		Date:          payout.Date.UTC().Format(time.RFC3339),
	}
}
