package unit

import (
	"context"
	"errors"
	"testing"

	payoutservice "creatorpay/contexts/payments/payout-service"
	"creatorpay/contexts/payments/payout-service/domain/entities"
	domainerrors "creatorpay/contexts/payments/payout-service/domain/errors"
	"creatorpay/contexts/payments/payout-service/ports"
	httptransport "creatorpay/contexts/payments/payout-service/transport/http"
)

func seedFinalizedItem(module payoutservice.Module, contentItemID string, finalViews int64) {
	views := finalViews
	module.Store.SeedRate("rule-1", entities.RateTerms{
		BasePay:      10,
		ViewRate:     5,
		ViewsPerUnit: 1000,
	})
	module.Store.SeedContent(ports.ContentSnapshot{
		ContentItemID: contentItemID,
		Title:         "finalized clip",
		Status:        ports.ContentStatusFinalized,
		CurrentViews:  views,
		FinalViews:    &views,
		PaymentRuleID: "rule-1",
	})
}

func TestPayoutReconcileReportsEarnedPaidRemaining(t *testing.T) {
	module := payoutservice.NewInMemoryModule(nil)
	ctx := context.Background()
	seedFinalizedItem(module, "content-1", 10000)
	module.Store.SeedPayout(entities.Payout{
		PayoutID:      "payout-1",
		ContentItemID: "content-1",
		Amount:        20,
		ViewCount:     4000,
	})

	rec, err := module.Handler.ReconcileHandler(ctx, "content-1")
	if err != nil {
		t.Fatalf("reconcile failed: %v", err)
	}
	if rec.Data.TotalEarned != 60 {
		t.Fatalf("expected earned 60, got %v", rec.Data.TotalEarned)
	}
	if rec.Data.AlreadyPaid != 20 {
		t.Fatalf("expected paid 20, got %v", rec.Data.AlreadyPaid)
	}
	if rec.Data.RemainingToPay != 40 {
		t.Fatalf("expected remaining 40, got %v", rec.Data.RemainingToPay)
	}
	if rec.Data.RemainingToPayText != "$40.00" {
		t.Fatalf("expected formatted remaining, got %q", rec.Data.RemainingToPayText)
	}
}

func TestPayoutProcessBatchSettlesFinalizedItems(t *testing.T) {
	module := payoutservice.NewInMemoryModule(nil)
	ctx := context.Background()
	seedFinalizedItem(module, "content-1", 10000)

	report, err := module.Handler.ProcessBatchHandler(ctx, "idem-batch-1", httptransport.ProcessBatchRequest{
		ContentItemIDs: []string{"content-1"},
	})
	if err != nil {
		t.Fatalf("process batch failed: %v", err)
	}
	if report.Data.ProcessedCount != 1 {
		t.Fatalf("expected one processed item, got %d", report.Data.ProcessedCount)
	}
	if report.Data.TotalAmount != 60 {
		t.Fatalf("expected total 60, got %v", report.Data.TotalAmount)
	}
	if report.Replayed {
		t.Fatalf("first batch must not be a replay")
	}

	history, err := module.Handler.HistoryHandler(ctx, "content-1")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if len(history.Data) != 1 || history.Data[0].Amount != 60 {
		t.Fatalf("expected one ledger row at 60, got %+v", history.Data)
	}
	if history.Data[0].AmountText != "$60.00" {
		t.Fatalf("expected formatted amount, got %q", history.Data[0].AmountText)
	}

	snapshot, found, err := module.Store.GetContent(ctx, "content-1")
	if err != nil || !found {
		t.Fatalf("content lookup failed: found=%v err=%v", found, err)
	}
	if snapshot.Status != ports.ContentStatusPaid {
		t.Fatalf("expected item marked paid, got %q", snapshot.Status)
	}
}

func TestPayoutProcessBatchReplaysOnSameKey(t *testing.T) {
	module := payoutservice.NewInMemoryModule(nil)
	ctx := context.Background()
	seedFinalizedItem(module, "content-1", 10000)

	req := httptransport.ProcessBatchRequest{ContentItemIDs: []string{"content-1"}}
	first, err := module.Handler.ProcessBatchHandler(ctx, "idem-batch-2", req)
	if err != nil {
		t.Fatalf("first batch failed: %v", err)
	}
	second, err := module.Handler.ProcessBatchHandler(ctx, "idem-batch-2", req)
	if err != nil {
		t.Fatalf("replayed batch failed: %v", err)
	}
	if !second.Replayed {
		t.Fatalf("expected replay flag on second batch")
	}
	if second.Data.ProcessedCount != first.Data.ProcessedCount ||
		second.Data.TotalAmount != first.Data.TotalAmount {
		t.Fatalf("replay must return the stored report: first=%+v second=%+v", first.Data, second.Data)
	}

	history, err := module.Handler.HistoryHandler(ctx, "content-1")
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if len(history.Data) != 1 {
		t.Fatalf("replay must not append ledger rows, got %d", len(history.Data))
	}

	_, err = module.Handler.ProcessBatchHandler(ctx, "idem-batch-2", httptransport.ProcessBatchRequest{
		ContentItemIDs: []string{"content-other"},
	})
	if !errors.Is(err, domainerrors.ErrIdempotencyConflict) {
		t.Fatalf("expected idempotency conflict for reused key, got %v", err)
	}
}

func TestPayoutProcessBatchIsolatesFailingItem(t *testing.T) {
	module := payoutservice.NewInMemoryModule(nil)
	ctx := context.Background()
	seedFinalizedItem(module, "content-a", 10000)
	seedFinalizedItem(module, "content-b", 10000)
	module.Store.FailPayoutWrites("content-b", errors.New("ledger write refused"))

	report, err := module.Handler.ProcessBatchHandler(ctx, "idem-batch-3", httptransport.ProcessBatchRequest{
		ContentItemIDs: []string{"content-a", "content-b"},
	})
	if err != nil {
		t.Fatalf("batch must not fail as a whole: %v", err)
	}
	if report.Data.ProcessedCount != 1 {
		t.Fatalf("expected one processed item, got %d", report.Data.ProcessedCount)
	}
	if len(report.Data.Errors) != 1 || report.Data.Errors[0].ContentItemID != "content-b" {
		t.Fatalf("expected content-b reported as failed, got %+v", report.Data.Errors)
	}

	snapshot, _, err := module.Store.GetContent(ctx, "content-b")
	if err != nil {
		t.Fatalf("content lookup failed: %v", err)
	}
	if snapshot.Status != ports.ContentStatusFinalized {
		t.Fatalf("failed item must stay finalized, got %q", snapshot.Status)
	}
}

func TestPayoutSummaryCountsPendingItems(t *testing.T) {
	module := payoutservice.NewInMemoryModule(nil)
	ctx := context.Background()
	seedFinalizedItem(module, "content-1", 10000)
	module.Store.SeedContent(ports.ContentSnapshot{
		ContentItemID: "content-2",
		Title:         "still tracking",
		Status:        ports.ContentStatusTracking,
		CurrentViews:  500,
		PaymentRuleID: "rule-1",
	})

	summary, err := module.Handler.SummaryHandler(ctx)
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if len(summary.Data.Rows) != 1 {
		t.Fatalf("tracking items must not appear in summary, got %d rows", len(summary.Data.Rows))
	}
	if summary.Data.PendingCount != 1 {
		t.Fatalf("expected one pending item, got %d", summary.Data.PendingCount)
	}
	if summary.Data.PendingTotal != 60 {
		t.Fatalf("expected pending total 60, got %v", summary.Data.PendingTotal)
	}
	if summary.Data.PendingTotalText != "$60.00" {
		t.Fatalf("expected formatted pending total, got %q", summary.Data.PendingTotalText)
	}
}
