package application

import (
	"context"
	"errors"
	"testing"

	"creatorpay/contexts/payments/payout-service/adapters/memory"
	"creatorpay/contexts/payments/payout-service/domain/entities"
	domainerrors "creatorpay/contexts/payments/payout-service/domain/errors"
	"creatorpay/contexts/payments/payout-service/ports"
)

func newService(store *memory.Store) Service {
	return Service{
		Repo:        store,
		Content:     store,
		Rates:       store,
		Status:      store,
		Idempotency: store,
		Clock:       store,
		IDGen:       store,
	}
}

func finalizedSnapshot(id string, finalViews int64) ports.ContentSnapshot {
	views := finalViews
	return ports.ContentSnapshot{
		ContentItemID: id,
		Title:         "clip " + id,
		Status:        ports.ContentStatusFinalized,
		StartingViews: 0,
		CurrentViews:  views,
		FinalViews:    &views,
		PaymentRuleID: "rule-1",
	}
}

func TestReconcileFinalizedItem(t *testing.T) {
	store := memory.NewStore()
	store.SeedRate("rule-1", entities.RateTerms{BasePay: 10, ViewRate: 5, ViewsPerUnit: 1000})
	store.SeedContent(finalizedSnapshot("content-1", 10000))
	store.SeedPayout(entities.Payout{PayoutID: "p1", ContentItemID: "content-1", Amount: 20, ViewCount: 8000})

	rec, err := newService(store).Reconcile(context.Background(), "content-1")
	if err != nil {
		t.Fatalf("reconcile failed: %v", err)
	}
	if rec.TotalEarned != 60 {
		t.Fatalf("total earned %v, want 60", rec.TotalEarned)
	}
	if rec.AlreadyPaid != 20 {
		t.Fatalf("already paid %v, want 20", rec.AlreadyPaid)
	}
	if rec.RemainingToPay != 40 {
		t.Fatalf("remaining %v, want 40", rec.RemainingToPay)
	}
}

func TestReconcileTrackingItemHasNoEarnings(t *testing.T) {
	store := memory.NewStore()
	store.SeedRate("rule-1", entities.RateTerms{BasePay: 10, ViewRate: 5, ViewsPerUnit: 1000})
	store.SeedContent(ports.ContentSnapshot{
		ContentItemID: "content-1",
		Status:        ports.ContentStatusTracking,
		CurrentViews:  50000,
		PaymentRuleID: "rule-1",
	})

	rec, err := newService(store).Reconcile(context.Background(), "content-1")
	if err != nil {
		t.Fatalf("reconcile failed: %v", err)
	}
	if rec.TotalEarned != 0 || rec.RemainingToPay != 0 {
		t.Fatalf("tracking item must have zero earnings, got %+v", rec)
	}
}

func TestReconcileDeletedRuleDegradesToZero(t *testing.T) {
	store := memory.NewStore()
	store.SeedContent(finalizedSnapshot("content-1", 10000))

	rec, err := newService(store).Reconcile(context.Background(), "content-1")
	if err != nil {
		t.Fatalf("reconcile failed: %v", err)
	}
	if rec.TotalEarned != 0 {
		t.Fatalf("missing rule must yield zero earnings, got %v", rec.TotalEarned)
	}
}

func TestReconcileRemainingNeverNegative(t *testing.T) {
	store := memory.NewStore()
	store.SeedRate("rule-1", entities.RateTerms{BasePay: 10, ViewRate: 5, ViewsPerUnit: 1000})
	store.SeedContent(finalizedSnapshot("content-1", 1000))
	store.SeedPayout(entities.Payout{PayoutID: "p1", ContentItemID: "content-1", Amount: 500, ViewCount: 1000})

	rec, err := newService(store).Reconcile(context.Background(), "content-1")
	if err != nil {
		t.Fatalf("reconcile failed: %v", err)
	}
	if rec.RemainingToPay != 0 {
		t.Fatalf("overpaid item must owe zero, got %v", rec.RemainingToPay)
	}
}

func TestProcessBatchCreatesPayoutsAndMarksPaid(t *testing.T) {
	store := memory.NewStore()
	store.SeedRate("rule-1", entities.RateTerms{BasePay: 10, ViewRate: 5, ViewsPerUnit: 1000})
	store.SeedContent(finalizedSnapshot("content-1", 10000))

	service := newService(store)
	report, replayed, err := service.ProcessBatch(context.Background(), "batch-1", []string{"content-1"})
	if err != nil {
		t.Fatalf("process batch failed: %v", err)
	}
	if replayed {
		t.Fatal("first run must not be a replay")
	}
	if report.ProcessedCount != 1 || report.TotalAmount != 60 {
		t.Fatalf("unexpected report %+v", report)
	}

	payouts, err := store.ListPayouts(context.Background(), "content-1")
	if err != nil {
		t.Fatalf("list payouts failed: %v", err)
	}
	if len(payouts) != 1 || payouts[0].Amount != 60 || payouts[0].ViewCount != 10000 {
		t.Fatalf("unexpected ledger %+v", payouts)
	}

	snapshot, _, _ := store.GetContent(context.Background(), "content-1")
	if snapshot.Status != ports.ContentStatusPaid {
		t.Fatalf("item should be paid, got %s", snapshot.Status)
	}
}

func TestProcessBatchSettledItemGetsNoPayoutRow(t *testing.T) {
	store := memory.NewStore()
	store.SeedRate("rule-1", entities.RateTerms{BasePay: 10, ViewRate: 5, ViewsPerUnit: 1000})
	store.SeedContent(finalizedSnapshot("content-1", 10000))
	store.SeedPayout(entities.Payout{PayoutID: "p1", ContentItemID: "content-1", Amount: 60, ViewCount: 10000})

	report, _, err := newService(store).ProcessBatch(context.Background(), "batch-1", []string{"content-1"})
	if err != nil {
		t.Fatalf("process batch failed: %v", err)
	}
	if report.ProcessedCount != 1 || report.TotalAmount != 0 {
		t.Fatalf("unexpected report %+v", report)
	}

	payouts, _ := store.ListPayouts(context.Background(), "content-1")
	if len(payouts) != 1 {
		t.Fatalf("no new payout row expected, got %d", len(payouts))
	}
	snapshot, _, _ := store.GetContent(context.Background(), "content-1")
	if snapshot.Status != ports.ContentStatusPaid {
		t.Fatalf("settled item should still move to paid, got %s", snapshot.Status)
	}
}

func TestProcessBatchIsolatesItemFailures(t *testing.T) {
	store := memory.NewStore()
	store.SeedRate("rule-1", entities.RateTerms{BasePay: 10, ViewRate: 5, ViewsPerUnit: 1000})
	store.SeedContent(finalizedSnapshot("content-a", 1000))
	store.SeedContent(finalizedSnapshot("content-b", 2000))
	store.SeedContent(finalizedSnapshot("content-c", 3000))
	store.FailPayoutWrites("content-b", errors.New("database unavailable"))

	report, _, err := newService(store).ProcessBatch(
		context.Background(), "batch-1", []string{"content-a", "content-b", "content-c"})
	if err != nil {
		t.Fatalf("process batch failed: %v", err)
	}
	if report.ProcessedCount != 2 {
		t.Fatalf("processed %d, want 2", report.ProcessedCount)
	}
	if len(report.Errors) != 1 || report.Errors[0].ContentItemID != "content-b" {
		t.Fatalf("unexpected errors %+v", report.Errors)
	}

	// Failed item keeps its last successful state.
	b, _, _ := store.GetContent(context.Background(), "content-b")
	if b.Status != ports.ContentStatusFinalized {
		t.Fatalf("failed item must stay finalized, got %s", b.Status)
	}
	payouts, _ := store.ListPayouts(context.Background(), "content-b")
	if len(payouts) != 0 {
		t.Fatalf("failed item must have no ledger row, got %d", len(payouts))
	}
}

func TestProcessBatchSkipsNonFinalizedItems(t *testing.T) {
	store := memory.NewStore()
	store.SeedRate("rule-1", entities.RateTerms{BasePay: 10, ViewRate: 5, ViewsPerUnit: 1000})
	store.SeedContent(ports.ContentSnapshot{
		ContentItemID: "content-tracking",
		Status:        ports.ContentStatusTracking,
		PaymentRuleID: "rule-1",
	})
	store.SeedContent(finalizedSnapshot("content-done", 1000))

	report, _, err := newService(store).ProcessBatch(
		context.Background(), "batch-1", []string{"content-tracking", "content-done"})
	if err != nil {
		t.Fatalf("process batch failed: %v", err)
	}
	if report.SkippedCount != 1 || report.ProcessedCount != 1 {
		t.Fatalf("unexpected report %+v", report)
	}
}

func TestProcessBatchIdempotencyReplayAndConflict(t *testing.T) {
	store := memory.NewStore()
	store.SeedRate("rule-1", entities.RateTerms{BasePay: 10, ViewRate: 5, ViewsPerUnit: 1000})
	store.SeedContent(finalizedSnapshot("content-1", 10000))

	service := newService(store)
	first, _, err := service.ProcessBatch(context.Background(), "batch-1", []string{"content-1"})
	if err != nil {
		t.Fatalf("first batch failed: %v", err)
	}

	second, replayed, err := service.ProcessBatch(context.Background(), "batch-1", []string{"content-1"})
	if err != nil {
		t.Fatalf("replay failed: %v", err)
	}
	if !replayed || second.ProcessedCount != first.ProcessedCount {
		t.Fatalf("expected replayed report, got %+v replayed=%v", second, replayed)
	}
	payouts, _ := store.ListPayouts(context.Background(), "content-1")
	if len(payouts) != 1 {
		t.Fatalf("replay must not create a second payout, got %d", len(payouts))
	}

	_, _, err = service.ProcessBatch(context.Background(), "batch-1", []string{"content-other"})
	if !errors.Is(err, domainerrors.ErrIdempotencyConflict) {
		t.Fatalf("expected idempotency conflict, got %v", err)
	}
}

func TestProcessBatchRequiresKeyAndIDs(t *testing.T) {
	store := memory.NewStore()
	service := newService(store)

	_, _, err := service.ProcessBatch(context.Background(), "", []string{"content-1"})
	if !errors.Is(err, domainerrors.ErrIdempotencyKeyMissing) {
		t.Fatalf("expected missing key error, got %v", err)
	}
	_, _, err = service.ProcessBatch(context.Background(), "batch-1", nil)
	if !errors.Is(err, domainerrors.ErrInvalidBatchInput) {
		t.Fatalf("expected invalid input error, got %v", err)
	}
}

func TestSummaryPendingSet(t *testing.T) {
	store := memory.NewStore()
	store.SeedRate("rule-1", entities.RateTerms{BasePay: 10, ViewRate: 5, ViewsPerUnit: 1000})
	store.SeedContent(finalizedSnapshot("content-owed", 10000))
	paid := finalizedSnapshot("content-paid", 2000)
	paid.Status = ports.ContentStatusPaid
	store.SeedContent(paid)
	store.SeedPayout(entities.Payout{PayoutID: "p1", ContentItemID: "content-paid", Amount: 20, ViewCount: 2000})
	store.SeedContent(ports.ContentSnapshot{
		ContentItemID: "content-tracking",
		Status:        ports.ContentStatusTracking,
		PaymentRuleID: "rule-1",
	})

	summary, err := newService(store).Summary(context.Background())
	if err != nil {
		t.Fatalf("summary failed: %v", err)
	}
	if len(summary.Rows) != 2 {
		t.Fatalf("tracking items must be excluded, got %d rows", len(summary.Rows))
	}
	if summary.PendingCount != 1 || summary.PendingTotal != 60 {
		t.Fatalf("unexpected pending set: count=%d total=%v", summary.PendingCount, summary.PendingTotal)
	}
}
