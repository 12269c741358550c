package application

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"math"
	"sort"
	"strings"
	"time"

	"creatorpay/contexts/payments/payout-service/domain/entities"
	domainerrors "creatorpay/contexts/payments/payout-service/domain/errors"
	"creatorpay/contexts/payments/payout-service/domain/services"
	"creatorpay/contexts/payments/payout-service/ports"
)

type Service struct {
	Repo           ports.PayoutRepository
	Content        ports.ContentProvider
	Rates          ports.RateProvider
	Status         ports.StatusUpdater
	Idempotency    ports.IdempotencyStore
	Clock          ports.Clock
	IDGen          ports.IDGenerator
	IdempotencyTTL time.Duration
	Logger         *slog.Logger
}

// Reconcile computes the earned/paid/owed triple for one content item. A
// missing item or a deleted rule degrades to zero earnings rather than
// failing: items still tracking have no finalized earnings, and stale ledger
// rows must never break the caller.
func (s Service) Reconcile(ctx context.Context, contentItemID string) (ports.Reconciliation, error) {
	contentItemID = strings.TrimSpace(contentItemID)
	payouts, err := s.Repo.ListPayouts(ctx, contentItemID)
	if err != nil {
		return ports.Reconciliation{}, err
	}
	alreadyPaid := 0.0
	for _, payout := range payouts {
		alreadyPaid += payout.Amount
	}

	out := ports.Reconciliation{
		ContentItemID: contentItemID,
		AlreadyPaid:   alreadyPaid,
	}
	snapshot, found, err := s.Content.GetContent(ctx, contentItemID)
	if err != nil {
		return ports.Reconciliation{}, err
	}
	if found {
		out.TotalEarned = s.earned(ctx, snapshot)
	}
	out.RemainingToPay = math.Max(0, out.TotalEarned-out.AlreadyPaid)
	return out, nil
}

// Summary lists reconciliation rows for every finalized or paid item. Rows
// with an outstanding amount form the pending set.
func (s Service) Summary(ctx context.Context) (ports.PayoutSummary, error) {
	snapshots, err := s.Content.ListContent(ctx)
	if err != nil {
		return ports.PayoutSummary{}, err
	}

	summary := ports.PayoutSummary{Rows: make([]ports.SummaryRow, 0, len(snapshots))}
	for _, snapshot := range snapshots {
		if snapshot.Status != ports.ContentStatusFinalized && snapshot.Status != ports.ContentStatusPaid {
			continue
		}
		payouts, err := s.Repo.ListPayouts(ctx, snapshot.ContentItemID)
		if err != nil {
			return ports.PayoutSummary{}, err
		}
		alreadyPaid := 0.0
		viewsAtLastPayout := int64(0)
		for _, payout := range payouts {
			alreadyPaid += payout.Amount
			viewsAtLastPayout = payout.ViewCount
		}
		earned := s.earned(ctx, snapshot)
		remaining := math.Max(0, earned-alreadyPaid)

		summary.Rows = append(summary.Rows, ports.SummaryRow{
			ContentItemID:     snapshot.ContentItemID,
			Title:             snapshot.Title,
			Status:            snapshot.Status,
			TotalEarned:       earned,
			AlreadyPaid:       alreadyPaid,
			RemainingToPay:    remaining,
			ViewsAtLastPayout: viewsAtLastPayout,
			CurrentViews:      snapshot.CurrentViews,
			FinalViews:        snapshot.FinalViews,
		})
		if remaining > 0 {
			summary.PendingCount++
			summary.PendingTotal += remaining
		}
	}
	return summary, nil
}

// ProcessBatch settles the given content items. Items are processed
// independently: one item's persistence failure is reported in the aggregate
// error list and the loop continues. Finalized items with an outstanding
// amount get exactly one payout row snapshotting the final view count, then
// move to paid; fully settled finalized items move to paid without a row;
// anything not finalized is skipped with a warning.
func (s Service) ProcessBatch(
	ctx context.Context,
	idempotencyKey string,
	contentItemIDs []string,
) (ports.BatchReport, bool, error) {
	logger := ResolveLogger(s.Logger)
	if strings.TrimSpace(idempotencyKey) == "" {
		return ports.BatchReport{}, false, domainerrors.ErrIdempotencyKeyMissing
	}
	if len(contentItemIDs) == 0 {
		return ports.BatchReport{}, false, domainerrors.ErrInvalidBatchInput
	}

	ids := make([]string, 0, len(contentItemIDs))
	for _, id := range contentItemIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			return ports.BatchReport{}, false, domainerrors.ErrInvalidBatchInput
		}
		ids = append(ids, id)
	}
	sorted := append([]string(nil), ids...)
	sort.Strings(sorted)
	requestHash := hashPayload(map[string]any{"content_item_ids": sorted})

	now := s.now()
	record, found, err := s.Idempotency.GetRecord(ctx, strings.TrimSpace(idempotencyKey), now)
	if err != nil {
		return ports.BatchReport{}, false, err
	}
	if found {
		if record.RequestHash != requestHash {
			return ports.BatchReport{}, false, domainerrors.ErrIdempotencyConflict
		}
		var replayed ports.BatchReport
		if err := json.Unmarshal(record.ResponsePayload, &replayed); err != nil {
			return ports.BatchReport{}, false, err
		}
		return replayed, true, nil
	}

	report := ports.BatchReport{Errors: make([]ports.BatchError, 0)}
	for _, contentItemID := range ids {
		processed, amount, skipped, itemErr := s.settleItem(ctx, contentItemID, now)
		if itemErr != nil {
			logger.Error("payout batch item failed",
				"event", "payout_batch_item_failed",
				"module", "payments/payout-service",
				"layer", "application",
				"content_id", contentItemID,
				"error", itemErr.Error(),
			)
			report.Errors = append(report.Errors, ports.BatchError{
				ContentItemID: contentItemID,
				Reason:        itemErr.Error(),
			})
			continue
		}
		if skipped {
			logger.Warn("payout batch item skipped",
				"event", "payout_batch_item_skipped",
				"module", "payments/payout-service",
				"layer", "application",
				"content_id", contentItemID,
			)
			report.SkippedCount++
			continue
		}
		if processed {
			report.ProcessedCount++
			report.TotalAmount = round4(report.TotalAmount + amount)
		}
	}

	payload, err := json.Marshal(report)
	if err != nil {
		return ports.BatchReport{}, false, err
	}
	if err := s.Idempotency.PutRecord(ctx, ports.IdempotencyRecord{
		Key:             strings.TrimSpace(idempotencyKey),
		RequestHash:     requestHash,
		ResponsePayload: payload,
		ExpiresAt:       now.Add(s.idempotencyTTL()),
	}); err != nil {
		return ports.BatchReport{}, false, err
	}

	logger.Info("payout batch processed",
		"event", "payout_batch_processed",
		"module", "payments/payout-service",
		"layer", "application",
		"processed", report.ProcessedCount,
		"skipped", report.SkippedCount,
		"failed", len(report.Errors),
		"total_amount", report.TotalAmount,
	)
	return report, false, nil
}

// History returns the payout ledger, optionally narrowed to one item.
func (s Service) History(ctx context.Context, contentItemID string) ([]entities.Payout, error) {
	return s.Repo.ListPayouts(ctx, strings.TrimSpace(contentItemID))
}

// settleItem handles one batch entry. Returns processed=true with the payout
// amount (zero for settle-only transitions), or skipped=true for
// non-finalized items.
func (s Service) settleItem(
	ctx context.Context,
	contentItemID string,
	now time.Time,
) (processed bool, amount float64, skipped bool, err error) {
	snapshot, found, err := s.Content.GetContent(ctx, contentItemID)
	if err != nil {
		return false, 0, false, err
	}
	if !found {
		return false, 0, false, domainerrors.ErrContentNotFound
	}
	if snapshot.Status != ports.ContentStatusFinalized {
		return false, 0, true, nil
	}

	payouts, err := s.Repo.ListPayouts(ctx, contentItemID)
	if err != nil {
		return false, 0, false, err
	}
	alreadyPaid := 0.0
	for _, payout := range payouts {
		alreadyPaid += payout.Amount
	}
	earned := s.earned(ctx, snapshot)
	remaining := math.Max(0, earned-alreadyPaid)

	if remaining > 0 {
		payoutID, err := s.IDGen.NewID(ctx)
		if err != nil {
			return false, 0, false, err
		}
		viewCount := snapshot.CurrentViews
		if snapshot.FinalViews != nil {
			viewCount = *snapshot.FinalViews
		}
		if err := s.Repo.CreatePayout(ctx, entities.Payout{
			PayoutID:      payoutID,
			ContentItemID: contentItemID,
			Amount:        round4(remaining),
			ViewCount:     viewCount,
			Date:          now,
		}); err != nil {
			return false, 0, false, err
		}
	}
	if err := s.Status.MarkPaid(ctx, contentItemID, now); err != nil {
		return false, 0, false, err
	}
	return true, round4(remaining), false, nil
}

// earned yields the finalized earnings for a snapshot: zero unless the item
// is finalized or paid with a recorded final view count and a live rule.
func (s Service) earned(ctx context.Context, snapshot ports.ContentSnapshot) float64 {
	if snapshot.Status != ports.ContentStatusFinalized && snapshot.Status != ports.ContentStatusPaid {
		return 0
	}
	if snapshot.FinalViews == nil {
		return 0
	}
	terms, found, err := s.Rates.RateTerms(ctx, snapshot.PaymentRuleID)
	if err != nil || !found {
		return 0
	}
	return services.CalculatePayment(terms, *snapshot.FinalViews)
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}

func (s Service) idempotencyTTL() time.Duration {
	if s.IdempotencyTTL <= 0 {
		return 7 * 24 * time.Hour
	}
	return s.IdempotencyTTL
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}

func hashPayload(payload map[string]any) string {
	raw, _ := json.Marshal(payload)
	sum := sha256.Sum256(raw)
	return hex.EncodeToString(sum[:])
}
