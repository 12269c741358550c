package ports

import (
	"context"
	"time"

	"creatorpay/contexts/payments/payout-service/domain/entities"
)

// Content status values as persisted by the content-tracking context. The
// payouts context only reads them, never transitions anything except to paid.
const (
	ContentStatusTracking  = "tracking"
	ContentStatusFinalized = "finalized"
	ContentStatusPaid      = "paid"
)

// ContentSnapshot is the read-only slice of a content item this service
// needs for reconciliation.
type ContentSnapshot struct {
	ContentItemID string
	Title         string
	Status        string
	StartingViews int64
	CurrentViews  int64
	FinalViews    *int64
	PaymentRuleID string
}

// Reconciliation is the earned/paid/owed triple for one content item.
// RemainingToPay is never negative.
type Reconciliation struct {
	ContentItemID  string
	TotalEarned    float64
	AlreadyPaid    float64
	RemainingToPay float64
}

type SummaryRow struct {
	ContentItemID     string
	Title             string
	Status            string
	TotalEarned       float64
	AlreadyPaid       float64
	RemainingToPay    float64
	ViewsAtLastPayout int64
	CurrentViews      int64
	FinalViews        *int64
}

type PayoutSummary struct {
	Rows         []SummaryRow
	PendingCount int
	PendingTotal float64
}

type BatchError struct {
	ContentItemID string `json:"content_item_id"`
	Reason        string `json:"reason"`
}

type BatchReport struct {
	ProcessedCount int          `json:"processed_count"`
	TotalAmount    float64      `json:"total_amount"`
	SkippedCount   int          `json:"skipped_count"`
	Errors         []BatchError `json:"errors"`
}

type PayoutRepository interface {
	CreatePayout(ctx context.Context, payout entities.Payout) error
	// ListPayouts returns the ledger for one item, or every payout when
	// contentItemID is empty, oldest first.
	ListPayouts(ctx context.Context, contentItemID string) ([]entities.Payout, error)
}

type ContentProvider interface {
	GetContent(ctx context.Context, contentItemID string) (ContentSnapshot, bool, error)
	ListContent(ctx context.Context) ([]ContentSnapshot, error)
}

type RateProvider interface {
	RateTerms(ctx context.Context, ruleID string) (entities.RateTerms, bool, error)
}

type StatusUpdater interface {
	MarkPaid(ctx context.Context, contentItemID string, at time.Time) error
}

type IdempotencyRecord struct {
	Key             string
	RequestHash     string
	ResponsePayload []byte
	ExpiresAt       time.Time
}

type IdempotencyStore interface {
	GetRecord(ctx context.Context, key string, now time.Time) (IdempotencyRecord, bool, error)
	PutRecord(ctx context.Context, record IdempotencyRecord) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
