package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"creatorpay/contexts/payments/payout-service/domain/entities"
	"creatorpay/contexts/payments/payout-service/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{db: db, logger: logger}
}

func (r *Repository) CreatePayout(ctx context.Context, payout entities.Payout) error {
	row := payoutModel{
		ID:            strings.TrimSpace(payout.PayoutID),
		ContentItemID: strings.TrimSpace(payout.ContentItemID),
		Amount:        payout.Amount,
		ViewCount:     payout.ViewCount,
		Date:          payout.Date.UTC(),
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *Repository) ListPayouts(ctx context.Context, contentItemID string) ([]entities.Payout, error) {
	query := r.db.WithContext(ctx).Order("date ASC")
	if strings.TrimSpace(contentItemID) != "" {
		query = query.Where("content_item_id = ?", strings.TrimSpace(contentItemID))
	}
	var rows []payoutModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	payouts := make([]entities.Payout, 0, len(rows))
	for _, row := range rows {
		payouts = append(payouts, entities.Payout{
			PayoutID:      row.ID,
			ContentItemID: row.ContentItemID,
			Amount:        row.Amount,
			ViewCount:     row.ViewCount,
			Date:          row.Date.UTC(),
		})
	}
	return payouts, nil
}

func (r *Repository) GetContent(ctx context.Context, contentItemID string) (ports.ContentSnapshot, bool, error) {
	var row contentRow
	err := r.db.WithContext(ctx).
		Table("content_items").
		Select("id", "title", "status", "starting_views", "current_views", "final_views", "payment_settings_id").
		Where("id = ?", strings.TrimSpace(contentItemID)).
		Take(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.ContentSnapshot{}, false, nil
		}
		return ports.ContentSnapshot{}, false, err
	}
	return row.toSnapshot(), true, nil
}

func (r *Repository) ListContent(ctx context.Context) ([]ports.ContentSnapshot, error) {
	var rows []contentRow
	if err := r.db.WithContext(ctx).
		Table("content_items").
		Select("id", "title", "status", "starting_views", "current_views", "final_views", "payment_settings_id").
		Order("created_at DESC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	snapshots := make([]ports.ContentSnapshot, 0, len(rows))
	for _, row := range rows {
		snapshots = append(snapshots, row.toSnapshot())
	}
	return snapshots, nil
}

func (r *Repository) RateTerms(ctx context.Context, ruleID string) (entities.RateTerms, bool, error) {
	var row rateRow
	err := r.db.WithContext(ctx).
		Table("payment_settings").
		Select("base_pay", "view_rate", "views_per_unit", "max_payout").
		Where("id = ?", strings.TrimSpace(ruleID)).
		Take(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.RateTerms{}, false, nil
		}
		return entities.RateTerms{}, false, err
	}

	var bonusRows []bonusRow
	if err := r.db.WithContext(ctx).
		Table("bonus_thresholds").
		Select("threshold", "amount").
		Where("payment_settings_id = ?", strings.TrimSpace(ruleID)).
		Order("threshold ASC").
		Find(&bonusRows).
		Error; err != nil {
		return entities.RateTerms{}, false, err
	}

	terms := entities.RateTerms{
		BasePay:      row.BasePay,
		ViewRate:     row.ViewRate,
		ViewsPerUnit: row.ViewsPerUnit,
		MaxPayout:    row.MaxPayout,
	}
	for _, bonus := range bonusRows {
		terms.BonusThresholds = append(terms.BonusThresholds, entities.BonusThreshold{
			ViewThreshold: bonus.Threshold,
			BonusAmount:   bonus.Amount,
		})
	}
	return terms, true, nil
}

func (r *Repository) MarkPaid(ctx context.Context, contentItemID string, at time.Time) error {
	result := r.db.WithContext(ctx).
		Table("content_items").
		Where("id = ? AND status = ?", strings.TrimSpace(contentItemID), ports.ContentStatusFinalized).
		Updates(map[string]any{
			"status":     ports.ContentStatusPaid,
			"updated_at": at.UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("content item not in finalized state")
	}
	return nil
}

func (r *Repository) GetRecord(ctx context.Context, key string, now time.Time) (ports.IdempotencyRecord, bool, error) {
	var row idempotencyModel
	err := r.db.WithContext(ctx).
		Where("key = ? AND expires_at > ?", key, now.UTC()).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.IdempotencyRecord{}, false, nil
		}
		return ports.IdempotencyRecord{}, false, err
	}
	return ports.IdempotencyRecord{
		Key:             row.Key,
		RequestHash:     row.RequestHash,
		ResponsePayload: row.ResponsePayload,
		ExpiresAt:       row.ExpiresAt.UTC(),
	}, true, nil
}

func (r *Repository) PutRecord(ctx context.Context, record ports.IdempotencyRecord) error {
	row := idempotencyModel{
		Key:             record.Key,
		RequestHash:     record.RequestHash,
		ResponsePayload: record.ResponsePayload,
		ExpiresAt:       record.ExpiresAt.UTC(),
	}
	return r.db.WithContext(ctx).Save(&row).Error
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

type payoutModel struct {
	ID            string    `gorm:"column:id;primaryKey"`
	ContentItemID string    `gorm:"column:content_item_id"`
	Amount        float64   `gorm:"column:amount"`
	ViewCount     int64     `gorm:"column:view_count"`
	Date          time.Time `gorm:"column:date"`
}

func (payoutModel) TableName() string {
	return "payouts"
}

type idempotencyModel struct {
	Key             string    `gorm:"column:key;primaryKey"`
	RequestHash     string    `gorm:"column:request_hash"`
	ResponsePayload []byte    `gorm:"column:response_payload"`
	ExpiresAt       time.Time `gorm:"column:expires_at"`
}

func (idempotencyModel) TableName() string {
	return "idempotency_keys"
}

type contentRow struct {
	ID            string `gorm:"column:id"`
	Title         string `gorm:"column:title"`
	Status        string `gorm:"column:status"`
	StartingViews int64  `gorm:"column:starting_views"`
	CurrentViews  int64  `gorm:"column:current_views"`
	FinalViews    *int64 `gorm:"column:final_views"`
	PaymentRuleID string `gorm:"column:payment_settings_id"`
}

func (m contentRow) toSnapshot() ports.ContentSnapshot {
	return ports.ContentSnapshot{
		ContentItemID: m.ID,
		Title:         m.Title,
		Status:        m.Status,
		StartingViews: m.StartingViews,
		CurrentViews:  m.CurrentViews,
		FinalViews:    m.FinalViews,
		PaymentRuleID: m.PaymentRuleID,
	}
}

type rateRow struct {
	BasePay      float64  `gorm:"column:base_pay"`
	ViewRate     float64  `gorm:"column:view_rate"`
	ViewsPerUnit int64    `gorm:"column:views_per_unit"`
	MaxPayout    *float64 `gorm:"column:max_payout"`
}

type bonusRow struct {
	Threshold int64   `gorm:"column:threshold"`
	Amount    float64 `gorm:"column:amount"`
}
