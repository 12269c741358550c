package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"creatorpay/contexts/payments/payment-rule-service/domain/entities"
	domainerrors "creatorpay/contexts/payments/payment-rule-service/domain/errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
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

func (r *Repository) CreateRule(ctx context.Context, rule entities.PaymentRule) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := ruleModelFromEntity(rule)
		if err := tx.Create(&row).Error; err != nil {
			if isUniqueViolation(err) {
				return domainerrors.ErrInvalidRuleInput
			}
			return err
		}
		return replaceBonusThresholds(tx, rule)
	})
}

func (r *Repository) UpdateRule(ctx context.Context, rule entities.PaymentRule) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&ruleModel{}).
			Where("id = ?", strings.TrimSpace(rule.RuleID)).
			Updates(ruleUpdatesFromEntity(rule))
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrRuleNotFound
		}
		if err := tx.Where("payment_settings_id = ?", rule.RuleID).
			Delete(&bonusThresholdModel{}).Error; err != nil {
			return err
		}
		return replaceBonusThresholds(tx, rule)
	})
}

func (r *Repository) GetRule(ctx context.Context, ruleID string) (entities.PaymentRule, error) {
	var row ruleModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(ruleID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.PaymentRule{}, domainerrors.ErrRuleNotFound
		}
		return entities.PaymentRule{}, err
	}

	bonuses, err := r.loadBonuses(ctx, []string{row.ID})
	if err != nil {
		return entities.PaymentRule{}, err
	}
	return row.toEntity(bonuses[row.ID]), nil
}

func (r *Repository) ListRules(ctx context.Context) ([]entities.PaymentRule, error) {
	var rows []ruleModel
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	bonuses, err := r.loadBonuses(ctx, ids)
	if err != nil {
		return nil, err
	}

	items := make([]entities.PaymentRule, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity(bonuses[row.ID]))
	}
	return items, nil
}

func (r *Repository) DeleteRule(ctx context.Context, ruleID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("payment_settings_id = ?", strings.TrimSpace(ruleID)).
			Delete(&bonusThresholdModel{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", strings.TrimSpace(ruleID)).Delete(&ruleModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrRuleNotFound
		}
		return nil
	})
}

func (r *Repository) CountContentByRule(ctx context.Context, ruleID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("content_items").
		Where("payment_settings_id = ?", strings.TrimSpace(ruleID)).
		Count(&count).
		Error
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *Repository) loadBonuses(ctx context.Context, ruleIDs []string) (map[string][]entities.BonusThreshold, error) {
	out := make(map[string][]entities.BonusThreshold, len(ruleIDs))
	if len(ruleIDs) == 0 {
		return out, nil
	}

	var rows []bonusThresholdModel
	if err := r.db.WithContext(ctx).
		Where("payment_settings_id IN ?", ruleIDs).
		Order("threshold ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.PaymentSettingsID] = append(out[row.PaymentSettingsID], entities.BonusThreshold{
			ViewThreshold: row.Threshold,
			BonusAmount:   row.Amount,
		})
	}
	return out, nil
}

func replaceBonusThresholds(tx *gorm.DB, rule entities.PaymentRule) error {
	for _, bonus := range rule.BonusThresholds {
		row := bonusThresholdModel{
			ID:                uuid.NewString(),
			PaymentSettingsID: strings.TrimSpace(rule.RuleID),
			Threshold:         bonus.ViewThreshold,
			Amount:            bonus.BonusAmount,
			CreatedAt:         rule.UpdatedAt.UTC(),
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
	}
	return nil
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

type ruleModel struct {
	ID                 string    `gorm:"column:id;primaryKey"`
	Name               string    `gorm:"column:name"`
	BasePay            float64   `gorm:"column:base_pay"`
	ViewRate           float64   `gorm:"column:view_rate"`
	ViewsPerUnit       int64     `gorm:"column:views_per_unit"`
	TrackingPeriodDays int       `gorm:"column:tracking_period_days"`
	MaxPayout          *float64  `gorm:"column:max_payout"`
	CombineViews       bool      `gorm:"column:combine_views"`
	CreatedAt          time.Time `gorm:"column:created_at"`
	UpdatedAt          time.Time `gorm:"column:updated_at"`
}

func (ruleModel) TableName() string {
	return "payment_settings"
}

func (m ruleModel) toEntity(bonuses []entities.BonusThreshold) entities.PaymentRule {
	return entities.PaymentRule{
		RuleID:             m.ID,
		Name:               m.Name,
		BasePay:            m.BasePay,
		ViewRate:           m.ViewRate,
		ViewsPerUnit:       m.ViewsPerUnit,
		TrackingPeriodDays: m.TrackingPeriodDays,
		MaxPayout:          m.MaxPayout,
		BonusThresholds:    bonuses,
		CombineViews:       m.CombineViews,
		CreatedAt:          m.CreatedAt.UTC(),
		UpdatedAt:          m.UpdatedAt.UTC(),
	}
}

func ruleModelFromEntity(item entities.PaymentRule) ruleModel {
	return ruleModel{
		ID:                 strings.TrimSpace(item.RuleID),
		Name:               strings.TrimSpace(item.Name),
		BasePay:            item.BasePay,
		ViewRate:           item.ViewRate,
		ViewsPerUnit:       item.ViewsPerUnit,
		TrackingPeriodDays: item.TrackingPeriodDays,
		MaxPayout:          item.MaxPayout,
		CombineViews:       item.CombineViews,
		CreatedAt:          item.CreatedAt.UTC(),
		UpdatedAt:          item.UpdatedAt.UTC(),
	}
}

func ruleUpdatesFromEntity(item entities.PaymentRule) map[string]any {
	row := ruleModelFromEntity(item)
	return map[string]any{
		"name":                 row.Name,
		"base_pay":             row.BasePay,
		"view_rate":            row.ViewRate,
		"views_per_unit":       row.ViewsPerUnit,
		"tracking_period_days": row.TrackingPeriodDays,
		"max_payout":           row.MaxPayout,
		"combine_views":        row.CombineViews,
		"updated_at":           row.UpdatedAt,
	}
}

type bonusThresholdModel struct {
	ID                string    `gorm:"column:id;primaryKey"`
	PaymentSettingsID string    `gorm:"column:payment_settings_id"`
	Threshold         int64     `gorm:"column:threshold"`
	Amount            float64   `gorm:"column:amount"`
	CreatedAt         time.Time `gorm:"column:created_at"`
}

func (bonusThresholdModel) TableName() string {
	return "bonus_thresholds"
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
