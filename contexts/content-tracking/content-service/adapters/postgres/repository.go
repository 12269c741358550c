package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"creatorpay/contexts/content-tracking/content-service/domain/entities"
	domainerrors "creatorpay/contexts/content-tracking/content-service/domain/errors"

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

func (r *Repository) CreateItem(ctx context.Context, item entities.ContentItem) error {
	row := itemModelFromEntity(item)
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *Repository) UpdateItem(ctx context.Context, item entities.ContentItem) error {
	row := itemModelFromEntity(item)
	result := r.db.WithContext(ctx).Model(&itemModel{}).
		Where("id = ?", row.ID).
		Updates(map[string]any{
			"title":              row.Title,
			"platform":           row.Platform,
			"platform_id":        row.PlatformID,
			"source_url":         row.SourceURL,
			"belongs_to_channel": row.BelongsToChannel,
			"managed_by_manager": row.ManagedByManager,
			"updated_at":         row.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrItemNotFound
	}
	return nil
}

func (r *Repository) GetItem(ctx context.Context, contentID string) (entities.ContentItem, error) {
	var row itemModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(contentID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.ContentItem{}, domainerrors.ErrItemNotFound
		}
		return entities.ContentItem{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListItems(ctx context.Context) ([]entities.ContentItem, error) {
	var rows []itemModel
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	items := make([]entities.ContentItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) DeleteItem(ctx context.Context, contentID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("content_item_id = ?", strings.TrimSpace(contentID)).
			Delete(&viewHistoryModel{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", strings.TrimSpace(contentID)).Delete(&itemModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrItemNotFound
		}
		return nil
	})
}

func (r *Repository) UpdateViews(ctx context.Context, contentID string, views int64, at time.Time) error {
	result := r.db.WithContext(ctx).Model(&itemModel{}).
		Where("id = ?", strings.TrimSpace(contentID)).
		Updates(map[string]any{
			"current_views": views,
			"updated_at":    at.UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrItemNotFound
	}
	return nil
}

func (r *Repository) SetFinalized(ctx context.Context, contentID string, finalViews int64, at time.Time) error {
	result := r.db.WithContext(ctx).Model(&itemModel{}).
		Where("id = ? AND status = ?", strings.TrimSpace(contentID), string(entities.StatusTracking)).
		Updates(map[string]any{
			"final_views":   finalViews,
			"current_views": finalViews,
			"status":        string(entities.StatusFinalized),
			"updated_at":    at.UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrItemNotFound
	}
	return nil
}

func (r *Repository) UpsertViewSnapshot(ctx context.Context, snapshot entities.ViewSnapshot) error {
	row := viewHistoryModel{
		ID:            snapshot.SnapshotID,
		ContentItemID: snapshot.ContentItemID,
		RecordDate:    snapshot.RecordDate.UTC(),
		ViewCount:     snapshot.ViewCount,
		CreatedAt:     snapshot.CreatedAt.UTC(),
	}
	err := r.db.WithContext(ctx).Create(&row).Error
	if err == nil {
		return nil
	}
	if !isUniqueViolation(err) {
		return err
	}
	// Same-day snapshot already exists; overwrite its count.
	return r.db.WithContext(ctx).Model(&viewHistoryModel{}).
		Where("content_item_id = ? AND record_date = ?", row.ContentItemID, row.RecordDate).
		Update("view_count", row.ViewCount).
		Error
}

func (r *Repository) ListViewHistory(ctx context.Context, contentID string) ([]entities.ViewSnapshot, error) {
	var rows []viewHistoryModel
	if err := r.db.WithContext(ctx).
		Where("content_item_id = ?", strings.TrimSpace(contentID)).
		Order("record_date ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	snapshots := make([]entities.ViewSnapshot, 0, len(rows))
	for _, row := range rows {
		snapshots = append(snapshots, entities.ViewSnapshot{
			SnapshotID:    row.ID,
			ContentItemID: row.ContentItemID,
			RecordDate:    row.RecordDate.UTC(),
			ViewCount:     row.ViewCount,
			CreatedAt:     row.CreatedAt.UTC(),
		})
	}
	return snapshots, nil
}

func (r *Repository) ListSyncableItems(ctx context.Context, limit int) ([]entities.ContentItem, error) {
	if limit <= 0 {
		limit = 100
	}
	var rows []itemModel
	if err := r.db.WithContext(ctx).
		Where("status = ? AND platform_id <> ''", string(entities.StatusTracking)).
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	items := make([]entities.ContentItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

// RuleWindow reads the tracking period straight from the payments schema.
func (r *Repository) RuleWindow(ctx context.Context, ruleID string) (int, bool, error) {
	var days int
	err := r.db.WithContext(ctx).
		Table("payment_settings").
		Select("tracking_period_days").
		Where("id = ?", strings.TrimSpace(ruleID)).
		Take(&days).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return days, true, nil
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

type UUIDGenerator struct{}

func (UUIDGenerator) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}

type itemModel struct {
	ID               string    `gorm:"column:id;primaryKey"`
	Title            string    `gorm:"column:title"`
	Platform         string    `gorm:"column:platform"`
	PlatformID       string    `gorm:"column:platform_id"`
	SourceURL        string    `gorm:"column:source_url"`
	UploadDate       time.Time `gorm:"column:upload_date"`
	StartingViews    int64     `gorm:"column:starting_views"`
	CurrentViews     int64     `gorm:"column:current_views"`
	FinalViews       *int64    `gorm:"column:final_views"`
	Status           string    `gorm:"column:status"`
	PaymentRuleID    string    `gorm:"column:payment_settings_id"`
	BelongsToChannel bool      `gorm:"column:belongs_to_channel"`
	ManagedByManager bool      `gorm:"column:managed_by_manager"`
	CreatedAt        time.Time `gorm:"column:created_at"`
	UpdatedAt        time.Time `gorm:"column:updated_at"`
}

func (itemModel) TableName() string {
	return "content_items"
}

func (m itemModel) toEntity() entities.ContentItem {
	return entities.ContentItem{
		ContentID:        m.ID,
		Title:            m.Title,
		Platform:         entities.Platform(m.Platform),
		PlatformID:       m.PlatformID,
		SourceURL:        m.SourceURL,
		UploadDate:       m.UploadDate.UTC(),
		StartingViews:    m.StartingViews,
		CurrentViews:     m.CurrentViews,
		FinalViews:       m.FinalViews,
		Status:           entities.Status(m.Status),
		PaymentRuleID:    m.PaymentRuleID,
		BelongsToChannel: m.BelongsToChannel,
		ManagedByManager: m.ManagedByManager,
		CreatedAt:        m.CreatedAt.UTC(),
		UpdatedAt:        m.UpdatedAt.UTC(),
	}
}

func itemModelFromEntity(item entities.ContentItem) itemModel {
	return itemModel{
		ID:               strings.TrimSpace(item.ContentID),
		Title:            strings.TrimSpace(item.Title),
		Platform:         string(item.Platform),
		PlatformID:       strings.TrimSpace(item.PlatformID),
		SourceURL:        strings.TrimSpace(item.SourceURL),
		UploadDate:       item.UploadDate.UTC(),
		StartingViews:    item.StartingViews,
		CurrentViews:     item.CurrentViews,
		FinalViews:       item.FinalViews,
		Status:           string(item.Status),
		PaymentRuleID:    strings.TrimSpace(item.PaymentRuleID),
		BelongsToChannel: item.BelongsToChannel,
		ManagedByManager: item.ManagedByManager,
		CreatedAt:        item.CreatedAt.UTC(),
		UpdatedAt:        item.UpdatedAt.UTC(),
	}
}

type viewHistoryModel struct {
	ID            string    `gorm:"column:id;primaryKey"`
	ContentItemID string    `gorm:"column:content_item_id"`
	RecordDate    time.Time `gorm:"column:record_date"`
	ViewCount     int64     `gorm:"column:view_count"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (viewHistoryModel) TableName() string {
	return "view_history"
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
