package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"creatorpay/contexts/content-tracking/channel-service/domain/entities"
	domainerrors "creatorpay/contexts/content-tracking/channel-service/domain/errors"

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

func (r *Repository) CreateChannel(ctx context.Context, channel entities.Channel) error {
	row := channelModelFromEntity(channel)
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *Repository) UpdateChannel(ctx context.Context, channel entities.Channel) error {
	row := channelModelFromEntity(channel)
	result := r.db.WithContext(ctx).Model(&channelModel{}).
		Where("id = ?", row.ID).
		Updates(map[string]any{
			"name":                    row.Name,
			"platform":                row.Platform,
			"platform_id":             row.PlatformID,
			"platform_url":            row.PlatformURL,
			"default_payment_rule_id": row.DefaultPaymentRuleID,
			"updated_at":              row.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrChannelNotFound
	}
	return nil
}

func (r *Repository) GetChannel(ctx context.Context, channelID string) (entities.Channel, error) {
	var row channelModel
	err := r.db.WithContext(ctx).
		Where("id = ?", strings.TrimSpace(channelID)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Channel{}, domainerrors.ErrChannelNotFound
		}
		return entities.Channel{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListChannels(ctx context.Context) ([]entities.Channel, error) {
	var rows []channelModel
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	channels := make([]entities.Channel, 0, len(rows))
	for _, row := range rows {
		channels = append(channels, row.toEntity())
	}
	return channels, nil
}

func (r *Repository) DeleteChannel(ctx context.Context, channelID string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("channel_id = ?", strings.TrimSpace(channelID)).
			Delete(&mappingModel{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ?", strings.TrimSpace(channelID)).Delete(&channelModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerrors.ErrChannelNotFound
		}
		return nil
	})
}

func (r *Repository) CreateMapping(ctx context.Context, mapping entities.ChannelMapping) error {
	row := mappingModel{
		ID:            strings.TrimSpace(mapping.MappingID),
		ChannelID:     strings.TrimSpace(mapping.ChannelID),
		ContentItemID: strings.TrimSpace(mapping.ContentItemID),
		CreatedAt:     mapping.CreatedAt.UTC(),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrMappingExists
		}
		return err
	}
	return nil
}

func (r *Repository) ListMappings(ctx context.Context, channelID string) ([]entities.ChannelMapping, error) {
	var rows []mappingModel
	if err := r.db.WithContext(ctx).
		Where("channel_id = ?", strings.TrimSpace(channelID)).
		Order("created_at ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	mappings := make([]entities.ChannelMapping, 0, len(rows))
	for _, row := range rows {
		mappings = append(mappings, entities.ChannelMapping{
			MappingID:     row.ID,
			ChannelID:     row.ChannelID,
			ContentItemID: row.ContentItemID,
			CreatedAt:     row.CreatedAt.UTC(),
		})
	}
	return mappings, nil
}

func (r *Repository) DeleteMapping(ctx context.Context, channelID string, contentItemID string) error {
	result := r.db.WithContext(ctx).
		Where("channel_id = ? AND content_item_id = ?", strings.TrimSpace(channelID), strings.TrimSpace(contentItemID)).
		Delete(&mappingModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrMappingNotFound
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

type channelModel struct {
	ID                   string    `gorm:"column:id;primaryKey"`
	Name                 string    `gorm:"column:name"`
	Platform             string    `gorm:"column:platform"`
	PlatformID           string    `gorm:"column:platform_id"`
	PlatformURL          string    `gorm:"column:platform_url"`
	DefaultPaymentRuleID *string   `gorm:"column:default_payment_rule_id"`
	CreatedAt            time.Time `gorm:"column:created_at"`
	UpdatedAt            time.Time `gorm:"column:updated_at"`
}

func (channelModel) TableName() string {
	return "channels"
}

func (m channelModel) toEntity() entities.Channel {
	return entities.Channel{
		ChannelID:            m.ID,
		Name:                 m.Name,
		Platform:             m.Platform,
		PlatformID:           m.PlatformID,
		PlatformURL:          m.PlatformURL,
		DefaultPaymentRuleID: m.DefaultPaymentRuleID,
		CreatedAt:            m.CreatedAt.UTC(),
		UpdatedAt:            m.UpdatedAt.UTC(),
	}
}

func channelModelFromEntity(channel entities.Channel) channelModel {
	return channelModel{
		ID:                   strings.TrimSpace(channel.ChannelID),
		Name:                 strings.TrimSpace(channel.Name),
		Platform:             strings.TrimSpace(channel.Platform),
		PlatformID:           strings.TrimSpace(channel.PlatformID),
		PlatformURL:          strings.TrimSpace(channel.PlatformURL),
		DefaultPaymentRuleID: channel.DefaultPaymentRuleID,
		CreatedAt:            channel.CreatedAt.UTC(),
		UpdatedAt:            channel.UpdatedAt.UTC(),
	}
}

type mappingModel struct {
	ID            string    `gorm:"column:id;primaryKey"`
	ChannelID     string    `gorm:"column:channel_id"`
	ContentItemID string    `gorm:"column:content_item_id"`
	CreatedAt     time.Time `gorm:"column:created_at"`
}

func (mappingModel) TableName() string {
	return "channel_mappings"
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
