package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"gymgate/internal/domain/access"
	"gymgate/internal/infrastructure/persistence/mappers"
	"gymgate/internal/infrastructure/persistence/models"
	"gymgate/internal/shared/db"
	"gymgate/internal/shared/logger"
)

type AccessLogRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.AccessLogMapper
	logger logger.Interface
}

func NewAccessLogRepository(database *gorm.DB, logger logger.Interface) access.Repository {
	return &AccessLogRepositoryImpl{
		db:     database,
		mapper: mappers.NewAccessLogMapper(),
		logger: logger,
	}
}

func (r *AccessLogRepositoryImpl) Append(ctx context.Context, entry *access.LogEntry) error {
	model, err := r.mapper.ToModel(entry)
	if err != nil {
		return fmt.Errorf("failed to map access log entry: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to append access log entry", "error", err)
		return fmt.Errorf("failed to append access log entry: %w", err)
	}

	if err := entry.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set access log entry ID: %w", err)
	}

	return nil
}

func (r *AccessLogRepositoryImpl) List(ctx context.Context, filter access.ListFilter) ([]*access.LogEntry, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.AccessLogModel{})

	if filter.ClientID != nil {
		query = query.Where("client_id = ?", *filter.ClientID)
	}
	if filter.Granted != nil {
		query = query.Where("granted = ?", *filter.Granted)
	}
	if filter.DeviceID != "" {
		query = query.Where("device_id = ?", filter.DeviceID)
	}
	if filter.From != nil {
		query = query.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("created_at < ?", *filter.To)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count access log entries", "error", err)
		return nil, 0, fmt.Errorf("failed to count access log entries: %w", err)
	}

	if filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var logModels []*models.AccessLogModel
	if err := query.Order("created_at DESC, id DESC").Find(&logModels).Error; err != nil {
		r.logger.Errorw("failed to list access log entries", "error", err)
		return nil, 0, fmt.Errorf("failed to list access log entries: %w", err)
	}

	entities, err := r.mapper.ToEntities(logModels)
	if err != nil {
		return nil, 0, err
	}

	return entities, total, nil
}

func (r *AccessLogRepositoryImpl) CountSince(ctx context.Context, since time.Time, granted bool) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.AccessLogModel{}).
		Where("created_at >= ? AND granted = ?", since, granted).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count access log entries: %w", err)
	}
	return count, nil
}
