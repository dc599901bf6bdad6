package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"gymgate/internal/domain/membership"
	"gymgate/internal/infrastructure/persistence/mappers"
	"gymgate/internal/infrastructure/persistence/models"
	"gymgate/internal/shared/db"
	"gymgate/internal/shared/logger"
)

type SubscriptionRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.SubscriptionMapper
	logger logger.Interface
}

func NewSubscriptionRepository(database *gorm.DB, logger logger.Interface) membership.SubscriptionRepository {
	return &SubscriptionRepositoryImpl{
		db:     database,
		mapper: mappers.NewSubscriptionMapper(),
		logger: logger,
	}
}

func (r *SubscriptionRepositoryImpl) Create(ctx context.Context, sub *membership.Subscription) error {
	model, err := r.mapper.ToModel(sub)
	if err != nil {
		return fmt.Errorf("failed to map subscription entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create subscription in database", "error", err)
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	if err := sub.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set subscription ID: %w", err)
	}

	r.logger.Infow("subscription created",
		"id", model.ID,
		"sid", model.SID,
		"client_id", model.ClientID,
		"plan_id", model.PlanID,
	)
	return nil
}

func (r *SubscriptionRepositoryImpl) GetByID(ctx context.Context, id uint) (*membership.Subscription, error) {
	var model models.SubscriptionModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get subscription by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *SubscriptionRepositoryImpl) GetBySID(ctx context.Context, sid string) (*membership.Subscription, error) {
	var model models.SubscriptionModel

	if err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get subscription by SID", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *SubscriptionRepositoryImpl) ListByClientID(ctx context.Context, clientID uint) ([]*membership.Subscription, error) {
	var subscriptionModels []*models.SubscriptionModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("client_id = ?", clientID).
		Order("(paid_visits - used_visits) DESC, purchased_at ASC, id ASC").
		Find(&subscriptionModels).Error; err != nil {
		r.logger.Errorw("failed to list subscriptions by client", "client_id", clientID, "error", err)
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	return r.mapper.ToEntities(subscriptionModels)
}

func (r *SubscriptionRepositoryImpl) Update(ctx context.Context, sub *membership.Subscription) error {
	model, err := r.mapper.ToModel(sub)
	if err != nil {
		return fmt.Errorf("failed to map subscription entity: %w", err)
	}

	result := r.db.WithContext(ctx).Model(&models.SubscriptionModel{}).Where("id = ?", model.ID).Updates(map[string]interface{}{
		"paid_visits":      model.PaidVisits,
		"used_visits":      model.UsedVisits,
		"active":           model.Active,
		"last_visit_at":    model.LastVisitAt,
		"last_access_date": model.LastAccessDate,
		"expires_at":       model.ExpiresAt,
		"updated_at":       model.UpdatedAt,
	})
	if result.Error != nil {
		r.logger.Errorw("failed to update subscription", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update subscription: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return membership.ErrSubscriptionNotFound
	}

	return nil
}

func (r *SubscriptionRepositoryImpl) UpdateWithVersion(ctx context.Context, sub *membership.Subscription, expectedVersion int) error {
	model, err := r.mapper.ToModel(sub)
	if err != nil {
		return fmt.Errorf("failed to map subscription entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.SubscriptionModel{}).
		Where("id = ? AND version = ?", model.ID, expectedVersion).
		Updates(map[string]interface{}{
			"paid_visits":      model.PaidVisits,
			"used_visits":      model.UsedVisits,
			"active":           model.Active,
			"last_visit_at":    model.LastVisitAt,
			"last_access_date": model.LastAccessDate,
			"expires_at":       model.ExpiresAt,
			"version":          expectedVersion + 1,
			"updated_at":       model.UpdatedAt,
		})
	if result.Error != nil {
		r.logger.Errorw("failed to update subscription with version check",
			"id", model.ID,
			"expected_version", expectedVersion,
			"error", result.Error,
		)
		return fmt.Errorf("failed to update subscription: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		// Either the row is gone or another writer bumped the version. The
		// ledger treats both as a conflict and re-reads before retrying.
		return membership.ErrVersionConflict
	}

	return nil
}

func (r *SubscriptionRepositoryImpl) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.SubscriptionModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete subscription", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete subscription: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return membership.ErrSubscriptionNotFound
	}

	r.logger.Infow("subscription deleted", "id", id)
	return nil
}
