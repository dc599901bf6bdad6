package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"gymgate/internal/domain/membership"
	"gymgate/internal/infrastructure/persistence/mappers"
	"gymgate/internal/infrastructure/persistence/models"
	"gymgate/internal/shared/logger"
)

type PlanRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.PlanMapper
	logger logger.Interface
}

func NewPlanRepository(database *gorm.DB, logger logger.Interface) membership.PlanRepository {
	return &PlanRepositoryImpl{
		db:     database,
		mapper: mappers.NewPlanMapper(),
		logger: logger,
	}
}

func (r *PlanRepositoryImpl) Create(ctx context.Context, plan *membership.Plan) error {
	model, err := r.mapper.ToModel(plan)
	if err != nil {
		return fmt.Errorf("failed to map plan entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create plan in database", "error", err)
		return fmt.Errorf("failed to create plan: %w", err)
	}

	if err := plan.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set plan ID: %w", err)
	}

	r.logger.Infow("plan created", "id", model.ID, "sid", model.SID, "name", model.Name)
	return nil
}

func (r *PlanRepositoryImpl) GetByID(ctx context.Context, id uint) (*membership.Plan, error) {
	var model models.PlanModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get plan by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *PlanRepositoryImpl) GetBySID(ctx context.Context, sid string) (*membership.Plan, error) {
	var model models.PlanModel

	if err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get plan by SID", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *PlanRepositoryImpl) List(ctx context.Context, filter membership.PlanListFilter) ([]*membership.Plan, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.PlanModel{})
	if filter.ActiveOnly {
		query = query.Where("active = ?", true)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count plans", "error", err)
		return nil, 0, fmt.Errorf("failed to count plans: %w", err)
	}

	if filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var planModels []*models.PlanModel
	if err := query.Order("price_cents ASC").Find(&planModels).Error; err != nil {
		r.logger.Errorw("failed to list plans", "error", err)
		return nil, 0, fmt.Errorf("failed to list plans: %w", err)
	}

	entities, err := r.mapper.ToEntities(planModels)
	if err != nil {
		return nil, 0, err
	}

	return entities, total, nil
}

func (r *PlanRepositoryImpl) Update(ctx context.Context, plan *membership.Plan) error {
	model, err := r.mapper.ToModel(plan)
	if err != nil {
		return fmt.Errorf("failed to map plan entity: %w", err)
	}

	result := r.db.WithContext(ctx).Model(&models.PlanModel{}).Where("id = ?", model.ID).Updates(map[string]interface{}{
		"name":            model.Name,
		"unlimited":       model.Unlimited,
		"duration_days":   model.DurationDays,
		"visit_allotment": model.VisitAllotment,
		"price_cents":     model.PriceCents,
		"currency":        model.Currency,
		"active":          model.Active,
		"updated_at":      model.UpdatedAt,
	})
	if result.Error != nil {
		r.logger.Errorw("failed to update plan", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update plan: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return membership.ErrPlanNotFound
	}

	return nil
}

func (r *PlanRepositoryImpl) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.SubscriptionModel{}).Where("plan_id = ?", id).
			Count(&count).Error; err != nil {
			return fmt.Errorf("failed to count plan subscriptions: %w", err)
		}
		if count > 0 {
			return membership.ErrPlanInUse
		}

		result := tx.Delete(&models.PlanModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete plan: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return membership.ErrPlanNotFound
		}

		r.logger.Infow("plan deleted", "id", id)
		return nil
	})
}

func (r *PlanRepositoryImpl) CountSubscriptions(ctx context.Context, planID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.SubscriptionModel{}).
		Where("plan_id = ?", planID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count plan subscriptions: %w", err)
	}
	return count, nil
}
