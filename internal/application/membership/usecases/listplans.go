package usecases

import (
	"context"
	"fmt"

	"gymgate/internal/application/membership/dto"
	"gymgate/internal/domain/membership"
	"gymgate/internal/shared/logger"
)

type ListPlansQuery struct {
	ActiveOnly bool
	Page       int
	PageSize   int
}

type ListPlansUseCase struct {
	planRepo membership.PlanRepository
	logger   logger.Interface
}

func NewListPlansUseCase(planRepo membership.PlanRepository, logger logger.Interface) *ListPlansUseCase {
	return &ListPlansUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *ListPlansUseCase) Execute(ctx context.Context, query ListPlansQuery) ([]*dto.PlanDTO, int64, error) {
	plans, total, err := uc.planRepo.List(ctx, membership.PlanListFilter{
		ActiveOnly: query.ActiveOnly,
		Page:       query.Page,
		PageSize:   query.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list plans", "error", err)
		return nil, 0, fmt.Errorf("failed to list plans: %w", err)
	}

	return dto.ToPlanDTOs(plans), total, nil
}
