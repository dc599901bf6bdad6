package usecases

import (
	"context"
	"fmt"

	"gymgate/internal/application/membership/dto"
	"gymgate/internal/domain/membership"
	"gymgate/internal/shared/logger"
)

type GetPlanUseCase struct {
	planRepo membership.PlanRepository
	logger   logger.Interface
}

func NewGetPlanUseCase(planRepo membership.PlanRepository, logger logger.Interface) *GetPlanUseCase {
	return &GetPlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *GetPlanUseCase) Execute(ctx context.Context, sid string) (*dto.PlanDTO, error) {
	plan, err := uc.planRepo.GetBySID(ctx, sid)
	if err != nil {
		uc.logger.Errorw("failed to get plan", "plan_sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	if plan == nil {
		return nil, membership.ErrPlanNotFound
	}

	return dto.ToPlanDTO(plan), nil
}
