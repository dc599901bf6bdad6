package usecases

import (
	"context"
	"errors"
	"fmt"

	"gymgate/internal/domain/membership"
	"gymgate/internal/shared/logger"
)

type DeletePlanUseCase struct {
	planRepo membership.PlanRepository
	logger   logger.Interface
}

func NewDeletePlanUseCase(planRepo membership.PlanRepository, logger logger.Interface) *DeletePlanUseCase {
	return &DeletePlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *DeletePlanUseCase) Execute(ctx context.Context, sid string) error {
	plan, err := uc.planRepo.GetBySID(ctx, sid)
	if err != nil {
		uc.logger.Errorw("failed to get plan", "plan_sid", sid, "error", err)
		return fmt.Errorf("failed to get plan: %w", err)
	}
	if plan == nil {
		return membership.ErrPlanNotFound
	}

	if err := uc.planRepo.Delete(ctx, plan.ID()); err != nil {
		if errors.Is(err, membership.ErrPlanInUse) {
			return err
		}
		uc.logger.Errorw("failed to delete plan", "plan_sid", sid, "error", err)
		return fmt.Errorf("failed to delete plan: %w", err)
	}

	uc.logger.Infow("plan deleted", "plan_sid", sid)
	return nil
}
