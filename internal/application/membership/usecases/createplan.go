package usecases

import (
	"context"
	"fmt"

	"gymgate/internal/application/membership/dto"
	"gymgate/internal/domain/membership"
	"gymgate/internal/shared/id"
	"gymgate/internal/shared/logger"
)

type CreatePlanCommand struct {
	Name           string
	Unlimited      bool
	DurationDays   int
	VisitAllotment int
	PriceCents     int64
	Currency       string
}

type CreatePlanUseCase struct {
	planRepo membership.PlanRepository
	logger   logger.Interface
}

func NewCreatePlanUseCase(planRepo membership.PlanRepository, logger logger.Interface) *CreatePlanUseCase {
	return &CreatePlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *CreatePlanUseCase) Execute(ctx context.Context, cmd CreatePlanCommand) (*dto.PlanDTO, error) {
	sid, err := id.GenerateWithPrefix(id.PrefixPlan, id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate plan ID: %w", err)
	}

	plan, err := membership.NewPlan(sid, cmd.Name, cmd.Unlimited, cmd.DurationDays, cmd.VisitAllotment, cmd.PriceCents, cmd.Currency)
	if err != nil {
		return nil, fmt.Errorf("invalid plan: %w", err)
	}

	if err := uc.planRepo.Create(ctx, plan); err != nil {
		uc.logger.Errorw("failed to persist plan", "error", err)
		return nil, fmt.Errorf("failed to persist plan: %w", err)
	}

	uc.logger.Infow("plan created", "plan_sid", plan.SID(), "name", plan.Name())
	return dto.ToPlanDTO(plan), nil
}
