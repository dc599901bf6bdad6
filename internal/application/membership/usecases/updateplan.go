package usecases

import (
	"context"
	"fmt"

	"gymgate/internal/application/membership/dto"
	"gymgate/internal/domain/membership"
	"gymgate/internal/shared/logger"
)

// UpdatePlanCommand carries the mutable plan fields. Changing a plan never
// touches already-sold subscriptions: their visit balance and expiry were
// fixed at purchase time.
type UpdatePlanCommand struct {
	SID            string
	Name           *string
	Unlimited      *bool
	DurationDays   *int
	VisitAllotment *int
	PriceCents     *int64
	Active         *bool
}

type UpdatePlanUseCase struct {
	planRepo membership.PlanRepository
	logger   logger.Interface
}

func NewUpdatePlanUseCase(planRepo membership.PlanRepository, logger logger.Interface) *UpdatePlanUseCase {
	return &UpdatePlanUseCase{
		planRepo: planRepo,
		logger:   logger,
	}
}

func (uc *UpdatePlanUseCase) Execute(ctx context.Context, cmd UpdatePlanCommand) (*dto.PlanDTO, error) {
	plan, err := uc.planRepo.GetBySID(ctx, cmd.SID)
	if err != nil {
		uc.logger.Errorw("failed to get plan", "plan_sid", cmd.SID, "error", err)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	if plan == nil {
		return nil, membership.ErrPlanNotFound
	}

	name := plan.Name()
	unlimited := plan.Unlimited()
	durationDays := plan.DurationDays()
	visitAllotment := plan.VisitAllotment()
	priceCents := plan.PriceCents()

	if cmd.Name != nil {
		name = *cmd.Name
	}
	if cmd.Unlimited != nil {
		unlimited = *cmd.Unlimited
	}
	if cmd.DurationDays != nil {
		durationDays = *cmd.DurationDays
	}
	if cmd.VisitAllotment != nil {
		visitAllotment = *cmd.VisitAllotment
	}
	if cmd.PriceCents != nil {
		priceCents = *cmd.PriceCents
	}

	if err := plan.Update(name, unlimited, durationDays, visitAllotment, priceCents); err != nil {
		return nil, fmt.Errorf("invalid plan update: %w", err)
	}

	if cmd.Active != nil {
		if *cmd.Active {
			plan.Activate()
		} else {
			plan.Deactivate()
		}
	}

	if err := uc.planRepo.Update(ctx, plan); err != nil {
		uc.logger.Errorw("failed to update plan", "plan_sid", cmd.SID, "error", err)
		return nil, fmt.Errorf("failed to update plan: %w", err)
	}

	uc.logger.Infow("plan updated", "plan_sid", plan.SID())
	return dto.ToPlanDTO(plan), nil
}
