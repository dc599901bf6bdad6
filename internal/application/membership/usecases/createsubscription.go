package usecases

import (
	"context"
	"fmt"

	"gymgate/internal/application/membership/dto"
	"gymgate/internal/domain/client"
	"gymgate/internal/domain/membership"
	"gymgate/internal/shared/biztime"
	"gymgate/internal/shared/id"
	"gymgate/internal/shared/logger"
)

type CreateSubscriptionCommand struct {
	ClientSID string
	PlanSID   string
}

// CreateSubscriptionUseCase sells a plan to a client. The visit allotment
// and expiry are copied from the plan at purchase time; later plan edits do
// not reach back into sold subscriptions.
type CreateSubscriptionUseCase struct {
	clientRepo client.Repository
	planRepo   membership.PlanRepository
	subRepo    membership.SubscriptionRepository
	logger     logger.Interface
}

func NewCreateSubscriptionUseCase(
	clientRepo client.Repository,
	planRepo membership.PlanRepository,
	subRepo membership.SubscriptionRepository,
	logger logger.Interface,
) *CreateSubscriptionUseCase {
	return &CreateSubscriptionUseCase{
		clientRepo: clientRepo,
		planRepo:   planRepo,
		subRepo:    subRepo,
		logger:     logger,
	}
}

func (uc *CreateSubscriptionUseCase) Execute(ctx context.Context, cmd CreateSubscriptionCommand) (*dto.SubscriptionDTO, error) {
	owner, err := uc.clientRepo.GetBySID(ctx, cmd.ClientSID)
	if err != nil {
		uc.logger.Errorw("failed to get client", "client_sid", cmd.ClientSID, "error", err)
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	if owner == nil {
		return nil, client.ErrNotFound
	}

	plan, err := uc.planRepo.GetBySID(ctx, cmd.PlanSID)
	if err != nil {
		uc.logger.Errorw("failed to get plan", "plan_sid", cmd.PlanSID, "error", err)
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	if plan == nil {
		return nil, membership.ErrPlanNotFound
	}
	if !plan.Active() {
		return nil, fmt.Errorf("plan %s is not for sale", plan.SID())
	}

	sid, err := id.GenerateWithPrefix(id.PrefixSubscription, id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate subscription ID: %w", err)
	}

	purchasedAt := biztime.NowUTC()
	sub, err := membership.NewSubscription(
		sid,
		owner.ID(),
		plan.ID(),
		plan.VisitAllotment(),
		purchasedAt,
		plan.ExpiryFor(purchasedAt),
	)
	if err != nil {
		return nil, fmt.Errorf("invalid subscription: %w", err)
	}

	if err := uc.subRepo.Create(ctx, sub); err != nil {
		uc.logger.Errorw("failed to persist subscription", "error", err)
		return nil, fmt.Errorf("failed to persist subscription: %w", err)
	}

	uc.logger.Infow("subscription created",
		"subscription_sid", sub.SID(),
		"client_sid", owner.SID(),
		"plan_sid", plan.SID(),
		"paid_visits", sub.PaidVisits(),
	)
	return dto.ToSubscriptionDTO(sub, owner.SID(), plan.SID(), plan.Name()), nil
}
