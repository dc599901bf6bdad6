package usecases

import (
	"context"
	"fmt"

	"gymgate/internal/application/membership/dto"
	"gymgate/internal/domain/client"
	"gymgate/internal/domain/membership"
	"gymgate/internal/shared/logger"
)

// DeactivateSubscriptionUseCase freezes a subscription so the turnstile
// denies it regardless of remaining visits. The balance is preserved and a
// later reactivation would restore it.
type DeactivateSubscriptionUseCase struct {
	subRepo    membership.SubscriptionRepository
	clientRepo client.Repository
	planRepo   membership.PlanRepository
	logger     logger.Interface
}

func NewDeactivateSubscriptionUseCase(
	subRepo membership.SubscriptionRepository,
	clientRepo client.Repository,
	planRepo membership.PlanRepository,
	logger logger.Interface,
) *DeactivateSubscriptionUseCase {
	return &DeactivateSubscriptionUseCase{
		subRepo:    subRepo,
		clientRepo: clientRepo,
		planRepo:   planRepo,
		logger:     logger,
	}
}

func (uc *DeactivateSubscriptionUseCase) Execute(ctx context.Context, subscriptionSID string) (*dto.SubscriptionDTO, error) {
	sub, err := uc.subRepo.GetBySID(ctx, subscriptionSID)
	if err != nil {
		uc.logger.Errorw("failed to get subscription", "subscription_sid", subscriptionSID, "error", err)
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	if sub == nil {
		return nil, membership.ErrSubscriptionNotFound
	}

	sub.Deactivate()

	if err := uc.subRepo.Update(ctx, sub); err != nil {
		uc.logger.Errorw("failed to deactivate subscription", "subscription_sid", subscriptionSID, "error", err)
		return nil, fmt.Errorf("failed to deactivate subscription: %w", err)
	}

	clientSID, planSID, planName := "", "", ""
	if owner, err := uc.clientRepo.GetByID(ctx, sub.ClientID()); err == nil && owner != nil {
		clientSID = owner.SID()
	}
	if plan, err := uc.planRepo.GetByID(ctx, sub.PlanID()); err == nil && plan != nil {
		planSID = plan.SID()
		planName = plan.Name()
	}

	uc.logger.Infow("subscription deactivated", "subscription_sid", sub.SID())
	return dto.ToSubscriptionDTO(sub, clientSID, planSID, planName), nil
}
