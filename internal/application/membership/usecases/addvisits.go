package usecases

import (
	"context"
	"errors"
	"fmt"

	"gymgate/internal/application/membership/dto"
	"gymgate/internal/domain/client"
	"gymgate/internal/domain/membership"
	"gymgate/internal/shared/logger"
)

type AddVisitsCommand struct {
	SubscriptionSID string
	Count           int
}

// AddVisitsUseCase extends a subscription by a positive number of paid
// visits. Extension uses the same optimistic lock as the admission ledger
// so a front-desk top-up cannot race a turnstile deduction.
type AddVisitsUseCase struct {
	subRepo    membership.SubscriptionRepository
	clientRepo client.Repository
	planRepo   membership.PlanRepository
	logger     logger.Interface
	maxRetries int
}

func NewAddVisitsUseCase(
	subRepo membership.SubscriptionRepository,
	clientRepo client.Repository,
	planRepo membership.PlanRepository,
	maxRetries int,
	logger logger.Interface,
) *AddVisitsUseCase {
	if maxRetries < 1 {
		maxRetries = 1
	}
	return &AddVisitsUseCase{
		subRepo:    subRepo,
		clientRepo: clientRepo,
		planRepo:   planRepo,
		logger:     logger,
		maxRetries: maxRetries,
	}
}

func (uc *AddVisitsUseCase) Execute(ctx context.Context, cmd AddVisitsCommand) (*dto.SubscriptionDTO, error) {
	var sub *membership.Subscription

	for attempt := 0; attempt < uc.maxRetries; attempt++ {
		current, err := uc.subRepo.GetBySID(ctx, cmd.SubscriptionSID)
		if err != nil {
			uc.logger.Errorw("failed to get subscription", "subscription_sid", cmd.SubscriptionSID, "error", err)
			return nil, fmt.Errorf("failed to get subscription: %w", err)
		}
		if current == nil {
			return nil, membership.ErrSubscriptionNotFound
		}

		if err := current.AddVisits(cmd.Count); err != nil {
			return nil, err
		}

		err = uc.subRepo.UpdateWithVersion(ctx, current, current.Version())
		if err == nil {
			sub = current
			break
		}
		if !errors.Is(err, membership.ErrVersionConflict) {
			uc.logger.Errorw("failed to extend subscription", "subscription_sid", cmd.SubscriptionSID, "error", err)
			return nil, fmt.Errorf("failed to extend subscription: %w", err)
		}

		uc.logger.Warnw("version conflict while extending subscription, retrying",
			"subscription_sid", cmd.SubscriptionSID,
			"attempt", attempt+1,
		)
	}

	if sub == nil {
		return nil, membership.ErrVersionConflict
	}

	clientSID, planSID, planName := uc.lookupNames(ctx, sub)

	uc.logger.Infow("subscription extended",
		"subscription_sid", sub.SID(),
		"added_visits", cmd.Count,
		"paid_visits", sub.PaidVisits(),
	)
	return dto.ToSubscriptionDTO(sub, clientSID, planSID, planName), nil
}

func (uc *AddVisitsUseCase) lookupNames(ctx context.Context, sub *membership.Subscription) (clientSID, planSID, planName string) {
	if owner, err := uc.clientRepo.GetByID(ctx, sub.ClientID()); err == nil && owner != nil {
		clientSID = owner.SID()
	}
	if plan, err := uc.planRepo.GetByID(ctx, sub.PlanID()); err == nil && plan != nil {
		planSID = plan.SID()
		planName = plan.Name()
	}
	return clientSID, planSID, planName
}
