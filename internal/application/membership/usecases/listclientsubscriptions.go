package usecases

import (
	"context"
	"fmt"

	"gymgate/internal/application/membership/dto"
	"gymgate/internal/domain/client"
	"gymgate/internal/domain/membership"
	"gymgate/internal/shared/logger"
)

type ListClientSubscriptionsUseCase struct {
	clientRepo client.Repository
	subRepo    membership.SubscriptionRepository
	planRepo   membership.PlanRepository
	logger     logger.Interface
}

func NewListClientSubscriptionsUseCase(
	clientRepo client.Repository,
	subRepo membership.SubscriptionRepository,
	planRepo membership.PlanRepository,
	logger logger.Interface,
) *ListClientSubscriptionsUseCase {
	return &ListClientSubscriptionsUseCase{
		clientRepo: clientRepo,
		subRepo:    subRepo,
		planRepo:   planRepo,
		logger:     logger,
	}
}

func (uc *ListClientSubscriptionsUseCase) Execute(ctx context.Context, clientSID string) ([]*dto.SubscriptionDTO, error) {
	owner, err := uc.clientRepo.GetBySID(ctx, clientSID)
	if err != nil {
		uc.logger.Errorw("failed to get client", "client_sid", clientSID, "error", err)
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	if owner == nil {
		return nil, client.ErrNotFound
	}

	subs, err := uc.subRepo.ListByClientID(ctx, owner.ID())
	if err != nil {
		uc.logger.Errorw("failed to list subscriptions", "client_sid", clientSID, "error", err)
		return nil, fmt.Errorf("failed to list subscriptions: %w", err)
	}

	// Plans repeat across subscriptions, so resolve each once.
	planBySID := make(map[uint]*membership.Plan)
	dtos := make([]*dto.SubscriptionDTO, 0, len(subs))
	for _, sub := range subs {
		plan, ok := planBySID[sub.PlanID()]
		if !ok {
			plan, err = uc.planRepo.GetByID(ctx, sub.PlanID())
			if err != nil {
				uc.logger.Errorw("failed to get plan", "plan_id", sub.PlanID(), "error", err)
				return nil, fmt.Errorf("failed to get plan: %w", err)
			}
			planBySID[sub.PlanID()] = plan
		}

		planSID, planName := "", ""
		if plan != nil {
			planSID = plan.SID()
			planName = plan.Name()
		}
		dtos = append(dtos, dto.ToSubscriptionDTO(sub, owner.SID(), planSID, planName))
	}

	return dtos, nil
}
