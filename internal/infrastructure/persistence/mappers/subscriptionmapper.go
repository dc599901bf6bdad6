package mappers

import (
	"fmt"

	"gymgate/internal/domain/membership"
	"gymgate/internal/infrastructure/persistence/models"
)

type SubscriptionMapper interface {
	ToEntity(model *models.SubscriptionModel) (*membership.Subscription, error)
	ToModel(entity *membership.Subscription) (*models.SubscriptionModel, error)
	ToEntities(models []*models.SubscriptionModel) ([]*membership.Subscription, error)
}

type SubscriptionMapperImpl struct{}

func NewSubscriptionMapper() SubscriptionMapper {
	return &SubscriptionMapperImpl{}
}

func (m *SubscriptionMapperImpl) ToEntity(model *models.SubscriptionModel) (*membership.Subscription, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := membership.ReconstructSubscription(
		model.ID,
		model.SID,
		model.ClientID,
		model.PlanID,
		model.PurchasedAt,
		model.PaidVisits,
		model.UsedVisits,
		model.Active,
		model.LastVisitAt,
		model.LastAccessDate,
		model.ExpiresAt,
		model.Version,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct subscription entity: %w", err)
	}

	return entity, nil
}

func (m *SubscriptionMapperImpl) ToModel(entity *membership.Subscription) (*models.SubscriptionModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.SubscriptionModel{
		ID:             entity.ID(),
		SID:            entity.SID(),
		ClientID:       entity.ClientID(),
		PlanID:         entity.PlanID(),
		PurchasedAt:    entity.PurchasedAt(),
		PaidVisits:     entity.PaidVisits(),
		UsedVisits:     entity.UsedVisits(),
		Active:         entity.Active(),
		LastVisitAt:    entity.LastVisitAt(),
		LastAccessDate: entity.LastAccessDate(),
		ExpiresAt:      entity.ExpiresAt(),
		Version:        entity.Version(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}, nil
}

func (m *SubscriptionMapperImpl) ToEntities(subscriptionModels []*models.SubscriptionModel) ([]*membership.Subscription, error) {
	entities := make([]*membership.Subscription, 0, len(subscriptionModels))
	for _, model := range subscriptionModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
