package mappers

import (
	"fmt"

	"gymgate/internal/domain/membership"
	"gymgate/internal/infrastructure/persistence/models"
)

type PlanMapper interface {
	ToEntity(model *models.PlanModel) (*membership.Plan, error)
	ToModel(entity *membership.Plan) (*models.PlanModel, error)
	ToEntities(models []*models.PlanModel) ([]*membership.Plan, error)
}

type PlanMapperImpl struct{}

func NewPlanMapper() PlanMapper {
	return &PlanMapperImpl{}
}

func (m *PlanMapperImpl) ToEntity(model *models.PlanModel) (*membership.Plan, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := membership.ReconstructPlan(
		model.ID,
		model.SID,
		model.Name,
		model.Unlimited,
		model.DurationDays,
		model.VisitAllotment,
		model.PriceCents,
		model.Currency,
		model.Active,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct plan entity: %w", err)
	}

	return entity, nil
}

func (m *PlanMapperImpl) ToModel(entity *membership.Plan) (*models.PlanModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.PlanModel{
		ID:             entity.ID(),
		SID:            entity.SID(),
		Name:           entity.Name(),
		Unlimited:      entity.Unlimited(),
		DurationDays:   entity.DurationDays(),
		VisitAllotment: entity.VisitAllotment(),
		PriceCents:     entity.PriceCents(),
		Currency:       entity.Currency(),
		Active:         entity.Active(),
		CreatedAt:      entity.CreatedAt(),
		UpdatedAt:      entity.UpdatedAt(),
	}, nil
}

func (m *PlanMapperImpl) ToEntities(planModels []*models.PlanModel) ([]*membership.Plan, error) {
	entities := make([]*membership.Plan, 0, len(planModels))
	for _, model := range planModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
