package mappers

import (
	"fmt"

	"gymgate/internal/domain/client"
	"gymgate/internal/infrastructure/persistence/models"
)

type ClientMapper interface {
	ToEntity(model *models.ClientModel) (*client.Client, error)
	ToModel(entity *client.Client) (*models.ClientModel, error)
	ToEntities(models []*models.ClientModel) ([]*client.Client, error)
}

type ClientMapperImpl struct{}

func NewClientMapper() ClientMapper {
	return &ClientMapperImpl{}
}

func (m *ClientMapperImpl) ToEntity(model *models.ClientModel) (*client.Client, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := client.ReconstructClient(
		model.ID,
		model.SID,
		model.FirstName,
		model.LastName,
		model.FaceToken,
		model.Phone,
		model.Email,
		model.PhotoRef,
		model.Notes,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct client entity: %w", err)
	}

	return entity, nil
}

func (m *ClientMapperImpl) ToModel(entity *client.Client) (*models.ClientModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.ClientModel{
		ID:        entity.ID(),
		SID:       entity.SID(),
		FirstName: entity.FirstName(),
		LastName:  entity.LastName(),
		FaceToken: entity.FaceToken(),
		Phone:     entity.Phone(),
		Email:     entity.Email(),
		PhotoRef:  entity.PhotoRef(),
		Notes:     entity.Notes(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}, nil
}

func (m *ClientMapperImpl) ToEntities(clientModels []*models.ClientModel) ([]*client.Client, error) {
	entities := make([]*client.Client, 0, len(clientModels))
	for _, model := range clientModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
