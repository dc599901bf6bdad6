package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"gymgate/internal/domain/access"
	"gymgate/internal/infrastructure/persistence/models"
)

type AccessLogMapper interface {
	ToEntity(model *models.AccessLogModel) (*access.LogEntry, error)
	ToModel(entity *access.LogEntry) (*models.AccessLogModel, error)
	ToEntities(models []*models.AccessLogModel) ([]*access.LogEntry, error)
}

type AccessLogMapperImpl struct{}

func NewAccessLogMapper() AccessLogMapper {
	return &AccessLogMapperImpl{}
}

func (m *AccessLogMapperImpl) ToEntity(model *models.AccessLogModel) (*access.LogEntry, error) {
	if model == nil {
		return nil, nil
	}

	var metadata map[string]string
	if model.Metadata != nil {
		if err := json.Unmarshal(model.Metadata, &metadata); err != nil {
			return nil, fmt.Errorf("failed to unmarshal access log metadata: %w", err)
		}
	}

	entity, err := access.ReconstructLogEntry(
		model.ID,
		model.ClientID,
		model.SubscriptionID,
		model.Granted,
		model.Deducted,
		model.Reason,
		model.DeviceID,
		model.FaceToken,
		metadata,
		model.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct access log entry: %w", err)
	}

	return entity, nil
}

func (m *AccessLogMapperImpl) ToModel(entity *access.LogEntry) (*models.AccessLogModel, error) {
	if entity == nil {
		return nil, nil
	}

	var metadataJSON datatypes.JSON
	if metadata := entity.Metadata(); len(metadata) > 0 {
		data, err := json.Marshal(metadata)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal access log metadata: %w", err)
		}
		metadataJSON = data
	}

	return &models.AccessLogModel{
		ID:             entity.ID(),
		ClientID:       entity.ClientID(),
		SubscriptionID: entity.SubscriptionID(),
		Granted:        entity.Granted(),
		Deducted:       entity.Deducted(),
		Reason:         entity.Reason(),
		DeviceID:       entity.DeviceID(),
		FaceToken:      entity.FaceToken(),
		Metadata:       metadataJSON,
		CreatedAt:      entity.CreatedAt(),
	}, nil
}

func (m *AccessLogMapperImpl) ToEntities(logModels []*models.AccessLogModel) ([]*access.LogEntry, error) {
	entities := make([]*access.LogEntry, 0, len(logModels))
	for _, model := range logModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
