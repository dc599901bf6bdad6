package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"gymgate/internal/domain/client"
	"gymgate/internal/infrastructure/persistence/mappers"
	"gymgate/internal/infrastructure/persistence/models"
	"gymgate/internal/shared/db"
	sharederrors "gymgate/internal/shared/errors"
	"gymgate/internal/shared/logger"
)

type ClientRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.ClientMapper
	logger logger.Interface
}

func NewClientRepository(database *gorm.DB, logger logger.Interface) client.Repository {
	return &ClientRepositoryImpl{
		db:     database,
		mapper: mappers.NewClientMapper(),
		logger: logger,
	}
}

func (r *ClientRepositoryImpl) Create(ctx context.Context, entity *client.Client) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map client entity to model", "error", err)
		return fmt.Errorf("failed to map client entity: %w", err)
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if sharederrors.IsDuplicateError(err) {
			return client.ErrDuplicateFaceToken
		}
		r.logger.Errorw("failed to create client in database", "error", err)
		return fmt.Errorf("failed to create client: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set client ID: %w", err)
	}

	r.logger.Infow("client created", "id", model.ID, "sid", model.SID)
	return nil
}

func (r *ClientRepositoryImpl) GetByID(ctx context.Context, id uint) (*client.Client, error) {
	var model models.ClientModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get client by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *ClientRepositoryImpl) GetBySID(ctx context.Context, sid string) (*client.Client, error) {
	var model models.ClientModel

	if err := r.db.WithContext(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get client by SID", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *ClientRepositoryImpl) GetByFaceToken(ctx context.Context, faceToken string) (*client.Client, error) {
	var model models.ClientModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("face_token = ?", faceToken).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get client by face token", "error", err)
		return nil, fmt.Errorf("failed to get client by face token: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

func (r *ClientRepositoryImpl) List(ctx context.Context, filter client.ListFilter) ([]*client.Client, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.ClientModel{})

	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where(
			"first_name LIKE ? OR last_name LIKE ? OR phone LIKE ? OR email LIKE ? OR face_token LIKE ?",
			like, like, like, like, like,
		)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count clients", "error", err)
		return nil, 0, fmt.Errorf("failed to count clients: %w", err)
	}

	var clientModels []*models.ClientModel
	if filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}
	if err := query.Order("last_name ASC, first_name ASC").Find(&clientModels).Error; err != nil {
		r.logger.Errorw("failed to list clients", "error", err)
		return nil, 0, fmt.Errorf("failed to list clients: %w", err)
	}

	entities, err := r.mapper.ToEntities(clientModels)
	if err != nil {
		return nil, 0, err
	}

	return entities, total, nil
}

func (r *ClientRepositoryImpl) Update(ctx context.Context, entity *client.Client) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		return fmt.Errorf("failed to map client entity: %w", err)
	}

	result := r.db.WithContext(ctx).Model(&models.ClientModel{}).Where("id = ?", model.ID).Updates(map[string]interface{}{
		"first_name": model.FirstName,
		"last_name":  model.LastName,
		"phone":      model.Phone,
		"email":      model.Email,
		"photo_ref":  model.PhotoRef,
		"notes":      model.Notes,
		"updated_at": model.UpdatedAt,
	})
	if result.Error != nil {
		r.logger.Errorw("failed to update client", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update client: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return client.ErrNotFound
	}

	return nil
}

func (r *ClientRepositoryImpl) Delete(ctx context.Context, id uint) error {
	// Client deletion cascades to subscriptions but the audit trail must
	// survive, so access log references are nulled first.
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.AccessLogModel{}).Where("client_id = ?", id).
			Update("client_id", nil).Error; err != nil {
			return fmt.Errorf("failed to detach access log entries: %w", err)
		}

		if err := tx.Where("client_id = ?", id).Delete(&models.SubscriptionModel{}).Error; err != nil {
			return fmt.Errorf("failed to delete client subscriptions: %w", err)
		}

		result := tx.Delete(&models.ClientModel{}, id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete client: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return client.ErrNotFound
		}

		r.logger.Infow("client deleted", "id", id)
		return nil
	})
}
