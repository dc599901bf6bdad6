package usecases

import (
	"context"
	"fmt"

	"gymgate/internal/application/client/dto"
	"gymgate/internal/domain/client"
	"gymgate/internal/shared/logger"
)

// UpdateClientCommand carries the mutable client fields. Nil pointers leave
// the current value untouched; the face token is immutable after enrollment.
type UpdateClientCommand struct {
	SID       string
	FirstName *string
	LastName  *string
	Phone     *string
	Email     *string
	PhotoRef  *string
	Notes     *string
}

type UpdateClientUseCase struct {
	clientRepo client.Repository
	logger     logger.Interface
}

func NewUpdateClientUseCase(clientRepo client.Repository, logger logger.Interface) *UpdateClientUseCase {
	return &UpdateClientUseCase{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

func (uc *UpdateClientUseCase) Execute(ctx context.Context, cmd UpdateClientCommand) (*dto.ClientDTO, error) {
	entity, err := uc.clientRepo.GetBySID(ctx, cmd.SID)
	if err != nil {
		uc.logger.Errorw("failed to get client", "client_sid", cmd.SID, "error", err)
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	if entity == nil {
		return nil, client.ErrNotFound
	}

	if cmd.FirstName != nil || cmd.LastName != nil {
		firstName := entity.FirstName()
		lastName := entity.LastName()
		if cmd.FirstName != nil {
			firstName = *cmd.FirstName
		}
		if cmd.LastName != nil {
			lastName = *cmd.LastName
		}
		if err := entity.UpdateName(firstName, lastName); err != nil {
			return nil, fmt.Errorf("invalid client name: %w", err)
		}
	}

	if cmd.Phone != nil || cmd.Email != nil {
		phone := entity.Phone()
		email := entity.Email()
		if cmd.Phone != nil {
			phone = *cmd.Phone
		}
		if cmd.Email != nil {
			email = *cmd.Email
		}
		entity.UpdateContact(phone, email)
	}

	if cmd.PhotoRef != nil {
		entity.UpdatePhotoRef(*cmd.PhotoRef)
	}
	if cmd.Notes != nil {
		entity.UpdateNotes(*cmd.Notes)
	}

	if err := uc.clientRepo.Update(ctx, entity); err != nil {
		uc.logger.Errorw("failed to update client", "client_sid", cmd.SID, "error", err)
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	uc.logger.Infow("client updated", "client_sid", entity.SID())
	return dto.ToClientDTO(entity), nil
}
