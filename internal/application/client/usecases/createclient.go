package usecases

import (
	"context"
	"errors"
	"fmt"

	"gymgate/internal/application/client/dto"
	"gymgate/internal/domain/client"
	"gymgate/internal/shared/id"
	"gymgate/internal/shared/logger"
	"gymgate/internal/shared/utils"
)

type CreateClientCommand struct {
	FirstName string
	LastName  string
	FaceToken string
	Phone     string
	Email     string
	PhotoRef  string
	Notes     string
}

type CreateClientUseCase struct {
	clientRepo client.Repository
	logger     logger.Interface
}

func NewCreateClientUseCase(clientRepo client.Repository, logger logger.Interface) *CreateClientUseCase {
	return &CreateClientUseCase{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

func (uc *CreateClientUseCase) Execute(ctx context.Context, cmd CreateClientCommand) (*dto.ClientDTO, error) {
	sid, err := id.GenerateWithPrefix(id.PrefixClient, id.DefaultLength)
	if err != nil {
		return nil, fmt.Errorf("failed to generate client ID: %w", err)
	}

	entity, err := client.NewClient(sid, cmd.FirstName, cmd.LastName, cmd.FaceToken)
	if err != nil {
		return nil, fmt.Errorf("invalid client: %w", err)
	}

	entity.UpdateContact(cmd.Phone, cmd.Email)
	entity.UpdatePhotoRef(cmd.PhotoRef)
	entity.UpdateNotes(cmd.Notes)

	if err := uc.clientRepo.Create(ctx, entity); err != nil {
		if errors.Is(err, client.ErrDuplicateFaceToken) {
			return nil, err
		}
		uc.logger.Errorw("failed to persist client", "error", err)
		return nil, fmt.Errorf("failed to persist client: %w", err)
	}

	uc.logger.Infow("client created", "client_sid", entity.SID(), "email", utils.MaskEmail(cmd.Email))
	return dto.ToClientDTO(entity), nil
}
