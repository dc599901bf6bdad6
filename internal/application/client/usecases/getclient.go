package usecases

import (
	"context"
	"fmt"

	"gymgate/internal/application/client/dto"
	"gymgate/internal/domain/client"
	"gymgate/internal/shared/logger"
)

type GetClientUseCase struct {
	clientRepo client.Repository
	logger     logger.Interface
}

func NewGetClientUseCase(clientRepo client.Repository, logger logger.Interface) *GetClientUseCase {
	return &GetClientUseCase{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

func (uc *GetClientUseCase) Execute(ctx context.Context, sid string) (*dto.ClientDTO, error) {
	entity, err := uc.clientRepo.GetBySID(ctx, sid)
	if err != nil {
		uc.logger.Errorw("failed to get client", "client_sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	if entity == nil {
		return nil, client.ErrNotFound
	}

	return dto.ToClientDTO(entity), nil
}
