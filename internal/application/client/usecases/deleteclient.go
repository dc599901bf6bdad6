package usecases

import (
	"context"
	"fmt"

	"gymgate/internal/domain/client"
	"gymgate/internal/shared/logger"
)

type DeleteClientUseCase struct {
	clientRepo client.Repository
	logger     logger.Interface
}

func NewDeleteClientUseCase(clientRepo client.Repository, logger logger.Interface) *DeleteClientUseCase {
	return &DeleteClientUseCase{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

func (uc *DeleteClientUseCase) Execute(ctx context.Context, sid string) error {
	entity, err := uc.clientRepo.GetBySID(ctx, sid)
	if err != nil {
		uc.logger.Errorw("failed to get client", "client_sid", sid, "error", err)
		return fmt.Errorf("failed to get client: %w", err)
	}
	if entity == nil {
		return client.ErrNotFound
	}

	if err := uc.clientRepo.Delete(ctx, entity.ID()); err != nil {
		uc.logger.Errorw("failed to delete client", "client_sid", sid, "error", err)
		return fmt.Errorf("failed to delete client: %w", err)
	}

	uc.logger.Infow("client deleted", "client_sid", sid)
	return nil
}
