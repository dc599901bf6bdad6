package usecases

import (
	"context"
	"fmt"

	"gymgate/internal/application/client/dto"
	"gymgate/internal/domain/client"
	"gymgate/internal/shared/logger"
)

type ListClientsQuery struct {
	Search   string
	Page     int
	PageSize int
}

type ListClientsUseCase struct {
	clientRepo client.Repository
	logger     logger.Interface
}

func NewListClientsUseCase(clientRepo client.Repository, logger logger.Interface) *ListClientsUseCase {
	return &ListClientsUseCase{
		clientRepo: clientRepo,
		logger:     logger,
	}
}

func (uc *ListClientsUseCase) Execute(ctx context.Context, query ListClientsQuery) ([]*dto.ClientDTO, int64, error) {
	entities, total, err := uc.clientRepo.List(ctx, client.ListFilter{
		Search:   query.Search,
		Page:     query.Page,
		PageSize: query.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list clients", "error", err)
		return nil, 0, fmt.Errorf("failed to list clients: %w", err)
	}

	return dto.ToClientDTOs(entities), total, nil
}
