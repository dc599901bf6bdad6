package usecases

import (
	"context"
	"fmt"
	"time"

	"gymgate/internal/application/access/dto"
	"gymgate/internal/domain/access"
	"gymgate/internal/domain/client"
	"gymgate/internal/shared/logger"
)

type ListAccessLogQuery struct {
	ClientSID string
	Granted   *bool
	DeviceID  string
	From      *time.Time
	To        *time.Time
	Page      int
	PageSize  int
}

type ListAccessLogUseCase struct {
	logRepo    access.Repository
	clientRepo client.Repository
	logger     logger.Interface
}

func NewListAccessLogUseCase(
	logRepo access.Repository,
	clientRepo client.Repository,
	logger logger.Interface,
) *ListAccessLogUseCase {
	return &ListAccessLogUseCase{
		logRepo:    logRepo,
		clientRepo: clientRepo,
		logger:     logger,
	}
}

func (uc *ListAccessLogUseCase) Execute(ctx context.Context, query ListAccessLogQuery) ([]*dto.AccessLogEntryDTO, int64, error) {
	filter := access.ListFilter{
		Granted:  query.Granted,
		DeviceID: query.DeviceID,
		From:     query.From,
		To:       query.To,
		Page:     query.Page,
		PageSize: query.PageSize,
	}

	if query.ClientSID != "" {
		owner, err := uc.clientRepo.GetBySID(ctx, query.ClientSID)
		if err != nil {
			uc.logger.Errorw("failed to get client", "client_sid", query.ClientSID, "error", err)
			return nil, 0, fmt.Errorf("failed to get client: %w", err)
		}
		if owner == nil {
			return nil, 0, client.ErrNotFound
		}
		clientID := owner.ID()
		filter.ClientID = &clientID
	}

	entries, total, err := uc.logRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list access log entries", "error", err)
		return nil, 0, fmt.Errorf("failed to list access log entries: %w", err)
	}

	return dto.ToAccessLogEntryDTOs(entries), total, nil
}
