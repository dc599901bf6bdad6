package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	accessdto "gymgate/internal/application/access/dto"
	"gymgate/internal/application/access/usecases"
	"gymgate/internal/shared/biztime"
	"gymgate/internal/shared/logger"
	"gymgate/internal/shared/utils"
)

type listAccessLogUseCase interface {
	Execute(ctx context.Context, query usecases.ListAccessLogQuery) ([]*accessdto.AccessLogEntryDTO, int64, error)
}

type AccessLogHandler struct {
	listUC listAccessLogUseCase
	logger logger.Interface
}

func NewAccessLogHandler(listUC listAccessLogUseCase) *AccessLogHandler {
	return &AccessLogHandler{
		listUC: listUC,
		logger: logger.NewLogger(),
	}
}

func (h *AccessLogHandler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	query := usecases.ListAccessLogQuery{
		ClientSID: c.Query("client_id"),
		DeviceID:  c.Query("device_id"),
		Page:      pagination.Page,
		PageSize:  pagination.PageSize,
	}

	if raw := c.Query("granted"); raw != "" {
		granted, err := strconv.ParseBool(raw)
		if err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "granted must be true or false")
			return
		}
		query.Granted = &granted
	}

	from, err := parseTimeParam(c.Query("from"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "from must be RFC3339 or YYYY-MM-DD")
		return
	}
	query.From = from

	to, err := parseTimeParam(c.Query("to"))
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "to must be RFC3339 or YYYY-MM-DD")
		return
	}
	if to != nil {
		// A bare date as the upper bound means the whole business day.
		if _, dateErr := time.Parse("2006-01-02", c.Query("to")); dateErr == nil {
			end := biztime.EndOfDayUTC(*to)
			to = &end
		}
	}
	query.To = to

	items, total, err := h.listUC.Execute(c.Request.Context(), query)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.OKResponse(c, utils.ListResponse{
		Items:      items,
		Total:      total,
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
		TotalPages: utils.TotalPages(total, pagination.PageSize),
	})
}

// parseTimeParam accepts RFC3339 timestamps or bare dates interpreted in the
// business timezone.
func parseTimeParam(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		utc := t.UTC()
		return &utc, nil
	}
	t, err := biztime.ParseDateInBizTimezone(raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
