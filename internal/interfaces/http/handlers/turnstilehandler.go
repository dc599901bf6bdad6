package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	accessdto "gymgate/internal/application/access/dto"
	"gymgate/internal/application/access/usecases"
	"gymgate/internal/shared/constants"
	"gymgate/internal/shared/logger"
	"gymgate/internal/shared/utils"
)

type evaluateAccessUseCase interface {
	Execute(ctx context.Context, cmd usecases.EvaluateAccessCommand) (*accessdto.DecisionDTO, error)
}

// TurnstileHandler is the hardware gateway boundary. It always answers 200
// with a decision body when the request is well formed: a denial is a
// normal outcome for the gate, not an HTTP error.
type TurnstileHandler struct {
	evaluateUC evaluateAccessUseCase
	logger     logger.Interface
}

func NewTurnstileHandler(evaluateUC evaluateAccessUseCase) *TurnstileHandler {
	return &TurnstileHandler{
		evaluateUC: evaluateUC,
		logger:     logger.NewLogger(),
	}
}

type AccessRequest struct {
	FaceToken string            `json:"face_token" binding:"required"`
	DeviceID  string            `json:"device_id"`
	Metadata  map[string]string `json:"metadata"`
}

func (h *TurnstileHandler) Access(c *gin.Context) {
	var req AccessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("malformed turnstile request", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "face_token is required")
		return
	}

	// The X-Device-ID header set by the device token middleware is
	// authoritative; body device_id only fills in for older firmware that
	// never sends the header.
	deviceID := c.GetString(constants.ContextKeyDeviceID)
	if req.DeviceID != "" && (deviceID == "" || deviceID == "unknown") {
		deviceID = req.DeviceID
	}

	decision, err := h.evaluateUC.Execute(c.Request.Context(), usecases.EvaluateAccessCommand{
		FaceToken: req.FaceToken,
		DeviceID:  deviceID,
		Metadata:  req.Metadata,
	})
	if err != nil {
		// The engine fails closed internally; reaching here means a bug
		// rather than a storage outage.
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, decision)
}
