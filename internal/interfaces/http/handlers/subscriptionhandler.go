package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	membershipdto "gymgate/internal/application/membership/dto"
	"gymgate/internal/application/membership/usecases"
	"gymgate/internal/shared/logger"
	"gymgate/internal/shared/utils"
)

type createSubscriptionUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateSubscriptionCommand) (*membershipdto.SubscriptionDTO, error)
}

type listClientSubscriptionsUseCase interface {
	Execute(ctx context.Context, clientSID string) ([]*membershipdto.SubscriptionDTO, error)
}

type addVisitsUseCase interface {
	Execute(ctx context.Context, cmd usecases.AddVisitsCommand) (*membershipdto.SubscriptionDTO, error)
}

type deactivateSubscriptionUseCase interface {
	Execute(ctx context.Context, subscriptionSID string) (*membershipdto.SubscriptionDTO, error)
}

type SubscriptionHandler struct {
	createUC       createSubscriptionUseCase
	listByClientUC listClientSubscriptionsUseCase
	addVisitsUC    addVisitsUseCase
	deactivateUC   deactivateSubscriptionUseCase
	logger         logger.Interface
}

func NewSubscriptionHandler(
	createUC createSubscriptionUseCase,
	listByClientUC listClientSubscriptionsUseCase,
	addVisitsUC addVisitsUseCase,
	deactivateUC deactivateSubscriptionUseCase,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		createUC:       createUC,
		listByClientUC: listByClientUC,
		addVisitsUC:    addVisitsUC,
		deactivateUC:   deactivateUC,
		logger:         logger.NewLogger(),
	}
}

type CreateSubscriptionRequest struct {
	ClientID string `json:"client_id" binding:"required"`
	PlanID   string `json:"plan_id" binding:"required"`
}

type AddVisitsRequest struct {
	Count int `json:"count" binding:"required"`
}

func (h *SubscriptionHandler) Create(c *gin.Context) {
	var req CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create subscription", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateSubscriptionCommand{
		ClientSID: req.ClientID,
		PlanSID:   req.PlanID,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Subscription created successfully")
}

func (h *SubscriptionHandler) ListByClient(c *gin.Context) {
	items, err := h.listByClientUC.Execute(c.Request.Context(), c.Param("sid"))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.OKResponse(c, items)
}

func (h *SubscriptionHandler) AddVisits(c *gin.Context) {
	var req AddVisitsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for add visits", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.addVisitsUC.Execute(c.Request.Context(), usecases.AddVisitsCommand{
		SubscriptionSID: c.Param("sid"),
		Count:           req.Count,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Visits added successfully", result)
}

func (h *SubscriptionHandler) Deactivate(c *gin.Context) {
	result, err := h.deactivateUC.Execute(c.Request.Context(), c.Param("sid"))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Subscription deactivated successfully", result)
}
