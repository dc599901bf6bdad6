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

type createPlanUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreatePlanCommand) (*membershipdto.PlanDTO, error)
}

type getPlanUseCase interface {
	Execute(ctx context.Context, sid string) (*membershipdto.PlanDTO, error)
}

type listPlansUseCase interface {
	Execute(ctx context.Context, query usecases.ListPlansQuery) ([]*membershipdto.PlanDTO, int64, error)
}

type updatePlanUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdatePlanCommand) (*membershipdto.PlanDTO, error)
}

type deletePlanUseCase interface {
	Execute(ctx context.Context, sid string) error
}

type PlanHandler struct {
	createUC createPlanUseCase
	getUC    getPlanUseCase
	listUC   listPlansUseCase
	updateUC updatePlanUseCase
	deleteUC deletePlanUseCase
	logger   logger.Interface
}

func NewPlanHandler(
	createUC createPlanUseCase,
	getUC getPlanUseCase,
	listUC listPlansUseCase,
	updateUC updatePlanUseCase,
	deleteUC deletePlanUseCase,
) *PlanHandler {
	return &PlanHandler{
		createUC: createUC,
		getUC:    getUC,
		listUC:   listUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		logger:   logger.NewLogger(),
	}
}

type CreatePlanRequest struct {
	Name           string `json:"name" binding:"required"`
	Unlimited      bool   `json:"unlimited"`
	DurationDays   int    `json:"duration_days" binding:"required,min=1"`
	VisitAllotment int    `json:"visit_allotment" binding:"omitempty,min=1"`
	PriceCents     int64  `json:"price_cents" binding:"min=0"`
	Currency       string `json:"currency"`
}

type UpdatePlanRequest struct {
	Name           *string `json:"name"`
	Unlimited      *bool   `json:"unlimited"`
	DurationDays   *int    `json:"duration_days" binding:"omitempty,min=1"`
	VisitAllotment *int    `json:"visit_allotment" binding:"omitempty,min=1"`
	PriceCents     *int64  `json:"price_cents" binding:"omitempty,min=0"`
	Active         *bool   `json:"active"`
}

func (h *PlanHandler) Create(c *gin.Context) {
	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create plan", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreatePlanCommand{
		Name:           req.Name,
		Unlimited:      req.Unlimited,
		DurationDays:   req.DurationDays,
		VisitAllotment: req.VisitAllotment,
		PriceCents:     req.PriceCents,
		Currency:       req.Currency,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Plan created successfully")
}

func (h *PlanHandler) Get(c *gin.Context) {
	result, err := h.getUC.Execute(c.Request.Context(), c.Param("sid"))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *PlanHandler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	items, total, err := h.listUC.Execute(c.Request.Context(), usecases.ListPlansQuery{
		ActiveOnly: c.Query("active") == "true",
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
	})
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

func (h *PlanHandler) Update(c *gin.Context) {
	var req UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update plan", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdatePlanCommand{
		SID:            c.Param("sid"),
		Name:           req.Name,
		Unlimited:      req.Unlimited,
		DurationDays:   req.DurationDays,
		VisitAllotment: req.VisitAllotment,
		PriceCents:     req.PriceCents,
		Active:         req.Active,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Plan updated successfully", result)
}

func (h *PlanHandler) Delete(c *gin.Context) {
	if err := h.deleteUC.Execute(c.Request.Context(), c.Param("sid")); err != nil {
		respondDomainError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Plan deleted successfully", nil)
}
