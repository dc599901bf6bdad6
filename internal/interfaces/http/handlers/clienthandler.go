package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	clientdto "gymgate/internal/application/client/dto"
	"gymgate/internal/application/client/usecases"
	"gymgate/internal/shared/logger"
	"gymgate/internal/shared/utils"
)

type createClientUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateClientCommand) (*clientdto.ClientDTO, error)
}

type getClientUseCase interface {
	Execute(ctx context.Context, sid string) (*clientdto.ClientDTO, error)
}

type listClientsUseCase interface {
	Execute(ctx context.Context, query usecases.ListClientsQuery) ([]*clientdto.ClientDTO, int64, error)
}

type updateClientUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateClientCommand) (*clientdto.ClientDTO, error)
}

type deleteClientUseCase interface {
	Execute(ctx context.Context, sid string) error
}

type ClientHandler struct {
	createUC createClientUseCase
	getUC    getClientUseCase
	listUC   listClientsUseCase
	updateUC updateClientUseCase
	deleteUC deleteClientUseCase
	logger   logger.Interface
}

func NewClientHandler(
	createUC createClientUseCase,
	getUC getClientUseCase,
	listUC listClientsUseCase,
	updateUC updateClientUseCase,
	deleteUC deleteClientUseCase,
) *ClientHandler {
	return &ClientHandler{
		createUC: createUC,
		getUC:    getUC,
		listUC:   listUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		logger:   logger.NewLogger(),
	}
}

type CreateClientRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	FaceToken string `json:"face_token" binding:"required"`
	Phone     string `json:"phone"`
	Email     string `json:"email" binding:"omitempty,email"`
	PhotoRef  string `json:"photo_ref"`
	Notes     string `json:"notes"`
}

type UpdateClientRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email" binding:"omitempty,email"`
	PhotoRef  *string `json:"photo_ref"`
	Notes     *string `json:"notes"`
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create client", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), usecases.CreateClientCommand{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		FaceToken: req.FaceToken,
		Phone:     req.Phone,
		Email:     req.Email,
		PhotoRef:  req.PhotoRef,
		Notes:     req.Notes,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Client created successfully")
}

func (h *ClientHandler) Get(c *gin.Context) {
	result, err := h.getUC.Execute(c.Request.Context(), c.Param("sid"))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

func (h *ClientHandler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	items, total, err := h.listUC.Execute(c.Request.Context(), usecases.ListClientsQuery{
		Search:   c.Query("search"),
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
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

func (h *ClientHandler) Update(c *gin.Context) {
	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update client", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateClientCommand{
		SID:       c.Param("sid"),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Email:     req.Email,
		PhotoRef:  req.PhotoRef,
		Notes:     req.Notes,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Client updated successfully", result)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	if err := h.deleteUC.Execute(c.Request.Context(), c.Param("sid")); err != nil {
		respondDomainError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Client deleted successfully", nil)
}
