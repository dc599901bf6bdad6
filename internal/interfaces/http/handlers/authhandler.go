package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"gymgate/internal/application/auth/usecases"
	"gymgate/internal/shared/logger"
	"gymgate/internal/shared/utils"
)

type loginUseCase interface {
	Execute(ctx context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error)
}

type AuthHandler struct {
	loginUC loginUseCase
	logger  logger.Interface
}

func NewAuthHandler(loginUC loginUseCase) *AuthHandler {
	return &AuthHandler{
		loginUC: loginUC,
		logger:  logger.NewLogger(),
	}
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid login request body", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "username and password are required")
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	utils.OKResponse(c, result)
}
