package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	authusecases "gymgate/internal/application/auth/usecases"
	"gymgate/internal/domain/client"
	"gymgate/internal/domain/membership"
	"gymgate/internal/shared/utils"
)

// respondDomainError maps domain sentinel errors to HTTP status codes.
// Anything unrecognized is a 500 with a generic message, the real cause
// stays in the logs.
func respondDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, client.ErrNotFound),
		errors.Is(err, membership.ErrPlanNotFound),
		errors.Is(err, membership.ErrSubscriptionNotFound):
		utils.ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, client.ErrDuplicateFaceToken),
		errors.Is(err, membership.ErrPlanInUse),
		errors.Is(err, membership.ErrVersionConflict):
		utils.ErrorResponse(c, http.StatusConflict, err.Error())
	case errors.Is(err, membership.ErrInvalidExtension):
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, authusecases.ErrInvalidCredentials):
		utils.ErrorResponse(c, http.StatusUnauthorized, err.Error())
	default:
		utils.ErrorResponse(c, http.StatusInternalServerError, "internal server error")
	}
}
