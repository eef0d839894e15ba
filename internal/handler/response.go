package handler

import (
	"errors"
	"net/http"

	"github.com/blues/pts/internal/logger"
	"github.com/blues/pts/internal/logic"
	"github.com/gin-gonic/gin"
)

// SuccessResponse writes the shared envelope with a payload.
func SuccessResponse(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponse writes the shared envelope without a payload.
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Message: message,
		Data:    nil,
	})
}

// FailFromError maps a logic error onto the wire contract: 404 for
// missing resources, 401 for forbidden callers (the observed contract
// conflates forbidden with unauthenticated), 400 for validation
// failures, 500 otherwise.
func FailFromError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, logic.ErrNotFound):
		ErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, logic.ErrForbidden), errors.Is(err, logic.ErrInvalidRefreshToken):
		ErrorResponse(c, http.StatusUnauthorized, err.Error())
	case logic.IsValidation(err),
		errors.Is(err, logic.ErrEmailTaken),
		errors.Is(err, logic.ErrDuplicateContributor),
		errors.Is(err, logic.ErrInvalidCredentials):
		ErrorResponse(c, http.StatusBadRequest, err.Error())
	default:
		logger.Error("Request failed: %v", err)
		ErrorResponse(c, http.StatusInternalServerError, "internal server error")
	}
}
