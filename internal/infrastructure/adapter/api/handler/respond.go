package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/Ginu5952/Goldenia-Backend/internal/domain/error"
	"github.com/Ginu5952/Goldenia-Backend/internal/infrastructure/adapter/api/dto"
)

// respondError maps a domain error to an HTTP status and standardized body
func respondError(c *gin.Context, err error) {
	c.JSON(httpStatus(err), dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: errorMessage(err),
	})
}

// httpStatus maps domain errors to HTTP status codes
func httpStatus(err error) int {
	switch {
	case domainerr.IsValidationError(err), domainerr.IsInsufficientFundsError(err):
		return http.StatusBadRequest
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case errors.Is(err, domainerr.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, domainerr.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domainerr.ErrDuplicateUser):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// errorMessage keeps client-facing messages stable for known errors while
// hiding internals behind a generic message for everything else
func errorMessage(err error) string {
	if httpStatus(err) == http.StatusInternalServerError {
		return "Internal server error"
	}
	return err.Error()
}
