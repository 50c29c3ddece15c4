package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainerr "github.com/Ginu5952/Goldenia-Backend/internal/domain/error"
	coreport "github.com/Ginu5952/Goldenia-Backend/internal/domain/port/core"
	"github.com/Ginu5952/Goldenia-Backend/internal/infrastructure/adapter/api/dto"
	"github.com/Ginu5952/Goldenia-Backend/internal/infrastructure/auth"
)

// Context keys set by Auth for downstream handlers
const (
	ContextUserIDKey  = "auth_user_id"
	ContextIsAdminKey = "auth_is_admin"
)

// Auth validates the Bearer token on protected routes and stores the caller's
// identity in the gin context.
func Auth(tokens *auth.TokenManager, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidCredentials),
				Message: "Authorization header required",
			})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidCredentials),
				Message: "Authorization header format must be Bearer {token}",
			})
			return
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			logger.Warn("Rejected access token", map[string]any{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidCredentials),
				Message: "Invalid or expired token",
			})
			return
		}

		c.Set(ContextUserIDKey, claims.UserID)
		c.Set(ContextIsAdminKey, claims.IsAdmin)
		c.Next()
	}
}

// CallerID returns the authenticated user's ID from the gin context. The
// second return is false on routes that never passed through Auth.
func CallerID(c *gin.Context) (uint64, bool) {
	value, exists := c.Get(ContextUserIDKey)
	if !exists {
		return 0, false
	}
	userID, ok := value.(uint64)
	return userID, ok
}
