package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/Ginu5952/Goldenia-Backend/internal/domain/error"
	coreport "github.com/Ginu5952/Goldenia-Backend/internal/domain/port/core"
	userUseCase "github.com/Ginu5952/Goldenia-Backend/internal/domain/usecase/user"
	"github.com/Ginu5952/Goldenia-Backend/internal/infrastructure/adapter/api/dto"
	"github.com/Ginu5952/Goldenia-Backend/internal/infrastructure/auth"
)

// AuthHandler handles signup and login HTTP requests
type AuthHandler struct {
	userService *userUseCase.UserUseCase
	tokens      *auth.TokenManager
	logger      coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(userService *userUseCase.UserUseCase, tokens *auth.TokenManager, logger coreport.Logger) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		tokens:      tokens,
		logger:      logger,
	}
}

// Signup handles the POST /auth/signup endpoint
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrMissingField),
			Message: "Missing required fields",
		})
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.SignupResponse{
		Message: "User created successfully",
		UserID:  user.ID,
	})
}

// Login handles the POST /auth/login endpoint
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrMissingField),
			Message: "Missing required fields",
		})
		return
	}

	user, err := h.userService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.tokens.Generate(user.ID, user.IsAdmin)
	if err != nil {
		h.logger.Error("Failed to sign access token", map[string]any{
			"user_id": user.ID,
			"error":   err.Error(),
		})
		respondError(c, domainerr.ErrInternalServer)
		return
	}

	role := "user"
	if user.IsAdmin {
		role = "admin"
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		AccessToken: token,
		Role:        role,
	})
}
