package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Ginu5952/Goldenia-Backend/internal/domain/entity"
	domainerr "github.com/Ginu5952/Goldenia-Backend/internal/domain/error"
	coreport "github.com/Ginu5952/Goldenia-Backend/internal/domain/port/core"
	userUseCase "github.com/Ginu5952/Goldenia-Backend/internal/domain/usecase/user"
	"github.com/Ginu5952/Goldenia-Backend/internal/infrastructure/adapter/api/dto"
	"github.com/Ginu5952/Goldenia-Backend/internal/infrastructure/adapter/api/middleware"
)

// UserHandler handles user profile HTTP requests
type UserHandler struct {
	userService *userUseCase.UserUseCase
	logger      coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(userService *userUseCase.UserUseCase, logger coreport.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// GetProfile handles the GET /user/profile endpoint
func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		respondError(c, domainerr.ErrInvalidCredentials)
		return
	}

	profile, err := h.userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ProfileResponse{
		ID:       profile.ID,
		Username: profile.Username,
		Balances: balanceViews(profile.Balances),
	})
}

// balanceViews renders usecase balance views for the API
func balanceViews(balances []userUseCase.BalanceView) []dto.BalanceView {
	views := make([]dto.BalanceView, 0, len(balances))
	for _, b := range balances {
		views = append(views, dto.BalanceView{
			Currency: b.Currency,
			Amount:   entity.FormatAmount(b.Amount),
			Symbol:   b.Symbol,
		})
	}
	return views
}
