package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Ginu5952/Goldenia-Backend/internal/domain/entity"
	domainerr "github.com/Ginu5952/Goldenia-Backend/internal/domain/error"
	coreport "github.com/Ginu5952/Goldenia-Backend/internal/domain/port/core"
	userUseCase "github.com/Ginu5952/Goldenia-Backend/internal/domain/usecase/user"
	"github.com/Ginu5952/Goldenia-Backend/internal/infrastructure/adapter/api/dto"
	"github.com/Ginu5952/Goldenia-Backend/internal/infrastructure/adapter/api/middleware"
)

// AdminHandler handles admin-only HTTP requests
type AdminHandler struct {
	userService *userUseCase.UserUseCase
	logger      coreport.Logger
}

// NewAdminHandler creates a new admin handler instance
func NewAdminHandler(userService *userUseCase.UserUseCase, logger coreport.Logger) *AdminHandler {
	return &AdminHandler{
		userService: userService,
		logger:      logger,
	}
}

// requireAdmin resolves the caller and aborts with 403 unless they are an
// admin. Returns false when the request has already been answered.
func (h *AdminHandler) requireAdmin(c *gin.Context) bool {
	userID, ok := middleware.CallerID(c)
	if !ok {
		respondError(c, domainerr.ErrInvalidCredentials)
		return false
	}

	if _, err := h.userService.RequireAdmin(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return false
	}
	return true
}

// ListUsers handles the GET /admin/users endpoint
func (h *AdminHandler) ListUsers(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}

	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	views := make([]dto.AdminUserView, 0, len(users))
	for _, u := range users {
		views = append(views, adminUserToView(u))
	}

	c.JSON(http.StatusOK, dto.AdminUsersResponse{Users: views})
}

// ListTransactions handles the GET /admin/transactions endpoint
func (h *AdminHandler) ListTransactions(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}

	transactions, err := h.userService.ListTransactions(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	views := make([]dto.AdminTransactionView, 0, len(transactions))
	for _, t := range transactions {
		views = append(views, dto.AdminTransactionView{
			ID:           t.ID,
			UserID:       t.UserID,
			Type:         string(t.Kind),
			Amount:       entity.FormatAmount(t.Amount),
			Currency:     t.Currency,
			Timestamp:    t.CreatedAt.Format(time.RFC3339),
			TargetUserID: t.TargetUserID,
		})
	}

	c.JSON(http.StatusOK, dto.AdminTransactionsResponse{Transactions: views})
}

// GetUser handles the GET /admin/user/:id endpoint
func (h *AdminHandler) GetUser(c *gin.Context) {
	if !h.requireAdmin(c) {
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidUserID),
			Message: "Invalid user ID format",
		})
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, adminUserToView(*user))
}

// adminUserToView renders one admin user listing row for the API
func adminUserToView(u userUseCase.AdminUserView) dto.AdminUserView {
	return dto.AdminUserView{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Balances:  balanceViews(u.Balances),
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}
