package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Ginu5952/Goldenia-Backend/internal/domain/entity"
	domainerr "github.com/Ginu5952/Goldenia-Backend/internal/domain/error"
	coreport "github.com/Ginu5952/Goldenia-Backend/internal/domain/port/core"
	historyUseCase "github.com/Ginu5952/Goldenia-Backend/internal/domain/usecase/history"
	ledgerUseCase "github.com/Ginu5952/Goldenia-Backend/internal/domain/usecase/ledger"
	"github.com/Ginu5952/Goldenia-Backend/internal/infrastructure/adapter/api/dto"
	"github.com/Ginu5952/Goldenia-Backend/internal/infrastructure/adapter/api/middleware"
)

// LedgerHandler handles balance-mutating HTTP requests and the transaction
// history listing
type LedgerHandler struct {
	ledgerService *ledgerUseCase.Service
	history       *historyUseCase.Reconstructor
	logger        coreport.Logger
}

// NewLedgerHandler creates a new ledger handler instance
func NewLedgerHandler(
	ledgerService *ledgerUseCase.Service,
	history *historyUseCase.Reconstructor,
	logger coreport.Logger,
) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
		history:       history,
		logger:        logger,
	}
}

// TopUp handles the POST /user/top-up endpoint
func (h *LedgerHandler) TopUp(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		respondError(c, domainerr.ErrInvalidCredentials)
		return
	}

	var req dto.TopUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	result, err := h.ledgerService.TopUp(c.Request.Context(), userID, req.Amount, req.Currency)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TopUpResponse{
		Message:        "Top-up successful",
		Balance:        entity.FormatAmount(result.NewBalance),
		CurrencySymbol: result.CurrencySymbol,
	})
}

// Transfer handles the POST /user/transfer endpoint
func (h *LedgerHandler) Transfer(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		respondError(c, domainerr.ErrInvalidCredentials)
		return
	}

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	result, err := h.ledgerService.Transfer(c.Request.Context(), userID, req.TargetUserID, req.Amount, req.Currency)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.TransferResponse{
		Message:        "Transfer successful",
		Balance:        entity.FormatAmount(result.NewBalance),
		Currency:       result.Currency,
		TargetUserID:   result.TargetUserID,
		TargetUsername: result.TargetUsername,
		Amount:         entity.FormatAmount(result.Amount),
	})
}

// Exchange handles the POST /user/exchange endpoint
func (h *LedgerHandler) Exchange(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		respondError(c, domainerr.ErrInvalidCredentials)
		return
	}

	var req dto.ExchangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}

	result, err := h.ledgerService.Exchange(c.Request.Context(), userID, req.Amount, req.CurrencyFrom, req.CurrencyTo)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ExchangeResponse{
		Message:         "Exchange successful",
		ConvertedAmount: entity.FormatAmount(result.ConvertedAmount),
		BalanceFrom:     entity.FormatAmount(result.BalanceFrom),
		BalanceTo:       entity.FormatAmount(result.BalanceTo),
		CurrencyFrom:    result.CurrencyFrom,
		CurrencyTo:      result.CurrencyTo,
		CurrencySymbol:  result.CurrencySymbol,
	})
}

// GetTransactions handles the GET /user/transactions endpoint
func (h *LedgerHandler) GetTransactions(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		respondError(c, domainerr.ErrInvalidCredentials)
		return
	}

	entries, err := h.history.GetHistory(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	views := make([]dto.HistoryEntryResponse, 0, len(entries))
	for _, entry := range entries {
		views = append(views, historyEntryToView(entry))
	}

	c.JSON(http.StatusOK, dto.HistoryResponse{Transactions: views})
}

// historyEntryToView renders one reconstructed entry for the API
func historyEntryToView(entry historyUseCase.Entry) dto.HistoryEntryResponse {
	view := dto.HistoryEntryResponse{
		ID:             entry.ID,
		Type:           string(entry.Kind),
		Amount:         entity.FormatAmount(entry.Amount),
		Currency:       entry.Currency,
		CurrencySymbol: entry.CurrencySymbol,
		Balance:        entity.FormatAmount(entry.Balance),
		Status:         string(entry.Status),
		Timestamp:      entry.Timestamp.Format(time.RFC3339),
		To:             "-",
	}

	if entry.CurrencyFrom != "" {
		view.CurrencyFrom = &entry.CurrencyFrom
	}
	if entry.CurrencyTo != "" {
		view.CurrencyTo = &entry.CurrencyTo
	}
	if entry.ConvertedAmount != nil {
		converted := entity.FormatAmount(*entry.ConvertedAmount)
		view.ConvertedAmount = &converted
	}

	if entry.Kind == entity.KindTransfer {
		if entry.TargetUserID != nil {
			// Sent transfer: show the recipient and the outgoing amount
			view.TargetUserID = entry.TargetUserID
			view.TargetUsername = &entry.TargetUsername
			view.To = entity.FormatAmount(entry.Amount) + entry.CurrencySymbol
		} else {
			// Received transfer: show who sent it
			received := entry.Counterparty
			view.ReceivedFrom = &received
		}
	}

	return view
}
