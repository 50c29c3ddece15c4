package dto

import "github.com/shopspring/decimal"

// TopUpRequest represents the API request for topping up a balance.
// Currency is optional; the user's account currency applies when omitted.
type TopUpRequest struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// TopUpResponse represents the API response for a successful top-up
type TopUpResponse struct {
	Message        string `json:"message"`
	Balance        string `json:"balance"`
	CurrencySymbol string `json:"currency_symbol"`
}

// TransferRequest represents the API request for a same-currency transfer
type TransferRequest struct {
	Amount       decimal.Decimal `json:"amount"`
	TargetUserID uint64          `json:"target_user_id"`
	Currency     string          `json:"currency"`
}

// TransferResponse represents the API response for a successful transfer
type TransferResponse struct {
	Message        string `json:"message"`
	Balance        string `json:"balance"`
	Currency       string `json:"currency"`
	TargetUserID   uint64 `json:"target_user_id"`
	TargetUsername string `json:"target_username"`
	Amount         string `json:"amount"`
}

// ExchangeRequest represents the API request for a currency exchange
type ExchangeRequest struct {
	Amount       decimal.Decimal `json:"amount"`
	CurrencyFrom string          `json:"currency_from"`
	CurrencyTo   string          `json:"currency_to"`
}

// ExchangeResponse represents the API response for a successful exchange
type ExchangeResponse struct {
	Message         string `json:"message"`
	ConvertedAmount string `json:"converted_amount"`
	BalanceFrom     string `json:"balance_from"`
	BalanceTo       string `json:"balance_to"`
	CurrencyFrom    string `json:"currency_from"`
	CurrencyTo      string `json:"currency_to"`
	CurrencySymbol  string `json:"currency_symbol"`
}
