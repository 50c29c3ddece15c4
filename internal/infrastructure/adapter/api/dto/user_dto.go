package dto

// BalanceView is one currency balance in a profile or admin listing
type BalanceView struct {
	Currency string `json:"currency"`
	Amount   string `json:"amount"`
	Symbol   string `json:"symbol"`
}

// ProfileResponse represents the API response for the caller's profile
type ProfileResponse struct {
	ID       uint64        `json:"id"`
	Username string        `json:"username"`
	Balances []BalanceView `json:"balances"`
}

// HistoryEntryResponse is one reconstructed transaction row. Balance is the
// user's balance in the row's currency as of that transaction, replayed from
// the log. For received transfers ReceivedFrom names the sender; for sent
// transfers To carries the formatted amount and TargetUsername the recipient.
type HistoryEntryResponse struct {
	ID              uint64  `json:"id"`
	Type            string  `json:"type"`
	Amount          string  `json:"amount"`
	Currency        string  `json:"currency"`
	CurrencySymbol  string  `json:"currency_symbol"`
	CurrencyFrom    *string `json:"currency_from"`
	CurrencyTo      *string `json:"currency_to"`
	ConvertedAmount *string `json:"converted_amount"`
	TargetUserID    *uint64 `json:"target_user_id"`
	TargetUsername  *string `json:"target_username"`
	ReceivedFrom    *string `json:"received_from,omitempty"`
	To              string  `json:"to"`
	Balance         string  `json:"balance"`
	Status          string  `json:"status"`
	Timestamp       string  `json:"timestamp"`
}

// HistoryResponse represents the API response for the transaction history listing
type HistoryResponse struct {
	Transactions []HistoryEntryResponse `json:"transactions"`
}
