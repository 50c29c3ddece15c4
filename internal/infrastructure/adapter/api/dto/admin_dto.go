package dto

// AdminUserView is one user row in the admin users listing
type AdminUserView struct {
	ID        uint64        `json:"id"`
	Username  string        `json:"username"`
	Email     string        `json:"email"`
	Balances  []BalanceView `json:"balances"`
	IsAdmin   bool          `json:"is_admin"`
	CreatedAt string        `json:"created_at"`
}

// AdminUsersResponse represents the API response for the admin users listing
type AdminUsersResponse struct {
	Users []AdminUserView `json:"users"`
}

// AdminTransactionView is one raw transaction row in the admin log listing
type AdminTransactionView struct {
	ID           uint64  `json:"id"`
	UserID       uint64  `json:"user_id"`
	Type         string  `json:"type"`
	Amount       string  `json:"amount"`
	Currency     string  `json:"currency"`
	Timestamp    string  `json:"timestamp"`
	TargetUserID *uint64 `json:"target_user_id"`
}

// AdminTransactionsResponse represents the API response for the admin transaction log
type AdminTransactionsResponse struct {
	Transactions []AdminTransactionView `json:"transactions"`
}
