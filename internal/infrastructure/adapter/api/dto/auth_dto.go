package dto

// SignupRequest represents the API request for registering a new user
type SignupRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// SignupResponse represents the API response for a successful signup
type SignupResponse struct {
	Message string `json:"message"`
	UserID  uint64 `json:"user_id"`
}

// LoginRequest represents the API request for logging in
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the API response for a successful login
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	Role        string `json:"role"`
}
