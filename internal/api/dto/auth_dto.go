package dto

import "time"

// RegisterRequest payload for new customer accounts.
type RegisterRequest struct {
	Email    string  `json:"email"`
	Password string  `json:"password"`
	FullName string  `json:"full_name"`
	Phone    *string `json:"phone,omitempty"`
}

// RegisterResponse confirms account creation. No token is returned;
// the customer signs in with the issued identifier afterwards.
type RegisterResponse struct {
	Message    string `json:"message"`
	CustomerID string `json:"customer_id"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the bearer token.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	CustomerID  string `json:"customer_id"`
	FullName    string `json:"full_name"`
}

// ProfileResponse is the authenticated account record.
type ProfileResponse struct {
	CustomerID string    `json:"customer_id"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	Phone      *string   `json:"phone,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}
