package account

import "github.com/amirasaad/socialmedia/pkg/dto"

// RegisterRequest represents the request body for registering an account.
type RegisterRequest struct {
	Username string `json:"username" validate:"notblank" example:"testuser1"`
	Password string `json:"password" validate:"min=4" example:"password"`
}

// LoginRequest represents the request body for logging in. It carries no
// validation rules: every mismatch is reported as 401.
type LoginRequest struct {
	Username string `json:"username" example:"testuser1"`
	Password string `json:"password" example:"password"`
}

// AccountResponse is the account as returned by the API.
type AccountResponse = dto.AccountRead
