package dto

// AccountRead is the read view of an account, as stored and as returned by the API.
type AccountRead struct {
	ID       int    `json:"account_id"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// AccountCreate is a DTO for registering a new account.
type AccountCreate struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AccountCredentials is a DTO for login attempts.
type AccountCredentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
