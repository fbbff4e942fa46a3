package account

import (
	"fmt"

	"github.com/amirasaad/socialmedia/pkg/domain"
)

// MinPasswordLength is the shortest password accepted at registration.
const MinPasswordLength = 4

var (
	// ErrInvalidUsername is returned when a username is empty or whitespace only.
	ErrInvalidUsername = fmt.Errorf("%w: username must not be blank", domain.ErrValidation)
	// ErrPasswordTooShort is returned when a password has fewer than
	// MinPasswordLength characters.
	ErrPasswordTooShort = fmt.Errorf(
		"%w: password must be at least %d characters",
		domain.ErrValidation,
		MinPasswordLength,
	)
	// ErrUsernameTaken is returned when registering a username that already exists.
	ErrUsernameTaken = fmt.Errorf("%w: username is already taken", domain.ErrAlreadyExists)
	// ErrInvalidCredentials is returned when a login does not match a stored account.
	ErrInvalidCredentials = fmt.Errorf("%w: invalid username or password", domain.ErrUnauthorized)
)

// Account is a registered user identified by a unique username.
// Passwords are stored and compared as plaintext.
type Account struct {
	ID       int    `json:"account_id"`
	Username string `json:"username" validate:"notblank"`
	Password string `json:"password" validate:"min=4"`
}

// New validates a registration candidate and returns an Account without an ID.
func New(username, password string) (*Account, error) {
	a := &Account{
		Username: username,
		Password: password,
	}
	field, err := domain.ValidateStruct(a)
	if err == nil {
		return a, nil
	}
	switch field {
	case "Username":
		return nil, ErrInvalidUsername
	case "Password":
		return nil, ErrPasswordTooShort
	default:
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
}

// NewFromData hydrates an Account from stored values.
func NewFromData(id int, username, password string) *Account {
	return &Account{
		ID:       id,
		Username: username,
		Password: password,
	}
}

// Matches reports whether password equals the stored password exactly.
func (a *Account) Matches(password string) bool {
	return a.Password == password
}
