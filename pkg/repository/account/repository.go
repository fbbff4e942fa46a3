package account

import (
	"context"

	"github.com/amirasaad/socialmedia/pkg/dto"
)

// Repository defines data access for accounts.
// Lookups return (nil, nil) when no row matches.
type Repository interface {
	// Create inserts a new account and returns it with its generated ID.
	// A duplicate username yields an error wrapping domain.ErrAlreadyExists.
	Create(ctx context.Context, create *dto.AccountCreate) (*dto.AccountRead, error)

	// Get retrieves an account by its ID.
	Get(ctx context.Context, id int) (*dto.AccountRead, error)

	// GetByUsername retrieves an account by exact, case-sensitive username.
	GetByUsername(ctx context.Context, username string) (*dto.AccountRead, error)
}
