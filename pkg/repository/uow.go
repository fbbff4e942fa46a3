package repository

import (
	"context"

	"github.com/amirasaad/socialmedia/pkg/repository/account"
	"github.com/amirasaad/socialmedia/pkg/repository/message"
)

// UnitOfWork defines the contract for transactional work and repository access.
//
// Do runs the given function in a transaction boundary, providing a UnitOfWork
// whose repositories share the transaction. GetRepository resolves a repository
// by its interface type:
//
//	repoAny, err := uow.GetRepository((*account.Repository)(nil))
//	repo := repoAny.(account.Repository)
type UnitOfWork interface {
	// Do executes the given function within a transaction boundary.
	// If the function returns an error, the transaction is rolled back.
	Do(ctx context.Context, fn func(uow UnitOfWork) error) error

	// GetRepository returns a repository of the requested interface type,
	// bound to the current transaction/session.
	GetRepository(repoType any) (any, error)

	// Type-safe repository access methods (convenience methods)
	AccountRepository() (account.Repository, error)
	MessageRepository() (message.Repository, error)
}
