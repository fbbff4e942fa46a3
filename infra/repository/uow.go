package repository

import (
	"context"
	"fmt"
	"reflect"

	accountrepo "github.com/amirasaad/socialmedia/infra/repository/account"
	messagerepo "github.com/amirasaad/socialmedia/infra/repository/message"
	"github.com/amirasaad/socialmedia/pkg/repository"
	"github.com/amirasaad/socialmedia/pkg/repository/account"
	"github.com/amirasaad/socialmedia/pkg/repository/message"
	"gorm.io/gorm"
)

// UoW provides the transaction boundary and repository access in one
// abstraction. Repositories obtained inside Do share the transaction.
type UoW struct {
	db           *gorm.DB
	tx           *gorm.DB
	repoRegistry map[reflect.Type]func(*gorm.DB) any
}

// NewUoW creates a new UoW for the given *gorm.DB.
func NewUoW(db *gorm.DB) *UoW {
	return &UoW{
		db: db,
		repoRegistry: map[reflect.Type]func(*gorm.DB) any{
			reflect.TypeOf((*account.Repository)(nil)).Elem(): func(db *gorm.DB) any {
				return accountrepo.New(db)
			},
			reflect.TypeOf((*message.Repository)(nil)).Elem(): func(db *gorm.DB) any {
				return messagerepo.New(db)
			},
		},
	}
}

// Do runs fn in a transaction. GORM errors leaving the boundary are mapped
// to domain errors.
func (u *UoW) Do(ctx context.Context, fn func(uow repository.UnitOfWork) error) error {
	err := u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txnUow := &UoW{db: u.db, tx: tx, repoRegistry: u.repoRegistry}
		return fn(txnUow)
	})
	return MapGormErrorToDomain(err)
}

// GetRepository resolves a repository by interface type. repoType may be a
// reflect.Type or a nil pointer to the interface, e.g. (*account.Repository)(nil).
func (u *UoW) GetRepository(repoType any) (any, error) {
	t, ok := repoType.(reflect.Type)
	if !ok {
		t = reflect.TypeOf(repoType)
		if t != nil && t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
	}
	constructor, ok := u.repoRegistry[t]
	if !ok {
		return nil, fmt.Errorf("unsupported repository type: %v", t)
	}
	return constructor(u.session()), nil
}

// AccountRepository implements repository.UnitOfWork.
func (u *UoW) AccountRepository() (account.Repository, error) {
	repoAny, err := u.GetRepository((*account.Repository)(nil))
	if err != nil {
		return nil, err
	}
	return repoAny.(account.Repository), nil
}

// MessageRepository implements repository.UnitOfWork.
func (u *UoW) MessageRepository() (message.Repository, error) {
	repoAny, err := u.GetRepository((*message.Repository)(nil))
	if err != nil {
		return nil, err
	}
	return repoAny.(message.Repository), nil
}

// session returns the transaction when inside Do, the root handle otherwise.
func (u *UoW) session() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

var _ repository.UnitOfWork = (*UoW)(nil)
