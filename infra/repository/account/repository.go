package account

import (
	"context"
	"errors"

	"github.com/amirasaad/socialmedia/pkg/dto"
	repo "github.com/amirasaad/socialmedia/pkg/repository/account"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates an account repository using the provided *gorm.DB.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

// Create implements account.Repository.
func (r *repository) Create(
	ctx context.Context,
	create *dto.AccountCreate,
) (*dto.AccountRead, error) {
	row := Account{Username: create.Username, Password: create.Password}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, err
	}
	return mapModelToDTO(&row), nil
}

// Get implements account.Repository.
func (r *repository) Get(ctx context.Context, id int) (*dto.AccountRead, error) {
	return r.first(ctx, "account_id = ?", id)
}

// GetByUsername implements account.Repository.
func (r *repository) GetByUsername(
	ctx context.Context,
	username string,
) (*dto.AccountRead, error) {
	return r.first(ctx, "username = ?", username)
}

func (r *repository) first(ctx context.Context, query string, arg any) (*dto.AccountRead, error) {
	var row Account
	err := r.db.WithContext(ctx).Where(query, arg).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return mapModelToDTO(&row), nil
}

func mapModelToDTO(row *Account) *dto.AccountRead {
	return &dto.AccountRead{
		ID:       row.ID,
		Username: row.Username,
		Password: row.Password,
	}
}

var _ repo.Repository = (*repository)(nil)
