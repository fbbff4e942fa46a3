package mocks

import (
	"context"

	"github.com/amirasaad/socialmedia/pkg/dto"
	"github.com/amirasaad/socialmedia/pkg/repository/account"
	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a mock implementation of account.Repository.
type MockAccountRepository struct {
	mock.Mock
}

// NewMockAccountRepository creates a MockAccountRepository whose expectations
// are asserted when the test finishes.
func NewMockAccountRepository(t TestingT) *MockAccountRepository {
	m := &MockAccountRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockAccountRepository) Create(ctx context.Context, create *dto.AccountCreate) (*dto.AccountRead, error) {
	args := m.Called(ctx, create)
	return accountReadOrNil(args.Get(0)), args.Error(1)
}

func (m *MockAccountRepository) Get(ctx context.Context, id int) (*dto.AccountRead, error) {
	args := m.Called(ctx, id)
	return accountReadOrNil(args.Get(0)), args.Error(1)
}

func (m *MockAccountRepository) GetByUsername(ctx context.Context, username string) (*dto.AccountRead, error) {
	args := m.Called(ctx, username)
	return accountReadOrNil(args.Get(0)), args.Error(1)
}

func accountReadOrNil(v any) *dto.AccountRead {
	if v == nil {
		return nil
	}
	return v.(*dto.AccountRead)
}

var _ account.Repository = (*MockAccountRepository)(nil)
