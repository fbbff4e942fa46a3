// Package mocks provides testify-based test doubles for the repository layer.
package mocks

import (
	"context"

	"github.com/amirasaad/socialmedia/pkg/repository"
	"github.com/amirasaad/socialmedia/pkg/repository/account"
	"github.com/amirasaad/socialmedia/pkg/repository/message"
	"github.com/stretchr/testify/mock"
)

// TestingT is the subset of *testing.T the mock constructors need.
type TestingT interface {
	mock.TestingT
	Cleanup(func())
}

// MockUnitOfWork is a mock implementation of repository.UnitOfWork.
type MockUnitOfWork struct {
	mock.Mock
}

// NewMockUnitOfWork creates a MockUnitOfWork whose expectations are asserted
// when the test finishes.
func NewMockUnitOfWork(t TestingT) *MockUnitOfWork {
	m := &MockUnitOfWork{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Do records the call. The first return value may be a
// func(context.Context, func(repository.UnitOfWork) error) error, in which case
// it is invoked to produce the result.
func (m *MockUnitOfWork) Do(ctx context.Context, fn func(repository.UnitOfWork) error) error {
	args := m.Called(ctx, fn)
	if rf, ok := args.Get(0).(func(context.Context, func(repository.UnitOfWork) error) error); ok {
		return rf(ctx, fn)
	}
	return args.Error(0)
}

// RunInline returns a Do result that runs the transaction body against m.
func (m *MockUnitOfWork) RunInline() func(context.Context, func(repository.UnitOfWork) error) error {
	return func(_ context.Context, fn func(repository.UnitOfWork) error) error {
		return fn(m)
	}
}

func (m *MockUnitOfWork) GetRepository(repoType any) (any, error) {
	args := m.Called(repoType)
	return args.Get(0), args.Error(1)
}

func (m *MockUnitOfWork) AccountRepository() (account.Repository, error) {
	args := m.Called()
	var r0 account.Repository
	if v := args.Get(0); v != nil {
		r0 = v.(account.Repository)
	}
	return r0, args.Error(1)
}

func (m *MockUnitOfWork) MessageRepository() (message.Repository, error) {
	args := m.Called()
	var r0 message.Repository
	if v := args.Get(0); v != nil {
		r0 = v.(message.Repository)
	}
	return r0, args.Error(1)
}

var _ repository.UnitOfWork = (*MockUnitOfWork)(nil)
