package mocks

import (
	"context"

	"github.com/amirasaad/socialmedia/pkg/dto"
	"github.com/amirasaad/socialmedia/pkg/repository/message"
	"github.com/stretchr/testify/mock"
)

// MockMessageRepository is a mock implementation of message.Repository.
type MockMessageRepository struct {
	mock.Mock
}

// NewMockMessageRepository creates a MockMessageRepository whose expectations
// are asserted when the test finishes.
func NewMockMessageRepository(t TestingT) *MockMessageRepository {
	m := &MockMessageRepository{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *MockMessageRepository) Create(ctx context.Context, create *dto.MessageCreate) (*dto.MessageRead, error) {
	args := m.Called(ctx, create)
	return messageReadOrNil(args.Get(0)), args.Error(1)
}

func (m *MockMessageRepository) List(ctx context.Context) ([]*dto.MessageRead, error) {
	args := m.Called(ctx)
	return messageListOrNil(args.Get(0)), args.Error(1)
}

func (m *MockMessageRepository) Get(ctx context.Context, id int) (*dto.MessageRead, error) {
	args := m.Called(ctx, id)
	return messageReadOrNil(args.Get(0)), args.Error(1)
}

func (m *MockMessageRepository) ListByAuthor(ctx context.Context, accountID int) ([]*dto.MessageRead, error) {
	args := m.Called(ctx, accountID)
	return messageListOrNil(args.Get(0)), args.Error(1)
}

func (m *MockMessageRepository) UpdateText(ctx context.Context, id int, text string) error {
	args := m.Called(ctx, id, text)
	return args.Error(0)
}

func (m *MockMessageRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func messageReadOrNil(v any) *dto.MessageRead {
	if v == nil {
		return nil
	}
	return v.(*dto.MessageRead)
}

func messageListOrNil(v any) []*dto.MessageRead {
	if v == nil {
		return nil
	}
	return v.([]*dto.MessageRead)
}

var _ message.Repository = (*MockMessageRepository)(nil)
