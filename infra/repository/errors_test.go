package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/amirasaad/socialmedia/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMapGormErrorToDomain(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    error
		expected error
	}{
		{name: "duplicate key", input: gorm.ErrDuplicatedKey, expected: domain.ErrAlreadyExists},
		{name: "record not found", input: gorm.ErrRecordNotFound, expected: domain.ErrNotFound},
		{name: "foreign key violated", input: gorm.ErrForeignKeyViolated, expected: domain.ErrValidation},
		{
			name:     "joined duplicate key",
			input:    errors.Join(errors.New("outer"), gorm.ErrDuplicatedKey),
			expected: domain.ErrAlreadyExists,
		},
		{
			name:     "fmt wrapped not found",
			input:    fmt.Errorf("lookup: %w", gorm.ErrRecordNotFound),
			expected: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			result := MapGormErrorToDomain(tt.input)
			require.Error(t, result)
			assert.ErrorIs(t, result, tt.expected)
		})
	}
}

func TestMapGormErrorToDomain_Passthrough(t *testing.T) {
	t.Parallel()

	require.NoError(t, MapGormErrorToDomain(nil))

	other := errors.New("connection reset")
	assert.Equal(t, other, MapGormErrorToDomain(other))
}

func TestWrapError(t *testing.T) {
	t.Parallel()

	require.NoError(t, WrapError(func() error { return nil }))
	assert.ErrorIs(t, WrapError(func() error { return gorm.ErrDuplicatedKey }), domain.ErrAlreadyExists)

	custom := errors.New("custom error")
	assert.Equal(t, custom, WrapError(func() error { return custom }))
}

func TestWrapError_DoesNotRecover(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		_ = WrapError(func() error { panic("boom") })
	})
}
