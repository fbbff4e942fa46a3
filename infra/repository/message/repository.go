package message

import (
	"context"
	"errors"

	"github.com/amirasaad/socialmedia/pkg/dto"
	repo "github.com/amirasaad/socialmedia/pkg/repository/message"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a message repository using the provided *gorm.DB.
func New(db *gorm.DB) repo.Repository {
	return &repository{db: db}
}

// Create implements message.Repository.
func (r *repository) Create(
	ctx context.Context,
	create *dto.MessageCreate,
) (*dto.MessageRead, error) {
	row := Message{
		PostedBy:        create.PostedBy,
		MessageText:     create.MessageText,
		TimePostedEpoch: create.TimePostedEpoch,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, err
	}
	return mapModelToDTO(&row), nil
}

// List implements message.Repository.
func (r *repository) List(ctx context.Context) ([]*dto.MessageRead, error) {
	var rows []Message
	if err := r.db.WithContext(ctx).Order("message_id").Find(&rows).Error; err != nil {
		return nil, err
	}
	return mapModelsToDTOs(rows), nil
}

// Get implements message.Repository.
func (r *repository) Get(ctx context.Context, id int) (*dto.MessageRead, error) {
	var row Message
	err := r.db.WithContext(ctx).Where("message_id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return mapModelToDTO(&row), nil
}

// ListByAuthor implements message.Repository.
func (r *repository) ListByAuthor(
	ctx context.Context,
	accountID int,
) ([]*dto.MessageRead, error) {
	var rows []Message
	if err := r.db.WithContext(ctx).
		Where("posted_by = ?", accountID).
		Order("message_id").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	return mapModelsToDTOs(rows), nil
}

// UpdateText implements message.Repository.
func (r *repository) UpdateText(ctx context.Context, id int, text string) error {
	return r.db.WithContext(ctx).
		Model(&Message{}).
		Where("message_id = ?", id).
		Update("message_text", text).Error
}

// Delete implements message.Repository.
func (r *repository) Delete(ctx context.Context, id int) error {
	return r.db.WithContext(ctx).Where("message_id = ?", id).Delete(&Message{}).Error
}

func mapModelToDTO(row *Message) *dto.MessageRead {
	return &dto.MessageRead{
		ID:              row.ID,
		PostedBy:        row.PostedBy,
		MessageText:     row.MessageText,
		TimePostedEpoch: row.TimePostedEpoch,
	}
}

func mapModelsToDTOs(rows []Message) []*dto.MessageRead {
	result := make([]*dto.MessageRead, 0, len(rows))
	for i := range rows {
		result = append(result, mapModelToDTO(&rows[i]))
	}
	return result
}

var _ repo.Repository = (*repository)(nil)
