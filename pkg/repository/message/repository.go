package message

import (
	"context"

	"github.com/amirasaad/socialmedia/pkg/dto"
)

// Repository defines data access for messages.
type Repository interface {
	// Create inserts a new message and returns it with its generated ID.
	Create(ctx context.Context, create *dto.MessageCreate) (*dto.MessageRead, error)

	// List returns every message. The slice is empty, not nil, when there are none.
	List(ctx context.Context) ([]*dto.MessageRead, error)

	// Get retrieves a message by its ID, or (nil, nil) when absent.
	Get(ctx context.Context, id int) (*dto.MessageRead, error)

	// ListByAuthor returns the messages whose posted_by equals accountID.
	ListByAuthor(ctx context.Context, accountID int) ([]*dto.MessageRead, error)

	// UpdateText replaces message_text of the message with the given ID.
	UpdateText(ctx context.Context, id int, text string) error

	// Delete removes the message with the given ID. Deleting a missing ID is a no-op.
	Delete(ctx context.Context, id int) error
}
