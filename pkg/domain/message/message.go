package message

import (
	"fmt"

	"github.com/amirasaad/socialmedia/pkg/domain"
)

// MaxTextLength is the longest message_text accepted, in characters.
const MaxTextLength = 255

var textRules = fmt.Sprintf("notblank,max=%d", MaxTextLength)

var (
	// ErrInvalidText is returned when message text is blank or longer than MaxTextLength.
	ErrInvalidText = fmt.Errorf(
		"%w: message_text must be non-blank and at most %d characters",
		domain.ErrValidation,
		MaxTextLength,
	)
	// ErrAuthorNotFound is returned when posted_by does not reference an existing account.
	ErrAuthorNotFound = fmt.Errorf("%w: posted_by does not reference an existing account", domain.ErrValidation)
	// ErrMessageNotFound is returned when updating a message that does not exist.
	ErrMessageNotFound = fmt.Errorf("%w: message", domain.ErrNotFound)
)

// Message is a text post authored by an account.
type Message struct {
	ID              int    `json:"message_id"`
	PostedBy        int    `json:"posted_by"`
	Text            string `json:"message_text"`
	TimePostedEpoch int64  `json:"time_posted_epoch"`
}

// New validates a post candidate. The author's existence is checked by the
// caller against storage.
func New(postedBy int, text string, timePostedEpoch int64) (*Message, error) {
	if err := ValidateText(text); err != nil {
		return nil, err
	}
	return &Message{
		PostedBy:        postedBy,
		Text:            text,
		TimePostedEpoch: timePostedEpoch,
	}, nil
}

// ValidateText applies the message_text rules used at create and update.
func ValidateText(text string) error {
	if err := domain.ValidateVar(text, textRules); err != nil {
		return ErrInvalidText
	}
	return nil
}
