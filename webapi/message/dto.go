package message

import "github.com/amirasaad/socialmedia/pkg/dto"

// CreateMessageRequest represents the request body for posting a message.
type CreateMessageRequest struct {
	PostedBy        int    `json:"posted_by" example:"1"`
	MessageText     string `json:"message_text" validate:"notblank,max=255" example:"hello message"`
	TimePostedEpoch int64  `json:"time_posted_epoch" example:"1669947792"`
}

// UpdateMessageRequest represents the request body for editing a message.
type UpdateMessageRequest struct {
	MessageText string `json:"message_text" validate:"notblank,max=255" example:"updated message"`
}

// MessageResponse is the message as returned by the API.
type MessageResponse = dto.MessageRead
