package dto

// MessageRead is the read view of a message.
type MessageRead struct {
	ID              int    `json:"message_id"`
	PostedBy        int    `json:"posted_by"`
	MessageText     string `json:"message_text"`
	TimePostedEpoch int64  `json:"time_posted_epoch"`
}

// MessageCreate is a DTO for posting a new message.
type MessageCreate struct {
	PostedBy        int    `json:"posted_by"`
	MessageText     string `json:"message_text"`
	TimePostedEpoch int64  `json:"time_posted_epoch"`
}

// MessageUpdate carries the only mutable field of a message.
type MessageUpdate struct {
	MessageText string `json:"message_text"`
}
