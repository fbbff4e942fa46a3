package message

// Message represents a message row in the database.
type Message struct {
	ID              int    `gorm:"column:message_id;primaryKey;autoIncrement"`
	PostedBy        int    `gorm:"column:posted_by;not null;index"`
	MessageText     string `gorm:"column:message_text;type:varchar(255);not null"`
	TimePostedEpoch int64  `gorm:"column:time_posted_epoch;not null"`
}

// TableName specifies the table name for the Message model.
func (Message) TableName() string {
	return "message"
}
