package models

import (
	"time"

	"gorm.io/gorm"
)

// Notification kinds for moderation outcomes
const (
	NotifyCommentApproved = "comment_approved"
	NotifyPodcastApproved = "podcast_approved"
	NotifyPodcastRejected = "podcast_rejected"
	NotifyRequestApproved = "request_approved"
	NotifyRequestRejected = "request_rejected"
)

// Notification records a dispatched moderation notice. Delivery itself is
// fire-and-forget; the row is the audit trail.
type Notification struct {
	gorm.Model
	UserID  uint       `json:"user_id" gorm:"not null;index"`
	Kind    string     `json:"kind" gorm:"not null;size:50;index"`
	Subject string     `json:"subject" gorm:"size:255"`
	Body    string     `json:"body" gorm:"type:text"`
	SentAt  *time.Time `json:"sent_at"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for the Notification model
func (Notification) TableName() string {
	return "notifications"
}
