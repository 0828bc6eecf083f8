package models

import (
	"time"

	"gorm.io/gorm"
)

// Request status constants, shared by upload and deletion requests
const (
	RequestStatusPending  = "pending"
	RequestStatusApproved = "approved"
	RequestStatusRejected = "rejected"
)

// PodcastRequest is a user's application for podcast upload privileges.
// An approved request grants the privilege permanently.
type PodcastRequest struct {
	gorm.Model
	UserID      uint       `json:"user_id" gorm:"not null;index"`
	Reason      string     `json:"reason" gorm:"not null;size:1000"`
	Status      string     `json:"status" gorm:"default:pending;size:20;index"`
	NoteToAdmin string     `json:"note_to_admin,omitempty" gorm:"size:500"`
	AdminNote   string     `json:"admin_note,omitempty" gorm:"size:1000"`
	ReviewedAt  *time.Time `json:"reviewed_at"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for the PodcastRequest model
func (PodcastRequest) TableName() string {
	return "podcast_requests"
}

// IsPending reports whether the request awaits review
func (r *PodcastRequest) IsPending() bool {
	return r.Status == RequestStatusPending
}

// IsApproved reports whether the request was granted
func (r *PodcastRequest) IsApproved() bool {
	return r.Status == RequestStatusApproved
}
