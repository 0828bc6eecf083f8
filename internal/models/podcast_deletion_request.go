package models

import (
	"time"

	"gorm.io/gorm"
)

// PodcastDeletionRequest records an owner's request to delete an approved
// podcast. Approving it destroys the podcast; rejecting it restores the
// podcast's visibility.
type PodcastDeletionRequest struct {
	gorm.Model
	PodcastID  uint       `json:"podcast_id" gorm:"not null;index"`
	UserID     uint       `json:"user_id" gorm:"not null;index"`
	Reason     string     `json:"reason,omitempty" gorm:"size:500"`
	Status     string     `json:"status" gorm:"default:pending;size:20;index"`
	AdminNote  string     `json:"admin_note,omitempty" gorm:"size:1000"`
	ReviewedAt *time.Time `json:"reviewed_at"`

	Podcast *Podcast `json:"podcast,omitempty" gorm:"foreignKey:PodcastID"`
	User    *User    `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for the PodcastDeletionRequest model
func (PodcastDeletionRequest) TableName() string {
	return "podcast_deletion_requests"
}

// IsPending reports whether the deletion request awaits review
func (r *PodcastDeletionRequest) IsPending() bool {
	return r.Status == RequestStatusPending
}
