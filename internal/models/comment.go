package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment attaches to a message, podcast or stream link through a
// (kind, id) pair. Comments are created unapproved and require moderation
// before they appear in public listings.
type Comment struct {
	gorm.Model
	UUID            string     `json:"uuid" gorm:"uniqueIndex;not null"`
	UserID          uint       `json:"user_id" gorm:"not null;index"`
	CommentableType EntityKind `json:"commentable_type" gorm:"not null;size:20;index:idx_comments_target"`
	CommentableID   uint       `json:"commentable_id" gorm:"not null;index:idx_comments_target"`
	Body            string     `json:"body" gorm:"not null;size:1000"`
	Approved        bool       `json:"approved" gorm:"default:false;index"`
	ApprovedAt      *time.Time `json:"approved_at"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for the Comment model
func (Comment) TableName() string {
	return "comments"
}

// BeforeCreate generates a UUID before creating a new comment
func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.UUID == "" {
		c.UUID = uuid.New().String()
	}
	return nil
}

// IsPending reports whether the comment awaits moderation
func (c *Comment) IsPending() bool {
	return !c.Approved
}

// ScopeApprovedComments restricts a query to moderated comments
func ScopeApprovedComments(db *gorm.DB) *gorm.DB {
	return db.Where("approved = ?", true)
}
