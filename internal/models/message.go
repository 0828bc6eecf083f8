package models

import (
	"time"

	"gorm.io/gorm"
)

// Message represents an admin-authored sermon recording. Unlike podcasts,
// messages are trusted content and publish immediately by default.
type Message struct {
	gorm.Model
	Title         string     `json:"title" gorm:"not null;size:255"`
	Description   string     `json:"description" gorm:"type:text"`
	CategoryID    uint       `json:"category_id" gorm:"index"`
	AudioPath     string     `json:"-" gorm:"size:500"`
	CoverPath     string     `json:"-" gorm:"size:500"`
	AllowDownload bool       `json:"allow_download"`
	Listens       int64      `json:"listens" gorm:"default:0"`
	IsPublished   bool       `json:"is_published" gorm:"index"`
	PublishedAt   *time.Time `json:"published_at"`

	Category *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
}

// TableName returns the table name for the Message model
func (Message) TableName() string {
	return "messages"
}

// IsVisible reports whether the message may be served publicly
func (m *Message) IsVisible() bool {
	return m.IsPublished
}

// ScopePublishedMessages restricts a query to publicly visible messages
func ScopePublishedMessages(db *gorm.DB) *gorm.DB {
	return db.Where("is_published = ?", true)
}
