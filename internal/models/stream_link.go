package models

import (
	"gorm.io/gorm"
)

// StreamLink is a live-stream source. At most one link is active at any
// time; activation runs in a transaction that clears the flag everywhere
// else before setting it.
type StreamLink struct {
	gorm.Model
	Name     string `json:"name" gorm:"not null;size:150"`
	URL      string `json:"url" gorm:"not null;size:500"`
	IsActive bool   `json:"is_active" gorm:"default:false;index"`
}

// TableName returns the table name for the StreamLink model
func (StreamLink) TableName() string {
	return "stream_links"
}
