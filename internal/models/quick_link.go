package models

import (
	"gorm.io/gorm"
)

// QuickLink is a prioritized shortcut shown on the landing screen
type QuickLink struct {
	gorm.Model
	Title     string `json:"title" gorm:"not null;size:150"`
	URL       string `json:"url" gorm:"not null;size:500"`
	Icon      string `json:"icon,omitempty" gorm:"size:100"`
	ImagePath string `json:"-" gorm:"size:500"`
	IsActive  bool   `json:"is_active" gorm:"index"`
	Priority  int    `json:"priority" gorm:"default:0"`
}

// TableName returns the table name for the QuickLink model
func (QuickLink) TableName() string {
	return "quick_links"
}

// ScopeActiveQuickLinks restricts a query to active links in display order
func ScopeActiveQuickLinks(db *gorm.DB) *gorm.DB {
	return db.Where("is_active = ?", true).Order("priority ASC")
}
