package models

import (
	"time"

	"gorm.io/gorm"
)

// BannerAd is a display entity with an optional active window and ordering
type BannerAd struct {
	gorm.Model
	Title       string     `json:"title" gorm:"not null;size:255"`
	URL         string     `json:"url" gorm:"size:500"`
	Description string     `json:"description" gorm:"type:text"`
	ImagePath   string     `json:"-" gorm:"size:500"`
	IsActive    bool       `json:"is_active" gorm:"index"`
	StartsAt    *time.Time `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
	Order       int        `json:"order" gorm:"default:0"`
}

// TableName returns the table name for the BannerAd model
func (BannerAd) TableName() string {
	return "banner_ads"
}

// IsLive reports whether the ad should display right now
func (b *BannerAd) IsLive() bool {
	if !b.IsActive {
		return false
	}
	now := time.Now()
	if b.StartsAt != nil && b.StartsAt.After(now) {
		return false
	}
	if b.EndsAt != nil && b.EndsAt.Before(now) {
		return false
	}
	return true
}

// ScopeActiveBanners restricts a query to ads inside their display window,
// ordered for display
func ScopeActiveBanners(db *gorm.DB) *gorm.DB {
	now := time.Now()
	return db.Where("is_active = ?", true).
		Where("starts_at IS NULL OR starts_at <= ?", now).
		Where("ends_at IS NULL OR ends_at >= ?", now).
		Order("`order` ASC")
}
