package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Podcast status constants
const (
	PodcastStatusPending  = "pending"
	PodcastStatusApproved = "approved"
	PodcastStatusRejected = "rejected"
)

// Podcast represents a listener-submitted recording. Podcasts start pending
// and only become publicly visible once an admin approves them.
type Podcast struct {
	gorm.Model
	UUID          string     `json:"uuid" gorm:"uniqueIndex;not null"`
	UserID        uint       `json:"user_id" gorm:"not null;index"`
	Title         string     `json:"title" gorm:"not null;size:255"`
	Description   string     `json:"description" gorm:"type:text"`
	AudioPath     string     `json:"-" gorm:"size:500"`
	CoverPath     string     `json:"-" gorm:"size:500"`
	AllowDownload bool       `json:"allow_download"`
	Listens       int64      `json:"listens" gorm:"default:0"`
	Status        string     `json:"status" gorm:"default:pending;size:20;index"`
	AdminNote     string     `json:"admin_note,omitempty" gorm:"size:1000"`
	IsPublished   bool       `json:"is_published" gorm:"default:false;index"`
	PublishedAt   *time.Time `json:"published_at"`

	// Deletion sub-workflow: approved podcasts are never destroyed directly,
	// the owner files a request and an admin rules on it.
	IsDeleteRequested bool       `json:"is_delete_requested" gorm:"default:false;index"`
	DeleteRequestedAt *time.Time `json:"delete_requested_at"`

	User            *User                   `json:"user,omitempty" gorm:"foreignKey:UserID"`
	DeletionRequest *PodcastDeletionRequest `json:"deletion_request,omitempty" gorm:"foreignKey:PodcastID"`
}

// TableName returns the table name for the Podcast model
func (Podcast) TableName() string {
	return "podcasts"
}

// BeforeCreate generates a UUID and defaults the status
func (p *Podcast) BeforeCreate(tx *gorm.DB) error {
	if p.UUID == "" {
		p.UUID = uuid.New().String()
	}
	if p.Status == "" {
		p.Status = PodcastStatusPending
	}
	return nil
}

// IsPending reports whether the podcast awaits review
func (p *Podcast) IsPending() bool {
	return p.Status == PodcastStatusPending
}

// IsApproved reports whether the podcast passed review
func (p *Podcast) IsApproved() bool {
	return p.Status == PodcastStatusApproved
}

// IsRejected reports whether the podcast failed review
func (p *Podcast) IsRejected() bool {
	return p.Status == PodcastStatusRejected
}

// CanEdit reports whether the owner may still change content. Approved
// podcasts are immutable except through the deletion-request flow.
func (p *Podcast) CanEdit() bool {
	return p.Status == PodcastStatusPending || p.Status == PodcastStatusRejected
}

// CanDelete reports whether a new deletion may be initiated. False once a
// deletion request is outstanding, which is what caps requests at one.
func (p *Podcast) CanDelete() bool {
	return !p.IsDeleteRequested
}

// IsVisible reports whether the podcast may be served publicly
func (p *Podcast) IsVisible() bool {
	if !p.IsPublished || p.Status != PodcastStatusApproved || p.IsDeleteRequested {
		return false
	}
	return p.PublishedAt == nil || !p.PublishedAt.After(time.Now())
}

// ScopePublishedPodcasts restricts a query to publicly visible podcasts:
// published, approved, no outstanding deletion request, publish time reached
func ScopePublishedPodcasts(db *gorm.DB) *gorm.DB {
	return db.Where("is_published = ?", true).
		Where("status = ?", PodcastStatusApproved).
		Where("is_delete_requested = ?", false).
		Where("published_at IS NULL OR published_at <= ?", time.Now())
}
