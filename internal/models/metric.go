package models

import (
	"time"
)

// Metric type constants
const (
	MetricVisit         = "visit"
	MetricMessageListen = "message_listen"
	MetricPodcastListen = "podcast_listen"
	MetricComment       = "comment"
	MetricFavourite     = "favourite"
)

// MetricTypes is the closed set of accepted event types
var MetricTypes = map[string]bool{
	MetricVisit:         true,
	MetricMessageListen: true,
	MetricPodcastListen: true,
	MetricComment:       true,
	MetricFavourite:     true,
}

// Metric is an append-only usage event. Rows are never updated or deleted;
// recording one must never fail the operation that produced it.
type Metric struct {
	ID         uint                   `json:"id" gorm:"primaryKey"`
	CreatedAt  time.Time              `json:"created_at" gorm:"index"`
	UserID     *uint                  `json:"user_id" gorm:"index"`
	Type       string                 `json:"type" gorm:"not null;size:30;index"`
	EntityType *EntityKind            `json:"entity_type" gorm:"size:20"`
	EntityID   *uint                  `json:"entity_id"`
	IPAddress  string                 `json:"ip_address,omitempty" gorm:"size:45"`
	UserAgent  string                 `json:"user_agent,omitempty" gorm:"size:500"`
	Country    string                 `json:"country,omitempty" gorm:"size:100;index"`
	City       string                 `json:"city,omitempty" gorm:"size:100"`
	Metadata   map[string]interface{} `json:"metadata,omitempty" gorm:"serializer:json"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for the Metric model
func (Metric) TableName() string {
	return "metrics"
}
