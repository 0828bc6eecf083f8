package metrics

import (
	"context"
	"time"

	"github.com/gracefm/radio-api/internal/models"
)

// Event is a usage event to record. Everything except Type is optional.
type Event struct {
	UserID     *uint
	Type       string
	EntityType *models.EntityKind
	EntityID   *uint
	IPAddress  string
	UserAgent  string
	Country    string
	City       string
	Metadata   map[string]interface{}
}

// CountryCount is one row of the top-countries breakdown
type CountryCount struct {
	Country string `json:"country"`
	Count   int64  `json:"count"`
}

// TypeCount is one row of the per-type breakdown
type TypeCount struct {
	Type  string `json:"type"`
	Count int64  `json:"count"`
}

// Summary aggregates activity over a reporting window
type Summary struct {
	Period       string         `json:"period"`
	Since        time.Time      `json:"since"`
	Total        int64          `json:"total"`
	ByType       []TypeCount    `json:"by_type"`
	TopCountries []CountryCount `json:"top_countries"`
}

// UserSummary aggregates one user's recorded activity
type UserSummary struct {
	UserID int64       `json:"user_id"`
	Total  int64       `json:"total"`
	ByType []TypeCount `json:"by_type"`
}

// Repository defines data access for metrics
type Repository interface {
	Insert(ctx context.Context, metric *models.Metric) error
	CountSince(ctx context.Context, since time.Time) (int64, error)
	CountByTypeSince(ctx context.Context, since time.Time) ([]TypeCount, error)
	TopCountriesSince(ctx context.Context, since time.Time, limit int) ([]CountryCount, error)
	CountByTypeForUser(ctx context.Context, userID uint) ([]TypeCount, error)
}

// Service records and aggregates usage events
type Service interface {
	// Track records an event. It never returns an error: metric failures
	// are logged and swallowed so they cannot break the triggering request.
	Track(ctx context.Context, event Event)
	Analytics(ctx context.Context, period string) (*Summary, error)
	UserAnalytics(ctx context.Context, userID uint) (*UserSummary, error)
}
