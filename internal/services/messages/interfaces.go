package messages

import (
	"context"

	"github.com/gracefm/radio-api/internal/models"
)

// Sort orders accepted by listings
const (
	SortNewest      = "newest"
	SortOldest      = "oldest"
	SortMostListens = "most_listens"
	SortTitle       = "title"
)

// ListFilter narrows and pages a message listing
type ListFilter struct {
	CategoryID uint
	Search     string
	Sort       string
	Page       int
	PerPage    int
}

// MessageInput carries the writable message fields
type MessageInput struct {
	Title         string
	Description   string
	CategoryID    uint
	AudioPath     string
	CoverPath     string
	AllowDownload *bool
	IsPublished   *bool
}

// Repository defines data access for messages
type Repository interface {
	Create(ctx context.Context, message *models.Message) error
	GetByID(ctx context.Context, id uint) (*models.Message, error)
	Update(ctx context.Context, message *models.Message) error
	Delete(ctx context.Context, id uint) error
	ListPublished(ctx context.Context, filter ListFilter) ([]models.Message, int64, error)
	ListAll(ctx context.Context, filter ListFilter) ([]models.Message, int64, error)
	IncrementListens(ctx context.Context, id uint) error
	CountPublished(ctx context.Context) (int64, error)
}

// Service manages sermon messages
type Service interface {
	ListPublished(ctx context.Context, filter ListFilter) ([]models.Message, int64, error)
	Get(ctx context.Context, id uint) (*models.Message, error)
	// Listen atomically increments the listen counter of a visible message
	// and records the listen event.
	Listen(ctx context.Context, id uint, listener ListenerInfo) (*models.Message, error)
	// Download returns the audio path of a visible message, refusing when
	// downloads are disabled for it.
	Download(ctx context.Context, id uint) (string, error)

	// Admin operations.
	ListAll(ctx context.Context, filter ListFilter) ([]models.Message, int64, error)
	Create(ctx context.Context, input MessageInput) (*models.Message, error)
	Update(ctx context.Context, id uint, input MessageInput) (*models.Message, error)
	Delete(ctx context.Context, id uint) error
	CountPublished(ctx context.Context) (int64, error)
}

// ListenerInfo identifies who listened, for the metric trail
type ListenerInfo struct {
	UserID    *uint
	IPAddress string
	UserAgent string
	Country   string
	City      string
}
