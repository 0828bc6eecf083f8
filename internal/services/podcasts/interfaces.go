package podcasts

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

// ListFilter narrows and pages a podcast listing
type ListFilter struct {
	Search  string
	Status  string
	Sort    string
	Page    int
	PerPage int
}

// PodcastInput carries the writable podcast fields
type PodcastInput struct {
	Title         string
	Description   string
	AudioPath     string
	CoverPath     string
	AllowDownload *bool
}

// ListenerInfo identifies who listened, for the metric trail
type ListenerInfo struct {
	UserID    *uint
	IPAddress string
	UserAgent string
	Country   string
	City      string
}

// UploadGate answers whether a user holds the podcast upload privilege
type UploadGate interface {
	CanUploadPodcasts(ctx context.Context, userID uint) (bool, error)
}

// Repository defines data access for podcasts and deletion requests
type Repository interface {
	Create(ctx context.Context, podcast *models.Podcast) error
	GetByID(ctx context.Context, id uint) (*models.Podcast, error)
	Update(ctx context.Context, podcast *models.Podcast) error
	Delete(ctx context.Context, id uint) error
	ListPublished(ctx context.Context, filter ListFilter) ([]models.Podcast, int64, error)
	ListByUser(ctx context.Context, userID uint, filter ListFilter) ([]models.Podcast, int64, error)
	ListByStatus(ctx context.Context, status string, filter ListFilter) ([]models.Podcast, int64, error)
	IncrementListens(ctx context.Context, id uint) error
	CountByStatus(ctx context.Context, status string) (int64, error)

	// RequestDeletion flags the podcast and files the deletion request in
	// one transaction.
	RequestDeletion(ctx context.Context, podcast *models.Podcast, request *models.PodcastDeletionRequest) error
	GetDeletionRequest(ctx context.Context, id uint) (*models.PodcastDeletionRequest, error)
	ListDeletionRequests(ctx context.Context, status string) ([]models.PodcastDeletionRequest, error)
	// ResolveDeletion persists the reviewed request and, when approved,
	// destroys the podcast and the request row in the same transaction.
	ResolveDeletion(ctx context.Context, request *models.PodcastDeletionRequest, destroyPodcast bool) error
	UpdateDeletionPodcast(ctx context.Context, podcast *models.Podcast, request *models.PodcastDeletionRequest) error
}

// Service manages listener podcasts through their review lifecycle
type Service interface {
	ListPublished(ctx context.Context, filter ListFilter) ([]models.Podcast, int64, error)
	Get(ctx context.Context, id uint, viewer *models.User) (*models.Podcast, error)
	ListByUser(ctx context.Context, userID uint, filter ListFilter) ([]models.Podcast, int64, error)
	Create(ctx context.Context, userID uint, input PodcastInput) (*models.Podcast, error)
	Update(ctx context.Context, id, userID uint, input PodcastInput) (*models.Podcast, error)
	// Delete destroys a pending or rejected podcast outright. For approved
	// podcasts it files a deletion request instead and leaves the rows in
	// place for review.
	Delete(ctx context.Context, id, userID uint, reason string) (deleted bool, err error)
	Resubmit(ctx context.Context, id, userID uint) (*models.Podcast, error)
	Listen(ctx context.Context, id uint, listener ListenerInfo) (*models.Podcast, error)
	Download(ctx context.Context, id uint, viewer *models.User) (string, error)

	// Moderation.
	ListPending(ctx context.Context, filter ListFilter) ([]models.Podcast, int64, error)
	Approve(ctx context.Context, id uint, adminNote string) (*models.Podcast, error)
	Reject(ctx context.Context, id uint, adminNote string) (*models.Podcast, error)
	ListDeletionRequests(ctx context.Context, status string) ([]models.PodcastDeletionRequest, error)
	ApproveDeletion(ctx context.Context, requestID uint, adminNote string) error
	RejectDeletion(ctx context.Context, requestID uint, adminNote string) (*models.Podcast, error)
	CountPending(ctx context.Context) (int64, error)
}
