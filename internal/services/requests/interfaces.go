package requests

import (
	"context"

	"github.com/gracefm/radio-api/internal/models"
)

// Repository defines data access for podcast upload requests
type Repository interface {
	Create(ctx context.Context, request *models.PodcastRequest) error
	GetByID(ctx context.Context, id uint) (*models.PodcastRequest, error)
	Update(ctx context.Context, request *models.PodcastRequest) error
	ListByUser(ctx context.Context, userID uint) ([]models.PodcastRequest, error)
	ListByStatus(ctx context.Context, status string) ([]models.PodcastRequest, error)
	HasWithStatus(ctx context.Context, userID uint, status string) (bool, error)
}

// Service manages applications for the podcast upload privilege
type Service interface {
	MyRequests(ctx context.Context, userID uint) ([]models.PodcastRequest, error)
	Create(ctx context.Context, userID uint, reason, noteToAdmin string) (*models.PodcastRequest, error)
	List(ctx context.Context, status string) ([]models.PodcastRequest, error)
	Approve(ctx context.Context, id uint, adminNote string) (*models.PodcastRequest, error)
	Reject(ctx context.Context, id uint, adminNote string) (*models.PodcastRequest, error)
	// CanUploadPodcasts reports whether the user holds an approved request.
	// The privilege is permanent once granted.
	CanUploadPodcasts(ctx context.Context, userID uint) (bool, error)
}
