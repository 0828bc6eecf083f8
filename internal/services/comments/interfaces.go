package comments

import (
	"context"

	"github.com/gracefm/radio-api/internal/models"
)

// ListFilter pages a comment listing
type ListFilter struct {
	Page    int
	PerPage int
}

// CommentInput carries everything needed to file a comment
type CommentInput struct {
	Target    models.EntityKind
	TargetID  uint
	Body      string
	IPAddress string
	UserAgent string
	Country   string
	City      string
}

// Repository defines data access for comments
type Repository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id uint) (*models.Comment, error)
	Update(ctx context.Context, comment *models.Comment) error
	Delete(ctx context.Context, id uint) error
	ListApprovedForTarget(ctx context.Context, kind models.EntityKind, targetID uint, filter ListFilter) ([]models.Comment, int64, error)
	ListByUser(ctx context.Context, userID uint, filter ListFilter) ([]models.Comment, int64, error)
	ListPending(ctx context.Context, filter ListFilter) ([]models.Comment, int64, error)
	CountPending(ctx context.Context) (int64, error)
	RecentApproved(ctx context.Context, limit int) ([]models.Comment, error)
}

// Service manages comments and their moderation
type Service interface {
	// Create files a comment against a visible target. New comments always
	// enter the moderation queue unapproved.
	Create(ctx context.Context, userID uint, input CommentInput) (*models.Comment, error)
	// Update edits the body. Only the author may edit, and edits return the
	// comment to the moderation queue.
	Update(ctx context.Context, id, userID uint, body string) (*models.Comment, error)
	Delete(ctx context.Context, id uint, actor *models.User) error
	ListForTarget(ctx context.Context, kind models.EntityKind, targetID uint, filter ListFilter) ([]models.Comment, int64, error)
	ListMine(ctx context.Context, userID uint, filter ListFilter) ([]models.Comment, int64, error)

	// Moderation.
	ListPending(ctx context.Context, filter ListFilter) ([]models.Comment, int64, error)
	Approve(ctx context.Context, id uint) (*models.Comment, error)
	Reject(ctx context.Context, id uint) (*models.Comment, error)
	CountPending(ctx context.Context) (int64, error)
	RecentApproved(ctx context.Context, limit int) ([]models.Comment, error)
}
