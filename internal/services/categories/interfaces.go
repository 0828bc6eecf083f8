package categories

import (
	"context"

	"github.com/gracefm/radio-api/internal/models"
)

// CategoryWithCount pairs a category with its published message count
type CategoryWithCount struct {
	models.Category
	MessageCount int64 `json:"message_count"`
}

// Repository defines data access for categories
type Repository interface {
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, id uint) (*models.Category, error)
	GetBySlug(ctx context.Context, slug string) (*models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, id uint) error
	ListWithCounts(ctx context.Context) ([]CategoryWithCount, error)
	RecentMessages(ctx context.Context, categoryID uint, limit int) ([]models.Message, error)
}

// Service manages message categories
type Service interface {
	List(ctx context.Context) ([]CategoryWithCount, error)
	// GetBySlug returns the category with its most recent published messages.
	GetBySlug(ctx context.Context, slug string) (*models.Category, []models.Message, error)
	Create(ctx context.Context, name, description, imagePath string) (*models.Category, error)
	Update(ctx context.Context, id uint, name, description, imagePath string) (*models.Category, error)
	Delete(ctx context.Context, id uint) error
}
