package streams

import (
	"context"

	"github.com/gracefm/radio-api/internal/models"
)

// Repository defines data access for stream links
type Repository interface {
	Create(ctx context.Context, link *models.StreamLink) error
	GetByID(ctx context.Context, id uint) (*models.StreamLink, error)
	List(ctx context.Context) ([]models.StreamLink, error)
	Active(ctx context.Context) (*models.StreamLink, error)
	Update(ctx context.Context, link *models.StreamLink) error
	Delete(ctx context.Context, id uint) error
	// Activate clears the active flag on every link and sets it on the given
	// one, inside a single transaction.
	Activate(ctx context.Context, id uint) error
}

// Service manages live stream sources
type Service interface {
	Active(ctx context.Context) (*models.StreamLink, error)
	List(ctx context.Context) ([]models.StreamLink, error)
	Create(ctx context.Context, name, url string) (*models.StreamLink, error)
	Update(ctx context.Context, id uint, name, url string) (*models.StreamLink, error)
	Activate(ctx context.Context, id uint) (*models.StreamLink, error)
	Deactivate(ctx context.Context, id uint) (*models.StreamLink, error)
	Delete(ctx context.Context, id uint) error
}
