package favourites

import (
	"context"

	"github.com/gracefm/radio-api/internal/models"
)

// FavouriteView is a favourite enriched with the target it points at
type FavouriteView struct {
	ID          uint              `json:"id"`
	Kind        models.EntityKind `json:"kind"`
	TargetID    uint              `json:"target_id"`
	TargetTitle string            `json:"target_title"`
	CreatedAt   string            `json:"created_at"`
}

// Repository defines data access for favourites
type Repository interface {
	// Insert relies on the composite unique index for duplicate detection
	// and reports duplicates as ErrDuplicate.
	Insert(ctx context.Context, favourite *models.Favourite) error
	GetByID(ctx context.Context, id uint) (*models.Favourite, error)
	Delete(ctx context.Context, id uint) error
	ListByUser(ctx context.Context, userID uint, kind models.EntityKind) ([]models.Favourite, error)
	CountForTarget(ctx context.Context, kind models.EntityKind, targetID uint) (int64, error)
}

// Service manages user favourites across entity kinds
type Service interface {
	Add(ctx context.Context, userID uint, kind models.EntityKind, targetID uint, meta RequestMeta) (*models.Favourite, error)
	Remove(ctx context.Context, id, userID uint) error
	// List returns the user's favourites, newest first, with each target
	// resolved. Favourites whose target has disappeared are dropped.
	List(ctx context.Context, userID uint, kind models.EntityKind) ([]FavouriteView, error)
	CountForTarget(ctx context.Context, kind models.EntityKind, targetID uint) (int64, error)
}

// RequestMeta carries request attribution for the metric trail
type RequestMeta struct {
	IPAddress string
	UserAgent string
	Country   string
	City      string
}
