package favourites

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/gracefm/radio-api/internal/models"
	"github.com/gracefm/radio-api/internal/services/metrics"
	"github.com/gracefm/radio-api/internal/services/targets"
	apperrors "github.com/gracefm/radio-api/pkg/errors"
)

type service struct {
	repo     Repository
	resolver targets.Resolver
	metrics  metrics.Service
}

// NewService creates the favourite service
func NewService(repo Repository, resolver targets.Resolver, metricSvc metrics.Service) Service {
	return &service{repo: repo, resolver: resolver, metrics: metricSvc}
}

// Add favourites a visible target for the user. The insert is atomic:
// concurrent duplicates lose at the unique index and surface as a conflict.
func (s *service) Add(ctx context.Context, userID uint, kind models.EntityKind, targetID uint, meta RequestMeta) (*models.Favourite, error) {
	if !models.FavouritableKinds[kind] {
		return nil, apperrors.ValidationError("favouritable_type", "cannot be favourited")
	}

	target, err := s.resolver.Resolve(ctx, kind, targetID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound(string(kind))
		}
		return nil, apperrors.DatabaseError("resolving favourite target", err)
	}
	if !target.Accessible {
		return nil, apperrors.NotFound(string(kind))
	}

	favourite := &models.Favourite{
		UserID:           userID,
		FavouritableType: kind,
		FavouritableID:   targetID,
	}
	if err := s.repo.Insert(ctx, favourite); err != nil {
		if errors.Is(err, ErrDuplicate) {
			return nil, apperrors.Conflict("already favourited")
		}
		return nil, apperrors.DatabaseError("creating favourite", err)
	}

	entityKind := kind
	s.metrics.Track(ctx, metrics.Event{
		UserID:     &userID,
		Type:       models.MetricFavourite,
		EntityType: &entityKind,
		EntityID:   &targetID,
		IPAddress:  meta.IPAddress,
		UserAgent:  meta.UserAgent,
		Country:    meta.Country,
		City:       meta.City,
	})
	return favourite, nil
}

func (s *service) Remove(ctx context.Context, id, userID uint) error {
	favourite, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("favourite")
		}
		return apperrors.DatabaseError("fetching favourite", err)
	}
	if favourite.UserID != userID {
		return apperrors.Forbidden("only the owner may remove this favourite")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperrors.DatabaseError("deleting favourite", err)
	}
	return nil
}

func (s *service) List(ctx context.Context, userID uint, kind models.EntityKind) ([]FavouriteView, error) {
	if kind != "" && !models.FavouritableKinds[kind] {
		return nil, apperrors.ValidationError("favouritable_type", "cannot be favourited")
	}

	favourites, err := s.repo.ListByUser(ctx, userID, kind)
	if err != nil {
		return nil, apperrors.DatabaseError("listing favourites", err)
	}

	views := make([]FavouriteView, 0, len(favourites))
	for _, favourite := range favourites {
		target, err := s.resolver.Resolve(ctx, favourite.FavouritableType, favourite.FavouritableID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, apperrors.DatabaseError("resolving favourite target", err)
		}
		views = append(views, FavouriteView{
			ID:          favourite.ID,
			Kind:        favourite.FavouritableType,
			TargetID:    favourite.FavouritableID,
			TargetTitle: target.Title,
			CreatedAt:   favourite.CreatedAt.Format(time.RFC3339),
		})
	}
	return views, nil
}

func (s *service) CountForTarget(ctx context.Context, kind models.EntityKind, targetID uint) (int64, error) {
	count, err := s.repo.CountForTarget(ctx, kind, targetID)
	if err != nil {
		return 0, apperrors.DatabaseError("counting favourites", err)
	}
	return count, nil
}
