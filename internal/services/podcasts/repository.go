package podcasts

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/gracefm/radio-api/internal/models"
)

type repository struct {
	db *gorm.DB
}

// NewRepository creates a GORM-backed podcast repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, podcast *models.Podcast) error {
	if err := r.db.WithContext(ctx).Create(podcast).Error; err != nil {
		return fmt.Errorf("creating podcast: %w", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id uint) (*models.Podcast, error) {
	var podcast models.Podcast
	err := r.db.WithContext(ctx).Preload("User").First(&podcast, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("fetching podcast %d: %w", id, err)
	}
	return &podcast, nil
}

func (r *repository) Update(ctx context.Context, podcast *models.Podcast) error {
	if err := r.db.WithContext(ctx).Save(podcast).Error; err != nil {
		return fmt.Errorf("updating podcast %d: %w", podcast.ID, err)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Podcast{}, id).Error; err != nil {
		return fmt.Errorf("deleting podcast %d: %w", id, err)
	}
	return nil
}

func (r *repository) ListPublished(ctx context.Context, filter ListFilter) ([]models.Podcast, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Podcast{}).Scopes(models.ScopePublishedPodcasts)
	return r.list(query, filter)
}

func (r *repository) ListByUser(ctx context.Context, userID uint, filter ListFilter) ([]models.Podcast, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Podcast{}).Where("user_id = ?", userID)
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	return r.list(query, filter)
}

func (r *repository) ListByStatus(ctx context.Context, status string, filter ListFilter) ([]models.Podcast, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Podcast{}).Where("status = ?", status)
	return r.list(query, filter)
}

func (r *repository) list(query *gorm.DB, filter ListFilter) ([]models.Podcast, int64, error) {
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting podcasts: %w", err)
	}

	switch filter.Sort {
	case SortOldest:
		query = query.Order("created_at ASC")
	case SortMostListens:
		query = query.Order("listens DESC")
	case SortTitle:
		query = query.Order("title ASC")
	default:
		query = query.Order("created_at DESC")
	}

	offset := (filter.Page - 1) * filter.PerPage
	var items []models.Podcast
	err := query.Preload("User").Offset(offset).Limit(filter.PerPage).Find(&items).Error
	if err != nil {
		return nil, 0, fmt.Errorf("listing podcasts: %w", err)
	}
	return items, total, nil
}

func (r *repository) IncrementListens(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Model(&models.Podcast{}).
		Where("id = ?", id).
		UpdateColumn("listens", gorm.Expr("listens + 1")).Error
	if err != nil {
		return fmt.Errorf("incrementing listens for podcast %d: %w", id, err)
	}
	return nil
}

func (r *repository) CountByStatus(ctx context.Context, status string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Podcast{}).
		Where("status = ?", status).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("counting %s podcasts: %w", status, err)
	}
	return count, nil
}

func (r *repository) RequestDeletion(ctx context.Context, podcast *models.Podcast, request *models.PodcastDeletionRequest) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(podcast).Error; err != nil {
			return fmt.Errorf("flagging podcast %d for deletion: %w", podcast.ID, err)
		}
		if err := tx.Create(request).Error; err != nil {
			return fmt.Errorf("filing deletion request: %w", err)
		}
		return nil
	})
}

func (r *repository) GetDeletionRequest(ctx context.Context, id uint) (*models.PodcastDeletionRequest, error) {
	var request models.PodcastDeletionRequest
	err := r.db.WithContext(ctx).Preload("Podcast").Preload("User").First(&request, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("fetching deletion request %d: %w", id, err)
	}
	return &request, nil
}

func (r *repository) ListDeletionRequests(ctx context.Context, status string) ([]models.PodcastDeletionRequest, error) {
	query := r.db.WithContext(ctx).Preload("Podcast").Preload("User").Order("created_at ASC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var requests []models.PodcastDeletionRequest
	if err := query.Find(&requests).Error; err != nil {
		return nil, fmt.Errorf("listing deletion requests: %w", err)
	}
	return requests, nil
}

func (r *repository) ResolveDeletion(ctx context.Context, request *models.PodcastDeletionRequest, destroyPodcast bool) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(request).Error; err != nil {
			return fmt.Errorf("updating deletion request %d: %w", request.ID, err)
		}
		if destroyPodcast {
			if err := tx.Delete(&models.Podcast{}, request.PodcastID).Error; err != nil {
				return fmt.Errorf("deleting podcast %d: %w", request.PodcastID, err)
			}
			if err := tx.Delete(&models.PodcastDeletionRequest{}, request.ID).Error; err != nil {
				return fmt.Errorf("removing deletion request %d: %w", request.ID, err)
			}
		}
		return nil
	})
}

func (r *repository) UpdateDeletionPodcast(ctx context.Context, podcast *models.Podcast, request *models.PodcastDeletionRequest) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(request).Error; err != nil {
			return fmt.Errorf("updating deletion request %d: %w", request.ID, err)
		}
		if err := tx.Save(podcast).Error; err != nil {
			return fmt.Errorf("restoring podcast %d: %w", podcast.ID, err)
		}
		return nil
	})
}
