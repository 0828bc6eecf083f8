package requests

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

// NewRepository creates a GORM-backed upload request repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, request *models.PodcastRequest) error {
	if err := r.db.WithContext(ctx).Create(request).Error; err != nil {
		return fmt.Errorf("creating upload request: %w", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id uint) (*models.PodcastRequest, error) {
	var request models.PodcastRequest
	err := r.db.WithContext(ctx).Preload("User").First(&request, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("fetching upload request %d: %w", id, err)
	}
	return &request, nil
}

func (r *repository) Update(ctx context.Context, request *models.PodcastRequest) error {
	if err := r.db.WithContext(ctx).Save(request).Error; err != nil {
		return fmt.Errorf("updating upload request %d: %w", request.ID, err)
	}
	return nil
}

func (r *repository) ListByUser(ctx context.Context, userID uint) ([]models.PodcastRequest, error) {
	var requests []models.PodcastRequest
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&requests).Error
	if err != nil {
		return nil, fmt.Errorf("listing upload requests for user %d: %w", userID, err)
	}
	return requests, nil
}

func (r *repository) ListByStatus(ctx context.Context, status string) ([]models.PodcastRequest, error) {
	query := r.db.WithContext(ctx).Preload("User").Order("created_at ASC")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	var requests []models.PodcastRequest
	if err := query.Find(&requests).Error; err != nil {
		return nil, fmt.Errorf("listing upload requests: %w", err)
	}
	return requests, nil
}

func (r *repository) HasWithStatus(ctx context.Context, userID uint, status string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.PodcastRequest{}).
		Where("user_id = ? AND status = ?", userID, status).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("checking upload requests for user %d: %w", userID, err)
	}
	return count > 0, nil
}
