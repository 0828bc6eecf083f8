package streams

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

// NewRepository creates a GORM-backed stream link repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, link *models.StreamLink) error {
	if err := r.db.WithContext(ctx).Create(link).Error; err != nil {
		return fmt.Errorf("creating stream link: %w", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id uint) (*models.StreamLink, error) {
	var link models.StreamLink
	if err := r.db.WithContext(ctx).First(&link, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("fetching stream link %d: %w", id, err)
	}
	return &link, nil
}

func (r *repository) List(ctx context.Context) ([]models.StreamLink, error) {
	var links []models.StreamLink
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&links).Error; err != nil {
		return nil, fmt.Errorf("listing stream links: %w", err)
	}
	return links, nil
}

func (r *repository) Active(ctx context.Context) (*models.StreamLink, error) {
	var link models.StreamLink
	if err := r.db.WithContext(ctx).Where("is_active = ?", true).First(&link).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("fetching active stream link: %w", err)
	}
	return &link, nil
}

func (r *repository) Update(ctx context.Context, link *models.StreamLink) error {
	if err := r.db.WithContext(ctx).Save(link).Error; err != nil {
		return fmt.Errorf("updating stream link %d: %w", link.ID, err)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.StreamLink{}, id).Error; err != nil {
		return fmt.Errorf("deleting stream link %d: %w", id, err)
	}
	return nil
}

func (r *repository) Activate(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.StreamLink{}).
			Where("is_active = ?", true).
			Update("is_active", false).Error; err != nil {
			return fmt.Errorf("deactivating stream links: %w", err)
		}
		result := tx.Model(&models.StreamLink{}).
			Where("id = ?", id).
			Update("is_active", true)
		if result.Error != nil {
			return fmt.Errorf("activating stream link %d: %w", id, result.Error)
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
