package categories

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

// NewRepository creates a GORM-backed category repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, category *models.Category) error {
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		return fmt.Errorf("creating category: %w", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id uint) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("fetching category %d: %w", id, err)
	}
	return &category, nil
}

func (r *repository) GetBySlug(ctx context.Context, slug string) (*models.Category, error) {
	var category models.Category
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("fetching category %q: %w", slug, err)
	}
	return &category, nil
}

func (r *repository) Update(ctx context.Context, category *models.Category) error {
	if err := r.db.WithContext(ctx).Save(category).Error; err != nil {
		return fmt.Errorf("updating category %d: %w", category.ID, err)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Category{}, id).Error; err != nil {
		return fmt.Errorf("deleting category %d: %w", id, err)
	}
	return nil
}

func (r *repository) ListWithCounts(ctx context.Context) ([]CategoryWithCount, error) {
	var categories []models.Category
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}

	result := make([]CategoryWithCount, 0, len(categories))
	for _, category := range categories {
		var count int64
		err := r.db.WithContext(ctx).Model(&models.Message{}).
			Scopes(models.ScopePublishedMessages).
			Where("category_id = ?", category.ID).
			Count(&count).Error
		if err != nil {
			return nil, fmt.Errorf("counting messages for category %d: %w", category.ID, err)
		}
		result = append(result, CategoryWithCount{Category: category, MessageCount: count})
	}
	return result, nil
}

func (r *repository) RecentMessages(ctx context.Context, categoryID uint, limit int) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.WithContext(ctx).Model(&models.Message{}).
		Scopes(models.ScopePublishedMessages).
		Where("category_id = ?", categoryID).
		Order("created_at DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, fmt.Errorf("listing recent messages for category %d: %w", categoryID, err)
	}
	return messages, nil
}
