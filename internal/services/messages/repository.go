package messages

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

// NewRepository creates a GORM-backed message repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, message *models.Message) error {
	if err := r.db.WithContext(ctx).Create(message).Error; err != nil {
		return fmt.Errorf("creating message: %w", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id uint) (*models.Message, error) {
	var message models.Message
	err := r.db.WithContext(ctx).Preload("Category").First(&message, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("fetching message %d: %w", id, err)
	}
	return &message, nil
}

func (r *repository) Update(ctx context.Context, message *models.Message) error {
	if err := r.db.WithContext(ctx).Save(message).Error; err != nil {
		return fmt.Errorf("updating message %d: %w", message.ID, err)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Message{}, id).Error; err != nil {
		return fmt.Errorf("deleting message %d: %w", id, err)
	}
	return nil
}

func (r *repository) ListPublished(ctx context.Context, filter ListFilter) ([]models.Message, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Message{}).Scopes(models.ScopePublishedMessages)
	return r.list(query, filter)
}

func (r *repository) ListAll(ctx context.Context, filter ListFilter) ([]models.Message, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Message{})
	return r.list(query, filter)
}

func (r *repository) list(query *gorm.DB, filter ListFilter) ([]models.Message, int64, error) {
	if filter.CategoryID != 0 {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting messages: %w", err)
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
	var items []models.Message
	err := query.Preload("Category").Offset(offset).Limit(filter.PerPage).Find(&items).Error
	if err != nil {
		return nil, 0, fmt.Errorf("listing messages: %w", err)
	}
	return items, total, nil
}

func (r *repository) IncrementListens(ctx context.Context, id uint) error {
	err := r.db.WithContext(ctx).Model(&models.Message{}).
		Where("id = ?", id).
		UpdateColumn("listens", gorm.Expr("listens + 1")).Error
	if err != nil {
		return fmt.Errorf("incrementing listens for message %d: %w", id, err)
	}
	return nil
}

func (r *repository) CountPublished(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Message{}).
		Scopes(models.ScopePublishedMessages).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("counting published messages: %w", err)
	}
	return count, nil
}
