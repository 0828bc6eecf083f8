package comments

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

// NewRepository creates a GORM-backed comment repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return fmt.Errorf("creating comment: %w", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	err := r.db.WithContext(ctx).Preload("User").First(&comment, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("fetching comment %d: %w", id, err)
	}
	return &comment, nil
}

func (r *repository) Update(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Save(comment).Error; err != nil {
		return fmt.Errorf("updating comment %d: %w", comment.ID, err)
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Comment{}, id).Error; err != nil {
		return fmt.Errorf("deleting comment %d: %w", id, err)
	}
	return nil
}

func (r *repository) ListApprovedForTarget(ctx context.Context, kind models.EntityKind, targetID uint, filter ListFilter) ([]models.Comment, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Comment{}).
		Scopes(models.ScopeApprovedComments).
		Where("commentable_type = ? AND commentable_id = ?", kind, targetID)
	return r.page(query, filter)
}

func (r *repository) ListByUser(ctx context.Context, userID uint, filter ListFilter) ([]models.Comment, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Comment{}).Where("user_id = ?", userID)
	return r.page(query, filter)
}

func (r *repository) ListPending(ctx context.Context, filter ListFilter) ([]models.Comment, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Comment{}).Where("approved = ?", false)
	return r.page(query, filter)
}

func (r *repository) page(query *gorm.DB, filter ListFilter) ([]models.Comment, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("counting comments: %w", err)
	}

	offset := (filter.Page - 1) * filter.PerPage
	var items []models.Comment
	err := query.Preload("User").
		Order("created_at DESC").
		Offset(offset).
		Limit(filter.PerPage).
		Find(&items).Error
	if err != nil {
		return nil, 0, fmt.Errorf("listing comments: %w", err)
	}
	return items, total, nil
}

func (r *repository) CountPending(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Comment{}).
		Where("approved = ?", false).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("counting pending comments: %w", err)
	}
	return count, nil
}

func (r *repository) RecentApproved(ctx context.Context, limit int) ([]models.Comment, error) {
	var comments []models.Comment
	err := r.db.WithContext(ctx).
		Scopes(models.ScopeApprovedComments).
		Preload("User").
		Order("created_at DESC").
		Limit(limit).
		Find(&comments).Error
	if err != nil {
		return nil, fmt.Errorf("listing recent comments: %w", err)
	}
	return comments, nil
}
