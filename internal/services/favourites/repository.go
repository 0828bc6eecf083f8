package favourites

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/gracefm/radio-api/internal/models"
)

// ErrDuplicate reports that the (user, target) pair is already favourited
var ErrDuplicate = errors.New("favourite already exists")

type repository struct {
	db *gorm.DB
}

// NewRepository creates a GORM-backed favourite repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Insert(ctx context.Context, favourite *models.Favourite) error {
	if err := r.db.WithContext(ctx).Create(favourite).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("creating favourite: %w", err)
	}
	return nil
}

func (r *repository) GetByID(ctx context.Context, id uint) (*models.Favourite, error) {
	var favourite models.Favourite
	if err := r.db.WithContext(ctx).First(&favourite, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("fetching favourite %d: %w", id, err)
	}
	return &favourite, nil
}

func (r *repository) Delete(ctx context.Context, id uint) error {
	if err := r.db.WithContext(ctx).Delete(&models.Favourite{}, id).Error; err != nil {
		return fmt.Errorf("deleting favourite %d: %w", id, err)
	}
	return nil
}

func (r *repository) ListByUser(ctx context.Context, userID uint, kind models.EntityKind) ([]models.Favourite, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if kind != "" {
		query = query.Where("favouritable_type = ?", kind)
	}
	var favourites []models.Favourite
	if err := query.Find(&favourites).Error; err != nil {
		return nil, fmt.Errorf("listing favourites for user %d: %w", userID, err)
	}
	return favourites, nil
}

func (r *repository) CountForTarget(ctx context.Context, kind models.EntityKind, targetID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Favourite{}).
		Where("favouritable_type = ? AND favouritable_id = ?", kind, targetID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("counting favourites: %w", err)
	}
	return count, nil
}

// isUniqueViolation matches the constraint errors sqlite reports for the
// composite unique index
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "constraint failed")
}
