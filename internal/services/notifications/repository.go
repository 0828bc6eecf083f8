package notifications

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/gracefm/radio-api/internal/models"
)

type repository struct {
	db *gorm.DB
}

// NewRepository creates a GORM-backed notification log repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Record(ctx context.Context, notification *models.Notification) error {
	if err := r.db.WithContext(ctx).Create(notification).Error; err != nil {
		return fmt.Errorf("recording notification: %w", err)
	}
	return nil
}

func (r *repository) ListByUser(ctx context.Context, userID uint, limit int) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&notifications).Error
	if err != nil {
		return nil, fmt.Errorf("listing notifications for user %d: %w", userID, err)
	}
	return notifications, nil
}
