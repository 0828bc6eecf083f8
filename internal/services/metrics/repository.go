package metrics

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/gracefm/radio-api/internal/models"
)

type repository struct {
	db *gorm.DB
}

// NewRepository creates a GORM-backed metric repository
func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Insert(ctx context.Context, metric *models.Metric) error {
	if err := r.db.WithContext(ctx).Create(metric).Error; err != nil {
		return fmt.Errorf("inserting metric: %w", err)
	}
	return nil
}

func (r *repository) CountSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Metric{}).
		Where("created_at >= ?", since).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("counting metrics: %w", err)
	}
	return count, nil
}

func (r *repository) CountByTypeSince(ctx context.Context, since time.Time) ([]TypeCount, error) {
	var rows []TypeCount
	err := r.db.WithContext(ctx).Model(&models.Metric{}).
		Select("type, COUNT(*) as count").
		Where("created_at >= ?", since).
		Group("type").
		Order("count DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("aggregating metrics by type: %w", err)
	}
	return rows, nil
}

func (r *repository) TopCountriesSince(ctx context.Context, since time.Time, limit int) ([]CountryCount, error) {
	var rows []CountryCount
	err := r.db.WithContext(ctx).Model(&models.Metric{}).
		Select("country, COUNT(*) as count").
		Where("type = ?", models.MetricVisit).
		Where("created_at >= ?", since).
		Where("country <> ''").
		Group("country").
		Order("count DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("aggregating metrics by country: %w", err)
	}
	return rows, nil
}

func (r *repository) CountByTypeForUser(ctx context.Context, userID uint) ([]TypeCount, error) {
	var rows []TypeCount
	err := r.db.WithContext(ctx).Model(&models.Metric{}).
		Select("type, COUNT(*) as count").
		Where("user_id = ?", userID).
		Group("type").
		Order("count DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("aggregating metrics for user %d: %w", userID, err)
	}
	return rows, nil
}
