// Package banners manages the rotating banner ads shown by the apps.
package banners

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/gracefm/radio-api/internal/models"
	apperrors "github.com/gracefm/radio-api/pkg/errors"
)

// BannerInput carries the writable banner fields
type BannerInput struct {
	Title       string
	URL         string
	Description string
	ImagePath   string
	IsActive    *bool
	StartsAt    *time.Time
	EndsAt      *time.Time
	Order       *int
}

// Service manages banner ads
type Service interface {
	Active(ctx context.Context) ([]models.BannerAd, error)
	ListAll(ctx context.Context) ([]models.BannerAd, error)
	Create(ctx context.Context, input BannerInput) (*models.BannerAd, error)
	Update(ctx context.Context, id uint, input BannerInput) (*models.BannerAd, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	db *gorm.DB
}

// NewService creates the banner service
func NewService(db *gorm.DB) Service {
	return &service{db: db}
}

func (s *service) Active(ctx context.Context) ([]models.BannerAd, error) {
	var banners []models.BannerAd
	err := s.db.WithContext(ctx).Scopes(models.ScopeActiveBanners).Find(&banners).Error
	if err != nil {
		return nil, apperrors.DatabaseError("listing banners", err)
	}
	return banners, nil
}

func (s *service) ListAll(ctx context.Context) ([]models.BannerAd, error) {
	var banners []models.BannerAd
	err := s.db.WithContext(ctx).Order("`order` ASC").Find(&banners).Error
	if err != nil {
		return nil, apperrors.DatabaseError("listing banners", err)
	}
	return banners, nil
}

func (s *service) Create(ctx context.Context, input BannerInput) (*models.BannerAd, error) {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return nil, apperrors.MissingFieldError("title")
	}
	if input.ImagePath == "" {
		return nil, apperrors.MissingFieldError("image")
	}
	if input.StartsAt != nil && input.EndsAt != nil && input.EndsAt.Before(*input.StartsAt) {
		return nil, apperrors.ValidationError("ends_at", "must be after starts_at")
	}

	banner := &models.BannerAd{
		Title:       input.Title,
		URL:         input.URL,
		Description: input.Description,
		ImagePath:   input.ImagePath,
		IsActive:    true,
		StartsAt:    input.StartsAt,
		EndsAt:      input.EndsAt,
	}
	if input.IsActive != nil {
		banner.IsActive = *input.IsActive
	}
	if input.Order != nil {
		banner.Order = *input.Order
	}

	if err := s.db.WithContext(ctx).Create(banner).Error; err != nil {
		return nil, apperrors.DatabaseError("creating banner", err)
	}
	return banner, nil
}

func (s *service) Update(ctx context.Context, id uint, input BannerInput) (*models.BannerAd, error) {
	banner, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.StartsAt != nil && input.EndsAt != nil && input.EndsAt.Before(*input.StartsAt) {
		return nil, apperrors.ValidationError("ends_at", "must be after starts_at")
	}

	if title := strings.TrimSpace(input.Title); title != "" {
		banner.Title = title
	}
	if input.URL != "" {
		banner.URL = input.URL
	}
	if input.Description != "" {
		banner.Description = input.Description
	}
	if input.ImagePath != "" {
		banner.ImagePath = input.ImagePath
	}
	if input.IsActive != nil {
		banner.IsActive = *input.IsActive
	}
	if input.StartsAt != nil {
		banner.StartsAt = input.StartsAt
	}
	if input.EndsAt != nil {
		banner.EndsAt = input.EndsAt
	}
	if input.Order != nil {
		banner.Order = *input.Order
	}

	if err := s.db.WithContext(ctx).Save(banner).Error; err != nil {
		return nil, apperrors.DatabaseError("updating banner", err)
	}
	return banner, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if _, err := s.fetch(ctx, id); err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Delete(&models.BannerAd{}, id).Error; err != nil {
		return apperrors.DatabaseError("deleting banner", err)
	}
	return nil
}

func (s *service) fetch(ctx context.Context, id uint) (*models.BannerAd, error) {
	var banner models.BannerAd
	if err := s.db.WithContext(ctx).First(&banner, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("banner")
		}
		return nil, apperrors.DatabaseError(fmt.Sprintf("fetching banner %d", id), err)
	}
	return &banner, nil
}
