// Package quicklinks manages the configurable shortcuts on the landing
// screen.
package quicklinks

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/gracefm/radio-api/internal/models"
	apperrors "github.com/gracefm/radio-api/pkg/errors"
)

// QuickLinkInput carries the writable quick link fields
type QuickLinkInput struct {
	Title     string
	URL       string
	Icon      string
	ImagePath string
	IsActive  *bool
	Priority  *int
}

// Service manages quick links
type Service interface {
	Active(ctx context.Context) ([]models.QuickLink, error)
	ListAll(ctx context.Context) ([]models.QuickLink, error)
	Create(ctx context.Context, input QuickLinkInput) (*models.QuickLink, error)
	Update(ctx context.Context, id uint, input QuickLinkInput) (*models.QuickLink, error)
	Delete(ctx context.Context, id uint) error
}

type service struct {
	db *gorm.DB
}

// NewService creates the quick link service
func NewService(db *gorm.DB) Service {
	return &service{db: db}
}

func (s *service) Active(ctx context.Context) ([]models.QuickLink, error) {
	var links []models.QuickLink
	err := s.db.WithContext(ctx).Scopes(models.ScopeActiveQuickLinks).Find(&links).Error
	if err != nil {
		return nil, apperrors.DatabaseError("listing quick links", err)
	}
	return links, nil
}

func (s *service) ListAll(ctx context.Context) ([]models.QuickLink, error) {
	var links []models.QuickLink
	err := s.db.WithContext(ctx).Order("priority ASC").Find(&links).Error
	if err != nil {
		return nil, apperrors.DatabaseError("listing quick links", err)
	}
	return links, nil
}

func (s *service) Create(ctx context.Context, input QuickLinkInput) (*models.QuickLink, error) {
	input.Title = strings.TrimSpace(input.Title)
	input.URL = strings.TrimSpace(input.URL)
	if input.Title == "" {
		return nil, apperrors.MissingFieldError("title")
	}
	if input.URL == "" {
		return nil, apperrors.MissingFieldError("url")
	}

	link := &models.QuickLink{
		Title:     input.Title,
		URL:       input.URL,
		Icon:      input.Icon,
		ImagePath: input.ImagePath,
		IsActive:  true,
	}
	if input.IsActive != nil {
		link.IsActive = *input.IsActive
	}
	if input.Priority != nil {
		link.Priority = *input.Priority
	}

	if err := s.db.WithContext(ctx).Create(link).Error; err != nil {
		return nil, apperrors.DatabaseError("creating quick link", err)
	}
	return link, nil
}

func (s *service) Update(ctx context.Context, id uint, input QuickLinkInput) (*models.QuickLink, error) {
	link, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	if title := strings.TrimSpace(input.Title); title != "" {
		link.Title = title
	}
	if url := strings.TrimSpace(input.URL); url != "" {
		link.URL = url
	}
	if input.Icon != "" {
		link.Icon = input.Icon
	}
	if input.ImagePath != "" {
		link.ImagePath = input.ImagePath
	}
	if input.IsActive != nil {
		link.IsActive = *input.IsActive
	}
	if input.Priority != nil {
		link.Priority = *input.Priority
	}

	if err := s.db.WithContext(ctx).Save(link).Error; err != nil {
		return nil, apperrors.DatabaseError("updating quick link", err)
	}
	return link, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if _, err := s.fetch(ctx, id); err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Delete(&models.QuickLink{}, id).Error; err != nil {
		return apperrors.DatabaseError("deleting quick link", err)
	}
	return nil
}

func (s *service) fetch(ctx context.Context, id uint) (*models.QuickLink, error) {
	var link models.QuickLink
	if err := s.db.WithContext(ctx).First(&link, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("quick link")
		}
		return nil, apperrors.DatabaseError("fetching quick link", err)
	}
	return &link, nil
}
