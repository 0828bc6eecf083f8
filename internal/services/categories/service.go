package categories

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/gracefm/radio-api/internal/models"
	apperrors "github.com/gracefm/radio-api/pkg/errors"
)

const recentMessagesLimit = 10

type service struct {
	repo Repository
}

// NewService creates the category service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]CategoryWithCount, error) {
	categories, err := s.repo.ListWithCounts(ctx)
	if err != nil {
		return nil, apperrors.DatabaseError("listing categories", err)
	}
	return categories, nil
}

func (s *service) GetBySlug(ctx context.Context, slug string) (*models.Category, []models.Message, error) {
	category, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperrors.NotFound("category")
		}
		return nil, nil, apperrors.DatabaseError("fetching category", err)
	}

	recent, err := s.repo.RecentMessages(ctx, category.ID, recentMessagesLimit)
	if err != nil {
		return nil, nil, apperrors.DatabaseError("listing messages", err)
	}
	return category, recent, nil
}

func (s *service) Create(ctx context.Context, name, description, imagePath string) (*models.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, apperrors.MissingFieldError("name")
	}

	category := &models.Category{Name: name, Description: description, ImagePath: imagePath}
	if err := s.repo.Create(ctx, category); err != nil {
		return nil, apperrors.DatabaseError("creating category", err)
	}
	return category, nil
}

func (s *service) Update(ctx context.Context, id uint, name, description, imagePath string) (*models.Category, error) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("category")
		}
		return nil, apperrors.DatabaseError("fetching category", err)
	}

	if name = strings.TrimSpace(name); name != "" {
		category.Name = name
		category.Slug = ""
	}
	if description != "" {
		category.Description = description
	}
	if imagePath != "" {
		category.ImagePath = imagePath
	}

	if err := s.repo.Update(ctx, category); err != nil {
		return nil, apperrors.DatabaseError("updating category", err)
	}
	return category, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NotFound("category")
		}
		return apperrors.DatabaseError("fetching category", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperrors.DatabaseError("deleting category", err)
	}
	return nil
}
