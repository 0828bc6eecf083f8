package streams

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/gracefm/radio-api/internal/models"
	apperrors "github.com/gracefm/radio-api/pkg/errors"
)

type service struct {
	repo Repository
}

// NewService creates the stream link service
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Active(ctx context.Context) (*models.StreamLink, error) {
	link, err := s.repo.Active(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("active stream")
		}
		return nil, apperrors.DatabaseError("fetching active stream", err)
	}
	return link, nil
}

func (s *service) List(ctx context.Context) ([]models.StreamLink, error) {
	links, err := s.repo.List(ctx)
	if err != nil {
		return nil, apperrors.DatabaseError("listing streams", err)
	}
	return links, nil
}

func (s *service) Create(ctx context.Context, name, url string) (*models.StreamLink, error) {
	name = strings.TrimSpace(name)
	url = strings.TrimSpace(url)
	if name == "" {
		return nil, apperrors.MissingFieldError("name")
	}
	if url == "" {
		return nil, apperrors.MissingFieldError("url")
	}

	link := &models.StreamLink{Name: name, URL: url}
	if err := s.repo.Create(ctx, link); err != nil {
		return nil, apperrors.DatabaseError("creating stream", err)
	}
	return link, nil
}

func (s *service) Update(ctx context.Context, id uint, name, url string) (*models.StreamLink, error) {
	link, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}

	if name = strings.TrimSpace(name); name != "" {
		link.Name = name
	}
	if url = strings.TrimSpace(url); url != "" {
		link.URL = url
	}

	if err := s.repo.Update(ctx, link); err != nil {
		return nil, apperrors.DatabaseError("updating stream", err)
	}
	return link, nil
}

func (s *service) Activate(ctx context.Context, id uint) (*models.StreamLink, error) {
	if err := s.repo.Activate(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("stream")
		}
		return nil, apperrors.DatabaseError("activating stream", err)
	}
	return s.get(ctx, id)
}

func (s *service) Deactivate(ctx context.Context, id uint) (*models.StreamLink, error) {
	link, err := s.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if link.IsActive {
		link.IsActive = false
		if err := s.repo.Update(ctx, link); err != nil {
			return nil, apperrors.DatabaseError("deactivating stream", err)
		}
	}
	return link, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if _, err := s.get(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperrors.DatabaseError("deleting stream", err)
	}
	return nil
}

func (s *service) get(ctx context.Context, id uint) (*models.StreamLink, error) {
	link, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("stream")
		}
		return nil, apperrors.DatabaseError("fetching stream", err)
	}
	return link, nil
}
