package messages

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/gracefm/radio-api/internal/models"
	"github.com/gracefm/radio-api/internal/services/metrics"
	apperrors "github.com/gracefm/radio-api/pkg/errors"
)

type service struct {
	repo    Repository
	metrics metrics.Service
}

// NewService creates the message service
func NewService(repo Repository, metricSvc metrics.Service) Service {
	return &service{repo: repo, metrics: metricSvc}
}

func (s *service) ListPublished(ctx context.Context, filter ListFilter) ([]models.Message, int64, error) {
	items, total, err := s.repo.ListPublished(ctx, filter)
	if err != nil {
		return nil, 0, apperrors.DatabaseError("listing messages", err)
	}
	return items, total, nil
}

func (s *service) Get(ctx context.Context, id uint) (*models.Message, error) {
	message, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if !message.IsVisible() {
		return nil, apperrors.NotFound("message")
	}
	return message, nil
}

func (s *service) Listen(ctx context.Context, id uint, listener ListenerInfo) (*models.Message, error) {
	message, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.repo.IncrementListens(ctx, id); err != nil {
		return nil, apperrors.DatabaseError("incrementing listens", err)
	}
	message.Listens++

	kind := models.KindMessage
	s.metrics.Track(ctx, metrics.Event{
		UserID:     listener.UserID,
		Type:       models.MetricMessageListen,
		EntityType: &kind,
		EntityID:   &message.ID,
		IPAddress:  listener.IPAddress,
		UserAgent:  listener.UserAgent,
		Country:    listener.Country,
		City:       listener.City,
	})
	return message, nil
}

func (s *service) Download(ctx context.Context, id uint) (string, error) {
	message, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if !message.AllowDownload {
		return "", apperrors.Forbidden("downloads are disabled for this message")
	}
	if message.AudioPath == "" {
		return "", apperrors.NotFound("audio file")
	}
	return message.AudioPath, nil
}

func (s *service) ListAll(ctx context.Context, filter ListFilter) ([]models.Message, int64, error) {
	items, total, err := s.repo.ListAll(ctx, filter)
	if err != nil {
		return nil, 0, apperrors.DatabaseError("listing messages", err)
	}
	return items, total, nil
}

func (s *service) Create(ctx context.Context, input MessageInput) (*models.Message, error) {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return nil, apperrors.MissingFieldError("title")
	}
	if input.AudioPath == "" {
		return nil, apperrors.MissingFieldError("audio")
	}

	message := &models.Message{
		Title:         input.Title,
		Description:   input.Description,
		CategoryID:    input.CategoryID,
		AudioPath:     input.AudioPath,
		CoverPath:     input.CoverPath,
		AllowDownload: true,
		IsPublished:   true,
	}
	if input.AllowDownload != nil {
		message.AllowDownload = *input.AllowDownload
	}
	if input.IsPublished != nil {
		message.IsPublished = *input.IsPublished
	}

	if err := s.repo.Create(ctx, message); err != nil {
		return nil, apperrors.DatabaseError("creating message", err)
	}
	return message, nil
}

func (s *service) Update(ctx context.Context, id uint, input MessageInput) (*models.Message, error) {
	message, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}

	if title := strings.TrimSpace(input.Title); title != "" {
		message.Title = title
	}
	if input.Description != "" {
		message.Description = input.Description
	}
	if input.CategoryID != 0 {
		message.CategoryID = input.CategoryID
	}
	if input.AudioPath != "" {
		message.AudioPath = input.AudioPath
	}
	if input.CoverPath != "" {
		message.CoverPath = input.CoverPath
	}
	if input.AllowDownload != nil {
		message.AllowDownload = *input.AllowDownload
	}
	if input.IsPublished != nil {
		message.IsPublished = *input.IsPublished
	}

	if err := s.repo.Update(ctx, message); err != nil {
		return nil, apperrors.DatabaseError("updating message", err)
	}
	return message, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	if _, err := s.fetch(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperrors.DatabaseError("deleting message", err)
	}
	return nil
}

func (s *service) CountPublished(ctx context.Context) (int64, error) {
	return s.repo.CountPublished(ctx)
}

func (s *service) fetch(ctx context.Context, id uint) (*models.Message, error) {
	message, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("message")
		}
		return nil, apperrors.DatabaseError("fetching message", err)
	}
	return message, nil
}
