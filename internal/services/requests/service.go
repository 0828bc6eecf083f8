package requests

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/gracefm/radio-api/internal/models"
	"github.com/gracefm/radio-api/internal/services/notifications"
	"github.com/gracefm/radio-api/internal/services/users"
	apperrors "github.com/gracefm/radio-api/pkg/errors"
)

type service struct {
	repo     Repository
	users    users.Repository
	notifier notifications.Notifier
}

// NewService creates the upload request service
func NewService(repo Repository, userRepo users.Repository, notifier notifications.Notifier) Service {
	return &service{repo: repo, users: userRepo, notifier: notifier}
}

func (s *service) MyRequests(ctx context.Context, userID uint) ([]models.PodcastRequest, error) {
	requests, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, apperrors.DatabaseError("listing upload requests", err)
	}
	return requests, nil
}

// Create files a new application. Users who already hold the privilege, or
// who have an application open, cannot file another.
func (s *service) Create(ctx context.Context, userID uint, reason, noteToAdmin string) (*models.PodcastRequest, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, apperrors.MissingFieldError("reason")
	}

	granted, err := s.CanUploadPodcasts(ctx, userID)
	if err != nil {
		return nil, err
	}
	if granted {
		return nil, apperrors.Conflict("you already have podcast upload privileges")
	}

	pending, err := s.repo.HasWithStatus(ctx, userID, models.RequestStatusPending)
	if err != nil {
		return nil, apperrors.DatabaseError("checking upload requests", err)
	}
	if pending {
		return nil, apperrors.Conflict("you already have a pending upload request")
	}

	request := &models.PodcastRequest{
		UserID:      userID,
		Reason:      reason,
		NoteToAdmin: strings.TrimSpace(noteToAdmin),
		Status:      models.RequestStatusPending,
	}
	if err := s.repo.Create(ctx, request); err != nil {
		return nil, apperrors.DatabaseError("creating upload request", err)
	}
	return request, nil
}

func (s *service) List(ctx context.Context, status string) ([]models.PodcastRequest, error) {
	requests, err := s.repo.ListByStatus(ctx, status)
	if err != nil {
		return nil, apperrors.DatabaseError("listing upload requests", err)
	}
	return requests, nil
}

func (s *service) Approve(ctx context.Context, id uint, adminNote string) (*models.PodcastRequest, error) {
	request, err := s.fetchPending(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	request.Status = models.RequestStatusApproved
	request.AdminNote = adminNote
	request.ReviewedAt = &now
	if err := s.repo.Update(ctx, request); err != nil {
		return nil, apperrors.DatabaseError("approving upload request", err)
	}

	s.notifyApplicant(ctx, request.UserID, models.NotifyRequestApproved,
		"Podcast upload access granted",
		"Your request for podcast upload access has been approved. You can now submit podcasts for review.")
	return request, nil
}

func (s *service) Reject(ctx context.Context, id uint, adminNote string) (*models.PodcastRequest, error) {
	request, err := s.fetchPending(ctx, id)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	request.Status = models.RequestStatusRejected
	request.AdminNote = adminNote
	request.ReviewedAt = &now
	if err := s.repo.Update(ctx, request); err != nil {
		return nil, apperrors.DatabaseError("rejecting upload request", err)
	}

	body := "Your request for podcast upload access was declined."
	if adminNote != "" {
		body += " Reviewer note: " + adminNote
	}
	s.notifyApplicant(ctx, request.UserID, models.NotifyRequestRejected,
		"Podcast upload access declined", body)
	return request, nil
}

func (s *service) CanUploadPodcasts(ctx context.Context, userID uint) (bool, error) {
	granted, err := s.repo.HasWithStatus(ctx, userID, models.RequestStatusApproved)
	if err != nil {
		return false, apperrors.DatabaseError("checking upload privilege", err)
	}
	return granted, nil
}

func (s *service) fetchPending(ctx context.Context, id uint) (*models.PodcastRequest, error) {
	request, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("upload request")
		}
		return nil, apperrors.DatabaseError("fetching upload request", err)
	}
	if !request.IsPending() {
		return nil, apperrors.Conflict(fmt.Sprintf("upload request is already %s", request.Status))
	}
	return request, nil
}

func (s *service) notifyApplicant(ctx context.Context, userID uint, kind, subject, body string) {
	applicant, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return
	}
	_ = s.notifier.Notify(ctx, applicant, kind, subject, body)
}
