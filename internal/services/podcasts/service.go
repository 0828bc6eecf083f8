package podcasts

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/gracefm/radio-api/internal/models"
	"github.com/gracefm/radio-api/internal/services/metrics"
	"github.com/gracefm/radio-api/internal/services/notifications"
	"github.com/gracefm/radio-api/internal/services/users"
	apperrors "github.com/gracefm/radio-api/pkg/errors"
)

type service struct {
	repo     Repository
	gate     UploadGate
	users    users.Repository
	metrics  metrics.Service
	notifier notifications.Notifier
}

// NewService creates the podcast service
func NewService(repo Repository, gate UploadGate, userRepo users.Repository, metricSvc metrics.Service, notifier notifications.Notifier) Service {
	return &service{
		repo:     repo,
		gate:     gate,
		users:    userRepo,
		metrics:  metricSvc,
		notifier: notifier,
	}
}

func (s *service) ListPublished(ctx context.Context, filter ListFilter) ([]models.Podcast, int64, error) {
	items, total, err := s.repo.ListPublished(ctx, filter)
	if err != nil {
		return nil, 0, apperrors.DatabaseError("listing podcasts", err)
	}
	return items, total, nil
}

// Get returns the podcast when it is publicly visible, or when the viewer
// is its owner or a staff member.
func (s *service) Get(ctx context.Context, id uint, viewer *models.User) (*models.Podcast, error) {
	podcast, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if podcast.IsVisible() {
		return podcast, nil
	}
	if viewer != nil && (viewer.ID == podcast.UserID || viewer.HasRole(models.RoleAdmin, models.RoleManager, models.RoleModerator)) {
		return podcast, nil
	}
	return nil, apperrors.NotFound("podcast")
}

func (s *service) ListByUser(ctx context.Context, userID uint, filter ListFilter) ([]models.Podcast, int64, error) {
	items, total, err := s.repo.ListByUser(ctx, userID, filter)
	if err != nil {
		return nil, 0, apperrors.DatabaseError("listing podcasts", err)
	}
	return items, total, nil
}

func (s *service) Create(ctx context.Context, userID uint, input PodcastInput) (*models.Podcast, error) {
	allowed, err := s.gate.CanUploadPodcasts(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, apperrors.Forbidden("podcast upload privilege required")
	}

	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return nil, apperrors.MissingFieldError("title")
	}
	if input.AudioPath == "" {
		return nil, apperrors.MissingFieldError("audio")
	}

	podcast := &models.Podcast{
		UserID:        userID,
		Title:         input.Title,
		Description:   input.Description,
		AudioPath:     input.AudioPath,
		CoverPath:     input.CoverPath,
		AllowDownload: true,
		Status:        models.PodcastStatusPending,
	}
	if input.AllowDownload != nil {
		podcast.AllowDownload = *input.AllowDownload
	}

	if err := s.repo.Create(ctx, podcast); err != nil {
		return nil, apperrors.DatabaseError("creating podcast", err)
	}
	return podcast, nil
}

func (s *service) Update(ctx context.Context, id, userID uint, input PodcastInput) (*models.Podcast, error) {
	podcast, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if podcast.UserID != userID {
		return nil, apperrors.Forbidden("only the owner may edit this podcast")
	}
	if !podcast.CanEdit() {
		return nil, apperrors.Conflict("approved podcasts cannot be edited")
	}

	if title := strings.TrimSpace(input.Title); title != "" {
		podcast.Title = title
	}
	if input.Description != "" {
		podcast.Description = input.Description
	}
	if input.AudioPath != "" {
		podcast.AudioPath = input.AudioPath
	}
	if input.CoverPath != "" {
		podcast.CoverPath = input.CoverPath
	}
	if input.AllowDownload != nil {
		podcast.AllowDownload = *input.AllowDownload
	}

	if err := s.repo.Update(ctx, podcast); err != nil {
		return nil, apperrors.DatabaseError("updating podcast", err)
	}
	return podcast, nil
}

// Delete removes a pending or rejected podcast immediately. An approved
// podcast is instead flagged and a deletion request filed for admin review;
// the podcast drops out of public listings while the request is open.
func (s *service) Delete(ctx context.Context, id, userID uint, reason string) (bool, error) {
	podcast, err := s.fetch(ctx, id)
	if err != nil {
		return false, err
	}
	if podcast.UserID != userID {
		return false, apperrors.Forbidden("only the owner may delete this podcast")
	}

	if podcast.IsPending() || podcast.IsRejected() {
		if err := s.repo.Delete(ctx, id); err != nil {
			return false, apperrors.DatabaseError("deleting podcast", err)
		}
		return true, nil
	}

	if !podcast.CanDelete() {
		return false, apperrors.Conflict("a deletion request is already pending for this podcast")
	}

	now := time.Now()
	podcast.IsDeleteRequested = true
	podcast.DeleteRequestedAt = &now
	request := &models.PodcastDeletionRequest{
		PodcastID: podcast.ID,
		UserID:    userID,
		Reason:    strings.TrimSpace(reason),
		Status:    models.RequestStatusPending,
	}
	if err := s.repo.RequestDeletion(ctx, podcast, request); err != nil {
		return false, apperrors.DatabaseError("filing deletion request", err)
	}
	return false, nil
}

// Resubmit returns a rejected podcast to the review queue
func (s *service) Resubmit(ctx context.Context, id, userID uint) (*models.Podcast, error) {
	podcast, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if podcast.UserID != userID {
		return nil, apperrors.Forbidden("only the owner may resubmit this podcast")
	}
	if !podcast.IsRejected() {
		return nil, apperrors.Conflict("only rejected podcasts can be resubmitted")
	}

	podcast.Status = models.PodcastStatusPending
	podcast.AdminNote = ""
	if err := s.repo.Update(ctx, podcast); err != nil {
		return nil, apperrors.DatabaseError("resubmitting podcast", err)
	}
	return podcast, nil
}

func (s *service) Listen(ctx context.Context, id uint, listener ListenerInfo) (*models.Podcast, error) {
	podcast, err := s.Get(ctx, id, nil)
	if err != nil {
		return nil, err
	}

	if err := s.repo.IncrementListens(ctx, id); err != nil {
		return nil, apperrors.DatabaseError("incrementing listens", err)
	}
	podcast.Listens++

	kind := models.KindPodcast
	s.metrics.Track(ctx, metrics.Event{
		UserID:     listener.UserID,
		Type:       models.MetricPodcastListen,
		EntityType: &kind,
		EntityID:   &podcast.ID,
		IPAddress:  listener.IPAddress,
		UserAgent:  listener.UserAgent,
		Country:    listener.Country,
		City:       listener.City,
	})
	return podcast, nil
}

func (s *service) Download(ctx context.Context, id uint, viewer *models.User) (string, error) {
	podcast, err := s.Get(ctx, id, viewer)
	if err != nil {
		return "", err
	}
	if !podcast.AllowDownload {
		return "", apperrors.Forbidden("downloads are disabled for this podcast")
	}
	if podcast.AudioPath == "" {
		return "", apperrors.NotFound("audio file")
	}
	return podcast.AudioPath, nil
}

func (s *service) ListPending(ctx context.Context, filter ListFilter) ([]models.Podcast, int64, error) {
	items, total, err := s.repo.ListByStatus(ctx, models.PodcastStatusPending, filter)
	if err != nil {
		return nil, 0, apperrors.DatabaseError("listing pending podcasts", err)
	}
	return items, total, nil
}

// Approve publishes a pending podcast and notifies the owner once
func (s *service) Approve(ctx context.Context, id uint, adminNote string) (*models.Podcast, error) {
	podcast, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if !podcast.IsPending() {
		return nil, apperrors.Conflict(fmt.Sprintf("podcast is already %s", podcast.Status))
	}

	now := time.Now()
	podcast.Status = models.PodcastStatusApproved
	podcast.IsPublished = true
	podcast.PublishedAt = &now
	podcast.AdminNote = adminNote
	if err := s.repo.Update(ctx, podcast); err != nil {
		return nil, apperrors.DatabaseError("approving podcast", err)
	}

	s.notifyOwner(ctx, podcast.UserID, models.NotifyPodcastApproved,
		"Your podcast has been approved",
		fmt.Sprintf("Your podcast %q has been approved and is now live.", podcast.Title))
	return podcast, nil
}

// Reject declines a pending podcast and notifies the owner once
func (s *service) Reject(ctx context.Context, id uint, adminNote string) (*models.Podcast, error) {
	podcast, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if !podcast.IsPending() {
		return nil, apperrors.Conflict(fmt.Sprintf("podcast is already %s", podcast.Status))
	}

	podcast.Status = models.PodcastStatusRejected
	podcast.IsPublished = false
	podcast.AdminNote = adminNote
	if err := s.repo.Update(ctx, podcast); err != nil {
		return nil, apperrors.DatabaseError("rejecting podcast", err)
	}

	body := fmt.Sprintf("Your podcast %q was not approved.", podcast.Title)
	if adminNote != "" {
		body += " Reviewer note: " + adminNote
	}
	s.notifyOwner(ctx, podcast.UserID, models.NotifyPodcastRejected,
		"Your podcast was not approved", body)
	return podcast, nil
}

func (s *service) ListDeletionRequests(ctx context.Context, status string) ([]models.PodcastDeletionRequest, error) {
	requests, err := s.repo.ListDeletionRequests(ctx, status)
	if err != nil {
		return nil, apperrors.DatabaseError("listing deletion requests", err)
	}
	return requests, nil
}

// ApproveDeletion grants a pending deletion request and destroys the podcast
func (s *service) ApproveDeletion(ctx context.Context, requestID uint, adminNote string) error {
	request, err := s.fetchDeletionRequest(ctx, requestID)
	if err != nil {
		return err
	}
	if !request.IsPending() {
		return apperrors.Conflict(fmt.Sprintf("deletion request is already %s", request.Status))
	}

	now := time.Now()
	request.Status = models.RequestStatusApproved
	request.AdminNote = adminNote
	request.ReviewedAt = &now
	if err := s.repo.ResolveDeletion(ctx, request, true); err != nil {
		return apperrors.DatabaseError("approving deletion request", err)
	}
	return nil
}

// RejectDeletion declines a pending deletion request and restores the
// podcast's visibility
func (s *service) RejectDeletion(ctx context.Context, requestID uint, adminNote string) (*models.Podcast, error) {
	request, err := s.fetchDeletionRequest(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if !request.IsPending() {
		return nil, apperrors.Conflict(fmt.Sprintf("deletion request is already %s", request.Status))
	}

	podcast, err := s.fetch(ctx, request.PodcastID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	request.Status = models.RequestStatusRejected
	request.AdminNote = adminNote
	request.ReviewedAt = &now
	podcast.IsDeleteRequested = false
	podcast.DeleteRequestedAt = nil
	if err := s.repo.UpdateDeletionPodcast(ctx, podcast, request); err != nil {
		return nil, apperrors.DatabaseError("rejecting deletion request", err)
	}
	return podcast, nil
}

func (s *service) CountPending(ctx context.Context) (int64, error) {
	return s.repo.CountByStatus(ctx, models.PodcastStatusPending)
}

func (s *service) fetch(ctx context.Context, id uint) (*models.Podcast, error) {
	podcast, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("podcast")
		}
		return nil, apperrors.DatabaseError("fetching podcast", err)
	}
	return podcast, nil
}

func (s *service) fetchDeletionRequest(ctx context.Context, id uint) (*models.PodcastDeletionRequest, error) {
	request, err := s.repo.GetDeletionRequest(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("deletion request")
		}
		return nil, apperrors.DatabaseError("fetching deletion request", err)
	}
	return request, nil
}

// notifyOwner looks up the owner and dispatches a notification. Failures
// are ignored: moderation must not fail because mail did.
func (s *service) notifyOwner(ctx context.Context, userID uint, kind, subject, body string) {
	owner, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return
	}
	_ = s.notifier.Notify(ctx, owner, kind, subject, body)
}
