package comments

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
	"github.com/gracefm/radio-api/internal/services/targets"
	"github.com/gracefm/radio-api/internal/services/users"
	apperrors "github.com/gracefm/radio-api/pkg/errors"
)

const maxBodyLength = 1000

type service struct {
	repo     Repository
	resolver targets.Resolver
	users    users.Repository
	metrics  metrics.Service
	notifier notifications.Notifier
}

// NewService creates the comment service
func NewService(repo Repository, resolver targets.Resolver, userRepo users.Repository, metricSvc metrics.Service, notifier notifications.Notifier) Service {
	return &service{
		repo:     repo,
		resolver: resolver,
		users:    userRepo,
		metrics:  metricSvc,
		notifier: notifier,
	}
}

func (s *service) Create(ctx context.Context, userID uint, input CommentInput) (*models.Comment, error) {
	body := strings.TrimSpace(input.Body)
	if body == "" {
		return nil, apperrors.MissingFieldError("body")
	}
	if len(body) > maxBodyLength {
		return nil, apperrors.ValidationError("body", fmt.Sprintf("must be at most %d characters", maxBodyLength))
	}
	if !models.CommentableKinds[input.Target] {
		return nil, apperrors.ValidationError("commentable_type", "cannot be commented on")
	}

	target, err := s.resolveVisible(ctx, input.Target, input.TargetID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		UserID:          userID,
		CommentableType: target.Kind,
		CommentableID:   target.ID,
		Body:            body,
		Approved:        false,
	}
	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, apperrors.DatabaseError("creating comment", err)
	}

	kind := target.Kind
	s.metrics.Track(ctx, metrics.Event{
		UserID:     &userID,
		Type:       models.MetricComment,
		EntityType: &kind,
		EntityID:   &target.ID,
		IPAddress:  input.IPAddress,
		UserAgent:  input.UserAgent,
		Country:    input.Country,
		City:       input.City,
	})
	return comment, nil
}

// Update applies an author edit. Only the author may edit, and only while
// the comment is still awaiting moderation.
func (s *service) Update(ctx context.Context, id, userID uint, body string) (*models.Comment, error) {
	comment, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment.UserID != userID {
		return nil, apperrors.Forbidden("only the author may edit this comment")
	}
	if comment.Approved {
		return nil, apperrors.Forbidden("approved comments cannot be edited")
	}

	body = strings.TrimSpace(body)
	if body == "" {
		return nil, apperrors.MissingFieldError("body")
	}
	if len(body) > maxBodyLength {
		return nil, apperrors.ValidationError("body", fmt.Sprintf("must be at most %d characters", maxBodyLength))
	}

	comment.Body = body
	if err := s.repo.Update(ctx, comment); err != nil {
		return nil, apperrors.DatabaseError("updating comment", err)
	}
	return comment, nil
}

func (s *service) Delete(ctx context.Context, id uint, actor *models.User) error {
	comment, err := s.fetch(ctx, id)
	if err != nil {
		return err
	}
	if actor == nil {
		return apperrors.Unauthorized("authentication required")
	}
	if comment.UserID != actor.ID {
		return apperrors.Forbidden("only the author may delete this comment")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return apperrors.DatabaseError("deleting comment", err)
	}
	return nil
}

func (s *service) ListForTarget(ctx context.Context, kind models.EntityKind, targetID uint, filter ListFilter) ([]models.Comment, int64, error) {
	if !models.CommentableKinds[kind] {
		return nil, 0, apperrors.ValidationError("commentable_type", "cannot be commented on")
	}
	if _, err := s.resolveVisible(ctx, kind, targetID); err != nil {
		return nil, 0, err
	}

	items, total, err := s.repo.ListApprovedForTarget(ctx, kind, targetID, filter)
	if err != nil {
		return nil, 0, apperrors.DatabaseError("listing comments", err)
	}
	return items, total, nil
}

func (s *service) ListMine(ctx context.Context, userID uint, filter ListFilter) ([]models.Comment, int64, error) {
	items, total, err := s.repo.ListByUser(ctx, userID, filter)
	if err != nil {
		return nil, 0, apperrors.DatabaseError("listing comments", err)
	}
	return items, total, nil
}

func (s *service) ListPending(ctx context.Context, filter ListFilter) ([]models.Comment, int64, error) {
	items, total, err := s.repo.ListPending(ctx, filter)
	if err != nil {
		return nil, 0, apperrors.DatabaseError("listing pending comments", err)
	}
	return items, total, nil
}

// Approve clears a comment for public display. The author is notified only
// on the first approval; re-approving is a no-op.
func (s *service) Approve(ctx context.Context, id uint) (*models.Comment, error) {
	comment, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if comment.Approved {
		return comment, nil
	}

	now := time.Now()
	comment.Approved = true
	comment.ApprovedAt = &now
	if err := s.repo.Update(ctx, comment); err != nil {
		return nil, apperrors.DatabaseError("approving comment", err)
	}

	if author, err := s.users.GetByID(ctx, comment.UserID); err == nil {
		_ = s.notifier.Notify(ctx, author, models.NotifyCommentApproved,
			"Your comment is now visible",
			"Your comment has been approved and is now publicly visible.")
	}
	return comment, nil
}

// Reject returns a comment to the hidden state. Idempotent.
func (s *service) Reject(ctx context.Context, id uint) (*models.Comment, error) {
	comment, err := s.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if !comment.Approved {
		return comment, nil
	}

	comment.Approved = false
	comment.ApprovedAt = nil
	if err := s.repo.Update(ctx, comment); err != nil {
		return nil, apperrors.DatabaseError("rejecting comment", err)
	}
	return comment, nil
}

func (s *service) CountPending(ctx context.Context) (int64, error) {
	return s.repo.CountPending(ctx)
}

func (s *service) RecentApproved(ctx context.Context, limit int) ([]models.Comment, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	comments, err := s.repo.RecentApproved(ctx, limit)
	if err != nil {
		return nil, apperrors.DatabaseError("listing recent comments", err)
	}
	return comments, nil
}

func (s *service) fetch(ctx context.Context, id uint) (*models.Comment, error) {
	comment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("comment")
		}
		return nil, apperrors.DatabaseError("fetching comment", err)
	}
	return comment, nil
}

// resolveVisible fails closed: unknown targets and targets the public
// cannot see both come back as not found.
func (s *service) resolveVisible(ctx context.Context, kind models.EntityKind, id uint) (*targets.Resolved, error) {
	target, err := s.resolver.Resolve(ctx, kind, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound(string(kind))
		}
		return nil, apperrors.DatabaseError("resolving comment target", err)
	}
	if !target.Accessible {
		return nil, apperrors.NotFound(string(kind))
	}
	return target, nil
}
