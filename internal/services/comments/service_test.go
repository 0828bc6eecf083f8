package comments

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gracefm/radio-api/internal/models"
	"github.com/gracefm/radio-api/internal/services/metrics"
	"github.com/gracefm/radio-api/internal/services/notifications"
	"github.com/gracefm/radio-api/internal/services/targets"
	"github.com/gracefm/radio-api/internal/services/users"
	apperrors "github.com/gracefm/radio-api/pkg/errors"
)

type fixture struct {
	svc      Service
	db       *gorm.DB
	notifier *notifications.RecordingNotifier
	author   *models.User
	message  *models.Message
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Message{},
		&models.Podcast{},
		&models.StreamLink{},
		&models.Comment{},
		&models.Metric{},
	))

	author := &models.User{Name: "Ada", Email: "ada@example.com", Role: models.RoleUser, IsActive: true}
	require.NoError(t, db.Create(author).Error)

	message := &models.Message{Title: "Grace abounds", AudioPath: "a.mp3", IsPublished: true}
	require.NoError(t, db.Create(message).Error)

	notifier := notifications.NewRecordingNotifier()
	svc := NewService(
		NewRepository(db),
		targets.NewResolver(db),
		users.NewRepository(db),
		metrics.NewService(metrics.NewRepository(db)),
		notifier,
	)
	return &fixture{svc: svc, db: db, notifier: notifier, author: author, message: message}
}

func (f *fixture) comment(t *testing.T, body string) *models.Comment {
	t.Helper()
	comment, err := f.svc.Create(context.Background(), f.author.ID, CommentInput{
		Target:   models.KindMessage,
		TargetID: f.message.ID,
		Body:     body,
	})
	require.NoError(t, err)
	return comment
}

func TestCreateStartsUnapproved(t *testing.T) {
	f := setup(t)

	comment := f.comment(t, "Blessed by this message")
	assert.False(t, comment.Approved)
	assert.NotEmpty(t, comment.UUID)

	// Unapproved comments stay out of public listings.
	items, total, err := f.svc.ListForTarget(context.Background(), models.KindMessage, f.message.ID, ListFilter{Page: 1, PerPage: 20})
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, items)

	var metric models.Metric
	require.NoError(t, f.db.Where("type = ?", models.MetricComment).First(&metric).Error)
	require.NotNil(t, metric.UserID)
	assert.Equal(t, f.author.ID, *metric.UserID)
}

func TestCreateRejectsHiddenAndUnknownTargets(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	hidden := &models.Message{Title: "Draft", AudioPath: "d.mp3", IsPublished: false}
	require.NoError(t, f.db.Create(hidden).Error)

	_, err := f.svc.Create(ctx, f.author.ID, CommentInput{Target: models.KindMessage, TargetID: hidden.ID, Body: "hello"})
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeNotFound))

	_, err = f.svc.Create(ctx, f.author.ID, CommentInput{Target: models.KindMessage, TargetID: 9999, Body: "hello"})
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeNotFound))

	_, err = f.svc.Create(ctx, f.author.ID, CommentInput{Target: "playlist", TargetID: 1, Body: "hello"})
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidation))
}

func TestBodyValidation(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, f.author.ID, CommentInput{Target: models.KindMessage, TargetID: f.message.ID, Body: "   "})
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeMissingField))

	_, err = f.svc.Create(ctx, f.author.ID, CommentInput{
		Target:   models.KindMessage,
		TargetID: f.message.ID,
		Body:     strings.Repeat("x", maxBodyLength+1),
	})
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidation))
}

func TestApproveNotifiesOnlyOnce(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	comment := f.comment(t, "Blessed by this message")

	approved, err := f.svc.Approve(ctx, comment.ID)
	require.NoError(t, err)
	assert.True(t, approved.Approved)
	assert.NotNil(t, approved.ApprovedAt)
	require.Len(t, f.notifier.Sent, 1)
	assert.Equal(t, models.NotifyCommentApproved, f.notifier.Sent[0].Kind)

	// Re-approving an approved comment sends nothing.
	_, err = f.svc.Approve(ctx, comment.ID)
	require.NoError(t, err)
	assert.Len(t, f.notifier.Sent, 1)

	items, total, err := f.svc.ListForTarget(ctx, models.KindMessage, f.message.ID, ListFilter{Page: 1, PerPage: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, comment.ID, items[0].ID)
}

func TestEditOnlyWhileUnapproved(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	comment := f.comment(t, "First draft")
	edited, err := f.svc.Update(ctx, comment.ID, f.author.ID, "Second draft")
	require.NoError(t, err)
	assert.Equal(t, "Second draft", edited.Body)
	assert.False(t, edited.Approved)

	_, err = f.svc.Approve(ctx, comment.ID)
	require.NoError(t, err)

	_, err = f.svc.Update(ctx, comment.ID, f.author.ID, "Third draft")
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeForbidden))

	var stored models.Comment
	require.NoError(t, f.db.First(&stored, comment.ID).Error)
	assert.Equal(t, "Second draft", stored.Body)
	assert.True(t, stored.Approved)
}

func TestUpdateAndDeletePermissions(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	comment := f.comment(t, "Mine")

	stranger := &models.User{Name: "Eve", Email: "eve@example.com", Role: models.RoleUser, IsActive: true}
	require.NoError(t, f.db.Create(stranger).Error)

	_, err := f.svc.Update(ctx, comment.ID, stranger.ID, "Hijack")
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeForbidden))

	err = f.svc.Delete(ctx, comment.ID, stranger)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeForbidden))

	// Role is no shortcut here. Deleting a comment is author-only.
	moderator := &models.User{Name: "Mod", Email: "mod@example.com", Role: models.RoleModerator, IsActive: true}
	require.NoError(t, f.db.Create(moderator).Error)
	err = f.svc.Delete(ctx, comment.ID, moderator)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeForbidden))

	assert.NoError(t, f.svc.Delete(ctx, comment.ID, f.author))
}

func TestRejectIsIdempotent(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	comment := f.comment(t, "Pending")
	for i := 0; i < 2; i++ {
		rejected, err := f.svc.Reject(ctx, comment.ID)
		require.NoError(t, err)
		assert.False(t, rejected.Approved)
	}
	assert.Empty(t, f.notifier.Sent)
}
