package requests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gracefm/radio-api/internal/models"
	"github.com/gracefm/radio-api/internal/services/notifications"
	"github.com/gracefm/radio-api/internal/services/users"
	apperrors "github.com/gracefm/radio-api/pkg/errors"
)

type fixture struct {
	svc      Service
	db       *gorm.DB
	notifier *notifications.RecordingNotifier
	user     *models.User
}

func setup(t *testing.T) *fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.PodcastRequest{}))

	user := &models.User{Name: "Ada", Email: "ada@example.com", Role: models.RoleUser, IsActive: true}
	require.NoError(t, db.Create(user).Error)

	notifier := notifications.NewRecordingNotifier()
	svc := NewService(NewRepository(db), users.NewRepository(db), notifier)
	return &fixture{svc: svc, db: db, notifier: notifier, user: user}
}

func TestCreateAndPendingConflict(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	request, err := f.svc.Create(ctx, f.user.ID, "I host a weekly youth show", "")
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusPending, request.Status)

	_, err = f.svc.Create(ctx, f.user.ID, "Second application", "")
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeConflict))
}

func TestCreateRequiresReason(t *testing.T) {
	f := setup(t)

	_, err := f.svc.Create(context.Background(), f.user.ID, "   ", "")
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeMissingField))
}

func TestApproveGrantsPermanentPrivilege(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	allowed, err := f.svc.CanUploadPodcasts(ctx, f.user.ID)
	require.NoError(t, err)
	assert.False(t, allowed)

	request, err := f.svc.Create(ctx, f.user.ID, "I host a weekly youth show", "")
	require.NoError(t, err)

	approved, err := f.svc.Approve(ctx, request.ID, "welcome aboard")
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusApproved, approved.Status)
	assert.NotNil(t, approved.ReviewedAt)

	allowed, err = f.svc.CanUploadPodcasts(ctx, f.user.ID)
	require.NoError(t, err)
	assert.True(t, allowed)

	require.Len(t, f.notifier.Sent, 1)
	assert.Equal(t, models.NotifyRequestApproved, f.notifier.Sent[0].Kind)

	// Holders of the privilege cannot apply again.
	_, err = f.svc.Create(ctx, f.user.ID, "Another one", "")
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeConflict))
}

func TestRejectAllowsReapplying(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	request, err := f.svc.Create(ctx, f.user.ID, "First try", "")
	require.NoError(t, err)

	rejected, err := f.svc.Reject(ctx, request.ID, "tell us more")
	require.NoError(t, err)
	assert.Equal(t, models.RequestStatusRejected, rejected.Status)
	require.Len(t, f.notifier.Sent, 1)
	assert.Equal(t, models.NotifyRequestRejected, f.notifier.Sent[0].Kind)

	allowed, err := f.svc.CanUploadPodcasts(ctx, f.user.ID)
	require.NoError(t, err)
	assert.False(t, allowed)

	_, err = f.svc.Create(ctx, f.user.ID, "Second try with more detail", "")
	assert.NoError(t, err)
}

func TestResolveTwiceConflicts(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	request, err := f.svc.Create(ctx, f.user.ID, "First try", "")
	require.NoError(t, err)

	_, err = f.svc.Approve(ctx, request.ID, "")
	require.NoError(t, err)

	_, err = f.svc.Approve(ctx, request.ID, "")
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeConflict))
	_, err = f.svc.Reject(ctx, request.ID, "")
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeConflict))
}

func TestMyRequestsNewestFirst(t *testing.T) {
	f := setup(t)
	ctx := context.Background()

	first, err := f.svc.Create(ctx, f.user.ID, "First try", "")
	require.NoError(t, err)
	_, err = f.svc.Reject(ctx, first.ID, "no")
	require.NoError(t, err)
	_, err = f.svc.Create(ctx, f.user.ID, "Second try", "")
	require.NoError(t, err)

	mine, err := f.svc.MyRequests(ctx, f.user.ID)
	require.NoError(t, err)
	require.Len(t, mine, 2)
}
