package users

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gracefm/radio-api/internal/models"
	"github.com/gracefm/radio-api/internal/services/auth"
	apperrors "github.com/gracefm/radio-api/pkg/errors"
)

func setup(t *testing.T) (Service, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	authSvc, err := auth.NewService("test-secret", time.Hour)
	require.NoError(t, err)
	return NewService(NewRepository(db), authSvc), db
}

func TestRegisterAndAuthenticate(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "Ada", "Ada@Example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", user.Email)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.True(t, user.IsActive)
	assert.NotEqual(t, "s3cret-pass", user.PasswordHash)

	authenticated, err := svc.Authenticate(ctx, "ada@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, user.ID, authenticated.ID)

	_, err = svc.Authenticate(ctx, "ada@example.com", "wrong")
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeUnauthorized))

	_, err = svc.Authenticate(ctx, "nobody@example.com", "s3cret-pass")
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeUnauthorized))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Ada", "ada@example.com", "s3cret-pass")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Imposter", "ADA@example.com", "other-pass")
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeConflict))
}

func TestRegisterValidation(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "", "ada@example.com", "s3cret-pass")
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeMissingField))

	_, err = svc.Register(ctx, "Ada", "ada@example.com", "short")
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidation))
}

func TestAuthenticateDeactivatedAccount(t *testing.T) {
	svc, db := setup(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "Ada", "ada@example.com", "s3cret-pass")
	require.NoError(t, err)
	require.NoError(t, db.Model(user).Update("is_active", false).Error)

	_, err = svc.Authenticate(ctx, "ada@example.com", "s3cret-pass")
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeForbidden))
}

func TestChangePassword(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "Ada", "ada@example.com", "s3cret-pass")
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, user.ID, "wrong", "new-password")
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeUnauthorized))

	require.NoError(t, svc.ChangePassword(ctx, user.ID, "s3cret-pass", "new-password"))

	_, err = svc.Authenticate(ctx, "ada@example.com", "new-password")
	assert.NoError(t, err)
}
