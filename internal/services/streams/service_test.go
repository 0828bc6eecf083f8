package streams

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gracefm/radio-api/internal/models"
	apperrors "github.com/gracefm/radio-api/pkg/errors"
)

func setupService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.StreamLink{}))
	return NewService(NewRepository(db)), db
}

func TestActivateEnforcesSingleActiveLink(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	first, err := svc.Create(ctx, "Main stream", "https://stream.example.com/live")
	require.NoError(t, err)
	second, err := svc.Create(ctx, "Backup stream", "https://stream.example.com/backup")
	require.NoError(t, err)

	_, err = svc.Activate(ctx, first.ID)
	require.NoError(t, err)

	activated, err := svc.Activate(ctx, second.ID)
	require.NoError(t, err)
	assert.True(t, activated.IsActive)

	var activeCount int64
	require.NoError(t, db.Model(&models.StreamLink{}).Where("is_active = ?", true).Count(&activeCount).Error)
	assert.Equal(t, int64(1), activeCount)

	active, err := svc.Active(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, active.ID)
}

func TestActivateUnknownLink(t *testing.T) {
	svc, _ := setupService(t)

	_, err := svc.Activate(context.Background(), 999)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeNotFound))
}

func TestActiveWithNoActiveLink(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "Main stream", "https://stream.example.com/live")
	require.NoError(t, err)

	_, err = svc.Active(ctx)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeNotFound))
}

func TestDeactivateIsIdempotent(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	link, err := svc.Create(ctx, "Main stream", "https://stream.example.com/live")
	require.NoError(t, err)
	_, err = svc.Activate(ctx, link.ID)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		deactivated, err := svc.Deactivate(ctx, link.ID)
		require.NoError(t, err)
		assert.False(t, deactivated.IsActive)
	}
}

func TestCreateValidation(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, "", "https://stream.example.com/live")
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeMissingField))

	_, err = svc.Create(ctx, "Main stream", "  ")
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeMissingField))
}
