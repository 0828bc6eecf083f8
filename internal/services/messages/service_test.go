package messages

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gracefm/radio-api/internal/models"
	"github.com/gracefm/radio-api/internal/services/metrics"
	apperrors "github.com/gracefm/radio-api/pkg/errors"
)

func setupService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Category{}, &models.Message{}, &models.User{}, &models.Metric{}))

	metricSvc := metrics.NewService(metrics.NewRepository(db))
	return NewService(NewRepository(db), metricSvc), db
}

func seedMessage(t *testing.T, db *gorm.DB, message *models.Message) *models.Message {
	t.Helper()
	require.NoError(t, db.Create(message).Error)
	return message
}

func TestListPublishedFiltersAndPages(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	category := &models.Category{Name: "Sunday Service"}
	require.NoError(t, db.Create(category).Error)

	seedMessage(t, db, &models.Message{Title: "Grace abounds", CategoryID: category.ID, AudioPath: "a.mp3", IsPublished: true})
	seedMessage(t, db, &models.Message{Title: "Walking in faith", CategoryID: category.ID, AudioPath: "b.mp3", IsPublished: true})
	seedMessage(t, db, &models.Message{Title: "Unlisted draft", AudioPath: "c.mp3", IsPublished: false})

	items, total, err := svc.ListPublished(ctx, ListFilter{Page: 1, PerPage: 15})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, items, 2)

	items, total, err = svc.ListPublished(ctx, ListFilter{Search: "faith", Page: 1, PerPage: 15})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, items, 1)
	assert.Equal(t, "Walking in faith", items[0].Title)

	items, total, err = svc.ListPublished(ctx, ListFilter{CategoryID: category.ID, Page: 1, PerPage: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	assert.Len(t, items, 1)
}

func TestGetHidesUnpublished(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	hidden := seedMessage(t, db, &models.Message{Title: "Draft", AudioPath: "a.mp3", IsPublished: false})

	_, err := svc.Get(ctx, hidden.ID)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeNotFound))

	_, err = svc.Get(ctx, 9999)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeNotFound))
}

func TestListenIncrementsAndRecordsMetric(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	message := seedMessage(t, db, &models.Message{Title: "Grace abounds", AudioPath: "a.mp3", IsPublished: true})

	updated, err := svc.Listen(ctx, message.ID, ListenerInfo{IPAddress: "203.0.113.9", Country: "Kenya"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated.Listens)

	var stored models.Message
	require.NoError(t, db.First(&stored, message.ID).Error)
	assert.Equal(t, int64(1), stored.Listens)

	var metric models.Metric
	require.NoError(t, db.Where("type = ?", models.MetricMessageListen).First(&metric).Error)
	assert.Nil(t, metric.UserID)
	require.NotNil(t, metric.EntityType)
	assert.Equal(t, models.KindMessage, *metric.EntityType)
	require.NotNil(t, metric.EntityID)
	assert.Equal(t, message.ID, *metric.EntityID)
	assert.Equal(t, "Kenya", metric.Country)
}

func TestDownloadRespectsAllowFlag(t *testing.T) {
	svc, db := setupService(t)
	ctx := context.Background()

	open := seedMessage(t, db, &models.Message{Title: "Open", AudioPath: "open.mp3", AllowDownload: true, IsPublished: true})
	locked := seedMessage(t, db, &models.Message{Title: "Locked", AudioPath: "locked.mp3", AllowDownload: false, IsPublished: true})

	path, err := svc.Download(ctx, open.ID)
	require.NoError(t, err)
	assert.Equal(t, "open.mp3", path)

	_, err = svc.Download(ctx, locked.ID)
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeForbidden))
}

func TestCreateValidation(t *testing.T) {
	svc, _ := setupService(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, MessageInput{AudioPath: "a.mp3"})
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeMissingField))

	_, err = svc.Create(ctx, MessageInput{Title: "No audio"})
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeMissingField))

	message, err := svc.Create(ctx, MessageInput{Title: "Complete", AudioPath: "a.mp3"})
	require.NoError(t, err)
	assert.True(t, message.IsPublished)
	assert.True(t, message.AllowDownload)
}
