package metrics

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
	apperrors "github.com/gracefm/radio-api/pkg/errors"
)

func setup(t *testing.T) (*service, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Metric{}))
	return NewService(NewRepository(db)).(*service), db
}

func TestTrackAnonymousVisit(t *testing.T) {
	svc, db := setup(t)

	svc.Track(context.Background(), Event{
		Type:      models.MetricVisit,
		IPAddress: "203.0.113.9",
		UserAgent: "RadioApp/2.1 (Android)",
		Country:   "Kenya",
		City:      "Nairobi",
	})

	var metric models.Metric
	require.NoError(t, db.First(&metric).Error)
	assert.Nil(t, metric.UserID)
	assert.Equal(t, models.MetricVisit, metric.Type)
	assert.Equal(t, "Kenya", metric.Country)
	assert.Nil(t, metric.EntityType)
}

func TestTrackDropsUnknownTypes(t *testing.T) {
	svc, db := setup(t)

	svc.Track(context.Background(), Event{Type: "page_scroll"})

	unknown := models.EntityKind("playlist")
	svc.Track(context.Background(), Event{Type: models.MetricVisit, EntityType: &unknown})

	var count int64
	require.NoError(t, db.Model(&models.Metric{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestTrackStoresMetadata(t *testing.T) {
	svc, db := setup(t)

	svc.Track(context.Background(), Event{
		Type:     models.MetricVisit,
		Metadata: map[string]interface{}{"app_version": "2.1.0"},
	})

	var metric models.Metric
	require.NoError(t, db.First(&metric).Error)
	assert.Equal(t, "2.1.0", metric.Metadata["app_version"])
}

func TestAnalyticsWindows(t *testing.T) {
	svc, db := setup(t)
	ctx := context.Background()

	// Fixed clock: Wednesday 2026-02-18 15:00.
	now := time.Date(2026, 2, 18, 15, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	insert := func(createdAt time.Time, metricType, country string) {
		require.NoError(t, db.Create(&models.Metric{
			CreatedAt: createdAt,
			Type:      metricType,
			Country:   country,
		}).Error)
	}

	insert(now.Add(-2*time.Hour), models.MetricVisit, "Kenya")                // today
	insert(now.AddDate(0, 0, -2), models.MetricMessageListen, "Kenya")        // this week (Monday)
	insert(now.AddDate(0, 0, -10), models.MetricVisit, "Uganda")              // this month only
	insert(now.AddDate(0, -2, 0), models.MetricVisit, "Tanzania")             // outside all windows

	today, err := svc.Analytics(ctx, PeriodToday)
	require.NoError(t, err)
	assert.Equal(t, int64(1), today.Total)

	week, err := svc.Analytics(ctx, PeriodWeek)
	require.NoError(t, err)
	assert.Equal(t, int64(2), week.Total)

	month, err := svc.Analytics(ctx, PeriodMonth)
	require.NoError(t, err)
	assert.Equal(t, int64(3), month.Total)
	// The Kenya listen is in the window but is not a visit, so it does
	// not inflate the country rollup.
	assert.ElementsMatch(t, []CountryCount{
		{Country: "Kenya", Count: 1},
		{Country: "Uganda", Count: 1},
	}, month.TopCountries)

	_, err = svc.Analytics(ctx, "fortnight")
	assert.True(t, apperrors.Is(err, apperrors.ErrCodeValidation))
}

func TestTopCountriesCountVisitsOnly(t *testing.T) {
	svc, _ := setup(t)
	ctx := context.Background()

	svc.Track(ctx, Event{Type: models.MetricVisit, Country: "Ghana"})
	for i := 0; i < 5; i++ {
		svc.Track(ctx, Event{Type: models.MetricComment, Country: "Nigeria"})
	}

	month, err := svc.Analytics(ctx, PeriodMonth)
	require.NoError(t, err)
	require.Len(t, month.TopCountries, 1)
	assert.Equal(t, "Ghana", month.TopCountries[0].Country)
	assert.Equal(t, int64(1), month.TopCountries[0].Count)
}

func TestWeekWindowStartsMonday(t *testing.T) {
	svc, _ := setup(t)

	// Sunday 2026-02-22: the week window still opens the previous Monday.
	svc.now = func() time.Time { return time.Date(2026, 2, 22, 9, 0, 0, 0, time.UTC) }
	start, err := svc.windowStart(PeriodWeek)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 2, 16, 0, 0, 0, 0, time.UTC), start)

	// Monday itself opens at midnight that day.
	svc.now = func() time.Time { return time.Date(2026, 2, 16, 9, 0, 0, 0, time.UTC) }
	start, err = svc.windowStart(PeriodWeek)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 2, 16, 0, 0, 0, 0, time.UTC), start)
}

func TestUserAnalytics(t *testing.T) {
	svc, db := setup(t)
	ctx := context.Background()

	user := &models.User{Name: "Ada", Email: "ada@example.com", Role: models.RoleUser, IsActive: true}
	require.NoError(t, db.Create(user).Error)

	svc.Track(ctx, Event{UserID: &user.ID, Type: models.MetricMessageListen})
	svc.Track(ctx, Event{UserID: &user.ID, Type: models.MetricMessageListen})
	svc.Track(ctx, Event{UserID: &user.ID, Type: models.MetricComment})
	svc.Track(ctx, Event{Type: models.MetricVisit})

	summary, err := svc.UserAnalytics(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), summary.Total)
	require.NotEmpty(t, summary.ByType)
	assert.Equal(t, models.MetricMessageListen, summary.ByType[0].Type)
	assert.Equal(t, int64(2), summary.ByType[0].Count)
}
