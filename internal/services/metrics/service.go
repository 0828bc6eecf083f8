package metrics

import (
	"context"
	"log"
	"time"

	"github.com/gracefm/radio-api/internal/models"
	apperrors "github.com/gracefm/radio-api/pkg/errors"
)

// Reporting periods accepted by Analytics
const (
	PeriodToday = "today"
	PeriodWeek  = "week"
	PeriodMonth = "month"
)

const topCountriesLimit = 10

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates the metric service
func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

func (s *service) Track(ctx context.Context, event Event) {
	if !models.MetricTypes[event.Type] {
		log.Printf("Dropping metric with unknown type %q", event.Type)
		return
	}
	if event.EntityType != nil && !models.MetricEntityKinds[*event.EntityType] {
		log.Printf("Dropping %s metric with unknown entity type %q", event.Type, *event.EntityType)
		return
	}

	metric := &models.Metric{
		UserID:     event.UserID,
		Type:       event.Type,
		EntityType: event.EntityType,
		EntityID:   event.EntityID,
		IPAddress:  event.IPAddress,
		UserAgent:  event.UserAgent,
		Country:    event.Country,
		City:       event.City,
		Metadata:   event.Metadata,
	}
	if err := s.repo.Insert(ctx, metric); err != nil {
		log.Printf("Failed to record %s metric: %v", event.Type, err)
	}
}

func (s *service) Analytics(ctx context.Context, period string) (*Summary, error) {
	since, err := s.windowStart(period)
	if err != nil {
		return nil, err
	}

	total, err := s.repo.CountSince(ctx, since)
	if err != nil {
		return nil, apperrors.DatabaseError("counting metrics", err)
	}
	byType, err := s.repo.CountByTypeSince(ctx, since)
	if err != nil {
		return nil, apperrors.DatabaseError("aggregating metrics", err)
	}
	countries, err := s.repo.TopCountriesSince(ctx, since, topCountriesLimit)
	if err != nil {
		return nil, apperrors.DatabaseError("aggregating metrics", err)
	}

	return &Summary{
		Period:       period,
		Since:        since,
		Total:        total,
		ByType:       byType,
		TopCountries: countries,
	}, nil
}

func (s *service) UserAnalytics(ctx context.Context, userID uint) (*UserSummary, error) {
	byType, err := s.repo.CountByTypeForUser(ctx, userID)
	if err != nil {
		return nil, apperrors.DatabaseError("aggregating metrics", err)
	}
	var total int64
	for _, row := range byType {
		total += row.Count
	}
	return &UserSummary{UserID: int64(userID), Total: total, ByType: byType}, nil
}

// windowStart maps a period name to its inclusive start time. The week
// window opens on Monday 00:00, the month window on the first of the month.
func (s *service) windowStart(period string) (time.Time, error) {
	now := s.now()
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch period {
	case PeriodToday:
		return midnight, nil
	case PeriodWeek:
		offset := (int(midnight.Weekday()) + 6) % 7
		return midnight.AddDate(0, 0, -offset), nil
	case PeriodMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()), nil
	default:
		return time.Time{}, apperrors.ValidationError("period", "must be today, week or month")
	}
}
