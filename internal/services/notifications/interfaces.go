package notifications

import (
	"context"

	"github.com/gracefm/radio-api/internal/models"
)

// Notifier delivers transactional notifications to users.
// Implementations must not block the caller on delivery.
type Notifier interface {
	Notify(ctx context.Context, user *models.User, kind, subject, body string) error
}

// Repository persists a record of every notification sent
type Repository interface {
	Record(ctx context.Context, notification *models.Notification) error
	ListByUser(ctx context.Context, userID uint, limit int) ([]models.Notification, error)
}
