package users

import (
	"context"

	"github.com/gracefm/radio-api/internal/models"
)

// Repository defines data access for users
type Repository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	Count(ctx context.Context) (int64, error)
	Recent(ctx context.Context, limit int) ([]models.User, error)
}

// Service defines business operations on user accounts
type Service interface {
	Register(ctx context.Context, name, email, password string) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.User, error)
	Get(ctx context.Context, id uint) (*models.User, error)
	UpdateProfile(ctx context.Context, id uint, name, avatarPath string) (*models.User, error)
	ChangePassword(ctx context.Context, id uint, current, updated string) error
	Count(ctx context.Context) (int64, error)
	Recent(ctx context.Context, limit int) ([]models.User, error)
}
