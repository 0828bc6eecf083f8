package users

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/gracefm/radio-api/internal/models"
	"github.com/gracefm/radio-api/internal/services/auth"
	apperrors "github.com/gracefm/radio-api/pkg/errors"
)

type service struct {
	repo Repository
	auth *auth.Service
}

// NewService creates the user service
func NewService(repo Repository, authSvc *auth.Service) Service {
	return &service{repo: repo, auth: authSvc}
}

func (s *service) Register(ctx context.Context, name, email, password string) (*models.User, error) {
	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))

	if name == "" {
		return nil, apperrors.MissingFieldError("name")
	}
	if email == "" {
		return nil, apperrors.MissingFieldError("email")
	}
	if len(password) < 8 {
		return nil, apperrors.ValidationError("password", "must be at least 8 characters")
	}

	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, apperrors.Conflict("email already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.DatabaseError("checking email", err)
	}

	hash, err := s.auth.HashPassword(password)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeInternal, "hashing password")
	}

	user := &models.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleUser,
		IsActive:     true,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, apperrors.DatabaseError("creating user", err)
	}
	return user, nil
}

func (s *service) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Unauthorized("invalid email or password")
		}
		return nil, apperrors.DatabaseError("fetching user", err)
	}
	if !user.IsActive {
		return nil, apperrors.Forbidden("account is deactivated")
	}
	if err := s.auth.CheckPassword(user.PasswordHash, password); err != nil {
		return nil, apperrors.Unauthorized("invalid email or password")
	}
	return user, nil
}

func (s *service) Get(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound("user")
		}
		return nil, apperrors.DatabaseError("fetching user", err)
	}
	return user, nil
}

func (s *service) UpdateProfile(ctx context.Context, id uint, name, avatarPath string) (*models.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if name = strings.TrimSpace(name); name != "" {
		user.Name = name
	}
	if avatarPath != "" {
		user.AvatarPath = avatarPath
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, apperrors.DatabaseError("updating user", err)
	}
	return user, nil
}

func (s *service) ChangePassword(ctx context.Context, id uint, current, updated string) error {
	user, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.auth.CheckPassword(user.PasswordHash, current); err != nil {
		return apperrors.Unauthorized("current password is incorrect")
	}
	if len(updated) < 8 {
		return apperrors.ValidationError("password", "must be at least 8 characters")
	}

	hash, err := s.auth.HashPassword(updated)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeInternal, "hashing password")
	}
	user.PasswordHash = hash
	if err := s.repo.Update(ctx, user); err != nil {
		return apperrors.DatabaseError("updating user", err)
	}
	return nil
}

func (s *service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *service) Recent(ctx context.Context, limit int) ([]models.User, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	return s.repo.Recent(ctx, limit)
}
