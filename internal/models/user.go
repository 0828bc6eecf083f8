package models

import (
	"time"

	"gorm.io/gorm"
)

// Role constants for User.Role
const (
	RoleAdmin     = "admin"
	RoleManager   = "manager"
	RoleModerator = "moderator"
	RoleUser      = "user"
)

// User represents a registered listener or staff member
type User struct {
	gorm.Model
	Name         string     `json:"name" gorm:"not null;size:150"`
	Email        string     `json:"email" gorm:"uniqueIndex;not null;size:150"`
	PasswordHash string     `json:"-" gorm:"not null"`
	Role         string     `json:"role" gorm:"not null;default:user;size:20;index"`
	GoogleID     *string    `json:"-" gorm:"size:100"`
	IsActive     bool       `json:"is_active"`
	AvatarPath   string     `json:"-" gorm:"size:500"`
	VerifiedAt   *time.Time `json:"verified_at,omitempty"`

	Podcasts   []Podcast   `json:"podcasts,omitempty" gorm:"foreignKey:UserID"`
	Comments   []Comment   `json:"comments,omitempty" gorm:"foreignKey:UserID"`
	Favourites []Favourite `json:"favourites,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsManager reports whether the user holds the manager role
func (u *User) IsManager() bool {
	return u.Role == RoleManager
}

// IsModerator reports whether the user holds the moderator role
func (u *User) IsModerator() bool {
	return u.Role == RoleModerator
}

// HasRole reports whether the user holds any of the given roles
func (u *User) HasRole(roles ...string) bool {
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}

// UserSummary is the trimmed author shape embedded in listings
type UserSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// Summary returns the embeddable author shape
func (u *User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name}
}
