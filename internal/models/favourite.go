package models

import (
	"gorm.io/gorm"
)

// Favourite marks a (user, target) pair. The composite unique index is the
// authority on uniqueness: concurrent duplicate adds lose at the database
// rather than racing a pre-check.
type Favourite struct {
	gorm.Model
	UserID           uint       `json:"user_id" gorm:"not null;uniqueIndex:idx_favourites_user_target"`
	FavouritableType EntityKind `json:"favouritable_type" gorm:"not null;size:20;uniqueIndex:idx_favourites_user_target"`
	FavouritableID   uint       `json:"favouritable_id" gorm:"not null;uniqueIndex:idx_favourites_user_target"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

// TableName returns the table name for the Favourite model
func (Favourite) TableName() string {
	return "favourites"
}
