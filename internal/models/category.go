package models

import (
	"github.com/gosimple/slug"
	"gorm.io/gorm"
)

// Category groups messages (sermon series, themes)
type Category struct {
	gorm.Model
	Name        string `json:"name" gorm:"not null;size:150"`
	Slug        string `json:"slug" gorm:"index;size:170"`
	Description string `json:"description" gorm:"type:text"`
	ImagePath   string `json:"-" gorm:"size:500"`

	Messages []Message `json:"messages,omitempty" gorm:"foreignKey:CategoryID"`
}

// TableName returns the table name for the Category model
func (Category) TableName() string {
	return "categories"
}

// BeforeCreate derives the slug from the name when absent
func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.Slug == "" {
		c.Slug = slug.Make(c.Name)
	}
	return nil
}

// BeforeUpdate keeps the slug populated if it was cleared
func (c *Category) BeforeUpdate(tx *gorm.DB) error {
	if c.Slug == "" {
		c.Slug = slug.Make(c.Name)
	}
	return nil
}
