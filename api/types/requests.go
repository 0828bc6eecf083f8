package types

import "time"

// Request DTOs shared across handler packages

// RegisterRequest creates a new account
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginRequest exchanges credentials for a token
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ChangePasswordRequest rotates the account password
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

// UpdateProfileRequest edits profile fields
type UpdateProfileRequest struct {
	Name string `json:"name"`
}

// CommentRequest files or edits a comment
type CommentRequest struct {
	Body string `json:"body" binding:"required"`
}

// CreateCommentRequest files a comment against a target entity
type CreateCommentRequest struct {
	CommentableType string `json:"commentable_type" binding:"required"`
	CommentableID   uint   `json:"commentable_id" binding:"required"`
	Body            string `json:"body" binding:"required"`
}

// FavouriteRequest marks a target entity as favourite
type FavouriteRequest struct {
	FavouritableType string `json:"favouritable_type" binding:"required"`
	FavouritableID   uint   `json:"favouritable_id" binding:"required"`
}

// TrackMetricRequest records a usage event
type TrackMetricRequest struct {
	Type       string                 `json:"type" binding:"required"`
	EntityType string                 `json:"entity_type"`
	EntityID   uint                   `json:"entity_id"`
	Country    string                 `json:"country"`
	City       string                 `json:"city"`
	Metadata   map[string]interface{} `json:"metadata"`
}

// PodcastRequestBody applies for podcast upload privileges
type PodcastRequestBody struct {
	Reason      string `json:"reason" binding:"required"`
	NoteToAdmin string `json:"note_to_admin"`
}

// ReviewRequest carries the optional note an admin attaches to a decision
type ReviewRequest struct {
	AdminNote string `json:"admin_note"`
}

// DeletePodcastRequest carries the optional reason for a deletion request
type DeletePodcastRequest struct {
	Reason string `json:"reason"`
}

// StreamLinkRequest creates or edits a stream link
type StreamLinkRequest struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// CategoryRequest creates or edits a category
type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// BannerRequest creates or edits a banner ad
type BannerRequest struct {
	Title       string     `json:"title"`
	URL         string     `json:"url"`
	Description string     `json:"description"`
	IsActive    *bool      `json:"is_active"`
	StartsAt    *time.Time `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at"`
	Order       *int       `json:"order"`
}

// QuickLinkRequest creates or edits a quick link
type QuickLinkRequest struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Icon     string `json:"icon"`
	IsActive *bool  `json:"is_active"`
	Priority *int   `json:"priority"`
}
