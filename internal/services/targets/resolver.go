// Package targets resolves polymorphic references to the entities that
// comments, favourites and metrics can point at. Each association carries
// its own whitelist of entity kinds; anything outside the whitelist, and
// anything the public cannot currently see, resolves as inaccessible.
package targets

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/gracefm/radio-api/internal/models"
)

// Resolved describes a successfully located target entity
type Resolved struct {
	Kind       models.EntityKind
	ID         uint
	Title      string
	OwnerID    uint
	Accessible bool
}

// Resolver looks up polymorphic targets
type Resolver interface {
	Resolve(ctx context.Context, kind models.EntityKind, id uint) (*Resolved, error)
}

type resolver struct {
	db *gorm.DB
}

// NewResolver creates a database-backed target resolver
func NewResolver(db *gorm.DB) Resolver {
	return &resolver{db: db}
}

// Resolve fetches the target entity. A missing record returns
// gorm.ErrRecordNotFound so callers can map it to their own not-found
// handling. Accessibility is evaluated against public visibility rules.
func (r *resolver) Resolve(ctx context.Context, kind models.EntityKind, id uint) (*Resolved, error) {
	switch kind {
	case models.KindMessage:
		var msg models.Message
		if err := r.db.WithContext(ctx).First(&msg, id).Error; err != nil {
			return nil, wrapLookup(err, kind, id)
		}
		return &Resolved{Kind: kind, ID: msg.ID, Title: msg.Title, Accessible: msg.IsVisible()}, nil

	case models.KindPodcast:
		var podcast models.Podcast
		if err := r.db.WithContext(ctx).First(&podcast, id).Error; err != nil {
			return nil, wrapLookup(err, kind, id)
		}
		return &Resolved{
			Kind:       kind,
			ID:         podcast.ID,
			Title:      podcast.Title,
			OwnerID:    podcast.UserID,
			Accessible: podcast.IsVisible(),
		}, nil

	case models.KindStream:
		var stream models.StreamLink
		if err := r.db.WithContext(ctx).First(&stream, id).Error; err != nil {
			return nil, wrapLookup(err, kind, id)
		}
		return &Resolved{Kind: kind, ID: stream.ID, Title: stream.Name, Accessible: stream.IsActive}, nil

	default:
		return nil, fmt.Errorf("unknown entity kind %q", kind)
	}
}

func wrapLookup(err error, kind models.EntityKind, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return fmt.Errorf("resolving %s %d: %w", kind, id, err)
}
