package models

// EntityKind discriminates the polymorphic targets that comments, favourites
// and metrics may attach to. The set is closed: anything else is rejected
// before it reaches storage.
type EntityKind string

const (
	KindMessage EntityKind = "message"
	KindPodcast EntityKind = "podcast"
	KindStream  EntityKind = "stream"
)

// ParseEntityKind maps a wire discriminator onto the closed kind set
func ParseEntityKind(s string) (EntityKind, bool) {
	switch EntityKind(s) {
	case KindMessage, KindPodcast, KindStream:
		return EntityKind(s), true
	}
	return "", false
}

// CommentableKinds is the set of kinds a comment may attach to
var CommentableKinds = map[EntityKind]bool{
	KindMessage: true,
	KindPodcast: true,
	KindStream:  true,
}

// FavouritableKinds is the set of kinds a favourite may attach to
var FavouritableKinds = map[EntityKind]bool{
	KindMessage: true,
	KindPodcast: true,
}

// MetricEntityKinds is the set of kinds a metric may reference
var MetricEntityKinds = map[EntityKind]bool{
	KindMessage: true,
	KindPodcast: true,
	KindStream:  true,
}
