// Package models defines the persistent entities of the radio platform.
package models

// All returns every model registered for migration, in dependency order
func All() []any {
	return []any{
		&User{},
		&Category{},
		&Message{},
		&Podcast{},
		&PodcastRequest{},
		&PodcastDeletionRequest{},
		&Comment{},
		&Favourite{},
		&Metric{},
		&StreamLink{},
		&BannerAd{},
		&QuickLink{},
		&Notification{},
	}
}
