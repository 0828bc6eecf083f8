package types

import (
	"github.com/gracefm/radio-api/internal/database"
	"github.com/gracefm/radio-api/internal/services/auth"
	"github.com/gracefm/radio-api/internal/services/banners"
	"github.com/gracefm/radio-api/internal/services/categories"
	"github.com/gracefm/radio-api/internal/services/comments"
	"github.com/gracefm/radio-api/internal/services/favourites"
	"github.com/gracefm/radio-api/internal/services/media"
	"github.com/gracefm/radio-api/internal/services/messages"
	"github.com/gracefm/radio-api/internal/services/metrics"
	"github.com/gracefm/radio-api/internal/services/notifications"
	"github.com/gracefm/radio-api/internal/services/podcasts"
	"github.com/gracefm/radio-api/internal/services/quicklinks"
	"github.com/gracefm/radio-api/internal/services/requests"
	"github.com/gracefm/radio-api/internal/services/streams"
	"github.com/gracefm/radio-api/internal/services/users"
	"github.com/gracefm/radio-api/pkg/config"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB     *database.DB
	Config *config.Config

	AuthService       *auth.Service
	UserService       users.Service
	MessageService    messages.Service
	CategoryService   categories.Service
	PodcastService    podcasts.Service
	RequestService    requests.Service
	CommentService    comments.Service
	FavouriteService  favourites.Service
	MetricService     metrics.Service
	StreamService     streams.Service
	BannerService     banners.Service
	QuickLinkService  quicklinks.Service
	Storage           media.Storage
	Notifier          notifications.Notifier
}
