package api

import (
	"fmt"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gracefm/radio-api/api/auth"
	"github.com/gracefm/radio-api/api/banners"
	"github.com/gracefm/radio-api/api/categories"
	"github.com/gracefm/radio-api/api/comments"
	"github.com/gracefm/radio-api/api/favourites"
	"github.com/gracefm/radio-api/api/health"
	"github.com/gracefm/radio-api/api/messages"
	"github.com/gracefm/radio-api/api/metrics"
	"github.com/gracefm/radio-api/api/middleware"
	"github.com/gracefm/radio-api/api/podcasts"
	"github.com/gracefm/radio-api/api/quicklinks"
	"github.com/gracefm/radio-api/api/requests"
	"github.com/gracefm/radio-api/api/stream"
	"github.com/gracefm/radio-api/api/types"
	_ "github.com/gracefm/radio-api/docs/swagger"
	"github.com/gracefm/radio-api/internal/models"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	if deps == nil || deps.Config == nil {
		return fmt.Errorf("handler dependencies are not configured")
	}

	// Public routes, no rate limiting
	health.RegisterRoutes(engine, deps)

	// Swagger documentation
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(301, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	engine.NoRoute(NotFoundHandler())

	v1 := engine.Group("/api/v1")

	cfg := deps.Config
	if cfg.RateLimiting.Enabled {
		rps := cfg.RateLimiting.RPS
		if rps <= 0 {
			rps = 10
		}
		burst := cfg.RateLimiting.Burst
		if burst <= 0 {
			burst = 20
		}
		v1.Use(PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, rps, burst))
	}

	auth.RegisterRoutes(v1.Group("/auth"), deps)

	messageGroup := v1.Group("/messages")
	messages.RegisterRoutes(messageGroup, deps)
	messageGroup.GET("/:id/comments", comments.ListFor(deps, models.KindMessage))

	podcastGroup := v1.Group("/podcasts")
	podcasts.RegisterRoutes(podcastGroup, deps)
	podcastGroup.GET("/:id/comments", comments.ListFor(deps, models.KindPodcast))

	categories.RegisterRoutes(v1.Group("/categories"), deps)
	comments.RegisterRoutes(v1.Group("/comments"), deps)
	favourites.RegisterRoutes(v1.Group("/favourites"), deps)
	requests.RegisterRoutes(v1.Group("/podcast-requests"), deps)

	streamGroup := v1.Group("/stream")
	stream.RegisterRoutes(streamGroup, deps)
	streamGroup.GET("/:id/comments", comments.ListFor(deps, models.KindStream))

	banners.RegisterRoutes(v1.Group("/banners"), deps)
	quicklinks.RegisterRoutes(v1.Group("/quicklinks"), deps)
	metrics.RegisterRoutes(v1.Group("/metrics"), deps)

	// Caller-scoped listings
	my := v1.Group("/my")
	my.Use(middleware.RequireAuth(deps.AuthService, deps.UserService))
	my.GET("/podcasts", podcasts.ListMine(deps))
	my.GET("/comments", comments.ListMine(deps))
	my.GET("/favourites", favourites.List(deps))
	my.GET("/podcast-requests", requests.ListMine(deps))
	my.GET("/analytics", metrics.MyAnalytics(deps))

	// Moderation and administration
	admin := v1.Group("/admin")
	admin.Use(middleware.RequireAuth(deps.AuthService, deps.UserService))
	admin.Use(middleware.RequireRoles(models.RoleAdmin, models.RoleManager, models.RoleModerator))

	messages.RegisterAdminRoutes(admin.Group("/messages"), deps)
	podcasts.RegisterAdminRoutes(admin.Group("/podcasts"), deps)
	categories.RegisterAdminRoutes(admin.Group("/categories"), deps)
	comments.RegisterAdminRoutes(admin.Group("/comments"), deps)
	requests.RegisterAdminRoutes(admin.Group("/podcast-requests"), deps)
	stream.RegisterAdminRoutes(admin.Group("/stream"), deps)
	banners.RegisterAdminRoutes(admin.Group("/banners"), deps)
	quicklinks.RegisterAdminRoutes(admin.Group("/quicklinks"), deps)
	metrics.RegisterAdminRoutes(admin, deps)

	return nil
}
