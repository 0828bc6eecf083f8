package podcasts

import (
	"github.com/gin-gonic/gin"

	"github.com/gracefm/radio-api/api/middleware"
	"github.com/gracefm/radio-api/api/types"
)

// RegisterRoutes registers public and owner podcast routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("", List(deps))

	// Reads resolve the viewer when a token is present so owners can see
	// their unpublished podcasts.
	reads := router.Group("")
	reads.Use(middleware.OptionalAuth(deps.AuthService, deps.UserService))
	reads.GET("/:id", Get(deps))
	reads.GET("/:id/download", Download(deps))
	reads.POST("/:id/listen", Listen(deps))

	authed := router.Group("")
	authed.Use(middleware.RequireAuth(deps.AuthService, deps.UserService))
	authed.POST("", Create(deps))
	authed.PUT("/:id", Update(deps))
	authed.DELETE("/:id", Delete(deps))
	authed.POST("/:id/resubmit", Resubmit(deps))
}

// RegisterAdminRoutes registers podcast moderation routes
func RegisterAdminRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("/pending", ListPending(deps))
	router.POST("/:id/approve", Approve(deps))
	router.POST("/:id/reject", Reject(deps))
	router.GET("/deletion-requests", ListDeletionRequests(deps))
	router.POST("/deletion-requests/:id/approve", ApproveDeletion(deps))
	router.POST("/deletion-requests/:id/reject", RejectDeletion(deps))
}
