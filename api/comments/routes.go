package comments

import (
	"github.com/gin-gonic/gin"

	"github.com/gracefm/radio-api/api/middleware"
	"github.com/gracefm/radio-api/api/types"
)

// RegisterRoutes registers author comment routes. Public listings are
// mounted per commentable resource via ListFor.
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	authed := router.Group("")
	authed.Use(middleware.RequireAuth(deps.AuthService, deps.UserService))
	authed.POST("", Create(deps))
	authed.PUT("/:id", Update(deps))
	authed.DELETE("/:id", Delete(deps))
}

// RegisterAdminRoutes registers comment moderation routes
func RegisterAdminRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("/pending", ListPending(deps))
	router.POST("/:id/approve", Approve(deps))
	router.POST("/:id/reject", Reject(deps))
}
