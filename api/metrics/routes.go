package metrics

import (
	"github.com/gin-gonic/gin"

	"github.com/gracefm/radio-api/api/middleware"
	"github.com/gracefm/radio-api/api/types"
)

// RegisterRoutes registers the public event tracking route
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.Use(middleware.OptionalAuth(deps.AuthService, deps.UserService))
	router.POST("", Track(deps))
}

// RegisterAdminRoutes registers the analytics routes
func RegisterAdminRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("/analytics", Analytics(deps))
	router.GET("/dashboard", Dashboard(deps))
}
