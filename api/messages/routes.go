package messages

import (
	"github.com/gin-gonic/gin"

	"github.com/gracefm/radio-api/api/middleware"
	"github.com/gracefm/radio-api/api/types"
)

// RegisterRoutes registers public message routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("", List(deps))
	router.GET("/:id", Get(deps))
	router.GET("/:id/download", Download(deps))

	// Listens are attributed to the user when a token is present.
	listen := router.Group("")
	listen.Use(middleware.OptionalAuth(deps.AuthService, deps.UserService))
	listen.POST("/:id/listen", Listen(deps))
}

// RegisterAdminRoutes registers message management routes
func RegisterAdminRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("", AdminList(deps))
	router.POST("", Create(deps))
	router.PUT("/:id", Update(deps))
	router.DELETE("/:id", Delete(deps))
}
