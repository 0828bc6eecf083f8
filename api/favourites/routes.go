package favourites

import (
	"github.com/gin-gonic/gin"

	"github.com/gracefm/radio-api/api/middleware"
	"github.com/gracefm/radio-api/api/types"
)

// RegisterRoutes registers favourite routes, all authenticated
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.Use(middleware.RequireAuth(deps.AuthService, deps.UserService))
	router.GET("", List(deps))
	router.POST("", Create(deps))
	router.DELETE("/:id", Delete(deps))
}
