package categories

import (
	"github.com/gin-gonic/gin"

	"github.com/gracefm/radio-api/api/types"
)

// RegisterRoutes registers the public category routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("", List(deps))
	router.GET("/:slug", GetBySlug(deps))
}

// RegisterAdminRoutes registers the category management routes
func RegisterAdminRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("", Create(deps))
	router.PUT("/:id", Update(deps))
	router.DELETE("/:id", Delete(deps))
}
