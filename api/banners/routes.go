package banners

import (
	"github.com/gin-gonic/gin"

	"github.com/gracefm/radio-api/api/types"
)

// RegisterRoutes registers the public banner route
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("", Active(deps))
}

// RegisterAdminRoutes registers the banner management routes
func RegisterAdminRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("", ListAll(deps))
	router.POST("", Create(deps))
	router.PUT("/:id", Update(deps))
	router.DELETE("/:id", Delete(deps))
}
