package stream

import (
	"github.com/gin-gonic/gin"

	"github.com/gracefm/radio-api/api/types"
)

// RegisterRoutes registers the public stream route
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("", Active(deps))
}

// RegisterAdminRoutes registers the stream link management routes
func RegisterAdminRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("", List(deps))
	router.POST("", Create(deps))
	router.PUT("/:id", Update(deps))
	router.POST("/:id/activate", Activate(deps))
	router.POST("/:id/deactivate", Deactivate(deps))
	router.DELETE("/:id", Delete(deps))
}
