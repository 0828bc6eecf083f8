package requests

import (
	"github.com/gin-gonic/gin"

	"github.com/gracefm/radio-api/api/middleware"
	"github.com/gracefm/radio-api/api/types"
)

// RegisterRoutes registers upload request routes for applicants
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.Use(middleware.RequireAuth(deps.AuthService, deps.UserService))
	router.POST("", Create(deps))
}

// RegisterAdminRoutes registers upload request review routes
func RegisterAdminRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.GET("", AdminList(deps))
	router.POST("/:id/approve", Approve(deps))
	router.POST("/:id/reject", Reject(deps))
}
