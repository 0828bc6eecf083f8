package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/gracefm/radio-api/api/middleware"
	"github.com/gracefm/radio-api/api/types"
)

// RegisterRoutes registers authentication routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	router.POST("/register", Register(deps))
	router.POST("/login", Login(deps))

	authed := router.Group("")
	authed.Use(middleware.RequireAuth(deps.AuthService, deps.UserService))
	authed.POST("/logout", Logout(deps))
	authed.GET("/me", Me(deps))
	authed.PUT("/me", UpdateProfile(deps))
	authed.PUT("/password", ChangePassword(deps))
}
