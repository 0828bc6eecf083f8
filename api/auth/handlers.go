package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/gracefm/radio-api/api/types"
	"github.com/gracefm/radio-api/internal/models"
	"github.com/gracefm/radio-api/internal/services/media"
)

type tokenResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Register creates a new account and returns an access token
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body types.RegisterRequest true "Account details"
// @Success      201 {object} types.DataResponse
// @Failure      409 {object} types.ErrorResponse "Email already registered"
// @Failure      422 {object} types.ErrorResponse "Validation failure"
// @Router       /api/v1/auth/register [post]
func Register(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.RegisterRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		user, err := deps.UserService.Register(c.Request.Context(), req.Name, req.Email, req.Password)
		if err != nil {
			types.SendError(c, err)
			return
		}

		token, err := deps.AuthService.IssueToken(user)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendCreated(c, tokenResponse{Token: token, User: user})
	}
}

// Login exchanges credentials for an access token
// @Summary      Log in
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body types.LoginRequest true "Credentials"
// @Success      200 {object} types.DataResponse
// @Failure      401 {object} types.ErrorResponse "Invalid credentials"
// @Router       /api/v1/auth/login [post]
func Login(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.LoginRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		user, err := deps.UserService.Authenticate(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			types.SendError(c, err)
			return
		}

		token, err := deps.AuthService.IssueToken(user)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendData(c, tokenResponse{Token: token, User: user})
	}
}

// Logout acknowledges a logout. Tokens are stateless so the client just
// discards its copy; the endpoint exists so apps have a uniform call.
// @Summary      Log out
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} types.DataResponse
// @Router       /api/v1/auth/logout [post]
func Logout(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		types.SendData(c, gin.H{"message": "logged out"})
	}
}

// Me returns the authenticated user's profile
// @Summary      Get own profile
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} types.DataResponse
// @Router       /api/v1/auth/me [get]
func Me(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		types.SendData(c, types.CurrentUser(c))
	}
}

// UpdateProfile edits the authenticated user's profile. Accepts multipart
// form data so an avatar image can ride along.
// @Summary      Update own profile
// @Tags         auth
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} types.DataResponse
// @Router       /api/v1/auth/me [put]
func UpdateProfile(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := types.CurrentUser(c)

		avatarPath := ""
		if file, err := c.FormFile("avatar"); err == nil {
			stored, err := deps.Storage.Store(c.Request.Context(), media.CollectionAvatar, file)
			if err != nil {
				types.SendError(c, err)
				return
			}
			avatarPath = stored
		}

		updated, err := deps.UserService.UpdateProfile(c.Request.Context(), user.ID, c.PostForm("name"), avatarPath)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendData(c, updated)
	}
}

// ChangePassword rotates the authenticated user's password
// @Summary      Change password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} types.DataResponse
// @Failure      401 {object} types.ErrorResponse "Current password incorrect"
// @Router       /api/v1/auth/password [put]
func ChangePassword(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.ChangePasswordRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		user := types.CurrentUser(c)
		if err := deps.UserService.ChangePassword(c.Request.Context(), user.ID, req.CurrentPassword, req.NewPassword); err != nil {
			types.SendError(c, err)
			return
		}
		types.SendData(c, gin.H{"message": "password updated"})
	}
}
