package requests

import (
	"github.com/gin-gonic/gin"

	"github.com/gracefm/radio-api/api/types"
)

// ListMine returns the authenticated user's upload privilege applications
// @Summary      List own upload requests
// @Tags         podcast-requests
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} types.DataResponse
// @Router       /api/v1/my/podcast-requests [get]
func ListMine(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := types.CurrentUser(c)
		requests, err := deps.RequestService.MyRequests(c.Request.Context(), user.ID)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendData(c, requests)
	}
}

// Create applies for podcast upload privileges
// @Summary      Request podcast upload access
// @Tags         podcast-requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body types.PodcastRequestBody true "Application"
// @Success      201 {object} types.DataResponse
// @Failure      409 {object} types.ErrorResponse "Already granted or pending"
// @Router       /api/v1/podcast-requests [post]
func Create(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.PodcastRequestBody
		if !types.BindJSONOrError(c, &req) {
			return
		}

		user := types.CurrentUser(c)
		request, err := deps.RequestService.Create(c.Request.Context(), user.ID, req.Reason, req.NoteToAdmin)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendCreated(c, request)
	}
}

// AdminList returns upload requests filtered by status
func AdminList(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		requests, err := deps.RequestService.List(c.Request.Context(), c.Query("status"))
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendData(c, requests)
	}
}

// Approve grants the upload privilege
func Approve(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		var req types.ReviewRequest
		_ = c.ShouldBindJSON(&req)

		request, err := deps.RequestService.Approve(c.Request.Context(), id, req.AdminNote)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendData(c, request)
	}
}

// Reject declines an upload request
func Reject(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		var req types.ReviewRequest
		_ = c.ShouldBindJSON(&req)

		request, err := deps.RequestService.Reject(c.Request.Context(), id, req.AdminNote)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendData(c, request)
	}
}
