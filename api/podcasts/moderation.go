package podcasts

import (
	"github.com/gin-gonic/gin"

	"github.com/gracefm/radio-api/api/types"
	"github.com/gracefm/radio-api/internal/models"
)

// Moderation handlers, mounted under the admin route group.

// ListPending returns podcasts awaiting review
func ListPending(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := buildFilter(c, deps)
		items, total, err := deps.PodcastService.ListPending(c.Request.Context(), filter)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendPage(c, items, filter.Page, filter.PerPage, total)
	}
}

// Approve publishes a pending podcast
func Approve(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		var req types.ReviewRequest
		_ = c.ShouldBindJSON(&req)

		podcast, err := deps.PodcastService.Approve(c.Request.Context(), id, req.AdminNote)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendData(c, podcast)
	}
}

// Reject declines a pending podcast
func Reject(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		var req types.ReviewRequest
		_ = c.ShouldBindJSON(&req)

		podcast, err := deps.PodcastService.Reject(c.Request.Context(), id, req.AdminNote)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendData(c, podcast)
	}
}

// ListDeletionRequests returns deletion requests, pending ones by default
func ListDeletionRequests(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := c.DefaultQuery("status", models.RequestStatusPending)
		requests, err := deps.PodcastService.ListDeletionRequests(c.Request.Context(), status)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendData(c, requests)
	}
}

// ApproveDeletion grants a deletion request and destroys the podcast
func ApproveDeletion(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		var req types.ReviewRequest
		_ = c.ShouldBindJSON(&req)

		if err := deps.PodcastService.ApproveDeletion(c.Request.Context(), id, req.AdminNote); err != nil {
			types.SendError(c, err)
			return
		}
		types.SendData(c, gin.H{"message": "podcast deleted"})
	}
}

// RejectDeletion declines a deletion request and restores the podcast
func RejectDeletion(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		var req types.ReviewRequest
		_ = c.ShouldBindJSON(&req)

		podcast, err := deps.PodcastService.RejectDeletion(c.Request.Context(), id, req.AdminNote)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendData(c, podcast)
	}
}
