package comments

import (
	"github.com/gin-gonic/gin"

	"github.com/gracefm/radio-api/api/types"
	"github.com/gracefm/radio-api/internal/models"
	"github.com/gracefm/radio-api/internal/services/comments"
	apperrors "github.com/gracefm/radio-api/pkg/errors"
)

// ListFor returns approved comments on an entity of the given kind,
// newest first. Mounted under each commentable resource.
// @Summary      List comments on an entity
// @Tags         comments
// @Produce      json
// @Param        id path int true "Entity ID"
// @Param        page query int false "Page number"
// @Success      200 {object} types.DataResponse
// @Failure      404 {object} types.ErrorResponse
// @Router       /api/v1/messages/{id}/comments [get]
func ListFor(deps *types.Dependencies, kind models.EntityKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		page, perPage := types.ParsePagination(c, deps.Config.Pagination.CommentsPerPage, deps.Config.Pagination.MaxPerPage)
		items, total, err := deps.CommentService.ListForTarget(c.Request.Context(), kind, id, comments.ListFilter{Page: page, PerPage: perPage})
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendPage(c, items, page, perPage, total)
	}
}

// Create files a comment. New comments await moderation before they show.
// @Summary      Comment on an entity
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body types.CreateCommentRequest true "Comment"
// @Success      201 {object} types.DataResponse
// @Failure      404 {object} types.ErrorResponse "Target not found"
// @Router       /api/v1/comments [post]
func Create(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.CreateCommentRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		kind, ok := models.ParseEntityKind(req.CommentableType)
		if !ok {
			types.SendError(c, apperrors.ValidationError("commentable_type", "unknown entity type"))
			return
		}

		user := types.CurrentUser(c)
		meta := types.GetClientMeta(c)
		comment, err := deps.CommentService.Create(c.Request.Context(), user.ID, comments.CommentInput{
			Target:    kind,
			TargetID:  req.CommentableID,
			Body:      req.Body,
			IPAddress: meta.IPAddress,
			UserAgent: meta.UserAgent,
			Country:   meta.Country,
			City:      meta.City,
		})
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendCreated(c, comment)
	}
}

// Update edits an own comment while it is still awaiting moderation
// @Summary      Edit own comment
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Comment ID"
// @Success      200 {object} types.DataResponse
// @Router       /api/v1/comments/{id} [put]
func Update(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		var req types.CommentRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		user := types.CurrentUser(c)
		comment, err := deps.CommentService.Update(c.Request.Context(), id, user.ID, req.Body)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendData(c, comment)
	}
}

// Delete removes the author's own comment
// @Summary      Delete a comment
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Comment ID"
// @Success      200 {object} types.DataResponse
// @Router       /api/v1/comments/{id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		if err := deps.CommentService.Delete(c.Request.Context(), id, types.CurrentUser(c)); err != nil {
			types.SendError(c, err)
			return
		}
		types.SendData(c, gin.H{"message": "comment deleted"})
	}
}

// ListMine returns the authenticated user's comments in every state
// @Summary      List own comments
// @Tags         comments
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} types.DataResponse
// @Router       /api/v1/my/comments [get]
func ListMine(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := types.CurrentUser(c)
		page, perPage := types.ParsePagination(c, deps.Config.Pagination.CommentsPerPage, deps.Config.Pagination.MaxPerPage)

		items, total, err := deps.CommentService.ListMine(c.Request.Context(), user.ID, comments.ListFilter{Page: page, PerPage: perPage})
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendPage(c, items, page, perPage, total)
	}
}

// ListPending returns comments awaiting moderation
func ListPending(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, perPage := types.ParsePagination(c, deps.Config.Pagination.CommentsPerPage, deps.Config.Pagination.MaxPerPage)

		items, total, err := deps.CommentService.ListPending(c.Request.Context(), comments.ListFilter{Page: page, PerPage: perPage})
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendPage(c, items, page, perPage, total)
	}
}

// Approve clears a comment for public display
func Approve(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		comment, err := deps.CommentService.Approve(c.Request.Context(), id)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendData(c, comment)
	}
}

// Reject hides a comment
func Reject(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		comment, err := deps.CommentService.Reject(c.Request.Context(), id)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendData(c, comment)
	}
}
