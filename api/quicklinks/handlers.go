package quicklinks

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gracefm/radio-api/api/types"
	"github.com/gracefm/radio-api/internal/services/media"
	"github.com/gracefm/radio-api/internal/services/quicklinks"
	apperrors "github.com/gracefm/radio-api/pkg/errors"
)

// Active returns the quick links shown on the landing screen
// @Summary      List active quick links
// @Tags         quicklinks
// @Produce      json
// @Success      200 {object} types.DataResponse
// @Router       /api/v1/quicklinks [get]
func Active(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		links, err := deps.QuickLinkService.Active(c.Request.Context())
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendData(c, links)
	}
}

// ListAll returns every quick link regardless of state
func ListAll(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		links, err := deps.QuickLinkService.ListAll(c.Request.Context())
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendData(c, links)
	}
}

// Create stores a new quick link. Multipart form with an optional image.
func Create(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		input, err := bindQuickLinkForm(c, deps)
		if err != nil {
			types.SendError(c, err)
			return
		}
		link, err := deps.QuickLinkService.Create(c.Request.Context(), input)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendCreated(c, link)
	}
}

// Update edits a quick link
func Update(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		input, err := bindQuickLinkForm(c, deps)
		if err != nil {
			types.SendError(c, err)
			return
		}
		link, err := deps.QuickLinkService.Update(c.Request.Context(), id, input)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendData(c, link)
	}
}

// Delete removes a quick link
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		if err := deps.QuickLinkService.Delete(c.Request.Context(), id); err != nil {
			types.SendError(c, err)
			return
		}
		types.SendData(c, gin.H{"message": "quick link deleted"})
	}
}

func bindQuickLinkForm(c *gin.Context, deps *types.Dependencies) (quicklinks.QuickLinkInput, error) {
	input := quicklinks.QuickLinkInput{
		Title: c.PostForm("title"),
		URL:   c.PostForm("url"),
		Icon:  c.PostForm("icon"),
	}
	if raw, present := c.GetPostForm("is_active"); present {
		active := raw == "true" || raw == "1"
		input.IsActive = &active
	}
	if raw, present := c.GetPostForm("priority"); present {
		priority, err := strconv.Atoi(raw)
		if err != nil {
			return input, apperrors.ValidationError("priority", "must be an integer")
		}
		input.Priority = &priority
	}
	if file, err := c.FormFile("image"); err == nil {
		path, err := deps.Storage.Store(c.Request.Context(), media.CollectionImage, file)
		if err != nil {
			return input, err
		}
		input.ImagePath = path
	}
	return input, nil
}
