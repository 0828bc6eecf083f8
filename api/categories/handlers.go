package categories

import (
	"github.com/gin-gonic/gin"

	"github.com/gracefm/radio-api/api/types"
	"github.com/gracefm/radio-api/internal/services/media"
)

// List returns all categories with their published message counts
// @Summary      List categories
// @Tags         categories
// @Produce      json
// @Success      200 {object} types.DataResponse
// @Router       /api/v1/categories [get]
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := deps.CategoryService.List(c.Request.Context())
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendData(c, categories)
	}
}

// GetBySlug returns a category with its most recent published messages
// @Summary      Get a category
// @Tags         categories
// @Produce      json
// @Param        slug path string true "Category slug"
// @Success      200 {object} types.DataResponse
// @Failure      404 {object} types.ErrorResponse
// @Router       /api/v1/categories/{slug} [get]
func GetBySlug(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		category, recent, err := deps.CategoryService.GetBySlug(c.Request.Context(), c.Param("slug"))
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendData(c, gin.H{
			"category":        category,
			"recent_messages": recent,
		})
	}
}

// Create stores a new category. Multipart form: name, description, image.
func Create(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		imagePath, err := storeImage(c, deps)
		if err != nil {
			types.SendError(c, err)
			return
		}
		category, err := deps.CategoryService.Create(c.Request.Context(), c.PostForm("name"), c.PostForm("description"), imagePath)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendCreated(c, category)
	}
}

// Update edits a category
func Update(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		imagePath, err := storeImage(c, deps)
		if err != nil {
			types.SendError(c, err)
			return
		}
		category, err := deps.CategoryService.Update(c.Request.Context(), id, c.PostForm("name"), c.PostForm("description"), imagePath)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendData(c, category)
	}
}

// Delete removes a category
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		if err := deps.CategoryService.Delete(c.Request.Context(), id); err != nil {
			types.SendError(c, err)
			return
		}
		types.SendData(c, gin.H{"message": "category deleted"})
	}
}

func storeImage(c *gin.Context, deps *types.Dependencies) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", nil
	}
	return deps.Storage.Store(c.Request.Context(), media.CollectionImage, file)
}
