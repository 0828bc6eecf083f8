package favourites

import (
	"github.com/gin-gonic/gin"

	"github.com/gracefm/radio-api/api/types"
	"github.com/gracefm/radio-api/internal/models"
	"github.com/gracefm/radio-api/internal/services/favourites"
	apperrors "github.com/gracefm/radio-api/pkg/errors"
)

// List returns the authenticated user's favourites with resolved targets
// @Summary      List own favourites
// @Tags         favourites
// @Produce      json
// @Security     BearerAuth
// @Param        type query string false "Filter by entity type (message or podcast)"
// @Success      200 {object} types.DataResponse
// @Router       /api/v1/favourites [get]
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := types.CurrentUser(c)

		var kind models.EntityKind
		if raw := c.Query("type"); raw != "" {
			parsed, ok := models.ParseEntityKind(raw)
			if !ok {
				types.SendError(c, apperrors.ValidationError("type", "unknown entity type"))
				return
			}
			kind = parsed
		}

		views, err := deps.FavouriteService.List(c.Request.Context(), user.ID, kind)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendData(c, views)
	}
}

// Create favourites an entity for the authenticated user
// @Summary      Favourite an entity
// @Tags         favourites
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body types.FavouriteRequest true "Target entity"
// @Success      201 {object} types.DataResponse
// @Failure      409 {object} types.ErrorResponse "Already favourited"
// @Router       /api/v1/favourites [post]
func Create(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.FavouriteRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		kind, ok := models.ParseEntityKind(req.FavouritableType)
		if !ok {
			types.SendError(c, apperrors.ValidationError("favouritable_type", "unknown entity type"))
			return
		}

		user := types.CurrentUser(c)
		meta := types.GetClientMeta(c)
		favourite, err := deps.FavouriteService.Add(c.Request.Context(), user.ID, kind, req.FavouritableID, favourites.RequestMeta{
			IPAddress: meta.IPAddress,
			UserAgent: meta.UserAgent,
			Country:   meta.Country,
			City:      meta.City,
		})
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendCreated(c, favourite)
	}
}

// Delete removes an own favourite
// @Summary      Remove a favourite
// @Tags         favourites
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Favourite ID"
// @Success      200 {object} types.DataResponse
// @Router       /api/v1/favourites/{id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		user := types.CurrentUser(c)
		if err := deps.FavouriteService.Remove(c.Request.Context(), id, user.ID); err != nil {
			types.SendError(c, err)
			return
		}
		types.SendData(c, gin.H{"message": "favourite removed"})
	}
}
