package stream

import (
	"github.com/gin-gonic/gin"

	"github.com/gracefm/radio-api/api/types"
	"github.com/gracefm/radio-api/internal/models"
	"github.com/gracefm/radio-api/internal/services/metrics"
)

// Active returns the currently active stream link
// @Summary      Get the live stream link
// @Tags         stream
// @Produce      json
// @Success      200 {object} types.DataResponse
// @Failure      404 {object} types.ErrorResponse
// @Router       /api/v1/stream [get]
func Active(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		link, err := deps.StreamService.Active(c.Request.Context())
		if err != nil {
			types.SendError(c, err)
			return
		}

		meta := types.GetClientMeta(c)
		kind := models.KindStream
		deps.MetricService.Track(c.Request.Context(), metrics.Event{
			Type:       models.MetricVisit,
			EntityType: &kind,
			EntityID:   &link.ID,
			IPAddress:  meta.IPAddress,
			UserAgent:  meta.UserAgent,
			Country:    meta.Country,
			City:       meta.City,
		})

		types.SendData(c, link)
	}
}

// List returns every configured stream link
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		links, err := deps.StreamService.List(c.Request.Context())
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendData(c, links)
	}
}

// Create stores a new stream link
func Create(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.StreamLinkRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}
		link, err := deps.StreamService.Create(c.Request.Context(), req.Name, req.URL)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendCreated(c, link)
	}
}

// Update edits a stream link
func Update(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		var req types.StreamLinkRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}
		link, err := deps.StreamService.Update(c.Request.Context(), id, req.Name, req.URL)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendData(c, link)
	}
}

// Activate makes a link the live one, deactivating the rest
func Activate(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		link, err := deps.StreamService.Activate(c.Request.Context(), id)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendData(c, link)
	}
}

// Deactivate turns a link off
func Deactivate(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		link, err := deps.StreamService.Deactivate(c.Request.Context(), id)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendData(c, link)
	}
}

// Delete removes a stream link
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		if err := deps.StreamService.Delete(c.Request.Context(), id); err != nil {
			types.SendError(c, err)
			return
		}
		types.SendData(c, gin.H{"message": "stream link deleted"})
	}
}
