package messages

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gracefm/radio-api/api/types"
	"github.com/gracefm/radio-api/internal/models"
	"github.com/gracefm/radio-api/internal/services/media"
	"github.com/gracefm/radio-api/internal/services/messages"
	"github.com/gracefm/radio-api/internal/services/metrics"
)

// List returns published messages
// @Summary      List published messages
// @Description  Paginated listing of published sermon messages. Supports
// @Description  category filtering, free-text search and sorting.
// @Tags         messages
// @Produce      json
// @Param        category_id query int false "Filter by category"
// @Param        search query string false "Search in title and description"
// @Param        sort query string false "newest, oldest, most_listens or title"
// @Param        page query int false "Page number"
// @Success      200 {object} types.DataResponse
// @Router       /api/v1/messages [get]
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := buildFilter(c, deps)
		items, total, err := deps.MessageService.ListPublished(c.Request.Context(), filter)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendPage(c, items, filter.Page, filter.PerPage, total)
	}
}

// Get returns a single published message
// @Summary      Get a message
// @Tags         messages
// @Produce      json
// @Param        id path int true "Message ID"
// @Success      200 {object} types.DataResponse
// @Failure      404 {object} types.ErrorResponse
// @Router       /api/v1/messages/{id} [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		message, err := deps.MessageService.Get(c.Request.Context(), id)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendData(c, message)
	}
}

// Listen counts a play and returns the updated message
// @Summary      Record a listen
// @Tags         messages
// @Produce      json
// @Param        id path int true "Message ID"
// @Success      200 {object} types.DataResponse
// @Failure      404 {object} types.ErrorResponse
// @Router       /api/v1/messages/{id}/listen [post]
func Listen(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		meta := types.GetClientMeta(c)
		listener := messages.ListenerInfo{
			IPAddress: meta.IPAddress,
			UserAgent: meta.UserAgent,
			Country:   meta.Country,
			City:      meta.City,
		}
		if user := types.CurrentUser(c); user != nil {
			listener.UserID = &user.ID
		}

		message, err := deps.MessageService.Listen(c.Request.Context(), id, listener)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendData(c, message)
	}
}

// Download redirects to the message audio file
// @Summary      Download message audio
// @Tags         messages
// @Param        id path int true "Message ID"
// @Success      302
// @Failure      403 {object} types.ErrorResponse "Downloads disabled"
// @Failure      404 {object} types.ErrorResponse
// @Router       /api/v1/messages/{id}/download [get]
func Download(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		audioPath, err := deps.MessageService.Download(c.Request.Context(), id)
		if err != nil {
			types.SendError(c, err)
			return
		}
		trackDownload(c, deps, id)
		c.Redirect(http.StatusFound, audioPath)
	}
}

// AdminList returns all messages regardless of publication state
func AdminList(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := buildFilter(c, deps)
		items, total, err := deps.MessageService.ListAll(c.Request.Context(), filter)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendPage(c, items, filter.Page, filter.PerPage, total)
	}
}

// Create stores an uploaded message. Multipart form: title, description,
// category_id, allow_download, is_published, audio (file), cover (file).
func Create(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		input, err := bindMessageForm(c, deps)
		if err != nil {
			types.SendError(c, err)
			return
		}
		message, err := deps.MessageService.Create(c.Request.Context(), *input)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendCreated(c, message)
	}
}

// Update edits a message. Same multipart form as Create, all fields optional.
func Update(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		input, err := bindMessageForm(c, deps)
		if err != nil {
			types.SendError(c, err)
			return
		}
		message, err := deps.MessageService.Update(c.Request.Context(), id, *input)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendData(c, message)
	}
}

// Delete removes a message
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		if err := deps.MessageService.Delete(c.Request.Context(), id); err != nil {
			types.SendError(c, err)
			return
		}
		types.SendData(c, gin.H{"message": "message deleted"})
	}
}

// trackDownload records the download as a listen event
func trackDownload(c *gin.Context, deps *types.Dependencies, messageID uint) {
	meta := types.GetClientMeta(c)
	kind := models.KindMessage
	event := metrics.Event{
		Type:       models.MetricMessageListen,
		EntityType: &kind,
		EntityID:   &messageID,
		IPAddress:  meta.IPAddress,
		UserAgent:  meta.UserAgent,
		Country:    meta.Country,
		City:       meta.City,
		Metadata:   map[string]interface{}{"action": "download"},
	}
	if user := types.CurrentUser(c); user != nil {
		event.UserID = &user.ID
	}
	deps.MetricService.Track(c.Request.Context(), event)
}

func buildFilter(c *gin.Context, deps *types.Dependencies) messages.ListFilter {
	page, perPage := types.ParsePagination(c, deps.Config.Pagination.DefaultPerPage, deps.Config.Pagination.MaxPerPage)
	categoryID, _ := strconv.ParseUint(c.Query("category_id"), 10, 32)
	return messages.ListFilter{
		CategoryID: uint(categoryID),
		Search:     c.Query("search"),
		Sort:       c.Query("sort"),
		Page:       page,
		PerPage:    perPage,
	}
}

func bindMessageForm(c *gin.Context, deps *types.Dependencies) (*messages.MessageInput, error) {
	input := &messages.MessageInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
	}
	if categoryID, err := strconv.ParseUint(c.PostForm("category_id"), 10, 32); err == nil {
		input.CategoryID = uint(categoryID)
	}
	if raw, ok := c.GetPostForm("allow_download"); ok {
		allow := raw == "true" || raw == "1"
		input.AllowDownload = &allow
	}
	if raw, ok := c.GetPostForm("is_published"); ok {
		published := raw == "true" || raw == "1"
		input.IsPublished = &published
	}

	if file, err := c.FormFile("audio"); err == nil {
		stored, err := deps.Storage.Store(c.Request.Context(), media.CollectionAudio, file)
		if err != nil {
			return nil, err
		}
		input.AudioPath = stored
	}
	if file, err := c.FormFile("cover"); err == nil {
		stored, err := deps.Storage.Store(c.Request.Context(), media.CollectionCover, file)
		if err != nil {
			return nil, err
		}
		input.CoverPath = stored
	}
	return input, nil
}
