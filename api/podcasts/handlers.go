package podcasts

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gracefm/radio-api/api/types"
	"github.com/gracefm/radio-api/internal/models"
	"github.com/gracefm/radio-api/internal/services/media"
	"github.com/gracefm/radio-api/internal/services/metrics"
	"github.com/gracefm/radio-api/internal/services/podcasts"
)

// List returns published podcasts
// @Summary      List published podcasts
// @Tags         podcasts
// @Produce      json
// @Param        search query string false "Search in title and description"
// @Param        sort query string false "newest, oldest, most_listens or title"
// @Param        page query int false "Page number"
// @Success      200 {object} types.DataResponse
// @Router       /api/v1/podcasts [get]
func List(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := buildFilter(c, deps)
		items, total, err := deps.PodcastService.ListPublished(c.Request.Context(), filter)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendPage(c, items, filter.Page, filter.PerPage, total)
	}
}

// Get returns a single podcast. Owners and staff can see podcasts that are
// not publicly visible.
// @Summary      Get a podcast
// @Tags         podcasts
// @Produce      json
// @Param        id path int true "Podcast ID"
// @Success      200 {object} types.DataResponse
// @Failure      404 {object} types.ErrorResponse
// @Router       /api/v1/podcasts/{id} [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		podcast, err := deps.PodcastService.Get(c.Request.Context(), id, types.CurrentUser(c))
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendData(c, podcast)
	}
}

// Listen counts a play and returns the updated podcast
// @Summary      Record a listen
// @Tags         podcasts
// @Produce      json
// @Param        id path int true "Podcast ID"
// @Success      200 {object} types.DataResponse
// @Router       /api/v1/podcasts/{id}/listen [post]
func Listen(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}

		meta := types.GetClientMeta(c)
		listener := podcasts.ListenerInfo{
			IPAddress: meta.IPAddress,
			UserAgent: meta.UserAgent,
			Country:   meta.Country,
			City:      meta.City,
		}
		if user := types.CurrentUser(c); user != nil {
			listener.UserID = &user.ID
		}

		podcast, err := deps.PodcastService.Listen(c.Request.Context(), id, listener)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendData(c, podcast)
	}
}

// Download redirects to the podcast audio file
// @Summary      Download podcast audio
// @Tags         podcasts
// @Param        id path int true "Podcast ID"
// @Success      302
// @Failure      403 {object} types.ErrorResponse "Downloads disabled"
// @Router       /api/v1/podcasts/{id}/download [get]
func Download(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		audioPath, err := deps.PodcastService.Download(c.Request.Context(), id, types.CurrentUser(c))
		if err != nil {
			types.SendError(c, err)
			return
		}
		trackDownload(c, deps, id)
		c.Redirect(http.StatusFound, audioPath)
	}
}

// trackDownload records the download as a listen event
func trackDownload(c *gin.Context, deps *types.Dependencies, podcastID uint) {
	meta := types.GetClientMeta(c)
	kind := models.KindPodcast
	event := metrics.Event{
		Type:       models.MetricPodcastListen,
		EntityType: &kind,
		EntityID:   &podcastID,
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

// ListMine returns the authenticated user's own podcasts in every status
// @Summary      List own podcasts
// @Tags         podcasts
// @Produce      json
// @Security     BearerAuth
// @Param        status query string false "pending, approved or rejected"
// @Success      200 {object} types.DataResponse
// @Router       /api/v1/my/podcasts [get]
func ListMine(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := types.CurrentUser(c)
		filter := buildFilter(c, deps)
		filter.Status = c.Query("status")

		items, total, err := deps.PodcastService.ListByUser(c.Request.Context(), user.ID, filter)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendPage(c, items, filter.Page, filter.PerPage, total)
	}
}

// Create submits a podcast for review. Multipart form: title, description,
// allow_download, audio (file), cover (file). Requires the upload privilege.
// @Summary      Submit a podcast
// @Tags         podcasts
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Success      201 {object} types.DataResponse
// @Failure      403 {object} types.ErrorResponse "Upload privilege required"
// @Router       /api/v1/podcasts [post]
func Create(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := types.CurrentUser(c)
		input, err := bindPodcastForm(c, deps)
		if err != nil {
			types.SendError(c, err)
			return
		}
		podcast, err := deps.PodcastService.Create(c.Request.Context(), user.ID, *input)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendCreated(c, podcast)
	}
}

// Update edits a pending or rejected podcast
// @Summary      Edit own podcast
// @Tags         podcasts
// @Accept       mpfd
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Podcast ID"
// @Success      200 {object} types.DataResponse
// @Failure      409 {object} types.ErrorResponse "Approved podcasts are immutable"
// @Router       /api/v1/podcasts/{id} [put]
func Update(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		user := types.CurrentUser(c)
		input, err := bindPodcastForm(c, deps)
		if err != nil {
			types.SendError(c, err)
			return
		}
		podcast, err := deps.PodcastService.Update(c.Request.Context(), id, user.ID, *input)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendData(c, podcast)
	}
}

// Delete removes or requests removal of an own podcast
// @Summary      Delete own podcast
// @Description  Pending and rejected podcasts are deleted immediately.
// @Description  Approved podcasts get a deletion request that an admin
// @Description  must rule on; the podcast is hidden in the meantime.
// @Tags         podcasts
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Podcast ID"
// @Success      200 {object} types.DataResponse
// @Failure      409 {object} types.ErrorResponse "Deletion request already pending"
// @Router       /api/v1/podcasts/{id} [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		user := types.CurrentUser(c)

		var req types.DeletePodcastRequest
		_ = c.ShouldBindJSON(&req)

		deleted, err := deps.PodcastService.Delete(c.Request.Context(), id, user.ID, req.Reason)
		if err != nil {
			types.SendError(c, err)
			return
		}
		if deleted {
			types.SendData(c, gin.H{"message": "podcast deleted"})
			return
		}
		types.SendData(c, gin.H{"message": "deletion request filed for review"})
	}
}

// Resubmit returns a rejected podcast to the review queue
// @Summary      Resubmit a rejected podcast
// @Tags         podcasts
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Podcast ID"
// @Success      200 {object} types.DataResponse
// @Failure      409 {object} types.ErrorResponse "Podcast is not rejected"
// @Router       /api/v1/podcasts/{id}/resubmit [post]
func Resubmit(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		user := types.CurrentUser(c)
		podcast, err := deps.PodcastService.Resubmit(c.Request.Context(), id, user.ID)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendData(c, podcast)
	}
}

func buildFilter(c *gin.Context, deps *types.Dependencies) podcasts.ListFilter {
	page, perPage := types.ParsePagination(c, deps.Config.Pagination.DefaultPerPage, deps.Config.Pagination.MaxPerPage)
	return podcasts.ListFilter{
		Search:  c.Query("search"),
		Sort:    c.Query("sort"),
		Page:    page,
		PerPage: perPage,
	}
}

func bindPodcastForm(c *gin.Context, deps *types.Dependencies) (*podcasts.PodcastInput, error) {
	input := &podcasts.PodcastInput{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
	}
	if raw, ok := c.GetPostForm("allow_download"); ok {
		allow := raw == "true" || raw == "1"
		input.AllowDownload = &allow
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
