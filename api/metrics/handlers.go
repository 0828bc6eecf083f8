package metrics

import (
	"github.com/gin-gonic/gin"

	"github.com/gracefm/radio-api/api/types"
	"github.com/gracefm/radio-api/internal/models"
	"github.com/gracefm/radio-api/internal/services/metrics"
	"github.com/gracefm/radio-api/internal/services/podcasts"
)

// Track records a usage event from a client. The endpoint always
// acknowledges: malformed events are dropped server-side rather than
// surfaced, so flaky analytics can never break the apps.
// @Summary      Track a usage event
// @Tags         metrics
// @Accept       json
// @Produce      json
// @Param        request body types.TrackMetricRequest true "Event"
// @Success      200 {object} types.DataResponse
// @Router       /api/v1/metrics [post]
func Track(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.TrackMetricRequest
		if !types.BindJSONOrError(c, &req) {
			return
		}

		meta := types.GetClientMeta(c)
		event := metrics.Event{
			Type:      req.Type,
			IPAddress: meta.IPAddress,
			UserAgent: meta.UserAgent,
			Country:   meta.Country,
			City:      meta.City,
			Metadata:  req.Metadata,
		}
		if req.Country != "" {
			event.Country = req.Country
		}
		if req.City != "" {
			event.City = req.City
		}
		if user := types.CurrentUser(c); user != nil {
			event.UserID = &user.ID
		}
		if req.EntityType != "" {
			if kind, ok := models.ParseEntityKind(req.EntityType); ok {
				event.EntityType = &kind
			}
		}
		if req.EntityID != 0 {
			event.EntityID = &req.EntityID
		}

		deps.MetricService.Track(c.Request.Context(), event)
		types.SendData(c, gin.H{"message": "recorded"})
	}
}

// Analytics returns aggregate counters for a reporting period
// @Summary      Platform analytics
// @Tags         admin
// @Produce      json
// @Param        period query string false "today, week or month" default(today)
// @Success      200 {object} types.DataResponse
// @Router       /api/v1/admin/analytics [get]
func Analytics(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		period := c.DefaultQuery("period", metrics.PeriodToday)
		summary, err := deps.MetricService.Analytics(c.Request.Context(), period)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendData(c, summary)
	}
}

// MyAnalytics returns lifetime counters for the caller's own content
func MyAnalytics(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := types.CurrentUser(c)
		summary, err := deps.MetricService.UserAnalytics(c.Request.Context(), user.ID)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendData(c, summary)
	}
}

// Dashboard aggregates the headline numbers for the admin landing page
func Dashboard(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		userCount, err := deps.UserService.Count(ctx)
		if err != nil {
			types.SendError(c, err)
			return
		}
		recentUsers, err := deps.UserService.Recent(ctx, 5)
		if err != nil {
			types.SendError(c, err)
			return
		}
		messageCount, err := deps.MessageService.CountPublished(ctx)
		if err != nil {
			types.SendError(c, err)
			return
		}
		_, podcastCount, err := deps.PodcastService.ListPublished(ctx, podcasts.ListFilter{Page: 1, PerPage: 1})
		if err != nil {
			types.SendError(c, err)
			return
		}
		pendingPodcasts, err := deps.PodcastService.CountPending(ctx)
		if err != nil {
			types.SendError(c, err)
			return
		}
		recentPending, _, err := deps.PodcastService.ListPending(ctx, podcasts.ListFilter{Page: 1, PerPage: 5})
		if err != nil {
			types.SendError(c, err)
			return
		}
		pendingRequests, err := deps.RequestService.List(ctx, models.RequestStatusPending)
		if err != nil {
			types.SendError(c, err)
			return
		}
		pendingComments, err := deps.CommentService.CountPending(ctx)
		if err != nil {
			types.SendError(c, err)
			return
		}
		recentComments, err := deps.CommentService.RecentApproved(ctx, 5)
		if err != nil {
			types.SendError(c, err)
			return
		}
		today, err := deps.MetricService.Analytics(ctx, metrics.PeriodToday)
		if err != nil {
			types.SendError(c, err)
			return
		}

		activeStream := ""
		if link, err := deps.StreamService.Active(ctx); err == nil {
			activeStream = link.Name
		}

		types.SendData(c, gin.H{
			"users":                   userCount,
			"recent_users":            recentUsers,
			"published_messages":      messageCount,
			"published_podcasts":      podcastCount,
			"pending_podcasts":        pendingPodcasts,
			"recent_pending_podcasts": recentPending,
			"pending_comments":        pendingComments,
			"recent_comments":         recentComments,
			"pending_upload_requests": len(pendingRequests),
			"active_stream":           activeStream,
			"today":                   today,
		})
	}
}
