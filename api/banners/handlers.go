package banners

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gracefm/radio-api/api/types"
	"github.com/gracefm/radio-api/internal/models"
	"github.com/gracefm/radio-api/internal/services/banners"
	"github.com/gracefm/radio-api/internal/services/media"
	apperrors "github.com/gracefm/radio-api/pkg/errors"
)

// Active returns the banners currently eligible for display
// @Summary      List active banners
// @Tags         banners
// @Produce      json
// @Success      200 {object} types.DataResponse
// @Router       /api/v1/banners [get]
func Active(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := deps.BannerService.Active(c.Request.Context())
		if err != nil {
			types.SendError(c, err)
			return
		}

		views := make([]bannerView, 0, len(list))
		for _, banner := range list {
			views = append(views, bannerView{
				BannerAd:       banner,
				ImageBannerURL: media.VariantURL(banner.ImagePath, media.ConversionBanner),
				ImageMobileURL: media.VariantURL(banner.ImagePath, media.ConversionMobile),
			})
		}
		types.SendData(c, views)
	}
}

// bannerView adds the rendered image variants the apps display
type bannerView struct {
	models.BannerAd
	ImageBannerURL string `json:"image_banner_url"`
	ImageMobileURL string `json:"image_mobile_url"`
}

// ListAll returns every banner regardless of state
func ListAll(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := deps.BannerService.ListAll(c.Request.Context())
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendData(c, list)
	}
}

// Create stores a new banner. Multipart form with an image file.
func Create(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		input, err := bindBannerForm(c, deps)
		if err != nil {
			types.SendError(c, err)
			return
		}
		banner, err := deps.BannerService.Create(c.Request.Context(), input)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendCreated(c, banner)
	}
}

// Update edits a banner
func Update(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		input, err := bindBannerForm(c, deps)
		if err != nil {
			types.SendError(c, err)
			return
		}
		banner, err := deps.BannerService.Update(c.Request.Context(), id, input)
		if err != nil {
			types.SendError(c, err)
			return
		}
		types.SendData(c, banner)
	}
}

// Delete removes a banner
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := types.ParseUintParam(c, "id")
		if !ok {
			return
		}
		if err := deps.BannerService.Delete(c.Request.Context(), id); err != nil {
			types.SendError(c, err)
			return
		}
		types.SendData(c, gin.H{"message": "banner deleted"})
	}
}

func bindBannerForm(c *gin.Context, deps *types.Dependencies) (banners.BannerInput, error) {
	input := banners.BannerInput{
		Title:       c.PostForm("title"),
		URL:         c.PostForm("url"),
		Description: c.PostForm("description"),
	}
	if raw, present := c.GetPostForm("is_active"); present {
		active := raw == "true" || raw == "1"
		input.IsActive = &active
	}
	if raw, present := c.GetPostForm("order"); present {
		order, err := strconv.Atoi(raw)
		if err != nil {
			return input, apperrors.ValidationError("order", "must be an integer")
		}
		input.Order = &order
	}
	for field, dest := range map[string]**time.Time{"starts_at": &input.StartsAt, "ends_at": &input.EndsAt} {
		raw, present := c.GetPostForm(field)
		if !present || raw == "" {
			continue
		}
		ts, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return input, apperrors.ValidationError(field, "must be an RFC3339 timestamp")
		}
		*dest = &ts
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
