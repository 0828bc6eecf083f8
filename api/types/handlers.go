package types

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/gracefm/radio-api/internal/models"
	apperrors "github.com/gracefm/radio-api/pkg/errors"
)

// Context keys set by the auth middleware
const (
	ContextUserKey   = "current_user"
	ContextClaimsKey = "auth_claims"
)

// Handler utility functions to reduce duplication across handlers

// ParseUintParam extracts and parses a URL parameter as uint
// Returns the parsed value and sends error response if parsing fails
func ParseUintParam(c *gin.Context, paramName string) (uint, bool) {
	paramStr := c.Param(paramName)
	value, err := strconv.ParseUint(paramStr, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid " + paramName,
		})
		return 0, false
	}
	return uint(value), true
}

// BindJSONOrError attempts to bind JSON request body to target struct
// Returns false and sends error response if binding fails
func BindJSONOrError(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Message: "Invalid request body",
			Errors:  err.Error(),
		})
		return false
	}
	return true
}

// ParsePagination reads page/per_page query parameters, clamped to limits
func ParsePagination(c *gin.Context, defaultPerPage, maxPerPage int) (page, perPage int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	perPage, _ = strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(defaultPerPage)))
	if perPage < 1 {
		perPage = defaultPerPage
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return page, perPage
}

// CurrentUser returns the authenticated user set by the auth middleware
func CurrentUser(c *gin.Context) *models.User {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*models.User)
	if !ok {
		return nil
	}
	return user
}

// SendError maps a service error to its HTTP response
func SendError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		body := ErrorResponse{Message: appErr.Message}
		if len(appErr.Details) > 0 {
			body.Errors = appErr.Details
		}
		c.JSON(appErr.GetHTTPCode(), body)
		return
	}
	c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "Internal server error"})
}

// SendData sends a 200 response with the standard envelope
func SendData(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, DataResponse{Data: data})
}

// SendCreated sends a 201 response with the standard envelope
func SendCreated(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, DataResponse{Data: data})
}

// SendPage sends a 200 list response with pagination metadata
func SendPage(c *gin.Context, data interface{}, page, perPage int, total int64) {
	c.JSON(http.StatusOK, DataResponse{
		Data:       data,
		Pagination: NewPagination(page, perPage, total),
	})
}

// SendNotFound sends a standardized not found response
func SendNotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, ErrorResponse{Message: message})
}

// ClientMeta captures request attribution used by the metric trail
type ClientMeta struct {
	IPAddress string
	UserAgent string
	Country   string
	City      string
}

// GetClientMeta reads attribution from the request. Geo fields come from
// the CDN headers when present.
func GetClientMeta(c *gin.Context) ClientMeta {
	country := c.GetHeader("CF-IPCountry")
	if country == "" {
		country = c.GetHeader("X-Geo-Country")
	}
	return ClientMeta{
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Country:   country,
		City:      c.GetHeader("X-Geo-City"),
	}
}
