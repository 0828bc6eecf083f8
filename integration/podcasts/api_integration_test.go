package podcasts_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gracefm/radio-api/api"
	"github.com/gracefm/radio-api/api/types"
	"github.com/gracefm/radio-api/internal/database"
	"github.com/gracefm/radio-api/internal/models"
	"github.com/gracefm/radio-api/internal/services/auth"
	"github.com/gracefm/radio-api/internal/services/banners"
	"github.com/gracefm/radio-api/internal/services/categories"
	"github.com/gracefm/radio-api/internal/services/comments"
	"github.com/gracefm/radio-api/internal/services/favourites"
	"github.com/gracefm/radio-api/internal/services/media"
	"github.com/gracefm/radio-api/internal/services/messages"
	"github.com/gracefm/radio-api/internal/services/metrics"
	"github.com/gracefm/radio-api/internal/services/notifications"
	podcastService "github.com/gracefm/radio-api/internal/services/podcasts"
	"github.com/gracefm/radio-api/internal/services/quicklinks"
	"github.com/gracefm/radio-api/internal/services/requests"
	"github.com/gracefm/radio-api/internal/services/streams"
	"github.com/gracefm/radio-api/internal/services/targets"
	"github.com/gracefm/radio-api/internal/services/users"
	"github.com/gracefm/radio-api/pkg/config"
)

type IntegrationTestSuite struct {
	t        *testing.T
	db       *gorm.DB
	deps     *types.Dependencies
	router   *gin.Engine
	authSvc  *auth.Service
	notifier *notifications.RecordingNotifier
}

func setupIntegrationTestSuite(t *testing.T) *IntegrationTestSuite {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "Failed to connect to test database")

	err = db.AutoMigrate(models.All()...)
	require.NoError(t, err, "Failed to migrate test database")

	authSvc, err := auth.NewService("integration-test-secret", time.Hour)
	require.NoError(t, err)

	cfg := &config.Config{
		Environment: "test",
		Pagination: config.PaginationConfig{
			DefaultPerPage:  15,
			CommentsPerPage: 20,
			MaxPerPage:      100,
		},
	}

	notifier := notifications.NewRecordingNotifier()
	resolver := targets.NewResolver(db)
	userRepo := users.NewRepository(db)
	metricSvc := metrics.NewService(metrics.NewRepository(db))
	requestSvc := requests.NewService(requests.NewRepository(db), userRepo, notifier)

	deps := &types.Dependencies{
		DB:               &database.DB{DB: db},
		Config:           cfg,
		AuthService:      authSvc,
		UserService:      users.NewService(userRepo, authSvc),
		MessageService:   messages.NewService(messages.NewRepository(db), metricSvc),
		CategoryService:  categories.NewService(categories.NewRepository(db)),
		PodcastService:   podcastService.NewService(podcastService.NewRepository(db), requestSvc, userRepo, metricSvc, notifier),
		RequestService:   requestSvc,
		CommentService:   comments.NewService(comments.NewRepository(db), resolver, userRepo, metricSvc, notifier),
		FavouriteService: favourites.NewService(favourites.NewRepository(db), resolver, metricSvc),
		MetricService:    metricSvc,
		StreamService:    streams.NewService(streams.NewRepository(db)),
		BannerService:    banners.NewService(db),
		QuickLinkService: quicklinks.NewService(db),
		Storage:          media.NewMemoryStorage(),
		Notifier:         notifier,
	}

	router := gin.New()
	router.Use(gin.Recovery())

	rateLimiters := &sync.Map{}
	cleanupStop := make(chan struct{})
	cleanupInitialized := &sync.Once{}

	err = api.RegisterRoutes(router, deps, rateLimiters, cleanupStop, cleanupInitialized)
	require.NoError(t, err, "Failed to register routes")

	return &IntegrationTestSuite{
		t:        t,
		db:       db,
		deps:     deps,
		router:   router,
		authSvc:  authSvc,
		notifier: notifier,
	}
}

func (suite *IntegrationTestSuite) createUser(email, role string) *models.User {
	hash, err := suite.authSvc.HashPassword("password123")
	require.NoError(suite.t, err)

	user := &models.User{
		Name:         "Test User",
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}
	require.NoError(suite.t, suite.db.Create(user).Error)
	return user
}

func (suite *IntegrationTestSuite) tokenFor(user *models.User) string {
	token, err := suite.authSvc.IssueToken(user)
	require.NoError(suite.t, err)
	return token
}

func (suite *IntegrationTestSuite) doJSON(method, path, token string, payload interface{}) *httptest.ResponseRecorder {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(suite.t, err)
		body = bytes.NewBuffer(raw)
	}
	req := httptest.NewRequest(method, path, body)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *IntegrationTestSuite) uploadPodcast(token, title string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	require.NoError(suite.t, writer.WriteField("title", title))
	require.NoError(suite.t, writer.WriteField("description", "A listener recording"))
	part, err := writer.CreateFormFile("audio", "episode.mp3")
	require.NoError(suite.t, err)
	_, err = part.Write([]byte("fake audio bytes"))
	require.NoError(suite.t, err)
	require.NoError(suite.t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/podcasts", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response), "Failed to parse response body")
	data, ok := response["data"].(map[string]interface{})
	require.True(t, ok, "Response should carry a data object")
	return data
}

func decodeDataList(t *testing.T, w *httptest.ResponseRecorder) []interface{} {
	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response), "Failed to parse response body")
	data, ok := response["data"].([]interface{})
	require.True(t, ok, "Response should carry a data list")
	return data
}

func TestPodcastModerationWorkflow(t *testing.T) {
	suite := setupIntegrationTestSuite(t)

	listener := suite.createUser("listener@example.com", models.RoleUser)
	admin := suite.createUser("admin@example.com", models.RoleAdmin)
	listenerToken := suite.tokenFor(listener)
	adminToken := suite.tokenFor(admin)

	// Uploading without the privilege is rejected
	w := suite.uploadPodcast(listenerToken, "Too Early")
	require.Equal(t, http.StatusForbidden, w.Code)

	// Apply for the privilege and have an admin approve it
	w = suite.doJSON(http.MethodPost, "/api/v1/podcast-requests", listenerToken,
		map[string]interface{}{"reason": "I record a weekly youth show"})
	require.Equal(t, http.StatusCreated, w.Code)
	requestID := uint(decodeData(t, w)["ID"].(float64))

	w = suite.doJSON(http.MethodPost, fmt.Sprintf("/api/v1/admin/podcast-requests/%d/approve", requestID), adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Upload now succeeds and lands in pending review
	w = suite.uploadPodcast(listenerToken, "Youth Show Episode 1")
	require.Equal(t, http.StatusCreated, w.Code)
	podcastID := uint(decodeData(t, w)["ID"].(float64))

	// Pending podcasts are invisible to the public
	w = suite.doJSON(http.MethodGet, "/api/v1/podcasts", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeDataList(t, w))

	w = suite.doJSON(http.MethodGet, fmt.Sprintf("/api/v1/podcasts/%d", podcastID), "", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	// The owner still sees their own pending podcast
	w = suite.doJSON(http.MethodGet, fmt.Sprintf("/api/v1/podcasts/%d", podcastID), listenerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Admin approves it
	w = suite.doJSON(http.MethodGet, "/api/v1/admin/podcasts/pending", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, decodeDataList(t, w), 1)

	w = suite.doJSON(http.MethodPost, fmt.Sprintf("/api/v1/admin/podcasts/%d/approve", podcastID), adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Now the public can see it
	w = suite.doJSON(http.MethodGet, "/api/v1/podcasts", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, decodeDataList(t, w), 1)

	// Deleting an approved podcast files a request instead of removing it
	w = suite.doJSON(http.MethodDelete, fmt.Sprintf("/api/v1/podcasts/%d", podcastID), listenerToken,
		map[string]interface{}{"reason": "re-recording the episode"})
	require.Equal(t, http.StatusOK, w.Code)

	w = suite.doJSON(http.MethodGet, "/api/v1/podcasts", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeDataList(t, w), "Podcast should be hidden while the deletion request is pending")

	w = suite.doJSON(http.MethodGet, "/api/v1/admin/podcasts/deletion-requests", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	deletionRequests := decodeDataList(t, w)
	require.Len(t, deletionRequests, 1)
	deletionID := uint(deletionRequests[0].(map[string]interface{})["ID"].(float64))

	w = suite.doJSON(http.MethodPost, fmt.Sprintf("/api/v1/admin/podcasts/deletion-requests/%d/approve", deletionID), adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var count int64
	require.NoError(t, suite.db.Model(&models.Podcast{}).Count(&count).Error)
	assert.Zero(t, count, "Approved deletion should remove the podcast")
}

func TestCommentAndFavouriteWorkflow(t *testing.T) {
	suite := setupIntegrationTestSuite(t)

	listener := suite.createUser("commenter@example.com", models.RoleUser)
	admin := suite.createUser("moderator@example.com", models.RoleModerator)
	listenerToken := suite.tokenFor(listener)
	adminToken := suite.tokenFor(admin)

	message := &models.Message{
		Title:         "Sunday Service",
		AudioPath:     "memory://audio_file/sunday.mp3",
		AllowDownload: true,
		IsPublished:   true,
	}
	require.NoError(t, suite.db.Create(message).Error)

	// Comment lands unapproved and is hidden from the public listing
	w := suite.doJSON(http.MethodPost, "/api/v1/comments", listenerToken, map[string]interface{}{
		"commentable_type": "message",
		"commentable_id":   message.ID,
		"body":             "Such a powerful word, thank you!",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	commentID := uint(decodeData(t, w)["ID"].(float64))

	w = suite.doJSON(http.MethodGet, fmt.Sprintf("/api/v1/messages/%d/comments", message.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeDataList(t, w))

	// Moderator approves it; the author gets exactly one notification
	w = suite.doJSON(http.MethodPost, fmt.Sprintf("/api/v1/admin/comments/%d/approve", commentID), adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, suite.notifier.Sent, 1)

	w = suite.doJSON(http.MethodGet, fmt.Sprintf("/api/v1/messages/%d/comments", message.ID), "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, decodeDataList(t, w), 1)

	// Favouriting twice conflicts
	payload := map[string]interface{}{"favouritable_type": "message", "favouritable_id": message.ID}
	w = suite.doJSON(http.MethodPost, "/api/v1/favourites", listenerToken, payload)
	require.Equal(t, http.StatusCreated, w.Code)

	w = suite.doJSON(http.MethodPost, "/api/v1/favourites", listenerToken, payload)
	require.Equal(t, http.StatusConflict, w.Code)

	w = suite.doJSON(http.MethodGet, "/api/v1/my/favourites", listenerToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, decodeDataList(t, w), 1)
}

func TestAuthRegisterAndLogin(t *testing.T) {
	suite := setupIntegrationTestSuite(t)

	w := suite.doJSON(http.MethodPost, "/api/v1/auth/register", "", map[string]interface{}{
		"name":     "New Listener",
		"email":    "new@example.com",
		"password": "longenough",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	data := decodeData(t, w)
	require.NotEmpty(t, data["token"])

	w = suite.doJSON(http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "new@example.com",
		"password": "longenough",
	})
	require.Equal(t, http.StatusOK, w.Code)
	token, _ := decodeData(t, w)["token"].(string)
	require.NotEmpty(t, token)

	w = suite.doJSON(http.MethodGet, "/api/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "new@example.com", decodeData(t, w)["email"])

	// Wrong password is rejected
	w = suite.doJSON(http.MethodPost, "/api/v1/auth/login", "", map[string]interface{}{
		"email":    "new@example.com",
		"password": "wrongpassword",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// Admin surface is off limits to regular users
	w = suite.doJSON(http.MethodGet, "/api/v1/admin/dashboard", token, nil)
	require.Equal(t, http.StatusForbidden, w.Code)
}
