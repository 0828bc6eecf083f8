package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gracefm/radio-api/api/types"
	"github.com/gracefm/radio-api/internal/models"
	"github.com/gracefm/radio-api/internal/services/auth"
	"github.com/gracefm/radio-api/internal/services/users"
)

func setupAuthTest(t *testing.T) (*auth.Service, users.Service, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	authSvc, err := auth.NewService("middleware-test-secret", time.Hour)
	require.NoError(t, err)

	userSvc := users.NewService(users.NewRepository(db), authSvc)
	return authSvc, userSvc, db
}

func createUser(t *testing.T, db *gorm.DB, role string, active bool) *models.User {
	t.Helper()
	user := &models.User{
		Name:         "Middleware Tester",
		Email:        role + "@example.com",
		PasswordHash: "irrelevant",
		Role:         role,
		IsActive:     active,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func protectedRouter(authSvc *auth.Service, userSvc users.Service, extra ...gin.HandlerFunc) *gin.Engine {
	engine := gin.New()
	group := engine.Group("/secure")
	group.Use(RequireAuth(authSvc, userSvc))
	for _, mw := range extra {
		group.Use(mw)
	}
	group.GET("", func(c *gin.Context) {
		user := types.CurrentUser(c)
		c.JSON(http.StatusOK, gin.H{"email": user.Email})
	})
	return engine
}

func TestRequireAuth(t *testing.T) {
	authSvc, userSvc, db := setupAuthTest(t)
	user := createUser(t, db, models.RoleUser, true)

	token, err := authSvc.IssueToken(user)
	require.NoError(t, err)

	engine := protectedRouter(authSvc, userSvc)

	tests := []struct {
		name           string
		header         string
		expectedStatus int
	}{
		{name: "valid token", header: "Bearer " + token, expectedStatus: http.StatusOK},
		{name: "lowercase scheme", header: "bearer " + token, expectedStatus: http.StatusOK},
		{name: "missing header", header: "", expectedStatus: http.StatusUnauthorized},
		{name: "malformed header", header: token, expectedStatus: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer not.a.token", expectedStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/secure", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)
			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestRequireAuthDeactivatedAccount(t *testing.T) {
	authSvc, userSvc, db := setupAuthTest(t)
	user := createUser(t, db, models.RoleUser, false)

	token, err := authSvc.IssueToken(user)
	require.NoError(t, err)

	engine := protectedRouter(authSvc, userSvc)

	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestRequireRoles(t *testing.T) {
	authSvc, userSvc, db := setupAuthTest(t)
	listener := createUser(t, db, models.RoleUser, true)
	moderator := createUser(t, db, models.RoleModerator, true)

	engine := protectedRouter(authSvc, userSvc, RequireRoles(models.RoleAdmin, models.RoleModerator))

	listenerToken, err := authSvc.IssueToken(listener)
	require.NoError(t, err)
	moderatorToken, err := authSvc.IssueToken(moderator)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+listenerToken)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code, "listener must not reach staff routes")

	req = httptest.NewRequest(http.MethodGet, "/secure", nil)
	req.Header.Set("Authorization", "Bearer "+moderatorToken)
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOptionalAuth(t *testing.T) {
	authSvc, userSvc, db := setupAuthTest(t)
	user := createUser(t, db, models.RoleUser, true)

	token, err := authSvc.IssueToken(user)
	require.NoError(t, err)

	engine := gin.New()
	engine.GET("/open", OptionalAuth(authSvc, userSvc), func(c *gin.Context) {
		if u := types.CurrentUser(c); u != nil {
			c.JSON(http.StatusOK, gin.H{"user": u.Email})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": nil})
	})

	t.Run("anonymous passes through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/open", nil)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "null")
	})

	t.Run("token resolves the user", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/open", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), user.Email)
	})

	t.Run("invalid token is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/open", nil)
		req.Header.Set("Authorization", "Bearer broken")
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
