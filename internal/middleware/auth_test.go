package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"skillpath_backend/internal/config"
	"skillpath_backend/internal/model"
	"skillpath_backend/internal/util"
	"skillpath_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

const testSecret = "auth-middleware-test-secret-1234"

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = testSecret
	cfg.JWT.ExpireTime = time.Hour
	return cfg
}

func tokenFor(t *testing.T, role model.UserRole) string {
	t.Helper()
	user := &model.User{Email: "mw@example.com", Role: role}
	user.ID = 7
	token, err := util.GenerateJWT(user, testSecret, time.Hour)
	require.NoError(t, err)
	return token
}

func TestAuthMiddleware(t *testing.T) {
	router := gin.New()
	router.GET("/protected", AuthMiddleware(testConfig()), func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		require.NotNil(t, claims)
		c.JSON(http.StatusOK, gin.H{"user_id": claims.UserID})
	})

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{"valid token", "Bearer " + tokenFor(t, model.RoleUser), http.StatusOK},
		{"no header", "", http.StatusUnauthorized},
		{"empty bearer", "Bearer ", http.StatusUnauthorized},
		{"garbage token", "Bearer not.a.token", http.StatusUnauthorized},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tc.wantStatus, w.Code)
		})
	}
}

func TestAuthMiddlewareWrongSecret(t *testing.T) {
	user := &model.User{Email: "mw@example.com", Role: model.RoleUser}
	user.ID = 7
	token, err := util.GenerateJWT(user, "some-other-secret-32-chars-long!", time.Hour)
	require.NoError(t, err)

	router := gin.New()
	router.GET("/protected", AuthMiddleware(testConfig()), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRoleMiddleware(t *testing.T) {
	cfg := testConfig()

	router := gin.New()
	adminOnly := router.Group("/admin", AuthMiddleware(cfg), RoleMiddleware(model.RoleAdmin))
	adminOnly.GET("/users", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	tests := []struct {
		name       string
		role       model.UserRole
		wantStatus int
	}{
		{"admin allowed", model.RoleAdmin, http.StatusOK},
		{"user forbidden", model.RoleUser, http.StatusForbidden},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/admin/users", nil)
			req.Header.Set("Authorization", "Bearer "+tokenFor(t, tc.role))
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tc.wantStatus, w.Code)
		})
	}
}
