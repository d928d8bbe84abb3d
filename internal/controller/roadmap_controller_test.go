package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"skillpath_backend/internal/model"
	"skillpath_backend/internal/repository"
	"skillpath_backend/internal/service"
	"skillpath_backend/internal/util"
	"skillpath_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.Log = zap.NewNop()
	os.Exit(m.Run())
}

type failingCompleter struct{}

func (failingCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	return "", errors.New("upstream down")
}

// newRoadmapRouter wires the roadmap endpoints behind a stub identity, so
// requests run as user 1 without a real token.
func newRoadmapRouter(t *testing.T, ai service.Completer) *gin.Engine {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(&model.User{}, &model.Roadmap{}, &model.QuizStat{}))

	repo := repository.NewRoadmapRepository(db)
	ctrl := NewRoadmapController(
		service.NewGenerationService(ai, repo),
		service.NewRoadmapService(repo),
	)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user", &util.Claims{UserID: 1, Role: model.RoleUser, Email: "learner@example.com"})
	})
	router.POST("/api/roadmap", ctrl.Create)
	router.GET("/api/roadmap", ctrl.List)
	router.GET("/api/roadmap/:topic", ctrl.Get)
	router.DELETE("/api/roadmap/:topic", ctrl.Delete)
	return router
}

func doJSON(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateRoadmapFallbackRoundTrip(t *testing.T) {
	router := newRoadmapRouter(t, failingCompleter{})

	w := doJSON(router, http.MethodPost, "/api/roadmap",
		`{"topic": "Rust", "time": "4 Weeks", "knowledge_level": "Beginner"}`)
	require.Equal(t, http.StatusOK, w.Code, "a failing upstream must not surface as an error: %s", w.Body.String())

	var created struct {
		Data struct {
			UsedFallback bool                      `json:"used_fallback"`
			RoadmapData  map[string]model.WeekPlan `json:"roadmap_data"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.True(t, created.Data.UsedFallback)
	require.Contains(t, created.Data.RoadmapData, "Week 1")

	// A later fetch returns the same fallback content.
	w = doJSON(router, http.MethodGet, "/api/roadmap/Rust", "")
	require.Equal(t, http.StatusOK, w.Code)

	var fetched struct {
		Data struct {
			Topic       string                    `json:"topic"`
			RoadmapData map[string]model.WeekPlan `json:"roadmap_data"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, "Rust", fetched.Data.Topic)
	assert.Equal(t, created.Data.RoadmapData, fetched.Data.RoadmapData)
}

func TestCreateRoadmapValidation(t *testing.T) {
	router := newRoadmapRouter(t, failingCompleter{})

	tests := []struct {
		name string
		body string
	}{
		{"blank topic", `{"topic": "   ", "time": "4 Weeks", "knowledge_level": "Beginner"}`},
		{"missing topic", `{"time": "4 Weeks", "knowledge_level": "Beginner"}`},
		{"bad duration unit", `{"topic": "Rust", "time": "4 Days", "knowledge_level": "Beginner"}`},
		{"zero duration", `{"topic": "Rust", "time": "0 Weeks", "knowledge_level": "Beginner"}`},
		{"unknown level", `{"topic": "Rust", "time": "4 Weeks", "knowledge_level": "Wizard"}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := doJSON(router, http.MethodPost, "/api/roadmap", tc.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestGetRoadmapCaseSensitive(t *testing.T) {
	router := newRoadmapRouter(t, failingCompleter{})

	w := doJSON(router, http.MethodPost, "/api/roadmap",
		`{"topic": "Rust", "time": "4 Weeks", "knowledge_level": "Beginner"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodGet, "/api/roadmap/rust", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteRoadmap(t *testing.T) {
	router := newRoadmapRouter(t, failingCompleter{})

	w := doJSON(router, http.MethodPost, "/api/roadmap",
		`{"topic": "Rust", "time": "4 Weeks", "knowledge_level": "Beginner"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodDelete, "/api/roadmap/Rust", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(router, http.MethodDelete, "/api/roadmap/Rust", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
