package app

import (
	"time"

	"skillpath_backend/internal/config"
	"skillpath_backend/internal/middleware"
	"skillpath_backend/internal/model"
	"skillpath_backend/pkg/monitoring"
	"skillpath_backend/pkg/security"
	"skillpath_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(middleware.RequestID())
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", monitoring.PrometheusHandler())

	// Public routes
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)
	}

	// Authenticated routes
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/profile", c.auth.GetProfile)
		authGroup.PUT("/user/profile", c.user.UpdateProfile)

		authGroup.POST("/roadmap", c.roadmap.Create)
		authGroup.GET("/roadmap", c.roadmap.List)
		authGroup.GET("/roadmap/:topic", c.roadmap.Get)
		authGroup.DELETE("/roadmap/:topic", c.roadmap.Delete)

		authGroup.POST("/quiz/generate", c.quiz.Generate)
		authGroup.POST("/quiz/stats", c.quiz.RecordStat)
		authGroup.GET("/quiz/stats", c.quiz.ListStats)

		authGroup.POST("/resources/generate", c.resource.Generate)

		authGroup.GET("/dashboard/stats", c.dashboard.GetStats)
	}

	// Admin routes
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.RoleAdmin))
	{
		admin.GET("/users", c.user.GetUsers)
		admin.GET("/users/:id", c.user.GetUser)
		admin.PUT("/users/:id", c.user.UpdateUser)
		admin.DELETE("/users/:id", c.user.DeleteUser)
		admin.GET("/stats", c.dashboard.GetAdminStats)
	}
}
