package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"skillpath_backend/internal/config"
	"skillpath_backend/internal/controller"
	"skillpath_backend/internal/repository"
	"skillpath_backend/internal/service"
	"skillpath_backend/pkg/configwatcher"
	"skillpath_backend/pkg/database"
	"skillpath_backend/pkg/logger"
	"skillpath_backend/pkg/monitoring"
	"skillpath_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client
}

type repositories struct {
	user     *repository.UserRepository
	roadmap  *repository.RoadmapRepository
	quizStat *repository.QuizStatRepository
}

type services struct {
	auth       *service.AuthService
	user       *service.UserService
	ai         *service.AIService
	generation *service.GenerationService
	roadmap    *service.RoadmapService
	quizStat   *service.QuizStatService
	dashboard  *service.DashboardService
}

type controllers struct {
	auth      *controller.AuthController
	user      *controller.UserController
	roadmap   *controller.RoadmapController
	quiz      *controller.QuizController
	resource  *controller.ResourceController
	dashboard *controller.DashboardController
	health    *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:     repository.NewUserRepository(db),
		roadmap:  repository.NewRoadmapRepository(db),
		quizStat: repository.NewQuizStatRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	s := &services{}

	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user)

	// The AI configuration is injected here once; nothing reads the
	// environment after startup.
	s.ai = service.NewAIService(cfg.AI)
	s.generation = service.NewGenerationService(s.ai, repos.roadmap)
	s.roadmap = service.NewRoadmapService(repos.roadmap)

	s.dashboard = service.NewDashboardService(repos.user, repos.roadmap, repos.quizStat, rdb)
	s.quizStat = service.NewQuizStatService(repos.quizStat, s.dashboard)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:      controller.NewAuthController(s.auth),
		user:      controller.NewUserController(s.user),
		roadmap:   controller.NewRoadmapController(s.generation, s.roadmap),
		quiz:      controller.NewQuizController(s.generation, s.quizStat),
		resource:  controller.NewResourceController(s.generation),
		dashboard: controller.NewDashboardController(s.dashboard),
		health:    controller.NewHealthController(db),
	}
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg.Server.Mode)
	logger.Log.Info("Logger initialized")

	gin.SetMode(cfg.Server.Mode)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	ctrls := app.initControllers(services, db)

	monitoring.Init()

	router := gin.New()
	router.Use(gin.Recovery())
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("skillpath-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, ctrls, cfg)

	// Hot-reload the AI credentials so keys can be rotated without a restart.
	go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
		services.ai.UpdateConfig(newCfg.AI)
		logger.Log.Info("AI configuration reloaded",
			zap.String("base_url", newCfg.AI.BaseURL),
			zap.String("model", newCfg.AI.Model))
	})

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
