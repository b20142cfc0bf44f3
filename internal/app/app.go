package app

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"daily_challenge_backend/internal/config"
	"daily_challenge_backend/internal/controller"
	"daily_challenge_backend/internal/repository"
	"daily_challenge_backend/internal/service"
	"daily_challenge_backend/internal/store"
	"daily_challenge_backend/pkg/database"
	"daily_challenge_backend/pkg/logger"
	"daily_challenge_backend/pkg/monitoring"
	"daily_challenge_backend/pkg/security"
	"daily_challenge_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	Store  store.Store
}

type repositories struct {
	user      *repository.UserRepository
	challenge *repository.ChallengeRepository
	progress  *repository.ProgressRepository
	session   *repository.SessionRepository
}

type services struct {
	auth       *service.AuthService
	navigation *service.NavigationService
	challenge  *service.ChallengeService
	dashboard  *service.DashboardService
	chart      *service.ChartService
	admin      *service.AdminService
	export     *service.ExportService
	seed       *service.SeedService
}

type controllers struct {
	auth      *controller.AuthController
	page      *controller.PageController
	challenge *controller.ChallengeController
	dashboard *controller.DashboardController
	admin     *controller.AdminController
	health    *controller.HealthController
}

// openStore builds the blob store the configured driver names. Memory is
// the default so the service comes up with zero external dependencies.
func openStore(cfg *config.Config) (store.Store, error) {
	switch cfg.Store.Driver {
	case "", "memory":
		return store.NewMemoryStore(), nil
	case "file":
		path := cfg.Store.Path
		if path == "" {
			path = "data/store.json"
		}
		return store.NewFileStore(path)
	case "redis":
		rdb, err := database.InitRedis(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		return store.NewRedisStore(rdb), nil
	case "database":
		db, err := database.InitDB(&cfg.Database)
		if err != nil {
			return nil, err
		}
		return store.NewDBStore(db), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

func (a *App) initRepositories(s store.Store) *repositories {
	return &repositories{
		user:      repository.NewUserRepository(s),
		challenge: repository.NewChallengeRepository(s),
		progress:  repository.NewProgressRepository(s),
		session:   repository.NewSessionRepository(s),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}
	loc := cfg.Location()

	s.auth = service.NewAuthService(repos.user, repos.progress, repos.session)
	s.navigation = service.NewNavigationService(repos.session)
	s.challenge = service.NewChallengeService(repos.challenge, repos.progress, service.NewCodeRunner(), loc)
	s.dashboard = service.NewDashboardService(repos.progress, loc)
	s.chart = service.NewChartService()
	s.admin = service.NewAdminService(repos.user, repos.challenge, repos.progress, repos.session)
	s.export = service.NewExportService(repos.user, cfg)
	s.seed = service.NewSeedService(repos.user, repos.challenge, repos.progress, rand.New(rand.NewSource(time.Now().UnixNano())))

	return s
}

func (a *App) initControllers(s *services, st store.Store) *controllers {
	return &controllers{
		auth:      controller.NewAuthController(s.auth),
		page:      controller.NewPageController(s.navigation),
		challenge: controller.NewChallengeController(s.challenge),
		dashboard: controller.NewDashboardController(s.dashboard, s.chart),
		admin:     controller.NewAdminController(s.admin, s.export, s.chart),
		health:    controller.NewHealthController(st),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
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

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	st, err := openStore(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to initialize store", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		Store:  st,
	}

	repos := app.initRepositories(st)
	services := app.initServices(repos, cfg)
	controllers := app.initControllers(services, st)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("daily-challenge", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos)

	if cfg.Storage.Type == "local" {
		router.Static("/exports", cfg.Storage.LocalPath)
	}

	if err := services.seed.Seed(context.Background()); err != nil {
		logger.Log.Fatal("Failed to seed demo data", zap.Error(err))
	}

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
