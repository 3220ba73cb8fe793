package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"workout-catalog/config"
	deliveryHttp "workout-catalog/internal/delivery/http"
	"workout-catalog/internal/delivery/http/handler"
	"workout-catalog/internal/delivery/http/middleware"
	"workout-catalog/internal/infrastructure/cache"
	"workout-catalog/internal/infrastructure/database"
	"workout-catalog/internal/repository"
	"workout-catalog/internal/service"
	"workout-catalog/internal/usecase"
	"workout-catalog/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New loads configuration and opens the database and, when configured, redis.
func New() (*App, error) {
	app := &App{}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	app.Log = setupLogger(cfg.App)
	app.Log.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.IsDevelopment())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	// Initialize Redis; nil when REDIS_HOST is empty
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	return app, nil
}

// setupLogger configures the standard logrus logger and returns it
func setupLogger(cfg config.AppConfig) *logrus.Logger {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
	if cfg.IsDevelopment() {
		logrus.SetLevel(logrus.DebugLevel)
	}
	return logrus.StandardLogger()
}

func (app *App) cacheService() service.WorkoutCacheService {
	return service.NewWorkoutCacheService(app.RedisClient, app.Log, app.Config.Redis.CacheTTL)
}

// initializeServer creates and configures the HTTP server
func (app *App) initializeServer() *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize repositories
	workoutRepo := repository.NewWorkoutRepository(app.DB)

	// Initialize usecases
	workoutUsecase := usecase.NewWorkoutUsecase(app.Log, workoutRepo, app.cacheService(), app.Config.App.PageSize)

	// Initialize handlers
	workoutHandler := handler.NewWorkoutHandler(workoutUsecase, customValidator)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware(app.Config.App.CORSOrigin)
	requestIDMiddleware := middleware.NewRequestIDMiddleware()
	loggerMiddleware := middleware.NewLoggerMiddleware(app.Log)

	// Initialize router
	router := deliveryHttp.NewRouter(workoutHandler, corsMiddleware, requestIDMiddleware, loggerMiddleware)

	return &http.Server{
		Addr:              fmt.Sprintf(":%s", app.Config.App.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() error {
	app.Server = app.initializeServer()

	errCh := make(chan error, 1)
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	return app.waitForShutdown(errCh)
}

// waitForShutdown blocks until an interrupt signal is received or the server fails
func (app *App) waitForShutdown(errCh <-chan error) error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-errCh:
		app.Close()
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}

	app.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	app.Log.Info("Server shutdown complete")
	return nil
}

// Migrate applies (or with down, reverts) the schema migrations
func (app *App) Migrate(down bool) error {
	return database.Migrate(app.DB, down)
}

// Seed inserts count generated workouts and returns the catalog size
func (app *App) Seed(ctx context.Context, count int) (int64, error) {
	seedService := service.NewSeedService(app.Log, repository.NewWorkoutRepository(app.DB), app.cacheService())
	return seedService.Seed(ctx, count)
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
