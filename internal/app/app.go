package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/wallmod/core/internal/config"
	"github.com/wallmod/core/internal/middleware"
	"github.com/wallmod/core/internal/pkg/blobstore"
	"go.uber.org/zap"
)

// App holds all application dependencies.
type App struct {
	cfg    *config.Config
	router *gin.Engine
	logger *zap.Logger
}

// New initializes the application: config → blob store → clients → routes.
func New(logger *zap.Logger, cfg *config.Config) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}

	if cfg.IsDev() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}
	if len(cfg.AllowedOrigins) > 0 && !cfg.IsDev() {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowOriginFunc = func(string) bool { return true }
	}
	router.Use(cors.New(corsConfig))

	blob, err := buildBlobStore(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("blob store: %w", err)
	}

	app := &App{cfg: cfg, router: router, logger: logger}
	app.registerRoutes(blob)

	return app, nil
}

// buildBlobStore picks S3 when configured; development deployments without a
// bucket fall back to the in-memory store.
func buildBlobStore(cfg *config.Config, logger *zap.Logger) (blobstore.Blob, error) {
	if cfg.S3.Bucket == "" && cfg.IsDev() {
		logger.Warn("no s3 bucket configured, using in-memory blob store")
		return blobstore.NewMemory(), nil
	}
	return blobstore.NewS3(cfg.S3)
}

// Addr returns the listen address.
func (a *App) Addr() string { return fmt.Sprintf(":%d", a.cfg.Port) }

// Router returns the HTTP handler.
func (a *App) Router() http.Handler { return a.router }
