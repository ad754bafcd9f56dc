package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dynamolab/dl-course-site/docs"
	"github.com/dynamolab/dl-course-site/internal/config"
	"github.com/dynamolab/dl-course-site/internal/handlers"
	"github.com/dynamolab/dl-course-site/internal/logger"
	"github.com/dynamolab/dl-course-site/internal/middleware"
	"github.com/dynamolab/dl-course-site/internal/site"
	"github.com/dynamolab/dl-course-site/internal/storage"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

// @title Deep Learning Course Site API
// @version 1.0
// @description Read-only API over the module content of the Deep Learning course site

// @contact.name DYNAMO Lab

// @license.name MIT

// @host localhost:8080
// @BasePath /
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.Format); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting course site server")

	// Load content and build the read side
	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 30*time.Second)
	s, err := site.Load(loadCtx, cfg, logger.Logger)
	cancelLoad()
	if err != nil {
		logger.Logger.Fatal("Failed to load site", zap.Error(err))
	}
	defer s.Close()

	// Initialize storage
	assetStorage := storage.NewLocalStorage(cfg.Site.AssetsDir)

	// Initialize handlers
	moduleHandler := handlers.NewModuleHandler(s.Service, s.Renderer, logger.Logger)
	healthHandler := handlers.NewHealthHandler(s.Registry, logger.Logger)
	assetHandler := handlers.NewAssetHandler(assetStorage, s.Base, moduleHandler.NotFound, logger.Logger)

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggerMiddleware(logger.Logger))
	r.Use(middleware.RecoveryMiddleware(logger.Logger))
	r.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(httprate.LimitByIP(cfg.Server.RateLimitPerMinute, time.Minute))
	r.Use(middleware.ReadOnlyMiddleware)
	r.Use(chimiddleware.GetHead)

	// Swagger documentation
	docs.SwaggerInfo.Host = fmt.Sprintf("localhost:%d", cfg.Server.Port)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	// Pages, API and assets, at the root and under the base path
	handlers.MountSite(r, s.Base, moduleHandler, healthHandler, assetHandler)

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server starting",
			zap.Int("port", cfg.Server.Port),
			zap.String("base_path", s.Base.String()),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}
