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

	"github.com/castela0119/Elice-Team5/internal/api"
	"github.com/castela0119/Elice-Team5/internal/config"
	"github.com/castela0119/Elice-Team5/internal/inference"
	"github.com/castela0119/Elice-Team5/internal/logger"
	"github.com/castela0119/Elice-Team5/internal/repository"
	"github.com/castela0119/Elice-Team5/internal/service"
	"github.com/castela0119/Elice-Team5/internal/storage"
)

func main() {
	// Load configuration
	// Support CONFIG_PATH environment variable for production deployments
	configPath := os.Getenv("CONFIG_PATH")
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	appLogger := logger.New(&logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	logger.SetDefaultLogger(appLogger)
	defer logger.Sync()

	// Initialize database
	db, err := repository.InitDB(&cfg.Database)
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to initialize database")
	}

	// Initialize repositories
	videoRepo := repository.NewVideoRepository(db)
	scriptRepo := repository.NewScriptRepository(db)
	keywordRepo := repository.NewKeywordRepository(db)
	frequencyRepo := repository.NewFrequencyRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Initialize inference engine client
	engine := inference.NewClient(&inference.Config{
		BaseURL: cfg.Inference.BaseURL,
		APIKey:  cfg.Inference.APIKey,
		Timeout: cfg.Inference.Timeout,
	})

	// Optional thumbnail mirroring into object storage
	var thumbnails *service.ThumbnailService
	if cfg.Thumbnails.Mirror {
		objectStorage, err := storage.NewS3Storage(&storage.S3Config{
			Endpoint:  cfg.Thumbnails.Endpoint,
			AccessKey: cfg.Thumbnails.AccessKey,
			SecretKey: cfg.Thumbnails.SecretKey,
			UseSSL:    cfg.Thumbnails.UseSSL,
			Bucket:    cfg.Thumbnails.Bucket,
			Region:    cfg.Thumbnails.Region,
			PublicURL: cfg.Thumbnails.PublicURL,
		})
		if err != nil {
			appLogger.WithError(err).Fatal("Failed to initialize thumbnail storage")
		}
		if err := objectStorage.EnsureBucket(context.Background()); err != nil {
			appLogger.WithError(err).Fatal("Failed to ensure thumbnail bucket")
		}
		thumbnails = service.NewThumbnailService(objectStorage, appLogger)
	}

	// Initialize services
	ingestService := service.NewIngestService(
		videoRepo, scriptRepo, keywordRepo, frequencyRepo,
		engine, thumbnails, appLogger,
	)
	libraryService := service.NewLibraryService(videoRepo, keywordRepo, frequencyRepo)
	authService := service.NewAuthService(userRepo)

	// Setup router
	router := api.SetupRouter(ingestService, libraryService, authService, &cfg.Server, appLogger)

	// Create HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		appLogger.WithField("port", cfg.Server.Port).Info("Starting API server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.WithError(err).Fatal("Server forced to shutdown")
	}

	appLogger.Info("Server exited")
}
