package api

import (
	"github.com/castela0119/Elice-Team5/internal/api/handler"
	"github.com/castela0119/Elice-Team5/internal/api/middleware"
	"github.com/castela0119/Elice-Team5/internal/config"
	"github.com/castela0119/Elice-Team5/internal/logger"
	"github.com/castela0119/Elice-Team5/internal/service"
	"github.com/gin-gonic/gin"
)

// SetupRouter configures the Gin router with all routes
func SetupRouter(
	ingestService *service.IngestService,
	libraryService *service.LibraryService,
	authService *service.AuthService,
	cfg *config.ServerConfig,
	log *logger.Logger,
) *gin.Engine {
	// Set Gin mode
	switch cfg.Mode {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	r := gin.New()

	// Add middleware
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(log))
	r.Use(middleware.CORS(middleware.CORSConfig{
		AllowedOrigins:  cfg.CORS.AllowedOrigins,
		AllowAllOrigins: cfg.CORS.AllowAllOrigins,
	}))
	r.Use(middleware.Auth(authService))

	// Create handlers
	healthHandler := handler.NewHealthHandler()
	authHandler := handler.NewAuthHandler(authService)
	videoHandler := handler.NewVideoHandler(ingestService, libraryService)

	// Health check
	r.GET("/health", healthHandler.Health)

	// API v1 routes
	v1 := r.Group("/api/v1")
	{
		v1.POST("/auth/register", authHandler.Register)

		videos := v1.Group("/videos")
		{
			videos.POST("", videoHandler.Ingest)
			videos.GET("/list", middleware.RequireAuth(), videoHandler.ListOwned)
			videos.GET("/:id", videoHandler.Get)
			videos.POST("/:id", middleware.RequireAuth(), videoHandler.Attach)
			videos.DELETE("/:id", middleware.RequireAuth(), videoHandler.Detach)
			videos.GET("/:id/keywords", videoHandler.Keywords)
			videos.GET("/:id/frequencies", videoHandler.Frequencies)
			videos.GET("/:id/slug", videoHandler.Slug)
		}
	}

	return r
}
