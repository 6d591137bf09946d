package main

import (
	"net/http"

	"delivery-marketplace-api/blobstore"
	"delivery-marketplace-api/config"
	"delivery-marketplace-api/handlers"
	"delivery-marketplace-api/routes"
	"delivery-marketplace-api/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	// Entity store: in-memory by default, SQLite in document-store mode
	var store storage.Store
	switch cfg.StorageDriver {
	case "sqlite":
		gs, err := storage.NewGormStore(cfg.SQLitePath)
		if err != nil {
			logger.Fatal("Failed to open database", zap.Error(err), zap.String("path", cfg.SQLitePath))
		}
		store = gs
		logger.Info("Using SQLite store", zap.String("path", cfg.SQLitePath))
	default:
		store = storage.NewMemoryStore()
		logger.Info("Using in-memory store")
	}

	var blobs blobstore.BlobStore
	if cfg.MinioEndpoint != "" {
		ms, err := blobstore.NewMinioStore(cfg.MinioEndpoint, cfg.MinioAccessKey, cfg.MinioSecretKey, cfg.MinioBucket, cfg.MinioUseSSL)
		if err != nil {
			logger.Fatal("Failed to connect to object storage", zap.Error(err))
		}
		blobs = ms
		logger.Info("Uploads enabled", zap.String("endpoint", cfg.MinioEndpoint), zap.String("bucket", cfg.MinioBucket))
	}

	h := handlers.New(store, blobs, logger)

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Delivery Marketplace API",
			"version": "1.0.0",
		})
	})

	routes.SetupRoutes(r, h)

	logger.Info("Server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
