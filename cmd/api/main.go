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

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	_ "github.com/huangweilong/personal-website-backend/docs"
	"github.com/huangweilong/personal-website-backend/internal/config"
	"github.com/huangweilong/personal-website-backend/internal/handlers"
	"github.com/huangweilong/personal-website-backend/internal/logger"
	"github.com/huangweilong/personal-website-backend/internal/metrics"
	"github.com/huangweilong/personal-website-backend/internal/middleware"
	"github.com/huangweilong/personal-website-backend/internal/repositories"
	"github.com/huangweilong/personal-website-backend/internal/services"
	"github.com/huangweilong/personal-website-backend/internal/storage"
	"github.com/prometheus/client_golang/prometheus"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"
)

const maxRequestSize = 1 * 1024 * 1024 // 1MB, the API only accepts small JSON bodies

const connectTimeout = 10 * time.Second

// @title Personal Website API
// @version 1.0
// @description Media catalog and contact intake API for the personal website

// @host localhost:3001
// @BasePath /
func main() {
	// Load configuration; a missing MONGODB_URI is the one fatal condition
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting personal website API server")

	// Create the store and attempt the connection. A failed connection is
	// not fatal: the server starts and data endpoints return 503 until the
	// deployment becomes reachable and the process is restarted.
	store, err := storage.New(cfg.Mongo.URI, cfg.Mongo.DBName, logger.Logger)
	if err != nil {
		logger.Logger.Fatal("Failed to create store", zap.Error(err))
	}

	connectCtx, cancelConnect := context.WithTimeout(context.Background(), connectTimeout)
	if err := store.Connect(connectCtx); err != nil {
		logger.Logger.Warn("MongoDB is not reachable; data endpoints will return 503",
			zap.Error(err))
	} else if err := store.EnsureIndexes(connectCtx); err != nil {
		logger.Logger.Warn("Failed to ensure indexes", zap.Error(err))
	}
	cancelConnect()

	// Initialize metrics
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	// Initialize repositories
	mediaRepo := repositories.NewMediaRepository(store, logger.Logger)
	messageRepo := repositories.NewMessageRepository(store, logger.Logger)

	// Initialize services
	mediaService := services.NewMediaService(mediaRepo, logger.Logger)
	messageService := services.NewMessageService(messageRepo, collector, logger.Logger)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(store, logger.Logger)
	mediaHandler := handlers.NewMediaHandler(mediaService, logger.Logger)
	messageHandler := handlers.NewMessageHandler(messageService, logger.Logger)

	// Setup router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(middleware.RequestIDMiddleware)
	r.Use(middleware.LoggerMiddleware(logger.Logger))
	r.Use(middleware.RecoveryMiddleware(logger.Logger))
	r.Use(middleware.CORSMiddleware(cfg.CORS.AllowedOrigins))
	r.Use(middleware.MetricsMiddleware(collector))
	r.Use(httprate.LimitByIP(100, time.Minute))
	r.Use(middleware.RequestSizeLimitMiddleware(maxRequestSize))

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://localhost:%d/swagger/doc.json", cfg.Server.Port)),
	))

	// Prometheus metrics
	r.Method(http.MethodGet, "/metrics", metrics.Handler(registry))

	// API routes
	healthHandler.RegisterRoutes(r)
	mediaHandler.RegisterRoutes(r)
	messageHandler.RegisterRoutes(r)

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
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
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

	if err := store.Disconnect(ctx); err != nil {
		logger.Logger.Error("Failed to close MongoDB connection", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}
