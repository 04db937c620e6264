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

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/meetingmind-team/meetingmind/pkg/validator"

	"github.com/meetingmind-team/meetingmind/internal/adapter/handler"
	"github.com/meetingmind-team/meetingmind/internal/adapter/repository"
	"github.com/meetingmind-team/meetingmind/internal/infrastructure/cache"
	"github.com/meetingmind-team/meetingmind/internal/infrastructure/external/gemini"
	"github.com/meetingmind-team/meetingmind/internal/infrastructure/storage"
	"github.com/meetingmind-team/meetingmind/internal/usecase/analysis"
	meetingUsecase "github.com/meetingmind-team/meetingmind/internal/usecase/meeting"
	"github.com/meetingmind-team/meetingmind/internal/usecase/realtime"
	summaryUsecase "github.com/meetingmind-team/meetingmind/internal/usecase/summary"
	"github.com/meetingmind-team/meetingmind/pkg/config"
)

// @title           MeetingMind API
// @version         1.0
// @description     AI-powered real-time meeting insights backend

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		AllowCredentials: true,
	}))

	log.Println("🔧 Initializing dependencies...")

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize analysis cache
	var cacheStore cache.Store
	switch cfg.Cache.Backend {
	case "redis":
		log.Println("📦 Connecting to Redis...")
		redisStore, err := cache.NewRedisStore(cfg.GetRedisAddr(), cfg.Redis.Password, cfg.Redis.DB, logger)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisStore.Close()
		cacheStore = redisStore
	default:
		log.Println("📦 Using in-memory analysis cache...")
		cacheStore = cache.NewMemoryStore()
	}

	// Initialize AI components
	log.Println("🤖 Initializing AI components...")
	geminiClient := gemini.NewClient(&cfg.Gemini)
	analysisService := analysis.NewService(geminiClient, cacheStore, cfg.Cache.TTL, logger)

	// Initialize meeting store
	log.Println("⚙️  Initializing meeting store...")
	meetingRepo := repository.NewMeetingRepository()

	// Initialize export storage
	var uploader summaryUsecase.Uploader
	if cfg.Storage.Enabled {
		log.Println("🗄️  Connecting to object storage...")
		minioClient, err := storage.NewMinIOClient(&cfg.Storage)
		if err != nil {
			log.Fatalf("Failed to initialize object storage: %v", err)
		}
		uploader = minioClient
	} else {
		log.Println("🗄️  Object storage disabled; exports returned inline only")
	}

	// Initialize services
	log.Println("✨ Initializing services...")
	meetingService := meetingUsecase.NewService(meetingRepo, analysisService, logger)
	summaryService := summaryUsecase.NewService(meetingRepo, geminiClient, uploader, logger)

	// Initialize realtime layer
	log.Println("🔌 Initializing realtime layer...")
	registry := realtime.NewRegistry(logger)
	rtRouter := realtime.NewRouter(registry, meetingRepo, analysisService, logger)

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	meetingHandler := handler.NewMeetingHandler(meetingService, summaryService, logger)
	realtimeHandler := handler.NewRealtimeHandler(registry, logger)
	wsHandler := handler.NewWebSocketHandler(registry, rtRouter, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, meetingHandler, realtimeHandler, wsHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
