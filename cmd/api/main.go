package main

// @title Traffic Analysis Microservice API
// @version 1.0.0
// @description Frequency-based traffic analysis service for urban infrastructure planning. Analyzes recurring congestion patterns per road, decides whether infrastructure intervention is warranted, scores priority and generates costed recommendations (widening, flyovers, signal optimization) with area-level aggregation.

// @contact.name API Support
// @contact.email support@traffic-analysis-microservice.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/traffic-analysis-microservice/docs/swagger"
	"github.com/traffic-analysis-microservice/internal/config"
	httpDelivery "github.com/traffic-analysis-microservice/internal/delivery/http"
	"github.com/traffic-analysis-microservice/internal/delivery/http/handler"
	"github.com/traffic-analysis-microservice/internal/pkg/logger"
	"github.com/traffic-analysis-microservice/internal/repository/cache"
	"github.com/traffic-analysis-microservice/internal/repository/postgres"
	"github.com/traffic-analysis-microservice/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Traffic Analysis Microservice")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL
	db, err := postgres.New(&cfg.Database, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()

	// 4. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 5. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.Health(ctx); err != nil {
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}

	if err := redisClient.Health(ctx); err != nil {
		log.Fatal("Redis health check failed", zap.Error(err))
	}

	log.Info("All connections healthy")

	// 6. Initialize Repositories
	roadRepo := postgres.NewRoadRepository(db, log)
	sampleRepo := postgres.NewSampleRepository(db, log)
	cacheRepo := cache.NewCacheRepository(redisClient)

	log.Info("Repositories initialized")

	// 7. Initialize Use Cases
	analysisUC := usecase.NewAnalysisUseCase(
		roadRepo,
		sampleRepo,
		cacheRepo,
		log,
		cfg.Cache.AnalysisCacheTTL,
		cfg.Analysis.MaxConcurrentRoads,
		cfg.Analysis.SampleFetchTimeout,
	)

	log.Info("Use cases initialized")

	// 8. Initialize HTTP Handlers
	analysisHandler := handler.NewAnalysisHandler(analysisUC, log)
	healthHandler := handler.NewHealthHandler(db, redisClient, log)

	// 9. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		analysisHandler,
		healthHandler,
	)

	// 10. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 11. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel = context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
