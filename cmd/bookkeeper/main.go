package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/ledgercraft/bookkeeper/internal/adapters/database/mongodb"
	"github.com/ledgercraft/bookkeeper/internal/core/services"
	"github.com/ledgercraft/bookkeeper/internal/dto"
	"github.com/ledgercraft/bookkeeper/internal/handlers"
	"github.com/ledgercraft/bookkeeper/internal/middleware"
	"github.com/ledgercraft/bookkeeper/pkg/config"
	"github.com/ledgercraft/bookkeeper/pkg/database"
)

// @title Bookkeeper API
// @version 1.0
// @description Double-entry bookkeeping service: balanced entries, journal voiding, approval cascade.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx := context.Background()

	client, err := database.NewMongoClient(ctx, cfg.MongoURL)
	if err != nil {
		logger.Error("Failed to connect to MongoDB", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.CloseMongoClient(ctx, client)

	ledgerRepo := mongodb.NewMongoLedgerRepository(client.Database(cfg.MongoDB))
	if err := ledgerRepo.EnsureIndexes(ctx); err != nil {
		logger.Error("Failed to create indexes", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("MongoDB repository initialized", slog.String("database", cfg.MongoDB))

	bookService := services.NewBookService(ledgerRepo)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := dto.RegisterValidators(); err != nil {
		logger.Error("Failed to register validators", slog.String("error", err.Error()))
		os.Exit(1)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit format", slog.String("rate_limit", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(memory.NewStore(), rate)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, bookService)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
