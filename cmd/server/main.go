package main

import (
	"context"
	"log"

	"go.uber.org/zap"

	_ "github.com/ridwanfathin/menu-price-insights/docs"
	"github.com/ridwanfathin/menu-price-insights/internal/config"
	"github.com/ridwanfathin/menu-price-insights/internal/database"
	"github.com/ridwanfathin/menu-price-insights/internal/handler"
	"github.com/ridwanfathin/menu-price-insights/internal/history"
	"github.com/ridwanfathin/menu-price-insights/internal/logging"
	"github.com/ridwanfathin/menu-price-insights/internal/middleware"
	"github.com/ridwanfathin/menu-price-insights/internal/pricing"
	"github.com/ridwanfathin/menu-price-insights/internal/repository"
	"github.com/ridwanfathin/menu-price-insights/internal/server"
	"github.com/ridwanfathin/menu-price-insights/internal/service"
)

// @title Menu Price Insights API
// @version 1.0
// @description Competitor price comparison, recommendations, trends and market insights for restaurant menus.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	// Load configuration
	log.Println("Loading configuration...")
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(cfg.LogFormat, cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	// Initialize database
	logger.Info("Connecting to database...")
	db, err := database.NewPostgresDB(context.Background(), cfg.DatabaseURL, cfg.DBMaxConns)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	dishRepo := repository.NewPostgresDishRepository(db.GetPool())
	competitorRepo := repository.NewPostgresCompetitorRepository(db.GetPool())
	alertRepo := repository.NewPostgresAlertRepository(db.GetPool())

	var historySource pricing.HistorySource
	switch cfg.HistorySource {
	case config.HistorySourcePostgres:
		historySource = repository.NewPostgresPriceHistoryRepository(db.GetPool())
	case config.HistorySourceAPI:
		historySource = history.NewClient(cfg.HistoryAPIURL, cfg.HistoryAPITimeout)
	}
	logger.Info("Price history source configured", zap.String("source", cfg.HistorySource))

	// Create services
	pricingService := service.NewPricingService(service.PricingServiceConfig{
		Dishes:         dishRepo,
		Competitors:    competitorRepo,
		Alerts:         alertRepo,
		History:        historySource,
		HistoryMaxDays: cfg.HistoryMaxDays,
		MaxWorkers:     cfg.MaxWorkers,
		Logger:         logger.Named("pricing"),
	})
	authService := service.NewAuthService(service.AuthServiceConfig{
		JWTSecret: cfg.JWTSecret,
	})

	// Create and configure server
	logger.Info("Configuring server...")
	appServer := server.NewServer(cfg, logger, db)

	pricingHandler := handler.NewPricingHandler(pricingService, logger.Named("handler"))
	pricingHandler.RegisterPricingRoutes(appServer.APIGroup(), middleware.AuthMiddleware(authService))

	// Start server (blocking call)
	if err := appServer.Start(); err != nil {
		logger.Error("Server error", zap.Error(err))
		return
	}

	logger.Info("Server shutdown complete")
}
