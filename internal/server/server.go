package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/ridwanfathin/menu-price-insights/internal/config"
	"github.com/ridwanfathin/menu-price-insights/internal/middleware"
	"github.com/ridwanfathin/menu-price-insights/internal/model"
)

const shutdownTimeout = 10 * time.Second

// Pinger reports whether a backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server represents the HTTP server for the pricing analytics service
type Server struct {
	router     *gin.Engine
	httpServer *http.Server
	config     *config.Config
	logger     *zap.Logger
	db         Pinger
}

// NewServer creates and configures a new server instance. db may be nil.
func NewServer(cfg *config.Config, logger *zap.Logger, db Pinger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(cors.New(corsConfig(cfg.CORSAllowedOrigins)))
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestResponseLogger(middleware.LoggerConfig{
		Logger:    logger.Named("http"),
		LogBodies: cfg.LogBodies,
	}))

	server := &Server{
		router: router,
		config: cfg,
		logger: logger,
		db:     db,
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Port),
			Handler:      router,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
	}

	server.setupRoutes()

	return server
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}

	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
		return cfg
	}

	cfg.AllowOrigins = origins
	cfg.AllowCredentials = true
	return cfg
}

// GetRouter returns the gin router instance
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}

// APIGroup returns the versioned route group
func (s *Server) APIGroup() *gin.RouterGroup {
	return s.router.Group("/v1")
}

// setupRoutes configures all application routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.health)

	// API documentation endpoints
	// Access the Swagger UI at http://localhost:8080/api-docs/index.html
	swaggerHandler := ginSwagger.WrapHandler(swaggerFiles.Handler)
	s.router.GET("/api-docs/*any", swaggerHandler)

	s.router.GET("/api-docs", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/api-docs/index.html")
	})
}

func (s *Server) health(c *gin.Context) {
	if s.db == nil {
		c.JSON(http.StatusOK, model.HealthResponse{Status: "ok"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := s.db.Ping(ctx); err != nil {
		s.logger.Warn("health check: database unreachable", zap.Error(err))
		c.JSON(http.StatusServiceUnavailable, model.HealthResponse{Status: "degraded", Database: "unreachable"})
		return
	}

	c.JSON(http.StatusOK, model.HealthResponse{Status: "ok", Database: "ok"})
}

// Start begins listening for requests and handles graceful shutdown
func (s *Server) Start() error {
	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info(fmt.Sprintf("Server listening on port %d", s.config.Port))
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("failed to start server: %w", err)
	case <-quit:
	}

	s.logger.Info("Shutting down server...")

	if err := s.Shutdown(); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	s.logger.Info("Server exited gracefully")
	return nil
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return s.httpServer.Shutdown(ctx)
}
