// Package api exposes the triage engine over HTTP.
package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/health-triage-server/internal/domain"
	"github.com/health-triage-server/internal/knowledge"
	"github.com/health-triage-server/internal/middleware"
	"github.com/health-triage-server/internal/service"
	"github.com/health-triage-server/pkg/predictor"
)

// Server represents the HTTP server.
type Server struct {
	configManager domain.ConfigManager
	triage        *service.TriageService
	kb            *knowledge.Base
	history       domain.HistoryStore
	cache         *predictor.CachedPredictor
	logger        *logrus.Logger
	router        *gin.Engine
	server        *http.Server
	rateLimiter   *middleware.RateLimiter
}

// NewServer creates a new HTTP server instance. history and cache may be
// nil; the corresponding endpoints then report unavailability.
func NewServer(
	configManager domain.ConfigManager,
	triage *service.TriageService,
	kb *knowledge.Base,
	history domain.HistoryStore,
	cache *predictor.CachedPredictor,
	logger *logrus.Logger,
) *Server {
	cfg := configManager.GetConfig()

	if cfg.Logging.Level == "debug" {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.AuditLogger())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())
	router.Use(middleware.CorrelationID())
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RequestTimeout(30 * time.Second))
	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		rateLimiter = middleware.NewRateLimiter(cfg.RateLimit)
		router.Use(rateLimiter.Middleware())
	}

	server := &Server{
		configManager: configManager,
		triage:        triage,
		kb:            kb,
		history:       history,
		cache:         cache,
		logger:        logger,
		router:        router,
		rateLimiter:   rateLimiter,
	}

	server.setupRoutes()

	return server
}

// Start starts the HTTP server and blocks until the context is done,
// then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	cfg := s.configManager.GetServerConfig()
	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)

	s.server = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.WithField("addr", addr).Info("HTTP server starting")
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	return s.server.Shutdown(shutdownCtx)
}

// Router exposes the gin engine, used by handler tests.
func (s *Server) Router() *gin.Engine {
	return s.router
}

// setupRoutes configures the API routes.
func (s *Server) setupRoutes() {
	s.router.GET("/health", s.handleHealth)

	v1 := s.router.Group("/api/v1")
	{
		v1.POST("/triage", s.handleTriage)
		v1.GET("/symptoms", s.handleSymptoms)
		v1.GET("/assessments", s.handleListAssessments)
		v1.GET("/assessments/:id", s.handleGetAssessment)
		v1.GET("/cache/stats", s.handleCacheStats)
	}
}

// corsMiddleware adds CORS headers to responses.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, Authorization, X-Correlation-ID")
		c.Header("Access-Control-Expose-Headers", "Content-Length")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
