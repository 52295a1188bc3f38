package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/code1iners/ce1pers/internal/app/health"
	"github.com/code1iners/ce1pers/internal/app/middleware"
	"github.com/code1iners/ce1pers/internal/app/routes"
	"github.com/code1iners/ce1pers/internal/cfg"
	"github.com/code1iners/ce1pers/internal/service/login"
	"github.com/code1iners/ce1pers/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Server is the HTTP server that handles all incoming requests.
// It acts as the transport layer, delegating all business logic to the service layer.
type Server struct {
	config     *cfg.Config
	provider   *Provider
	httpServer *http.Server
	router     *gin.Engine
	logger     logger.Logger
}

// NewServer creates a new HTTP server with all dependencies provided by the Provider.
func NewServer(provider *Provider) *Server {
	s := &Server{
		config:   provider.Config,
		provider: provider,
		logger:   provider.Infra.Logger,
	}

	s.setupRoutes()
	s.setupHTTPServer()

	return s
}

// setupRoutes configures all HTTP routes for the application.
func (s *Server) setupRoutes() {
	if s.config.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(s.config.Observability.ServiceName))
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggingMiddleware(s.logger))

	// Health and infrastructure routes
	var cacheChecker health.CacheChecker
	if s.provider.Infra.Cache != nil {
		cacheChecker = s.provider.Infra.Cache
	}
	healthChecker := health.NewChecker(cacheChecker, s.logger)
	routes.SetupInfra(r, healthChecker, s.provider.Infra.MetricsHandler)

	routes.SetupLogin(r, login.NewHandler(s.provider.Services.Login))

	s.router = r
}

// setupHTTPServer creates the underlying HTTP server.
func (s *Server) setupHTTPServer() {
	s.httpServer = &http.Server{
		Addr:         ":" + s.config.HTTPServer.Port,
		Handler:      s.router,
		ReadTimeout:  s.config.HTTPServer.ReadTimeout,
		WriteTimeout: s.config.HTTPServer.WriteTimeout,
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the HTTP server and blocks until it shuts down.
func (s *Server) Run() error {
	s.logger.Info(context.Background(), "HTTP server listening",
		logger.Field{Key: "addr", Value: s.httpServer.Addr})

	err := s.httpServer.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
// Infrastructure resources are managed separately by the Provider.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info(ctx, "Shutting down HTTP server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("HTTP server shutdown: %w", err)
		}
	}

	s.logger.Info(ctx, "HTTP server shutdown complete")
	return nil
}
