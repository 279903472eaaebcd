package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/janm-comcon/stdtext/server/handlers"
	"github.com/janm-comcon/stdtext/server/middleware"
)

// healthLogInterval is how often the running server logs its aggregated
// health state.
const healthLogInterval = 5 * time.Minute

// Start runs the HTTP server until it is shut down. It blocks; a clean
// Shutdown returns nil.
func (s *Server) Start() error {
	handler, err := s.ensureHTTPHandler()
	if err != nil {
		return err
	}

	addr := fmt.Sprintf(":%s", s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	s.healthLogStop = make(chan struct{})
	go s.logHealthPeriodically(healthLogInterval)

	slog.Info("server starting",
		"addr", addr,
		"version", Version,
		"swagger", fmt.Sprintf("http://localhost%s/swagger/index.html", addr),
	)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

func (s *Server) logHealthPeriodically(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.monitoringService.HealthChecker().LogHealthStatus()
		case <-s.healthLogStop:
			return
		}
	}
}

func (s *Server) ensureHTTPHandler() (http.Handler, error) {
	s.handlerOnce.Do(func() {
		handler, err := s.buildHTTPHandler()
		if err != nil {
			s.handlerInitErr = err
			return
		}
		s.httpHandler = handler
	})

	if s.handlerInitErr != nil {
		return nil, s.handlerInitErr
	}
	return s.httpHandler, nil
}

func (s *Server) buildHTTPHandler() (http.Handler, error) {
	// Release mode unless GIN_MODE overrides it.
	if ginMode := os.Getenv("GIN_MODE"); ginMode == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.GinRequestIDMiddleware())
	router.Use(middleware.GinCORSMiddleware())
	router.Use(middleware.GinGzipMiddleware())
	router.Use(middleware.GinLoggerMiddleware())
	router.Use(middleware.GinRequestMetricsMiddleware(s.requestMetrics))
	router.Use(middleware.GinRecoveryMiddleware())

	handlers.RegisterSwaggerRoutes(router)
	s.registerGinHandlers(router)

	return router, nil
}

// registerGinHandlers registers every API route.
func (s *Server) registerGinHandlers(router *gin.Engine) {
	// Probe endpoints outside the API group.
	healthChecker := s.monitoringService.HealthChecker()
	router.GET("/health/live", gin.WrapF(healthChecker.LivenessHandler()))
	router.GET("/health/ready", gin.WrapF(healthChecker.ReadinessHandler()))

	api := router.Group("/api")
	{
		api.GET("/health", s.monitoringHandler.HandleHealth)
		api.GET("/monitoring/errors", s.monitoringHandler.HandleErrorMetrics)
		api.GET("/monitoring/requests", s.monitoringHandler.HandleRequestMetrics)

		api.POST("/normalize", s.normalizationHandler.HandleNormalize)
		api.POST("/normalize/debug", s.normalizationHandler.HandleNormalizeDebug)
		api.POST("/spelling", s.spellingHandler.HandleSpelling)
		api.POST("/similar", s.similarityHandler.HandleSimilar)

		artifactsAPI := api.Group("/artifacts")
		{
			artifactsAPI.POST("/reload", s.artifactsHandler.HandleReload)
			artifactsAPI.GET("/status", s.artifactsHandler.HandleStatus)
		}
	}
}

// ServeHTTP implements http.Handler for tests and embedding.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	handler, err := s.ensureHTTPHandler()
	if err != nil {
		http.Error(w, "server is not initialized", http.StatusInternalServerError)
		return
	}
	handler.ServeHTTP(w, r)
}

// Shutdown stops the HTTP server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}

	slog.Info("initiating graceful shutdown")

	if s.healthLogStop != nil {
		close(s.healthLogStop)
		s.healthLogStop = nil
	}

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	slog.Info("graceful shutdown completed")
	return nil
}
