package server

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "docparser/server/errors"
	"docparser/server/handlers"
	"docparser/server/middleware"
)

// Start запускает HTTP сервер и блокируется до его остановки
func (s *Server) Start() error {
	handler, err := s.ensureHTTPHandler()
	if err != nil {
		return err
	}

	addr := fmt.Sprintf(":%s", s.config.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	log.Printf("Starting HTTP server on %s...", s.httpServer.Addr)
	log.Printf("API доступно по адресу: http://localhost%s/api/documents", s.httpServer.Addr)

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("не удалось запустить HTTP сервер на %s: %w", s.httpServer.Addr, err)
	}

	return nil
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
	if s.httpHandler == nil {
		return nil, fmt.Errorf("httpHandler is nil")
	}

	return s.httpHandler, nil
}

func (s *Server) buildHTTPHandler() (http.Handler, error) {
	if s.service == nil {
		return nil, fmt.Errorf("documents service is not configured")
	}

	if s.config.GinMode != "" {
		gin.SetMode(s.config.GinMode)
	}

	router := gin.New()

	// Порядок важен: request ID нужен логгеру и recovery,
	// rate limit должен отсекать запросы до обработчиков.
	router.Use(middleware.GinRequestIDMiddleware())
	router.Use(middleware.GinLoggerMiddleware())
	router.Use(middleware.GinRecoveryMiddleware())
	router.Use(middleware.GinSecurityHeadersMiddleware())
	router.Use(middleware.GinCORSMiddleware())
	if s.metrics != nil {
		router.Use(middleware.GinMetricsMiddleware(s.metrics))
	}
	if s.config.GzipEnabled {
		router.Use(middleware.GinGzipMiddleware())
	}
	router.Use(middleware.GinRateLimitMiddleware(s.config.RateLimitPerSec, s.config.RateLimitBurst))

	if s.config.SwaggerEnabled {
		handlers.RegisterSwaggerRoutes(router, "localhost:"+s.config.Port)
	}

	router.GET("/health", handlers.NewHealthHandler(s.health).HandleHealth)
	if s.metrics != nil {
		router.GET("/metrics", handlers.GinHandler(s.metrics.Handler()))
	}

	api := router.Group("/api")
	handlers.NewDocumentsHandler(s.service).RegisterRoutes(api)

	router.NoRoute(func(c *gin.Context) {
		handlers.SendAppError(c, apperrors.NewNotFoundError("маршрут не найден", nil).WithContext(c.Request.URL.Path))
	})

	return router, nil
}

// ServeHTTP реализует http.Handler для тестов и вспомогательных утилит
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	handler, err := s.ensureHTTPHandler()
	if err != nil {
		http.Error(w, "server is not initialized", http.StatusInternalServerError)
		return
	}

	handler.ServeHTTP(w, r)
}

// Shutdown останавливает HTTP сервер gracefully
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}

	log.Println("Initiating graceful shutdown...")

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("ошибка остановки сервера: %w", err)
	}

	log.Println("Graceful shutdown completed")
	return nil
}
