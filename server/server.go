package server

import (
	"net/http"
	"sync"

	"docparser/internal/config"
	"docparser/internal/domain/documents"
	"docparser/server/monitoring"
)

// Server HTTP сервер распознавания документов
type Server struct {
	config  *config.Config
	service documents.Service
	metrics *monitoring.Metrics
	health  *monitoring.HealthChecker

	httpServer *http.Server

	handlerOnce    sync.Once
	httpHandler    http.Handler
	handlerInitErr error
}

// NewServer создает сервер. metrics и health могут быть nil.
func NewServer(cfg *config.Config, service documents.Service, metrics *monitoring.Metrics, health *monitoring.HealthChecker) *Server {
	if health == nil {
		health = monitoring.NewHealthChecker(Version)
	}
	return &Server{
		config:  cfg,
		service: service,
		metrics: metrics,
		health:  health,
	}
}

// Version версия сервиса, подставляется при сборке через -ldflags
var Version = "dev"
