package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"docparser/server/monitoring"
)

// HealthHandler обработчик проверки здоровья сервиса
type HealthHandler struct {
	checker *monitoring.HealthChecker
}

// NewHealthHandler создает обработчик проверки здоровья
func NewHealthHandler(checker *monitoring.HealthChecker) *HealthHandler {
	return &HealthHandler{checker: checker}
}

// HandleHealth возвращает состояние сервиса и его компонентов
// @Summary Проверка здоровья
// @Description Возвращает healthy, degraded (журнал недоступен, распознавание работает) или unhealthy
// @Tags system
// @Produce json
// @Success 200 {object} monitoring.HealthCheckResult "Сервис работает"
// @Failure 503 {object} monitoring.HealthCheckResult "Сервис неработоспособен"
// @Router /health [get]
func (h *HealthHandler) HandleHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	result := h.checker.Check(ctx)

	statusCode := http.StatusOK
	if result.Status == monitoring.HealthStatusUnhealthy {
		statusCode = http.StatusServiceUnavailable
	}

	SendJSONResponse(c, statusCode, result)
}
