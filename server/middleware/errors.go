package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	apperrors "docparser/server/errors"
)

// AbortWithAppError прерывает цепочку обработчиков и отвечает JSON ошибкой.
// Пользователь видит только UserMessage, вложенная ошибка уходит в лог.
func AbortWithAppError(c *gin.Context, appErr *apperrors.AppError) {
	reqID := GetRequestID(c.Request.Context())

	attrs := []any{
		"status_code", appErr.StatusCode(),
		"request_id", reqID,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	}
	if appErr.Context != "" {
		attrs = append(attrs, "context", appErr.Context)
	}
	if appErr.Err != nil {
		attrs = append(attrs, "error", appErr.Err.Error())
		_ = c.Error(appErr.Err)
	}
	slog.Error(appErr.UserMessage(), attrs...)

	c.AbortWithStatusJSON(appErr.StatusCode(), gin.H{
		"error":      true,
		"message":    appErr.UserMessage(),
		"request_id": reqID,
	})
}
