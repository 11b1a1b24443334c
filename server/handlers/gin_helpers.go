package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"docparser/internal/domain/documents"
	apperrors "docparser/server/errors"
	"docparser/server/middleware"
)

// GinHandler адаптирует http.Handler в gin.HandlerFunc
func GinHandler(handler http.Handler) gin.HandlerFunc {
	return func(c *gin.Context) {
		handler.ServeHTTP(c.Writer, c.Request)
	}
}

// SendJSONResponse отправляет JSON ответ через Gin context
func SendJSONResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// SendAppError отправляет ошибку приложения и логирует её. Внутренние детали
// попадают только в лог, пользователь видит UserMessage.
func SendAppError(c *gin.Context, appErr *apperrors.AppError) {
	reqID := middleware.GetRequestIDFromGin(c)

	attrs := []any{
		"status_code", appErr.StatusCode(),
		"request_id", reqID,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	}
	if appErr.Context != "" {
		attrs = append(attrs, "operation", appErr.Context)
	}
	if appErr.Err != nil {
		attrs = append(attrs, "error", appErr.Err.Error())
		_ = c.Error(appErr.Err)
	}
	slog.Error("Gin HTTP error", attrs...)

	c.JSON(appErr.StatusCode(), ErrorResponse{
		Error:     true,
		Message:   appErr.UserMessage(),
		RequestID: reqID,
	})
}

// toAppError сопоставляет ошибки domain service с HTTP ошибками
func toAppError(err error) *apperrors.AppError {
	var appErr *apperrors.AppError
	switch {
	case errors.As(err, &appErr):
		return appErr
	case errors.Is(err, documents.ErrInputTooLong),
		errors.Is(err, documents.ErrEmptyBatch),
		errors.Is(err, documents.ErrInvalidPagination):
		return apperrors.NewValidationError(err.Error(), err)
	case errors.Is(err, documents.ErrBatchTooLarge):
		return apperrors.NewPayloadTooLargeError(err.Error(), err)
	case errors.Is(err, documents.ErrHistoryUnavailable):
		return apperrors.NewServiceUnavailableError("журнал распознаваний отключен", err)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return apperrors.NewServiceUnavailableError("запрос прерван", err)
	default:
		return apperrors.NewInternalError("unexpected service error", err)
	}
}
