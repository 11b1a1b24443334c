package middleware

import (
	"context"
)

// RequestIDKey ключ для request ID в контексте
type RequestIDKey struct{}

// RequestIDHeader заголовок, через который передается request ID
const RequestIDHeader = "X-Request-ID"

// GetRequestID извлекает request ID из контекста
func GetRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	reqID, ok := ctx.Value(RequestIDKey{}).(string)
	if !ok {
		return ""
	}
	return reqID
}

// SetRequestID устанавливает request ID в контекст
func SetRequestID(ctx context.Context, reqID string) context.Context {
	return context.WithValue(ctx, RequestIDKey{}, reqID)
}
