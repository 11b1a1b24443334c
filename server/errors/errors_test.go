package errors

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppError_Constructors(t *testing.T) {
	inner := errors.New("inner")

	tests := []struct {
		name string
		err  *AppError
		code int
	}{
		{"validation", NewValidationError("bad input", inner), http.StatusBadRequest},
		{"not found", NewNotFoundError("missing", nil), http.StatusNotFound},
		{"too large", NewPayloadTooLargeError("too large", inner), http.StatusRequestEntityTooLarge},
		{"too many requests", NewTooManyRequestsError("slow down"), http.StatusTooManyRequests},
		{"internal", NewInternalError("db failed", inner), http.StatusInternalServerError},
		{"unavailable", NewServiceUnavailableError("history disabled", inner), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.StatusCode() != tt.code {
				t.Errorf("StatusCode() = %d, want %d", tt.err.StatusCode(), tt.code)
			}
			if tt.err.UserMessage() == "" {
				t.Error("UserMessage() should not be empty")
			}
		})
	}
}

func TestAppError_Unwrap(t *testing.T) {
	inner := errors.New("inner")
	err := NewValidationError("bad input", inner)

	if !errors.Is(err, inner) {
		t.Error("errors.Is should find wrapped error")
	}
	if err.Error() != "bad input: inner" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestNewInternalError_HidesDetails(t *testing.T) {
	inner := errors.New("sqlite: disk I/O error")
	err := NewInternalError("failed to list history", inner)

	if err.UserMessage() != "Внутренняя ошибка сервера" {
		t.Errorf("UserMessage() = %q", err.UserMessage())
	}
	if !errors.Is(err, inner) {
		t.Error("internal error should keep details for logs")
	}
}

func TestAppError_WithContext(t *testing.T) {
	err := NewNotFoundError("маршрут не найден", nil).WithContext("/nope")

	if err.Context != "/nope" {
		t.Errorf("Context = %q, want %q", err.Context, "/nope")
	}
	if err.StatusCode() != http.StatusNotFound {
		t.Errorf("StatusCode() = %d, want %d", err.StatusCode(), http.StatusNotFound)
	}
}
