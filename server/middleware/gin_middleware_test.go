package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "docparser/server/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(r http.Handler, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGinRequestIDMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(GinRequestIDMiddleware())
	router.GET("/ping", func(c *gin.Context) {
		// ID доступен и через gin, и через context запроса
		assert.Equal(t, GetRequestIDFromGin(c), GetRequestID(c.Request.Context()))
		c.String(http.StatusOK, GetRequestIDFromGin(c))
	})

	t.Run("generated", func(t *testing.T) {
		w := perform(router, http.MethodGet, "/ping", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.NotEmpty(t, w.Header().Get(RequestIDHeader))
		assert.Equal(t, w.Header().Get(RequestIDHeader), w.Body.String())
	})

	t.Run("propagated", func(t *testing.T) {
		w := perform(router, http.MethodGet, "/ping", map[string]string{RequestIDHeader: "abc-123"})
		assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "abc-123", w.Body.String())
	})
}

func TestGinCORSMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(GinCORSMiddleware())
	router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.OPTIONS("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := perform(router, http.MethodGet, "/test", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "POST")

	w = perform(router, http.MethodOptions, "/test", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestGinSecurityHeadersMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(GinSecurityHeadersMiddleware())
	router.GET("/test", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := perform(router, http.MethodGet, "/test", nil)
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.NotEmpty(t, w.Header().Get("Referrer-Policy"))
}

func TestGinRecoveryMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(GinRequestIDMiddleware(), GinRecoveryMiddleware())
	router.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := perform(router, http.MethodGet, "/panic", map[string]string{RequestIDHeader: "req-1"})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"request_id":"req-1"`)
	assert.Contains(t, w.Body.String(), `"error":true`)
	// Текст паники наружу не попадает
	assert.Contains(t, w.Body.String(), "Внутренняя ошибка сервера")
	assert.NotContains(t, w.Body.String(), "boom")
}

func TestGinRateLimitMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(GinRateLimitMiddleware(0.001, 2))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusOK, perform(router, http.MethodGet, "/", nil).Code)
	assert.Equal(t, http.StatusOK, perform(router, http.MethodGet, "/", nil).Code)

	w := perform(router, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "1", w.Header().Get("Retry-After"))
	assert.Contains(t, w.Body.String(), `"error":true`)
	assert.Contains(t, w.Body.String(), "Слишком много запросов")
}

func TestAbortWithAppError(t *testing.T) {
	router := gin.New()
	router.Use(GinRequestIDMiddleware())
	router.GET("/missing", func(c *gin.Context) {
		AbortWithAppError(c, apperrors.NewNotFoundError("не найдено", errors.New("no row")).WithContext("lookup"))
	})

	w := perform(router, http.MethodGet, "/missing", map[string]string{RequestIDHeader: "req-404"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["error"])
	assert.Equal(t, "не найдено", body["message"])
	assert.Equal(t, "req-404", body["request_id"])
	assert.NotContains(t, w.Body.String(), "no row")
}

func TestGinRateLimitMiddleware_Disabled(t *testing.T) {
	router := gin.New()
	router.Use(GinRateLimitMiddleware(0, 0))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 10; i++ {
		assert.Equal(t, http.StatusOK, perform(router, http.MethodGet, "/", nil).Code)
	}
}

type routeRecorder struct {
	routes []string
	codes  []int
}

func (r *routeRecorder) ObserveHTTPRequest(route string, status int) {
	r.routes = append(r.routes, route)
	r.codes = append(r.codes, status)
}

func TestGinMetricsMiddleware(t *testing.T) {
	rec := &routeRecorder{}
	router := gin.New()
	router.Use(GinMetricsMiddleware(rec))
	router.GET("/items/:id", func(c *gin.Context) { c.Status(http.StatusAccepted) })

	perform(router, http.MethodGet, "/items/42", nil)
	perform(router, http.MethodGet, "/missing", nil)

	assert.Equal(t, []string{"/items/:id", ""}, rec.routes)
	assert.Equal(t, []int{http.StatusAccepted, http.StatusNotFound}, rec.codes)
}

func TestGinGzipMiddleware(t *testing.T) {
	router := gin.New()
	router.Use(GinGzipMiddleware())
	router.GET("/data", func(c *gin.Context) { c.String(http.StatusOK, strings.Repeat("a", 2048)) })
	router.GET("/metrics", func(c *gin.Context) { c.String(http.StatusOK, "plain") })

	w := perform(router, http.MethodGet, "/data", map[string]string{"Accept-Encoding": "gzip"})
	assert.Equal(t, "gzip", w.Header().Get("Content-Encoding"))

	w = perform(router, http.MethodGet, "/metrics", map[string]string{"Accept-Encoding": "gzip"})
	assert.Empty(t, w.Header().Get("Content-Encoding"))
	assert.Equal(t, "plain", w.Body.String())
}
