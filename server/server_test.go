package server

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docparser/database"
	"docparser/internal/config"
	"docparser/internal/domain/documents"
	"docparser/server/monitoring"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:            "9999",
		GinMode:         gin.TestMode,
		HistoryEnabled:  true,
		MaxInputLength:  64,
		MaxBatchSize:    10,
		RateLimitPerSec: 0,
		GzipEnabled:     true,
		SwaggerEnabled:  true,
	}
}

func newTestServer(t *testing.T, cfg *config.Config) *Server {
	t.Helper()

	history, err := database.NewHistoryDBWithConfig(filepath.Join(t.TempDir(), "history.db"), database.DBConfig{MaxOpenConns: 1})
	require.NoError(t, err)
	t.Cleanup(func() { history.Close() })

	metrics := monitoring.NewMetrics()
	health := monitoring.NewHealthChecker("test")
	health.RegisterPinger("history", history)

	svc := documents.NewService(history, metrics, documents.Options{
		MaxInputLength: cfg.MaxInputLength,
		MaxBatchSize:   cfg.MaxBatchSize,
	})
	return NewServer(cfg, svc, metrics, health)
}

func request(s http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.ServeHTTP(w, req)
	return w
}

func TestServer_ClassifyFlow(t *testing.T) {
	srv := newTestServer(t, testConfig())

	w := request(srv, http.MethodPost, "/api/documents/classify", `{"input":"112-233-445 95"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	requestID := w.Header().Get("X-Request-ID")
	assert.NotEmpty(t, requestID)

	var classified documents.Classification
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &classified))
	assert.Equal(t, requestID, classified.RequestID)
	require.Len(t, classified.Documents, 1)
	assert.Equal(t, "SNILS", string(classified.Documents[0].DocType))
	assert.Equal(t, "112-233-445 95", classified.Documents[0].Value)
	assert.True(t, classified.Documents[0].IsValid)

	w = request(srv, http.MethodPost, "/api/documents/classify/batch", `{"inputs":["А123ВЕ77","@ 12345678"]}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var batch documents.BatchClassification
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &batch))
	assert.Equal(t, 2, batch.Total)
	require.Len(t, batch.Items, 2)
	assert.Equal(t, "GRZ", string(batch.Items[0].Documents[0].DocType))
	assert.Equal(t, 1, batch.Items[1].Index)

	w = request(srv, http.MethodGet, "/api/documents/history?limit=10", "")
	require.Equal(t, http.StatusOK, w.Code)

	var page documents.HistoryPage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))
	// SNILS + GRZ + T1 + T2
	assert.Equal(t, 4, page.Total)
	assert.Equal(t, requestID, page.Records[len(page.Records)-1].RequestID)

	w = request(srv, http.MethodGet, "/api/documents/stats", "")
	require.Equal(t, http.StatusOK, w.Code)

	var stats documents.Statistics
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, 4, stats.Total)
}

func TestServer_InputTooLong(t *testing.T) {
	srv := newTestServer(t, testConfig())

	body := `{"input":"` + strings.Repeat("7", 65) + `"}`
	w := request(srv, http.MethodPost, "/api/documents/classify", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServer_SystemRoutes(t *testing.T) {
	srv := newTestServer(t, testConfig())

	w := request(srv, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)

	request(srv, http.MethodPost, "/api/documents/classify", `{"input":"7707083893"}`)
	w = request(srv, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `docparser_documents_total{doc_type="INN_UL",outcome="valid"} 1`)
	assert.Contains(t, w.Body.String(), `docparser_http_requests_total{route="/api/documents/classify",status="200"} 1`)

	w = request(srv, http.MethodGet, "/swagger/doc.json", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/api/documents/classify")

	w = request(srv, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), `"error":true`)
	assert.Contains(t, w.Body.String(), "маршрут не найден")
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestServer_SwaggerDisabled(t *testing.T) {
	cfg := testConfig()
	cfg.SwaggerEnabled = false
	srv := newTestServer(t, cfg)

	w := request(srv, http.MethodGet, "/swagger/doc.json", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestServer_RateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitPerSec = 0.001
	cfg.RateLimitBurst = 1
	srv := newTestServer(t, cfg)

	assert.Equal(t, http.StatusOK, request(srv, http.MethodGet, "/api/documents/types", "").Code)

	w := request(srv, http.MethodGet, "/api/documents/types", "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	// request ID из middleware попадает в тело ответа лимитера
	assert.Contains(t, w.Body.String(), `"request_id":"`+w.Header().Get("X-Request-ID")+`"`)
}

func TestServer_NoService(t *testing.T) {
	srv := NewServer(testConfig(), nil, nil, nil)

	w := request(srv, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Error(t, srv.Start())
}

func TestServer_ShutdownWithoutStart(t *testing.T) {
	srv := newTestServer(t, testConfig())
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	assert.NoError(t, srv.Shutdown(ctx))
}
