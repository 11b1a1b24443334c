package monitoring

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"docparser/classification"
)

// Metrics метрики распознавания документов.
// Каждый экземпляр использует собственный реестр, поэтому в тестах можно
// создавать несколько серверов без конфликтов регистрации.
type Metrics struct {
	registry *prometheus.Registry

	// Результаты распознавания по типу документа и исходу валидации
	DocumentsTotal *prometheus.CounterVec

	// Длительность распознавания одной строки
	ClassifyLatency prometheus.Histogram

	// Размеры пакетов
	BatchSize prometheus.Histogram

	// Ошибки записи в журнал
	HistoryErrors prometheus.Counter

	// HTTP запросы по маршруту и статусу
	HTTPRequests *prometheus.CounterVec
}

// NewMetrics создает метрики и регистрирует их в новом реестре
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,

		DocumentsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "docparser_documents_total",
			Help: "Total extracted documents by type and validation outcome",
		}, []string{"doc_type", "outcome"}), // outcome: "valid", "invalid", "not_applicable"

		ClassifyLatency: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "docparser_classify_duration_seconds",
			Help:    "Duration of a single input classification",
			Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01},
		}),

		BatchSize: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "docparser_batch_size",
			Help:    "Number of inputs per batch classification request",
			Buckets: prometheus.ExponentialBuckets(1, 4, 6),
		}),

		HistoryErrors: factory.NewCounter(prometheus.CounterOpts{
			Name: "docparser_history_errors_total",
			Help: "Failed writes to the classification history",
		}),

		HTTPRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "docparser_http_requests_total",
			Help: "HTTP requests by route and status code",
		}, []string{"route", "status"}),
	}
}

// ObserveClassification учитывает результаты распознавания одной строки
func (m *Metrics) ObserveClassification(docs []classification.ExtractedDocument, d time.Duration) {
	if m == nil {
		return
	}
	m.ClassifyLatency.Observe(d.Seconds())
	for _, doc := range docs {
		m.DocumentsTotal.WithLabelValues(string(doc.DocType), outcome(doc)).Inc()
	}
}

// ObserveBatch учитывает размер пакета
func (m *Metrics) ObserveBatch(size int) {
	if m != nil {
		m.BatchSize.Observe(float64(size))
	}
}

// IncHistoryError учитывает неудачную запись в журнал
func (m *Metrics) IncHistoryError() {
	if m != nil {
		m.HistoryErrors.Inc()
	}
}

// ObserveHTTPRequest учитывает обработанный HTTP запрос
func (m *Metrics) ObserveHTTPRequest(route string, status int) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.HTTPRequests.WithLabelValues(route, strconv.Itoa(status)).Inc()
}

// Handler возвращает HTTP handler для экспорта метрик
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func outcome(doc classification.ExtractedDocument) string {
	switch {
	case !doc.IsValidationApplicable:
		return "not_applicable"
	case doc.IsValid:
		return "valid"
	default:
		return "invalid"
	}
}
