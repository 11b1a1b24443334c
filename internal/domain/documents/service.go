package documents

import (
	"context"
	"time"

	"docparser/classification"
	"docparser/database"
)

// Service интерфейс бизнес-логики распознавания документов
type Service interface {
	// Распознавание
	Classify(ctx context.Context, input string) (*Classification, error)
	ClassifyBatch(ctx context.Context, inputs []string) (*BatchClassification, error)

	// Журнал и статистика
	History(ctx context.Context, limit, offset int) (*HistoryPage, error)
	Statistics(ctx context.Context) (*Statistics, error)
}

// HistoryRepository хранилище журнала распознаваний
type HistoryRepository interface {
	SaveResults(ctx context.Context, requestID, input string, docs []classification.ExtractedDocument) error
	ListHistory(ctx context.Context, limit, offset int) ([]database.HistoryRecord, error)
	CountHistory(ctx context.Context) (int, error)
	StatisticsByType(ctx context.Context) ([]database.TypeStatistics, error)
}

// MetricsRecorder приемник метрик распознавания
type MetricsRecorder interface {
	ObserveClassification(docs []classification.ExtractedDocument, d time.Duration)
	ObserveBatch(size int)
	IncHistoryError()
}

// Options ограничения сервиса
type Options struct {
	MaxInputLength int
	MaxBatchSize   int
}

// Classification результат распознавания одной строки
type Classification struct {
	RequestID string                             `json:"request_id"`
	Input     string                             `json:"input"`
	Documents []classification.ExtractedDocument `json:"documents"`
}

// BatchItem результат распознавания строки из пакета
type BatchItem struct {
	Index     int                                `json:"index"`
	Input     string                             `json:"input"`
	Documents []classification.ExtractedDocument `json:"documents,omitempty"`
	Error     string                             `json:"error,omitempty"`
}

// BatchSummary сводка по пакету
type BatchSummary struct {
	ByType   map[classification.DocumentType]int `json:"by_type"`
	Valid    int                                 `json:"valid"`
	Invalid  int                                 `json:"invalid"`
	NotFound int                                 `json:"not_found"`
	Failed   int                                 `json:"failed"`
}

// BatchClassification результат пакетного распознавания
type BatchClassification struct {
	BatchID        string        `json:"batch_id"`
	Total          int           `json:"total"`
	Items          []BatchItem   `json:"items"`
	Summary        BatchSummary  `json:"summary"`
	ProcessingTime time.Duration `json:"processing_time_ns"`
}

// HistoryPage страница журнала
type HistoryPage struct {
	Total   int                      `json:"total"`
	Limit   int                      `json:"limit"`
	Offset  int                      `json:"offset"`
	Records []database.HistoryRecord `json:"records"`
}

// Statistics статистика журнала по типам документов
type Statistics struct {
	Total  int                       `json:"total"`
	ByType []database.TypeStatistics `json:"by_type"`
}

// MaxHistoryLimit наибольший размер страницы журнала
const MaxHistoryLimit = 500
