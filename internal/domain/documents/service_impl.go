package documents

import (
	"context"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"docparser/classification"
)

type requestIDKey struct{}

// ContextWithRequestID сохраняет ID запроса, под которым результаты попадут в журнал
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RequestIDFromContext возвращает ID запроса или пустую строку
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// service реализация domain service для распознавания документов
type service struct {
	history HistoryRepository
	metrics MetricsRecorder
	opts    Options
}

// NewService создает новый domain service.
// history и metrics могут быть nil: журнал и метрики тогда отключены.
func NewService(history HistoryRepository, metrics MetricsRecorder, opts Options) Service {
	return &service{
		history: history,
		metrics: metrics,
		opts:    opts,
	}
}

// Classify распознает одну строку
func (s *service) Classify(ctx context.Context, input string) (*Classification, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("classify: %w", err)
	}
	if err := s.checkLength(input); err != nil {
		return nil, err
	}

	requestID := RequestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	return &Classification{
		RequestID: requestID,
		Input:     input,
		Documents: s.parse(ctx, requestID, input),
	}, nil
}

// ClassifyBatch распознает пакет строк. Слишком длинные строки не прерывают
// пакет: для них заполняется поле Error.
func (s *service) ClassifyBatch(ctx context.Context, inputs []string) (*BatchClassification, error) {
	if len(inputs) == 0 {
		return nil, ErrEmptyBatch
	}
	if s.opts.MaxBatchSize > 0 && len(inputs) > s.opts.MaxBatchSize {
		return nil, fmt.Errorf("%w: %d items, limit %d", ErrBatchTooLarge, len(inputs), s.opts.MaxBatchSize)
	}

	startTime := time.Now()
	batchID := RequestIDFromContext(ctx)
	if batchID == "" {
		batchID = uuid.New().String()
	}

	result := &BatchClassification{
		BatchID: batchID,
		Total:   len(inputs),
		Items:   make([]BatchItem, 0, len(inputs)),
		Summary: BatchSummary{ByType: make(map[classification.DocumentType]int)},
	}

	for i, input := range inputs {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("batch interrupted at item %d: %w", i, err)
		}

		item := BatchItem{Index: i, Input: input}
		if err := s.checkLength(input); err != nil {
			item.Error = err.Error()
			result.Summary.Failed++
			result.Items = append(result.Items, item)
			continue
		}

		item.Documents = s.parse(ctx, batchID, input)
		result.Summary.add(item.Documents)
		result.Items = append(result.Items, item)
	}

	if s.metrics != nil {
		s.metrics.ObserveBatch(len(inputs))
	}
	result.ProcessingTime = time.Since(startTime)
	return result, nil
}

// History возвращает страницу журнала, новые записи первыми
func (s *service) History(ctx context.Context, limit, offset int) (*HistoryPage, error) {
	if s.history == nil {
		return nil, ErrHistoryUnavailable
	}
	if limit <= 0 || limit > MaxHistoryLimit || offset < 0 {
		return nil, fmt.Errorf("%w: limit must be in 1..%d, offset must not be negative", ErrInvalidPagination, MaxHistoryLimit)
	}

	total, err := s.history.CountHistory(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count history: %w", err)
	}

	records, err := s.history.ListHistory(ctx, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}

	return &HistoryPage{
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		Records: records,
	}, nil
}

// Statistics возвращает статистику журнала по типам документов
func (s *service) Statistics(ctx context.Context) (*Statistics, error) {
	if s.history == nil {
		return nil, ErrHistoryUnavailable
	}

	byType, err := s.history.StatisticsByType(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get statistics: %w", err)
	}

	stats := &Statistics{ByType: byType}
	for _, t := range byType {
		stats.Total += t.Total
	}
	return stats, nil
}

func (s *service) checkLength(input string) error {
	if s.opts.MaxInputLength > 0 && utf8.RuneCountInString(input) > s.opts.MaxInputLength {
		return fmt.Errorf("%w: limit %d characters", ErrInputTooLong, s.opts.MaxInputLength)
	}
	return nil
}

// parse распознает строку, учитывает метрики и пишет журнал.
// Ошибка журнала не влияет на результат распознавания.
func (s *service) parse(ctx context.Context, requestID, input string) []classification.ExtractedDocument {
	start := time.Now()
	docs := classification.Parse(input)
	if s.metrics != nil {
		s.metrics.ObserveClassification(docs, time.Since(start))
	}

	if s.history != nil {
		if err := s.history.SaveResults(ctx, requestID, input, docs); err != nil {
			slog.Warn("Failed to save classification history",
				"request_id", requestID,
				"error", err,
			)
			if s.metrics != nil {
				s.metrics.IncHistoryError()
			}
		}
	}

	return docs
}

func (sum *BatchSummary) add(docs []classification.ExtractedDocument) {
	for _, doc := range docs {
		sum.ByType[doc.DocType]++
		switch {
		case doc.DocType == classification.DocTypeNotFound:
			sum.NotFound++
		case doc.IsValid:
			sum.Valid++
		default:
			sum.Invalid++
		}
	}
}
