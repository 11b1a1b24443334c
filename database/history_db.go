package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"docparser/classification"
)

// HistoryDB журнал распознаваний в SQLite
type HistoryDB struct {
	conn *sql.DB
}

// HistoryRecord одна запись журнала: один результат распознавания одной строки
type HistoryRecord struct {
	ID                     int64     `json:"id"`
	RequestID              string    `json:"request_id"`
	Input                  string    `json:"input"`
	DocType                string    `json:"doc_type"`
	Value                  string    `json:"value"`
	IsValidationApplicable bool      `json:"is_validation_applicable"`
	IsValid                bool      `json:"is_valid"`
	CreatedAt              time.Time `json:"created_at"`
}

// TypeStatistics агрегат журнала по типу документа
type TypeStatistics struct {
	DocType string `json:"doc_type"`
	Total   int    `json:"total"`
	Valid   int    `json:"valid"`
	Invalid int    `json:"invalid"`
}

// NewHistoryDBWithConfig создает подключение к журналу и инициализирует схему
func NewHistoryDBWithConfig(dbPath string, config DBConfig) (*HistoryDB, error) {
	conn, err := openSQLite(dbPath, config)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	if err := InitHistorySchema(conn); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to initialize history schema: %w", err)
	}

	return &HistoryDB{conn: conn}, nil
}

// Close закрывает подключение
func (db *HistoryDB) Close() error {
	return db.conn.Close()
}

// PingContext проверяет доступность базы
func (db *HistoryDB) PingContext(ctx context.Context) error {
	return db.conn.PingContext(ctx)
}

// SaveResults сохраняет все результаты распознавания одной строки в одной транзакции
func (db *HistoryDB) SaveResults(ctx context.Context, requestID, input string, docs []classification.ExtractedDocument) error {
	if len(docs) == 0 {
		return nil
	}

	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO classification_history
			(request_id, input, doc_type, value, is_validation_applicable, is_valid, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for _, doc := range docs {
		if _, err := stmt.ExecContext(ctx, requestID, input, string(doc.DocType), doc.Value,
			doc.IsValidationApplicable, doc.IsValid, now); err != nil {
			return fmt.Errorf("failed to insert history record: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit history: %w", err)
	}
	return nil
}

// ListHistory возвращает записи журнала, новые первыми
func (db *HistoryDB) ListHistory(ctx context.Context, limit, offset int) ([]HistoryRecord, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT id, request_id, input, doc_type, value, is_validation_applicable, is_valid, created_at
		FROM classification_history
		ORDER BY id DESC
		LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	records := make([]HistoryRecord, 0, limit)
	for rows.Next() {
		var r HistoryRecord
		if err := rows.Scan(&r.ID, &r.RequestID, &r.Input, &r.DocType, &r.Value,
			&r.IsValidationApplicable, &r.IsValid, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history record: %w", err)
		}
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate history: %w", err)
	}
	return records, nil
}

// CountHistory возвращает количество записей журнала
func (db *HistoryDB) CountHistory(ctx context.Context) (int, error) {
	var count int
	if err := db.conn.QueryRowContext(ctx, `SELECT COUNT(*) FROM classification_history`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count history: %w", err)
	}
	return count, nil
}

// StatisticsByType считает результаты по типам документов.
// NOT_FOUND не попадает ни в valid, ни в invalid.
func (db *HistoryDB) StatisticsByType(ctx context.Context) ([]TypeStatistics, error) {
	rows, err := db.conn.QueryContext(ctx, `
		SELECT doc_type,
			COUNT(*),
			COALESCE(SUM(CASE WHEN is_validation_applicable = 1 AND is_valid = 1 THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN is_validation_applicable = 1 AND is_valid = 0 THEN 1 ELSE 0 END), 0)
		FROM classification_history
		GROUP BY doc_type
		ORDER BY doc_type`)
	if err != nil {
		return nil, fmt.Errorf("failed to query statistics: %w", err)
	}
	defer rows.Close()

	var stats []TypeStatistics
	for rows.Next() {
		var s TypeStatistics
		if err := rows.Scan(&s.DocType, &s.Total, &s.Valid, &s.Invalid); err != nil {
			return nil, fmt.Errorf("failed to scan statistics: %w", err)
		}
		stats = append(stats, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate statistics: %w", err)
	}
	return stats, nil
}
