package database

import (
	"database/sql"
	"fmt"
)

// InitHistorySchema создает таблицы журнала распознаваний
func InitHistorySchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS classification_history (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		request_id TEXT NOT NULL,                  -- ID запроса (один запрос может дать несколько строк)
		input TEXT NOT NULL,                       -- Исходная строка
		doc_type TEXT NOT NULL,                    -- Тип документа (INN_UL, SNILS, NOT_FOUND ...)
		value TEXT NOT NULL DEFAULT '',            -- Нормализованное значение
		is_validation_applicable INTEGER NOT NULL DEFAULT 0,
		is_valid INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMP NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_classification_history_request_id
		ON classification_history(request_id);
	CREATE INDEX IF NOT EXISTS idx_classification_history_doc_type
		ON classification_history(doc_type);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create classification_history: %w", err)
	}
	return nil
}
