package documents

import "errors"

var (
	// ErrInputTooLong ошибка при строке длиннее допустимой
	ErrInputTooLong = errors.New("input too long")

	// ErrEmptyBatch ошибка при пустом пакете
	ErrEmptyBatch = errors.New("empty batch")

	// ErrBatchTooLarge ошибка при превышении размера пакета
	ErrBatchTooLarge = errors.New("batch too large")

	// ErrHistoryUnavailable журнал распознаваний отключен
	ErrHistoryUnavailable = errors.New("classification history unavailable")

	// ErrInvalidPagination ошибка при невалидных limit/offset
	ErrInvalidPagination = errors.New("invalid pagination")
)
