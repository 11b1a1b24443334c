package handlers

import (
	"docparser/classification"
)

// ErrorResponse ответ об ошибке
type ErrorResponse struct {
	Error     bool   `json:"error"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

// ClassifyRequest запрос распознавания одной строки.
// Пустая строка допустима, отсутствие поля нет.
type ClassifyRequest struct {
	Input *string `json:"input" example:"7707083893"`
}

// BatchClassifyRequest запрос пакетного распознавания
type BatchClassifyRequest struct {
	Inputs []string `json:"inputs"`
}

// DocumentTypesResponse список поддерживаемых форматов
type DocumentTypesResponse struct {
	Total int                             `json:"total"`
	Types []classification.DescriptorInfo `json:"types"`
}
