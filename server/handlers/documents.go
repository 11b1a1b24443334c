package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"docparser/classification"
	"docparser/internal/domain/documents"
	apperrors "docparser/server/errors"
	"docparser/server/middleware"
)

// Значения пагинации журнала по умолчанию
const (
	defaultHistoryLimit = 50
)

// DocumentsHandler обработчики распознавания документов
type DocumentsHandler struct {
	service documents.Service
}

// NewDocumentsHandler создает обработчики распознавания документов
func NewDocumentsHandler(service documents.Service) *DocumentsHandler {
	return &DocumentsHandler{service: service}
}

// RegisterRoutes регистрирует маршруты в группе /api
func (h *DocumentsHandler) RegisterRoutes(api *gin.RouterGroup) {
	docs := api.Group("/documents")
	docs.POST("/classify", h.HandleClassify)
	docs.POST("/classify/batch", h.HandleClassifyBatch)
	docs.GET("/types", h.HandleDocumentTypes)
	docs.GET("/history", h.HandleHistory)
	docs.GET("/stats", h.HandleStatistics)
}

// HandleClassify распознает одну строку
// @Summary Распознать документ
// @Description Определяет все форматы документов, которым соответствует строка, и проверяет контрольные суммы. Строки с префиксом "@ " распознаются как квалификационные форматы T1/T2.
// @Tags documents
// @Accept json
// @Produce json
// @Param request body ClassifyRequest true "Строка для распознавания"
// @Success 200 {object} documents.Classification "Результаты распознавания"
// @Failure 400 {object} ErrorResponse "Неверный запрос"
// @Failure 429 {object} ErrorResponse "Слишком много запросов"
// @Failure 500 {object} ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/documents/classify [post]
func (h *DocumentsHandler) HandleClassify(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendAppError(c, apperrors.NewValidationError("неверный формат тела запроса", err))
		return
	}
	if req.Input == nil {
		SendAppError(c, apperrors.NewValidationError("поле input обязательно", nil))
		return
	}

	result, err := h.service.Classify(requestContext(c), *req.Input)
	if err != nil {
		SendAppError(c, toAppError(err).WithContext("classify"))
		return
	}

	SendJSONResponse(c, http.StatusOK, result)
}

// HandleClassifyBatch распознает пакет строк
// @Summary Распознать пакет документов
// @Description Распознает каждую строку пакета. Результат каждой строки содержит ее индекс в запросе.
// @Tags documents
// @Accept json
// @Produce json
// @Param request body BatchClassifyRequest true "Строки для распознавания"
// @Success 200 {object} documents.BatchClassification "Результаты распознавания"
// @Failure 400 {object} ErrorResponse "Неверный запрос"
// @Failure 413 {object} ErrorResponse "Пакет слишком большой"
// @Failure 500 {object} ErrorResponse "Внутренняя ошибка сервера"
// @Router /api/documents/classify/batch [post]
func (h *DocumentsHandler) HandleClassifyBatch(c *gin.Context) {
	var req BatchClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendAppError(c, apperrors.NewValidationError("неверный формат тела запроса", err))
		return
	}

	result, err := h.service.ClassifyBatch(requestContext(c), req.Inputs)
	if err != nil {
		SendAppError(c, toAppError(err).WithContext("classify_batch"))
		return
	}

	SendJSONResponse(c, http.StatusOK, result)
}

// HandleDocumentTypes возвращает каталог форматов
// @Summary Список форматов документов
// @Description Возвращает все поддерживаемые форматы с шаблонами и признаком проверки контрольной суммы
// @Tags documents
// @Produce json
// @Success 200 {object} DocumentTypesResponse "Каталог форматов"
// @Router /api/documents/types [get]
func (h *DocumentsHandler) HandleDocumentTypes(c *gin.Context) {
	types := classification.Catalog()
	SendJSONResponse(c, http.StatusOK, DocumentTypesResponse{
		Total: len(types),
		Types: types,
	})
}

// HandleHistory возвращает страницу журнала
// @Summary Журнал распознаваний
// @Description Возвращает записи журнала, новые первыми
// @Tags documents
// @Produce json
// @Param limit query int false "Размер страницы (1..500)" default(50)
// @Param offset query int false "Смещение" default(0)
// @Success 200 {object} documents.HistoryPage "Страница журнала"
// @Failure 400 {object} ErrorResponse "Неверные параметры"
// @Failure 503 {object} ErrorResponse "Журнал отключен"
// @Router /api/documents/history [get]
func (h *DocumentsHandler) HandleHistory(c *gin.Context) {
	limit, err := queryInt(c, "limit", defaultHistoryLimit)
	if err != nil {
		SendAppError(c, apperrors.NewValidationError("неверный формат limit", err))
		return
	}
	offset, err := queryInt(c, "offset", 0)
	if err != nil {
		SendAppError(c, apperrors.NewValidationError("неверный формат offset", err))
		return
	}

	page, err := h.service.History(c.Request.Context(), limit, offset)
	if err != nil {
		SendAppError(c, toAppError(err).WithContext("history"))
		return
	}

	SendJSONResponse(c, http.StatusOK, page)
}

// HandleStatistics возвращает статистику журнала
// @Summary Статистика распознаваний
// @Description Количество результатов по типам документов с разбивкой на валидные и невалидные
// @Tags documents
// @Produce json
// @Success 200 {object} documents.Statistics "Статистика"
// @Failure 503 {object} ErrorResponse "Журнал отключен"
// @Router /api/documents/stats [get]
func (h *DocumentsHandler) HandleStatistics(c *gin.Context) {
	stats, err := h.service.Statistics(c.Request.Context())
	if err != nil {
		SendAppError(c, toAppError(err).WithContext("statistics"))
		return
	}

	SendJSONResponse(c, http.StatusOK, stats)
}

// requestContext передает request ID запроса в domain service
func requestContext(c *gin.Context) context.Context {
	return documents.ContextWithRequestID(c.Request.Context(), middleware.GetRequestIDFromGin(c))
}

func queryInt(c *gin.Context, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	return strconv.Atoi(raw)
}
