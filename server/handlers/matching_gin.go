package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"airwayserver/catalog"
	"airwayserver/importer"
	apperrors "airwayserver/server/errors"
	"airwayserver/server/services"
)

// MatchingHandler обработчики эндпоинтов подбора совместимых трубок
type MatchingHandler struct {
	matchingService *services.MatchingService
}

// NewMatchingHandler создает обработчик подбора
func NewMatchingHandler(matchingService *services.MatchingService) *MatchingHandler {
	return &MatchingHandler{matchingService: matchingService}
}

// HandleEvaluateGin обработчик подбора трубок для выбранного воздуховода
// @Summary Подобрать совместимые трубки
// @Description Вычисляет вердикты совместимости трубок каталога с выбранным воздуховодом при заданном допуске
// @Tags matching
// @Accept json
// @Produce json
// @Param request body services.EvaluateRequest true "Выбор воздуховода и параметры подбора"
// @Success 200 {object} matching.ResultView "Таблица результатов"
// @Failure 400 {object} ErrorResponse "Некорректный запрос"
// @Router /api/matching/evaluate [post]
func (h *MatchingHandler) HandleEvaluateGin(c *gin.Context) {
	var req services.EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperrors.NewValidationError("некорректное тело запроса", err)
		SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
		return
	}

	view, err := h.matchingService.Evaluate(req)
	if err != nil {
		SendAppError(c, err)
		return
	}

	SendJSONResponse(c, http.StatusOK, view)
}

// worstCaseRequest собирает запрос сводки из query параметров
func worstCaseRequest(c *gin.Context) (services.EvaluateRequest, error) {
	req := services.EvaluateRequest{
		Brand: catalog.BrandKey{
			Name:         c.Query("name"),
			Manufacturer: c.Query("manufacturer"),
		},
		Strict: c.Query("strict") == "true",
	}

	if raw := c.Query("size"); raw != "" {
		size, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return req, apperrors.NewValidationError("неверный формат size", err)
		}
		req.Size = &size
	}

	if raw := c.Query("tolerance_mm"); raw != "" {
		tolerance, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return req, apperrors.NewValidationError("неверный формат tolerance_mm", err)
		}
		req.ToleranceMM = &tolerance
	}

	return req, nil
}

// HandleWorstCaseGin обработчик сводки худшего случая по размерам трубок
// @Summary Сводка худшего случая
// @Description Для каждого номинального размера трубки берет наибольший наружный диаметр среди моделей и классифицирует его против выбранного воздуховода
// @Tags matching
// @Produce json
// @Param name query string true "Канонический ключ названия воздуховода"
// @Param manufacturer query string false "Канонический ключ производителя"
// @Param size query number false "Номинальный размер воздуховода"
// @Param tolerance_mm query number false "Допуск в мм"
// @Param strict query bool false "Строгий режим допуска"
// @Success 200 {object} services.WorstCaseSummary "Сводка худшего случая"
// @Failure 400 {object} ErrorResponse "Некорректный запрос"
// @Failure 404 {object} ErrorResponse "Воздуховод не найден"
// @Router /api/matching/worst-case [get]
func (h *MatchingHandler) HandleWorstCaseGin(c *gin.Context) {
	req, err := worstCaseRequest(c)
	if err != nil {
		SendAppError(c, err)
		return
	}

	summary, err := h.matchingService.WorstCase(req)
	if err != nil {
		SendAppError(c, err)
		return
	}

	SendJSONResponse(c, http.StatusOK, summary)
}

// HandleExportGin обработчик выгрузки результатов подбора в Excel
// @Summary Выгрузить результаты подбора в Excel
// @Description Выполняет подбор и возвращает таблицу результатов книгой Excel
// @Tags matching
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param request body services.EvaluateRequest true "Выбор воздуховода и параметры подбора"
// @Success 200 {file} binary "Книга Excel с результатами"
// @Failure 400 {object} ErrorResponse "Некорректный запрос"
// @Failure 500 {object} ErrorResponse "Ошибка формирования книги"
// @Router /api/matching/export [post]
func (h *MatchingHandler) HandleExportGin(c *gin.Context) {
	var req services.EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		appErr := apperrors.NewValidationError("некорректное тело запроса", err)
		SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
		return
	}

	view, err := h.matchingService.Evaluate(req)
	if err != nil {
		SendAppError(c, err)
		return
	}

	filename := fmt.Sprintf("compatibility_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := importer.WriteResultView(view, c.Writer); err != nil {
		appErr := apperrors.NewInternalError("не удалось сформировать книгу Excel", err)
		SendJSONError(c, appErr.StatusCode(), appErr.UserMessage())
		return
	}
}
