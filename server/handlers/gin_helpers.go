package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "airwayserver/server/errors"
	"airwayserver/server/middleware"
)

// ErrorResponse структура JSON ошибки API
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// SendJSONResponse отправляет JSON ответ через Gin context
func SendJSONResponse(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// SendJSONError отправляет JSON ошибку через Gin context и логирует её
func SendJSONError(c *gin.Context, statusCode int, message string) {
	reqID := middleware.GetRequestIDFromGin(c)

	// Логируем ошибку
	slog.Error("Gin HTTP error",
		"error", message,
		"status_code", statusCode,
		"request_id", reqID,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)

	c.JSON(statusCode, ErrorResponse{
		Error:   true,
		Message: message,
	})
}

// SendAppError отправляет ошибку приложения, разворачивая AppError в
// статус и пользовательское сообщение; внутренняя ошибка и контекст
// попадают только в лог. Прочие ошибки считаются внутренними.
func SendAppError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) {
		SendJSONError(c, http.StatusInternalServerError, "Внутренняя ошибка сервера")
		return
	}

	slog.Error("Gin HTTP error",
		"error", appErr.Err,
		"user_message", appErr.UserMessage(),
		"context", appErr.GetContext(),
		"status_code", appErr.StatusCode(),
		"request_id", middleware.GetRequestIDFromGin(c),
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)

	c.JSON(appErr.StatusCode(), ErrorResponse{
		Error:   true,
		Message: appErr.UserMessage(),
	})
}
