package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"airwayserver/internal/config"
)

// newTestServer собирает сервер без базы данных: пустые каталоги -
// валидное состояние, проверка работоспособности доступна всегда
func newTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Port:               "8080",
		DefaultToleranceMM: 0.5,
		RateLimitPerSecond: 20,
		RateLimitBurst:     40,
	}
	return NewServer(cfg, nil)
}

// TestHandleHealth проверяет ответ /health: статус, размеры каталогов
// и допуск по умолчанию
func TestHandleHealth(t *testing.T) {
	srv := newTestServer(t)
	router := srv.buildRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusOK)
	}

	var health HealthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &health); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if health.Status != "ok" {
		t.Errorf("Status = %q, want ok", health.Status)
	}
	if health.SADRecords != 0 || health.ETTRecords != 0 {
		t.Errorf("каталоги должны быть пустыми: sad=%d, ett=%d", health.SADRecords, health.ETTRecords)
	}
	if health.DefaultToleranceMM != 0.5 {
		t.Errorf("DefaultToleranceMM = %v, want 0.5", health.DefaultToleranceMM)
	}
}

// TestBuildRouter_RequestID проверяет, что цепочка middleware проставляет
// X-Request-ID в ответ
func TestBuildRouter_RequestID(t *testing.T) {
	srv := newTestServer(t)
	router := srv.buildRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	if w.Header().Get("X-Request-ID") == "" {
		t.Error("ответ без заголовка X-Request-ID")
	}
}
