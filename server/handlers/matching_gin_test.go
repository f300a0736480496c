package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"airwayserver/matching"
)

// evaluateBody тело запроса подбора
func evaluateBody(t *testing.T, payload map[string]interface{}) *bytes.Reader {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

// TestHandleEvaluateGin проверяет успешный подбор трубок
func TestHandleEvaluateGin(t *testing.T) {
	router, _ := newTestRouter(t)

	body := evaluateBody(t, map[string]interface{}{
		"brand": map[string]string{"name": "auragain", "manufacturer": "ambu"},
		"size":  4.0,
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/matching/evaluate", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var view matching.ResultView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	require.Len(t, view.Rows, 2)
	assert.False(t, view.Empty)
	assert.Equal(t, 0.5, view.Tolerance)
}

// TestHandleEvaluateGin_BadJSON проверяет отбраковку битого тела запроса
func TestHandleEvaluateGin_BadJSON(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/matching/evaluate", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestHandleEvaluateGin_MissingBrand проверяет валидацию запроса
func TestHandleEvaluateGin_MissingBrand(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/matching/evaluate", evaluateBody(t, map[string]interface{}{}))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestHandleEvaluateGin_UnknownBrand проверяет пустой валидный результат
func TestHandleEvaluateGin_UnknownBrand(t *testing.T) {
	router, _ := newTestRouter(t)

	body := evaluateBody(t, map[string]interface{}{
		"brand": map[string]string{"name": "no such device", "manufacturer": "nobody"},
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/matching/evaluate", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var view matching.ResultView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	assert.True(t, view.Empty)
	assert.Equal(t, matching.NoCandidatesMessage, view.Message)
}

// TestHandleWorstCaseGin проверяет сводку худшего случая
func TestHandleWorstCaseGin(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/matching/worst-case?name=auragain&manufacturer=ambu&size=4", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"inner_mm":"10.00"`)
}

// TestHandleWorstCaseGin_NotFound проверяет 404 для неизвестного воздуховода
func TestHandleWorstCaseGin_NotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/matching/worst-case?name=missing", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// TestHandleWorstCaseGin_BadSize проверяет валидацию query параметров
func TestHandleWorstCaseGin_BadSize(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/matching/worst-case?name=auragain&size=large", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// TestHandleExportGin проверяет выгрузку результатов в Excel
func TestHandleExportGin(t *testing.T) {
	router, _ := newTestRouter(t)

	body := evaluateBody(t, map[string]interface{}{
		"brand": map[string]string{"name": "auragain", "manufacturer": "ambu"},
	})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/matching/export", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), ".xlsx")
	// Книга xlsx - это zip архив, начинается с сигнатуры PK
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("PK")))
}
