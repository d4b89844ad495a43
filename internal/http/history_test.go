package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rey-han-24/Noor-ul-ilm-sub001/internal/database"
	"github.com/Rey-han-24/Noor-ul-ilm-sub001/internal/database/history"
)

func setupHistoryTest(t *testing.T) (*gin.Engine, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_history_http_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	controller := NewHistoryController(history.NewRepository(db.DB))

	router := gin.New()
	router.POST("/api/history", controller.RecordView)
	router.GET("/api/history", controller.ListHistory)
	router.DELETE("/api/history", controller.ClearHistory)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return router, cleanup
}

func recordView(t *testing.T, router *gin.Engine, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/history", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestHistoryController_RecordView(t *testing.T) {
	t.Run("records a view", func(t *testing.T) {
		router, cleanup := setupHistoryTest(t)
		defer cleanup()

		w := recordView(t, router, map[string]any{
			"collection":    "bukhari",
			"book_number":   1,
			"hadith_number": 1,
		})

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		router, cleanup := setupHistoryTest(t)
		defer cleanup()

		w := recordView(t, router, map[string]any{"collection": "bukhari"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects unknown collection", func(t *testing.T) {
		router, cleanup := setupHistoryTest(t)
		defer cleanup()

		w := recordView(t, router, map[string]any{
			"collection":    "unknown",
			"hadith_number": 1,
		})

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHistoryController_ListHistory(t *testing.T) {
	router, cleanup := setupHistoryTest(t)
	defer cleanup()

	recordView(t, router, map[string]any{"collection": "bukhari", "hadith_number": 1})
	recordView(t, router, map[string]any{"collection": "muslim", "hadith_number": 2})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/history", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response PaginatedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, int64(2), response.Total)
	assert.False(t, response.HasMore)
}

func TestHistoryController_ClearHistory(t *testing.T) {
	router, cleanup := setupHistoryTest(t)
	defer cleanup()

	recordView(t, router, map[string]any{"collection": "bukhari", "hadith_number": 1})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/api/history", nil)
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/api/history", nil)
	router.ServeHTTP(w, req)

	var response PaginatedResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, int64(0), response.Total)
}
