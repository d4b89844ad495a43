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
	"github.com/Rey-han-24/Noor-ul-ilm-sub001/internal/database/collections"
)

func setupCollectionsTest(t *testing.T) (*gin.Engine, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbPath := "./test_collections_http_" + strings.ReplaceAll(t.Name(), "/", "_") + ".db"
	db, err := database.NewDatabase(dbPath)
	require.NoError(t, err)

	controller := NewCollectionsController(collections.NewRepository(db.DB))

	router := gin.New()
	router.GET("/api/admin/collections", controller.ListCollections)
	router.GET("/api/admin/collections/:key", controller.GetCollection)
	router.POST("/api/admin/collections", controller.CreateCollection)
	router.PATCH("/api/admin/collections/:key", controller.UpdateCollection)
	router.DELETE("/api/admin/collections/:key", controller.DeleteCollection)

	cleanup := func() {
		db.Close()
		os.Remove(dbPath)
	}
	return router, cleanup
}

func postCollection(t *testing.T, router *gin.Engine, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/api/admin/collections", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestCollectionsController_ListCollections(t *testing.T) {
	router, cleanup := setupCollectionsTest(t)
	defer cleanup()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/admin/collections", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	// The database seeds the canonical collections on startup
	count := int(response["count"].(float64))
	assert.GreaterOrEqual(t, count, 8)
	assert.Contains(t, w.Body.String(), "bukhari")
}

func TestCollectionsController_GetCollection(t *testing.T) {
	t.Run("returns a seeded collection", func(t *testing.T) {
		router, cleanup := setupCollectionsTest(t)
		defer cleanup()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/admin/collections/bukhari", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Sahih al-Bukhari")
	})

	t.Run("returns 404 for unknown key", func(t *testing.T) {
		router, cleanup := setupCollectionsTest(t)
		defer cleanup()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/admin/collections/unknown", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCollectionsController_CreateCollection(t *testing.T) {
	t.Run("creates a new collection", func(t *testing.T) {
		router, cleanup := setupCollectionsTest(t)
		defer cleanup()

		w := postCollection(t, router, map[string]any{
			"key":         "riyadussalihin",
			"name":        "Riyad as-Salihin",
			"arabic_name": "رياض الصالحين",
			"has_books":   true,
		})

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "riyadussalihin")
	})

	t.Run("rejects a duplicate key", func(t *testing.T) {
		router, cleanup := setupCollectionsTest(t)
		defer cleanup()

		w := postCollection(t, router, map[string]any{
			"key":  "bukhari",
			"name": "Duplicate",
		})

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		router, cleanup := setupCollectionsTest(t)
		defer cleanup()

		w := postCollection(t, router, map[string]any{"key": "nokey"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCollectionsController_UpdateCollection(t *testing.T) {
	t.Run("updates whitelisted fields", func(t *testing.T) {
		router, cleanup := setupCollectionsTest(t)
		defer cleanup()

		payload, _ := json.Marshal(map[string]any{
			"name":          "Sahih al-Bukhari (revised)",
			"total_hadiths": 7563,
			"key":           "must-not-change",
		})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PATCH", "/api/admin/collections/bukhari", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		// The key is immutable, the rest changed
		w = httptest.NewRecorder()
		req, _ = http.NewRequest("GET", "/api/admin/collections/bukhari", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "revised")
	})

	t.Run("returns 404 for unknown key", func(t *testing.T) {
		router, cleanup := setupCollectionsTest(t)
		defer cleanup()

		payload, _ := json.Marshal(map[string]any{"name": "x"})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PATCH", "/api/admin/collections/unknown", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("rejects update with no known fields", func(t *testing.T) {
		router, cleanup := setupCollectionsTest(t)
		defer cleanup()

		payload, _ := json.Marshal(map[string]any{"bogus": true})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("PATCH", "/api/admin/collections/bukhari", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCollectionsController_DeleteCollection(t *testing.T) {
	t.Run("deletes a collection", func(t *testing.T) {
		router, cleanup := setupCollectionsTest(t)
		defer cleanup()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/api/admin/collections/bukhari", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		req, _ = http.NewRequest("GET", "/api/admin/collections/bukhari", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("returns 404 for unknown key", func(t *testing.T) {
		router, cleanup := setupCollectionsTest(t)
		defer cleanup()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("DELETE", "/api/admin/collections/unknown", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
