package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Rey-han-24/Noor-ul-ilm-sub001/internal/hadith"
)

// stubResolver returns canned data and records what was asked of it.
type stubResolver struct {
	books      []hadith.BookInfo
	page       hadith.Page
	record     *hadith.Record
	lastGrade  string
	lastQuery  string
	lastNumber int
}

func (s *stubResolver) CollectionBooks(ctx context.Context, collectionID string) []hadith.BookInfo {
	return s.books
}

func (s *stubResolver) BookHadithsByGrade(ctx context.Context, collectionID string, bookNumber int, grade string, page, limit int) hadith.Page {
	s.lastGrade = grade
	return s.page
}

func (s *stubResolver) Hadith(ctx context.Context, collectionID string, hadithNumber int) *hadith.Record {
	s.lastNumber = hadithNumber
	return s.record
}

func (s *stubResolver) Search(ctx context.Context, query, collectionID string, page, limit int) hadith.Page {
	s.lastQuery = query
	return s.page
}

func newHadithRouter(resolver HadithResolver) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewHadithController(resolver)

	router := gin.New()
	router.GET("/api/collections", controller.ListCollections)
	router.GET("/api/collections/:collection/books", controller.ListBooks)
	router.GET("/api/collections/:collection/books/:book/hadiths", controller.ListBookHadiths)
	router.GET("/api/collections/:collection/hadiths/:number", controller.GetHadith)
	router.GET("/api/hadiths/search", controller.Search)
	return router
}

func TestHadithController_ListCollections(t *testing.T) {
	router := newHadithRouter(&stubResolver{})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/api/collections", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))

	count := int(response["count"].(float64))
	assert.Greater(t, count, 0)

	ids := make(map[string]bool)
	for _, raw := range response["collections"].([]any) {
		col := raw.(map[string]any)
		ids[col["id"].(string)] = true
	}
	assert.True(t, ids["bukhari"])
	assert.True(t, ids["muslim"])
}

func TestHadithController_ListBooks(t *testing.T) {
	t.Run("returns books for a supported collection", func(t *testing.T) {
		resolver := &stubResolver{
			books: []hadith.BookInfo{
				{Number: 1, Name: "Revelation", HadithCount: 7},
				{Number: 2, Name: "Belief", HadithCount: 51},
			},
		}
		router := newHadithRouter(resolver)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/collections/bukhari/books", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, float64(2), response["count"])
		assert.Equal(t, "bukhari", response["collection"])
	})

	t.Run("returns 404 for unknown collection", func(t *testing.T) {
		router := newHadithRouter(&stubResolver{})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/collections/unknown/books", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("returns empty list when resolver has nothing", func(t *testing.T) {
		router := newHadithRouter(&stubResolver{})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/collections/bukhari/books", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"books":[]`)
	})
}

func TestHadithController_ListBookHadiths(t *testing.T) {
	t.Run("returns a page with pagination metadata", func(t *testing.T) {
		resolver := &stubResolver{
			page: hadith.Page{
				Hadiths: []hadith.Record{
					{CollectionID: "bukhari", HadithNumber: 1, ArabicText: "نص"},
				},
				Total:   100,
				HasMore: true,
			},
		}
		router := newHadithRouter(resolver)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/collections/bukhari/books/1/hadiths?page=2&limit=10", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response PaginatedResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, int64(100), response.Total)
		assert.Equal(t, 2, response.Page)
		assert.Equal(t, 10, response.Limit)
		assert.True(t, response.HasMore)
	})

	t.Run("passes the status filter through", func(t *testing.T) {
		resolver := &stubResolver{}
		router := newHadithRouter(resolver)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/collections/bukhari/books/1/hadiths?status=sahih", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "sahih", resolver.lastGrade)
	})

	t.Run("accepts grade as an alias for status", func(t *testing.T) {
		resolver := &stubResolver{}
		router := newHadithRouter(resolver)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/collections/bukhari/books/1/hadiths?grade=hasan", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "hasan", resolver.lastGrade)
	})

	t.Run("rejects invalid book number", func(t *testing.T) {
		router := newHadithRouter(&stubResolver{})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/collections/bukhari/books/abc/hadiths", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHadithController_GetHadith(t *testing.T) {
	t.Run("returns the record when found", func(t *testing.T) {
		resolver := &stubResolver{
			record: &hadith.Record{
				CollectionID: "bukhari",
				HadithNumber: 1,
				ArabicText:   "إنما الأعمال بالنيات",
				EnglishText:  "Narrated Umar: Actions are but by intentions.",
			},
		}
		router := newHadithRouter(resolver)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/collections/bukhari/hadiths/1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 1, resolver.lastNumber)

		var record hadith.Record
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &record))
		assert.Equal(t, "bukhari", record.CollectionID)
		assert.NotEmpty(t, record.ArabicText)
	})

	t.Run("returns 404 when no source has it", func(t *testing.T) {
		router := newHadithRouter(&stubResolver{})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/collections/bukhari/hadiths/99999", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("returns 404 for unknown collection", func(t *testing.T) {
		router := newHadithRouter(&stubResolver{})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/collections/unknown/hadiths/1", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHadithController_Search(t *testing.T) {
	t.Run("requires a query", func(t *testing.T) {
		router := newHadithRouter(&stubResolver{})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/hadiths/search", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects unsupported collection filter", func(t *testing.T) {
		router := newHadithRouter(&stubResolver{})

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/hadiths/search?q=intention&collection=unknown", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("returns matches", func(t *testing.T) {
		resolver := &stubResolver{
			page: hadith.Page{
				Hadiths: []hadith.Record{
					{CollectionID: "bukhari", HadithNumber: 1, ArabicText: "نص"},
				},
				Total:   1,
				HasMore: false,
			},
		}
		router := newHadithRouter(resolver)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/hadiths/search?q=intention", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "intention", resolver.lastQuery)

		var response PaginatedResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, int64(1), response.Total)
		assert.False(t, response.HasMore)
	})
}
