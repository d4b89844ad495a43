package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Rey-han-24/Noor-ul-ilm-sub001/internal/hadith"
)

const (
	defaultHadithPageSize = 25
	maxHadithPageSize     = 100
)

// HadithResolver is the resolution surface the hadith endpoints depend on.
type HadithResolver interface {
	CollectionBooks(ctx context.Context, collectionID string) []hadith.BookInfo
	BookHadithsByGrade(ctx context.Context, collectionID string, bookNumber int, grade string, page, limit int) hadith.Page
	Hadith(ctx context.Context, collectionID string, hadithNumber int) *hadith.Record
	Search(ctx context.Context, query, collectionID string, page, limit int) hadith.Page
}

// Compile-time check that the real resolver satisfies the interface.
var _ HadithResolver = (*hadith.Resolver)(nil)

type HadithController struct {
	resolver HadithResolver
}

func NewHadithController(resolver HadithResolver) *HadithController {
	return &HadithController{resolver: resolver}
}

// ListCollections returns the supported hadith collections.
func (ctrl *HadithController) ListCollections(c *gin.Context) {
	collections := hadith.SupportedCollections()

	type collectionView struct {
		ID   string `json:"id"`
		Slug string `json:"slug"`
		Name string `json:"name"`
	}

	views := make([]collectionView, 0, len(collections))
	for _, col := range collections {
		views = append(views, collectionView{ID: col.ID, Slug: col.Slug, Name: col.Name})
	}

	c.JSON(http.StatusOK, gin.H{"collections": views, "count": len(views)})
}

// ListBooks returns the book metadata of a collection.
func (ctrl *HadithController) ListBooks(c *gin.Context) {
	collectionID := c.Param("collection")
	if !hadith.IsSupported(collectionID) {
		respondNotFound(c, "collection")
		return
	}

	books := ctrl.resolver.CollectionBooks(c.Request.Context(), collectionID)
	if books == nil {
		books = []hadith.BookInfo{}
	}

	c.JSON(http.StatusOK, gin.H{"collection": collectionID, "books": books, "count": len(books)})
}

// ListBookHadiths returns one page of a book's hadiths, optionally
// filtered by authenticity grade via the ?status= query parameter
// (?grade= is accepted as an alias).
func (ctrl *HadithController) ListBookHadiths(c *gin.Context) {
	collectionID := c.Param("collection")
	if !hadith.IsSupported(collectionID) {
		respondNotFound(c, "collection")
		return
	}

	bookNumber, ok := parseIntParam(c, "book")
	if !ok {
		return
	}

	page, limit := parsePagination(c, defaultHadithPageSize, maxHadithPageSize)
	grade := strings.TrimSpace(c.Query("status"))
	if grade == "" {
		grade = strings.TrimSpace(c.Query("grade"))
	}

	result := ctrl.resolver.BookHadithsByGrade(c.Request.Context(), collectionID, bookNumber, grade, page, limit)

	c.JSON(http.StatusOK, PaginatedResponse{
		Data:    result.Hadiths,
		Total:   int64(result.Total),
		Page:    page,
		Limit:   limit,
		HasMore: result.HasMore,
	})
}

// GetHadith returns a single hadith by collection and number.
func (ctrl *HadithController) GetHadith(c *gin.Context) {
	collectionID := c.Param("collection")
	if !hadith.IsSupported(collectionID) {
		respondNotFound(c, "collection")
		return
	}

	number, ok := parseIntParam(c, "number")
	if !ok {
		return
	}

	record := ctrl.resolver.Hadith(c.Request.Context(), collectionID, number)
	if record == nil {
		respondNotFound(c, "hadith")
		return
	}

	c.JSON(http.StatusOK, record)
}

// Search matches hadiths by text, optionally scoped to one collection.
func (ctrl *HadithController) Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		respondBadRequest(c, "q query parameter is required")
		return
	}

	collectionID := c.Query("collection")
	if collectionID != "" && !hadith.IsSupported(collectionID) {
		respondNotFound(c, "collection")
		return
	}

	page, limit := parsePagination(c, defaultHadithPageSize, maxHadithPageSize)
	result := ctrl.resolver.Search(c.Request.Context(), query, collectionID, page, limit)

	c.JSON(http.StatusOK, PaginatedResponse{
		Data:    result.Hadiths,
		Total:   int64(result.Total),
		Page:    page,
		Limit:   limit,
		HasMore: result.HasMore,
	})
}
