package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rey-han-24/Noor-ul-ilm-sub001/internal/database/bookmarks"
	"github.com/Rey-han-24/Noor-ul-ilm-sub001/internal/entities"
	"github.com/Rey-han-24/Noor-ul-ilm-sub001/internal/hadith"
)

// BookmarkStore provides persistence for per-user hadith bookmarks.
type BookmarkStore interface {
	Add(userID uint, collectionKey string, hadithNumber int, note string) (*entities.Bookmark, error)
	Remove(userID uint, collectionKey string, hadithNumber int) error
	List(userID uint, limit, offset int) ([]entities.Bookmark, int64, error)
}

var _ BookmarkStore = (*bookmarks.Repository)(nil)

type BookmarksController struct {
	store BookmarkStore
}

func NewBookmarksController(store BookmarkStore) *BookmarksController {
	return &BookmarksController{store: store}
}

type bookmarkRequest struct {
	Collection   string `json:"collection" binding:"required"`
	HadithNumber int    `json:"hadith_number" binding:"required"`
	Note         string `json:"note"`
}

// AddBookmark saves a hadith to the user's library. Adding an already
// bookmarked hadith updates its note.
func (ctrl *BookmarksController) AddBookmark(c *gin.Context) {
	var req bookmarkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "collection and hadith_number are required")
		return
	}

	if !hadith.IsSupported(req.Collection) {
		respondNotFound(c, "collection")
		return
	}

	bookmark, err := ctrl.store.Add(GetUserID(c), req.Collection, req.HadithNumber, req.Note)
	if err != nil {
		respondInternalError(c, err, "adding bookmark")
		return
	}

	respondCreated(c, bookmark)
}

// RemoveBookmark deletes a bookmark by collection and hadith number.
func (ctrl *BookmarksController) RemoveBookmark(c *gin.Context) {
	collectionID := c.Param("collection")
	number, ok := parseIntParam(c, "number")
	if !ok {
		return
	}

	err := ctrl.store.Remove(GetUserID(c), collectionID, number)
	if err != nil {
		if errors.Is(err, bookmarks.ErrBookmarkNotFound) {
			respondNotFound(c, "bookmark")
			return
		}
		respondInternalError(c, err, "removing bookmark")
		return
	}

	respondSuccess(c, "bookmark removed")
}

// ListBookmarks returns the user's bookmarks, newest first.
func (ctrl *BookmarksController) ListBookmarks(c *gin.Context) {
	page, limit := parsePagination(c, defaultHadithPageSize, maxHadithPageSize)
	offset := (page - 1) * limit

	items, total, err := ctrl.store.List(GetUserID(c), limit, offset)
	if err != nil {
		respondInternalError(c, err, "listing bookmarks")
		return
	}

	c.JSON(http.StatusOK, PaginatedResponse{
		Data:    items,
		Total:   total,
		Page:    page,
		Limit:   limit,
		HasMore: int64(offset+len(items)) < total,
	})
}
