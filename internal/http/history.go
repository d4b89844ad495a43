package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rey-han-24/Noor-ul-ilm-sub001/internal/database/history"
	"github.com/Rey-han-24/Noor-ul-ilm-sub001/internal/entities"
	"github.com/Rey-han-24/Noor-ul-ilm-sub001/internal/hadith"
)

// HistoryStore provides persistence for per-user reading history.
type HistoryStore interface {
	Record(userID uint, collectionKey string, bookNumber, hadithNumber int) error
	List(userID uint, limit, offset int) ([]entities.HistoryEntry, int64, error)
	Clear(userID uint) error
}

var _ HistoryStore = (*history.Repository)(nil)

type HistoryController struct {
	store HistoryStore
}

func NewHistoryController(store HistoryStore) *HistoryController {
	return &HistoryController{store: store}
}

type historyRequest struct {
	Collection   string `json:"collection" binding:"required"`
	BookNumber   int    `json:"book_number"`
	HadithNumber int    `json:"hadith_number" binding:"required"`
}

// RecordView appends a viewed hadith to the user's history.
func (ctrl *HistoryController) RecordView(c *gin.Context) {
	var req historyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "collection and hadith_number are required")
		return
	}

	if !hadith.IsSupported(req.Collection) {
		respondNotFound(c, "collection")
		return
	}

	if err := ctrl.store.Record(GetUserID(c), req.Collection, req.BookNumber, req.HadithNumber); err != nil {
		respondInternalError(c, err, "recording history")
		return
	}

	respondCreated(c, gin.H{"status": "recorded"})
}

// ListHistory returns the user's reading history, most recent first.
func (ctrl *HistoryController) ListHistory(c *gin.Context) {
	page, limit := parsePagination(c, defaultHadithPageSize, maxHadithPageSize)
	offset := (page - 1) * limit

	entries, total, err := ctrl.store.List(GetUserID(c), limit, offset)
	if err != nil {
		respondInternalError(c, err, "listing history")
		return
	}

	c.JSON(http.StatusOK, PaginatedResponse{
		Data:    entries,
		Total:   total,
		Page:    page,
		Limit:   limit,
		HasMore: int64(offset+len(entries)) < total,
	})
}

// ClearHistory removes all of the user's history entries.
func (ctrl *HistoryController) ClearHistory(c *gin.Context) {
	if err := ctrl.store.Clear(GetUserID(c)); err != nil {
		respondInternalError(c, err, "clearing history")
		return
	}
	respondSuccess(c, "history cleared")
}
