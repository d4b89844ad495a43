package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rey-han-24/Noor-ul-ilm-sub001/internal/database/collections"
	"github.com/Rey-han-24/Noor-ul-ilm-sub001/internal/entities"
)

// CollectionStore provides persistence for admin-managed collections.
type CollectionStore interface {
	GetAll() ([]entities.Collection, error)
	GetByKey(key string) (*entities.Collection, error)
	Create(collection *entities.Collection) error
	Update(id uint, updates map[string]any) error
	Delete(id uint) error
	GetBooks(collectionID uint) ([]entities.Book, error)
}

var _ CollectionStore = (*collections.Repository)(nil)

type CollectionsController struct {
	store CollectionStore
}

func NewCollectionsController(store CollectionStore) *CollectionsController {
	return &CollectionsController{store: store}
}

type collectionRequest struct {
	Key          string `json:"key" binding:"required"`
	Slug         string `json:"slug"`
	Name         string `json:"name" binding:"required"`
	ArabicName   string `json:"arabic_name"`
	HasBooks     bool   `json:"has_books"`
	TotalHadiths int    `json:"total_hadiths"`
}

// ListCollections returns all stored collections.
func (ctrl *CollectionsController) ListCollections(c *gin.Context) {
	cols, err := ctrl.store.GetAll()
	if err != nil {
		respondInternalError(c, err, "listing collections")
		return
	}
	c.JSON(http.StatusOK, gin.H{"collections": cols, "count": len(cols)})
}

// GetCollection returns one stored collection with its books.
func (ctrl *CollectionsController) GetCollection(c *gin.Context) {
	col, err := ctrl.store.GetByKey(c.Param("key"))
	if err != nil {
		if errors.Is(err, collections.ErrCollectionNotFound) {
			respondNotFound(c, "collection")
			return
		}
		respondInternalError(c, err, "fetching collection")
		return
	}

	books, err := ctrl.store.GetBooks(col.ID)
	if err != nil {
		respondInternalError(c, err, "fetching collection books")
		return
	}

	c.JSON(http.StatusOK, gin.H{"collection": col, "books": books})
}

// CreateCollection adds a new stored collection.
func (ctrl *CollectionsController) CreateCollection(c *gin.Context) {
	var req collectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "key and name are required")
		return
	}

	col := &entities.Collection{
		Key:          req.Key,
		Slug:         req.Slug,
		Name:         req.Name,
		ArabicName:   req.ArabicName,
		HasBooks:     req.HasBooks,
		TotalHadiths: req.TotalHadiths,
	}

	if err := ctrl.store.Create(col); err != nil {
		switch {
		case errors.Is(err, collections.ErrCollectionExists):
			respondError(c, http.StatusConflict, "collection already exists")
		case errors.Is(err, collections.ErrKeyRequired):
			respondBadRequest(c, err.Error())
		default:
			respondInternalError(c, err, "creating collection")
		}
		return
	}

	respondCreated(c, col)
}

// UpdateCollection applies partial updates to a stored collection.
func (ctrl *CollectionsController) UpdateCollection(c *gin.Context) {
	col, err := ctrl.store.GetByKey(c.Param("key"))
	if err != nil {
		if errors.Is(err, collections.ErrCollectionNotFound) {
			respondNotFound(c, "collection")
			return
		}
		respondInternalError(c, err, "fetching collection")
		return
	}

	var body map[string]any
	if err := c.ShouldBindJSON(&body); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	// Only whitelisted fields may change
	updates := make(map[string]any)
	for _, field := range []string{"name", "arabic_name", "slug", "has_books", "total_hadiths"} {
		if v, exists := body[field]; exists {
			updates[field] = v
		}
	}
	if len(updates) == 0 {
		respondBadRequest(c, "no updatable fields provided")
		return
	}

	if err := ctrl.store.Update(col.ID, updates); err != nil {
		if errors.Is(err, collections.ErrCollectionNotFound) {
			respondNotFound(c, "collection")
			return
		}
		respondInternalError(c, err, "updating collection")
		return
	}

	respondSuccess(c, "collection updated")
}

// DeleteCollection removes a stored collection and its books.
func (ctrl *CollectionsController) DeleteCollection(c *gin.Context) {
	col, err := ctrl.store.GetByKey(c.Param("key"))
	if err != nil {
		if errors.Is(err, collections.ErrCollectionNotFound) {
			respondNotFound(c, "collection")
			return
		}
		respondInternalError(c, err, "fetching collection")
		return
	}

	if err := ctrl.store.Delete(col.ID); err != nil {
		if errors.Is(err, collections.ErrCollectionNotFound) {
			respondNotFound(c, "collection")
			return
		}
		respondInternalError(c, err, "deleting collection")
		return
	}

	respondSuccess(c, "collection deleted")
}
