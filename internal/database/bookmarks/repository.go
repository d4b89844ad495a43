// Package bookmarks provides database operations for per-user hadith
// bookmarks.
//
// This package implements the BookmarkStore interface defined in
// internal/http/bookmarks.go.
package bookmarks

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Rey-han-24/Noor-ul-ilm-sub001/internal/entities"
)

var ErrBookmarkNotFound = errors.New("bookmark not found")

// Repository handles all bookmark database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new bookmarks repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Add creates a bookmark, or updates the note of an existing one for the
// same (user, collection, hadith) triple.
func (r *Repository) Add(userID uint, collectionKey string, hadithNumber int, note string) (*entities.Bookmark, error) {
	var existing entities.Bookmark
	err := r.db.Where("user_id = ? AND collection_key = ? AND hadith_number = ?",
		userID, collectionKey, hadithNumber).First(&existing).Error
	if err == nil {
		if err := r.db.Model(&existing).Update("note", note).Error; err != nil {
			return nil, err
		}
		existing.Note = note
		return &existing, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	bookmark := &entities.Bookmark{
		UserID:        userID,
		CollectionKey: collectionKey,
		HadithNumber:  hadithNumber,
		Note:          note,
	}
	if err := r.db.Create(bookmark).Error; err != nil {
		return nil, err
	}
	return bookmark, nil
}

// Remove deletes a user's bookmark.
func (r *Repository) Remove(userID uint, collectionKey string, hadithNumber int) error {
	result := r.db.Where("user_id = ? AND collection_key = ? AND hadith_number = ?",
		userID, collectionKey, hadithNumber).Delete(&entities.Bookmark{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookmarkNotFound
	}
	return nil
}

// List returns a user's bookmarks, newest first, with the total count for
// pagination.
func (r *Repository) List(userID uint, limit, offset int) ([]entities.Bookmark, int64, error) {
	var total int64
	if err := r.db.Model(&entities.Bookmark{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.db.Where("user_id = ?", userID).Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var bookmarks []entities.Bookmark
	err := query.Find(&bookmarks).Error
	return bookmarks, total, err
}
