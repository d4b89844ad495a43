// Package history provides database operations for per-user reading
// history, including the retention pruning used by the cleanup task.
package history

import (
	"time"

	"gorm.io/gorm"

	"github.com/Rey-han-24/Noor-ul-ilm-sub001/internal/entities"
)

// Repository handles all reading history database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new history repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Record appends a view to the user's reading history.
func (r *Repository) Record(userID uint, collectionKey string, bookNumber, hadithNumber int) error {
	entry := &entities.HistoryEntry{
		UserID:        userID,
		CollectionKey: collectionKey,
		BookNumber:    bookNumber,
		HadithNumber:  hadithNumber,
		ViewedAt:      time.Now(),
	}
	return r.db.Create(entry).Error
}

// List returns a user's history, most recent first, with the total count.
func (r *Repository) List(userID uint, limit, offset int) ([]entities.HistoryEntry, int64, error) {
	var total int64
	if err := r.db.Model(&entities.HistoryEntry{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.db.Where("user_id = ?", userID).Order("viewed_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	var entries []entities.HistoryEntry
	err := query.Find(&entries).Error
	return entries, total, err
}

// Clear removes all history for a user.
func (r *Repository) Clear(userID uint) error {
	return r.db.Where("user_id = ?", userID).Delete(&entities.HistoryEntry{}).Error
}

// DeleteOlderThan removes entries past the retention window and reports how
// many were deleted.
func (r *Repository) DeleteOlderThan(retention time.Duration) (int64, error) {
	cutoff := time.Now().Add(-retention)
	result := r.db.Where("viewed_at < ?", cutoff).Delete(&entities.HistoryEntry{})
	return result.RowsAffected, result.Error
}
