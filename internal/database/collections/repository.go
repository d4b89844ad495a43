// Package collections provides database operations for collection and book
// management through the admin surface.
package collections

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/Rey-han-24/Noor-ul-ilm-sub001/internal/entities"
)

var (
	ErrCollectionNotFound = errors.New("collection not found")
	ErrCollectionExists   = errors.New("collection already exists")
	ErrKeyRequired        = errors.New("collection key is required")
)

// Repository handles all collection database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new collections repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// GetAll returns every collection ordered by name.
func (r *Repository) GetAll() ([]entities.Collection, error) {
	var collections []entities.Collection
	err := r.db.Order("name ASC").Find(&collections).Error
	return collections, err
}

// GetByKey returns the collection with the given short key.
func (r *Repository) GetByKey(key string) (*entities.Collection, error) {
	var collection entities.Collection
	err := r.db.Where("key = ?", key).First(&collection).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCollectionNotFound
		}
		return nil, err
	}
	return &collection, nil
}

// Create inserts a new collection.
func (r *Repository) Create(collection *entities.Collection) error {
	if collection.Key == "" {
		return ErrKeyRequired
	}

	var existing entities.Collection
	err := r.db.Where("key = ? OR slug = ?", collection.Key, collection.Slug).First(&existing).Error
	if err == nil {
		return ErrCollectionExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to check existing collection: %w", err)
	}

	return r.db.Create(collection).Error
}

// Update applies field updates to a collection by ID.
func (r *Repository) Update(id uint, updates map[string]any) error {
	result := r.db.Model(&entities.Collection{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCollectionNotFound
	}
	return nil
}

// Delete soft-deletes a collection and its books.
func (r *Repository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("collection_id = ?", id).Delete(&entities.Book{}).Error; err != nil {
			return err
		}
		result := tx.Delete(&entities.Collection{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrCollectionNotFound
		}
		return nil
	})
}

// GetBooks returns the books of a collection ordered by number.
func (r *Repository) GetBooks(collectionID uint) ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Where("collection_id = ?", collectionID).Order("number ASC").Find(&books).Error
	return books, err
}

// UpsertBook creates or updates a book identified by (collection, number).
func (r *Repository) UpsertBook(book *entities.Book) error {
	var existing entities.Book
	err := r.db.Where("collection_id = ? AND number = ?", book.CollectionID, book.Number).First(&existing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return r.db.Create(book).Error
	}
	if err != nil {
		return err
	}

	book.ID = existing.ID
	return r.db.Model(&existing).Updates(map[string]any{
		"name":         book.Name,
		"arabic_name":  book.ArabicName,
		"first_hadith": book.FirstHadith,
		"last_hadith":  book.LastHadith,
		"hadith_count": book.HadithCount,
	}).Error
}
