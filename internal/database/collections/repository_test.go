package collections

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Rey-han-24/Noor-ul-ilm-sub001/internal/entities"
)

func setupTestDB(t *testing.T) (*gorm.DB, *Repository, func()) {
	dbPath := "./test_collections_" + t.Name() + ".db"

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&entities.Collection{},
		&entities.Book{},
		&entities.Hadith{},
	)
	require.NoError(t, err)

	repo := NewRepository(db)

	cleanup := func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
		os.Remove(dbPath)
	}

	return db, repo, cleanup
}

func createTestCollection(t *testing.T, repo *Repository, key string) *entities.Collection {
	collection := &entities.Collection{
		Key:      key,
		Slug:     key + "-slug",
		Name:     "Collection " + key,
		HasBooks: true,
	}
	require.NoError(t, repo.Create(collection))
	return collection
}

func TestRepository_CreateAndGetByKey(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	created := createTestCollection(t, repo, "bukhari")

	got, err := repo.GetByKey("bukhari")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Collection bukhari", got.Name)
}

func TestRepository_CreateRejectsDuplicateKey(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	createTestCollection(t, repo, "bukhari")

	err := repo.Create(&entities.Collection{Key: "bukhari", Slug: "other-slug", Name: "Duplicate"})
	assert.ErrorIs(t, err, ErrCollectionExists)
}

func TestRepository_CreateRequiresKey(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	err := repo.Create(&entities.Collection{Name: "No key"})
	assert.ErrorIs(t, err, ErrKeyRequired)
}

func TestRepository_GetByKeyNotFound(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	_, err := repo.GetByKey("missing")
	assert.ErrorIs(t, err, ErrCollectionNotFound)
}

func TestRepository_Update(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	created := createTestCollection(t, repo, "muslim")

	err := repo.Update(created.ID, map[string]any{"name": "Sahih Muslim"})
	require.NoError(t, err)

	got, err := repo.GetByKey("muslim")
	require.NoError(t, err)
	assert.Equal(t, "Sahih Muslim", got.Name)

	assert.ErrorIs(t, repo.Update(9999, map[string]any{"name": "x"}), ErrCollectionNotFound)
}

func TestRepository_DeleteRemovesBooks(t *testing.T) {
	db, repo, cleanup := setupTestDB(t)
	defer cleanup()

	created := createTestCollection(t, repo, "tirmidhi")
	require.NoError(t, repo.UpsertBook(&entities.Book{CollectionID: created.ID, Number: 1, Name: "Purification"}))

	require.NoError(t, repo.Delete(created.ID))

	_, err := repo.GetByKey("tirmidhi")
	assert.ErrorIs(t, err, ErrCollectionNotFound)

	var count int64
	db.Model(&entities.Book{}).Where("collection_id = ?", created.ID).Count(&count)
	assert.Zero(t, count)
}

func TestRepository_UpsertBook(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	created := createTestCollection(t, repo, "nasai")

	book := &entities.Book{CollectionID: created.ID, Number: 1, Name: "Purification", FirstHadith: 1, LastHadith: 325}
	require.NoError(t, repo.UpsertBook(book))

	// Second upsert with the same number updates in place.
	require.NoError(t, repo.UpsertBook(&entities.Book{CollectionID: created.ID, Number: 1, Name: "The Book of Purification", FirstHadith: 1, LastHadith: 325}))

	books, err := repo.GetBooks(created.ID)
	require.NoError(t, err)
	require.Len(t, books, 1)
	assert.Equal(t, "The Book of Purification", books[0].Name)
}

func TestRepository_GetBooksOrdered(t *testing.T) {
	_, repo, cleanup := setupTestDB(t)
	defer cleanup()

	created := createTestCollection(t, repo, "ibnmajah")
	require.NoError(t, repo.UpsertBook(&entities.Book{CollectionID: created.ID, Number: 3, Name: "Third"}))
	require.NoError(t, repo.UpsertBook(&entities.Book{CollectionID: created.ID, Number: 1, Name: "First"}))

	books, err := repo.GetBooks(created.ID)
	require.NoError(t, err)
	require.Len(t, books, 2)
	assert.Equal(t, 1, books[0].Number)
	assert.Equal(t, 3, books[1].Number)
}
