package database

import (
	"fmt"
	"log"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/Rey-han-24/Noor-ul-ilm-sub001/internal/entities"
)

// defaultCollections seeds the canonical collections so the admin surface
// has something to manage on first boot. Content itself is resolved from
// the curated dataset and the CDN; these rows carry display metadata.
var defaultCollections = []entities.Collection{
	{Key: "bukhari", Slug: "sahih-al-bukhari", Name: "Sahih al-Bukhari", ArabicName: "صحيح البخاري", HasBooks: true},
	{Key: "muslim", Slug: "sahih-muslim", Name: "Sahih Muslim", ArabicName: "صحيح مسلم", HasBooks: true},
	{Key: "abudawud", Slug: "sunan-abi-dawud", Name: "Sunan Abi Dawud", ArabicName: "سنن أبي داود", HasBooks: true},
	{Key: "tirmidhi", Slug: "jami-at-tirmidhi", Name: "Jami` at-Tirmidhi", ArabicName: "جامع الترمذي", HasBooks: true},
	{Key: "nasai", Slug: "sunan-an-nasai", Name: "Sunan an-Nasa'i", ArabicName: "سنن النسائي", HasBooks: true},
	{Key: "ibnmajah", Slug: "sunan-ibn-majah", Name: "Sunan Ibn Majah", ArabicName: "سنن ابن ماجه", HasBooks: true},
	{Key: "malik", Slug: "muwatta-malik", Name: "Muwatta Malik", ArabicName: "موطأ مالك", HasBooks: true},
	{Key: "nawawi40", Slug: "forty-hadith-nawawi", Name: "An-Nawawi's Forty Hadith", ArabicName: "الأربعون النووية", HasBooks: false},
}

type Database struct {
	DB *gorm.DB
}

func NewDatabase(dbPath string) (*Database, error) {
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Auto-migrate all entities
	err = db.AutoMigrate(
		&entities.User{},
		&entities.Collection{},
		&entities.Book{},
		&entities.Hadith{},
		&entities.Bookmark{},
		&entities.HistoryEntry{},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	database := &Database{DB: db}

	if err := database.seedCollections(); err != nil {
		return nil, fmt.Errorf("failed to seed collections: %w", err)
	}

	log.Printf("Database initialized successfully at %s", dbPath)

	return database, nil
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (d *Database) seedCollections() error {
	for _, collection := range defaultCollections {
		var existing entities.Collection
		result := d.DB.Where("key = ?", collection.Key).First(&existing)
		if result.Error == gorm.ErrRecordNotFound {
			if err := d.DB.Create(&collection).Error; err != nil {
				return fmt.Errorf("failed to create collection %s: %w", collection.Key, err)
			}
			log.Printf("Created collection: %s", collection.Name)
		}
	}
	return nil
}
