package entities

import (
	"time"

	"gorm.io/gorm"
)

// Collection is a named hadith corpus (e.g. Sahih al-Bukhari) managed
// through the admin surface. Key is the short string identifier used
// throughout the resolver ("bukhari", "muslim", ...).
type Collection struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Key          string         `gorm:"uniqueIndex;size:64" json:"key"`
	Slug         string         `gorm:"uniqueIndex;size:128" json:"slug"`
	Name         string         `gorm:"size:256" json:"name"`
	ArabicName   string         `gorm:"size:256" json:"arabic_name,omitempty"`
	HasBooks     bool           `gorm:"default:true" json:"has_books"`
	TotalHadiths int            `json:"total_hadiths,omitempty"`
	Books        []Book         `gorm:"foreignKey:CollectionID" json:"books,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// Book is a numbered subdivision of a collection.
type Book struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	CollectionID uint           `gorm:"index;uniqueIndex:idx_collection_book" json:"collection_id"`
	Number       int            `gorm:"uniqueIndex:idx_collection_book" json:"number"`
	Name         string         `gorm:"size:512" json:"name"`
	ArabicName   string         `gorm:"size:512" json:"arabic_name,omitempty"`
	FirstHadith  int            `json:"first_hadith,omitempty"`
	LastHadith   int            `json:"last_hadith,omitempty"`
	HadithCount  int            `json:"hadith_count,omitempty"`
	Collection   Collection     `gorm:"foreignKey:CollectionID" json:"-"`
	Hadiths      []Hadith       `gorm:"foreignKey:BookID" json:"hadiths,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// Hadith is a persisted hadith row for admin-managed collections. The
// resolver's normalized record type lives in internal/hadith; this entity
// backs the admin surface, not the resolution chain.
type Hadith struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	CollectionID uint   `gorm:"index" json:"collection_id"`
	BookID       uint   `gorm:"index" json:"book_id,omitempty"`
	Number       int    `gorm:"index" json:"number"`
	ArabicText   string `gorm:"type:text" json:"arabic_text"`
	EnglishText  string `gorm:"type:text" json:"english_text,omitempty"`
	Narrator     string `gorm:"size:256" json:"narrator,omitempty"`
	Grade        string `gorm:"size:32" json:"grade,omitempty"`
	Reference    string `gorm:"size:128" json:"reference,omitempty"`

	Collection Collection `gorm:"foreignKey:CollectionID" json:"-"`
	Book       Book       `gorm:"foreignKey:BookID" json:"-"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}
