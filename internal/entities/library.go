package entities

import (
	"time"

	"gorm.io/gorm"
)

// Bookmark marks a hadith a user wants to return to. The hadith is
// addressed by collection key + number rather than a foreign key because
// most served content never touches the relational store.
type Bookmark struct {
	ID            uint           `gorm:"primaryKey" json:"id"`
	UserID        uint           `gorm:"index;uniqueIndex:idx_user_coll_num" json:"user_id"`
	CollectionKey string         `gorm:"size:64;uniqueIndex:idx_user_coll_num" json:"collection_key"`
	HadithNumber  int            `gorm:"uniqueIndex:idx_user_coll_num" json:"hadith_number"`
	Note          string         `gorm:"type:text" json:"note,omitempty"`
	User          User           `gorm:"foreignKey:UserID" json:"-"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

// HistoryEntry records a hadith or surah view for a user's reading history.
type HistoryEntry struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	UserID        uint      `gorm:"index" json:"user_id"`
	CollectionKey string    `gorm:"size:64" json:"collection_key"`
	BookNumber    int       `json:"book_number,omitempty"`
	HadithNumber  int       `json:"hadith_number,omitempty"`
	User          User      `gorm:"foreignKey:UserID" json:"-"`
	ViewedAt      time.Time `gorm:"index" json:"viewed_at"`
	CreatedAt     time.Time `json:"created_at"`
}
