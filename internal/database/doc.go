// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, migrations, collection seeding
//	├── collections/     # Collection and book CRUD for the admin surface
//	├── bookmarks/       # Per-user hadith bookmarks
//	└── history/         # Per-user reading history and retention pruning
//
// Each sub-package provides a Repository type with domain-specific
// operations:
//
//	db, err := database.NewDatabase("./app.db")
//	collectionsRepo := collections.NewRepository(db.DB)
//	bookmarksRepo := bookmarks.NewRepository(db.DB)
//
// Repositories implement the store interfaces declared next to their
// consumers (internal/http controllers, internal/tasks processors), checked
// at compile time with:
//
//	var _ http.BookmarkStore = (*bookmarks.Repository)(nil)
package database
