package http

import (
	"github.com/gin-gonic/gin"

	"github.com/Rey-han-24/Noor-ul-ilm-sub001/internal/auth"
	"github.com/Rey-han-24/Noor-ul-ilm-sub001/internal/entities"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies, improving testability
// and reducing parameter count.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Apply security headers to all responses
	router.Use(auth.SecurityHeadersMiddleware())

	// Apply CSRF protection if auth is enabled
	// CSRF must run before session so that session context is preserved
	if len(cfg.CSRFSecret) > 0 {
		router.Use(auth.CSRFMiddleware(cfg.CSRFSecret, cfg.SecureCookies))
	}

	// Session runs after CSRF so session context isn't overwritten
	// by CSRF's request replacement
	if cfg.SessionManager != nil {
		router.Use(cfg.SessionManager.SessionLoadSave())
	}

	// Resolve the session user on every request
	if cfg.AuthMiddleware != nil {
		router.Use(cfg.AuthMiddleware.Handler())
	} else {
		// No auth - inject default user ID
		router.Use(func(c *gin.Context) {
			c.Set(auth.ContextKeyUserID, auth.DefaultUserID)
			c.Next()
		})
	}

	// Health endpoints
	health := NewHealthController(cfg.Database, cfg.Version)
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Auth endpoints
	if cfg.AuthService != nil && cfg.AuthService.IsAuthEnabled() {
		authController := auth.NewController(cfg.AuthService, cfg.SessionManager, cfg.RateLimiter)
		router.POST("/api/auth/login", authController.Login)
		router.POST("/api/auth/logout", authController.Logout)
		router.GET("/api/auth/me", authController.CurrentUser)
		router.POST("/api/auth/password", authController.ChangePassword)
	}

	// Hadith content endpoints (public)
	hadithController := NewHadithController(cfg.Resolver)
	router.GET("/api/collections", hadithController.ListCollections)
	router.GET("/api/collections/:collection/books", hadithController.ListBooks)
	router.GET("/api/collections/:collection/books/:book/hadiths", hadithController.ListBookHadiths)
	router.GET("/api/collections/:collection/hadiths/:number", hadithController.GetHadith)
	router.GET("/api/hadiths/search", hadithController.Search)

	// Quran endpoints (public)
	if cfg.Quran != nil {
		quranController := NewQuranController(cfg.Quran)
		router.GET("/api/quran/surah/:number", quranController.GetSurah)
		router.GET("/api/quran/ayah/:reference", quranController.GetAyah)
		router.GET("/api/quran/tafsir/:reference", quranController.GetTafsir)
	}

	// Personal library endpoints (authenticated when auth is enabled)
	library := router.Group("/api")
	if cfg.AuthMiddleware != nil {
		library.Use(cfg.AuthMiddleware.RequireAuth())
	}

	if cfg.BookmarkStore != nil {
		bookmarksController := NewBookmarksController(cfg.BookmarkStore)
		library.POST("/bookmarks", bookmarksController.AddBookmark)
		library.GET("/bookmarks", bookmarksController.ListBookmarks)
		library.DELETE("/bookmarks/:collection/:number", bookmarksController.RemoveBookmark)
	}

	if cfg.HistoryStore != nil {
		historyController := NewHistoryController(cfg.HistoryStore)
		library.POST("/history", historyController.RecordView)
		library.GET("/history", historyController.ListHistory)
		library.DELETE("/history", historyController.ClearHistory)
	}

	// Admin endpoints (admin role when auth is enabled)
	admin := router.Group("/api/admin")
	if cfg.AuthMiddleware != nil {
		admin.Use(cfg.AuthMiddleware.RequireRole(entities.UserRoleAdmin))
	}

	if cfg.CollectionStore != nil {
		collectionsController := NewCollectionsController(cfg.CollectionStore)
		admin.GET("/collections", collectionsController.ListCollections)
		admin.GET("/collections/:key", collectionsController.GetCollection)
		admin.POST("/collections", collectionsController.CreateCollection)
		admin.PATCH("/collections/:key", collectionsController.UpdateCollection)
		admin.DELETE("/collections/:key", collectionsController.DeleteCollection)
	}

	// Task management endpoints
	if cfg.TaskClient != nil {
		tasksController := NewTasksController(cfg.TaskClient)
		admin.GET("/tasks/types", tasksController.ListTaskTypes)
		admin.GET("/tasks/:id", tasksController.GetTaskStatus)
		admin.POST("/tasks/:type/run", tasksController.RunTask)
	}

	return router
}
