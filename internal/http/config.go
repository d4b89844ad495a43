package http

import (
	"github.com/Rey-han-24/Noor-ul-ilm-sub001/internal/auth"
	"github.com/Rey-han-24/Noor-ul-ilm-sub001/internal/config"
	"github.com/Rey-han-24/Noor-ul-ilm-sub001/internal/database"
	"github.com/Rey-han-24/Noor-ul-ilm-sub001/internal/tasks"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router. This replaces a long parameter list
// in NewRouter for better maintainability.
type RouterConfig struct {
	// Core dependencies
	Database *database.Database
	Resolver HadithResolver
	Quran    QuranReader

	// Persistence stores
	CollectionStore CollectionStore
	BookmarkStore   BookmarkStore
	HistoryStore    HistoryStore

	// Authentication (all nil/empty when auth mode is "none")
	AuthService    *auth.Service
	AuthMiddleware *auth.Middleware
	SessionManager *auth.SessionManager
	RateLimiter    *auth.RateLimiter
	AuthConfig     config.Auth
	CSRFSecret     []byte
	SecureCookies  bool

	// Task queue client (optional)
	TaskClient *tasks.Client

	// Application info
	Version string
}
