package entrypoint

import (
	"context"
	"encoding/hex"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Rey-han-24/Noor-ul-ilm-sub001/internal/auth"
	"github.com/Rey-han-24/Noor-ul-ilm-sub001/internal/config"
	"github.com/Rey-han-24/Noor-ul-ilm-sub001/internal/database"
	"github.com/Rey-han-24/Noor-ul-ilm-sub001/internal/database/bookmarks"
	"github.com/Rey-han-24/Noor-ul-ilm-sub001/internal/database/collections"
	"github.com/Rey-han-24/Noor-ul-ilm-sub001/internal/database/history"
	"github.com/Rey-han-24/Noor-ul-ilm-sub001/internal/hadith"
	http_controllers "github.com/Rey-han-24/Noor-ul-ilm-sub001/internal/http"
	"github.com/Rey-han-24/Noor-ul-ilm-sub001/internal/quran"
	"github.com/Rey-han-24/Noor-ul-ilm-sub001/internal/scheduler"
	"github.com/Rey-han-24/Noor-ul-ilm-sub001/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Call shutdown callback first (e.g. to stop the task queue)
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Noor-ul-Ilm v%s", version)

	// Initialize database
	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}()

	collectionRepo := collections.NewRepository(db.DB)
	bookmarkRepo := bookmarks.NewRepository(db.DB)
	historyRepo := history.NewRepository(db.DB)

	// Build the hadith resolution chain: curated local data first, then the
	// free CDN, then the paid API when a key is configured.
	var apiSource hadith.APISource
	if cfg.Sources.APIKey != "" {
		apiSource = hadith.NewAPIClient(cfg.Sources.APIBaseURL, cfg.Sources.APIKey)
		log.Printf("Hadith API source enabled")
	} else {
		log.Printf("Hadith API source disabled (no HADITH_API_KEY set)")
	}

	resolver := hadith.NewResolver(hadith.ResolverConfig{
		Local:           hadith.NewLocalStore(),
		CDN:             hadith.NewCDNClient(cfg.Sources.CDNBaseURL),
		API:             apiSource,
		Cache:           hadith.NewCache[[]hadith.Record](cfg.Cache.TTL),
		Sections:        hadith.NewCache[[]hadith.BookInfo](cfg.Cache.SectionTTL),
		MinLocalRecords: cfg.Sources.MinLocalRecords,
	})

	quranClient := quran.NewClient(cfg.Quran.BaseURL, cfg.Quran.TextEdition, cfg.Quran.TafsirEdition)

	// Initialize task queue if enabled
	var taskClient *tasks.Client
	var taskCtxCancel context.CancelFunc
	var prefetchScheduler *scheduler.PrefetchScheduler
	if cfg.Tasks.Enabled {
		taskCfg := tasks.Config{
			Workers:           cfg.Tasks.Workers,
			MaxRetries:        cfg.Tasks.MaxRetries,
			RetryDelay:        cfg.Tasks.RetryDelay,
			TaskTimeout:       cfg.Tasks.TaskTimeout,
			ReleaseAfter:      cfg.Tasks.ReleaseAfter,
			CleanupInterval:   cfg.Tasks.CleanupInterval,
			RetentionDuration: cfg.Tasks.RetentionDuration,
		}

		taskClient, err = tasks.NewClient(cfg.Database.Path, taskCfg)
		if err != nil {
			log.Fatalf("Failed to initialize task queue: %v", err)
		}
		defer func() {
			if err := taskClient.Close(); err != nil {
				log.Printf("Error closing task client: %v", err)
			}
		}()

		taskClient.Register(
			tasks.NewPrefetchCollectionQueue(resolver),
			tasks.NewCleanupHistoryQueue(historyRepo),
		)

		var taskCtx context.Context
		taskCtx, taskCtxCancel = context.WithCancel(context.Background())
		go taskClient.Start(taskCtx)

		prefetchScheduler = scheduler.NewPrefetchScheduler(taskClient, cfg.Prefetch, cfg.Tasks.HistoryRetentionDays)
		if err := prefetchScheduler.Start(); err != nil {
			log.Fatalf("Failed to start prefetch scheduler: %v", err)
		}
	}

	// Initialize authentication if enabled
	var authService *auth.Service
	var authMiddleware *auth.Middleware
	var sessionManager *auth.SessionManager
	var rateLimiter *auth.RateLimiter
	var csrfSecret []byte

	if cfg.Auth.Mode == config.AuthModeLocal {
		log.Printf("Authentication mode: local")

		authService = auth.NewService(db.DB, cfg.Auth)

		// Get underlying SQL DB for the session store
		sqlDB, err := db.DB.DB()
		if err != nil {
			log.Fatalf("Failed to get SQL DB for sessions: %v", err)
		}

		sessionManager, err = auth.NewSessionManager(sqlDB, cfg.Auth)
		if err != nil {
			log.Fatalf("Failed to initialize session manager: %v", err)
		}

		authMiddleware = auth.NewMiddleware(authService, sessionManager, cfg.Auth)

		rateLimiter = auth.NewRateLimiter(auth.RateLimitConfig{
			MaxAttempts:     cfg.Auth.MaxLoginAttempts,
			WindowDuration:  cfg.Auth.RateLimitWindow,
			LockoutDuration: cfg.Auth.LockoutDuration,
		})
		defer rateLimiter.Stop()

		// Generate or use configured CSRF secret
		if cfg.Auth.SessionSecret != "" {
			csrfSecret, err = hex.DecodeString(cfg.Auth.SessionSecret)
			if err != nil {
				// Not hex, use as raw bytes
				csrfSecret = []byte(cfg.Auth.SessionSecret)
			}
		} else {
			secret, err := auth.GenerateSessionSecret()
			if err != nil {
				log.Fatalf("Failed to generate CSRF secret: %v", err)
			}
			csrfSecret, _ = hex.DecodeString(secret)
			log.Printf("Generated session secret (set AUTH_SESSION_SECRET to persist)")
		}

		hasUsers, _ := authService.HasUsers()
		if !hasUsers {
			log.Printf("No users found. Run 'create-admin' to create an administrator account.")
		}
	} else {
		log.Printf("Authentication mode: none (no authentication required)")
	}

	// Build router configuration with all dependencies
	routerCfg := http_controllers.RouterConfig{
		Database:        db,
		Resolver:        resolver,
		Quran:           quranClient,
		CollectionStore: collectionRepo,
		BookmarkStore:   bookmarkRepo,
		HistoryStore:    historyRepo,
		AuthService:     authService,
		AuthMiddleware:  authMiddleware,
		SessionManager:  sessionManager,
		RateLimiter:     rateLimiter,
		AuthConfig:      cfg.Auth,
		CSRFSecret:      csrfSecret,
		SecureCookies:   cfg.Auth.SecureCookies,
		TaskClient:      taskClient,
		Version:         version,
	}

	router := http_controllers.NewRouter(routerCfg)

	// Shutdown callback for graceful cleanup
	onShutdown := func(ctx context.Context) {
		if prefetchScheduler != nil {
			prefetchScheduler.Stop()
		}
		if taskClient != nil && taskCtxCancel != nil {
			taskClient.Stop(ctx)
			taskCtxCancel()
		}
	}

	Serve(router, cfg, onShutdown)
}
