package config

import (
	"time"

	"github.com/spf13/viper"
)

type AuthMode string

const (
	AuthModeNone  AuthMode = "none"  // No authentication required (default)
	AuthModeLocal AuthMode = "local" // Local user database with sessions
)

type (
	Config struct {
		HTTP
		Global
		Database
		Sources
		Cache
		Quran
		Tasks
		Prefetch
		Auth
	}

	HTTP struct {
		Port int32
		Host string
	}

	Global struct {
		ShutdownTimeoutInSeconds int
	}

	Database struct {
		Path string
	}

	// Sources configures the hadith content sources consulted by the resolver.
	Sources struct {
		CDNBaseURL      string // e.g. "https://cdn.jsdelivr.net/gh/fawazahmed0/hadith-api@1"
		APIBaseURL      string
		APIKey          string // paid hadith API key; API source disabled when empty
		MinLocalRecords int    // below this, local data is treated as insufficient
	}

	Cache struct {
		TTL        time.Duration // collection dataset entries
		SectionTTL time.Duration // section/book metadata entries
	}

	Quran struct {
		BaseURL       string
		TextEdition   string // e.g. "quran-uthmani"
		TafsirEdition string // e.g. "en.jalalayn"
	}

	Tasks struct {
		Enabled              bool
		Workers              int
		MaxRetries           int
		RetryDelay           time.Duration
		TaskTimeout          time.Duration
		ReleaseAfter         time.Duration
		CleanupInterval      time.Duration
		RetentionDuration    time.Duration
		HistoryRetentionDays int
	}

	// Prefetch configures the cron-driven cache warmer.
	Prefetch struct {
		Enabled     bool
		Schedule    string // Cron format: "0 * * * *" = hourly
		Collections []string
	}

	Auth struct {
		Mode            AuthMode
		SessionSecret   string
		SessionLifetime time.Duration
		BcryptCost      int
		SecureCookies   bool // Set to false for local dev without HTTPS

		// Rate limiting configuration
		MaxLoginAttempts int           // Max failed attempts before lockout (default: 5)
		RateLimitWindow  time.Duration // Time window for counting attempts (default: 15m)
		LockoutDuration  time.Duration // How long to lock out (default: 30m)
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8199)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)

	// Content source defaults
	v.SetDefault("hadith_cdn_base_url", DefaultCDNBaseURL)
	v.SetDefault("hadith_api_base_url", DefaultAPIBaseURL)
	v.SetDefault("hadith_api_key", "")
	v.SetDefault("hadith_min_local_records", 5)

	// Cache defaults
	v.SetDefault("cache_ttl", "1h")
	v.SetDefault("cache_section_ttl", "2h")

	// Quran API defaults
	v.SetDefault("quran_base_url", DefaultQuranBaseURL)
	v.SetDefault("quran_text_edition", "quran-uthmani")
	v.SetDefault("quran_tafsir_edition", "en.jalalayn")

	// Task queue defaults
	v.SetDefault("tasks_enabled", true)
	v.SetDefault("task_workers", 2)
	v.SetDefault("task_max_retries", 3)
	v.SetDefault("task_retry_delay", "1m")
	v.SetDefault("task_timeout", "5m")
	v.SetDefault("task_release_after", "15m")
	v.SetDefault("task_cleanup_interval", "1h")
	v.SetDefault("task_retention_duration", "24h")
	v.SetDefault("history_retention_days", 90)

	// Prefetch defaults
	v.SetDefault("prefetch_enabled", false)
	v.SetDefault("prefetch_schedule", "0 */6 * * *") // Every 6 hours
	v.SetDefault("prefetch_collections", []string{"bukhari", "muslim"})

	// Auth defaults
	v.SetDefault("auth_mode", "none")
	v.SetDefault("auth_session_secret", "")       // Auto-generated if empty
	v.SetDefault("auth_session_lifetime", "24h")  // 24 hours
	v.SetDefault("auth_bcrypt_cost", 12)          // bcrypt cost factor
	v.SetDefault("auth_secure_cookies", true)     // HTTPS-only cookies
	v.SetDefault("auth_max_login_attempts", 5)    // Max failed attempts
	v.SetDefault("auth_rate_limit_window", "15m") // Window for counting attempts
	v.SetDefault("auth_lockout_duration", "30m")  // Lockout duration

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Path: v.GetString("DATABASE_PATH"),
		},
		Sources: Sources{
			CDNBaseURL:      v.GetString("HADITH_CDN_BASE_URL"),
			APIBaseURL:      v.GetString("HADITH_API_BASE_URL"),
			APIKey:          v.GetString("HADITH_API_KEY"),
			MinLocalRecords: v.GetInt("HADITH_MIN_LOCAL_RECORDS"),
		},
		Cache: Cache{
			TTL:        v.GetDuration("CACHE_TTL"),
			SectionTTL: v.GetDuration("CACHE_SECTION_TTL"),
		},
		Quran: Quran{
			BaseURL:       v.GetString("QURAN_BASE_URL"),
			TextEdition:   v.GetString("QURAN_TEXT_EDITION"),
			TafsirEdition: v.GetString("QURAN_TAFSIR_EDITION"),
		},
		Tasks: Tasks{
			Enabled:              v.GetBool("TASKS_ENABLED"),
			Workers:              v.GetInt("TASK_WORKERS"),
			MaxRetries:           v.GetInt("TASK_MAX_RETRIES"),
			RetryDelay:           v.GetDuration("TASK_RETRY_DELAY"),
			TaskTimeout:          v.GetDuration("TASK_TIMEOUT"),
			ReleaseAfter:         v.GetDuration("TASK_RELEASE_AFTER"),
			CleanupInterval:      v.GetDuration("TASK_CLEANUP_INTERVAL"),
			RetentionDuration:    v.GetDuration("TASK_RETENTION_DURATION"),
			HistoryRetentionDays: v.GetInt("HISTORY_RETENTION_DAYS"),
		},
		Prefetch: Prefetch{
			Enabled:     v.GetBool("PREFETCH_ENABLED"),
			Schedule:    v.GetString("PREFETCH_SCHEDULE"),
			Collections: v.GetStringSlice("PREFETCH_COLLECTIONS"),
		},
		Auth: Auth{
			Mode:             AuthMode(v.GetString("AUTH_MODE")),
			SessionSecret:    v.GetString("AUTH_SESSION_SECRET"),
			SessionLifetime:  v.GetDuration("AUTH_SESSION_LIFETIME"),
			BcryptCost:       v.GetInt("AUTH_BCRYPT_COST"),
			SecureCookies:    v.GetBool("AUTH_SECURE_COOKIES"),
			MaxLoginAttempts: v.GetInt("AUTH_MAX_LOGIN_ATTEMPTS"),
			RateLimitWindow:  v.GetDuration("AUTH_RATE_LIMIT_WINDOW"),
			LockoutDuration:  v.GetDuration("AUTH_LOCKOUT_DURATION"),
		},
	}
}
