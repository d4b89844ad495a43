package config

const (
	// DefaultDatabasePath is the default path for the main application database
	DefaultDatabasePath = "./noor-ul-ilm.db"

	// DefaultCDNBaseURL is the public hadith collections CDN (no auth required)
	DefaultCDNBaseURL = "https://cdn.jsdelivr.net/gh/fawazahmed0/hadith-api@1"

	// DefaultAPIBaseURL is the paid hadith API endpoint
	DefaultAPIBaseURL = "https://hadithapi.com/api"

	// DefaultQuranBaseURL is the Quran text/tafsir API endpoint
	DefaultQuranBaseURL = "https://api.alquran.cloud/v1"
)
