package infra

import (
	"log"
	"os"
	"strconv"
	"time"
)

// Config collects every external setting the app needs. It is built once in
// main and handed to constructors, so nothing reads the environment at call
// time.
type Config struct {
	Port string

	// Headless CMS (Strapi)
	CMSBaseURL    string // e.g. "https://api.thehonesttour.com/api"
	CMSToken      string // bearer token
	CMSMediaURL   string // origin prepended to relative upload paths
	CMSTimeout    time.Duration
	CacheTTL      time.Duration // last-good tour cache freshness window
	SessionMaxAge time.Duration

	PostgresURL string

	JWTSecret      string
	GoogleClientID string

	// EmailOctopus
	NewsletterAPIKey string
	NewsletterListID string

	// WhatsApp operator number, digits only, e.g. "6281234567890"
	WhatsAppPhone string
}

func LoadConfig() Config {
	cfg := Config{
		Port:             getEnv("PORT", "8080"),
		CMSBaseURL:       getEnv("CMS_BASE_URL", ""),
		CMSToken:         getEnv("CMS_API_TOKEN", ""),
		CMSMediaURL:      getEnv("CMS_MEDIA_URL", ""),
		CMSTimeout:       10 * time.Second,
		CacheTTL:         getDuration("TOUR_CACHE_TTL_MINUTES", 10) * time.Minute,
		SessionMaxAge:    30 * 24 * time.Hour,
		PostgresURL:      getEnv("POSTGRES_URL", ""),
		JWTSecret:        getEnv("JWT_SECRET", ""),
		GoogleClientID:   getEnv("GOOGLE_CLIENT_ID", ""),
		NewsletterAPIKey: getEnv("EMAILOCTOPUS_API_KEY", ""),
		NewsletterListID: getEnv("EMAILOCTOPUS_LIST_ID", ""),
		WhatsAppPhone:    getEnv("WHATSAPP_PHONE", "6281234567890"),
	}

	if cfg.CMSBaseURL == "" {
		log.Println("CMS_BASE_URL is empty, tour endpoints will serve fallback data only")
	}
	if cfg.JWTSecret == "" {
		log.Println("JWT_SECRET is empty, issued session tokens will not survive restarts safely")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback int64) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			return time.Duration(n)
		}
	}
	return time.Duration(fallback)
}
