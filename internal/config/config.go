package config

import (
	"fmt"
	"os"
)

// Config is everything the server reads from the environment. A .env file is
// loaded by main before this runs, so local dev only needs that file.
type Config struct {
	Port        string
	DatabaseDSN string

	GoogleClientID     string
	GoogleClientSecret string
	OAuthRedirectURL   string

	// Origin allowed to call the API from the browser. "*" is the dev default.
	AllowedOrigin string
}

func Load() Config {
	cfg := Config{
		Port:               getenv("PORT", "8080"),
		DatabaseDSN:        os.Getenv("DATABASE_DSN"),
		GoogleClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		OAuthRedirectURL:   getenv("OAUTH_REDIRECT_URL", "http://localhost:8080/api/v1/auth/callback"),
		AllowedOrigin:      getenv("ALLOWED_ORIGIN", "*"),
	}

	if cfg.DatabaseDSN == "" {
		cfg.DatabaseDSN = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			getenv("DB_HOST", "localhost"),
			getenv("DB_USER", "postgres"),
			getenv("DB_PASSWORD", "password"),
			getenv("DB_NAME", "jobpulse"),
			getenv("DB_PORT", "5432"),
		)
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
