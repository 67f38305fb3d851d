package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all environment-sourced settings. It is built once at
// startup and never mutated afterwards.
type Config struct {
	Port        string
	DatabaseURL string

	JWTSecret         string
	JWTAlgorithm      string
	AccessTokenExpiry time.Duration
	GoogleTokenExpiry time.Duration

	// Audience for the tokeninfo verification strategy.
	GoogleClientID string
	// Service account JSON for the Firebase verification strategy.
	FirebaseCredentials string

	// Public Firebase settings served to the frontend.
	FirebaseAPIKey            string
	FirebaseAuthDomain        string
	FirebaseProjectID         string
	FirebaseStorageBucket     string
	FirebaseMessagingSenderID string
	FirebaseAppID             string
}

// Load reads configuration from the environment (and .env if present).
// A missing SECRET_KEY or DATABASE_URL is a hard error: the process must
// not start with a default signing secret or without a store.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		return nil, fmt.Errorf("SECRET_KEY environment variable is required")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	accessExpiry := 30 * time.Minute
	if mins := os.Getenv("ACCESS_TOKEN_EXPIRE_MINUTES"); mins != "" {
		if parsed, err := time.ParseDuration(mins + "m"); err == nil {
			accessExpiry = parsed
		}
	}

	googleExpiry := 7 * 24 * time.Hour
	if exp := os.Getenv("GOOGLE_TOKEN_EXPIRY"); exp != "" {
		if parsed, err := time.ParseDuration(exp); err == nil {
			googleExpiry = parsed
		}
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: databaseURL,

		JWTSecret:         secret,
		JWTAlgorithm:      getEnv("ALGORITHM", "HS256"),
		AccessTokenExpiry: accessExpiry,
		GoogleTokenExpiry: googleExpiry,

		GoogleClientID:      getEnv("GOOGLE_CLIENT_ID", ""),
		FirebaseCredentials: getEnv("FIREBASE_SERVICE_ACCOUNT_KEY", ""),

		FirebaseAPIKey:            getEnv("FIREBASE_API_KEY", ""),
		FirebaseAuthDomain:        getEnv("FIREBASE_AUTH_DOMAIN", ""),
		FirebaseProjectID:         getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseStorageBucket:     getEnv("FIREBASE_STORAGE_BUCKET", ""),
		FirebaseMessagingSenderID: getEnv("FIREBASE_MESSAGING_SENDER_ID", ""),
		FirebaseAppID:             getEnv("FIREBASE_APP_ID", ""),
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
