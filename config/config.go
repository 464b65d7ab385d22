package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

var (
	PORT       string
	DB_URL     string
	JWT_SECRET string

	STRIPE_SECRET_KEY     string
	STRIPE_WEBHOOK_SECRET string

	STRIPE_PRICE_TIER1 string
	STRIPE_PRICE_TIER2 string
	STRIPE_PRICE_TIER3 string
	STRIPE_PRICE_TIER4 string

	APP_URL     string // public base URL of this service (redirect pages live here)
	APP_SCHEME  string // deep-link scheme back into the mobile app
	CORS_ORIGIN string

	TRIAL_DAYS int

	REDIS_ADDR         string // optional; file cache is used when empty
	PENDING_CACHE_FILE string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")

	STRIPE_SECRET_KEY = mustEnv("STRIPE_SECRET_KEY")
	STRIPE_WEBHOOK_SECRET = getEnv("STRIPE_WEBHOOK_SECRET", "")

	STRIPE_PRICE_TIER1 = mustEnv("STRIPE_PRICE_TIER1")
	STRIPE_PRICE_TIER2 = mustEnv("STRIPE_PRICE_TIER2")
	STRIPE_PRICE_TIER3 = mustEnv("STRIPE_PRICE_TIER3")
	STRIPE_PRICE_TIER4 = mustEnv("STRIPE_PRICE_TIER4")

	APP_URL = getEnv("APP_URL", "http://localhost:8080")
	APP_SCHEME = getEnv("APP_SCHEME", "churchfeed")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "*")

	TRIAL_DAYS = getEnvInt("TRIAL_DAYS", 7)

	REDIS_ADDR = getEnv("REDIS_ADDR", "")
	PENDING_CACHE_FILE = getEnv("PENDING_CACHE_FILE", "pending_registration.json")
}

func mustEnv(key string) string {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		log.Fatalf("Missing required environment variable: %s", key)
	}
	return v
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	s, exists := os.LookupEnv(key)
	if !exists || s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Fatalf("Invalid int for %s: %q", key, s)
	}
	return n
}
