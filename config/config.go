package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT        string
	DB_URL      string
	JWT_SECRET  string
	CORS_ORIGIN string

	// Seed credentials for the admin operator account.
	ADMIN_EMAIL    string
	ADMIN_PASSWORD string

	// Object storage. Optional: uploads fail with a clear error when unset,
	// the server still starts.
	S3_BUCKET     string
	S3_REGION     string
	S3_ENDPOINT   string
	S3_ACCESS_KEY string
	S3_SECRET_KEY string
	S3_PUBLIC_URL string

	// Stripe checkout for the products page. Optional.
	STRIPE_SECRET_KEY     string
	STRIPE_WEBHOOK_SECRET string
	APP_URL               string

	// Google sign-in for the admin panel. Optional.
	GOOGLE_CLIENT_ID     string
	GOOGLE_CLIENT_SECRET string
	GOOGLE_REDIRECT_URL  string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	JWT_SECRET = mustEnv("JWT_SECRET")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "http://localhost:5173")

	ADMIN_EMAIL = getEnv("ADMIN_EMAIL", "")
	ADMIN_PASSWORD = getEnv("ADMIN_PASSWORD", "")

	S3_BUCKET = getEnv("S3_BUCKET", "")
	S3_REGION = getEnv("S3_REGION", "us-east-1")
	S3_ENDPOINT = getEnv("S3_ENDPOINT", "")
	S3_ACCESS_KEY = getEnv("S3_ACCESS_KEY", "")
	S3_SECRET_KEY = getEnv("S3_SECRET_KEY", "")
	S3_PUBLIC_URL = getEnv("S3_PUBLIC_URL", "")

	if S3_BUCKET == "" || S3_ACCESS_KEY == "" || S3_SECRET_KEY == "" {
		log.Println("⚠️ S3 storage not configured. Image uploads will fail until S3_BUCKET, S3_ACCESS_KEY and S3_SECRET_KEY are set.")
	}

	STRIPE_SECRET_KEY = getEnv("STRIPE_SECRET_KEY", "")
	STRIPE_WEBHOOK_SECRET = getEnv("STRIPE_WEBHOOK_SECRET", "")
	APP_URL = getEnv("APP_URL", "http://localhost:5173")

	if STRIPE_SECRET_KEY == "" {
		log.Println("⚠️ STRIPE_SECRET_KEY not set. Product checkout is disabled.")
	}

	GOOGLE_CLIENT_ID = getEnv("GOOGLE_CLIENT_ID", "")
	GOOGLE_CLIENT_SECRET = getEnv("GOOGLE_CLIENT_SECRET", "")
	GOOGLE_REDIRECT_URL = getEnv("GOOGLE_REDIRECT_URL", "")
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
