package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	PORT        string
	DB_URL      string
	CORS_ORIGIN string

	OLLAMA_HOST    string
	OLLAMA_MODEL   string
	OLLAMA_TIMEOUT time.Duration

	IMAGE_API_URL     string
	IMAGE_API_TIMEOUT time.Duration

	MEDIA_ROOT string
	TRASH_ROOT string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	DB_URL = mustEnv("DB_URL")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "*")

	OLLAMA_HOST = getEnv("OLLAMA_HOST", "http://localhost:11434")
	OLLAMA_MODEL = mustEnv("OLLAMA_MODEL")
	OLLAMA_TIMEOUT = getDuration("OLLAMA_TIMEOUT_SECONDS", 120)

	IMAGE_API_URL = getEnv("IMAGE_API_URL", "")
	IMAGE_API_TIMEOUT = getDuration("IMAGE_API_TIMEOUT_SECONDS", 90)

	MEDIA_ROOT = getEnv("MEDIA_ROOT", "media")
	TRASH_ROOT = getEnv("TRASH_ROOT", "media_trash")
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

func getDuration(key string, fallbackSeconds int) time.Duration {
	raw := getEnv(key, "")
	if raw == "" {
		return time.Duration(fallbackSeconds) * time.Second
	}
	secs, err := strconv.Atoi(raw)
	if err != nil || secs <= 0 {
		log.Fatalf("Invalid value for %s: %q", key, raw)
	}
	return time.Duration(secs) * time.Second
}
