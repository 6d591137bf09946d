package config

import (
	"os"

	"github.com/joho/godotenv"
)

// JWTSecret signs session tokens — populated in Load from env or fallback
var JWTSecret = []byte("delivery_marketplace_secret_2024")

type Config struct {
	Port    string
	GinMode string

	// "memory" (default) or "sqlite"
	StorageDriver string
	SQLitePath    string

	// File uploads are disabled when MinioEndpoint is empty
	MinioEndpoint  string
	MinioAccessKey string
	MinioSecretKey string
	MinioBucket    string
	MinioUseSSL    bool
}

// Load reads configuration from the environment, honoring a local .env file
// when present.
func Load() Config {
	_ = godotenv.Load()

	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		JWTSecret = []byte(secret)
	}

	return Config{
		Port:           getEnv("PORT", "8080"),
		GinMode:        os.Getenv("GIN_MODE"),
		StorageDriver:  getEnv("STORAGE_DRIVER", "memory"),
		SQLitePath:     getEnv("SQLITE_PATH", "marketplace.db"),
		MinioEndpoint:  os.Getenv("MINIO_ENDPOINT"),
		MinioAccessKey: os.Getenv("MINIO_ACCESS_KEY"),
		MinioSecretKey: os.Getenv("MINIO_SECRET_KEY"),
		MinioBucket:    getEnv("MINIO_BUCKET", "marketplace-uploads"),
		MinioUseSSL:    os.Getenv("MINIO_USE_SSL") == "true",
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
