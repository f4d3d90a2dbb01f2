// Package config handles configuration loading for the registration service.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the registration service.
type Config struct {
	Port        string
	Environment string

	// DBDriver selects the persistence backend: "postgres" or "sqlite".
	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	SQLitePath string

	RedisHost     string
	RedisPort     string
	RedisPassword string

	// SessionSecret keys the HMAC applied to session tokens before
	// they are used as store keys.
	SessionSecret string

	UploadDir         string
	MaxUploadBytes    int64
	AllowedExtensions []string

	AllowedOrigins []string
}

// Load reads configuration from the environment, honoring a local
// .env file when present.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	cfg := &Config{
		Port:          GetEnv("PORT", "8080"),
		Environment:   GetEnv("ENVIRONMENT", "development"),
		DBDriver:      GetEnv("DB_DRIVER", "postgres"),
		SQLitePath:    GetEnv("SQLITE_PATH", "registration.db"),
		RedisHost:     GetEnvRequired("REDIS_HOST"),
		RedisPort:     GetEnvRequired("REDIS_PORT"),
		RedisPassword: GetEnv("REDIS_PASSWORD", ""),
		SessionSecret: GetEnvRequired("SESSION_SECRET"),
		UploadDir:     GetEnv("UPLOAD_DIR", "uploads"),

		MaxUploadBytes:    int64(getEnvInt("MAX_UPLOAD_MB", 16)) << 20,
		AllowedExtensions: splitList(GetEnv("ALLOWED_EXTENSIONS", "pdf,doc,docx,xls,xlsx,ppt,pptx,txt")),
		AllowedOrigins:    splitList(GetEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
	}

	if cfg.DBDriver == "postgres" {
		cfg.DBHost = GetEnvRequired("DB_HOST")
		cfg.DBPort = GetEnvRequired("DB_PORT")
		cfg.DBUser = GetEnvRequired("DB_USER")
		cfg.DBPassword = GetEnvRequired("DB_PASSWORD")
		cfg.DBName = GetEnvRequired("DB_NAME")
	}

	return cfg
}

// GetEnv returns the value of the named variable, or defaultValue when
// unset or empty.
func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvRequired returns the value of the named variable and exits the
// process when it is missing.
func GetEnvRequired(key string) string {
	value := os.Getenv(key)
	if value == "" {
		log.Fatalf("Required environment variable %s is not set", key)
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Invalid integer for %s: %q, using default %d", key, value, defaultValue)
		return defaultValue
	}
	return parsed
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, strings.ToLower(trimmed))
		}
	}
	return out
}
