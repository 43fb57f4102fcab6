package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port        string
	Environment string

	DatabaseURL    string
	DBMaxOpenConns int
	DBMaxIdleConns int

	RedisURL string

	MinIOEndpoint  string
	MinIOAccessKey string
	MinIOSecretKey string
	MinIOBucket    string
	MinIOUseSSL    bool
	ArchiveEnabled bool

	ResendAPIKey string
	FromEmail    string

	// Company identity printed on every exported document.
	CompanyName    string
	CompanyAddress string
	CompanyCity    string
	CompanyEmail   string
	CompanyPhone   string

	// All mutating routes attribute activity to this user until real
	// authentication exists.
	DefaultUserID int64

	CORSOrigins string

	// Disables headless-Chrome PDF printing (environments without Chrome).
	ChromeDisabled bool
	PDFTimeout     time.Duration
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),

		DatabaseURL:    getEnv("DATABASE_URL", ""),
		DBMaxOpenConns: getIntEnv("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns: getIntEnv("DB_MAX_IDLE_CONNS", 5),

		RedisURL: getEnv("REDIS_URL", "redis://localhost:6379"),

		MinIOEndpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
		MinIOAccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		MinIOSecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
		MinIOBucket:    getEnv("MINIO_BUCKET", "propel-exports"),
		MinIOUseSSL:    getBoolEnv("MINIO_USE_SSL", false),
		ArchiveEnabled: getBoolEnv("ARCHIVE_EXPORTS", false),

		ResendAPIKey: getEnv("RESEND_API_KEY", ""),
		FromEmail:    getEnv("FROM_EMAIL", "proposals@example.com"),

		CompanyName:    getEnv("COMPANY_NAME", "ProposalPro, Inc."),
		CompanyAddress: getEnv("COMPANY_ADDRESS", "123 Business Ave, Suite 200"),
		CompanyCity:    getEnv("COMPANY_CITY", "San Francisco, CA 94107"),
		CompanyEmail:   getEnv("COMPANY_EMAIL", "contact@proposalpro.example"),
		CompanyPhone:   getEnv("COMPANY_PHONE", "(555) 123-4567"),

		DefaultUserID: getInt64Env("DEFAULT_USER_ID", 1),

		CORSOrigins: getEnv("CORS_ORIGINS", "http://localhost:5173"),

		ChromeDisabled: getBoolEnv("CHROME_DISABLED", false),
		PDFTimeout:     getDurationEnv("PDF_TIMEOUT", 30*time.Second),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getInt64Env(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		parsed, err := time.ParseDuration(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}
