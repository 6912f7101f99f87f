package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	DBHost string
	DBPort string
	DBName string
	DBUser string
	DBPass string

	// DBMaxOpenConns is the maximum number of open connections to the database (default 25).
	DBMaxOpenConns int
	// DBMaxIdleConns is the maximum number of idle connections (default 5).
	DBMaxIdleConns int

	// SessionSecret signs the session cookie. Override in production.
	SessionSecret string

	// ModelPath and ModelColumnsPath locate the trained artifact pair
	// (XGBoost dump + ordered feature column list). Both must exist at startup.
	ModelPath        string
	ModelColumnsPath string

	// LoginFailDelay is the fixed pause before answering a failed login.
	// Set via LOGIN_FAIL_DELAY_MS (default 1000).
	LoginFailDelay time.Duration

	// Env is "dev" (default) or "prod".
	Env string

	// LogFormat is "text" (default) or "json" for structured logging.
	LogFormat string
}

func Load() Config {
	return Config{
		Port: getEnv("PORT", "8080"),

		DBHost: getEnv("DB_HOST", "localhost"),
		DBPort: getEnv("DB_PORT", "5432"),
		DBName: getEnv("DB_NAME", "nestimate"),
		DBUser: getEnv("DB_USER", "nestimate"),
		DBPass: getEnv("DB_PASS", "nestimate"),

		DBMaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns: getEnvInt("DB_MAX_IDLE_CONNS", 5),

		SessionSecret: getEnv("SESSION_SECRET", "supersecretkey"),

		ModelPath:        getEnv("MODEL_PATH", "xgb_model.model"),
		ModelColumnsPath: getEnv("MODEL_COLUMNS_PATH", "model_columns.json"),

		LoginFailDelay: time.Duration(getEnvInt("LOGIN_FAIL_DELAY_MS", 1000)) * time.Millisecond,

		Env:       getEnv("ENV", "dev"),
		LogFormat: getEnv("LOG_FORMAT", "text"),
	}
}

// DatabaseURL returns the postgres URL form of the DB settings, as
// expected by the migration runner.
func (c Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser, c.DBPass, c.DBHost, c.DBPort, c.DBName)
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return fallback
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
