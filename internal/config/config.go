package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config конфигурация сервиса распознавания документов
type Config struct {
	// Сервер
	Port    string `json:"port"`
	GinMode string `json:"gin_mode"`

	// Журнал распознаваний
	HistoryEnabled      bool   `json:"history_enabled"`
	HistoryDatabasePath string `json:"history_database_path"`

	// Connection pooling
	MaxOpenConns    int           `json:"max_open_conns"`
	MaxIdleConns    int           `json:"max_idle_conns"`
	ConnMaxLifetime time.Duration `json:"conn_max_lifetime"`

	// Логирование
	LogLevel string `json:"log_level"`

	// Ограничения запросов
	MaxInputLength int `json:"max_input_length"`
	MaxBatchSize   int `json:"max_batch_size"`

	// Rate limiting
	RateLimitPerSec float64 `json:"rate_limit_per_sec"`
	RateLimitBurst  int     `json:"rate_limit_burst"`

	// HTTP
	GzipEnabled    bool `json:"gzip_enabled"`
	SwaggerEnabled bool `json:"swagger_enabled"`
}

// LoadConfig загружает конфигурацию из .env (если есть) и переменных окружения
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to load .env: %v", err)
	}

	config := &Config{
		// Сервер
		Port:    getEnv("SERVER_PORT", "9999"),
		GinMode: getEnv("GIN_MODE", "release"),

		// Журнал
		HistoryEnabled:      getEnvBool("HISTORY_ENABLED", true),
		HistoryDatabasePath: getEnv("HISTORY_DATABASE_PATH", "docparser_history.db"),

		// Connection pooling
		MaxOpenConns:    getEnvInt("DB_MAX_OPEN_CONNS", 25),
		MaxIdleConns:    getEnvInt("DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime: getEnvDuration("DB_CONN_MAX_LIFETIME", 5*time.Minute),

		// Логирование
		LogLevel: getEnv("LOG_LEVEL", "INFO"),

		// Ограничения
		MaxInputLength: getEnvInt("MAX_INPUT_LENGTH", 256),
		MaxBatchSize:   getEnvInt("MAX_BATCH_SIZE", 1000),

		// Rate limiting
		RateLimitPerSec: getEnvFloat("RATE_LIMIT_PER_SEC", 50),
		RateLimitBurst:  getEnvInt("RATE_LIMIT_BURST", 100),

		// HTTP
		GzipEnabled:    getEnvBool("GZIP_ENABLED", true),
		SwaggerEnabled: getEnvBool("SWAGGER_ENABLED", true),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// getEnv получает переменную окружения или возвращает значение по умолчанию
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt получает переменную окружения как int или возвращает значение по умолчанию
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvFloat получает переменную окружения как float64
func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvBool принимает true/false, 1/0, yes/no
func getEnvBool(key string, defaultValue bool) bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "true", "1", "yes":
		return true
	case "false", "0", "no":
		return false
	default:
		return defaultValue
	}
}

// getEnvDuration получает переменную окружения как Duration или возвращает значение по умолчанию
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
