package config

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

var validLogLevels = []string{"DEBUG", "INFO", "WARN", "ERROR"}

var validGinModes = []string{"debug", "release", "test"}

// Validate проверяет корректность конфигурации
func (c *Config) Validate() error {
	var errors []string

	// Валидация порта
	if c.Port == "" {
		errors = append(errors, "port is required")
	} else {
		port, err := strconv.Atoi(c.Port)
		if err != nil {
			errors = append(errors, fmt.Sprintf("invalid port: %s", c.Port))
		} else if port < 1 || port > 65535 {
			errors = append(errors, fmt.Sprintf("port must be between 1 and 65535, got %d", port))
		}
	}

	if c.GinMode != "" && !contains(validGinModes, strings.ToLower(c.GinMode)) {
		errors = append(errors, fmt.Sprintf("invalid gin mode: %s (valid: %s)",
			c.GinMode, strings.Join(validGinModes, ", ")))
	}

	// Журнал и connection pooling проверяются только если журнал включен
	if c.HistoryEnabled {
		if c.HistoryDatabasePath == "" {
			errors = append(errors, "history database path is required when history is enabled")
		}
		if c.MaxOpenConns < 1 {
			errors = append(errors, "max open connections must be at least 1")
		}
		if c.MaxIdleConns < 1 {
			errors = append(errors, "max idle connections must be at least 1")
		}
		if c.MaxIdleConns > c.MaxOpenConns {
			errors = append(errors, "max idle connections cannot be greater than max open connections")
		}
		if c.ConnMaxLifetime < time.Second {
			errors = append(errors, "connection max lifetime must be at least 1 second")
		}
	}

	// Валидация уровня логирования
	if c.LogLevel != "" && !contains(validLogLevels, strings.ToUpper(c.LogLevel)) {
		errors = append(errors, fmt.Sprintf("invalid log level: %s (valid: %s)",
			c.LogLevel, strings.Join(validLogLevels, ", ")))
	}

	// Ограничения запросов
	if c.MaxInputLength < 1 {
		errors = append(errors, "max input length must be at least 1")
	}
	if c.MaxBatchSize < 1 {
		errors = append(errors, "max batch size must be at least 1")
	}

	// Rate limiting: 0 отключает ограничение
	if c.RateLimitPerSec < 0 {
		errors = append(errors, "rate limit per second cannot be negative")
	}
	if c.RateLimitPerSec > 0 && c.RateLimitBurst < 1 {
		errors = append(errors, "rate limit burst must be at least 1")
	}

	if len(errors) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(errors, "; "))
	}

	return nil
}

// SlogLevel возвращает уровень логирования для log/slog
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
