package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Port:                "9999",
		GinMode:             "release",
		HistoryEnabled:      true,
		HistoryDatabasePath: "docparser_history.db",
		MaxOpenConns:        25,
		MaxIdleConns:        5,
		ConnMaxLifetime:     5 * time.Minute,
		LogLevel:            "INFO",
		MaxInputLength:      256,
		MaxBatchSize:        1000,
		RateLimitPerSec:     50,
		RateLimitBurst:      100,
	}
}

func TestConfigLogLevelValidation(t *testing.T) {
	tests := []struct {
		name      string
		logLevel  string
		wantError bool
	}{
		{"Valid DEBUG", "DEBUG", false},
		{"Valid INFO", "INFO", false},
		{"Valid WARN", "WARN", false},
		{"Valid ERROR", "ERROR", false},
		{"Valid lowercase debug", "debug", false},
		{"Invalid value", "INVALID", true},
		{"Empty string", "", false},
		{"Mixed case", "DeBuG", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.LogLevel = tt.logLevel

			err := cfg.Validate()
			if (err != nil) != tt.wantError {
				t.Errorf("Validate() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Config)
		wantError string
	}{
		{"valid", func(c *Config) {}, ""},
		{"empty port", func(c *Config) { c.Port = "" }, "port is required"},
		{"port not a number", func(c *Config) { c.Port = "abc" }, "invalid port"},
		{"port out of range", func(c *Config) { c.Port = "70000" }, "port must be between"},
		{"bad gin mode", func(c *Config) { c.GinMode = "prod" }, "invalid gin mode"},
		{"missing history path", func(c *Config) { c.HistoryDatabasePath = "" }, "history database path"},
		{"history disabled skips db checks", func(c *Config) {
			c.HistoryEnabled = false
			c.HistoryDatabasePath = ""
			c.MaxOpenConns = 0
		}, ""},
		{"idle above open", func(c *Config) { c.MaxIdleConns = 30 }, "cannot be greater"},
		{"short lifetime", func(c *Config) { c.ConnMaxLifetime = time.Millisecond }, "at least 1 second"},
		{"zero input length", func(c *Config) { c.MaxInputLength = 0 }, "max input length"},
		{"zero batch size", func(c *Config) { c.MaxBatchSize = 0 }, "max batch size"},
		{"negative rate", func(c *Config) { c.RateLimitPerSec = -1 }, "cannot be negative"},
		{"rate without burst", func(c *Config) { c.RateLimitBurst = 0 }, "burst"},
		{"rate disabled without burst", func(c *Config) {
			c.RateLimitPerSec = 0
			c.RateLimitBurst = 0
		}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantError == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantError)
		})
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("MAX_BATCH_SIZE", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, "INFO", cfg.LogLevel)
	assert.Equal(t, 1000, cfg.MaxBatchSize)
	assert.Equal(t, 256, cfg.MaxInputLength)
	assert.True(t, cfg.HistoryEnabled)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "8080")
	t.Setenv("HISTORY_ENABLED", "false")
	t.Setenv("MAX_INPUT_LENGTH", "64")
	t.Setenv("RATE_LIMIT_PER_SEC", "2.5")
	t.Setenv("DB_CONN_MAX_LIFETIME", "1m")
	t.Setenv("GZIP_ENABLED", "no")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.False(t, cfg.HistoryEnabled)
	assert.Equal(t, 64, cfg.MaxInputLength)
	assert.Equal(t, 2.5, cfg.RateLimitPerSec)
	assert.Equal(t, time.Minute, cfg.ConnMaxLifetime)
	assert.False(t, cfg.GzipEnabled)
}

func TestLoadConfigInvalid(t *testing.T) {
	t.Setenv("SERVER_PORT", "0")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestSlogLevel(t *testing.T) {
	cfg := validConfig()

	cfg.LogLevel = "debug"
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	cfg.LogLevel = "WARN"
	assert.Equal(t, slog.LevelWarn, cfg.SlogLevel())
	cfg.LogLevel = "ERROR"
	assert.Equal(t, slog.LevelError, cfg.SlogLevel())
	cfg.LogLevel = ""
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}
