package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
)

const envPrefix = "CHECKOUT_"

type Config struct {
	Primary  Primary        `koanf:"primary"`
	Server   ServerConfig   `koanf:"server"`
	Database DatabaseConfig `koanf:"database"`
	Gateway  GatewayConfig  `koanf:"gateway"`
	Session  SessionConfig  `koanf:"session"`
	Logger   LoggerConfig   `koanf:"logger"`
	Worker   WorkerConfig   `koanf:"worker"`
	Retry    RetryConfig    `koanf:"retry"`
}

type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

type ServerConfig struct {
	Port         string        `koanf:"port" validate:"required"`
	ReadTimeout  time.Duration `koanf:"read_timeout" validate:"required"`
	WriteTimeout time.Duration `koanf:"write_timeout" validate:"required"`
	IdleTimeout  time.Duration `koanf:"idle_timeout" validate:"required"`
}

type DatabaseConfig struct {
	Host            string        `koanf:"host" validate:"required"`
	Port            int           `koanf:"port" validate:"required"`
	User            string        `koanf:"user" validate:"required"`
	Password        string        `koanf:"password" validate:"required"`
	Name            string        `koanf:"name" validate:"required"`
	SSLMode         string        `koanf:"ssl_mode" validate:"required"`
	MaxOpenConns    int           `koanf:"max_open_conns" validate:"required"`
	MaxIdleConns    int           `koanf:"max_idle_conns" validate:"required"`
	ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime" validate:"required"`
	ConnMaxIdleTime time.Duration `koanf:"conn_max_idle_time" validate:"required"`
}

// GatewayConfig points the client at the payment gateway and tells the
// redirect matchers which origins mark the end of an authentication.
type GatewayConfig struct {
	Host           string        `koanf:"host" validate:"required,url"`
	MerchantID     int64         `koanf:"merchant_id" validate:"required"`
	SecretKey      string        `koanf:"secret_key" validate:"required"`
	CallbackOrigin string        `koanf:"callback_origin" validate:"required,url"`
	RedirectDomain string        `koanf:"redirect_domain" validate:"required"`
	Timeout        time.Duration `koanf:"timeout" validate:"required"`
}

// SessionConfig bounds how long a payment may wait on the cardholder.
// AttemptTimeout caps a whole server-driven attempt and must stay below
// the reconciler's stale threshold. ResultRetention keeps a finished payment
// pollable from memory after it ends.
type SessionConfig struct {
	AuthTimeout     time.Duration `koanf:"auth_timeout" validate:"required"`
	AttemptTimeout  time.Duration `koanf:"attempt_timeout" validate:"required"`
	ResultRetention time.Duration `koanf:"result_retention" validate:"required"`
}

type WorkerConfig struct {
	Interval   time.Duration `koanf:"interval" validate:"required"`
	BatchSize  int           `koanf:"batch_size" validate:"required"`
	StaleAfter time.Duration `koanf:"stale_after" validate:"required"`
}

// RetryConfig governs retries of idempotent gateway lookups.
type RetryConfig struct {
	BaseDelay  time.Duration `koanf:"base_delay" validate:"required"`
	MaxRetries int           `koanf:"max_retries" validate:"required,min=1"`
}

type LoggerConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

func defaults() map[string]any {
	return map[string]any{
		"gateway.host":             "https://pay.flitt.com",
		"gateway.callback_origin":  "https://callback",
		"gateway.redirect_domain":  "flitt.com",
		"gateway.timeout":          "30s",
		"session.auth_timeout":     "3m",
		"session.attempt_timeout":  "5m",
		"session.result_retention": "1m",
		"worker.interval":          "1m",
		"worker.batch_size":        50,
		"worker.stale_after":       "10m",
		"retry.base_delay":         "500ms",
		"retry.max_retries":        3,
		"logger.level":             "info",
		"logger.format":            "json",
	}
}

func LoadConfig() (*Config, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		logger.Error("failed to load defaults", "error", err)
		return nil, err
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, envPrefix)),
			"__",
			".",
		)
	}), nil)
	if err != nil {
		logger.Error("failed to load environment variables", "error", err)
		return nil, err
	}

	mainConfig := &Config{}

	err = k.Unmarshal("", mainConfig)
	if err != nil {
		logger.Error("could not unmarshal main config", "error", err)
		return nil, err
	}

	validate := validator.New()

	err = validate.Struct(mainConfig)
	if err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	if err := mainConfig.checkTimeouts(); err != nil {
		logger.Error("config validation failed", "error", err)
		return nil, err
	}

	return mainConfig, nil
}

// checkTimeouts rejects a reconciler window that could pick up attempts the
// orchestrator is still driving.
func (c *Config) checkTimeouts() error {
	if c.Session.AttemptTimeout >= c.Worker.StaleAfter {
		return fmt.Errorf(
			"session.attempt_timeout (%s) must be shorter than worker.stale_after (%s)",
			c.Session.AttemptTimeout, c.Worker.StaleAfter,
		)
	}
	return nil
}

// NewLogger builds the process logger from the configured level and format.
func (c LoggerConfig) NewLogger() *slog.Logger {
	var level slog.Level
	switch strings.ToLower(c.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn", "warning":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if strings.EqualFold(c.Format, "text") {
		return slog.New(slog.NewTextHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, opts))
}
