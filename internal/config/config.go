package config

import (
	"fmt"
	"os"
	"strings"
	"time"
)

const (
	defaultPort          = "8080"
	defaultDatabaseURL   = "file::memory:?cache=shared"
	defaultJWTSecret     = "change-me-jwt-secret"
	defaultJWTTTL        = "24h"
	defaultLogLevel      = "info"
	defaultAssistModel   = "gemini-2.5-flash"
	defaultAssistTimeout = "15s"
	defaultMailgunBase   = "https://api.mailgun.net/v3"
)

type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string
	LogLevel    string

	JWTSecret string
	JWTTTL    time.Duration

	// Generative text service; empty key disables assist features and
	// every call falls back to the original text.
	AssistAPIKey  string
	AssistModel   string
	AssistTimeout time.Duration

	// Moderation notification email; empty settings disable mail and
	// the notifier degrades to log + websocket only.
	ModeratorEmail string
	MailFrom       string
	MailgunDomain  string
	MailgunAPIKey  string
	MailgunAPIBase string
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Port = getEnv("PORT", defaultPort)
	cfg.DatabaseURL = getEnv("DATABASE_URL", defaultDatabaseURL)
	cfg.LogLevel = getEnv("LOG_LEVEL", defaultLogLevel)

	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}

	cfg.AssistAPIKey = strings.TrimSpace(os.Getenv("ASSIST_API_KEY"))
	cfg.AssistModel = getEnv("ASSIST_MODEL", defaultAssistModel)
	cfg.AssistTimeout, err = parseDurationEnv("ASSIST_TIMEOUT", defaultAssistTimeout)
	if err != nil {
		return nil, err
	}

	cfg.ModeratorEmail = strings.TrimSpace(os.Getenv("MODERATOR_EMAIL"))
	cfg.MailFrom = getEnv("MAIL_FROM", "no-reply@kairos.community")
	cfg.MailgunDomain = strings.TrimSpace(os.Getenv("MAILGUN_DOMAIN"))
	cfg.MailgunAPIKey = strings.TrimSpace(os.Getenv("MAILGUN_API_KEY"))
	cfg.MailgunAPIBase = getEnv("MAILGUN_API_BASE", defaultMailgunBase)

	if cfg.AppEnv == "prod" && cfg.JWTSecret == defaultJWTSecret {
		return nil, fmt.Errorf("JWT_SECRET must be set in prod")
	}

	return cfg, nil
}

func (c *Config) MailEnabled() bool {
	return c.ModeratorEmail != "" && c.MailgunDomain != "" && c.MailgunAPIKey != ""
}

func getEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func parseDurationEnv(key, fallback string) (time.Duration, error) {
	raw := getEnv(key, fallback)
	d, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return d, nil
}
