package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultEndpoint = "https://practicum.yandex.ru/api/user_api/homework_statuses/"

// AppConfig holds all configuration for the application
type AppConfig struct {
	PracticumToken      string
	TelegramToken       string
	TelegramChatID      int64
	Endpoint            string
	PollInterval        time.Duration
	RequestTimeout      time.Duration
	LogLevel            string
	Environment         string
	CronSpecDailyDigest string
	DigestEnabled       bool
}

// Load reads configuration from environment variables and .env file (if present).
// A missing required secret is returned as an error; the caller treats it as
// fatal because polling without credentials can never succeed.
func Load() (*AppConfig, error) {
	// Attempt to load .env file. Errors are ignored if the file doesn't exist.
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}
	var err error

	cfg.PracticumToken = os.Getenv("PRACTICUM_TOKEN")
	if cfg.PracticumToken == "" {
		return nil, fmt.Errorf("PRACTICUM_TOKEN is not set")
	}

	cfg.TelegramToken = os.Getenv("TELEGRAM_TOKEN")
	if cfg.TelegramToken == "" {
		return nil, fmt.Errorf("TELEGRAM_TOKEN is not set")
	}

	chatIDStr := os.Getenv("TELEGRAM_CHAT_ID")
	if chatIDStr == "" {
		return nil, fmt.Errorf("TELEGRAM_CHAT_ID is not set")
	}
	cfg.TelegramChatID, err = strconv.ParseInt(chatIDStr, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID: %w", err)
	}

	cfg.Endpoint = os.Getenv("PRACTICUM_ENDPOINT")
	if cfg.Endpoint == "" {
		cfg.Endpoint = defaultEndpoint
	}

	cfg.PollInterval, err = durationSecondsEnv("POLL_INTERVAL_SECONDS", 600)
	if err != nil {
		return nil, err
	}

	cfg.RequestTimeout, err = durationSecondsEnv("REQUEST_TIMEOUT_SECONDS", 30)
	if err != nil {
		return nil, err
	}

	cfg.LogLevel = strings.ToLower(os.Getenv("LOG_LEVEL"))
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info" // Default log level
	}

	cfg.Environment = strings.ToLower(os.Getenv("ENVIRONMENT"))
	if cfg.Environment == "" {
		cfg.Environment = "development" // Default environment
	}

	cfg.CronSpecDailyDigest = os.Getenv("CRON_SPEC_DAILY_DIGEST")
	if cfg.CronSpecDailyDigest == "" {
		cfg.CronSpecDailyDigest = "0 9 * * *" // Default: 9 AM daily
	}

	cfg.DigestEnabled = true
	if v := os.Getenv("DIGEST_ENABLED"); v != "" {
		cfg.DigestEnabled, err = strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid DIGEST_ENABLED: %w", err)
		}
	}

	return cfg, nil
}

func durationSecondsEnv(key string, defaultSeconds int) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return time.Duration(defaultSeconds) * time.Second, nil
	}
	seconds, err := strconv.Atoi(v)
	if err != nil || seconds <= 0 {
		return 0, fmt.Errorf("invalid %s: %q, want a positive integer of seconds", key, v)
	}
	return time.Duration(seconds) * time.Second, nil
}
