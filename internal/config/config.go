package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the bot. It is read once at startup and
// passed into constructors; nothing reads the environment after Load returns.
type Config struct {
	Env string

	TelegramBotToken string
	DeveloperChatID  int64 // 0 disables developer alerts

	GeminiAPIKey string
	GeminiModel  string

	LLMTimeout  time.Duration
	MaxInFlight int
}

// Load reads configuration from environment variables. A .env file is loaded
// first if present (for development). The Telegram bot token is required;
// everything else has a default or is optional.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Env:              getEnv("ENV", "development"),
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		GeminiAPIKey:     os.Getenv("GEMINI_API_KEY"),
		GeminiModel:      getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
	}

	if cfg.TelegramBotToken == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}

	if raw := os.Getenv("TELEGRAM_DEVELOPER_CHAT_ID"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TELEGRAM_DEVELOPER_CHAT_ID %q: %w", raw, err)
		}
		cfg.DeveloperChatID = id
	}

	timeoutSecs, err := getEnvInt("LLM_TIMEOUT_SECONDS", 60)
	if err != nil {
		return nil, err
	}
	cfg.LLMTimeout = time.Duration(timeoutSecs) * time.Second

	cfg.MaxInFlight, err = getEnvInt("MAX_IN_FLIGHT", 8)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("invalid %s %q: must be a positive integer", key, raw)
	}
	return n, nil
}
