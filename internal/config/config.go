package config

import (
	"os"
	"strconv"
)

// Config is the process configuration, read once at bootstrap from the
// environment (a .env file is loaded beforehand when present).
type Config struct {
	DatabaseDSN string
	RedisAddr   string
	ListenAddr  string
	JWTSecret   string

	// Telegram relay; the notifier stays disabled when the token is empty.
	TelegramBotToken string
	TelegramChatID   int64
}

// Load reads the configuration with development defaults matching
// docker-compose.
func Load() Config {
	cfg := Config{
		DatabaseDSN: getEnv("DATABASE_DSN",
			"host=localhost user=user password=password dbname=huddledb port=5432 sslmode=disable"),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		ListenAddr:       getEnv("LISTEN_ADDR", ":8080"),
		JWTSecret:        getEnv("JWT_SECRET", "dev-only-secret"),
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
	}
	if raw := os.Getenv("TELEGRAM_CHAT_ID"); raw != "" {
		if id, err := strconv.ParseInt(raw, 10, 64); err == nil {
			cfg.TelegramChatID = id
		}
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
