package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Discord Bot
	DiscordToken string

	// Emoji catalog
	CatalogPath string

	// Number of emojis handed out per roll
	DrawSize int

	// Web Server
	WebBind string
}

func Load() (*Config, error) {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()

	cfg := &Config{
		DiscordToken: os.Getenv("DISCORD_TOKEN"),
		CatalogPath:  getEnvDefault("CATALOG_PATH", "emojis.csv"),
		WebBind:      getEnvDefault("WEB_BIND", "0.0.0.0:3000"),
	}

	if cfg.DiscordToken == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN is required")
	}

	drawSize, err := getEnvInt("DRAW_SIZE", 5)
	if err != nil {
		return nil, err
	}
	if drawSize < 1 {
		return nil, fmt.Errorf("DRAW_SIZE must be at least 1, got %d", drawSize)
	}
	cfg.DrawSize = drawSize

	return cfg, nil
}

func getEnvDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", key, err)
	}
	return parsed, nil
}
