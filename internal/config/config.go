package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// TTSKeyEnv names the variable holding the Google TTS API key
const TTSKeyEnv = "GOOGLE_TTS_API_KEY"

// Config holds all application configuration
type Config struct {
	BotToken   string
	Database   DatabaseConfig
	TTS        TTSConfig
	SessionTTL time.Duration
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
}

// TTSConfig holds speech synthesis settings
type TTSConfig struct {
	APIKey   string
	CacheDir string
	AudioDir string
	Language string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	ttl, err := time.ParseDuration(getEnv("QUIZ_SESSION_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid QUIZ_SESSION_TTL: %w", err)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("QUIZ_SESSION_TTL must be positive")
	}

	cfg := &Config{
		BotToken: os.Getenv("BOT_TOKEN"),
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "yardwords"),
			User:     getEnv("DB_USER", "yardwords"),
			Password: os.Getenv("DB_PASSWORD"),
		},
		TTS: TTSConfig{
			APIKey:   os.Getenv(TTSKeyEnv),
			CacheDir: getEnv("TTS_CACHE_DIR", "cache/tts"),
			AudioDir: getEnv("TTS_AUDIO_DIR", "audio"),
			Language: getEnv("TTS_LANGUAGE", "en-US"),
		},
		SessionTTL: ttl,
	}

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if cfg.Database.Password == "" {
		return nil, fmt.Errorf("DB_PASSWORD is required")
	}

	return cfg, nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
