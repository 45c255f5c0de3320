package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetEnv(t *testing.T) {
	tests := []struct {
		name         string
		key          string
		defaultValue string
		setEnv       bool
		envValue     string
		expected     string
	}{
		{
			name:         "env variable set",
			key:          "TEST_KEY",
			defaultValue: "default",
			setEnv:       true,
			envValue:     "custom",
			expected:     "custom",
		},
		{
			name:         "env variable not set",
			key:          "TEST_KEY_NOT_SET",
			defaultValue: "default",
			setEnv:       false,
			expected:     "default",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.setEnv {
				t.Setenv(tt.key, tt.envValue)
			}

			result := getEnv(tt.key, tt.defaultValue)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "testuser",
			Password: "testpass",
			Name:     "testdb",
		},
	}

	dsn := cfg.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, dsn)
}

// setEnv sets every variable Load reads; empty values are set as empty,
// which Load treats the same as unset
func setEnv(t *testing.T, values map[string]string) {
	t.Helper()
	keys := []string{
		"BOT_TOKEN", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME", "DB_USER",
		"GOOGLE_TTS_API_KEY", "TTS_CACHE_DIR", "TTS_AUDIO_DIR", "TTS_LANGUAGE", "QUIZ_SESSION_TTL",
	}
	for _, k := range keys {
		t.Setenv(k, values[k])
	}
}

func TestLoad_WithDefaults(t *testing.T) {
	setEnv(t, map[string]string{
		"BOT_TOKEN":   "test_token",
		"DB_PASSWORD": "test_db_password",
	})

	cfg, err := Load()
	assert.NoError(t, err)
	assert.NotNil(t, cfg)
	assert.Equal(t, "test_token", cfg.BotToken)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "yardwords", cfg.Database.Name)
	assert.Equal(t, "yardwords", cfg.Database.User)
	assert.Equal(t, "", cfg.TTS.APIKey)
	assert.Equal(t, "cache/tts", cfg.TTS.CacheDir)
	assert.Equal(t, "audio", cfg.TTS.AudioDir)
	assert.Equal(t, "en-US", cfg.TTS.Language)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
}

func TestLoad_Overrides(t *testing.T) {
	setEnv(t, map[string]string{
		"BOT_TOKEN":          "test_token",
		"DB_PASSWORD":        "test_db_password",
		"DB_HOST":            "db",
		"GOOGLE_TTS_API_KEY": "key",
		"TTS_LANGUAGE":       "en-GB",
		"QUIZ_SESSION_TTL":   "90m",
	})

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "db", cfg.Database.Host)
	assert.Equal(t, "key", cfg.TTS.APIKey)
	assert.Equal(t, "en-GB", cfg.TTS.Language)
	assert.Equal(t, 90*time.Minute, cfg.SessionTTL)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		errContains string
	}{
		{
			name:        "missing BOT_TOKEN",
			env:         map[string]string{"DB_PASSWORD": "test_db_password"},
			errContains: "BOT_TOKEN",
		},
		{
			name:        "missing DB_PASSWORD",
			env:         map[string]string{"BOT_TOKEN": "test_token"},
			errContains: "DB_PASSWORD",
		},
		{
			name: "malformed session ttl",
			env: map[string]string{
				"BOT_TOKEN":        "test_token",
				"DB_PASSWORD":      "test_db_password",
				"QUIZ_SESSION_TTL": "a day",
			},
			errContains: "QUIZ_SESSION_TTL",
		},
		{
			name: "negative session ttl",
			env: map[string]string{
				"BOT_TOKEN":        "test_token",
				"DB_PASSWORD":      "test_db_password",
				"QUIZ_SESSION_TTL": "-1h",
			},
			errContains: "QUIZ_SESSION_TTL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnv(t, tt.env)

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}
