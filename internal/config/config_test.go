package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"AUDIO_DB_KEY",
	"AUDIO_DB_BASE_URL",
	"UPSTREAM_TIMEOUT",
	"CACHE_SIZE",
	"PORT",
	"HOST",
	"CORS_ALLOWED_ORIGINS",
	"LOG_LEVEL",
	"LOG_FORMAT",
	"HOME_ARTIST_ID",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "123", cfg.AudioDB.APIKey)
	assert.Equal(t, "https://www.theaudiodb.com/api/v1/json/123", cfg.AudioDB.BaseURL())
	assert.Equal(t, 10*time.Second, cfg.AudioDB.Timeout)
	assert.Equal(t, 32, cfg.AudioDB.CacheSize)
	assert.Equal(t, "0.0.0.0:5000", cfg.Server.Addr())
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "111239", cfg.HomeArtistID)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("AUDIO_DB_KEY", "secret")
	t.Setenv("AUDIO_DB_BASE_URL", "http://localhost:9999/json/")
	t.Setenv("UPSTREAM_TIMEOUT", "2s")
	t.Setenv("CACHE_SIZE", "8")
	t.Setenv("PORT", "8080")
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:5173, http://example.com ,")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("HOME_ARTIST_ID", "112024")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9999/json/secret", cfg.AudioDB.BaseURL())
	assert.Equal(t, 2*time.Second, cfg.AudioDB.Timeout)
	assert.Equal(t, 8, cfg.AudioDB.CacheSize)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr())
	assert.Equal(t, []string{"http://localhost:5173", "http://example.com"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "112024", cfg.HomeArtistID)
}

func TestLoadParseErrors(t *testing.T) {
	tests := map[string]string{
		"UPSTREAM_TIMEOUT": "soon",
		"CACHE_SIZE":       "many",
		"PORT":             "http",
	}

	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestValidateCollectsAllProblems(t *testing.T) {
	cfg := &Config{
		AudioDB: AudioDBConfig{APIKey: " ", RootURL: "ftp://x", CacheSize: 0},
		Server:  ServerConfig{Port: 70000},
		Logging: LoggingConfig{Level: "trace", Format: "xml"},
	}

	err := cfg.Validate()
	require.Error(t, err)

	for _, want := range []string{
		"AUDIO_DB_KEY",
		"AUDIO_DB_BASE_URL",
		"UPSTREAM_TIMEOUT",
		"CACHE_SIZE",
		"PORT",
		"HOME_ARTIST_ID",
		"LOG_LEVEL",
		"LOG_FORMAT",
	} {
		assert.Contains(t, err.Error(), want)
	}
}
