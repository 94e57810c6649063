package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("MONGODB_USERNAME", "user")
	t.Setenv("MONGODB_PASSWORD", "pass")
	t.Setenv("MONGODB_URL", "cluster.example.net")
	t.Setenv("MONGODB_DATABASE", "")
	t.Setenv("STORAGE_BACKEND", "")
	t.Setenv("LIVEKIT_API_KEY", "lk-key")
	t.Setenv("LIVEKIT_API_SECRET", "lk-secret")
	t.Setenv("LIVEKIT_URL", "wss://lk.example.com")
	t.Setenv("GEMINI_API_KEY", "gm-key")
	t.Setenv("GEMINI_MODEL", "")
	t.Setenv("PORT", "")
	t.Setenv("MAX_CONTEXT_TURNS", "")
}

func TestLoadDefaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Techladder", cfg.MongoDatabase)
	assert.Equal(t, BackendMongo, cfg.StorageBackend)
	assert.Equal(t, "gemini-2.0-flash", cfg.GeminiModel)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 20, cfg.MaxContextTurns)
}

func TestLoadOverrides(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("MONGODB_DATABASE", "Staging")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-pro")
	t.Setenv("PORT", "9090")
	t.Setenv("MAX_CONTEXT_TURNS", "8")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Staging", cfg.MongoDatabase)
	assert.Equal(t, "gemini-2.5-pro", cfg.GeminiModel)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 8, cfg.MaxContextTurns)
}

func TestLoadMemoryBackendSkipsMongoCredentials(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("STORAGE_BACKEND", BackendMemory)
	t.Setenv("MONGODB_USERNAME", "")
	t.Setenv("MONGODB_PASSWORD", "")
	t.Setenv("MONGODB_URL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, BackendMemory, cfg.StorageBackend)
}

func TestLoadValidation(t *testing.T) {
	tests := map[string]func(t *testing.T){
		"missing mongo credentials": func(t *testing.T) { t.Setenv("MONGODB_PASSWORD", "") },
		"unknown backend":           func(t *testing.T) { t.Setenv("STORAGE_BACKEND", "postgres") },
		"missing livekit keys":      func(t *testing.T) { t.Setenv("LIVEKIT_API_SECRET", "") },
		"missing gemini key":        func(t *testing.T) { t.Setenv("GEMINI_API_KEY", "") },
		"bad max context turns":     func(t *testing.T) { t.Setenv("MAX_CONTEXT_TURNS", "zero") },
		"negative max turns":        func(t *testing.T) { t.Setenv("MAX_CONTEXT_TURNS", "-1") },
	}
	for name, corrupt := range tests {
		t.Run(name, func(t *testing.T) {
			setBaseEnv(t)
			corrupt(t)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
