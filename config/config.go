package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Storage backends selectable via STORAGE_BACKEND.
const (
	BackendMongo  = "mongo"
	BackendMemory = "memory"
)

// Config holds the process configuration.
type Config struct {
	MongoUsername string
	MongoPassword string
	MongoURL      string
	MongoDatabase string

	StorageBackend string

	LiveKitAPIKey    string
	LiveKitAPISecret string
	LiveKitURL       string

	GeminiAPIKey string
	GeminiModel  string

	Port            string
	MaxContextTurns int
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	// .env file is optional
	_ = godotenv.Load()

	cfg := &Config{
		MongoUsername:  os.Getenv("MONGODB_USERNAME"),
		MongoPassword:  os.Getenv("MONGODB_PASSWORD"),
		MongoURL:       os.Getenv("MONGODB_URL"),
		MongoDatabase:  "Techladder",
		StorageBackend: BackendMongo,

		LiveKitAPIKey:    os.Getenv("LIVEKIT_API_KEY"),
		LiveKitAPISecret: os.Getenv("LIVEKIT_API_SECRET"),
		LiveKitURL:       os.Getenv("LIVEKIT_URL"),

		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  "gemini-2.0-flash",

		Port:            "8080",
		MaxContextTurns: 20,
	}

	if db := os.Getenv("MONGODB_DATABASE"); db != "" {
		cfg.MongoDatabase = db
	}
	if backend := os.Getenv("STORAGE_BACKEND"); backend != "" {
		cfg.StorageBackend = backend
	}
	if model := os.Getenv("GEMINI_MODEL"); model != "" {
		cfg.GeminiModel = model
	}
	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}
	if raw := os.Getenv("MAX_CONTEXT_TURNS"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			return nil, fmt.Errorf("MAX_CONTEXT_TURNS must be a positive integer, got %q", raw)
		}
		cfg.MaxContextTurns = parsed
	}

	// Validation
	switch cfg.StorageBackend {
	case BackendMongo:
		if cfg.MongoUsername == "" || cfg.MongoPassword == "" || cfg.MongoURL == "" {
			return nil, fmt.Errorf("MONGODB_USERNAME, MONGODB_PASSWORD and MONGODB_URL are required for the mongo backend")
		}
	case BackendMemory:
		// no store credentials needed
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q", cfg.StorageBackend)
	}
	if cfg.LiveKitAPIKey == "" || cfg.LiveKitAPISecret == "" {
		return nil, fmt.Errorf("LIVEKIT_API_KEY and LIVEKIT_API_SECRET environment variables are required")
	}
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	return cfg, nil
}
