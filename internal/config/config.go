package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	APIPort            string
	BackendAPIKey      string // API key for authenticating requests (empty = no auth, dev mode)
	CorsAllowedOrigins string // Comma-separated allowed origins (empty = *, dev mode)

	// Database
	DatabaseURL string

	// Redis (public feed cache)
	RedisURL     string
	FeedCacheTTL int // seconds

	// Supabase storage
	SupabaseURL                string
	SupabaseServiceKey         string
	SupabasePodcastBucket      string
	SupabaseConversationBucket string

	// OpenAI (script generation, Standard/HD TTS, titles)
	OpenAIKey string

	// ElevenLabs (WorldSpeak TTS and ConvAI conversations)
	ElevenLabsKey              string
	ElevenLabsAgentID          string
	ElevenLabsMaxConcurrent    int // simultaneous synthesis calls against ElevenLabs
	ConversationUploadTimeout  int // seconds, whole-request deadline for conversation ingest

	// Gemini (cover art via Imagen; optional, DALL-E is the fallback)
	GeminiKey   string
	ImagenModel string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	_ = godotenv.Load()

	cfg := &Config{
		APIPort:                    getEnv("API_PORT", "8080"),
		BackendAPIKey:              getEnv("BACKEND_API_KEY", ""),
		CorsAllowedOrigins:         getEnv("CORS_ALLOWED_ORIGINS", ""),
		DatabaseURL:                getEnv("DATABASE_URL", ""),
		RedisURL:                   getEnv("REDIS_URL", "redis://localhost:6379"),
		FeedCacheTTL:               getEnvInt("FEED_CACHE_TTL_SECONDS", 60),
		SupabaseURL:                getEnv("SUPABASE_URL", ""),
		SupabaseServiceKey:         getEnv("SUPABASE_SERVICE_KEY", ""),
		SupabasePodcastBucket:      getEnv("SUPABASE_PODCAST_BUCKET", "podcasts"),
		SupabaseConversationBucket: getEnv("SUPABASE_CONVERSATION_BUCKET", "conversations"),
		OpenAIKey:                  getEnv("OPENAI_API_KEY", ""),
		ElevenLabsKey:              getEnv("ELEVENLABS_API_KEY", ""),
		ElevenLabsAgentID:          getEnv("ELEVENLABS_AGENT_ID", ""),
		ElevenLabsMaxConcurrent:    getEnvInt("ELEVENLABS_MAX_CONCURRENT", 5),
		ConversationUploadTimeout:  getEnvInt("CONVERSATION_UPLOAD_TIMEOUT_SECONDS", 120),
		GeminiKey:                  getEnv("GEMINI_API_KEY", ""),
		ImagenModel:                getEnv("IMAGEN_MODEL", "imagen-3.0-generate-002"),
	}

	// Validate required fields
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	if cfg.OpenAIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required")
	}

	if cfg.ElevenLabsKey == "" {
		return nil, fmt.Errorf("ELEVENLABS_API_KEY is required")
	}

	if cfg.SupabaseURL == "" || cfg.SupabaseServiceKey == "" {
		return nil, fmt.Errorf("SUPABASE_URL and SUPABASE_SERVICE_KEY are required")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return defaultValue
}
