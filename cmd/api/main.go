package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cl-victor1/divinetalk/internal/api"
	"github.com/cl-victor1/divinetalk/internal/cache"
	"github.com/cl-victor1/divinetalk/internal/config"
	"github.com/cl-victor1/divinetalk/internal/content"
	"github.com/cl-victor1/divinetalk/internal/db"
	"github.com/cl-victor1/divinetalk/internal/podcast"
	"github.com/cl-victor1/divinetalk/internal/services"
	"github.com/cl-victor1/divinetalk/internal/storage"
)

func main() {
	log.Println("Starting DivineTalk API...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database
	database, err := db.New(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()
	log.Println("Connected to database")

	// Connect to Redis — optional, the feed just skips caching without it
	var feedCache *cache.Cache
	if cfg.RedisURL != "" {
		feedCache, err = cache.New(cfg.RedisURL, time.Duration(cfg.FeedCacheTTL)*time.Second)
		if err != nil {
			log.Printf("WARNING: Redis unavailable, feed cache disabled: %v", err)
			feedCache = nil
		} else {
			defer feedCache.Close()
			log.Println("Connected to Redis feed cache")
		}
	}

	// Storage buckets: generated podcasts and recorded conversations
	podcastStore := storage.New(cfg.SupabaseURL, cfg.SupabaseServiceKey, cfg.SupabasePodcastBucket)
	conversationStore := storage.New(cfg.SupabaseURL, cfg.SupabaseServiceKey, cfg.SupabaseConversationBucket)
	log.Println("Initialized Supabase storage")

	// Providers
	openaiSvc := services.NewOpenAIService(cfg.OpenAIKey)
	elevenSvc := services.NewElevenLabsService(cfg.ElevenLabsKey, cfg.ElevenLabsAgentID, cfg.ElevenLabsMaxConcurrent)
	log.Printf("TTS providers: OpenAI (Standard/HD), ElevenLabs (WorldSpeak, max %d concurrent)", cfg.ElevenLabsMaxConcurrent)

	// Imagen cover art is optional — DALL-E covers the fallback
	var imagen podcast.ImagenSource
	if cfg.GeminiKey != "" {
		imagen = services.NewGeminiService(cfg.GeminiKey, cfg.ImagenModel)
		log.Printf("Cover art: Imagen (model: %s) with DALL-E fallback", cfg.ImagenModel)
	} else {
		log.Println("Cover art: DALL-E only (no GEMINI_API_KEY)")
	}

	generator := podcast.NewGenerator(
		database,
		openaiSvc,
		openaiSvc,
		openaiSvc,
		elevenSvc,
		podcastStore,
		database,
	)
	ingestor := podcast.NewIngestor(
		elevenSvc,
		openaiSvc,
		conversationStore,
		database,
		time.Duration(cfg.ConversationUploadTimeout)*time.Second,
	)
	covers := podcast.NewCoverArtist(imagen, openaiSvc, podcastStore)
	assistant := podcast.NewAssistant(openaiSvc)

	handler := api.NewHandler(
		generator,
		ingestor,
		covers,
		assistant,
		elevenSvc,
		content.NewExtractor(),
		database,
		feedCache,
	)
	router := api.NewRouter(handler, api.RouterConfig{
		BackendAPIKey:      cfg.BackendAPIKey,
		CorsAllowedOrigins: cfg.CorsAllowedOrigins,
	})

	if cfg.BackendAPIKey != "" {
		log.Println("API key authentication enabled")
	} else {
		log.Println("WARNING: No BACKEND_API_KEY set — API is unprotected (dev mode)")
	}

	server := &http.Server{
		Addr:    ":" + cfg.APIPort,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Printf("API server listening on :%s", cfg.APIPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
