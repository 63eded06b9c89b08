package api

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/cl-victor1/divinetalk/internal/cache"
	"github.com/cl-victor1/divinetalk/internal/db"
	"github.com/cl-victor1/divinetalk/internal/models"
	"github.com/cl-victor1/divinetalk/internal/podcast"
)

// URLExtractor pulls readable text out of a web page.
type URLExtractor interface {
	Extract(ctx context.Context, pageURL string) (string, error)
}

// SignedURLSource mints short-lived ConvAI session URLs.
type SignedURLSource interface {
	GetSignedURL(ctx context.Context) (string, error)
}

type Handler struct {
	generator *podcast.Generator
	ingestor  *podcast.Ingestor
	covers    *podcast.CoverArtist
	assistant *podcast.Assistant
	convai    SignedURLSource
	extractor URLExtractor
	db        *db.DB
	cache     *cache.Cache // nil when Redis is not configured
	downloads *http.Client
}

func NewHandler(
	generator *podcast.Generator,
	ingestor *podcast.Ingestor,
	covers *podcast.CoverArtist,
	assistant *podcast.Assistant,
	convai SignedURLSource,
	extractor URLExtractor,
	database *db.DB,
	feedCache *cache.Cache,
) *Handler {
	return &Handler{
		generator: generator,
		ingestor:  ingestor,
		covers:    covers,
		assistant: assistant,
		convai:    convai,
		extractor: extractor,
		db:        database,
		cache:     feedCache,
		downloads: &http.Client{Timeout: 2 * time.Minute},
	}
}

// GeneratePodcast handles POST /v1/podcasts/generate
func (h *Handler) GeneratePodcast(w http.ResponseWriter, r *http.Request) {
	var req models.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Prompt == "" {
		respondError(w, http.StatusBadRequest, "Prompt is required")
		return
	}

	resp, err := h.generator.Generate(r.Context(), req)
	if err != nil {
		log.Printf("[API] Podcast generation failed: %v", err)
		respondError(w, statusFor(err), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, resp)
}

// ListPublicPodcasts handles GET /v1/podcasts/public
func (h *Handler) ListPublicPodcasts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if h.cache != nil {
		if feed, ok, err := h.cache.GetFeed(ctx); err == nil && ok {
			respondJSON(w, http.StatusOK, feed)
			return
		} else if err != nil {
			log.Printf("[API] Feed cache read failed: %v", err)
		}
	}

	feed, err := h.db.ListPublicPodcasts(ctx)
	if err != nil {
		log.Printf("[API] Failed to list public podcasts: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch podcasts")
		return
	}

	if h.cache != nil {
		if err := h.cache.SetFeed(ctx, feed); err != nil {
			log.Printf("[API] Feed cache write failed: %v", err)
		}
	}

	respondJSON(w, http.StatusOK, feed)
}

// ListUserPodcasts handles GET /v1/users/{userId}/podcasts
func (h *Handler) ListUserPodcasts(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userId")
	if userID == "" {
		respondError(w, http.StatusBadRequest, "User ID is required")
		return
	}

	podcasts, err := h.db.ListUserPodcasts(r.Context(), userID)
	if err != nil {
		log.Printf("[API] Failed to list user podcasts: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to fetch podcasts")
		return
	}

	respondJSON(w, http.StatusOK, podcasts)
}

// GenerateCover handles POST /v1/podcasts/cover
func (h *Handler) GenerateCover(w http.ResponseWriter, r *http.Request) {
	var req models.CoverImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Prompt == "" {
		respondError(w, http.StatusBadRequest, "Prompt is required")
		return
	}

	url, err := h.covers.GenerateCover(r.Context(), req)
	if err != nil {
		log.Printf("[API] Cover generation failed: %v", err)
		respondError(w, statusFor(err), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"imageUrl": url})
}

// GetSignedURL handles GET /v1/conversations/signed-url
func (h *Handler) GetSignedURL(w http.ResponseWriter, r *http.Request) {
	signedURL, err := h.convai.GetSignedURL(r.Context())
	if err != nil {
		log.Printf("[API] Signed URL request failed: %v", err)
		respondError(w, http.StatusInternalServerError, "Failed to get signed URL")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"signedUrl": signedURL})
}

// UploadConversation handles POST /v1/conversations/upload
func (h *Handler) UploadConversation(w http.ResponseWriter, r *http.Request) {
	var req models.ConversationUploadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.ConversationID == "" || req.CreatedAt == "" {
		respondError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	artifact, err := h.ingestor.Ingest(r.Context(), req)
	if err != nil {
		log.Printf("[API] Conversation upload failed: %v", err)
		respondError(w, statusFor(err), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"success":      true,
		"audioUrl":     artifact.AudioURL,
		"subtitlesUrl": artifact.SubtitlesURL,
	})
}

// ExtractURL handles POST /v1/extract-url
func (h *Handler) ExtractURL(w http.ResponseWriter, r *http.Request) {
	var req models.ExtractURLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.URL == "" {
		respondError(w, http.StatusBadRequest, "URL is required")
		return
	}

	content, err := h.extractor.Extract(r.Context(), req.URL)
	if err != nil {
		log.Printf("[API] URL extraction failed (%s): %v", req.URL, err)
		respondError(w, http.StatusInternalServerError, "Failed to extract content from URL")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"content": content,
		"source":  req.URL,
	})
}

// Chat handles POST /v1/chat
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	var req models.ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Content == "" {
		respondError(w, http.StatusBadRequest, "Content is required")
		return
	}

	message, err := h.assistant.Respond(r.Context(), req)
	if err != nil {
		log.Printf("[API] Chat request failed: %v", err)
		respondError(w, statusFor(err), err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"message": message})
}

// DownloadAudio handles GET /v1/download-audio. It proxies the episode
// audio with an attachment disposition so browsers save instead of play.
func (h *Handler) DownloadAudio(w http.ResponseWriter, r *http.Request) {
	audioURL := r.URL.Query().Get("url")
	if audioURL == "" {
		respondError(w, http.StatusBadRequest, "URL parameter is required")
		return
	}

	req, err := http.NewRequestWithContext(r.Context(), "GET", audioURL, nil)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid audio URL")
		return
	}

	resp, err := h.downloads.Do(req)
	if err != nil {
		log.Printf("[API] Audio download failed (%s): %v", audioURL, err)
		respondError(w, http.StatusInternalServerError, "Failed to download audio")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("[API] Audio download returned status %d (%s)", resp.StatusCode, audioURL)
		respondError(w, http.StatusInternalServerError, "Failed to download audio")
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	w.Header().Set("Content-Disposition", `attachment; filename="podcast.mp3"`)
	if _, err := io.Copy(w, resp.Body); err != nil {
		log.Printf("[API] Audio download aborted (%s): %v", audioURL, err)
	}
}

// Health check
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// statusFor maps pipeline error kinds to HTTP statuses. The error
// taxonomy stays typed internally; the wire format is a flat
// {"error": message} body.
func statusFor(err error) int {
	switch podcast.KindOf(err) {
	case podcast.KindEntitlementDenied:
		return http.StatusForbidden
	case podcast.KindUpstreamTimeout:
		return http.StatusRequestTimeout
	default:
		return http.StatusInternalServerError
	}
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
