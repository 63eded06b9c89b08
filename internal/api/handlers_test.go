package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cl-victor1/divinetalk/internal/models"
	"github.com/cl-victor1/divinetalk/internal/podcast"
	"github.com/cl-victor1/divinetalk/internal/services"
	"github.com/cl-victor1/divinetalk/internal/templates"
)

type stubQuota struct{ allow bool }

func (s *stubQuota) TryConsume(ctx context.Context, userID string, limit int) (bool, error) {
	return s.allow, nil
}

type stubScripts struct{ out string }

func (s *stubScripts) GenerateScript(ctx context.Context, tmpl templates.Template, inputText string, wordLimit int, textModel string) (string, error) {
	return s.out, nil
}

type stubMetadata struct{}

func (s *stubMetadata) GenerateTitleAndDescription(ctx context.Context, prompt, dialogue string) (string, string, error) {
	return "Episode Title", "Episode description.", nil
}

type stubSynth struct{}

func (s *stubSynth) Synthesize(ctx context.Context, req services.SpeechRequest) ([]byte, error) {
	return []byte("mp3"), nil
}

type stubUploader struct{}

func (s *stubUploader) Upload(ctx context.Context, path string, data []byte, contentType string) error {
	return nil
}

func (s *stubUploader) GetPublicURL(path string) string {
	return "https://cdn.example.com/" + path
}

type stubStore struct{}

func (s *stubStore) CreatePodcast(ctx context.Context, p *models.Podcast) error { return nil }

type stubConversations struct{}

func (s *stubConversations) GetConversation(ctx context.Context, id string) (*services.ConversationDetail, error) {
	return &services.ConversationDetail{TranscriptSummary: "a chat"}, nil
}

func (s *stubConversations) GetConversationAudio(ctx context.Context, id string) ([]byte, error) {
	return []byte("mp3"), nil
}

type stubTitles struct{}

func (s *stubTitles) GenerateTitle(ctx context.Context, summary string) (string, error) {
	return "Conversation Title", nil
}

type stubDallE struct{ data []byte }

func (s *stubDallE) GenerateCoverImage(ctx context.Context, prompt string) ([]byte, error) {
	if len(s.data) == 0 {
		return nil, errors.New("upstream down")
	}
	return s.data, nil
}

type stubChat struct{ reply string }

func (s *stubChat) Chat(ctx context.Context, content string) (string, error) {
	return s.reply, nil
}

type stubSignedURL struct {
	url string
	err error
}

func (s *stubSignedURL) GetSignedURL(ctx context.Context) (string, error) { return s.url, s.err }

type stubExtractor struct {
	content string
	err     error
}

func (s *stubExtractor) Extract(ctx context.Context, pageURL string) (string, error) {
	return s.content, s.err
}

func newTestHandler(quotaAllowed bool) *Handler {
	generator := podcast.NewGenerator(
		&stubQuota{allow: quotaAllowed},
		&stubScripts{out: "speaker-1: Hello there.\nspeaker-2: Hi, welcome back."},
		&stubMetadata{},
		&stubSynth{},
		&stubSynth{},
		&stubUploader{},
		&stubStore{},
	)
	ingestor := podcast.NewIngestor(&stubConversations{}, &stubTitles{}, &stubUploader{}, &stubStore{}, time.Second)
	covers := podcast.NewCoverArtist(nil, &stubDallE{data: []byte("png")}, &stubUploader{})
	assistant := podcast.NewAssistant(&stubChat{reply: "try opening with a question"})
	return NewHandler(generator, ingestor, covers, assistant, &stubSignedURL{url: "wss://convai.example.com/session"}, &stubExtractor{content: "page text"}, nil, nil)
}

func postJSON(t *testing.T, handler http.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest("POST", "/", bytes.NewReader(data))
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestGeneratePodcast(t *testing.T) {
	h := newTestHandler(true)

	rec := postJSON(t, h.GeneratePodcast, models.GenerateRequest{
		UserID:           "user-1",
		SubscriptionTier: models.TierFreelancer,
		Prompt:           "The history of radio drama",
	})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Contains(t, body["audioUrl"], "podcast-")
	assert.Contains(t, body["subtitlesUrl"], "subtitles-")
	assert.Equal(t, "Episode Title", body["title"])
	assert.Len(t, body["transcript"], 2)
}

func TestGeneratePodcastQuotaExceeded(t *testing.T) {
	h := newTestHandler(false)

	rec := postJSON(t, h.GeneratePodcast, models.GenerateRequest{
		UserID:           "user-1",
		SubscriptionTier: models.TierTrial,
		Prompt:           "anything",
	})

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody(t, rec)
	assert.Contains(t, body["error"], "generation limit reached")
}

func TestGeneratePodcastMissingPrompt(t *testing.T) {
	h := newTestHandler(true)

	rec := postJSON(t, h.GeneratePodcast, models.GenerateRequest{UserID: "user-1"})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Prompt is required", decodeBody(t, rec)["error"])
}

func TestGeneratePodcastInvalidBody(t *testing.T) {
	h := newTestHandler(true)

	req := httptest.NewRequest("POST", "/", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	h.GeneratePodcast(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateCoverEntitlement(t *testing.T) {
	h := newTestHandler(true)

	rec := postJSON(t, h.GenerateCover, models.CoverImageRequest{
		Prompt:           "a radio tower at dusk",
		UserID:           "user-1",
		SubscriptionTier: models.TierHobby,
	})

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["error"], "not available")
}

func TestGenerateCover(t *testing.T) {
	h := newTestHandler(true)

	rec := postJSON(t, h.GenerateCover, models.CoverImageRequest{
		Prompt:           "a radio tower at dusk",
		UserID:           "user-1",
		SubscriptionTier: models.TierProfessional,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["imageUrl"], "https://cdn.example.com/cover-")
}

func TestUploadConversationMissingFields(t *testing.T) {
	h := newTestHandler(true)

	rec := postJSON(t, h.UploadConversation, models.ConversationUploadRequest{
		ConversationID: "conv-1",
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Missing required fields", decodeBody(t, rec)["error"])
}

func TestUploadConversation(t *testing.T) {
	h := newTestHandler(true)

	rec := postJSON(t, h.UploadConversation, models.ConversationUploadRequest{
		UserID:         "user-1",
		ConversationID: "conv-1",
		CreatedAt:      time.Now().UTC().Format(time.RFC3339),
	})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Contains(t, body["audioUrl"], "conversation-conv-1")
}

func TestGetSignedURL(t *testing.T) {
	h := newTestHandler(true)

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	h.GetSignedURL(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "wss://convai.example.com/session", decodeBody(t, rec)["signedUrl"])
}

func TestExtractURL(t *testing.T) {
	h := newTestHandler(true)

	rec := postJSON(t, h.ExtractURL, models.ExtractURLRequest{URL: "https://example.com/post"})

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "page text", body["content"])
	assert.Equal(t, "https://example.com/post", body["source"])
}

func TestExtractURLMissingURL(t *testing.T) {
	h := newTestHandler(true)

	rec := postJSON(t, h.ExtractURL, models.ExtractURLRequest{})

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChat(t *testing.T) {
	h := newTestHandler(true)

	rec := postJSON(t, h.Chat, models.ChatRequest{
		Content: "tighten my intro", UserID: "u1", SubscriptionTier: models.TierFreelancer,
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "try opening with a question", decodeBody(t, rec)["message"])
}

func TestChatTierGate(t *testing.T) {
	h := newTestHandler(true)

	rec := postJSON(t, h.Chat, models.ChatRequest{
		Content: "tighten my intro", UserID: "u1", SubscriptionTier: models.TierHobby,
	})

	require.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "This feature requires Freelancer tier or higher", decodeBody(t, rec)["error"])
}

func TestChatMissingContent(t *testing.T) {
	h := newTestHandler(true)

	rec := postJSON(t, h.Chat, models.ChatRequest{UserID: "u1"})

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Content is required", decodeBody(t, rec)["error"])
}

func TestDownloadAudio(t *testing.T) {
	h := newTestHandler(true)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("mp3-bytes"))
	}))
	defer srv.Close()

	req := httptest.NewRequest("GET", "/?url="+srv.URL, nil)
	rec := httptest.NewRecorder()
	h.DownloadAudio(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "audio/mpeg", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="podcast.mp3"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "mp3-bytes", rec.Body.String())
}

func TestDownloadAudioMissingURL(t *testing.T) {
	h := newTestHandler(true)

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	h.DownloadAudio(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "URL parameter is required", decodeBody(t, rec)["error"])
}

func TestDownloadAudioUpstreamFailure(t *testing.T) {
	h := newTestHandler(true)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	req := httptest.NewRequest("GET", "/?url="+srv.URL, nil)
	rec := httptest.NewRecorder()
	h.DownloadAudio(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to download audio", decodeBody(t, rec)["error"])
}

func TestStatusFor(t *testing.T) {
	denied := &podcast.Error{Kind: podcast.KindEntitlementDenied, Err: errors.New("no")}
	timeout := &podcast.Error{Kind: podcast.KindUpstreamTimeout, Err: errors.New("slow")}

	assert.Equal(t, http.StatusForbidden, statusFor(denied))
	assert.Equal(t, http.StatusRequestTimeout, statusFor(timeout))
	assert.Equal(t, http.StatusInternalServerError, statusFor(errors.New("boom")))
}

func TestAPIKeyAuth(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	protected := APIKeyAuth("secret")(next)

	t.Run("missing key", func(t *testing.T) {
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong key", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("X-API-Key", "wrong")
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("header key", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("X-API-Key", "secret")
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("bearer key", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer secret")
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
