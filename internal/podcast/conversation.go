package podcast

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/cl-victor1/divinetalk/internal/models"
	"github.com/cl-victor1/divinetalk/internal/services"
)

// ConversationSource fetches finished ConvAI sessions from the provider.
// Implemented by services.ElevenLabsService.
type ConversationSource interface {
	GetConversation(ctx context.Context, conversationID string) (*services.ConversationDetail, error)
	GetConversationAudio(ctx context.Context, conversationID string) ([]byte, error)
}

// TitleSource produces a title from a transcript summary.
type TitleSource interface {
	GenerateTitle(ctx context.Context, summary string) (string, error)
}

// ConversationArtifact is the stored result of a conversation ingest.
type ConversationArtifact struct {
	AudioURL     string `json:"audioUrl"`
	SubtitlesURL string `json:"subtitlesUrl"`
}

// Ingestor turns a finished real-time conversation into a stored podcast
// artifact. Unlike the Generator it synthesizes nothing: the provider
// already holds the audio and transcript, so ingest is fetch, upload and
// persist.
type Ingestor struct {
	conversations ConversationSource
	titles        TitleSource
	uploads       Uploader
	store         RecordStore
	timeout       time.Duration
}

func NewIngestor(conversations ConversationSource, titles TitleSource, uploads Uploader, store RecordStore, timeout time.Duration) *Ingestor {
	if timeout <= 0 {
		timeout = 120 * time.Second
	}
	return &Ingestor{
		conversations: conversations,
		titles:        titles,
		uploads:       uploads,
		store:         store,
		timeout:       timeout,
	}
}

// Ingest fetches the conversation's audio and transcript, uploads both
// and persists the artifact record. The whole exchange runs under one
// deadline: recorded conversations can be large and the provider slow,
// and a hung fetch must not pin the handler forever.
func (in *Ingestor) Ingest(ctx context.Context, req models.ConversationUploadRequest) (*ConversationArtifact, error) {
	ctx, cancel := context.WithTimeout(ctx, in.timeout)
	defer cancel()

	audio, err := in.conversations.GetConversationAudio(ctx, req.ConversationID)
	if err != nil {
		return nil, classifyUpstream(err, "failed to fetch conversation audio")
	}

	detail, err := in.conversations.GetConversation(ctx, req.ConversationID)
	if err != nil {
		return nil, classifyUpstream(err, "failed to fetch conversation transcript")
	}

	title, err := in.titles.GenerateTitle(ctx, detail.TranscriptSummary)
	if err != nil {
		log.Printf("[Ingestor] Title generation failed, using summary fallback: %v", err)
		title = fallbackText(detail.TranscriptSummary, 80)
	}

	audioKey := fmt.Sprintf("conversation-%s.mp3", req.ConversationID)
	subtitlesKey := fmt.Sprintf("subtitles-%s.json", req.ConversationID)

	subtitles, err := json.Marshal(detail.Transcript)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal transcript: %w", err)
	}

	if err := in.uploads.Upload(ctx, audioKey, audio, "audio/mp3"); err != nil {
		return nil, errf(KindStorageFailed, "failed to upload conversation audio: %v", err)
	}
	if err := in.uploads.Upload(ctx, subtitlesKey, subtitles, "application/json"); err != nil {
		return nil, errf(KindStorageFailed, "failed to upload conversation subtitles: %v", err)
	}

	record := &models.Podcast{
		ID:           uuid.New(),
		AudioURL:     in.uploads.GetPublicURL(audioKey),
		SubtitlesURL: in.uploads.GetPublicURL(subtitlesKey),
		Title:        title,
		Description:  detail.TranscriptSummary,
		Slug:         req.ConversationID,
		IsPublic:     false,
	}
	if req.UserID != "" {
		record.UserID = &req.UserID
	}
	if t, err := time.Parse(time.RFC3339, req.CreatedAt); err == nil {
		record.CreatedAt = t
	}

	if err := in.store.CreatePodcast(ctx, record); err != nil {
		log.Printf("[Ingestor] Failed to persist conversation record (id=%s): %v", req.ConversationID, err)
	}

	return &ConversationArtifact{
		AudioURL:     record.AudioURL,
		SubtitlesURL: record.SubtitlesURL,
	}, nil
}

func classifyUpstream(err error, msg string) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return errf(KindUpstreamTimeout, "%s: request timed out", msg)
	}
	return errf(KindInternal, "%s: %v", msg, err)
}
