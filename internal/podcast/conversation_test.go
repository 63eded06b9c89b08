package podcast

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cl-victor1/divinetalk/internal/models"
	"github.com/cl-victor1/divinetalk/internal/services"
)

type fakeConversations struct {
	detail   *services.ConversationDetail
	audio    []byte
	err      error
	hang     bool // block until the context expires
	audioErr error
}

func (f *fakeConversations) GetConversation(ctx context.Context, id string) (*services.ConversationDetail, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.detail, nil
}

func (f *fakeConversations) GetConversationAudio(ctx context.Context, id string) ([]byte, error) {
	if f.hang {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if f.audioErr != nil {
		return nil, f.audioErr
	}
	return f.audio, nil
}

type fakeTitles struct {
	title string
	err   error
}

func (f *fakeTitles) GenerateTitle(ctx context.Context, summary string) (string, error) {
	return f.title, f.err
}

func TestIngestHappyPath(t *testing.T) {
	conversations := &fakeConversations{
		detail: &services.ConversationDetail{
			Transcript: []services.ConversationTranscriptLine{
				{Role: "agent", Message: "Hello"},
				{Role: "user", Message: "Hi"},
			},
			TranscriptSummary: "A short chat",
		},
		audio: []byte("conversation-audio"),
	}
	uploads := newFakeUploader()
	store := &fakeStore{}
	in := NewIngestor(conversations, &fakeTitles{title: "Chat Title"}, uploads, store, time.Minute)

	artifact, err := in.Ingest(context.Background(), models.ConversationUploadRequest{
		UserID:         "user-1",
		ConversationID: "conv-42",
		CreatedAt:      "2026-08-30T12:00:00Z",
	})
	require.NoError(t, err)

	assert.Equal(t, "https://cdn.example.com/conversation-conv-42.mp3", artifact.AudioURL)
	assert.Equal(t, "https://cdn.example.com/subtitles-conv-42.json", artifact.SubtitlesURL)
	assert.Equal(t, []byte("conversation-audio"), uploads.objects["conversation-conv-42.mp3"])

	var transcript []services.ConversationTranscriptLine
	require.NoError(t, json.Unmarshal(uploads.objects["subtitles-conv-42.json"], &transcript))
	require.Len(t, transcript, 2)
	assert.Equal(t, "Hello", transcript[0].Message)

	require.Len(t, store.created, 1)
	rec := store.created[0]
	assert.Equal(t, "conv-42", rec.Slug)
	assert.Equal(t, "Chat Title", rec.Title)
	assert.Equal(t, "A short chat", rec.Description)
	assert.False(t, rec.IsPublic)
	assert.Equal(t, time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC), rec.CreatedAt)
}

func TestIngestTimeout(t *testing.T) {
	conversations := &fakeConversations{hang: true}
	in := NewIngestor(conversations, &fakeTitles{}, newFakeUploader(), &fakeStore{}, 20*time.Millisecond)

	_, err := in.Ingest(context.Background(), models.ConversationUploadRequest{
		ConversationID: "conv-1",
		CreatedAt:      "2026-08-30T12:00:00Z",
	})
	require.Error(t, err)
	assert.Equal(t, KindUpstreamTimeout, KindOf(err))
}

func TestIngestTitleFailureFallsBackToSummary(t *testing.T) {
	conversations := &fakeConversations{
		detail: &services.ConversationDetail{TranscriptSummary: "The summary of the talk"},
		audio:  []byte("a"),
	}
	store := &fakeStore{}
	in := NewIngestor(conversations, &fakeTitles{err: errors.New("llm down")}, newFakeUploader(), store, time.Minute)

	_, err := in.Ingest(context.Background(), models.ConversationUploadRequest{
		ConversationID: "conv-2",
		CreatedAt:      "2026-08-30T12:00:00Z",
	})
	require.NoError(t, err)
	require.Len(t, store.created, 1)
	assert.Equal(t, "The summary of the talk", store.created[0].Title)
}

func TestIngestUpstreamFailure(t *testing.T) {
	conversations := &fakeConversations{audioErr: errors.New("boom")}
	uploads := newFakeUploader()
	in := NewIngestor(conversations, &fakeTitles{}, uploads, &fakeStore{}, time.Minute)

	_, err := in.Ingest(context.Background(), models.ConversationUploadRequest{
		ConversationID: "conv-3",
		CreatedAt:      "2026-08-30T12:00:00Z",
	})
	require.Error(t, err)
	assert.Empty(t, uploads.objects)
}
