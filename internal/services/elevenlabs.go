package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	"golang.org/x/sync/semaphore"
)

// ---------------------------------------------------------------------------
// ElevenLabs Text-to-Speech and ConvAI Service
// Serves the WorldSpeak audio models and the conversational agent flows.
// Synthesis calls are bounded by a weighted semaphore because ElevenLabs
// rate-limits concurrent requests per account.
// ---------------------------------------------------------------------------

const (
	elevenLabsBaseURL      = "https://api.elevenlabs.io"
	elevenLabsOutputFormat = "mp3_44100_128"
)

// ElevenLabsService handles text-to-speech and ConvAI calls.
type ElevenLabsService struct {
	apiKey  string
	agentID string
	baseURL string
	client  *http.Client
	sem     *semaphore.Weighted
}

// Ensure ElevenLabsService implements SpeechSynthesizer at compile time.
var _ SpeechSynthesizer = (*ElevenLabsService)(nil)

// NewElevenLabsService creates the service. maxConcurrent bounds how many
// synthesis calls may be in flight at once across all requests.
func NewElevenLabsService(apiKey, agentID string, maxConcurrent int) *ElevenLabsService {
	if maxConcurrent <= 0 {
		maxConcurrent = 5
	}
	return &ElevenLabsService{
		apiKey:  apiKey,
		agentID: agentID,
		baseURL: elevenLabsBaseURL,
		client:  &http.Client{Timeout: 90 * time.Second},
		sem:     semaphore.NewWeighted(int64(maxConcurrent)),
	}
}

type elevenLabsSpeechRequest struct {
	Text    string `json:"text"`
	ModelID string `json:"model_id"`
}

// Synthesize converts one dialogue line to MP3 audio. It blocks while the
// concurrency cap is saturated, and gives up if ctx is canceled first.
func (s *ElevenLabsService) Synthesize(ctx context.Context, req SpeechRequest) ([]byte, error) {
	if err := s.sem.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("waiting for ElevenLabs slot: %w", err)
	}
	defer s.sem.Release(1)

	jsonData, err := json.Marshal(elevenLabsSpeechRequest{
		Text:    req.Text,
		ModelID: req.ModelID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal ElevenLabs request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/text-to-speech/%s?output_format=%s",
		s.baseURL, req.Voice, elevenLabsOutputFormat)

	httpReq, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create ElevenLabs request: %w", err)
	}

	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("xi-api-key", s.apiKey)

	log.Printf("[ElevenLabs] Generating speech (voice=%s, model=%s, textLen=%d)",
		req.Voice, req.ModelID, len(req.Text))

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("ElevenLabs request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("ElevenLabs returned status %d: %s", resp.StatusCode, string(body))
	}

	// The response body IS the audio file.
	audioData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read ElevenLabs audio response: %w", err)
	}

	if len(audioData) == 0 {
		return nil, fmt.Errorf("ElevenLabs returned empty audio")
	}

	return audioData, nil
}

// GetSignedURL fetches a short-lived WebSocket URL for starting a ConvAI
// session against the configured agent.
func (s *ElevenLabsService) GetSignedURL(ctx context.Context) (string, error) {
	if s.agentID == "" {
		return "", fmt.Errorf("ELEVENLABS_AGENT_ID is not set")
	}

	url := fmt.Sprintf("%s/v1/convai/conversation/get_signed_url?agent_id=%s", s.baseURL, s.agentID)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create signed URL request: %w", err)
	}
	req.Header.Set("xi-api-key", s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ElevenLabs request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("ElevenLabs returned status %d: %s", resp.StatusCode, string(body))
	}

	var payload struct {
		SignedURL string `json:"signed_url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("failed to decode signed URL response: %w", err)
	}

	return payload.SignedURL, nil
}

// ConversationTranscriptLine is one turn of a recorded ConvAI session.
type ConversationTranscriptLine struct {
	Role    string `json:"role"`
	Message string `json:"message"`
}

// ConversationDetail is the transcript and analysis of a finished session.
type ConversationDetail struct {
	Transcript        []ConversationTranscriptLine
	TranscriptSummary string
}

// GetConversation fetches the transcript and analysis of a finished
// ConvAI conversation.
func (s *ElevenLabsService) GetConversation(ctx context.Context, conversationID string) (*ConversationDetail, error) {
	url := fmt.Sprintf("%s/v1/convai/conversations/%s", s.baseURL, conversationID)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create conversation request: %w", err)
	}
	req.Header.Set("xi-api-key", s.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ElevenLabs request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("ElevenLabs returned status %d: %s", resp.StatusCode, string(body))
	}

	var payload struct {
		Transcript []ConversationTranscriptLine `json:"transcript"`
		Analysis   struct {
			TranscriptSummary string `json:"transcript_summary"`
		} `json:"analysis"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("failed to decode conversation response: %w", err)
	}

	return &ConversationDetail{
		Transcript:        payload.Transcript,
		TranscriptSummary: payload.Analysis.TranscriptSummary,
	}, nil
}

// GetConversationAudio downloads the recorded audio of a finished ConvAI
// conversation as MP3 bytes.
func (s *ElevenLabsService) GetConversationAudio(ctx context.Context, conversationID string) ([]byte, error) {
	url := fmt.Sprintf("%s/v1/convai/conversations/%s/audio", s.baseURL, conversationID)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create conversation audio request: %w", err)
	}
	req.Header.Set("xi-api-key", s.apiKey)

	log.Printf("[ElevenLabs] Fetching conversation audio (conversationID=%s)", conversationID)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ElevenLabs request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("ElevenLabs returned status %d: %s", resp.StatusCode, string(body))
	}

	audioData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read conversation audio: %w", err)
	}

	return audioData, nil
}
