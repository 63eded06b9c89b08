// Package podcast is the generation pipeline: script, per-line speech
// synthesis, artifact assembly and quota accounting.
package podcast

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/cl-victor1/divinetalk/internal/models"
	"github.com/cl-victor1/divinetalk/internal/services"
	"github.com/cl-victor1/divinetalk/internal/templates"
)

// QuotaStore claims generation slots. Implemented by db.DB.
type QuotaStore interface {
	TryConsume(ctx context.Context, userID string, limit int) (bool, error)
}

// ScriptSource writes the dialogue script. Implemented by services.OpenAIService.
type ScriptSource interface {
	GenerateScript(ctx context.Context, tmpl templates.Template, inputText string, wordLimit int, textModel string) (string, error)
}

// MetadataSource produces episode titles and descriptions.
type MetadataSource interface {
	GenerateTitleAndDescription(ctx context.Context, prompt, dialogue string) (title, description string, err error)
}

// Uploader stores artifact objects. Implemented by storage.Storage.
type Uploader interface {
	Upload(ctx context.Context, path string, data []byte, contentType string) error
	GetPublicURL(path string) string
}

// RecordStore persists artifact records. Implemented by db.DB.
type RecordStore interface {
	CreatePodcast(ctx context.Context, p *models.Podcast) error
}

// Generator runs one podcast generation end to end.
type Generator struct {
	quotas   QuotaStore
	scripts  ScriptSource
	metadata MetadataSource
	standard services.SpeechSynthesizer
	premium  services.SpeechSynthesizer
	uploads  Uploader
	store    RecordStore
}

func NewGenerator(
	quotas QuotaStore,
	scripts ScriptSource,
	metadata MetadataSource,
	standard, premium services.SpeechSynthesizer,
	uploads Uploader,
	store RecordStore,
) *Generator {
	return &Generator{
		quotas:   quotas,
		scripts:  scripts,
		metadata: metadata,
		standard: standard,
		premium:  premium,
		uploads:  uploads,
		store:    store,
	}
}

// Generate produces one podcast episode. The pipeline fails fast on
// quota and length checks before any synthesis call is made, synthesizes
// all lines concurrently, and only then assembles and uploads the
// artifact. Metadata generation and record persistence are best-effort:
// once the audio is uploaded the caller gets a usable artifact.
func (g *Generator) Generate(ctx context.Context, req models.GenerateRequest) (*models.GenerateResponse, error) {
	// Quota check claims a slot atomically; anonymous requests carry no
	// quota (the frontend gates them).
	if req.UserID != "" {
		allowed, err := g.quotas.TryConsume(ctx, req.UserID, req.SubscriptionTier.GenerationLimit())
		if err != nil {
			return nil, fmt.Errorf("quota check failed: %w", err)
		}
		if !allowed {
			return nil, errf(KindQuotaExceeded, "Monthly/Trial podcast generation limit reached")
		}
	}

	lines, err := g.buildScript(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, errf(KindGenerationFailed, "generated script contained no dialogue")
	}

	// Length check runs before synthesis so oversized scripts cost no
	// TTS calls.
	charLimit := req.SubscriptionTier.CharacterLimit()
	if total := totalCharacters(lines); total > charLimit {
		return nil, errf(KindLengthExceeded,
			"Text length (%d characters) exceeds the limit for your %s tier (%d characters). Please reduce the length of your text or upgrade your subscription.",
			total, req.SubscriptionTier, charLimit)
	}

	buffers, err := g.synthesize(ctx, req, lines)
	if err != nil {
		return nil, err
	}

	// Concatenate in original line order. MP3 frames tolerate byte-level
	// concatenation, so no re-encoding pass is needed.
	combined := bytes.Join(buffers, nil)

	slug := strconv.FormatInt(time.Now().UnixMilli(), 10)
	audioKey := fmt.Sprintf("podcast-%s.mp3", slug)
	subtitlesKey := fmt.Sprintf("subtitles-%s.json", slug)

	subtitles, err := json.Marshal(lines)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal transcript: %w", err)
	}

	if err := g.uploads.Upload(ctx, audioKey, combined, "audio/mp3"); err != nil {
		return nil, errf(KindStorageFailed, "failed to upload audio: %v", err)
	}
	if err := g.uploads.Upload(ctx, subtitlesKey, subtitles, "application/json"); err != nil {
		return nil, errf(KindStorageFailed, "failed to upload subtitles: %v", err)
	}

	audioURL := g.uploads.GetPublicURL(audioKey)
	subtitlesURL := g.uploads.GetPublicURL(subtitlesKey)

	title, description := g.describeEpisode(ctx, req.Prompt, lines)

	record := &models.Podcast{
		ID:           uuid.New(),
		AudioURL:     audioURL,
		SubtitlesURL: subtitlesURL,
		Title:        title,
		Description:  description,
		Slug:         slug,
		IsPublic:     req.IsPublic,
	}
	if req.UserID != "" {
		record.UserID = &req.UserID
	}

	// The artifact already exists in storage; losing the record loses
	// discoverability, not the episode itself.
	if err := g.store.CreatePodcast(ctx, record); err != nil {
		log.Printf("[Generator] Failed to persist podcast record (slug=%s): %v", slug, err)
	}

	return &models.GenerateResponse{
		AudioURL:     audioURL,
		SubtitlesURL: subtitlesURL,
		Transcript:   lines,
		Slug:         slug,
		Title:        title,
	}, nil
}

func (g *Generator) buildScript(ctx context.Context, req models.GenerateRequest) ([]models.DialogueLine, error) {
	if req.IsDirectScriptReading {
		return VerbatimScript(req.Prompt), nil
	}

	tmpl := templates.Lookup(req.InstructionTemplate)
	raw, err := g.scripts.GenerateScript(ctx, tmpl, req.Prompt, req.PodcastLength, req.TextModel)
	if err != nil {
		return nil, errf(KindGenerationFailed, "failed to generate script: %v", err)
	}

	return ParseScript(raw), nil
}

// synthesize fans out one task per line and collects results indexed by
// line position, so output order matches script order no matter which
// call finishes first. Any single failure cancels the rest and fails the
// whole request.
func (g *Generator) synthesize(ctx context.Context, req models.GenerateRequest, lines []models.DialogueLine) ([][]byte, error) {
	synth := g.standard
	if models.IsPremiumAudioModel(req.AudioModel) {
		synth = g.premium
	}
	modelID := services.SpeechModelFor(req.AudioModel, req.SubscriptionTier)

	buffers := make([][]byte, len(lines))
	eg, egCtx := errgroup.WithContext(ctx)

	for i, line := range lines {
		i, line := i, line
		eg.Go(func() error {
			voice := req.Speaker1Voice
			if line.Speaker == models.Speaker2 {
				voice = req.Speaker2Voice
			}

			audio, err := synth.Synthesize(egCtx, services.SpeechRequest{
				Text:    line.Text,
				Voice:   voice,
				ModelID: modelID,
			})
			if err != nil {
				return errf(KindSynthesisFailed, "failed to synthesize line %d: %v", i, err)
			}
			buffers[i] = audio
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return buffers, nil
}

// describeEpisode asks the LLM for a title and description, falling back
// to the truncated prompt. The artifact is already uploaded by the time
// this runs, so failures only cost metadata quality.
func (g *Generator) describeEpisode(ctx context.Context, prompt string, lines []models.DialogueLine) (string, string) {
	var b bytes.Buffer
	for i, line := range lines {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(line.Text)
	}

	title, description, err := g.metadata.GenerateTitleAndDescription(ctx, prompt, b.String())
	if err != nil {
		log.Printf("[Generator] Metadata generation failed, using prompt fallback: %v", err)
		return fallbackText(prompt, 100), fallbackText(prompt, 500)
	}
	return title, description
}

func fallbackText(s string, max int) string {
	if len(s) > max {
		s = s[:max]
	}
	return s
}
