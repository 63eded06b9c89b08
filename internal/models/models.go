package models

import (
	"time"

	"github.com/google/uuid"
)

// Enums

// SubscriptionTier mirrors the billing plans sold on the marketing site.
// The backend only cares about the generation and character ceilings
// each tier carries.
type SubscriptionTier string

const (
	TierTrial        SubscriptionTier = "Trial"
	TierHobby        SubscriptionTier = "Hobby"
	TierFreelancer   SubscriptionTier = "Freelancer"
	TierProfessional SubscriptionTier = "Professional"
	TierEnterprise   SubscriptionTier = "Enterprise"
)

// GenerationLimit returns the number of podcast generations allowed per
// 30-day window. Unrecognized tiers get the Enterprise ceiling, matching
// the billing fallthrough.
func (t SubscriptionTier) GenerationLimit() int {
	switch t {
	case TierTrial:
		return 8
	case TierHobby:
		return 40
	case TierFreelancer:
		return 70
	case TierProfessional:
		return 100
	default:
		return 150
	}
}

// CharacterLimit returns the maximum total transcript length (in
// characters) a single generation may synthesize for this tier.
func (t SubscriptionTier) CharacterLimit() int {
	switch t {
	case TierTrial, TierHobby:
		return 3000
	case TierFreelancer:
		return 10000
	case TierProfessional:
		return 20000
	default:
		return 30000
	}
}

// Speaker identifies which of the two podcast voices reads a line.
type Speaker string

const (
	Speaker1 Speaker = "speaker-1"
	Speaker2 Speaker = "speaker-2"
)

// Audio models selectable per request. Standard/HD map to OpenAI TTS;
// the WorldSpeak models map to ElevenLabs.
const (
	AudioModelStandard      = "Standard"
	AudioModelHD            = "HD"
	AudioModelWorldSpeak    = "WorldSpeak"
	AudioModelWorldSpeakPro = "WorldSpeak Pro"
)

// IsPremiumAudioModel reports whether the audio model routes to the
// rate-limited ElevenLabs backend.
func IsPremiumAudioModel(model string) bool {
	return model == AudioModelWorldSpeak || model == AudioModelWorldSpeakPro
}

// Models

// DialogueLine is one speaker turn of a generated podcast. The ordered
// sequence of lines is both the playback order of the final audio and
// the subtitles sidecar content.
type DialogueLine struct {
	Text    string  `json:"text"`
	Speaker Speaker `json:"speaker"`
}

// Podcast is the persisted artifact record. Immutable once written —
// there is no update or delete path.
type Podcast struct {
	ID           uuid.UUID `json:"id"`
	UserID       *string   `json:"user_id,omitempty"` // nil for anonymous generations
	AudioURL     string    `json:"audio_url"`
	SubtitlesURL string    `json:"subtitles_url"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Slug         string    `json:"slug"`
	IsPublic     bool      `json:"is_public"`
	CreatedAt    time.Time `json:"created_at"`
}

// QuotaRecord is the per-user generation counter with a 30-day rolling
// reset. Owned by the database; never cached across requests.
type QuotaRecord struct {
	UserID        string    `json:"user_id"`
	Count         int       `json:"count"`
	LastResetDate time.Time `json:"last_reset_date"`
}

// DTOs

// GenerateRequest is the body of POST /v1/podcasts/generate.
// Field names match the web client payload.
type GenerateRequest struct {
	UserID                string           `json:"userId,omitempty"`
	SubscriptionTier      SubscriptionTier `json:"subscriptionTier"`
	Prompt                string           `json:"prompt"`
	AudioModel            string           `json:"audioModel"`
	Speaker1Voice         string           `json:"speaker1Voice"`
	Speaker2Voice         string           `json:"speaker2Voice"`
	InstructionTemplate   string           `json:"instructionTemplate"`
	TextModel             string           `json:"textModel"`
	PodcastLength         int              `json:"podcastLength"`
	IsDirectScriptReading bool             `json:"isDirectScriptReading"`
	IsPublic              bool             `json:"isPublic"`
}

// GenerateResponse is returned on a successful generation.
type GenerateResponse struct {
	AudioURL     string         `json:"audioUrl"`
	SubtitlesURL string         `json:"subtitlesUrl"`
	Transcript   []DialogueLine `json:"transcript"`
	Slug         string         `json:"slug"`
	Title        string         `json:"title"`
}

// PodcastSummary is the lightweight shape served by the public feed.
type PodcastSummary struct {
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// ConversationUploadRequest ingests a completed ConvAI conversation.
type ConversationUploadRequest struct {
	UserID           string           `json:"userId,omitempty"`
	ConversationID   string           `json:"conversationId"`
	CreatedAt        string           `json:"createdAt"`
	SubscriptionTier SubscriptionTier `json:"subscriptionTier,omitempty"`
}

// CoverImageRequest is the body of POST /v1/podcasts/cover.
type CoverImageRequest struct {
	Prompt           string           `json:"prompt"`
	UserID           string           `json:"userId,omitempty"`
	SubscriptionTier SubscriptionTier `json:"subscriptionTier"`
}

// ExtractURLRequest is the body of POST /v1/extract-url.
type ExtractURLRequest struct {
	URL string `json:"url"`
}

// ChatRequest is the body of POST /v1/chat.
type ChatRequest struct {
	Content          string           `json:"content"`
	UserID           string           `json:"userId,omitempty"`
	SubscriptionTier SubscriptionTier `json:"subscriptionTier,omitempty"`
}
