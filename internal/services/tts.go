package services

import (
	"context"

	"github.com/cl-victor1/divinetalk/internal/models"
)

// ---------------------------------------------------------------------------
// SpeechSynthesizer — common interface for text-to-speech providers
// OpenAI serves the Standard/HD audio models; ElevenLabs serves the
// WorldSpeak models. The generator routes each line to whichever backend
// the request selected without knowing the provider.
// ---------------------------------------------------------------------------

// SpeechRequest is one line of dialogue to synthesize.
type SpeechRequest struct {
	Text    string
	Voice   string // provider-specific voice identifier
	ModelID string // provider-specific speech model, from SpeechModelFor
}

// SpeechSynthesizer converts a single line of text into MP3 audio.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, req SpeechRequest) ([]byte, error)
}

// SpeechModelFor maps the request's audio model and subscription tier to
// the provider speech model. The multilingual ElevenLabs model is only
// reachable on the Pro audio tier with a Professional or Enterprise plan;
// everything else on ElevenLabs uses the turbo model.
func SpeechModelFor(audioModel string, tier models.SubscriptionTier) string {
	if models.IsPremiumAudioModel(audioModel) {
		if audioModel == models.AudioModelWorldSpeakPro &&
			(tier == models.TierProfessional || tier == models.TierEnterprise) {
			return "eleven_multilingual_v2"
		}
		return "eleven_turbo_v2_5"
	}
	if audioModel == models.AudioModelStandard {
		return "tts-1"
	}
	return "tts-1-hd"
}
