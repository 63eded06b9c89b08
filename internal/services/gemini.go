package services

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/genai"
)

// ---------------------------------------------------------------------------
// Gemini Imagen Service
// Preferred cover-art backend. Produces raw PNG bytes that the caller
// uploads to storage; DALL-E is used as the fallback when no Gemini key
// is configured.
// ---------------------------------------------------------------------------

type GeminiService struct {
	apiKey string
	model  string
}

func NewGeminiService(apiKey, model string) *GeminiService {
	if model == "" {
		model = "imagen-3.0-generate-002"
	}
	return &GeminiService{
		apiKey: apiKey,
		model:  model,
	}
}

// GenerateCoverImage creates square podcast cover art and returns the
// image bytes plus their MIME type.
func (s *GeminiService) GenerateCoverImage(ctx context.Context, prompt string) ([]byte, string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  s.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to create genai client: %w", err)
	}

	config := &genai.GenerateImagesConfig{
		NumberOfImages: 1,
		AspectRatio:    "1:1",
	}

	fullPrompt := fmt.Sprintf("Professional podcast cover art: %s", prompt)
	log.Printf("[Gemini] Generating cover image (model=%s, promptLen=%d)", s.model, len(fullPrompt))

	resp, err := client.Models.GenerateImages(ctx, s.model, fullPrompt, config)
	if err != nil {
		return nil, "", fmt.Errorf("imagen request failed: %w", err)
	}

	if len(resp.GeneratedImages) == 0 || resp.GeneratedImages[0].Image == nil {
		return nil, "", fmt.Errorf("no image returned from imagen")
	}

	img := resp.GeneratedImages[0].Image
	mimeType := img.MIMEType
	if mimeType == "" {
		mimeType = "image/png"
	}

	log.Printf("[Gemini] Cover image generated (%d bytes)", len(img.ImageBytes))

	return img.ImageBytes, mimeType, nil
}
