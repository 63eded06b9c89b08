package podcast

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/cl-victor1/divinetalk/internal/models"
)

// ImagenSource is the preferred cover-art backend. Implemented by
// services.GeminiService.
type ImagenSource interface {
	GenerateCoverImage(ctx context.Context, prompt string) (data []byte, mimeType string, err error)
}

// DallESource is the fallback cover-art backend, returning PNG bytes.
// Implemented by services.OpenAIService.
type DallESource interface {
	GenerateCoverImage(ctx context.Context, prompt string) ([]byte, error)
}

// CoverArtist generates episode cover art. Imagen is preferred when a
// Gemini key is configured; DALL-E otherwise. Either way the image is
// uploaded to our own storage: provider-hosted URLs expire.
type CoverArtist struct {
	imagen  ImagenSource // nil when Gemini is not configured
	dalle   DallESource
	uploads Uploader
}

func NewCoverArtist(imagen ImagenSource, dalle DallESource, uploads Uploader) *CoverArtist {
	return &CoverArtist{imagen: imagen, dalle: dalle, uploads: uploads}
}

// GenerateCover creates cover art and returns its public URL. Cover art
// is a paid-plan feature: Hobby and anonymous callers are rejected
// before any image call is made.
func (c *CoverArtist) GenerateCover(ctx context.Context, req models.CoverImageRequest) (string, error) {
	if req.SubscriptionTier == models.TierHobby || req.UserID == "" {
		return "", errf(KindEntitlementDenied, "Feature not available in your current plan")
	}

	if c.imagen != nil {
		data, mimeType, err := c.imagen.GenerateCoverImage(ctx, req.Prompt)
		if err == nil {
			return c.storeCover(ctx, data, mimeType)
		}
		log.Printf("[CoverArtist] Imagen failed, falling back to DALL-E: %v", err)
	}

	data, err := c.dalle.GenerateCoverImage(ctx, req.Prompt)
	if err != nil {
		return "", errf(KindGenerationFailed, "Failed to generate cover image")
	}
	return c.storeCover(ctx, data, "image/png")
}

func (c *CoverArtist) storeCover(ctx context.Context, data []byte, mimeType string) (string, error) {
	key := fmt.Sprintf("cover-%s%s", uuid.New(), extensionFor(mimeType))
	if err := c.uploads.Upload(ctx, key, data, mimeType); err != nil {
		return "", errf(KindStorageFailed, "failed to upload cover image: %v", err)
	}
	return c.uploads.GetPublicURL(key), nil
}

func extensionFor(mimeType string) string {
	switch mimeType {
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	default:
		return ".png"
	}
}
