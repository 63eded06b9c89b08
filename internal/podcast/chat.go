package podcast

import (
	"context"

	"github.com/cl-victor1/divinetalk/internal/models"
)

// ChatSource answers assistant messages. Implemented by
// services.OpenAIService.
type ChatSource interface {
	Chat(ctx context.Context, content string) (string, error)
}

// Assistant is the tier-gated academic chat helper.
type Assistant struct {
	chats ChatSource
}

func NewAssistant(chats ChatSource) *Assistant {
	return &Assistant{chats: chats}
}

// assistantTiers are the plans the chat assistant is included in.
var assistantTiers = map[models.SubscriptionTier]bool{
	models.TierFreelancer:   true,
	models.TierProfessional: true,
	models.TierEnterprise:   true,
}

// Respond answers one assistant message. Known users below Freelancer
// are rejected; requests without a user id pass through, since the tier
// cannot be determined for them.
func (a *Assistant) Respond(ctx context.Context, req models.ChatRequest) (string, error) {
	if req.UserID != "" && !assistantTiers[req.SubscriptionTier] {
		return "", errf(KindEntitlementDenied, "This feature requires Freelancer tier or higher")
	}

	message, err := a.chats.Chat(ctx, req.Content)
	if err != nil {
		return "", errf(KindGenerationFailed, "Failed to process chat request")
	}
	return message, nil
}
