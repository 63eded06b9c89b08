package podcast

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cl-victor1/divinetalk/internal/models"
)

type fakeChat struct {
	reply string
	err   error
	calls int
}

func (f *fakeChat) Chat(ctx context.Context, content string) (string, error) {
	f.calls++
	return f.reply, f.err
}

func TestAssistantTierGate(t *testing.T) {
	chat := &fakeChat{reply: "sure"}
	a := NewAssistant(chat)

	for _, tier := range []models.SubscriptionTier{models.TierTrial, models.TierHobby} {
		_, err := a.Respond(context.Background(), models.ChatRequest{
			Content: "help me", UserID: "u1", SubscriptionTier: tier,
		})
		require.Error(t, err)
		assert.Equal(t, KindEntitlementDenied, KindOf(err))
		assert.Equal(t, "This feature requires Freelancer tier or higher", err.Error())
	}
	assert.Zero(t, chat.calls)
}

func TestAssistantAllowedTiers(t *testing.T) {
	for _, tier := range []models.SubscriptionTier{
		models.TierFreelancer, models.TierProfessional, models.TierEnterprise,
	} {
		a := NewAssistant(&fakeChat{reply: "here is a better hook"})
		msg, err := a.Respond(context.Background(), models.ChatRequest{
			Content: "improve my intro", UserID: "u1", SubscriptionTier: tier,
		})
		require.NoError(t, err)
		assert.Equal(t, "here is a better hook", msg)
	}
}

func TestAssistantAnonymousPassesThrough(t *testing.T) {
	// No user id means the tier is unknown; the check is skipped rather
	// than rejecting.
	chat := &fakeChat{reply: "ok"}
	a := NewAssistant(chat)

	msg, err := a.Respond(context.Background(), models.ChatRequest{Content: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "ok", msg)
	assert.Equal(t, 1, chat.calls)
}

func TestAssistantUpstreamFailure(t *testing.T) {
	a := NewAssistant(&fakeChat{err: errors.New("rate limited")})

	_, err := a.Respond(context.Background(), models.ChatRequest{
		Content: "hi", UserID: "u1", SubscriptionTier: models.TierEnterprise,
	})
	require.Error(t, err)
	assert.Equal(t, KindGenerationFailed, KindOf(err))
	assert.Equal(t, "Failed to process chat request", err.Error())
}
