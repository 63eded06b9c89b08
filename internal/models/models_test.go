package models

import "testing"

func TestGenerationLimit(t *testing.T) {
	tests := []struct {
		tier SubscriptionTier
		want int
	}{
		{TierTrial, 8},
		{TierHobby, 40},
		{TierFreelancer, 70},
		{TierProfessional, 100},
		{TierEnterprise, 150},
		{SubscriptionTier("SomethingNew"), 150},
	}
	for _, tt := range tests {
		if got := tt.tier.GenerationLimit(); got != tt.want {
			t.Errorf("GenerationLimit(%q) = %d, want %d", tt.tier, got, tt.want)
		}
	}
}

func TestCharacterLimit(t *testing.T) {
	tests := []struct {
		tier SubscriptionTier
		want int
	}{
		{TierTrial, 3000},
		{TierHobby, 3000},
		{TierFreelancer, 10000},
		{TierProfessional, 20000},
		{TierEnterprise, 30000},
		{SubscriptionTier(""), 30000},
	}
	for _, tt := range tests {
		if got := tt.tier.CharacterLimit(); got != tt.want {
			t.Errorf("CharacterLimit(%q) = %d, want %d", tt.tier, got, tt.want)
		}
	}
}

func TestIsPremiumAudioModel(t *testing.T) {
	tests := []struct {
		model string
		want  bool
	}{
		{AudioModelStandard, false},
		{AudioModelHD, false},
		{AudioModelWorldSpeak, true},
		{AudioModelWorldSpeakPro, true},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsPremiumAudioModel(tt.model); got != tt.want {
			t.Errorf("IsPremiumAudioModel(%q) = %v, want %v", tt.model, got, tt.want)
		}
	}
}
