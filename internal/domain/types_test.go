package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTier(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected SeverityTier
	}{
		{"high", "High", TierHigh},
		{"high lowercase", "high", TierHigh},
		{"medium", "Medium", TierMedium},
		{"moderate maps to medium", "Moderate", TierMedium},
		{"low", "Low", TierLow},
		{"whitespace trimmed", "  High  ", TierHigh},
		{"unknown maps to low", "Critical", TierLow},
		{"empty maps to low", "", TierLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeTier(tt.input))
		})
	}
}

func TestSeverityTierRank(t *testing.T) {
	assert.Equal(t, 0, TierLow.Rank())
	assert.Equal(t, 1, TierMedium.Rank())
	assert.Equal(t, 2, TierHigh.Rank())
	assert.True(t, TierHigh.Rank() > TierMedium.Rank())
	assert.True(t, TierMedium.Rank() > TierLow.Rank())
}

func TestSeverityTierEscalate(t *testing.T) {
	assert.Equal(t, TierMedium, TierLow.Escalate())
	assert.Equal(t, TierHigh, TierMedium.Escalate())
	assert.Equal(t, TierHigh, TierHigh.Escalate())
}

func TestSeverityTierIsValid(t *testing.T) {
	assert.True(t, TierLow.IsValid())
	assert.True(t, TierMedium.IsValid())
	assert.True(t, TierHigh.IsValid())
	assert.False(t, SeverityTier("Moderate").IsValid())
	assert.False(t, SeverityTier("").IsValid())
}

func TestMaxTier(t *testing.T) {
	assert.Equal(t, TierLow, MaxTier())
	assert.Equal(t, TierHigh, MaxTier(TierLow, TierHigh, TierMedium))
	assert.Equal(t, TierMedium, MaxTier(TierLow, TierMedium))
}

func TestBandForAgreement(t *testing.T) {
	tests := []struct {
		name      string
		agreement float64
		expected  ConfidenceBand
	}{
		{"full agreement", 1.0, BandHigh},
		{"three quarters", 0.75, BandHigh},
		{"two thirds", 2.0 / 3.0, BandModerate},
		{"half", 0.5, BandModerate},
		{"one third", 1.0 / 3.0, BandLow},
		{"zero", 0.0, BandLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BandForAgreement(tt.agreement))
		})
	}
}

func TestYesNo(t *testing.T) {
	assert.Equal(t, Yes, FlagFor(true))
	assert.Equal(t, No, FlagFor(false))
	assert.True(t, Yes.Bool())
	assert.False(t, No.Bool())
	assert.Equal(t, "Yes", Yes.String())
	assert.Equal(t, "No", No.String())
}
