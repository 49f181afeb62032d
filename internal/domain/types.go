// Package domain contains the core business entities and types for the
// symptom-understanding and risk-fusion engine.
//
// The engine resolves free-text or checklist symptom reports into a
// normalized symptom set, then combines several independently computed
// risk signals into a single discrete risk tier with a confidence band.
// It never asserts certainty about a disease.
package domain

import (
	"errors"
	"strings"
)

// SeverityTier represents the ordered risk classification assigned to
// symptoms, clusters, silent-emergency patterns, and the final assessment.
// The total order is Low < Medium < High.
type SeverityTier string

const (
	TierLow    SeverityTier = "Low"
	TierMedium SeverityTier = "Medium"
	TierHigh   SeverityTier = "High"
)

// ConfidenceBand is a coarse label for how strongly the independent risk
// signals agree on the final tier.
type ConfidenceBand string

const (
	BandLow      ConfidenceBand = "low"
	BandModerate ConfidenceBand = "moderate"
	BandHigh     ConfidenceBand = "high"
)

// YesNo is the surface representation of binary flags (neglect detected,
// caregiver alert) in assessment output.
type YesNo string

const (
	Yes YesNo = "Yes"
	No  YesNo = "No"
)

// Validation errors for assessment data integrity.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidTier       = errors.New("invalid severity tier")
	ErrInvalidBand       = errors.New("invalid confidence band")
	ErrEmptyInput        = errors.New("no symptoms or text provided")
	ErrUnknownSymptom    = errors.New("symptom id not in vocabulary")
	ErrNoPrediction      = errors.New("no prediction available")
	ErrPredictorDisabled = errors.New("predictor disabled")
)

// NormalizeTier maps every surface spelling of a tier onto the canonical
// {Low, Medium, High} enumeration. "Moderate" is a rank-equal synonym of
// Medium used by silent-emergency output. Unrecognized input maps to Low.
func NormalizeTier(s string) SeverityTier {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "high":
		return TierHigh
	case "medium", "moderate":
		return TierMedium
	default:
		return TierLow
	}
}

// IsValid validates the severity tier.
func (t SeverityTier) IsValid() bool {
	switch t {
	case TierLow, TierMedium, TierHigh:
		return true
	default:
		return false
	}
}

// String returns the string representation of the tier.
func (t SeverityTier) String() string {
	return string(t)
}

// Rank returns the tier's position in the total order Low < Medium < High.
// Used for signal comparison during fusion; ties are broken by rank, not
// by declaration order.
func (t SeverityTier) Rank() int {
	switch t {
	case TierHigh:
		return 2
	case TierMedium:
		return 1
	default:
		return 0
	}
}

// Escalate bumps the tier one step: Low becomes Medium, Medium becomes
// High, High stays High. Applied to every fusion signal when minimizing
// language has been detected.
func (t SeverityTier) Escalate() SeverityTier {
	switch t {
	case TierLow:
		return TierMedium
	case TierMedium:
		return TierHigh
	default:
		return TierHigh
	}
}

// MaxTier returns the highest-ranked tier among the arguments, or Low when
// called with none.
func MaxTier(tiers ...SeverityTier) SeverityTier {
	max := TierLow
	for _, t := range tiers {
		if t.Rank() > max.Rank() {
			max = t
		}
	}
	return max
}

// LogFields returns structured logging fields for audit trails.
func (t SeverityTier) LogFields() map[string]any {
	return map[string]any{
		"risk_level":       string(t),
		"risk_rank":        t.Rank(),
		"requires_urgency": t == TierHigh,
	}
}

// IsValid validates the confidence band.
func (b ConfidenceBand) IsValid() bool {
	switch b {
	case BandLow, BandModerate, BandHigh:
		return true
	default:
		return false
	}
}

// String returns the string representation of the band.
func (b ConfidenceBand) String() string {
	return string(b)
}

// BandForAgreement converts the proportion of signals agreeing with the
// final tier into a confidence band.
func BandForAgreement(agreement float64) ConfidenceBand {
	switch {
	case agreement >= 0.75:
		return BandHigh
	case agreement >= 0.5:
		return BandModerate
	default:
		return BandLow
	}
}

// FlagFor converts a boolean into the Yes/No surface form.
func FlagFor(v bool) YesNo {
	if v {
		return Yes
	}
	return No
}

// Bool reports whether the flag is Yes.
func (y YesNo) Bool() bool {
	return y == Yes
}

// String returns the surface form of the flag.
func (y YesNo) String() string {
	return string(y)
}
