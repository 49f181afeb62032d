package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/health-triage-server/internal/domain"
)

func newTestService(t *testing.T, predictor domain.Predictor) *TriageService {
	t.Helper()
	return NewTriageService(loadBase(t), predictor, nil, nil, testLogger())
}

func TestTriageEmptyInputShortCircuits(t *testing.T) {
	svc := newTestService(t, nil)

	result := svc.Triage(context.Background(), domain.TriageRequest{
		RawText: "feeling perfectly fine today",
	})

	assert.Equal(t, "Low", result.RiskLevel)
	assert.Equal(t, "low", result.ConfidenceBand)
	assert.Equal(t, "No recognizable symptoms were provided.", result.Explanation.WhatWeNoticed)
	assert.Equal(t, "Please provide your symptoms for assessment.", result.RecommendedAction)
	assert.Equal(t, "No", result.NeglectDetected)
	assert.Empty(t, result.NLP.Extracted)
	assert.NotEmpty(t, result.Disclaimer)
}

func TestTriageHighRiskScenario(t *testing.T) {
	svc := newTestService(t, nil)

	result := svc.Triage(context.Background(), domain.TriageRequest{
		Age:     agePtr(55),
		RawText: "it's just chest pain, nothing serious",
	})

	assert.Equal(t, "High", result.RiskLevel)
	assert.Equal(t, "Yes", result.NeglectDetected)
	assert.NotEmpty(t, result.NeglectReason)
	assert.Equal(t, "High", result.SilentFlag)
	assert.NotEmpty(t, result.PatternExplanation)
	assert.Equal(t, "Yes", result.CaregiverAlert)
	assert.Contains(t, result.RecommendedAction, "IMMEDIATE ACTION RECOMMENDED")
	assert.Contains(t, result.NLP.Extracted, "chest_pain")
	assert.Equal(t, "en", result.Language)
}

func TestTriageNegatedSymptomExcluded(t *testing.T) {
	svc := newTestService(t, nil)

	result := svc.Triage(context.Background(), domain.TriageRequest{
		RawText: "I have a cough but no fever",
	})

	assert.Contains(t, result.NLP.Extracted, "cough")
	assert.NotContains(t, result.NLP.Extracted, "mild_fever")
	assert.Contains(t, result.NLP.Negated, "mild_fever")
}

func TestTriageChecklistInput(t *testing.T) {
	svc := newTestService(t, nil)

	result := svc.Triage(context.Background(), domain.TriageRequest{
		Symptoms: []string{"fever", "cough"},
	})

	assert.Contains(t, result.NLP.Extracted, "mild_fever")
	assert.Contains(t, result.NLP.Extracted, "cough")
	assert.Equal(t, 2, result.NLP.SymptomCount)
}

func TestTriageChecklistMergesWithRawText(t *testing.T) {
	svc := newTestService(t, nil)

	result := svc.Triage(context.Background(), domain.TriageRequest{
		Symptoms: []string{"cough"},
		RawText:  "also having chest pain",
	})

	assert.Contains(t, result.NLP.Extracted, "cough")
	assert.Contains(t, result.NLP.Extracted, "chest_pain")
}

func TestTriageLanguageDetection(t *testing.T) {
	svc := newTestService(t, nil)

	result := svc.Triage(context.Background(), domain.TriageRequest{
		RawText: "mujhe bukhar hai aur sir dard bhi",
	})

	assert.Equal(t, "hi", result.Language)
	assert.Contains(t, result.NLP.Extracted, "mild_fever")
}

func TestTriageExplicitLanguageWins(t *testing.T) {
	svc := newTestService(t, nil)

	result := svc.Triage(context.Background(), domain.TriageRequest{
		RawText:  "mujhe bukhar hai aur sir dard bhi",
		Language: "en",
	})

	assert.Equal(t, "en", result.Language)
}

func TestTriageSurfacesPrediction(t *testing.T) {
	stub := &stubPredictor{prediction: &domain.Prediction{
		Condition:    "Common Cold",
		Confidence:   0.82,
		SeverityTier: domain.TierLow,
		TopConditions: []domain.ConditionProbability{
			{Condition: "Common Cold", Probability: 0.82},
			{Condition: "Allergy", Probability: 0.1},
		},
	}}
	svc := newTestService(t, stub)

	result := svc.Triage(context.Background(), domain.TriageRequest{
		RawText: "runny nose and sneezing",
	})

	assert.Equal(t, "Common Cold", result.PredictedCondition)
	assert.InDelta(t, 0.82, result.MLConfidence, 0.001)
	require.Len(t, result.TopConditions, 2)
	assert.Contains(t, result.Explanation.WhyItMatters, "Common Cold")
}

func TestTriageDisclaimerAlwaysPresent(t *testing.T) {
	svc := newTestService(t, nil)

	for _, raw := range []string{"chest pain", "mild headache", "gibberish input"} {
		result := svc.Triage(context.Background(), domain.TriageRequest{RawText: raw})
		assert.Equal(t,
			"This is not a medical diagnosis. Please consult a healthcare professional.",
			result.Disclaimer)
	}
}
