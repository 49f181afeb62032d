package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/health-triage-server/internal/domain"
)

func TestExplainNoticed(t *testing.T) {
	x := NewExplainer()

	explanation := x.Explain(ExplainInput{
		Symptoms:  []string{"chest_pain", "mild_fever"},
		RiskLevel: domain.TierHigh,
		Age:       agePtr(45),
		Neglect:   domain.NeglectResult{Detected: domain.Yes, Reason: "Downplaying language detected."},
	})

	assert.Contains(t, explanation.WhatWeNoticed, "You reported the following symptoms: chest pain, mild fever.")
	assert.Contains(t, explanation.WhatWeNoticed, "Your age is 45.")
	assert.Contains(t, explanation.WhatWeNoticed, "underestimating their significance")
}

func TestExplainNoSymptoms(t *testing.T) {
	x := NewExplainer()

	explanation := x.Explain(ExplainInput{RiskLevel: domain.TierLow})
	assert.Equal(t, "No symptoms were reported.", explanation.WhatWeNoticed)
}

func TestExplainMattersPrefersSignalsOverFallback(t *testing.T) {
	x := NewExplainer()

	explanation := x.Explain(ExplainInput{
		Symptoms:          []string{"chest_pain"},
		RiskLevel:         domain.TierHigh,
		SilentExplanation: "Chest pain at your age deserves careful attention.",
		Prediction:        &domain.Prediction{Condition: "Heart attack", Confidence: 0.9},
	})

	assert.Contains(t, explanation.WhyItMatters, "Chest pain at your age deserves careful attention.")
	assert.Contains(t, explanation.WhyItMatters, "conditions like Heart attack")
}

func TestExplainMattersIgnoresLowConfidencePrediction(t *testing.T) {
	x := NewExplainer()

	explanation := x.Explain(ExplainInput{
		Symptoms:   []string{"cough"},
		RiskLevel:  domain.TierLow,
		Prediction: &domain.Prediction{Condition: "Common Cold", Confidence: 0.2},
	})

	assert.NotContains(t, explanation.WhyItMatters, "Common Cold")
	assert.Contains(t, explanation.WhyItMatters, "mild")
}

func TestExplainMeansPerTier(t *testing.T) {
	x := NewExplainer()

	tests := []struct {
		tier domain.SeverityTier
		want string
	}{
		{domain.TierHigh, "as soon as possible"},
		{domain.TierMedium, "24-48 hours"},
		{domain.TierLow, "manageable with self-care"},
	}
	for _, tt := range tests {
		t.Run(string(tt.tier), func(t *testing.T) {
			explanation := x.Explain(ExplainInput{RiskLevel: tt.tier})
			assert.Contains(t, explanation.WhatThisMeans, tt.want)
		})
	}
}

func TestOutcomeDescribe(t *testing.T) {
	w := NewOutcomeWriter()

	high := w.Describe(domain.TierHigh, []string{"headache"})
	assert.Contains(t, high.ShortTerm, "rapid worsening")
	assert.NotContains(t, high.ShortTerm, "Chest-related")

	chest := w.Describe(domain.TierHigh, []string{"chest_pain"})
	assert.Contains(t, chest.ShortTerm, "Chest-related symptoms")

	breathless := w.Describe(domain.TierHigh, []string{"breathlessness"})
	assert.Contains(t, breathless.ShortTerm, "Chest-related symptoms")

	medium := w.Describe(domain.TierMedium, []string{"cough"})
	assert.Contains(t, medium.ShortTerm, "persist or gradually")

	low := w.Describe(domain.TierLow, []string{"cough"})
	assert.Contains(t, low.ShortTerm, "self-limiting")
	assert.Contains(t, low.LongTerm, "persist beyond a week")
}

func TestOutcomeChestAddendumOnlyAtHigh(t *testing.T) {
	w := NewOutcomeWriter()

	medium := w.Describe(domain.TierMedium, []string{"chest_pain"})
	assert.NotContains(t, medium.ShortTerm, "Chest-related")
}

func TestRecommendByTier(t *testing.T) {
	w := NewActionWriter()

	high := w.Recommend(domain.TierHigh, nil)
	assert.True(t, strings.HasPrefix(high, "IMMEDIATE ACTION RECOMMENDED:"))
	assert.Contains(t, high, "- Visit the nearest hospital or call emergency services.")

	medium := w.Recommend(domain.TierMedium, nil)
	assert.Contains(t, medium, "CONSULTATION RECOMMENDED:")
	assert.Contains(t, medium, "WARNING SIGNS TO WATCH:")

	low := w.Recommend(domain.TierLow, nil)
	assert.Contains(t, low, "SELF-CARE GUIDANCE:")
}

func TestRecommendAlwaysEndsWithDisclaimer(t *testing.T) {
	w := NewActionWriter()

	for _, tier := range []domain.SeverityTier{domain.TierLow, domain.TierMedium, domain.TierHigh} {
		text := w.Recommend(tier, nil)
		assert.True(t, strings.HasSuffix(text,
			"IMPORTANT: This is not a medical diagnosis. "+
				"Please consult a qualified healthcare professional for proper evaluation."))
	}
}

func TestRecommendIncludesPrecautions(t *testing.T) {
	w := NewActionWriter()

	text := w.Recommend(domain.TierMedium, &domain.Prediction{
		Condition:   "Migraine",
		Precautions: []string{"rest in a dark room", "  ", "avoid loud noises"},
	})

	assert.Contains(t, text, "SPECIFIC PRECAUTIONS:")
	assert.Contains(t, text, "- Rest in a dark room")
	assert.Contains(t, text, "- Avoid loud noises")
}

func TestRecommendSkipsEmptyPrecautions(t *testing.T) {
	w := NewActionWriter()

	text := w.Recommend(domain.TierLow, &domain.Prediction{Precautions: []string{"", "   "}})
	assert.NotContains(t, text, "SPECIFIC PRECAUTIONS")
}

func TestCaregiverEvaluate(t *testing.T) {
	a := NewCaregiverAdvisor()

	tests := []struct {
		name      string
		tier      domain.SeverityTier
		age       *int
		suggested domain.YesNo
	}{
		{"high risk any age", domain.TierHigh, agePtr(25), domain.Yes},
		{"high risk no age", domain.TierHigh, nil, domain.Yes},
		{"medium risk elderly", domain.TierMedium, agePtr(70), domain.Yes},
		{"medium risk below threshold", domain.TierMedium, agePtr(64), domain.No},
		{"medium risk no age", domain.TierMedium, nil, domain.No},
		{"low risk elderly", domain.TierLow, agePtr(80), domain.No},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			advice := a.Evaluate(tt.tier, tt.age)
			assert.Equal(t, tt.suggested, advice.Suggested)
			if tt.suggested == domain.Yes {
				assert.NotEmpty(t, advice.Reason)
			} else {
				assert.Empty(t, advice.Reason)
			}
		})
	}
}

func TestCaregiverElderlyAddendum(t *testing.T) {
	a := NewCaregiverAdvisor()

	young := a.Evaluate(domain.TierHigh, agePtr(30))
	assert.NotContains(t, young.Reason, "above 60")

	elderly := a.Evaluate(domain.TierHigh, agePtr(62))
	assert.Contains(t, elderly.Reason, "above 60")
}
