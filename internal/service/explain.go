package service

import (
	"fmt"
	"strings"

	"github.com/health-triage-server/internal/domain"
)

// Explainer builds the three-part narrative attached to every assessment:
// what we noticed, why it matters, and what this means for you.
type Explainer struct{}

// NewExplainer creates a new narrative builder.
func NewExplainer() *Explainer {
	return &Explainer{}
}

// ExplainInput carries everything the narrative draws from.
type ExplainInput struct {
	Symptoms           []string
	RiskLevel          domain.SeverityTier
	Neglect            domain.NeglectResult
	SilentExplanation  string
	Prediction         *domain.Prediction
	Age                *int
}

// Explain assembles the narrative. Sections are space-joined sentences;
// an empty symptom set yields a fixed "no symptoms" notice.
func (x *Explainer) Explain(in ExplainInput) domain.Explanation {
	return domain.Explanation{
		WhatWeNoticed: x.noticed(in),
		WhyItMatters:  x.matters(in),
		WhatThisMeans: x.means(in.RiskLevel),
	}
}

func (x *Explainer) noticed(in ExplainInput) string {
	var parts []string

	if len(in.Symptoms) > 0 {
		names := make([]string, len(in.Symptoms))
		for i, s := range in.Symptoms {
			names[i] = strings.ReplaceAll(s, "_", " ")
		}
		parts = append(parts, fmt.Sprintf(
			"You reported the following symptoms: %s.", strings.Join(names, ", ")))
	}
	if in.Age != nil && *in.Age > 0 {
		parts = append(parts, fmt.Sprintf("Your age is %d.", *in.Age))
	}
	if in.Neglect.Detected == domain.Yes {
		parts = append(parts,
			"We also noticed that the way you described your symptoms "+
				"may be underestimating their significance.")
	}

	if len(parts) == 0 {
		return "No symptoms were reported."
	}
	return strings.Join(parts, " ")
}

func (x *Explainer) matters(in ExplainInput) string {
	var parts []string

	if in.SilentExplanation != "" {
		parts = append(parts, in.SilentExplanation)
	}
	if p := in.Prediction; p != nil && p.Condition != "" && p.Confidence >= classifierMinConfidence {
		parts = append(parts, fmt.Sprintf(
			"Based on your symptom pattern, this can sometimes be "+
				"associated with conditions like %s.", p.Condition))
		if p.Description != "" {
			parts = append(parts, p.Description)
		}
	}
	if in.Neglect.Reason != "" {
		parts = append(parts, in.Neglect.Reason)
	}

	if len(parts) == 0 {
		switch in.RiskLevel {
		case domain.TierLow:
			parts = append(parts,
				"Your symptoms appear to be mild based on the patterns we analyzed.")
		case domain.TierMedium:
			parts = append(parts,
				"Some of your symptoms may benefit from professional evaluation.")
		default:
			parts = append(parts,
				"The combination of symptoms you described can sometimes "+
					"be associated with conditions that need prompt attention.")
		}
	}
	return strings.Join(parts, " ")
}

func (x *Explainer) means(tier domain.SeverityTier) string {
	switch tier {
	case domain.TierHigh:
		return "Based on the overall pattern, we recommend seeking medical " +
			"attention as soon as possible. This is a precautionary recommendation, " +
			"not a diagnosis."
	case domain.TierMedium:
		return "We recommend consulting a healthcare professional within the " +
			"next 24-48 hours. In the meantime, monitor your symptoms closely " +
			"and seek immediate care if they worsen."
	default:
		return "Your symptoms appear manageable with self-care for now. " +
			"However, if symptoms persist or worsen, please consult a " +
			"healthcare professional."
	}
}
