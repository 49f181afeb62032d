package domain

import (
	"time"
)

// TriageRequest is the input contract from the request-handling layer.
// At least one of Symptoms / SymptomText / RawText must be non-empty;
// enforcing that is the caller's validation concern, not the engine's.
type TriageRequest struct {
	Age         *int     `json:"age,omitempty"`
	Gender      string   `json:"gender,omitempty"`
	Symptoms    []string `json:"symptoms,omitempty"`     // checklist selection
	SymptomText string   `json:"symptom_text,omitempty"` // free text in the symptoms field
	RawText     string   `json:"raw_text,omitempty"`
	Language    string   `json:"language,omitempty"` // en, hi, mr
	InputMethod string   `json:"input_method,omitempty"`
}

// ExtractionResult holds the normalized outcome of phrase extraction.
// Extracted and Negated are sorted and always disjoint; when a symptom is
// both affirmed and negated across clauses, negation wins.
type ExtractionResult struct {
	Extracted []string `json:"extracted_symptoms"`
	Negated   []string `json:"negated_symptoms"`
}

// ConditionProbability is one entry of the classifier's top-k output.
type ConditionProbability struct {
	Condition   string  `json:"condition"`
	Probability float64 `json:"probability"`
}

// Prediction is the external disease classifier's result, consumed through
// the predictor contract. The engine treats the classifier as potentially
// unavailable; a nil *Prediction means "no prediction".
type Prediction struct {
	Condition     string                 `json:"predicted_condition"`
	Confidence    float64                `json:"confidence"`
	TopConditions []ConditionProbability `json:"top_conditions"`
	SeverityTier  SeverityTier           `json:"severity_tier"`
	Description   string                 `json:"description,omitempty"`
	Precautions   []string               `json:"precautions,omitempty"`
}

// RiskSignal is one contributing signal in the fusion provenance list.
type RiskSignal struct {
	Source string       `json:"source"`
	Tier   SeverityTier `json:"tier"`
}

// RiskAssessment is the fusion engine's output: the final tier, the
// agreement-derived confidence band, and the ordered signal list that
// produced them. Computed fresh per request, never persisted by the engine.
type RiskAssessment struct {
	RiskLevel      SeverityTier   `json:"risk_level"`
	ConfidenceBand ConfidenceBand `json:"confidence_band"`
	Signals        []RiskSignal   `json:"signals"`
	Prediction     *Prediction    `json:"prediction,omitempty"`
}

// NeglectResult reports minimizing language co-occurring with clinically
// significant symptoms.
type NeglectResult struct {
	Detected YesNo  `json:"neglect_detected"`
	Reason   string `json:"neglect_reason"`
}

// SilentResult reports silent-emergency pattern matches: the maximum flag
// across matching patterns and their concatenated explanations. Flag is a
// surface label and may read "Moderate"; NormalizeTier maps it onto the
// canonical tiers for fusion.
type SilentResult struct {
	Flag        string `json:"silent_emergency_flag"`
	Explanation string `json:"risk_pattern_explanation"`
}

// Explanation is the three-part narrative surfaced with every assessment.
type Explanation struct {
	WhatWeNoticed string `json:"what_we_noticed"`
	WhyItMatters  string `json:"why_it_matters"`
	WhatThisMeans string `json:"what_this_means"`
}

// Outcome describes possible consequences of delaying care.
type Outcome struct {
	ShortTerm string `json:"short_term"`
	LongTerm  string `json:"long_term"`
}

// CaregiverAdvice suggests involving a trusted person for high-risk cases.
type CaregiverAdvice struct {
	Suggested YesNo  `json:"caregiver_alert_suggestion"`
	Reason    string `json:"caregiver_reason"`
}

// ExtractionSummary is the NLP metadata block of the response.
type ExtractionSummary struct {
	Extracted    []string `json:"extracted_symptoms"`
	Negated      []string `json:"negated_symptoms"`
	SymptomCount int      `json:"symptom_count"`
}

// TriageResult is the full assessment payload returned to the caller.
type TriageResult struct {
	RequestID          string                 `json:"request_id"`
	RiskLevel          string                 `json:"risk_level"`
	ConfidenceBand     string                 `json:"confidence_band"`
	Explanation        Explanation            `json:"explanation"`
	NeglectDetected    string                 `json:"neglect_detected"`
	NeglectReason      string                 `json:"neglect_reason"`
	SilentFlag         string                 `json:"silent_emergency_flag"`
	PatternExplanation string                 `json:"risk_pattern_explanation"`
	WhatIfIgnored      Outcome                `json:"what_if_ignored"`
	RecommendedAction  string                 `json:"recommended_action"`
	PredictedCondition string                 `json:"predicted_condition"`
	MLConfidence       float64                `json:"ml_confidence"`
	TopConditions      []ConditionProbability `json:"top_conditions"`
	CaregiverAlert     string                 `json:"caregiver_alert_suggestion"`
	CaregiverReason    string                 `json:"caregiver_reason"`
	Language           string                 `json:"language"`
	NLP                ExtractionSummary      `json:"nlp"`
	Disclaimer         string                 `json:"disclaimer"`
}

// AssessmentRecord is the persisted form of a completed assessment.
type AssessmentRecord struct {
	ID                 int64        `json:"id,omitempty"`
	RequestID          string       `json:"request_id"`
	RawInput           string       `json:"raw_input"`
	Symptoms           []string     `json:"symptoms"`
	RiskLevel          SeverityTier `json:"risk_level"`
	ConfidenceBand     string       `json:"confidence_band"`
	NeglectDetected    bool         `json:"neglect_detected"`
	SilentFlag         string       `json:"silent_emergency_flag"`
	PredictedCondition string       `json:"predicted_condition,omitempty"`
	Language           string       `json:"language"`
	CreatedAt          time.Time    `json:"created_at"`
}
