package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/health-triage-server/internal/domain"
	"github.com/health-triage-server/internal/knowledge"
	"github.com/health-triage-server/internal/nlp"
)

// Disclaimer appended to every assessment.
const disclaimer = "This is not a medical diagnosis. Please consult a healthcare professional."

// TriageService orchestrates the full assessment pipeline: input
// normalization, neglect detection, silent-emergency matching, risk
// fusion, narrative generation, caregiver escalation, localization, and
// optional history persistence.
type TriageService struct {
	kb         *knowledge.Base
	extractor  *nlp.Extractor
	neglect    *NeglectDetector
	silent     *SilentMatcher
	risk       *RiskEngine
	explainer  *Explainer
	outcome    *OutcomeWriter
	action     *ActionWriter
	caregiver  *CaregiverAdvisor
	translator domain.Translator
	history    domain.HistoryStore
	logger     *logrus.Logger
}

// NewTriageService wires the pipeline stages. translator and history may
// be nil; localization and persistence are then skipped.
func NewTriageService(
	kb *knowledge.Base,
	predictor domain.Predictor,
	translator domain.Translator,
	history domain.HistoryStore,
	logger *logrus.Logger,
) *TriageService {
	return &TriageService{
		kb:         kb,
		extractor:  nlp.NewExtractor(kb, logger),
		neglect:    NewNeglectDetector(kb, logger),
		silent:     NewSilentMatcher(kb, logger),
		risk:       NewRiskEngine(kb, predictor, logger),
		explainer:  NewExplainer(),
		outcome:    NewOutcomeWriter(),
		action:     NewActionWriter(),
		caregiver:  NewCaregiverAdvisor(),
		translator: translator,
		history:    history,
		logger:     logger,
	}
}

// Triage runs a complete assessment. An input resolving to zero
// recognizable symptoms short-circuits to a Low/low guidance response
// without invoking the downstream stages. Persistence failures are
// logged, never fatal.
func (s *TriageService) Triage(ctx context.Context, req domain.TriageRequest) *domain.TriageResult {
	requestID := uuid.NewString()
	log := s.logger.WithField("request_id", requestID)

	symptoms, negated, rawInput := s.normalizeInput(req)
	language := s.resolveLanguage(req, rawInput)

	if len(symptoms) == 0 {
		log.WithField("language", language).Info("No recognizable symptoms in input")
		result := emptyResult(language)
		result.RequestID = requestID
		s.localize(result, language)
		return result
	}

	neglect := s.neglect.Detect(rawInput, symptoms)
	silent := s.silent.Detect(symptoms, req.Age, req.Gender)
	assessment := s.risk.Assess(ctx, symptoms, neglect.Detected, silent.Flag)

	explanation := s.explainer.Explain(ExplainInput{
		Symptoms:          symptoms,
		RiskLevel:         assessment.RiskLevel,
		Neglect:           neglect,
		SilentExplanation: silent.Explanation,
		Prediction:        assessment.Prediction,
		Age:               req.Age,
	})
	outcome := s.outcome.Describe(assessment.RiskLevel, symptoms)
	action := s.action.Recommend(assessment.RiskLevel, assessment.Prediction)
	caregiver := s.caregiver.Evaluate(assessment.RiskLevel, req.Age)

	result := &domain.TriageResult{
		RequestID:          requestID,
		RiskLevel:          assessment.RiskLevel.String(),
		ConfidenceBand:     assessment.ConfidenceBand.String(),
		Explanation:        explanation,
		NeglectDetected:    neglect.Detected.String(),
		NeglectReason:      neglect.Reason,
		SilentFlag:         silent.Flag,
		PatternExplanation: silent.Explanation,
		WhatIfIgnored:      outcome,
		RecommendedAction:  action,
		CaregiverAlert:     caregiver.Suggested.String(),
		CaregiverReason:    caregiver.Reason,
		Language:           language,
		NLP: domain.ExtractionSummary{
			Extracted:    symptoms,
			Negated:      negated,
			SymptomCount: len(symptoms),
		},
		TopConditions: []domain.ConditionProbability{},
		Disclaimer:    disclaimer,
	}
	if p := assessment.Prediction; p != nil {
		result.PredictedCondition = p.Condition
		result.MLConfidence = p.Confidence
		if len(p.TopConditions) > 0 {
			result.TopConditions = p.TopConditions
		}
	}

	s.persist(ctx, requestID, rawInput, symptoms, assessment, neglect, silent, language, log)

	log.WithFields(logrus.Fields{
		"risk_level":      result.RiskLevel,
		"confidence_band": result.ConfidenceBand,
		"symptom_count":   len(symptoms),
		"language":        language,
	}).Info("Triage assessment complete")

	s.localize(result, language)
	return result
}

// normalizeInput resolves the request's symptom sources into one sorted
// canonical set. A checklist selection is normalized directly; free text
// goes through extraction. When both are present, free-text symptoms
// merge into the checklist set and negations carry over.
func (s *TriageService) normalizeInput(req domain.TriageRequest) (symptoms, negated []string, rawInput string) {
	switch {
	case len(req.Symptoms) > 0:
		symptoms = s.extractor.NormalizeList(req.Symptoms)
		rawInput = strings.Join(req.Symptoms, ", ")
	case req.RawText != "":
		res := s.extractor.Extract(req.RawText)
		symptoms, negated = res.Extracted, res.Negated
		rawInput = req.RawText
	case req.SymptomText != "":
		res := s.extractor.Extract(req.SymptomText)
		symptoms, negated = res.Extracted, res.Negated
		rawInput = req.SymptomText
	default:
		symptoms, negated = []string{}, []string{}
	}

	if req.RawText != "" && len(req.Symptoms) > 0 {
		res := s.extractor.Extract(req.RawText)
		symptoms = mergeSorted(symptoms, res.Extracted)
		negated = append(negated, res.Negated...)
		rawInput = req.RawText
	}
	if negated == nil {
		negated = []string{}
	}
	return symptoms, negated, rawInput
}

func (s *TriageService) resolveLanguage(req domain.TriageRequest, rawInput string) string {
	if req.Language != "" {
		return req.Language
	}
	if req.RawText != "" {
		return nlp.DetectLanguage(req.RawText, s.kb)
	}
	if req.SymptomText != "" {
		return nlp.DetectLanguage(req.SymptomText, s.kb)
	}
	if rawInput != "" {
		return nlp.DetectLanguage(rawInput, s.kb)
	}
	return "en"
}

func (s *TriageService) localize(result *domain.TriageResult, language string) {
	if s.translator == nil {
		return
	}
	s.translator.LocalizeResult(result, language)
}

func (s *TriageService) persist(
	ctx context.Context,
	requestID, rawInput string,
	symptoms []string,
	assessment domain.RiskAssessment,
	neglect domain.NeglectResult,
	silent domain.SilentResult,
	language string,
	log *logrus.Entry,
) {
	if s.history == nil {
		return
	}
	record := &domain.AssessmentRecord{
		RequestID:       requestID,
		RawInput:        rawInput,
		Symptoms:        symptoms,
		RiskLevel:       assessment.RiskLevel,
		ConfidenceBand:  assessment.ConfidenceBand.String(),
		NeglectDetected: neglect.Detected.Bool(),
		SilentFlag:      silent.Flag,
		Language:        language,
		CreatedAt:       time.Now().UTC(),
	}
	if assessment.Prediction != nil {
		record.PredictedCondition = assessment.Prediction.Condition
	}
	if err := s.history.Save(ctx, record); err != nil {
		log.WithError(err).Warn("Failed to persist assessment record")
	}
}

// emptyResult is the guidance response for inputs with no recognizable
// symptoms.
func emptyResult(language string) *domain.TriageResult {
	return &domain.TriageResult{
		RiskLevel:      domain.TierLow.String(),
		ConfidenceBand: domain.BandLow.String(),
		Explanation: domain.Explanation{
			WhatWeNoticed: "No recognizable symptoms were provided.",
			WhyItMatters:  "We could not perform a meaningful assessment.",
			WhatThisMeans: "Please try again with specific symptoms.",
		},
		NeglectDetected:   domain.No.String(),
		SilentFlag:        domain.TierLow.String(),
		WhatIfIgnored:     domain.Outcome{},
		RecommendedAction: "Please provide your symptoms for assessment.",
		TopConditions:     []domain.ConditionProbability{},
		CaregiverAlert:    domain.No.String(),
		Language:          language,
		NLP: domain.ExtractionSummary{
			Extracted: []string{},
			Negated:   []string{},
		},
		Disclaimer: disclaimer,
	}
}

func mergeSorted(a, b []string) []string {
	set := make(map[string]struct{}, len(a)+len(b))
	for _, s := range a {
		set[s] = struct{}{}
	}
	for _, s := range b {
		set[s] = struct{}{}
	}
	merged := make([]string, 0, len(set))
	for s := range set {
		merged = append(merged, s)
	}
	sort.Strings(merged)
	return merged
}
