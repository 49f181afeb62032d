package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/health-triage-server/internal/domain"
	"github.com/health-triage-server/internal/knowledge"
)

// Fusion signal sources, in declared combination order. The order is
// explicit so the confidence-band computation stays reproducible; the
// final tier itself is order-independent.
const (
	signalRuleBased  = "rule_based"
	signalWeighted   = "weighted_score"
	signalSilent     = "silent_pattern"
	signalClassifier = "classifier"
)

// Weighted-score thresholds: average symptom weight >= weightHighCutoff
// maps to High, >= weightMediumCutoff to Medium, otherwise Low.
const (
	weightHighCutoff   = 5.0
	weightMediumCutoff = 3.0
)

// classifierMinConfidence gates the external classifier's signal out of
// fusion when the prediction is weak.
const classifierMinConfidence = 0.5

// RiskEngine combines rule-based severity, the weighted severity score,
// the silent-emergency flag, neglect escalation, and the external
// classifier's signal into one risk tier plus a confidence band. It is a
// pure function of its inputs; nothing is persisted between calls.
type RiskEngine struct {
	kb        *knowledge.Base
	predictor domain.Predictor
	logger    *logrus.Logger
}

// NewRiskEngine creates a new risk fusion engine. predictor may be nil,
// in which case every assessment runs without a classifier signal.
func NewRiskEngine(kb *knowledge.Base, predictor domain.Predictor, logger *logrus.Logger) *RiskEngine {
	return &RiskEngine{kb: kb, predictor: predictor, logger: logger}
}

// Assess fuses all signals for the given normalized symptom set. An empty
// set short-circuits to {Low, low, no prediction} without invoking the
// classifier. Classifier failure degrades to "no prediction" and is never
// fatal to the assessment.
func (e *RiskEngine) Assess(ctx context.Context, symptoms []string, neglect domain.YesNo, silentFlag string) domain.RiskAssessment {
	if len(symptoms) == 0 {
		return domain.RiskAssessment{
			RiskLevel:      domain.TierLow,
			ConfidenceBand: domain.BandLow,
			Signals:        []domain.RiskSignal{},
		}
	}

	prediction := e.predict(ctx, symptoms)

	signals := []domain.RiskSignal{
		{Source: signalRuleBased, Tier: e.ruleSeverity(symptoms)},
		{Source: signalWeighted, Tier: e.weightedSeverity(symptoms)},
		{Source: signalSilent, Tier: domain.NormalizeTier(silentFlag)},
	}
	if prediction != nil && prediction.Confidence >= classifierMinConfidence {
		signals = append(signals, domain.RiskSignal{
			Source: signalClassifier,
			Tier:   domain.NormalizeTier(string(prediction.SeverityTier)),
		})
	}

	// Minimizing language escalates every signal one tier before the
	// final combination.
	if neglect.Bool() {
		for i := range signals {
			signals[i].Tier = signals[i].Tier.Escalate()
		}
	}

	final := domain.TierLow
	agreeing := 0
	for _, s := range signals {
		if s.Tier.Rank() > final.Rank() {
			final = s.Tier
		}
	}
	for _, s := range signals {
		if s.Tier == final {
			agreeing++
		}
	}
	band := domain.BandForAgreement(float64(agreeing) / float64(len(signals)))

	e.logger.WithFields(logrus.Fields{
		"symptom_count":   len(symptoms),
		"signal_count":    len(signals),
		"risk_level":      final.String(),
		"confidence_band": band.String(),
		"neglect":         neglect.Bool(),
	}).Info("Risk fusion complete")

	return domain.RiskAssessment{
		RiskLevel:      final,
		ConfidenceBand: band,
		Signals:        signals,
		Prediction:     prediction,
	}
}

// ruleSeverity computes the rule-based severity: High when any extracted
// symptom is in the always-high set, else Medium when any is in the
// medium set, else Low; a firing cluster then raises the result to its
// tier if that outranks it. Clusters only ever raise.
func (e *RiskEngine) ruleSeverity(symptoms []string) domain.SeverityTier {
	present := make(map[string]struct{}, len(symptoms))
	for _, s := range symptoms {
		present[s] = struct{}{}
	}

	tier := domain.TierLow
	for _, s := range symptoms {
		if e.kb.IsAlwaysHigh(s) {
			tier = domain.TierHigh
			break
		}
		if e.kb.IsMediumSeverity(s) {
			tier = domain.TierMedium
		}
	}

	for _, c := range e.kb.Clusters() {
		if !subset(c.Symptoms, present) {
			continue
		}
		if ct := domain.NormalizeTier(c.Tier); ct.Rank() > tier.Rank() {
			tier = ct
		}
	}
	return tier
}

// weightedSeverity averages the configured per-symptom weights and maps
// the average onto a tier.
func (e *RiskEngine) weightedSeverity(symptoms []string) domain.SeverityTier {
	total := 0
	for _, s := range symptoms {
		total += e.kb.Weight(s)
	}
	avg := float64(total) / float64(len(symptoms))
	switch {
	case avg >= weightHighCutoff:
		return domain.TierHigh
	case avg >= weightMediumCutoff:
		return domain.TierMedium
	default:
		return domain.TierLow
	}
}

// predict invokes the external classifier, failing closed to nil on any
// error or invalid result.
func (e *RiskEngine) predict(ctx context.Context, symptoms []string) *domain.Prediction {
	if e.predictor == nil {
		return nil
	}
	prediction, err := e.predictor.Predict(ctx, symptoms)
	if err != nil {
		e.logger.WithError(err).Warn("Classifier unavailable, continuing without prediction")
		return nil
	}
	if prediction == nil || prediction.Confidence < 0 || prediction.Confidence > 1 {
		e.logger.Warn("Classifier returned malformed result, discarding")
		return nil
	}
	return prediction
}
