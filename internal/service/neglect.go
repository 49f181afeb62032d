// Package service implements the triage engine's assessment stages:
// neglect detection, silent-emergency matching, risk fusion, and the
// narrative stages (explanation, outcome awareness, recommendations,
// caregiver escalation) orchestrated by the pipeline.
package service

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/health-triage-server/internal/domain"
	"github.com/health-triage-server/internal/knowledge"
)

// NeglectDetector flags minimizing language co-occurring with clinically
// significant symptoms.
type NeglectDetector struct {
	kb     *knowledge.Base
	logger *logrus.Logger
}

// NewNeglectDetector creates a new neglect detector.
func NewNeglectDetector(kb *knowledge.Base, logger *logrus.Logger) *NeglectDetector {
	return &NeglectDetector{kb: kb, logger: logger}
}

// Detect scans raw text for minimization phrases and checks whether they
// co-occur with high- or medium-severity symptoms, either through the
// normalized extracted set or through a second, narrower legacy-alias
// sweep of the raw text. Explanation sentences are space-joined in
// discovery order: phrase-based reasons before contradiction-pair reasons.
func (d *NeglectDetector) Detect(rawText string, symptoms []string) domain.NeglectResult {
	if rawText == "" {
		return domain.NeglectResult{Detected: domain.No, Reason: ""}
	}

	text := strings.ToLower(rawText)
	var reasons []string

	var found []string
	for _, p := range d.kb.MinimizationPhrases() {
		if strings.Contains(text, p) {
			found = append(found, p)
		}
	}

	hasHigh := false
	hasMedium := false
	for _, s := range symptoms {
		if d.kb.IsAlwaysHigh(s) {
			hasHigh = true
		} else if d.kb.IsMediumSeverity(s) {
			hasMedium = true
		}
	}
	for phrase, id := range d.kb.LegacyAliases() {
		if !strings.Contains(text, phrase) {
			continue
		}
		if d.kb.IsAlwaysHigh(id) {
			hasHigh = true
		} else if d.kb.IsMediumSeverity(id) {
			hasMedium = true
		}
	}

	if len(found) > 0 && hasHigh {
		reasons = append(reasons, fmt.Sprintf(
			"You used minimizing language (%s) while describing symptoms that "+
				"can sometimes be associated with serious conditions. "+
				"It's important to take these symptoms seriously.",
			quoteJoin(found)))
	}
	if len(found) > 0 && hasMedium && !hasHigh {
		reasons = append(reasons, fmt.Sprintf(
			"You used words like %s when describing your symptoms. "+
				"These symptoms may benefit from professional evaluation even if "+
				"they feel mild right now.",
			quoteJoin(found)))
	}

	// Direct contradictions, at most one reason per symptom phrase.
	for _, pair := range d.kb.ContradictionPairs() {
		if !strings.Contains(text, pair.SymptomPhrase) {
			continue
		}
		for _, m := range pair.Minimizers {
			if strings.Contains(text, m) {
				reasons = append(reasons, fmt.Sprintf(
					"You mentioned %q but also said %q. This symptom deserves "+
						"careful attention regardless of how mild it may feel.",
					pair.SymptomPhrase, m))
				break
			}
		}
	}

	if len(reasons) == 0 {
		return domain.NeglectResult{Detected: domain.No, Reason: ""}
	}

	d.logger.WithFields(logrus.Fields{
		"minimization_phrases": found,
		"reason_count":         len(reasons),
	}).Info("Neglect detected")

	return domain.NeglectResult{
		Detected: domain.Yes,
		Reason:   strings.Join(reasons, " "),
	}
}

func quoteJoin(phrases []string) string {
	quoted := make([]string, len(phrases))
	for i, p := range phrases {
		quoted[i] = fmt.Sprintf("%q", p)
	}
	return strings.Join(quoted, ", ")
}
