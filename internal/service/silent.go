package service

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/health-triage-server/internal/domain"
	"github.com/health-triage-server/internal/knowledge"
)

// SilentMatcher detects dangerous but subtle symptom patterns that users
// often under-report: combinations whose true severity is masked by a
// mild presentation.
type SilentMatcher struct {
	kb     *knowledge.Base
	logger *logrus.Logger
}

// NewSilentMatcher creates a new silent-emergency matcher.
func NewSilentMatcher(kb *knowledge.Base, logger *logrus.Logger) *SilentMatcher {
	return &SilentMatcher{kb: kb, logger: logger}
}

// Detect evaluates every pattern in declared table order. A pattern
// matches only when its full symptom set is present and every declared
// modifier holds: an age gate fails when age is unknown or below the
// minimum, a gender gate fails unless it equals the supplied gender
// case-insensitively. The result is the maximum flag across matches;
// explanations concatenate in table order.
func (m *SilentMatcher) Detect(symptoms []string, age *int, gender string) domain.SilentResult {
	present := make(map[string]struct{}, len(symptoms))
	for _, s := range symptoms {
		present[s] = struct{}{}
	}

	highest := string(domain.TierLow)
	var explanations []string

	for _, p := range m.kb.SilentPatterns() {
		if !subset(p.Symptoms, present) {
			continue
		}
		if p.AgeMin != nil {
			if age == nil || *age < *p.AgeMin {
				continue
			}
		}
		if p.Gender != "" {
			if gender == "" || !strings.EqualFold(gender, p.Gender) {
				continue
			}
		}

		if domain.NormalizeTier(p.Flag).Rank() > domain.NormalizeTier(highest).Rank() {
			highest = p.Flag
		}
		explanations = append(explanations, p.Explanation)
	}

	if len(explanations) > 0 {
		m.logger.WithFields(logrus.Fields{
			"flag":          highest,
			"pattern_count": len(explanations),
		}).Info("Silent emergency pattern matched")
	}

	return domain.SilentResult{
		Flag:        highest,
		Explanation: strings.Join(explanations, " "),
	}
}

func subset(required []string, present map[string]struct{}) bool {
	for _, s := range required {
		if _, ok := present[s]; !ok {
			return false
		}
	}
	return true
}
