// Package localize renders assessment results in Hindi and Marathi.
// Translation is table-driven: surface labels, the disclaimer, symptom
// names, and known in-text phrases are replaced; sentences without a
// table entry pass through in English rather than being machine
// translated.
package localize

import (
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/health-triage-server/internal/domain"
)

// Translator applies the rule-based localization tables. It is stateless
// and safe for concurrent use.
type Translator struct {
	logger *logrus.Logger

	// Phrase keys sorted longest first per language so overlapping
	// replacements behave deterministically.
	sortedPhrases map[string][]string
}

// NewTranslator creates a translator over the built-in tables.
func NewTranslator(logger *logrus.Logger) *Translator {
	sorted := make(map[string][]string, len(phraseTables))
	for lang, table := range phraseTables {
		keys := make([]string, 0, len(table))
		for k := range table {
			keys = append(keys, k)
		}
		sort.Slice(keys, func(i, j int) bool {
			if len(keys[i]) != len(keys[j]) {
				return len(keys[i]) > len(keys[j])
			}
			return keys[i] < keys[j]
		})
		sorted[lang] = keys
	}
	return &Translator{logger: logger, sortedPhrases: sorted}
}

// Supported reports whether the language has localization tables.
// English is always supported as the identity case.
func (t *Translator) Supported(language string) bool {
	if language == "en" {
		return true
	}
	_, ok := labelTables[language]
	return ok
}

// Translate maps a single label or narrative string. Labels hit the
// label table directly; anything else gets phrase replacement and
// otherwise passes through.
func (t *Translator) Translate(text, language string) string {
	table, ok := labelTables[language]
	if !ok {
		return text
	}
	if v, ok := table[text]; ok {
		return v
	}
	return t.replacePhrases(text, language)
}

// Symptom translates a canonical symptom id to its readable localized
// name, falling back to the underscore-replaced English form.
func (t *Translator) Symptom(id, language string) string {
	if table, ok := symptomTables[language]; ok {
		if v, ok := table[id]; ok {
			return v
		}
	}
	return strings.ReplaceAll(id, "_", " ")
}

// LocalizeResult rewrites the localizable fields of a result in place.
// English and unsupported languages leave the result untouched.
func (t *Translator) LocalizeResult(r *domain.TriageResult, language string) {
	if language == "en" {
		return
	}
	table, ok := labelTables[language]
	if !ok {
		t.logger.WithField("language", language).Debug("No localization tables, returning English")
		return
	}

	r.RiskLevel = lookup(table, r.RiskLevel)
	r.ConfidenceBand = lookup(table, r.ConfidenceBand)
	r.NeglectDetected = lookup(table, r.NeglectDetected)
	r.CaregiverAlert = lookup(table, r.CaregiverAlert)
	r.SilentFlag = lookup(table, r.SilentFlag)
	if d, ok := disclaimers[language]; ok {
		r.Disclaimer = d
	}

	r.RecommendedAction = t.replacePhrases(r.RecommendedAction, language)
	r.Explanation.WhatWeNoticed = t.replacePhrases(r.Explanation.WhatWeNoticed, language)
	r.Explanation.WhyItMatters = t.replacePhrases(r.Explanation.WhyItMatters, language)
	r.Explanation.WhatThisMeans = t.replacePhrases(r.Explanation.WhatThisMeans, language)
	r.PatternExplanation = t.replacePhrases(r.PatternExplanation, language)
	r.NeglectReason = t.replacePhrases(r.NeglectReason, language)
	r.CaregiverReason = t.replacePhrases(r.CaregiverReason, language)
	r.WhatIfIgnored.ShortTerm = t.replacePhrases(r.WhatIfIgnored.ShortTerm, language)
	r.WhatIfIgnored.LongTerm = t.replacePhrases(r.WhatIfIgnored.LongTerm, language)

	for i, s := range r.NLP.Extracted {
		r.NLP.Extracted[i] = t.Symptom(s, language)
	}
	for i, s := range r.NLP.Negated {
		r.NLP.Negated[i] = t.Symptom(s, language)
	}
}

func (t *Translator) replacePhrases(text, language string) string {
	table, ok := phraseTables[language]
	if !ok || text == "" {
		return text
	}
	for _, phrase := range t.sortedPhrases[language] {
		text = strings.ReplaceAll(text, phrase, table[phrase])
	}
	return text
}

func lookup(table map[string]string, value string) string {
	if v, ok := table[value]; ok {
		return v
	}
	return value
}
