package nlp

import (
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/health-triage-server/internal/domain"
	"github.com/health-triage-server/internal/knowledge"
)

// Extractor resolves free text into normalized extracted and negated
// symptom sets. It holds no per-request state; a single Extractor is safe
// for concurrent use.
type Extractor struct {
	kb     *knowledge.Base
	logger *logrus.Logger
}

// NewExtractor creates a new symptom extractor.
func NewExtractor(kb *knowledge.Base, logger *logrus.Logger) *Extractor {
	return &Extractor{kb: kb, logger: logger}
}

// Extract runs the full extraction pipeline over raw text: clause
// segmentation, longest-phrase-first alias matching with per-clause
// negation, a direct canonical-id pass, and the final normalization that
// subtracts negated ids from extracted ones. When a symptom is affirmed
// in one clause and negated in another, negation wins; extracted and
// negated are therefore always disjoint. Unknown phrases are ignored.
func (e *Extractor) Extract(rawText string) domain.ExtractionResult {
	text := strings.ToLower(strings.TrimSpace(rawText))
	if text == "" {
		return domain.ExtractionResult{Extracted: []string{}, Negated: []string{}}
	}

	clauses := SplitClauses(text)
	extracted := make(map[string]struct{})
	negated := make(map[string]struct{})

	// Alias pass: longer phrases first so "chest pain" pre-empts "pain".
	for _, clause := range clauses {
		for _, phrase := range e.kb.AliasPhrases() {
			if !strings.Contains(clause, phrase) {
				continue
			}
			id, _ := e.kb.CanonicalFor(phrase)
			if clauseNegates(clause, phrase) {
				negated[id] = struct{}{}
			} else {
				extracted[id] = struct{}{}
			}
		}
	}

	// Direct pass: catch canonical ids appearing literally or in their
	// readable underscore-replaced form. Ids already resolved by the
	// alias pass are not reconsidered.
	for _, id := range e.kb.Vocabulary() {
		if _, ok := extracted[id]; ok {
			continue
		}
		if _, ok := negated[id]; ok {
			continue
		}
		readable := strings.ReplaceAll(id, "_", " ")
		for _, clause := range clauses {
			if !strings.Contains(clause, readable) && !strings.Contains(clause, id) {
				continue
			}
			if !anyClauseNegates(clauses, readable) {
				extracted[id] = struct{}{}
			}
			break
		}
	}

	// Negation removal is applied last and unconditionally.
	for id := range negated {
		delete(extracted, id)
	}

	result := domain.ExtractionResult{
		Extracted: sortedKeys(extracted),
		Negated:   sortedKeys(negated),
	}

	e.logger.WithFields(logrus.Fields{
		"clause_count": len(clauses),
		"extracted":    len(result.Extracted),
		"negated":      len(result.Negated),
	}).Debug("Symptom extraction complete")

	return result
}

// NormalizeList normalizes a checklist selection: direct vocabulary match,
// underscore form, alias lexicon, then the legacy layman map. Entries
// resolving nowhere are dropped. The returned slice is sorted.
func (e *Extractor) NormalizeList(symptoms []string) []string {
	normalized := make(map[string]struct{})
	for _, raw := range symptoms {
		s := strings.ToLower(strings.TrimSpace(raw))
		if s == "" {
			continue
		}
		if e.kb.IsCanonical(s) {
			normalized[s] = struct{}{}
			continue
		}
		if under := strings.ReplaceAll(s, " ", "_"); e.kb.IsCanonical(under) {
			normalized[under] = struct{}{}
			continue
		}
		if id, ok := e.kb.CanonicalFor(s); ok {
			normalized[id] = struct{}{}
			continue
		}
		if id, ok := e.kb.LegacyAliases()[s]; ok {
			normalized[id] = struct{}{}
		}
	}
	return sortedKeys(normalized)
}

// anyClauseNegates checks the readable form across every clause that
// contains it; one negated occurrence suppresses the direct-pass match.
func anyClauseNegates(clauses []string, readable string) bool {
	for _, clause := range clauses {
		if strings.Contains(clause, readable) && clauseNegates(clause, readable) {
			return true
		}
	}
	return false
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
