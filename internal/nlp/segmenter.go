// Package nlp implements clause-aware symptom extraction from free text:
// clause segmentation, longest-phrase-first alias matching, bounded-window
// negation resolution, and language detection.
package nlp

import (
	"regexp"
	"strings"
)

// clauseBoundary splits text at sentence terminators, commas, and
// coordinating or contrastive conjunctions. Each clause is processed
// independently so negation in one clause cannot leak into another:
// "I have fever but no headache" must not negate fever.
var clauseBoundary = regexp.MustCompile(`(?i)[.!;]+|\band\b|\bbut\b|\bhowever\b|\balthough\b|\byet\b|,`)

// SplitClauses returns the ordered, trimmed, non-empty clauses of text.
func SplitClauses(text string) []string {
	parts := clauseBoundary.Split(text, -1)
	clauses := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			clauses = append(clauses, p)
		}
	}
	return clauses
}
