package nlp

import (
	"regexp"
	"sort"
	"strings"
)

// negationWindow is the lookback span, in characters, inspected before a
// matched phrase: roughly the preceding 8-10 words. Markers after the
// phrase never count.
const negationWindow = 60

// negationWords spans the supported languages. Matching is whole-word so
// that "none" does not fire inside "prone".
var negationWords = []string{
	// English
	"no", "not", "don't", "dont", "doesn't", "doesnt", "didn't", "didnt",
	"haven't", "havent", "hasn't", "hasnt", "never", "without", "nor",
	"neither", "ain't", "aint", "none",
	// Hindi / Marathi
	"nahi", "nai", "nahin", "nah", "na", "mat",
}

// negationRe is compiled once, longest alternative first so that "nahin"
// wins over "nahi" and "na".
var negationRe = buildNegationRe()

func buildNegationRe() *regexp.Regexp {
	words := append([]string(nil), negationWords...)
	sort.Slice(words, func(i, j int) bool {
		if len(words[i]) != len(words[j]) {
			return len(words[i]) > len(words[j])
		}
		return words[i] < words[j]
	})
	quoted := make([]string, len(words))
	for i, w := range words {
		quoted[i] = regexp.QuoteMeta(w)
	}
	return regexp.MustCompile(`(?i)\b(` + strings.Join(quoted, "|") + `)\b`)
}

// clauseNegates reports whether the phrase's first occurrence in the
// clause is preceded, within the lookback window, by a whole-word
// negation marker. Both arguments are expected lowercased.
func clauseNegates(clause, phrase string) bool {
	idx := strings.Index(clause, phrase)
	if idx < 0 {
		return false
	}
	start := idx - negationWindow
	if start < 0 {
		start = 0
	}
	return negationRe.MatchString(clause[start:idx])
}
