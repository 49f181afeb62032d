package nlp

import (
	"strings"

	"github.com/health-triage-server/internal/knowledge"
)

// DetectLanguage classifies input text as "en", "hi", or "mr" by counting
// marker-word hits. Two or more Marathi markers win, then two or more
// Hindi markers; everything else is English. Marathi is tested first
// because the marker lists overlap.
func DetectLanguage(text string, kb *knowledge.Base) string {
	lower := strings.ToLower(text)

	marathi := 0
	for _, m := range kb.MarathiMarkers() {
		if strings.Contains(lower, m) {
			marathi++
		}
	}
	if marathi >= 2 {
		return "mr"
	}

	hindi := 0
	for _, m := range kb.HindiMarkers() {
		if strings.Contains(lower, m) {
			hindi++
		}
	}
	if hindi >= 2 {
		return "hi"
	}

	return "en"
}
