// Package knowledge holds the static tables the triage engine shares:
// the canonical symptom vocabulary, the multilingual alias lexicon,
// severity tiers and weights, high-risk clusters, minimization phrases,
// silent-emergency patterns, and language markers.
//
// All tables are loaded once at process start into an immutable Base that
// is injected into every component; nothing mutates it afterwards, so it
// is safe for concurrent use without locking.
package knowledge

import (
	"fmt"
	"sort"
)

// Base is the loaded, validated knowledge base.
type Base struct {
	vocabulary     map[string]struct{}
	vocabularyList []string

	aliases       map[string]string
	sortedPhrases []string // descending length, then lexical

	legacy map[string]string

	alwaysHigh map[string]struct{}
	medium     map[string]struct{}
	low        map[string]struct{}
	weights    map[string]int

	clusters   []Cluster
	minimizers []string
	pairs      []ContradictionPair
	patterns   []SilentPattern

	hindi   []string
	marathi []string
}

// Load builds the knowledge base from the static tables and validates
// that every alias, severity entry, cluster member, and pattern member
// resolves to a member of the canonical vocabulary. A violation is a
// programming error in the tables and fails the load.
func Load() (*Base, error) {
	b := &Base{
		vocabulary: make(map[string]struct{}, len(vocabularyColumns)),
		aliases:    aliasLexicon,
		legacy:     legacyAliases,
		alwaysHigh: make(map[string]struct{}, len(alwaysHighSymptoms)),
		medium:     make(map[string]struct{}, len(mediumSymptoms)),
		low:        make(map[string]struct{}, len(lowSymptoms)),
		weights:    severityWeights,
		clusters:   highRiskClusters,
		minimizers: minimizationPhrases,
		pairs:      contradictionPairs,
		patterns:   silentEmergencyPatterns,
		hindi:      hindiMarkers,
		marathi:    marathiMarkers,
	}

	for _, id := range vocabularyColumns {
		b.vocabulary[id] = struct{}{}
	}
	b.vocabularyList = append([]string(nil), vocabularyColumns...)
	sort.Strings(b.vocabularyList)

	for phrase, id := range aliasLexicon {
		if _, ok := b.vocabulary[id]; !ok {
			return nil, fmt.Errorf("alias %q maps to unknown symptom id %q", phrase, id)
		}
	}
	for phrase, id := range legacyAliases {
		if _, ok := b.vocabulary[id]; !ok {
			return nil, fmt.Errorf("legacy alias %q maps to unknown symptom id %q", phrase, id)
		}
	}
	for _, id := range alwaysHighSymptoms {
		if _, ok := b.vocabulary[id]; !ok {
			return nil, fmt.Errorf("always-high entry %q not in vocabulary", id)
		}
		b.alwaysHigh[id] = struct{}{}
	}
	for _, id := range mediumSymptoms {
		if _, ok := b.vocabulary[id]; !ok {
			return nil, fmt.Errorf("medium-severity entry %q not in vocabulary", id)
		}
		b.medium[id] = struct{}{}
	}
	for _, id := range lowSymptoms {
		if _, ok := b.vocabulary[id]; !ok {
			return nil, fmt.Errorf("low-severity entry %q not in vocabulary", id)
		}
		b.low[id] = struct{}{}
	}
	for id := range severityWeights {
		if _, ok := b.vocabulary[id]; !ok {
			return nil, fmt.Errorf("severity weight entry %q not in vocabulary", id)
		}
	}
	for _, c := range highRiskClusters {
		for _, id := range c.Symptoms {
			if _, ok := b.vocabulary[id]; !ok {
				return nil, fmt.Errorf("cluster member %q not in vocabulary", id)
			}
		}
	}
	for _, p := range silentEmergencyPatterns {
		for _, id := range p.Symptoms {
			if _, ok := b.vocabulary[id]; !ok {
				return nil, fmt.Errorf("silent pattern member %q not in vocabulary", id)
			}
		}
	}

	// Longer phrases are matched before shorter ones they contain;
	// lexical order breaks length ties for reproducibility.
	b.sortedPhrases = make([]string, 0, len(aliasLexicon))
	for phrase := range aliasLexicon {
		b.sortedPhrases = append(b.sortedPhrases, phrase)
	}
	sort.Slice(b.sortedPhrases, func(i, j int) bool {
		if len(b.sortedPhrases[i]) != len(b.sortedPhrases[j]) {
			return len(b.sortedPhrases[i]) > len(b.sortedPhrases[j])
		}
		return b.sortedPhrases[i] < b.sortedPhrases[j]
	})

	return b, nil
}

// Vocabulary returns the sorted canonical symptom vocabulary.
func (b *Base) Vocabulary() []string {
	return b.vocabularyList
}

// IsCanonical reports whether id is a member of the vocabulary.
func (b *Base) IsCanonical(id string) bool {
	_, ok := b.vocabulary[id]
	return ok
}

// AliasPhrases returns every lexicon phrase sorted by descending length.
func (b *Base) AliasPhrases() []string {
	return b.sortedPhrases
}

// CanonicalFor resolves an alias phrase to its canonical symptom id.
func (b *Base) CanonicalFor(phrase string) (string, bool) {
	id, ok := b.aliases[phrase]
	return id, ok
}

// LegacyAliases returns the narrower legacy layman-term map.
func (b *Base) LegacyAliases() map[string]string {
	return b.legacy
}

// IsAlwaysHigh reports membership in the always-high severity set.
func (b *Base) IsAlwaysHigh(id string) bool {
	_, ok := b.alwaysHigh[id]
	return ok
}

// IsMediumSeverity reports membership in the medium severity set.
func (b *Base) IsMediumSeverity(id string) bool {
	_, ok := b.medium[id]
	return ok
}

// Weight returns the symptom's configured severity weight, defaulting to 1.
func (b *Base) Weight(id string) int {
	if w, ok := b.weights[id]; ok {
		return w
	}
	return 1
}

// Clusters returns the high-risk cluster table.
func (b *Base) Clusters() []Cluster {
	return b.clusters
}

// MinimizationPhrases returns the minimizing-language fragments.
func (b *Base) MinimizationPhrases() []string {
	return b.minimizers
}

// ContradictionPairs returns the symptom/minimizer contradiction table.
func (b *Base) ContradictionPairs() []ContradictionPair {
	return b.pairs
}

// SilentPatterns returns the silent-emergency pattern table in declared
// order.
func (b *Base) SilentPatterns() []SilentPattern {
	return b.patterns
}

// HindiMarkers returns the Hindi language detection hints.
func (b *Base) HindiMarkers() []string {
	return b.hindi
}

// MarathiMarkers returns the Marathi language detection hints.
func (b *Base) MarathiMarkers() []string {
	return b.marathi
}
