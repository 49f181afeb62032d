package knowledge

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	kb, err := Load()
	require.NoError(t, err)
	require.NotNil(t, kb)

	assert.NotEmpty(t, kb.Vocabulary())
	assert.NotEmpty(t, kb.AliasPhrases())
	assert.NotEmpty(t, kb.Clusters())
	assert.NotEmpty(t, kb.SilentPatterns())
	assert.NotEmpty(t, kb.MinimizationPhrases())
	assert.NotEmpty(t, kb.ContradictionPairs())
}

func TestVocabularyIsSortedAndUnique(t *testing.T) {
	kb, err := Load()
	require.NoError(t, err)

	vocab := kb.Vocabulary()
	assert.True(t, sort.StringsAreSorted(vocab))

	seen := make(map[string]struct{}, len(vocab))
	for _, id := range vocab {
		_, dup := seen[id]
		assert.False(t, dup, "duplicate vocabulary id %q", id)
		seen[id] = struct{}{}
	}
}

func TestAliasPhrasesSortedByLength(t *testing.T) {
	kb, err := Load()
	require.NoError(t, err)

	phrases := kb.AliasPhrases()
	for i := 1; i < len(phrases); i++ {
		assert.GreaterOrEqual(t, len(phrases[i-1]), len(phrases[i]),
			"phrase %q should not come after shorter %q", phrases[i-1], phrases[i])
	}
}

func TestCanonicalFor(t *testing.T) {
	kb, err := Load()
	require.NoError(t, err)

	tests := []struct {
		phrase   string
		expected string
	}{
		{"chest pain", "chest_pain"},
		{"fever", "mild_fever"},
		{"can't breathe", "breathlessness"},
		{"bukhar", "mild_fever"},
		{"numbness", "numbness"},
		{"fainted", "fainting"},
	}

	for _, tt := range tests {
		t.Run(tt.phrase, func(t *testing.T) {
			id, ok := kb.CanonicalFor(tt.phrase)
			require.True(t, ok, "phrase %q should resolve", tt.phrase)
			assert.Equal(t, tt.expected, id)
			assert.True(t, kb.IsCanonical(id))
		})
	}

	_, ok := kb.CanonicalFor("definitely not a symptom phrase")
	assert.False(t, ok)
}

func TestSeveritySets(t *testing.T) {
	kb, err := Load()
	require.NoError(t, err)

	assert.True(t, kb.IsAlwaysHigh("chest_pain"))
	assert.True(t, kb.IsAlwaysHigh("breathlessness"))
	assert.True(t, kb.IsAlwaysHigh("slurred_speech"))
	assert.False(t, kb.IsAlwaysHigh("headache"))

	assert.True(t, kb.IsMediumSeverity("mild_fever"))
	assert.True(t, kb.IsMediumSeverity("vomiting"))
	assert.False(t, kb.IsMediumSeverity("chest_pain"))
}

func TestWeightDefaultsToOne(t *testing.T) {
	kb, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 7, kb.Weight("chest_pain"))
	assert.Equal(t, 1, kb.Weight("patches_in_throat"))
}

func TestClusterMembersAreCanonical(t *testing.T) {
	kb, err := Load()
	require.NoError(t, err)

	for _, c := range kb.Clusters() {
		assert.NotEmpty(t, c.Symptoms)
		assert.NotEmpty(t, c.Explanation)
		for _, id := range c.Symptoms {
			assert.True(t, kb.IsCanonical(id), "cluster member %q not canonical", id)
		}
	}
}

func TestSilentPatternTable(t *testing.T) {
	kb, err := Load()
	require.NoError(t, err)

	for _, p := range kb.SilentPatterns() {
		assert.NotEmpty(t, p.Symptoms)
		assert.NotEmpty(t, p.Flag)
		assert.NotEmpty(t, p.Explanation)
		for _, id := range p.Symptoms {
			assert.True(t, kb.IsCanonical(id), "pattern member %q not canonical", id)
		}
	}
}

func TestLegacyAliasesResolve(t *testing.T) {
	kb, err := Load()
	require.NoError(t, err)

	for phrase, id := range kb.LegacyAliases() {
		assert.True(t, kb.IsCanonical(id), "legacy alias %q maps to unknown id %q", phrase, id)
	}
}

func TestLanguageMarkers(t *testing.T) {
	kb, err := Load()
	require.NoError(t, err)

	assert.NotEmpty(t, kb.HindiMarkers())
	assert.NotEmpty(t, kb.MarathiMarkers())
}
