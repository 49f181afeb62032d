package nlp

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/health-triage-server/internal/knowledge"
)

func newTestExtractor(t *testing.T) *Extractor {
	t.Helper()
	kb, err := knowledge.Load()
	require.NoError(t, err)

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewExtractor(kb, logger)
}

func TestExtract(t *testing.T) {
	extractor := newTestExtractor(t)

	tests := []struct {
		name            string
		input           string
		wantExtracted   []string
		wantNegated     []string
		wantNotExtracted []string
	}{
		{
			name:          "simple affirmation",
			input:         "I have chest pain",
			wantExtracted: []string{"chest_pain"},
			wantNegated:   []string{},
		},
		{
			name:          "simple negation",
			input:         "I don't have fever",
			wantExtracted: []string{},
			wantNegated:   []string{"mild_fever"},
		},
		{
			name:            "clause isolation",
			input:           "I have cough and fever but no headache",
			wantExtracted:   []string{"cough", "mild_fever"},
			wantNegated:     []string{"headache"},
			wantNotExtracted: []string{"headache"},
		},
		{
			name:          "hindi alias",
			input:         "mujhe bukhar hai",
			wantExtracted: []string{"mild_fever"},
			wantNegated:   []string{},
		},
		{
			name:          "canonical id in text",
			input:         "chest_pain since morning",
			wantExtracted: []string{"chest_pain"},
			wantNegated:   []string{},
		},
		{
			name:          "empty input",
			input:         "   ",
			wantExtracted: []string{},
			wantNegated:   []string{},
		},
		{
			name:          "no recognizable symptoms",
			input:         "feeling great today",
			wantExtracted: []string{},
			wantNegated:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := extractor.Extract(tt.input)
			for _, id := range tt.wantExtracted {
				assert.Contains(t, result.Extracted, id)
			}
			for _, id := range tt.wantNegated {
				assert.Contains(t, result.Negated, id)
			}
			for _, id := range tt.wantNotExtracted {
				assert.NotContains(t, result.Extracted, id)
			}
			if len(tt.wantExtracted) == 0 {
				assert.Empty(t, result.Extracted)
			}
			if len(tt.wantNegated) == 0 {
				assert.Empty(t, result.Negated)
			}
		})
	}
}

func TestExtractNegationWinsConflict(t *testing.T) {
	extractor := newTestExtractor(t)

	// Affirmed in one clause, negated in another: negation wins and the
	// sets stay disjoint.
	result := extractor.Extract("I had a fever yesterday. No fever today")
	assert.NotContains(t, result.Extracted, "mild_fever")
	assert.Contains(t, result.Negated, "mild_fever")
}

func TestExtractSetsAreDisjoint(t *testing.T) {
	extractor := newTestExtractor(t)

	result := extractor.Extract("chest pain and cough but no headache and no fever")
	for _, id := range result.Extracted {
		assert.NotContains(t, result.Negated, id)
	}
}

func TestExtractIsIdempotentOnNormalizedInput(t *testing.T) {
	extractor := newTestExtractor(t)

	first := extractor.Extract("I have chest pain and cough")
	second := extractor.Extract("I have chest pain and cough")
	assert.Equal(t, first, second)
}

func TestNormalizeList(t *testing.T) {
	extractor := newTestExtractor(t)

	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "canonical passthrough",
			input:    []string{"vomiting"},
			expected: []string{"vomiting"},
		},
		{
			name:     "underscore form",
			input:    []string{"Chest Pain"},
			expected: []string{"chest_pain"},
		},
		{
			name:     "alias resolution",
			input:    []string{"fever"},
			expected: []string{"mild_fever"},
		},
		{
			name:     "unknown entries dropped",
			input:    []string{"totally unknown thing", "cough"},
			expected: []string{"cough"},
		},
		{
			name:     "deduplicated and sorted",
			input:    []string{"fever", "mild_fever", "cough"},
			expected: []string{"cough", "mild_fever"},
		},
		{
			name:     "blank entries ignored",
			input:    []string{"", "  ", "headache"},
			expected: []string{"headache"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractor.NormalizeList(tt.input))
		})
	}
}
