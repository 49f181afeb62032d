package nlp

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClauseNegates(t *testing.T) {
	tests := []struct {
		name    string
		clause  string
		phrase  string
		negated bool
	}{
		{"simple no", "no fever", "fever", true},
		{"don't have", "i don't have fever", "fever", true},
		{"contraction without apostrophe", "i dont have fever", "fever", true},
		{"never had", "never had chest pain", "chest pain", true},
		{"without", "without any headache", "headache", true},
		{"affirmed", "i have a fever", "fever", false},
		{"phrase absent", "i have a cough", "fever", false},
		{"marker after phrase does not count", "fever no", "fever", false},
		{"hindi nahi", "bukhar nahi fever", "fever", true},
		{"whole word only", "nothing wrong with my fever reading", "fever", false},
		{"none whole word", "none of the fever", "fever", true},
		{"substring is not a marker", "phone rang during fever", "fever", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.negated, clauseNegates(tt.clause, tt.phrase))
		})
	}
}

func TestClauseNegatesWindowBound(t *testing.T) {
	// A marker further back than the lookback window must not fire.
	padding := strings.Repeat("a ", 40)
	clause := "not " + padding + "fever"
	assert.False(t, clauseNegates(clause, "fever"))

	// Inside the window it does.
	assert.True(t, clauseNegates("not quite sure about the fever", "fever"))
}
