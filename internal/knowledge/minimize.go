package knowledge

// minimizationPhrases are text fragments that downplay symptoms.
// Membership is case-insensitive substring containment against the raw
// input text.
var minimizationPhrases = []string{
	"just",
	"only",
	"a little",
	"not serious",
	"nothing much",
	"it's fine",
	"it will go away",
	"no big deal",
	"small pain",
	"minor",
	"slight",
	"thoda sa",  // Hindi: a little
	"kuch nahi", // Hindi: nothing
	"bas thoda", // Hindi: just a little
	"kaahi nahi", // Marathi: nothing
}

// ContradictionPair couples a symptom phrase with minimizer fragments that
// directly contradict its seriousness. At most one reason is emitted per
// symptom phrase.
type ContradictionPair struct {
	SymptomPhrase string
	Minimizers    []string
}

var contradictionPairs = []ContradictionPair{
	{SymptomPhrase: "chest pain", Minimizers: []string{"not serious", "no big deal", "it's fine", "nothing"}},
	{SymptomPhrase: "breathing", Minimizers: []string{"just", "a little", "minor", "slight"}},
	{SymptomPhrase: "fainting", Minimizers: []string{"just", "only", "once"}},
	{SymptomPhrase: "slurred speech", Minimizers: []string{"a little", "minor"}},
}
