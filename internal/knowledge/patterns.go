package knowledge

// SilentPattern describes a symptom/age/gender combination known to
// under-present despite genuine risk. All present modifiers are
// conjunctive; a nil modifier is a wildcard. Flag is a surface label and
// may read "Moderate", a rank-equal synonym of Medium.
type SilentPattern struct {
	Symptoms    []string
	AgeMin      *int
	Gender      string
	Flag        string
	Explanation string
}

func agePtr(v int) *int { return &v }

// silentEmergencyPatterns is evaluated in declared order; the order only
// affects the concatenation order of explanations, not the max-flag
// result.
var silentEmergencyPatterns = []SilentPattern{
	{
		Symptoms:    []string{"chest_pain"},
		AgeMin:      agePtr(40),
		Flag:        "High",
		Explanation: "Chest pain in individuals above 40 can sometimes be associated with serious cardiac conditions, even when it feels mild.",
	},
	{
		Symptoms:    []string{"fatigue", "breathlessness"},
		AgeMin:      agePtr(50),
		Flag:        "High",
		Explanation: "Persistent fatigue with breathing difficulty in individuals above 50 may sometimes be linked to cardiac or pulmonary conditions.",
	},
	{
		Symptoms:    []string{"numbness"},
		AgeMin:      agePtr(30),
		Flag:        "Moderate",
		Explanation: "Sudden onset numbness can sometimes be associated with neurological conditions that benefit from early evaluation.",
	},
	{
		Symptoms:    []string{"headache", "blurred_and_distorted_vision"},
		Flag:        "High",
		Explanation: "Severe headache with vision changes can sometimes be associated with serious neurological conditions.",
	},
	{
		Symptoms:    []string{"dizziness", "palpitations"},
		Flag:        "Moderate",
		Explanation: "Dizziness with palpitations may indicate cardiac rhythm issues that benefit from medical evaluation.",
	},
	{
		Symptoms:    []string{"abdominal_pain"},
		AgeMin:      agePtr(60),
		Flag:        "Moderate",
		Explanation: "Abdominal pain in individuals over 60 can sometimes mask serious underlying conditions.",
	},
}
