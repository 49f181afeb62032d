package knowledge

// Cluster is a high-risk symptom combination. It fires only when every
// member is present in the normalized extracted set; a firing cluster can
// raise the rule-based severity, never lower it.
type Cluster struct {
	Symptoms    []string
	Tier        string
	Explanation string
}

// highRiskClusters lists combinations whose joint presence outranks the
// individual symptom severities. Fever-involving clusters appear in a
// mild_fever and a high_fever variant since both ids denote the fever
// concept at different intensities.
var highRiskClusters = []Cluster{
	{
		Symptoms:    []string{"chest_pain", "breathlessness"},
		Tier:        "High",
		Explanation: "Combination of chest pain and breathing difficulty can sometimes be associated with serious cardiac or pulmonary conditions.",
	},
	{
		Symptoms:    []string{"chest_pain", "numbness"},
		Tier:        "High",
		Explanation: "Chest pain with numbness can sometimes be associated with serious cardiac events.",
	},
	{
		Symptoms:    []string{"headache", "blurred_and_distorted_vision", "numbness"},
		Tier:        "High",
		Explanation: "Sudden severe headache with vision changes and numbness can sometimes be associated with serious neurological conditions.",
	},
	{
		Symptoms:    []string{"headache", "slurred_speech"},
		Tier:        "High",
		Explanation: "Headache with speech difficulty can sometimes be associated with serious neurological conditions.",
	},
	{
		Symptoms:    []string{"numbness", "slurred_speech"},
		Tier:        "High",
		Explanation: "Numbness with speech difficulty can sometimes point to urgent neurological events.",
	},
	{
		Symptoms:    []string{"mild_fever", "breathlessness", "altered_sensorium"},
		Tier:        "High",
		Explanation: "Fever with breathing difficulty and confusion can sometimes indicate a severe systemic infection.",
	},
	{
		Symptoms:    []string{"high_fever", "breathlessness", "altered_sensorium"},
		Tier:        "High",
		Explanation: "Fever with breathing difficulty and confusion can sometimes indicate a severe systemic infection.",
	},
	{
		Symptoms:    []string{"abdominal_pain", "vomiting", "mild_fever"},
		Tier:        "Medium",
		Explanation: "Abdominal pain with vomiting and fever may need professional evaluation.",
	},
	{
		Symptoms:    []string{"abdominal_pain", "vomiting", "high_fever"},
		Tier:        "Medium",
		Explanation: "Abdominal pain with vomiting and fever may need professional evaluation.",
	},
	{
		Symptoms:    []string{"mild_fever", "cough", "breathlessness"},
		Tier:        "High",
		Explanation: "Fever, cough, and breathing difficulty together can sometimes be associated with serious respiratory infections.",
	},
	{
		Symptoms:    []string{"high_fever", "cough", "breathlessness"},
		Tier:        "High",
		Explanation: "Fever, cough, and breathing difficulty together can sometimes be associated with serious respiratory infections.",
	},
	{
		Symptoms:    []string{"dizziness", "fainting"},
		Tier:        "High",
		Explanation: "Dizziness with fainting episodes warrants prompt medical attention.",
	},
	{
		Symptoms:    []string{"chest_pain", "palpitations"},
		Tier:        "High",
		Explanation: "Chest pain with palpitations can sometimes be associated with cardiac arrhythmias.",
	},
	{
		Symptoms:    []string{"mild_fever", "skin_rash"},
		Tier:        "Medium",
		Explanation: "Fever with rash can indicate infections that may need medical evaluation.",
	},
	{
		Symptoms:    []string{"high_fever", "skin_rash"},
		Tier:        "Medium",
		Explanation: "Fever with rash can indicate infections that may need medical evaluation.",
	},
}
