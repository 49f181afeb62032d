package knowledge

// Language detection hint lists. Two or more marker hits classify the
// input text as that language; Marathi is checked before Hindi because
// several markers overlap.
var hindiMarkers = []string{
	"hai", "mujhe", "mera", "dard", "ho raha", "bukhar",
	"pet", "sir", "bahut", "thoda", "kuch", "nahi",
	"saans", "gala", "badan", "tang", "pareshani",
}

var marathiMarkers = []string{
	"aahe", "mala", "mazha", "dukhtay", "hotay", "taap",
	"potaat", "doka", "khup", "thoda", "kaahi", "nahi",
	"shwas", "ghasa", "anga", "tras",
}

// legacyAliases is the older, narrower layman-term map kept for two jobs:
// the neglect detector's second sweep over raw text, and the last-resort
// fallback when normalizing checklist entries. Values are canonical ids.
var legacyAliases = map[string]string{
	// Chest / cardiac
	"chest pain":             "chest_pain",
	"chest tightness":        "chest_pain",
	"chest pressure":         "chest_pain",
	"heart hurts":            "chest_pain",
	"heavy feeling in chest": "chest_pain",
	// Breathing
	"shortness of breath":  "breathlessness",
	"breathing difficulty": "breathlessness",
	"can't breathe":        "breathlessness",
	"breathless":           "breathlessness",
	"difficulty breathing": "breathlessness",
	"gasping":              "breathlessness",
	"saans nahi aa rahi":   "breathlessness",
	"shwas ghene kathin":   "breathlessness",
	// Head
	"headache":     "headache",
	"head pain":    "headache",
	"migraine":     "headache",
	"sir dard":     "headache",
	"doka dukhtay": "headache",
	// Fever
	"fever":            "mild_fever",
	"high temperature": "high_fever",
	"feeling hot":      "mild_fever",
	"bukhar":           "mild_fever",
	"taap":             "mild_fever",
	// Cough
	"cough":    "cough",
	"khansi":   "cough",
	"khokalaa": "cough",
	// Fatigue
	"fatigue":      "fatigue",
	"tiredness":    "fatigue",
	"exhaustion":   "fatigue",
	"feeling weak": "fatigue",
	"thakaan":      "fatigue",
	// Nausea / vomiting
	"nausea":      "nausea",
	"vomiting":    "vomiting",
	"throwing up": "vomiting",
	"ulti":        "vomiting",
	// Pain, abdomen
	"stomach pain":   "abdominal_pain",
	"abdominal pain": "abdominal_pain",
	"belly pain":     "abdominal_pain",
	"pet dard":       "abdominal_pain",
	"potaat dukhte":  "abdominal_pain",
	// Dizziness
	"dizziness":     "dizziness",
	"feeling dizzy": "dizziness",
	"lightheaded":   "dizziness",
	"chakkar":       "dizziness",
	// Numbness
	"numbness":         "numbness",
	"tingling":         "numbness",
	"pins and needles": "numbness",
	// Vision
	"blurred vision":     "blurred_and_distorted_vision",
	"vision change":      "blurred_and_distorted_vision",
	"can't see properly": "blurred_and_distorted_vision",
	// Speech
	"slurred speech":       "slurred_speech",
	"difficulty speaking":  "slurred_speech",
	"can't talk properly":  "slurred_speech",
	// Swelling
	"swelling":     "swollen_extremeties",
	"swollen legs": "swollen_legs",
	"swollen feet": "swollen_legs",
	// Skin
	"rash":      "skin_rash",
	"skin rash": "skin_rash",
	// Sore throat
	"sore throat": "throat_irritation",
	"throat pain": "throat_irritation",
	"gala dard":   "throat_irritation",
	// Body ache
	"body ache":   "muscle_pain",
	"body pain":   "muscle_pain",
	"muscle pain": "muscle_pain",
	"badan dard":  "muscle_pain",
	// Palpitations
	"palpitations":       "palpitations",
	"heart racing":       "palpitations",
	"heart beating fast": "palpitations",
	// Confusion
	"confusion":        "altered_sensorium",
	"feeling confused": "altered_sensorium",
	"disoriented":      "altered_sensorium",
	// Fainting
	"fainting":           "fainting",
	"passed out":         "fainting",
	"lost consciousness": "fainting",
	// Cold / flu
	"cold":       "runny_nose",
	"runny nose": "runny_nose",
	"sneezing":   "continuous_sneezing",
	"sardi":      "runny_nose",
}
