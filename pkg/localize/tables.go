package localize

// labelTables maps UI-facing labels per language. Only the short surface
// labels are table-driven; narrative sentences fall back to phrase
// replacement and otherwise pass through untranslated.
var labelTables = map[string]map[string]string{
	"hi": {
		"Low":      "कम",
		"Medium":   "मध्यम",
		"High":     "उच्च",
		"Moderate": "मध्यम",
		"low":      "कम",
		"moderate": "मध्यम",
		"high":     "उच्च",
		"Yes":      "हाँ",
		"No":       "नहीं",
	},
	"mr": {
		"Low":      "कमी",
		"Medium":   "मध्यम",
		"High":     "उच्च",
		"Moderate": "मध्यम",
		"low":      "कमी",
		"moderate": "मध्यम",
		"high":     "उच्च",
		"Yes":      "होय",
		"No":       "नाही",
	},
}

// disclaimers replaces the English disclaimer wholesale.
var disclaimers = map[string]string{
	"hi": "महत्वपूर्ण: यह कोई चिकित्सा निदान नहीं है। " +
		"कृपया उचित मूल्यांकन के लिए योग्य चिकित्सक से परामर्श करें।",
	"mr": "महत्त्वाचे: हे वैद्यकीय निदान नाही. " +
		"कृपया योग्य मूल्यांकनासाठी पात्र डॉक्टरांचा सल्ला घ्या.",
}

// phraseTables holds in-text phrase replacements applied to narrative
// fields, longest phrase first.
var phraseTables = map[string]map[string]string{
	"hi": {
		"IMMEDIATE ACTION RECOMMENDED": "तुरंत कार्रवाई की सिफारिश",
		"CONSULTATION RECOMMENDED":     "परामर्श की सिफारिश",
		"SELF-CARE GUIDANCE":           "स्व-देखभाल मार्गदर्शन",
		"WARNING SIGNS TO WATCH":       "चेतावनी संकेत जिन पर ध्यान दें",
		"SPECIFIC PRECAUTIONS":         "विशेष सावधानियां",
	},
	"mr": {
		"IMMEDIATE ACTION RECOMMENDED": "तात्काळ कारवाई आवश्यक",
		"CONSULTATION RECOMMENDED":     "डॉक्टरांचा सल्ला घ्या",
		"SELF-CARE GUIDANCE":           "स्वत:ची काळजी घ्या",
		"WARNING SIGNS TO WATCH":       "लक्ष ठेवण्याची चेतावणी चिन्हे",
		"SPECIFIC PRECAUTIONS":         "विशेष खबरदारी",
	},
}

// symptomTables translates the readable form of common symptom ids.
// Untranslated ids surface in English.
var symptomTables = map[string]map[string]string{
	"hi": {
		"chest_pain":           "सीने में दर्द",
		"breathlessness":       "सांस लेने में तकलीफ",
		"mild_fever":           "हल्का बुखार",
		"high_fever":           "तेज बुखार",
		"headache":             "सिरदर्द",
		"cough":                "खांसी",
		"vomiting":             "उल्टी",
		"nausea":               "मतली",
		"dizziness":            "चक्कर आना",
		"fatigue":              "थकान",
		"abdominal_pain":       "पेट दर्द",
		"stomach_pain":         "पेट दर्द",
		"numbness":             "सुन्नपन",
		"fainting":             "बेहोशी",
		"slurred_speech":       "अस्पष्ट बोली",
		"palpitations":         "धड़कन तेज होना",
		"muscle_pain":          "मांसपेशियों में दर्द",
		"joint_pain":           "जोड़ों का दर्द",
		"skin_rash":            "त्वचा पर चकत्ते",
		"runny_nose":           "नाक बहना",
		"throat_irritation":    "गले में खराश",
		"diarrhoea":            "दस्त",
		"swollen_legs":         "पैरों में सूजन",
		"back_pain":            "कमर दर्द",
		"weakness_in_limbs":    "हाथ-पैर में कमजोरी",
		"altered_sensorium":    "चेतना में बदलाव",
		"loss_of_appetite":     "भूख न लगना",
		"continuous_sneezing":  "लगातार छींक",
	},
	"mr": {
		"chest_pain":           "छातीत दुखणे",
		"breathlessness":       "श्वास घेण्यास त्रास",
		"mild_fever":           "हलका ताप",
		"high_fever":           "तीव्र ताप",
		"headache":             "डोकेदुखी",
		"cough":                "खोकला",
		"vomiting":             "उलटी",
		"nausea":               "मळमळ",
		"dizziness":            "चक्कर येणे",
		"fatigue":              "थकवा",
		"abdominal_pain":       "पोटदुखी",
		"stomach_pain":         "पोटदुखी",
		"numbness":             "बधिरपणा",
		"fainting":             "बेशुद्ध पडणे",
		"slurred_speech":       "अस्पष्ट बोलणे",
		"palpitations":         "धडधड वाढणे",
		"muscle_pain":          "स्नायू दुखणे",
		"joint_pain":           "सांधेदुखी",
		"skin_rash":            "त्वचेवर पुरळ",
		"runny_nose":           "नाक वाहणे",
		"throat_irritation":    "घसा खवखवणे",
		"diarrhoea":            "जुलाब",
		"swollen_legs":         "पायांना सूज",
		"back_pain":            "पाठदुखी",
		"weakness_in_limbs":    "हातापायात अशक्तपणा",
		"altered_sensorium":    "शुद्धीत बदल",
		"loss_of_appetite":     "भूक न लागणे",
		"continuous_sneezing":  "सतत शिंका",
	},
}
