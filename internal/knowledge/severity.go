package knowledge

// Individual symptom severity sets. A symptom in alwaysHighSymptoms makes
// the rule-based severity High on its own; mediumSymptoms yield Medium;
// everything else defaults to Low.
var alwaysHighSymptoms = []string{
	"chest_pain",
	"breathlessness",
	"slurred_speech",
	"fainting",
	"altered_sensorium",
}

var mediumSymptoms = []string{
	"mild_fever",
	"high_fever",
	"vomiting",
	"abdominal_pain",
	"palpitations",
	"blurred_and_distorted_vision",
	"numbness",
	"dizziness",
	"swollen_legs",
}

var lowSymptoms = []string{
	"headache",
	"cough",
	"runny_nose",
	"throat_irritation",
	"muscle_pain",
	"fatigue",
	"skin_rash",
	"nausea",
}

// severityWeights holds the numeric per-symptom weights used for the
// weighted severity score. Symptoms without an entry weigh 1. The weighted
// score is the average over the extracted set; >=5 maps to High, >=3 to
// Medium, otherwise Low.
var severityWeights = map[string]int{
	"abdominal_pain":                 4,
	"abnormal_menstruation":          6,
	"acidity":                        3,
	"acute_liver_failure":            6,
	"altered_sensorium":              2,
	"anxiety":                        4,
	"back_pain":                      3,
	"belly_pain":                     4,
	"bladder_discomfort":             4,
	"blood_in_sputum":                5,
	"bloody_stool":                   5,
	"blurred_and_distorted_vision":   5,
	"breathlessness":                 4,
	"bruising":                       4,
	"burning_micturition":            6,
	"chest_pain":                     7,
	"chills":                         3,
	"cold_hands_and_feets":           5,
	"coma":                           7,
	"congestion":                     5,
	"constipation":                   4,
	"continuous_feel_of_urine":       6,
	"continuous_sneezing":            4,
	"cough":                          4,
	"cramps":                         4,
	"dark_urine":                     4,
	"dehydration":                    4,
	"depression":                     3,
	"diarrhoea":                      6,
	"dizziness":                      4,
	"enlarged_thyroid":               6,
	"excessive_hunger":               4,
	"fainting":                       6,
	"fast_heart_rate":                5,
	"fatigue":                        4,
	"fluid_overload":                 6,
	"headache":                       3,
	"high_fever":                     7,
	"indigestion":                    5,
	"irregular_sugar_level":          5,
	"itching":                        1,
	"joint_pain":                     3,
	"lethargy":                       2,
	"loss_of_appetite":               4,
	"loss_of_balance":                4,
	"malaise":                        6,
	"mild_fever":                     5,
	"muscle_pain":                    2,
	"muscle_weakness":                2,
	"nausea":                         5,
	"neck_pain":                      5,
	"numbness":                       5,
	"palpitations":                   4,
	"phlegm":                         5,
	"restlessness":                   5,
	"runny_nose":                     5,
	"shivering":                      5,
	"skin_rash":                      3,
	"slurred_speech":                 4,
	"spinning_movements":             6,
	"stiff_neck":                     4,
	"stomach_bleeding":               6,
	"stomach_pain":                   5,
	"sweating":                       3,
	"swelled_lymph_nodes":            6,
	"swollen_legs":                   5,
	"throat_irritation":              4,
	"unsteadiness":                   4,
	"visual_disturbances":            3,
	"vomiting":                       5,
	"weakness_in_limbs":              7,
	"weakness_of_one_body_side":      4,
	"weight_loss":                    3,
	"yellowing_of_eyes":              4,
	"yellowish_skin":                 3,
}
