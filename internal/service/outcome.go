package service

import "github.com/health-triage-server/internal/domain"

// OutcomeWriter describes the likely consequences of delaying care, split
// into a short-term and a long-term view.
type OutcomeWriter struct{}

// NewOutcomeWriter creates a new outcome-awareness writer.
func NewOutcomeWriter() *OutcomeWriter {
	return &OutcomeWriter{}
}

// Describe maps the fused risk tier to its consequence narrative. The
// chest-related addendum fires when chest pain or breathlessness is in
// the extracted set at High risk.
func (w *OutcomeWriter) Describe(tier domain.SeverityTier, symptoms []string) domain.Outcome {
	switch tier {
	case domain.TierHigh:
		short := "In some cases, delaying care for these symptoms could lead to " +
			"rapid worsening. Conditions associated with these patterns " +
			"may progress quickly and benefit greatly from early intervention."
		if contains(symptoms, "chest_pain") || contains(symptoms, "breathlessness") {
			short += " Chest-related symptoms in particular may indicate " +
				"time-sensitive conditions where every hour matters."
		}
		return domain.Outcome{
			ShortTerm: short,
			LongTerm: "Over time, untreated symptoms of this severity could potentially " +
				"lead to complications that are harder to manage. Early detection " +
				"and treatment generally lead to better outcomes.",
		}

	case domain.TierMedium:
		return domain.Outcome{
			ShortTerm: "If left unattended, these symptoms may persist or gradually " +
				"worsen over the next few days. Some conditions start mild but " +
				"can escalate if not properly evaluated.",
			LongTerm: "Prolonged neglect of these symptoms could potentially lead to " +
				"chronic issues or complications. A timely check-up can help " +
				"prevent this.",
		}

	default:
		return domain.Outcome{
			ShortTerm: "These symptoms are generally self-limiting and may improve " +
				"with rest and basic self-care within a few days.",
			LongTerm: "If symptoms persist beyond a week or new symptoms develop, " +
				"it would be wise to consult a healthcare professional to rule " +
				"out any underlying causes.",
		}
	}
}

func contains(list []string, target string) bool {
	for _, s := range list {
		if s == target {
			return true
		}
	}
	return false
}
