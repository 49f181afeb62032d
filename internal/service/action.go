package service

import (
	"fmt"
	"strings"

	"github.com/health-triage-server/internal/domain"
)

// ActionWriter produces the recommended-action block: tier-specific next
// steps, optional condition-specific precautions, and the closing
// disclaimer.
type ActionWriter struct{}

// NewActionWriter creates a new recommendation writer.
func NewActionWriter() *ActionWriter {
	return &ActionWriter{}
}

// Recommend builds the newline-joined recommendation text for the fused
// tier. Precautions from the prediction are appended when present.
func (w *ActionWriter) Recommend(tier domain.SeverityTier, prediction *domain.Prediction) string {
	var parts []string

	switch tier {
	case domain.TierHigh:
		parts = append(parts,
			"IMMEDIATE ACTION RECOMMENDED:\n"+
				"- Please seek medical attention as soon as possible.\n"+
				"- Visit the nearest hospital or call emergency services.\n"+
				"- Do not drive yourself. Ask someone to take you or call an ambulance.\n"+
				"- Stay calm and avoid physical exertion until you receive medical help.")
	case domain.TierMedium:
		parts = append(parts,
			"CONSULTATION RECOMMENDED:\n"+
				"- Schedule a doctor's appointment within the next 24-48 hours.\n"+
				"- Monitor your symptoms closely and note any changes.\n"+
				"- Seek immediate care if symptoms suddenly worsen.")
		parts = append(parts,
			"\nWARNING SIGNS TO WATCH:\n"+
				"- Sudden increase in severity\n"+
				"- New symptoms appearing (especially difficulty breathing, "+
				"chest pain, or confusion)\n"+
				"- Symptoms not improving after 48 hours")
	default:
		parts = append(parts,
			"SELF-CARE GUIDANCE:\n"+
				"- Get adequate rest and stay hydrated.\n"+
				"- Monitor your symptoms over the next few days.\n"+
				"- Use over-the-counter remedies only as directed.\n"+
				"- Consult a doctor if symptoms persist beyond a week.")
	}

	if prediction != nil && len(prediction.Precautions) > 0 {
		var lines []string
		for _, p := range prediction.Precautions {
			p = strings.TrimSpace(p)
			if p == "" {
				continue
			}
			lines = append(lines, fmt.Sprintf("- %s", capitalize(p)))
		}
		if len(lines) > 0 {
			parts = append(parts, fmt.Sprintf("\nSPECIFIC PRECAUTIONS:\n%s", strings.Join(lines, "\n")))
		}
	}

	parts = append(parts,
		"\nIMPORTANT: This is not a medical diagnosis. "+
			"Please consult a qualified healthcare professional for proper evaluation.")

	return strings.Join(parts, "\n")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
