package service

import "github.com/health-triage-server/internal/domain"

// Caregiver age thresholds. Every High assessment suggests involving a
// trusted person; Medium only does so for older users.
const (
	caregiverElderlyAge = 60
	caregiverMediumAge  = 65
)

// CaregiverAdvisor decides whether to suggest involving a family member
// or caregiver.
type CaregiverAdvisor struct{}

// NewCaregiverAdvisor creates a new caregiver escalation advisor.
func NewCaregiverAdvisor() *CaregiverAdvisor {
	return &CaregiverAdvisor{}
}

// Evaluate returns the caregiver suggestion for the fused tier and age.
func (a *CaregiverAdvisor) Evaluate(tier domain.SeverityTier, age *int) domain.CaregiverAdvice {
	if tier == domain.TierHigh {
		reason := "Given the urgency of your symptoms, we strongly recommend " +
			"informing a trusted family member, friend, or caregiver. " +
			"Having someone aware of your situation can help ensure you " +
			"receive timely assistance, especially if symptoms worsen."
		if age != nil && *age >= caregiverElderlyAge {
			reason += " This is particularly important for individuals above 60, " +
				"where prompt support can make a significant difference."
		}
		return domain.CaregiverAdvice{Suggested: domain.Yes, Reason: reason}
	}

	if tier == domain.TierMedium && age != nil && *age >= caregiverMediumAge {
		return domain.CaregiverAdvice{
			Suggested: domain.Yes,
			Reason: "As a precaution, it may be helpful to let a family member " +
				"or caregiver know about your symptoms so they can assist " +
				"with your doctor's visit if needed.",
		}
	}

	return domain.CaregiverAdvice{Suggested: domain.No, Reason: ""}
}
