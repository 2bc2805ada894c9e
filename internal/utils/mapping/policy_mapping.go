package mapping

import (
	"github.com/voyadesk/travel_desk_app/internal/core/domain"
	"github.com/voyadesk/travel_desk_app/internal/models"
)

// ToModelTravelPolicy converts a domain TravelPolicy to a model TravelPolicy
func ToModelTravelPolicy(d domain.TravelPolicy) models.TravelPolicy {
	return models.TravelPolicy{
		PolicyID:      d.PolicyID,
		PolicyType:    string(d.PolicyType),
		TravelMode:    d.TravelMode,
		GradeID:       d.GradeID,
		Parameters:    d.Parameters,
		EffectiveFrom: d.EffectiveFrom,
		EffectiveTo:   d.EffectiveTo,
		IsActive:      d.IsActive,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTravelPolicy converts a model TravelPolicy to a domain TravelPolicy
func ToDomainTravelPolicy(m models.TravelPolicy) domain.TravelPolicy {
	return domain.TravelPolicy{
		PolicyID:      m.PolicyID,
		PolicyType:    domain.PolicyType(m.PolicyType),
		TravelMode:    m.TravelMode,
		GradeID:       m.GradeID,
		Parameters:    domain.RuleParameters(m.Parameters),
		EffectiveFrom: m.EffectiveFrom,
		EffectiveTo:   m.EffectiveTo,
		IsActive:      m.IsActive,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTravelPolicySlice converts a slice of model policies to domain
func ToDomainTravelPolicySlice(ms []models.TravelPolicy) []domain.TravelPolicy {
	ds := make([]domain.TravelPolicy, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTravelPolicy(m)
	}
	return ds
}
