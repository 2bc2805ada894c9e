package mapping

import (
	"github.com/voyadesk/travel_desk_app/internal/core/domain"
	"github.com/voyadesk/travel_desk_app/internal/models"
)

// ToModelGradeEntitlement converts a domain GradeEntitlement to a model GradeEntitlement
func ToModelGradeEntitlement(d domain.GradeEntitlement) models.GradeEntitlement {
	var category *string
	if d.CityCategory != nil {
		s := string(*d.CityCategory)
		category = &s
	}
	return models.GradeEntitlement{
		EntitlementID: d.EntitlementID,
		GradeID:       d.GradeID,
		SubOptionID:   d.SubOptionID,
		CityCategory:  category,
		IsAllowed:     d.IsAllowed,
		MaxAmount:     d.MaxAmount,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainGradeEntitlement converts a model GradeEntitlement to a domain GradeEntitlement
func ToDomainGradeEntitlement(m models.GradeEntitlement) domain.GradeEntitlement {
	var category *domain.CityCategory
	if m.CityCategory != nil {
		c := domain.CityCategory(*m.CityCategory)
		category = &c
	}
	return domain.GradeEntitlement{
		EntitlementID: m.EntitlementID,
		GradeID:       m.GradeID,
		SubOptionID:   m.SubOptionID,
		CityCategory:  category,
		IsAllowed:     m.IsAllowed,
		MaxAmount:     m.MaxAmount,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainGradeEntitlementSlice converts a slice of model GradeEntitlements to domain
func ToDomainGradeEntitlementSlice(ms []models.GradeEntitlement) []domain.GradeEntitlement {
	ds := make([]domain.GradeEntitlement, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainGradeEntitlement(m)
	}
	return ds
}
