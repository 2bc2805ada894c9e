package mapping

import (
	"github.com/voyadesk/travel_desk_app/internal/core/domain"
	"github.com/voyadesk/travel_desk_app/internal/models"
)

// ToDomainTravelMode converts a model TravelMode to a domain TravelMode
func ToDomainTravelMode(m models.TravelMode) domain.TravelMode {
	return domain.TravelMode{
		ModeID:      m.ModeID,
		Name:        m.Name,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainTravelSubOption converts a model TravelSubOption to a domain TravelSubOption
func ToDomainTravelSubOption(m models.TravelSubOption) domain.TravelSubOption {
	return domain.TravelSubOption{
		SubOptionID: m.SubOptionID,
		ModeID:      m.ModeID,
		ModeName:    m.ModeName,
		Name:        m.Name,
		IsActive:    m.IsActive,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
