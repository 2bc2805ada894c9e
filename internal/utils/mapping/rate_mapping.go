package mapping

import (
	"github.com/voyadesk/travel_desk_app/internal/core/domain"
	"github.com/voyadesk/travel_desk_app/internal/models"
)

// ToModelDAIncidentalRate converts a domain DAIncidentalRate to a model DAIncidentalRate
func ToModelDAIncidentalRate(d domain.DAIncidentalRate) models.DAIncidentalRate {
	return models.DAIncidentalRate{
		RateID:                 d.RateID,
		GradeID:                d.GradeID,
		CityCategory:           string(d.CityCategory),
		FullDayDA:              d.FullDayDA,
		HalfDayDA:              d.HalfDayDA,
		FullDayIncidental:      d.FullDayIncidental,
		HalfDayIncidental:      d.HalfDayIncidental,
		StayAllowanceCategoryA: d.StayAllowanceCategoryA,
		StayAllowanceCategoryB: d.StayAllowanceCategoryB,
		EffectiveFrom:          d.EffectiveFrom,
		EffectiveTo:            d.EffectiveTo,
		IsActive:               d.IsActive,
		AuditFields:            ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainDAIncidentalRate converts a model DAIncidentalRate to a domain DAIncidentalRate
func ToDomainDAIncidentalRate(m models.DAIncidentalRate) domain.DAIncidentalRate {
	return domain.DAIncidentalRate{
		RateID:                 m.RateID,
		GradeID:                m.GradeID,
		CityCategory:           domain.CityCategory(m.CityCategory),
		FullDayDA:              m.FullDayDA,
		HalfDayDA:              m.HalfDayDA,
		FullDayIncidental:      m.FullDayIncidental,
		HalfDayIncidental:      m.HalfDayIncidental,
		StayAllowanceCategoryA: m.StayAllowanceCategoryA,
		StayAllowanceCategoryB: m.StayAllowanceCategoryB,
		EffectiveFrom:          m.EffectiveFrom,
		EffectiveTo:            m.EffectiveTo,
		IsActive:               m.IsActive,
		AuditFields:            ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainDAIncidentalRateSlice converts a slice of model rates to domain
func ToDomainDAIncidentalRateSlice(ms []models.DAIncidentalRate) []domain.DAIncidentalRate {
	ds := make([]domain.DAIncidentalRate, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDAIncidentalRate(m)
	}
	return ds
}

// ToModelConveyanceRate converts a domain ConveyanceRate to a model ConveyanceRate
func ToModelConveyanceRate(d domain.ConveyanceRate) models.ConveyanceRate {
	return models.ConveyanceRate{
		RateID:            d.RateID,
		ConveyanceType:    d.ConveyanceType,
		RatePerKM:         d.RatePerKM,
		RequiresReceipt:   d.RequiresReceipt,
		MaxClaimAmount:    d.MaxClaimAmount,
		MaxDistancePerDay: d.MaxDistancePerDay,
		EffectiveFrom:     d.EffectiveFrom,
		EffectiveTo:       d.EffectiveTo,
		IsActive:          d.IsActive,
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainConveyanceRate converts a model ConveyanceRate to a domain ConveyanceRate
func ToDomainConveyanceRate(m models.ConveyanceRate) domain.ConveyanceRate {
	return domain.ConveyanceRate{
		RateID:            m.RateID,
		ConveyanceType:    m.ConveyanceType,
		RatePerKM:         m.RatePerKM,
		RequiresReceipt:   m.RequiresReceipt,
		MaxClaimAmount:    m.MaxClaimAmount,
		MaxDistancePerDay: m.MaxDistancePerDay,
		EffectiveFrom:     m.EffectiveFrom,
		EffectiveTo:       m.EffectiveTo,
		IsActive:          m.IsActive,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainConveyanceRateSlice converts a slice of model rates to domain
func ToDomainConveyanceRateSlice(ms []models.ConveyanceRate) []domain.ConveyanceRate {
	ds := make([]domain.ConveyanceRate, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainConveyanceRate(m)
	}
	return ds
}
