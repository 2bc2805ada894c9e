package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DAIncidentalRate is an effective-dated rate row for a (grade, city
// category) key. Multiple rows may exist for the same key with different
// effective windows; lookups select the row with the greatest EffectiveFrom
// that is not after the evaluation date.
type DAIncidentalRate struct {
	RateID                 string          `json:"rateID"`
	GradeID                string          `json:"gradeID"`
	CityCategory           CityCategory    `json:"cityCategory"`
	FullDayDA              decimal.Decimal `json:"fullDayDA"`
	HalfDayDA              decimal.Decimal `json:"halfDayDA"`
	FullDayIncidental      decimal.Decimal `json:"fullDayIncidental"`
	HalfDayIncidental      decimal.Decimal `json:"halfDayIncidental"`
	StayAllowanceCategoryA decimal.Decimal `json:"stayAllowanceCategoryA"`
	StayAllowanceCategoryB decimal.Decimal `json:"stayAllowanceCategoryB"`
	EffectiveFrom          time.Time       `json:"effectiveFrom"`
	EffectiveTo            *time.Time      `json:"effectiveTo,omitempty"`
	IsActive               bool            `json:"isActive"`
	AuditFields
}

// ConveyanceRate is an effective-dated per-km rate for a conveyance type
// (Taxi, Auto, Own Car...). Zero MaxClaimAmount / MaxDistancePerDay means
// uncapped.
type ConveyanceRate struct {
	RateID            string          `json:"rateID"`
	ConveyanceType    string          `json:"conveyanceType"`
	RatePerKM         decimal.Decimal `json:"ratePerKM"`
	RequiresReceipt   bool            `json:"requiresReceipt"`
	MaxClaimAmount    decimal.Decimal `json:"maxClaimAmount"`
	MaxDistancePerDay decimal.Decimal `json:"maxDistancePerDay"`
	EffectiveFrom     time.Time       `json:"effectiveFrom"`
	EffectiveTo       *time.Time      `json:"effectiveTo,omitempty"`
	IsActive          bool            `json:"isActive"`
	AuditFields
}

// EffectiveOn reports whether the rate window covers the given date.
func (r DAIncidentalRate) EffectiveOn(asOf time.Time) bool {
	return effectiveOn(r.EffectiveFrom, r.EffectiveTo, asOf)
}

// EffectiveOn reports whether the rate window covers the given date.
func (r ConveyanceRate) EffectiveOn(asOf time.Time) bool {
	return effectiveOn(r.EffectiveFrom, r.EffectiveTo, asOf)
}

func effectiveOn(from time.Time, to *time.Time, asOf time.Time) bool {
	if from.After(asOf) {
		return false
	}
	if to != nil && to.Before(asOf) {
		return false
	}
	return true
}
