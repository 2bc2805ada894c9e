package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DAIncidentalRate represents an effective-dated daily allowance rate row
// keyed by (grade, city category).
type DAIncidentalRate struct {
	RateID                 string          `db:"rate_id"`
	GradeID                string          `db:"grade_id"`
	CityCategory           string          `db:"city_category"`
	FullDayDA              decimal.Decimal `db:"full_day_da"`
	HalfDayDA              decimal.Decimal `db:"half_day_da"`
	FullDayIncidental      decimal.Decimal `db:"full_day_incidental"`
	HalfDayIncidental      decimal.Decimal `db:"half_day_incidental"`
	StayAllowanceCategoryA decimal.Decimal `db:"stay_allowance_category_a"`
	StayAllowanceCategoryB decimal.Decimal `db:"stay_allowance_category_b"`
	EffectiveFrom          time.Time       `db:"effective_from"`
	EffectiveTo            *time.Time      `db:"effective_to"`
	IsActive               bool            `db:"is_active"`
	AuditFields
}

// ConveyanceRate represents an effective-dated per-km rate row for a
// conveyance type.
type ConveyanceRate struct {
	RateID            string          `db:"rate_id"`
	ConveyanceType    string          `db:"conveyance_type"`
	RatePerKM         decimal.Decimal `db:"rate_per_km"`
	RequiresReceipt   bool            `db:"requires_receipt"`
	MaxClaimAmount    decimal.Decimal `db:"max_claim_amount"`
	MaxDistancePerDay decimal.Decimal `db:"max_distance_per_day"`
	EffectiveFrom     time.Time       `db:"effective_from"`
	EffectiveTo       *time.Time      `db:"effective_to"`
	IsActive          bool            `db:"is_active"`
	AuditFields
}
