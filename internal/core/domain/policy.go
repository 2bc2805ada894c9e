package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PolicyType identifies what a TravelPolicy row governs.
type PolicyType string

const (
	PolicyAdvanceBooking PolicyType = "advance_booking"
	PolicyDistanceLimit  PolicyType = "distance_limit"
	PolicyMaxTripDays    PolicyType = "max_trip_days"
)

// RuleParameters is the free-form parameter mapping carried by a policy row,
// e.g. {"days": 7} or {"max_distance": 150}. Values arrive from JSONB so
// numbers may be float64, json.Number-ish strings, or ints.
type RuleParameters map[string]any

// Number returns the named parameter as a decimal, reporting whether a usable
// numeric value was present. Non-numeric values are treated as absent.
func (p RuleParameters) Number(key string) (decimal.Decimal, bool) {
	v, ok := p[key]
	if !ok || v == nil {
		return decimal.Zero, false
	}
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n), true
	case int:
		return decimal.NewFromInt(int64(n)), true
	case int64:
		return decimal.NewFromInt(n), true
	case string:
		d, err := decimal.NewFromString(n)
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	default:
		return decimal.Zero, false
	}
}

// Int is Number truncated to an int, for whole-unit parameters like days.
func (p RuleParameters) Int(key string) (int, bool) {
	d, ok := p.Number(key)
	if !ok {
		return 0, false
	}
	return int(d.IntPart()), true
}

// TravelPolicy is a generic effective-dated policy row. TravelMode and
// GradeID narrow the policy's applicability; nil means the policy applies to
// every mode/grade. Lookups prefer the most specific match and fall back to
// an unfiltered policy of the same type.
type TravelPolicy struct {
	PolicyID      string         `json:"policyID"`
	PolicyType    PolicyType     `json:"policyType"`
	TravelMode    *string        `json:"travelMode,omitempty"`
	GradeID       *string        `json:"gradeID,omitempty"`
	Parameters    RuleParameters `json:"parameters"`
	EffectiveFrom time.Time      `json:"effectiveFrom"`
	EffectiveTo   *time.Time     `json:"effectiveTo,omitempty"`
	IsActive      bool           `json:"isActive"`
	AuditFields
}
