package domain

import "github.com/shopspring/decimal"

// DAType distinguishes the two allowance tiers of a single trip segment.
// Duration >= 12h earns the full-day rate, 8h..12h the half-day rate.
type DAType string

const (
	DAFullDay DAType = "full_day"
	DAHalfDay DAType = "half_day"
)

// DAResult is the structured outcome of a DA/incidental calculation.
// "Not eligible" is an expected business outcome, not an error: Eligible is
// false and Reason says why, with all amounts zero.
type DAResult struct {
	Eligible         bool            `json:"eligible"`
	Reason           string          `json:"reason,omitempty"`
	DAType           DAType          `json:"daType,omitempty"`
	DAAmount         decimal.Decimal `json:"daAmount"`
	IncidentalAmount decimal.Decimal `json:"incidentalAmount"`
	Total            decimal.Decimal `json:"total"`
}

// Ineligible builds a negative DAResult with the given reason.
func Ineligible(reason string) DAResult {
	return DAResult{Eligible: false, Reason: reason}
}

// SegmentDAResult pairs one trip segment with its DA outcome. Err carries a
// per-segment failure (e.g. rate lookup error) without aborting the trip
// aggregate.
type SegmentDAResult struct {
	SegmentID    string       `json:"segmentID"`
	FromLocation string       `json:"fromLocation"`
	ToLocation   string       `json:"toLocation"`
	CityCategory CityCategory `json:"cityCategory"`
	Result       DAResult     `json:"result"`
	Err          string       `json:"error,omitempty"`
}

// TravelDAResult is the whole-trip DA aggregation: per-segment breakdown
// plus running totals over the eligible segments.
type TravelDAResult struct {
	ApplicationID   string            `json:"applicationID"`
	TotalDA         decimal.Decimal   `json:"totalDA"`
	TotalIncidental decimal.Decimal   `json:"totalIncidental"`
	GrandTotal      decimal.Decimal   `json:"grandTotal"`
	Segments        []SegmentDAResult `json:"segments"`
}

// ConveyanceResult is the outcome of a conveyance cost calculation.
type ConveyanceResult struct {
	ConveyanceType  string          `json:"conveyanceType"`
	Cost            decimal.Decimal `json:"cost"`
	RatePerKM       decimal.Decimal `json:"ratePerKM"`
	DistanceKM      decimal.Decimal `json:"distanceKM"`
	RequiresReceipt bool            `json:"requiresReceipt"`
	Capped          bool            `json:"capped"`
}

// DistanceCheck is the tri-state outcome of the DA distance requirement:
// a missing distance means "cannot determine", not a failure.
type DistanceCheck struct {
	Determined bool `json:"determined"`
	Eligible   bool `json:"eligible"`
}
