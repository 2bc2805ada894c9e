package models

import "github.com/shopspring/decimal"

// GradeEntitlement represents an allow/deny row for a (grade, sub-option,
// city-category) combination. CityCategory is nullable; NULL means the row
// applies regardless of the destination's cost tier.
type GradeEntitlement struct {
	EntitlementID string          `db:"entitlement_id"`
	GradeID       string          `db:"grade_id"`
	SubOptionID   string          `db:"sub_option_id"`
	CityCategory  *string         `db:"city_category"`
	IsAllowed     bool            `db:"is_allowed"`
	MaxAmount     decimal.Decimal `db:"max_amount"`
	AuditFields
}
