package domain

import "github.com/shopspring/decimal"

// GradeEntitlement is the allow/deny row for a (grade, sub-option,
// city-category) combination. CityCategory is nil for modes where the cost
// tier is irrelevant (most non-accommodation modes). MaxAmount of zero means
// no cap is configured.
type GradeEntitlement struct {
	EntitlementID string          `json:"entitlementID"`
	GradeID       string          `json:"gradeID"`
	SubOptionID   string          `json:"subOptionID"`
	CityCategory  *CityCategory   `json:"cityCategory,omitempty"`
	IsAllowed     bool            `json:"isAllowed"`
	MaxAmount     decimal.Decimal `json:"maxAmount"`
	AuditFields
}
