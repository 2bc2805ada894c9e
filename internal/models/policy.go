package models

import "time"

// TravelPolicy represents a generic effective-dated policy row.
// Parameters is stored as JSONB; pgx unmarshals it into the map directly.
type TravelPolicy struct {
	PolicyID      string         `db:"policy_id"`
	PolicyType    string         `db:"policy_type"`
	TravelMode    *string        `db:"travel_mode"`
	GradeID       *string        `db:"grade_id"`
	Parameters    map[string]any `db:"parameters"`
	EffectiveFrom time.Time      `db:"effective_from"`
	EffectiveTo   *time.Time     `db:"effective_to"`
	IsActive      bool           `db:"is_active"`
	AuditFields
}
