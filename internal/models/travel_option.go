package models

// TravelMode represents a top-level travel mode row (Flight, Train, ...).
type TravelMode struct {
	ModeID   string `db:"mode_id"`
	Name     string `db:"name"`
	IsActive bool   `db:"is_active"`
	AuditFields
}

// TravelSubOption represents a sub-option row under a mode.
// ModeName is populated by joining travel_modes; it is not a column of the
// travel_sub_options table itself.
type TravelSubOption struct {
	SubOptionID string `db:"sub_option_id"`
	ModeID      string `db:"mode_id"`
	ModeName    string `db:"mode_name"`
	Name        string `db:"name"`
	IsActive    bool   `db:"is_active"`
	AuditFields
}
