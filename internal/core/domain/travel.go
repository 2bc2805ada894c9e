package domain

// TravelMode is a top-level way of travelling or lodging (Flight, Train,
// Car, Accommodation, ...).
type TravelMode struct {
	ModeID   string `json:"modeID"`
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`
	AuditFields
}

// Well-known mode names. Modes are reference data, but the advance-booking
// defaults are keyed off these two names.
const (
	ModeFlight        = "Flight"
	ModeTrain         = "Train"
	ModeCar           = "Car"
	ModeAccommodation = "Accommodation"
)

// TravelSubOption is a concrete option under exactly one mode, e.g.
// "Business Class" under Flight or "Own Car" under Car.
type TravelSubOption struct {
	SubOptionID string `json:"subOptionID"`
	ModeID      string `json:"modeID"`
	ModeName    string `json:"modeName"`
	Name        string `json:"name"`
	IsActive    bool   `json:"isActive"`
	AuditFields
}
