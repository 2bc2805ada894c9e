package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// TravelApplication represents a travel application row.
type TravelApplication struct {
	ApplicationID string `db:"application_id"`
	EmployeeID    string `db:"employee_id"`
	Purpose       string `db:"purpose"`
	Status        string `db:"status"`
	AuditFields
}

// TripSegment represents a trip segment row belonging to an application.
type TripSegment struct {
	SegmentID        string           `db:"segment_id"`
	ApplicationID    string           `db:"application_id"`
	FromLocation     string           `db:"from_location"`
	ToLocation       string           `db:"to_location"`
	FromCityCategory string           `db:"from_city_category"`
	ToCityCategory   string           `db:"to_city_category"`
	DepartureDate    time.Time        `db:"departure_date"`
	ReturnDate       time.Time        `db:"return_date"`
	OneWayDistanceKM *decimal.Decimal `db:"one_way_distance_km"`
	AuditFields
}

// Booking represents a booking row belonging to a trip segment.
// Details is stored as JSONB.
type Booking struct {
	BookingID     string          `db:"booking_id"`
	SegmentID     string          `db:"segment_id"`
	ModeName      string          `db:"mode_name"`
	SubOption     string          `db:"sub_option"`
	Status        string          `db:"status"`
	EstimatedCost decimal.Decimal `db:"estimated_cost"`
	ActualCost    decimal.Decimal `db:"actual_cost"`
	Details       map[string]any  `db:"details"`
	AuditFields
}
