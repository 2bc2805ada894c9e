package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ApplicationStatus is the lifecycle state of a travel application. Once
// booking begins the status is derived from child bookings, never set
// directly (see the booking-status aggregation in the travel service).
type ApplicationStatus string

const (
	StatusDraft             ApplicationStatus = "draft"
	StatusSubmitted         ApplicationStatus = "submitted"
	StatusPendingManager    ApplicationStatus = "pending_manager"
	StatusApprovedManager   ApplicationStatus = "approved_manager"
	StatusApprovedCHRO      ApplicationStatus = "approved_chro"
	StatusApprovedCEO       ApplicationStatus = "approved_ceo"
	StatusPendingTravelDesk ApplicationStatus = "pending_travel_desk"
	StatusBookingInProgress ApplicationStatus = "booking_in_progress"
	StatusBooked            ApplicationStatus = "booked"
	StatusCompleted         ApplicationStatus = "completed"
	StatusCancelled         ApplicationStatus = "cancelled"
	StatusRejected          ApplicationStatus = "rejected"
)

// ActiveApplicationStatuses are the states that count for duplicate-travel
// overlap detection: everything except rejected and cancelled.
var ActiveApplicationStatuses = []ApplicationStatus{
	StatusDraft,
	StatusSubmitted,
	StatusPendingManager,
	StatusApprovedManager,
	StatusApprovedCHRO,
	StatusApprovedCEO,
	StatusPendingTravelDesk,
	StatusBookingInProgress,
	StatusBooked,
	StatusCompleted,
}

// IsActive reports whether the status counts for overlap detection.
func (s ApplicationStatus) IsActive() bool {
	return s != StatusRejected && s != StatusCancelled
}

// BookingStatus is the lifecycle state of a single booking.
type BookingStatus string

const (
	BookingPending    BookingStatus = "pending"
	BookingRequested  BookingStatus = "requested"
	BookingInProgress BookingStatus = "in_progress"
	BookingConfirmed  BookingStatus = "confirmed"
	BookingCompleted  BookingStatus = "completed"
	BookingCancelled  BookingStatus = "cancelled"
)

// IsSettled reports whether the booking needs no further travel-desk work.
func (s BookingStatus) IsSettled() bool {
	return s == BookingConfirmed || s == BookingCompleted
}

// IsOutstanding reports whether the booking is still being worked on.
func (s BookingStatus) IsOutstanding() bool {
	return s == BookingPending || s == BookingRequested || s == BookingInProgress
}

// BookingDetails is the free-form per-type extras mapping on a booking,
// e.g. own-car safety attributes (airbag count, fitness certificate).
type BookingDetails map[string]any

// Booking belongs to exactly one trip segment.
type Booking struct {
	BookingID     string          `json:"bookingID"`
	SegmentID     string          `json:"segmentID"`
	ModeName      string          `json:"modeName"`
	SubOption     string          `json:"subOption"`
	Status        BookingStatus   `json:"status"`
	EstimatedCost decimal.Decimal `json:"estimatedCost"`
	ActualCost    decimal.Decimal `json:"actualCost"`
	Details       BookingDetails  `json:"details,omitempty"`
	AuditFields
}

// TripSegment is one leg of a travel application. Both endpoints carry a
// derived city category; the DA aggregation keys off the origin category
// while entitlement checks key off the destination.
type TripSegment struct {
	SegmentID        string           `json:"segmentID"`
	ApplicationID    string           `json:"applicationID"`
	FromLocation     string           `json:"fromLocation"`
	ToLocation       string           `json:"toLocation"`
	FromCityCategory CityCategory     `json:"fromCityCategory"`
	ToCityCategory   CityCategory     `json:"toCityCategory"`
	DepartureDate    time.Time        `json:"departureDate"`
	ReturnDate       time.Time        `json:"returnDate"`
	OneWayDistanceKM *decimal.Decimal `json:"oneWayDistanceKM,omitempty"`
	Bookings         []Booking        `json:"bookings,omitempty"`
	AuditFields
}

// DurationDays is the whole-day span of the segment, inclusive of the
// departure day.
func (s TripSegment) DurationDays() int {
	days := int(s.ReturnDate.Sub(s.DepartureDate).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// TravelApplication is the aggregate root an employee submits for a trip.
type TravelApplication struct {
	ApplicationID string            `json:"applicationID"`
	EmployeeID    string            `json:"employeeID"`
	Purpose       string            `json:"purpose"`
	Status        ApplicationStatus `json:"status"`
	Segments      []TripSegment     `json:"segments,omitempty"`
	AuditFields
}
