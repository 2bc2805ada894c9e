package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/voyadesk/travel_desk_app/internal/core/domain"
)

// CreateTripSegmentRequest is one leg of a new travel application.
type CreateTripSegmentRequest struct {
	FromLocation     string           `json:"fromLocation" binding:"required"`
	ToLocation       string           `json:"toLocation" binding:"required"`
	FromCityCategory string           `json:"fromCityCategory" binding:"required,oneof=A B C"`
	ToCityCategory   string           `json:"toCityCategory" binding:"required,oneof=A B C"`
	DepartureDate    time.Time        `json:"departureDate" binding:"required"`
	ReturnDate       time.Time        `json:"returnDate" binding:"required"`
	OneWayDistanceKM *decimal.Decimal `json:"oneWayDistanceKM,omitempty"`
}

// CreateTravelApplicationRequest is the payload for a new travel
// application.
type CreateTravelApplicationRequest struct {
	EmployeeID string                     `json:"employeeID" binding:"required,uuid"`
	Purpose    string                     `json:"purpose" binding:"required"`
	Segments   []CreateTripSegmentRequest `json:"segments" binding:"required,min=1,dive"`
}

// CreateBookingRequest adds a booking under a trip segment. The sub-option
// determines the mode; mode and display names are resolved server-side.
type CreateBookingRequest struct {
	SegmentID     string          `json:"segmentID" binding:"required,uuid"`
	SubOptionID   string          `json:"subOptionID" binding:"required,uuid"`
	EstimatedCost decimal.Decimal `json:"estimatedCost"`
	Details       map[string]any  `json:"details,omitempty"`
}

// UpdateBookingStatusRequest moves a booking to a new status.
type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending requested in_progress confirmed completed cancelled"`
}

// IssueResponse is the API shape of a policy validation issue.
type IssueResponse struct {
	Severity string `json:"severity"`
	Code     string `json:"code"`
	Message  string `json:"message"`
}

// ToIssueResponses converts domain issues to their API shape.
func ToIssueResponses(issues []domain.Issue) []IssueResponse {
	out := make([]IssueResponse, len(issues))
	for i, issue := range issues {
		out[i] = IssueResponse{
			Severity: string(issue.Severity),
			Code:     issue.Code,
			Message:  issue.Message,
		}
	}
	return out
}

// BookingResponse is the API shape of a booking.
type BookingResponse struct {
	BookingID     string          `json:"bookingID"`
	SegmentID     string          `json:"segmentID"`
	ModeName      string          `json:"modeName"`
	SubOption     string          `json:"subOption"`
	Status        string          `json:"status"`
	EstimatedCost decimal.Decimal `json:"estimatedCost"`
	ActualCost    decimal.Decimal `json:"actualCost"`
	Details       map[string]any  `json:"details,omitempty"`
}

// TripSegmentResponse is the API shape of a trip segment.
type TripSegmentResponse struct {
	SegmentID        string            `json:"segmentID"`
	FromLocation     string            `json:"fromLocation"`
	ToLocation       string            `json:"toLocation"`
	FromCityCategory string            `json:"fromCityCategory"`
	ToCityCategory   string            `json:"toCityCategory"`
	DepartureDate    time.Time         `json:"departureDate"`
	ReturnDate       time.Time         `json:"returnDate"`
	OneWayDistanceKM *decimal.Decimal  `json:"oneWayDistanceKM,omitempty"`
	Bookings         []BookingResponse `json:"bookings,omitempty"`
}

// TravelApplicationResponse is the API shape of a travel application with
// any validation warnings raised while creating it.
type TravelApplicationResponse struct {
	ApplicationID string                `json:"applicationID"`
	EmployeeID    string                `json:"employeeID"`
	Purpose       string                `json:"purpose"`
	Status        string                `json:"status"`
	Segments      []TripSegmentResponse `json:"segments"`
	Warnings      []IssueResponse       `json:"warnings,omitempty"`
	CreatedAt     time.Time             `json:"createdAt"`
}

// ToBookingResponse converts a domain.Booking to its API shape.
func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		BookingID:     b.BookingID,
		SegmentID:     b.SegmentID,
		ModeName:      b.ModeName,
		SubOption:     b.SubOption,
		Status:        string(b.Status),
		EstimatedCost: b.EstimatedCost,
		ActualCost:    b.ActualCost,
		Details:       b.Details,
	}
}

// ToTravelApplicationResponse converts a domain.TravelApplication to its API
// shape.
func ToTravelApplicationResponse(app *domain.TravelApplication, warnings []domain.Issue) TravelApplicationResponse {
	segments := make([]TripSegmentResponse, len(app.Segments))
	for i, seg := range app.Segments {
		bookings := make([]BookingResponse, len(seg.Bookings))
		for j := range seg.Bookings {
			bookings[j] = ToBookingResponse(&seg.Bookings[j])
		}
		segments[i] = TripSegmentResponse{
			SegmentID:        seg.SegmentID,
			FromLocation:     seg.FromLocation,
			ToLocation:       seg.ToLocation,
			FromCityCategory: string(seg.FromCityCategory),
			ToCityCategory:   string(seg.ToCityCategory),
			DepartureDate:    seg.DepartureDate,
			ReturnDate:       seg.ReturnDate,
			OneWayDistanceKM: seg.OneWayDistanceKM,
			Bookings:         bookings,
		}
	}
	return TravelApplicationResponse{
		ApplicationID: app.ApplicationID,
		EmployeeID:    app.EmployeeID,
		Purpose:       app.Purpose,
		Status:        string(app.Status),
		Segments:      segments,
		Warnings:      ToIssueResponses(warnings),
		CreatedAt:     app.CreatedAt,
	}
}

// ListTravelApplicationsResponse is a cursor-paginated application list.
type ListTravelApplicationsResponse struct {
	Applications []TravelApplicationResponse `json:"applications"`
	NextToken    string                      `json:"nextToken,omitempty"`
}
