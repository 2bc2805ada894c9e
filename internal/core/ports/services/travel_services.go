package services

import (
	"context"

	"github.com/voyadesk/travel_desk_app/internal/core/domain"
	"github.com/voyadesk/travel_desk_app/internal/dto"
)

// TravelReaderSvc reads travel applications.
type TravelReaderSvc interface {
	GetApplication(ctx context.Context, applicationID string) (*domain.TravelApplication, error)
	ListApplications(ctx context.Context, employeeID string, limit int, pageToken string) ([]domain.TravelApplication, string, error)
}

// TravelWriterSvc mutates travel applications and their bookings.
type TravelWriterSvc interface {
	// CreateApplication validates the trip (max duration, duplicate
	// overlap, advance-booking lead time) and persists the application
	// with its segments. Returned issues are the non-blocking warnings.
	CreateApplication(ctx context.Context, req dto.CreateTravelApplicationRequest, creatorUserID string) (*domain.TravelApplication, []domain.Issue, error)

	// SubmitApplication moves a draft application into the approval flow.
	SubmitApplication(ctx context.Context, applicationID, userID string) error

	// AddBooking creates a booking under a segment of the application
	// after entitlement and per-mode policy checks.
	AddBooking(ctx context.Context, applicationID string, req dto.CreateBookingRequest, creatorUserID string) (*domain.Booking, []domain.Issue, error)

	// UpdateBookingStatus moves a booking to a new status and refreshes
	// the parent application's derived status.
	UpdateBookingStatus(ctx context.Context, bookingID string, status domain.BookingStatus, userID string) error

	// RefreshApplicationStatus recomputes the application's derived status
	// from its bookings. Idempotent; safe to call repeatedly.
	RefreshApplicationStatus(ctx context.Context, applicationID, userID string) error
}

// TravelSvcFacade combines all travel service interfaces.
type TravelSvcFacade interface {
	TravelReaderSvc
	TravelWriterSvc
}
