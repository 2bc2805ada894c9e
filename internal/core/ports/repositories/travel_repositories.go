package repositories

import (
	"context"
	"time"

	"github.com/voyadesk/travel_desk_app/internal/core/domain"
)

// TravelReader defines read operations over travel applications, segments
// and bookings.
type TravelReader interface {
	// FindApplicationByID loads an application with its segments and their
	// bookings.
	FindApplicationByID(ctx context.Context, applicationID string) (*domain.TravelApplication, error)

	// ListApplicationsByEmployee returns a page of the employee's
	// applications ordered by trip start date descending, creation time
	// descending. The returned token is empty on the last page.
	ListApplicationsByEmployee(ctx context.Context, employeeID string, limit int, pageToken string) ([]domain.TravelApplication, string, error)

	// FindOverlappingApplication returns the ID of any application in an
	// active status for the employee with a segment whose
	// [departure, return] window intersects [start, end], or
	// apperrors.ErrNotFound when there is none. excludeApplicationID skips
	// the application being edited.
	FindOverlappingApplication(ctx context.Context, employeeID string, start, end time.Time, excludeApplicationID string) (string, error)

	// FindBookingByID loads a single booking.
	FindBookingByID(ctx context.Context, bookingID string) (*domain.Booking, error)

	// FindApplicationIDForBooking resolves the application a booking
	// belongs to through its trip segment.
	FindApplicationIDForBooking(ctx context.Context, bookingID string) (string, error)
}

// TravelWriter defines write operations over travel applications, segments
// and bookings.
type TravelWriter interface {
	// SaveApplication persists a new application with all its segments in
	// one transaction, re-running the overlap check inside the transaction.
	SaveApplication(ctx context.Context, app domain.TravelApplication) error

	// UpdateApplicationStatus writes the status unconditionally (approval
	// flow transitions validated by the service).
	UpdateApplicationStatus(ctx context.Context, applicationID string, status domain.ApplicationStatus, updatedBy string, now time.Time) error

	SaveBooking(ctx context.Context, booking domain.Booking) error
	UpdateBookingStatus(ctx context.Context, bookingID string, status domain.BookingStatus, updatedBy string, now time.Time) error

	// RefreshApplicationStatus recomputes the application's derived status
	// from its child bookings inside a single transaction, locking the
	// application row so concurrent aggregator runs serialize. The decide
	// function receives the current status and the distinct booking
	// statuses and returns the new status, or ok=false for a no-op.
	RefreshApplicationStatus(ctx context.Context, applicationID string, updatedBy string, now time.Time,
		decide func(current domain.ApplicationStatus, bookings []domain.BookingStatus) (domain.ApplicationStatus, bool)) error
}

// TravelRepositoryFacade combines all travel repository interfaces.
type TravelRepositoryFacade interface {
	TravelReader
	TravelWriter
}

// TravelRepositoryWithTx extends TravelRepositoryFacade with transaction
// capabilities.
type TravelRepositoryWithTx interface {
	TravelRepositoryFacade
	TransactionManager
}
