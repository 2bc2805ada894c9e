package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/voyadesk/travel_desk_app/internal/core/domain"
	"github.com/voyadesk/travel_desk_app/internal/dto"
)

// BookingPolicyValidatorSvc groups the booking policy validators. Each
// validator returns structured issues; callers decide whether warnings block
// submission. Hard failures (overlap, excessive duration) are errors.
type BookingPolicyValidatorSvc interface {
	// ValidateAdvanceBooking checks the booking lead time for the mode.
	// Violations are warnings so the travel desk can override.
	ValidateAdvanceBooking(ctx context.Context, departureDate time.Time, modeName string, estimatedCost decimal.Decimal) ([]domain.Issue, error)

	// ValidateOwnCar checks distance and safety attributes for own-car
	// travel.
	ValidateOwnCar(ctx context.Context, details domain.BookingDetails, distanceKM *decimal.Decimal) ([]domain.Issue, error)

	// ValidateCarSafetyRequirements collects the own-car issues and fails
	// when any is severity error.
	ValidateCarSafetyRequirements(ctx context.Context, details domain.BookingDetails, distanceKM *decimal.Decimal) ([]domain.Issue, error)

	// ValidateDuplicateTravel fails with *apperrors.TravelConflictError
	// when the window overlaps a segment of another active application.
	ValidateDuplicateTravel(ctx context.Context, employeeID string, start, end time.Time, excludeApplicationID string) error

	// ValidateMaxTripDuration fails when the trip exceeds the duration
	// ceiling.
	ValidateMaxTripDuration(departureDate, returnDate time.Time, maxDays int) error

	// ValidateCarDisposalDuration warns when a car at disposal is held
	// longer than the CHRO-free window.
	ValidateCarDisposalDuration(departureDate, returnDate time.Time) []domain.Issue

	// ValidateDADistanceRequirement applies the one-way distance floor for
	// DA eligibility. A nil distance is undetermined, not a failure.
	ValidateDADistanceRequirement(distanceKM *decimal.Decimal) domain.DistanceCheck
}

// PolicyAdminSvc manages policy reference data.
type PolicyAdminSvc interface {
	CreatePolicy(ctx context.Context, req dto.CreatePolicyRequest, creatorUserID string) (*domain.TravelPolicy, error)
	ListPolicies(ctx context.Context) ([]domain.TravelPolicy, error)
}

// PolicySvcFacade combines all policy service interfaces.
type PolicySvcFacade interface {
	BookingPolicyValidatorSvc
	PolicyAdminSvc
}
