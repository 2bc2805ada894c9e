package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/voyadesk/travel_desk_app/internal/apperrors"
	"github.com/voyadesk/travel_desk_app/internal/core/domain"
	portsrepo "github.com/voyadesk/travel_desk_app/internal/core/ports/repositories"
	portssvc "github.com/voyadesk/travel_desk_app/internal/core/ports/services"
	"github.com/voyadesk/travel_desk_app/internal/dto"
	"github.com/voyadesk/travel_desk_app/internal/middleware"
)

// Hardcoded policy defaults, used when no TravelPolicy row overrides them.
const (
	defaultFlightLeadDays = 7
	defaultTrainLeadDays  = 3
	defaultOwnCarMaxKM    = 150
	minAirbagCount        = 6
	maxCarDisposalDays    = 5
	DefaultMaxTripDays    = 90
	hoursPerDay           = 24
)

// policyService hosts the booking policy validators and policy admin ops.
type policyService struct {
	policyRepo portsrepo.PolicyRepositoryFacade
	travelRepo portsrepo.TravelReader
}

// NewPolicyService creates a new policy service.
func NewPolicyService(policyRepo portsrepo.PolicyRepositoryFacade, travelRepo portsrepo.TravelReader) portssvc.PolicySvcFacade {
	return &policyService{policyRepo: policyRepo, travelRepo: travelRepo}
}

var _ portssvc.PolicySvcFacade = (*policyService)(nil)

// ValidateAdvanceBooking implements portssvc.BookingPolicyValidatorSvc.
// Lead-time violations are warnings so the travel desk can still book.
func (s *policyService) ValidateAdvanceBooking(ctx context.Context, departureDate time.Time, modeName string, estimatedCost decimal.Decimal) ([]domain.Issue, error) {
	var requiredDays int
	switch modeName {
	case domain.ModeFlight:
		requiredDays = defaultFlightLeadDays
	case domain.ModeTrain:
		requiredDays = defaultTrainLeadDays
	default:
		// Lead time is only policed for flights and trains.
		return nil, nil
	}

	policy, err := s.policyRepo.FindEffectivePolicy(ctx, domain.PolicyAdvanceBooking, &modeName, time.Now().UTC())
	switch {
	case err == nil:
		if days, ok := policy.Parameters.Int("days"); ok {
			requiredDays = days
		} else if hours, ok := policy.Parameters.Int("hours"); ok {
			// Hour-based policies round up to whole days.
			requiredDays = (hours + hoursPerDay - 1) / hoursPerDay
		}
	case errors.Is(err, apperrors.ErrNotFound):
		// No override configured, keep the mode default.
	default:
		return nil, fmt.Errorf("failed to look up advance booking policy: %w", err)
	}

	leadDays := int(time.Until(departureDate).Hours() / hoursPerDay)
	if leadDays < requiredDays {
		return []domain.Issue{domain.Warning(domain.IssueAdvanceBooking, fmt.Sprintf(
			"%s bookings should be made at least %d days in advance (departure is in %d days)",
			modeName, requiredDays, leadDays))}, nil
	}
	return nil, nil
}

// ValidateOwnCar implements portssvc.BookingPolicyValidatorSvc.
func (s *policyService) ValidateOwnCar(ctx context.Context, details domain.BookingDetails, distanceKM *decimal.Decimal) ([]domain.Issue, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	var issues []domain.Issue

	maxKM := decimal.NewFromInt(defaultOwnCarMaxKM)
	policy, err := s.policyRepo.FindEffectivePolicy(ctx, domain.PolicyDistanceLimit, nil, time.Now().UTC())
	switch {
	case err == nil:
		if d, ok := policy.Parameters.Number("max_distance"); ok {
			maxKM = d
		}
	case errors.Is(err, apperrors.ErrNotFound):
	default:
		return nil, fmt.Errorf("failed to look up distance limit policy: %w", err)
	}

	if distanceKM == nil {
		issues = append(issues, domain.Error(domain.IssueDistanceMissing, "one-way distance is required for own car travel"))
	} else if distanceKM.GreaterThan(maxKM) {
		issues = append(issues, domain.Warning(domain.IssueDistanceLimit, fmt.Sprintf(
			"one-way distance %s km exceeds the %s km own-car limit; CHRO approval required",
			distanceKM.String(), maxKM.String())))
	}

	airbags, present, numeric := detailNumber(details, "airbag_count")
	switch {
	case !present:
		issues = append(issues, domain.Warning(domain.IssueAirbagsMissing, "airbag count not provided"))
	case !numeric:
		logger.Warn("Non-numeric airbag count on own-car booking", slog.Any("value", details["airbag_count"]))
		issues = append(issues, domain.Error(domain.IssueAirbagsInvalid, "airbag count must be a number"))
	case airbags.LessThan(decimal.NewFromInt(minAirbagCount)):
		issues = append(issues, domain.Error(domain.IssueAirbagsTooFew, fmt.Sprintf(
			"own car must have a minimum of %d airbags", minAirbagCount)))
	}

	if has, ok := details["fitness_certificate"].(bool); !ok || !has {
		issues = append(issues, domain.Warning(domain.IssueFitnessCertless, "vehicle fitness certificate not provided"))
	}

	return issues, nil
}

// ValidateCarSafetyRequirements implements portssvc.BookingPolicyValidatorSvc.
// It collects the own-car issues and fails when any is severity error.
func (s *policyService) ValidateCarSafetyRequirements(ctx context.Context, details domain.BookingDetails, distanceKM *decimal.Decimal) ([]domain.Issue, error) {
	issues, err := s.ValidateOwnCar(ctx, details, distanceKM)
	if err != nil {
		return nil, err
	}
	if domain.HasErrors(issues) {
		return issues, apperrors.NewValidationError("own car safety requirements not met")
	}
	return issues, nil
}

// ValidateDuplicateTravel implements portssvc.BookingPolicyValidatorSvc.
func (s *policyService) ValidateDuplicateTravel(ctx context.Context, employeeID string, start, end time.Time, excludeApplicationID string) error {
	conflictID, err := s.travelRepo.FindOverlappingApplication(ctx, employeeID, start, end, excludeApplicationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to check for overlapping travel: %w", err)
	}
	return apperrors.NewTravelConflictError(conflictID, fmt.Sprintf(
		"employee already has travel between %s and %s (application %s)",
		start.Format("2006-01-02"), end.Format("2006-01-02"), conflictID))
}

// ValidateMaxTripDuration implements portssvc.BookingPolicyValidatorSvc.
func (s *policyService) ValidateMaxTripDuration(departureDate, returnDate time.Time, maxDays int) error {
	if maxDays <= 0 {
		maxDays = DefaultMaxTripDays
	}
	if returnDate.Before(departureDate) {
		return apperrors.NewValidationError("return date cannot be before departure date")
	}
	days := int(returnDate.Sub(departureDate).Hours() / hoursPerDay)
	if days > maxDays {
		return apperrors.NewValidationError(fmt.Sprintf(
			"trip duration of %d days exceeds the maximum of %d days", days, maxDays))
	}
	return nil
}

// ValidateCarDisposalDuration implements portssvc.BookingPolicyValidatorSvc.
func (s *policyService) ValidateCarDisposalDuration(departureDate, returnDate time.Time) []domain.Issue {
	days := int(returnDate.Sub(departureDate).Hours() / hoursPerDay)
	if days > maxCarDisposalDays {
		return []domain.Issue{domain.Warning(domain.IssueDisposalDuration, fmt.Sprintf(
			"car at disposal for %d days exceeds %d days; CHRO approval required", days, maxCarDisposalDays))}
	}
	return nil
}

// ValidateDADistanceRequirement implements portssvc.BookingPolicyValidatorSvc.
func (s *policyService) ValidateDADistanceRequirement(distanceKM *decimal.Decimal) domain.DistanceCheck {
	if distanceKM == nil {
		return domain.DistanceCheck{Determined: false}
	}
	return domain.DistanceCheck{
		Determined: true,
		Eligible:   distanceKM.GreaterThan(minDADistanceKM),
	}
}

// CreatePolicy implements portssvc.PolicyAdminSvc.
func (s *policyService) CreatePolicy(ctx context.Context, req dto.CreatePolicyRequest, creatorUserID string) (*domain.TravelPolicy, error) {
	if req.EffectiveTo != nil && req.EffectiveTo.Before(req.EffectiveFrom) {
		return nil, fmt.Errorf("%w: effective window end before start", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	policy := domain.TravelPolicy{
		PolicyID:      uuid.NewString(),
		PolicyType:    domain.PolicyType(req.PolicyType),
		TravelMode:    req.TravelMode,
		GradeID:       req.GradeID,
		Parameters:    req.Parameters,
		EffectiveFrom: req.EffectiveFrom,
		EffectiveTo:   req.EffectiveTo,
		IsActive:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.policyRepo.SavePolicy(ctx, policy); err != nil {
		return nil, fmt.Errorf("failed to create policy: %w", err)
	}
	return &policy, nil
}

// ListPolicies implements portssvc.PolicyAdminSvc.
func (s *policyService) ListPolicies(ctx context.Context) ([]domain.TravelPolicy, error) {
	policies, err := s.policyRepo.ListPolicies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list policies: %w", err)
	}
	return policies, nil
}

// detailNumber reads a numeric booking-detail value, distinguishing a
// missing key from a non-numeric value.
func detailNumber(details domain.BookingDetails, key string) (value decimal.Decimal, present, numeric bool) {
	v, ok := details[key]
	if !ok || v == nil {
		return decimal.Zero, false, false
	}
	switch n := v.(type) {
	case float64:
		return decimal.NewFromFloat(n), true, true
	case int:
		return decimal.NewFromInt(int64(n)), true, true
	case int64:
		return decimal.NewFromInt(n), true, true
	case string:
		d, err := decimal.NewFromString(n)
		if err != nil {
			return decimal.Zero, true, false
		}
		return d, true, true
	default:
		return decimal.Zero, true, false
	}
}
