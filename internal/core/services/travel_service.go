package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/voyadesk/travel_desk_app/internal/apperrors"
	"github.com/voyadesk/travel_desk_app/internal/core/domain"
	portsrepo "github.com/voyadesk/travel_desk_app/internal/core/ports/repositories"
	portssvc "github.com/voyadesk/travel_desk_app/internal/core/ports/services"
	"github.com/voyadesk/travel_desk_app/internal/dto"
	"github.com/voyadesk/travel_desk_app/internal/middleware"
)

var (
	ErrSegmentNotInApplication = errors.New("trip segment does not belong to the application")
	ErrNotDraft                = errors.New("only draft applications can be submitted")
)

// Sub-options with dedicated policy checks beyond the entitlement row.
const (
	subOptionOwnCar        = "Own Car"
	subOptionCarAtDisposal = "Car at Disposal"
)

// travelService owns the travel application lifecycle: creation with policy
// validation, submission, bookings, and the derived booking-status rollup.
type travelService struct {
	travelRepo      portsrepo.TravelRepositoryWithTx
	entitlementRepo portsrepo.EntitlementReader
	employeeSvc     portssvc.EmployeeReaderSvc
	policySvc       portssvc.BookingPolicyValidatorSvc
	entitlementSvc  portssvc.EntitlementCheckerSvc
	maxTripDays     int
}

// NewTravelService creates a new travel service.
func NewTravelService(
	travelRepo portsrepo.TravelRepositoryWithTx,
	entitlementRepo portsrepo.EntitlementReader,
	employeeSvc portssvc.EmployeeReaderSvc,
	policySvc portssvc.BookingPolicyValidatorSvc,
	entitlementSvc portssvc.EntitlementCheckerSvc,
) portssvc.TravelSvcFacade {
	return &travelService{
		travelRepo:      travelRepo,
		entitlementRepo: entitlementRepo,
		employeeSvc:     employeeSvc,
		policySvc:       policySvc,
		entitlementSvc:  entitlementSvc,
		maxTripDays:     DefaultMaxTripDays,
	}
}

var _ portssvc.TravelSvcFacade = (*travelService)(nil)

// CreateApplication implements portssvc.TravelWriterSvc.
func (s *travelService) CreateApplication(ctx context.Context, req dto.CreateTravelApplicationRequest, creatorUserID string) (*domain.TravelApplication, []domain.Issue, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	employee, err := s.employeeSvc.GetEmployee(ctx, req.EmployeeID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve employee: %w", err)
	}

	now := time.Now().UTC()
	applicationID := uuid.NewString()
	audit := domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     creatorUserID,
		LastUpdatedAt: now,
		LastUpdatedBy: creatorUserID,
	}

	var warnings []domain.Issue
	segments := make([]domain.TripSegment, len(req.Segments))
	tripStart := req.Segments[0].DepartureDate
	tripEnd := req.Segments[0].ReturnDate

	for i, segReq := range req.Segments {
		if err := s.policySvc.ValidateMaxTripDuration(segReq.DepartureDate, segReq.ReturnDate, s.maxTripDays); err != nil {
			return nil, nil, err
		}

		fromCat, err := domain.ParseCityCategory(segReq.FromCityCategory)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		toCat, err := domain.ParseCityCategory(segReq.ToCityCategory)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}

		// Surface DA ineligibility early so the employee is not surprised
		// at claim time. Undetermined (no distance given) stays silent.
		if check := s.policySvc.ValidateDADistanceRequirement(segReq.OneWayDistanceKM); check.Determined && !check.Eligible {
			warnings = append(warnings, domain.Warning("da_distance", fmt.Sprintf(
				"segment %s to %s is below the DA distance threshold and will not earn daily allowance",
				segReq.FromLocation, segReq.ToLocation)))
		}

		segments[i] = domain.TripSegment{
			SegmentID:        uuid.NewString(),
			ApplicationID:    applicationID,
			FromLocation:     segReq.FromLocation,
			ToLocation:       segReq.ToLocation,
			FromCityCategory: fromCat,
			ToCityCategory:   toCat,
			DepartureDate:    segReq.DepartureDate,
			ReturnDate:       segReq.ReturnDate,
			OneWayDistanceKM: segReq.OneWayDistanceKM,
			AuditFields:      audit,
		}

		if segReq.DepartureDate.Before(tripStart) {
			tripStart = segReq.DepartureDate
		}
		if segReq.ReturnDate.After(tripEnd) {
			tripEnd = segReq.ReturnDate
		}
	}

	// Pre-check; the repository re-runs this inside the insert transaction
	// to close the check-then-insert race.
	if err := s.policySvc.ValidateDuplicateTravel(ctx, employee.EmployeeID, tripStart, tripEnd, ""); err != nil {
		return nil, nil, err
	}

	app := domain.TravelApplication{
		ApplicationID: applicationID,
		EmployeeID:    employee.EmployeeID,
		Purpose:       req.Purpose,
		Status:        domain.StatusDraft,
		Segments:      segments,
		AuditFields:   audit,
	}

	if err := s.travelRepo.SaveApplication(ctx, app); err != nil {
		logger.Error("Failed to persist travel application", slog.String("error", err.Error()))
		return nil, nil, fmt.Errorf("failed to create travel application: %w", err)
	}

	logger.Info("Travel application created",
		slog.String("application_id", app.ApplicationID),
		slog.String("employee_id", employee.EmployeeID),
		slog.Int("segments", len(segments)))
	return &app, warnings, nil
}

// SubmitApplication implements portssvc.TravelWriterSvc.
func (s *travelService) SubmitApplication(ctx context.Context, applicationID, userID string) error {
	app, err := s.travelRepo.FindApplicationByID(ctx, applicationID)
	if err != nil {
		return fmt.Errorf("failed to load application: %w", err)
	}
	if app.Status != domain.StatusDraft {
		return fmt.Errorf("%w: application is %s", ErrNotDraft, app.Status)
	}
	return s.travelRepo.UpdateApplicationStatus(ctx, applicationID, domain.StatusSubmitted, userID, time.Now().UTC())
}

// GetApplication implements portssvc.TravelReaderSvc.
func (s *travelService) GetApplication(ctx context.Context, applicationID string) (*domain.TravelApplication, error) {
	app, err := s.travelRepo.FindApplicationByID(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("failed to get application: %w", err)
	}
	return app, nil
}

// ListApplications implements portssvc.TravelReaderSvc.
func (s *travelService) ListApplications(ctx context.Context, employeeID string, limit int, pageToken string) ([]domain.TravelApplication, string, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	apps, next, err := s.travelRepo.ListApplicationsByEmployee(ctx, employeeID, limit, pageToken)
	if err != nil {
		return nil, "", fmt.Errorf("failed to list applications: %w", err)
	}
	return apps, next, nil
}

// AddBooking implements portssvc.TravelWriterSvc.
func (s *travelService) AddBooking(ctx context.Context, applicationID string, req dto.CreateBookingRequest, creatorUserID string) (*domain.Booking, []domain.Issue, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	app, err := s.travelRepo.FindApplicationByID(ctx, applicationID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load application: %w", err)
	}

	var segment *domain.TripSegment
	for i := range app.Segments {
		if app.Segments[i].SegmentID == req.SegmentID {
			segment = &app.Segments[i]
			break
		}
	}
	if segment == nil {
		return nil, nil, fmt.Errorf("%w: segment %s", ErrSegmentNotInApplication, req.SegmentID)
	}

	employee, err := s.employeeSvc.GetEmployee(ctx, app.EmployeeID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve employee: %w", err)
	}

	subOption, err := s.entitlementRepo.FindSubOptionByID(ctx, req.SubOptionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil, fmt.Errorf("%w: unknown travel sub-option %s", apperrors.ErrValidation, req.SubOptionID)
		}
		return nil, nil, fmt.Errorf("failed to resolve sub-option: %w", err)
	}

	// Cost tier only matters for lodging entitlements.
	var category *domain.CityCategory
	if subOption.ModeName == domain.ModeAccommodation {
		category = &segment.ToCityCategory
	}
	if err := s.entitlementSvc.CheckEntitlementForAmount(ctx, employee, subOption.SubOptionID, category, req.EstimatedCost); err != nil {
		return nil, nil, err
	}

	details := domain.BookingDetails(req.Details)
	var warnings []domain.Issue

	leadIssues, err := s.policySvc.ValidateAdvanceBooking(ctx, segment.DepartureDate, subOption.ModeName, req.EstimatedCost)
	if err != nil {
		return nil, nil, err
	}
	warnings = append(warnings, leadIssues...)

	switch {
	case strings.EqualFold(subOption.Name, subOptionOwnCar):
		issues, err := s.policySvc.ValidateCarSafetyRequirements(ctx, details, segment.OneWayDistanceKM)
		if err != nil {
			return nil, issues, err
		}
		warnings = append(warnings, issues...)
	case strings.EqualFold(subOption.Name, subOptionCarAtDisposal):
		warnings = append(warnings, s.policySvc.ValidateCarDisposalDuration(segment.DepartureDate, segment.ReturnDate)...)
	}

	now := time.Now().UTC()
	booking := domain.Booking{
		BookingID:     uuid.NewString(),
		SegmentID:     segment.SegmentID,
		ModeName:      subOption.ModeName,
		SubOption:     subOption.Name,
		Status:        domain.BookingPending,
		EstimatedCost: req.EstimatedCost,
		Details:       details,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.travelRepo.SaveBooking(ctx, booking); err != nil {
		return nil, nil, fmt.Errorf("failed to create booking: %w", err)
	}

	if err := s.RefreshApplicationStatus(ctx, applicationID, creatorUserID); err != nil {
		// The booking exists; the rollup can be retried on the next status
		// change, so log rather than fail the create.
		logger.Error("Failed to refresh application status after booking create",
			slog.String("application_id", applicationID),
			slog.String("error", err.Error()))
	}

	return &booking, warnings, nil
}

// UpdateBookingStatus implements portssvc.TravelWriterSvc.
func (s *travelService) UpdateBookingStatus(ctx context.Context, bookingID string, status domain.BookingStatus, userID string) error {
	applicationID, err := s.travelRepo.FindApplicationIDForBooking(ctx, bookingID)
	if err != nil {
		return fmt.Errorf("failed to resolve booking %s: %w", bookingID, err)
	}

	if err := s.travelRepo.UpdateBookingStatus(ctx, bookingID, status, userID, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}

	return s.RefreshApplicationStatus(ctx, applicationID, userID)
}

// RefreshApplicationStatus implements portssvc.TravelWriterSvc. The
// read-decide-write runs inside one repository transaction with the
// application row locked, so concurrent rollups serialize instead of
// clobbering each other.
func (s *travelService) RefreshApplicationStatus(ctx context.Context, applicationID, userID string) error {
	err := s.travelRepo.RefreshApplicationStatus(ctx, applicationID, userID, time.Now().UTC(), domain.NextAggregateStatus)
	if err != nil {
		return fmt.Errorf("failed to refresh application status: %w", err)
	}
	return nil
}
