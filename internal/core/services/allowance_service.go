package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/voyadesk/travel_desk_app/internal/apperrors"
	"github.com/voyadesk/travel_desk_app/internal/core/domain"
	portsrepo "github.com/voyadesk/travel_desk_app/internal/core/ports/repositories"
	portssvc "github.com/voyadesk/travel_desk_app/internal/core/ports/services"
	"github.com/voyadesk/travel_desk_app/internal/middleware"
)

// DA eligibility thresholds. Hours decide the day type per segment; the
// distance floor applies to the one-way distance when one is known.
var (
	minDAHours      = decimal.NewFromInt(8)
	fullDayDAHours  = decimal.NewFromInt(12)
	minDADistanceKM = decimal.NewFromInt(50)
)

// allowanceService computes DA/incidental and stay allowances.
type allowanceService struct {
	rateRepo     portsrepo.RateReader
	travelRepo   portsrepo.TravelReader
	employeeRepo portsrepo.EmployeeReader
}

// NewAllowanceService creates a new allowance service.
func NewAllowanceService(rateRepo portsrepo.RateReader, travelRepo portsrepo.TravelReader, employeeRepo portsrepo.EmployeeReader) portssvc.AllowanceSvcFacade {
	return &allowanceService{
		rateRepo:     rateRepo,
		travelRepo:   travelRepo,
		employeeRepo: employeeRepo,
	}
}

var _ portssvc.AllowanceSvcFacade = (*allowanceService)(nil)

// CalculateDA implements portssvc.AllowanceCalculatorSvc. Business-rule
// failures come back as an ineligible result; only repository faults return
// an error.
func (s *allowanceService) CalculateDA(ctx context.Context, employee *domain.Employee, category domain.CityCategory, durationHours decimal.Decimal, distanceKM *decimal.Decimal) (domain.DAResult, error) {
	if employee == nil || employee.Grade == nil {
		return domain.Ineligible("employee grade not available"), nil
	}
	if category == "" {
		return domain.Ineligible("city category not available"), nil
	}
	if durationHours.LessThan(minDAHours) {
		return domain.Ineligible(fmt.Sprintf("trip duration below %s hours", minDAHours.String())), nil
	}
	if distanceKM != nil && distanceKM.LessThanOrEqual(minDADistanceKM) {
		return domain.Ineligible(fmt.Sprintf("one-way distance must exceed %s km", minDADistanceKM.String())), nil
	}

	rate, err := s.rateRepo.FindEffectiveDARate(ctx, employee.Grade.GradeID, category, time.Now().UTC())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return domain.Ineligible(fmt.Sprintf(
				"rate not configured for grade %s in category %s", employee.Grade.Name, category)), nil
		}
		return domain.DAResult{}, fmt.Errorf("failed to look up DA rate: %w", err)
	}

	// Binary day-type rule: >= 12h is a full day, 8h..12h a half day.
	daType := domain.DAHalfDay
	daAmount := rate.HalfDayDA
	incidental := rate.HalfDayIncidental
	if durationHours.GreaterThanOrEqual(fullDayDAHours) {
		daType = domain.DAFullDay
		daAmount = rate.FullDayDA
		incidental = rate.FullDayIncidental
	}

	return domain.DAResult{
		Eligible:         true,
		DAType:           daType,
		DAAmount:         daAmount,
		IncidentalAmount: incidental,
		Total:            daAmount.Add(incidental),
	}, nil
}

// CalculateDAForTravel implements portssvc.AllowanceCalculatorSvc. Segment
// duration is approximated as the whole-day span times 24 hours; the
// category comes from the segment origin. A failing segment is captured in
// its breakdown entry while the remaining segments keep accumulating.
func (s *allowanceService) CalculateDAForTravel(ctx context.Context, applicationID string) (*domain.TravelDAResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	app, err := s.travelRepo.FindApplicationByID(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("failed to load travel application: %w", err)
	}
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, app.EmployeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to load employee %s: %w", app.EmployeeID, err)
	}

	result := &domain.TravelDAResult{
		ApplicationID:   app.ApplicationID,
		TotalDA:         decimal.Zero,
		TotalIncidental: decimal.Zero,
		GrandTotal:      decimal.Zero,
		Segments:        make([]domain.SegmentDAResult, 0, len(app.Segments)),
	}

	for _, seg := range app.Segments {
		entry := domain.SegmentDAResult{
			SegmentID:    seg.SegmentID,
			FromLocation: seg.FromLocation,
			ToLocation:   seg.ToLocation,
			CityCategory: seg.FromCityCategory,
		}

		durationHours := decimal.NewFromInt(int64(seg.DurationDays()) * 24)
		segResult, err := s.CalculateDA(ctx, employee, seg.FromCityCategory, durationHours, seg.OneWayDistanceKM)
		if err != nil {
			logger.Warn("Segment DA calculation failed",
				slog.String("segment_id", seg.SegmentID),
				slog.String("error", err.Error()))
			entry.Err = err.Error()
			result.Segments = append(result.Segments, entry)
			continue
		}

		entry.Result = segResult
		result.Segments = append(result.Segments, entry)
		if segResult.Eligible {
			result.TotalDA = result.TotalDA.Add(segResult.DAAmount)
			result.TotalIncidental = result.TotalIncidental.Add(segResult.IncidentalAmount)
			result.GrandTotal = result.GrandTotal.Add(segResult.Total)
		}
	}

	return result, nil
}

// StayAllowance implements portssvc.AllowanceCalculatorSvc.
func (s *allowanceService) StayAllowance(ctx context.Context, employee *domain.Employee, category domain.CityCategory) (decimal.Decimal, error) {
	if employee == nil || employee.Grade == nil {
		return decimal.Zero, fmt.Errorf("%w: stay allowance requires a grade", apperrors.ErrMissingGrade)
	}

	rate, err := s.rateRepo.FindEffectiveDARate(ctx, employee.Grade.GradeID, category, time.Now().UTC())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return decimal.Zero, apperrors.NewNotFoundError(fmt.Sprintf(
				"stay allowance rate not configured for grade %s in category %s", employee.Grade.Name, category))
		}
		return decimal.Zero, fmt.Errorf("failed to look up stay allowance rate: %w", err)
	}

	switch category {
	case domain.CategoryA:
		return rate.StayAllowanceCategoryA, nil
	case domain.CategoryB:
		return rate.StayAllowanceCategoryB, nil
	case domain.CategoryC:
		// No dedicated category-C column exists; C claims are paid at the
		// category-B amount pending a policy decision.
		return rate.StayAllowanceCategoryB, nil
	default:
		return decimal.Zero, fmt.Errorf("%w: unknown city category %q", apperrors.ErrValidation, category)
	}
}
