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

// entitlementService decides whether a grade may use a travel sub-option.
type entitlementService struct {
	entitlementRepo portsrepo.EntitlementRepositoryFacade

	// strictAmounts turns on MaxAmount enforcement in
	// CheckEntitlementForAmount. Off by default: the cap is modelled in the
	// data but entitlement checks are deliberately permissive about it.
	strictAmounts bool
}

// EntitlementOption configures the entitlement service.
type EntitlementOption func(*entitlementService)

// WithStrictAmounts enables MaxAmount enforcement for amount-aware checks.
func WithStrictAmounts() EntitlementOption {
	return func(s *entitlementService) { s.strictAmounts = true }
}

// NewEntitlementService creates a new entitlement service.
func NewEntitlementService(entitlementRepo portsrepo.EntitlementRepositoryFacade, opts ...EntitlementOption) portssvc.EntitlementSvcFacade {
	s := &entitlementService{entitlementRepo: entitlementRepo}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.EntitlementSvcFacade = (*entitlementService)(nil)

// CheckEntitlement implements portssvc.EntitlementCheckerSvc.
func (s *entitlementService) CheckEntitlement(ctx context.Context, employee *domain.Employee, subOptionID string, category *domain.CityCategory) error {
	_, err := s.lookupAllowedEntitlement(ctx, employee, subOptionID, category)
	return err
}

// CheckEntitlementForAmount behaves like CheckEntitlement and, when the
// service was built with WithStrictAmounts, additionally rejects amounts
// above the row's MaxAmount (zero cap means uncapped).
func (s *entitlementService) CheckEntitlementForAmount(ctx context.Context, employee *domain.Employee, subOptionID string, category *domain.CityCategory, amount decimal.Decimal) error {
	row, err := s.lookupAllowedEntitlement(ctx, employee, subOptionID, category)
	if err != nil {
		return err
	}
	if s.strictAmounts && row.MaxAmount.IsPositive() && amount.GreaterThan(row.MaxAmount) {
		return apperrors.NewValidationError(fmt.Sprintf(
			"amount %s exceeds the entitlement cap %s for grade %s",
			amount.String(), row.MaxAmount.String(), employee.Grade.Name))
	}
	return nil
}

func (s *entitlementService) lookupAllowedEntitlement(ctx context.Context, employee *domain.Employee, subOptionID string, category *domain.CityCategory) (*domain.GradeEntitlement, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if employee == nil || employee.Grade == nil {
		return nil, fmt.Errorf("%w: entitlement check requires a grade", apperrors.ErrMissingGrade)
	}

	subOption, err := s.entitlementRepo.FindSubOptionByID(ctx, subOptionID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown travel sub-option %s", apperrors.ErrValidation, subOptionID)
		}
		return nil, fmt.Errorf("failed to resolve travel sub-option: %w", err)
	}

	row, err := s.entitlementRepo.FindEntitlement(ctx, employee.Grade.GradeID, subOption.SubOptionID, category)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Info("No entitlement row for grade/sub-option",
				slog.String("grade", employee.Grade.Name),
				slog.String("sub_option", subOption.Name))
			return nil, apperrors.NewEntitlementDeniedError(employee.Grade.Name, subOption.Name)
		}
		return nil, fmt.Errorf("failed to look up entitlement: %w", err)
	}
	if !row.IsAllowed {
		return nil, apperrors.NewEntitlementDeniedError(employee.Grade.Name, subOption.Name)
	}
	return row, nil
}

// CreateEntitlement implements portssvc.EntitlementAdminSvc.
func (s *entitlementService) CreateEntitlement(ctx context.Context, req dto.CreateEntitlementRequest, creatorUserID string) (*domain.GradeEntitlement, error) {
	var category *domain.CityCategory
	if req.CityCategory != nil {
		c, err := domain.ParseCityCategory(*req.CityCategory)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		category = &c
	}
	if req.MaxAmount.IsNegative() {
		return nil, fmt.Errorf("%w: max amount cannot be negative", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	entitlement := domain.GradeEntitlement{
		EntitlementID: uuid.NewString(),
		GradeID:       req.GradeID,
		SubOptionID:   req.SubOptionID,
		CityCategory:  category,
		IsAllowed:     req.IsAllowed,
		MaxAmount:     req.MaxAmount,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.entitlementRepo.SaveEntitlement(ctx, entitlement); err != nil {
		return nil, fmt.Errorf("failed to create entitlement: %w", err)
	}
	return &entitlement, nil
}

// ListEntitlementsForGrade implements portssvc.EntitlementAdminSvc.
func (s *entitlementService) ListEntitlementsForGrade(ctx context.Context, gradeID string) ([]domain.GradeEntitlement, error) {
	rows, err := s.entitlementRepo.ListEntitlementsForGrade(ctx, gradeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list entitlements: %w", err)
	}
	return rows, nil
}
