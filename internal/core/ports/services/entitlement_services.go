package services

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/voyadesk/travel_desk_app/internal/core/domain"
	"github.com/voyadesk/travel_desk_app/internal/dto"
)

// EntitlementCheckerSvc decides whether a grade may use a travel sub-option.
type EntitlementCheckerSvc interface {
	// CheckEntitlement returns nil when the employee's grade is entitled to
	// the sub-option (for the optional destination tier). It returns an
	// error wrapping apperrors.ErrMissingGrade when the employee has no
	// grade, and *apperrors.EntitlementDeniedError when no entitlement row
	// allows the combination.
	CheckEntitlement(ctx context.Context, employee *domain.Employee, subOptionID string, category *domain.CityCategory) error

	// CheckEntitlementForAmount behaves like CheckEntitlement; services
	// built in strict mode additionally enforce the row's MaxAmount cap.
	// The default (permissive) mode ignores the amount entirely.
	CheckEntitlementForAmount(ctx context.Context, employee *domain.Employee, subOptionID string, category *domain.CityCategory, amount decimal.Decimal) error
}

// EntitlementAdminSvc manages entitlement reference data.
type EntitlementAdminSvc interface {
	CreateEntitlement(ctx context.Context, req dto.CreateEntitlementRequest, creatorUserID string) (*domain.GradeEntitlement, error)
	ListEntitlementsForGrade(ctx context.Context, gradeID string) ([]domain.GradeEntitlement, error)
}

// EntitlementSvcFacade combines all entitlement service interfaces.
type EntitlementSvcFacade interface {
	EntitlementCheckerSvc
	EntitlementAdminSvc
}
