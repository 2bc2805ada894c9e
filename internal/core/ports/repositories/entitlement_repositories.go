package repositories

import (
	"context"

	"github.com/voyadesk/travel_desk_app/internal/core/domain"
)

// EntitlementReader defines lookups over grade entitlement rows.
type EntitlementReader interface {
	// FindEntitlement returns the authoritative entitlement row for the
	// given grade and sub-option, preferring a city-specific row over a
	// city-agnostic one when category is non-nil. Returns
	// apperrors.ErrNotFound when no row matches.
	FindEntitlement(ctx context.Context, gradeID, subOptionID string, category *domain.CityCategory) (*domain.GradeEntitlement, error)

	// FindSubOptionByID resolves a sub-option together with its mode name.
	FindSubOptionByID(ctx context.Context, subOptionID string) (*domain.TravelSubOption, error)

	ListEntitlementsForGrade(ctx context.Context, gradeID string) ([]domain.GradeEntitlement, error)
}

// EntitlementWriter defines write operations for entitlement reference data.
type EntitlementWriter interface {
	SaveEntitlement(ctx context.Context, entitlement domain.GradeEntitlement) error
}

// EntitlementRepositoryFacade combines all entitlement repository interfaces.
type EntitlementRepositoryFacade interface {
	EntitlementReader
	EntitlementWriter
}
