package repositories

import (
	"context"
	"time"

	"github.com/voyadesk/travel_desk_app/internal/core/domain"
)

// PolicyReader defines lookups over effective-dated travel policy rows.
type PolicyReader interface {
	// FindEffectivePolicy returns the active policy of the given type in
	// effect at asOf. When travelMode is non-nil a mode-specific policy is
	// preferred; a mode-agnostic policy of the same type is the fallback.
	// Returns apperrors.ErrNotFound when neither exists.
	FindEffectivePolicy(ctx context.Context, policyType domain.PolicyType, travelMode *string, asOf time.Time) (*domain.TravelPolicy, error)

	ListPolicies(ctx context.Context) ([]domain.TravelPolicy, error)
}

// PolicyWriter defines write operations for policy reference data.
type PolicyWriter interface {
	SavePolicy(ctx context.Context, policy domain.TravelPolicy) error
}

// PolicyRepositoryFacade combines all policy repository interfaces.
type PolicyRepositoryFacade interface {
	PolicyReader
	PolicyWriter
}
