package repositories

import (
	"context"
	"time"

	"github.com/voyadesk/travel_desk_app/internal/core/domain"
)

// RateReader defines lookups over effective-dated rate rows. Both finders
// return the single active row with the greatest effective_from not after
// asOf (and effective_to null or not before asOf), or apperrors.ErrNotFound.
type RateReader interface {
	FindEffectiveDARate(ctx context.Context, gradeID string, category domain.CityCategory, asOf time.Time) (*domain.DAIncidentalRate, error)
	FindEffectiveConveyanceRate(ctx context.Context, conveyanceType string, asOf time.Time) (*domain.ConveyanceRate, error)
	ListDARates(ctx context.Context, gradeID string) ([]domain.DAIncidentalRate, error)
	ListConveyanceRates(ctx context.Context) ([]domain.ConveyanceRate, error)
}

// RateWriter defines write operations for rate reference data. Rates are
// versioned by effective date, never edited in place.
type RateWriter interface {
	SaveDARate(ctx context.Context, rate domain.DAIncidentalRate) error
	SaveConveyanceRate(ctx context.Context, rate domain.ConveyanceRate) error
}

// RateRepositoryFacade combines all rate repository interfaces.
type RateRepositoryFacade interface {
	RateReader
	RateWriter
}
