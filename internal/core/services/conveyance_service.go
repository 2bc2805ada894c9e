package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/voyadesk/travel_desk_app/internal/apperrors"
	"github.com/voyadesk/travel_desk_app/internal/core/domain"
	portsrepo "github.com/voyadesk/travel_desk_app/internal/core/ports/repositories"
	portssvc "github.com/voyadesk/travel_desk_app/internal/core/ports/services"
)

// conveyanceService computes reimbursable conveyance costs from
// effective-dated per-km rates.
type conveyanceService struct {
	rateRepo portsrepo.RateReader
}

// NewConveyanceService creates a new conveyance service.
func NewConveyanceService(rateRepo portsrepo.RateReader) portssvc.ConveyanceSvcFacade {
	return &conveyanceService{rateRepo: rateRepo}
}

var _ portssvc.ConveyanceSvcFacade = (*conveyanceService)(nil)

// CalculateConveyance implements portssvc.ConveyanceSvcFacade.
//
// The distance cap is a hard block while the claim cap only clamps the
// amount. The asymmetry is deliberate: travelling too far needs an
// exception, overclaiming just pays out less.
func (s *conveyanceService) CalculateConveyance(ctx context.Context, conveyanceType string, distanceKM decimal.Decimal, hasReceipt bool) (*domain.ConveyanceResult, error) {
	if distanceKM.IsNegative() {
		return nil, fmt.Errorf("%w: distance cannot be negative", apperrors.ErrValidation)
	}

	rate, err := s.rateRepo.FindEffectiveConveyanceRate(ctx, conveyanceType, time.Now().UTC())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("rate not found for conveyance type %s", conveyanceType))
		}
		return nil, fmt.Errorf("failed to look up conveyance rate: %w", err)
	}

	if rate.RequiresReceipt && !hasReceipt {
		return nil, apperrors.NewValidationError(fmt.Sprintf("receipt is required for %s claims", conveyanceType))
	}

	if rate.MaxDistancePerDay.IsPositive() && distanceKM.GreaterThan(rate.MaxDistancePerDay) {
		return nil, apperrors.NewValidationError(fmt.Sprintf(
			"distance %s km exceeds the per-day limit of %s km for %s",
			distanceKM.String(), rate.MaxDistancePerDay.String(), conveyanceType))
	}

	cost := rate.RatePerKM.Mul(distanceKM)
	capped := false
	if rate.MaxClaimAmount.IsPositive() && cost.GreaterThan(rate.MaxClaimAmount) {
		cost = rate.MaxClaimAmount
		capped = true
	}

	return &domain.ConveyanceResult{
		ConveyanceType:  conveyanceType,
		Cost:            cost,
		RatePerKM:       rate.RatePerKM,
		DistanceKM:      distanceKM,
		RequiresReceipt: rate.RequiresReceipt,
		Capped:          capped,
	}, nil
}
