package services

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/voyadesk/travel_desk_app/internal/core/domain"
)

// AllowanceCalculatorSvc computes DA and incidental allowances.
type AllowanceCalculatorSvc interface {
	// CalculateDA computes the DA/incidental amounts a single trip segment
	// earns. Business-rule failures (short duration, short distance,
	// missing rate row) come back as an ineligible DAResult, not an error;
	// errors are reserved for infrastructure faults.
	CalculateDA(ctx context.Context, employee *domain.Employee, category domain.CityCategory, durationHours decimal.Decimal, distanceKM *decimal.Decimal) (domain.DAResult, error)

	// CalculateDAForTravel aggregates DA over every segment of an
	// application. Per-segment failures are recorded in the breakdown and
	// never abort the aggregate.
	CalculateDAForTravel(ctx context.Context, applicationID string) (*domain.TravelDAResult, error)

	// StayAllowance returns the per-night allowance when lodging with
	// friends or relatives instead of booked accommodation.
	StayAllowance(ctx context.Context, employee *domain.Employee, category domain.CityCategory) (decimal.Decimal, error)
}

// AllowanceSvcFacade combines all allowance service interfaces.
type AllowanceSvcFacade interface {
	AllowanceCalculatorSvc
}

// ConveyanceSvcFacade computes reimbursable conveyance costs.
type ConveyanceSvcFacade interface {
	// CalculateConveyance computes the reimbursable cost for a conveyance
	// claim: hard error on missing rate, missing-but-required receipt, or
	// exceeded per-day distance cap; amount is clamped to the claim cap.
	CalculateConveyance(ctx context.Context, conveyanceType string, distanceKM decimal.Decimal, hasReceipt bool) (*domain.ConveyanceResult, error)
}
