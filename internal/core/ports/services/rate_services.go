package services

import (
	"context"

	"github.com/voyadesk/travel_desk_app/internal/core/domain"
	"github.com/voyadesk/travel_desk_app/internal/dto"
)

// RateAdminSvc manages DA/incidental and conveyance rate reference data.
type RateAdminSvc interface {
	CreateDARate(ctx context.Context, req dto.CreateDARateRequest, creatorUserID string) (*domain.DAIncidentalRate, error)
	CreateConveyanceRate(ctx context.Context, req dto.CreateConveyanceRateRequest, creatorUserID string) (*domain.ConveyanceRate, error)
	ListDARates(ctx context.Context, gradeID string) ([]domain.DAIncidentalRate, error)
	ListConveyanceRates(ctx context.Context) ([]domain.ConveyanceRate, error)
}

// RateSvcFacade combines all rate service interfaces.
type RateSvcFacade interface {
	RateAdminSvc
}
