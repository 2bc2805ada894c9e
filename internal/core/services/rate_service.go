package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/voyadesk/travel_desk_app/internal/apperrors"
	"github.com/voyadesk/travel_desk_app/internal/core/domain"
	portsrepo "github.com/voyadesk/travel_desk_app/internal/core/ports/repositories"
	portssvc "github.com/voyadesk/travel_desk_app/internal/core/ports/services"
	"github.com/voyadesk/travel_desk_app/internal/dto"
)

// rateService manages DA/incidental and conveyance rate reference data.
// Rates are never edited in place: a new effective-dated row supersedes the
// old one from its effective_from onwards.
type rateService struct {
	rateRepo portsrepo.RateRepositoryFacade
}

// NewRateService creates a new rate service.
func NewRateService(rateRepo portsrepo.RateRepositoryFacade) portssvc.RateSvcFacade {
	return &rateService{rateRepo: rateRepo}
}

var _ portssvc.RateSvcFacade = (*rateService)(nil)

// CreateDARate implements portssvc.RateAdminSvc.
func (s *rateService) CreateDARate(ctx context.Context, req dto.CreateDARateRequest, creatorUserID string) (*domain.DAIncidentalRate, error) {
	category, err := domain.ParseCityCategory(req.CityCategory)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}
	if req.FullDayDA.IsNegative() || req.HalfDayDA.IsNegative() ||
		req.FullDayIncidental.IsNegative() || req.HalfDayIncidental.IsNegative() {
		return nil, fmt.Errorf("%w: rate amounts cannot be negative", apperrors.ErrValidation)
	}
	if req.HalfDayDA.GreaterThan(req.FullDayDA) {
		return nil, fmt.Errorf("%w: half-day DA cannot exceed full-day DA", apperrors.ErrValidation)
	}
	if req.EffectiveTo != nil && req.EffectiveTo.Before(req.EffectiveFrom) {
		return nil, fmt.Errorf("%w: effective window end before start", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	rate := domain.DAIncidentalRate{
		RateID:                 uuid.NewString(),
		GradeID:                req.GradeID,
		CityCategory:           category,
		FullDayDA:              req.FullDayDA,
		HalfDayDA:              req.HalfDayDA,
		FullDayIncidental:      req.FullDayIncidental,
		HalfDayIncidental:      req.HalfDayIncidental,
		StayAllowanceCategoryA: req.StayAllowanceCategoryA,
		StayAllowanceCategoryB: req.StayAllowanceCategoryB,
		EffectiveFrom:          req.EffectiveFrom,
		EffectiveTo:            req.EffectiveTo,
		IsActive:               true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.rateRepo.SaveDARate(ctx, rate); err != nil {
		return nil, fmt.Errorf("failed to create DA rate: %w", err)
	}
	return &rate, nil
}

// CreateConveyanceRate implements portssvc.RateAdminSvc.
func (s *rateService) CreateConveyanceRate(ctx context.Context, req dto.CreateConveyanceRateRequest, creatorUserID string) (*domain.ConveyanceRate, error) {
	if !req.RatePerKM.IsPositive() {
		return nil, fmt.Errorf("%w: rate per km must be positive", apperrors.ErrValidation)
	}
	if req.MaxClaimAmount.IsNegative() || req.MaxDistancePerDay.IsNegative() {
		return nil, fmt.Errorf("%w: caps cannot be negative", apperrors.ErrValidation)
	}
	if req.EffectiveTo != nil && req.EffectiveTo.Before(req.EffectiveFrom) {
		return nil, fmt.Errorf("%w: effective window end before start", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	rate := domain.ConveyanceRate{
		RateID:            uuid.NewString(),
		ConveyanceType:    req.ConveyanceType,
		RatePerKM:         req.RatePerKM,
		RequiresReceipt:   req.RequiresReceipt,
		MaxClaimAmount:    req.MaxClaimAmount,
		MaxDistancePerDay: req.MaxDistancePerDay,
		EffectiveFrom:     req.EffectiveFrom,
		EffectiveTo:       req.EffectiveTo,
		IsActive:          true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.rateRepo.SaveConveyanceRate(ctx, rate); err != nil {
		return nil, fmt.Errorf("failed to create conveyance rate: %w", err)
	}
	return &rate, nil
}

// ListDARates implements portssvc.RateAdminSvc.
func (s *rateService) ListDARates(ctx context.Context, gradeID string) ([]domain.DAIncidentalRate, error) {
	rates, err := s.rateRepo.ListDARates(ctx, gradeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list DA rates: %w", err)
	}
	return rates, nil
}

// ListConveyanceRates implements portssvc.RateAdminSvc.
func (s *rateService) ListConveyanceRates(ctx context.Context) ([]domain.ConveyanceRate, error) {
	rates, err := s.rateRepo.ListConveyanceRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list conveyance rates: %w", err)
	}
	return rates, nil
}
