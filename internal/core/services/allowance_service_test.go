package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/voyadesk/travel_desk_app/internal/apperrors"
	"github.com/voyadesk/travel_desk_app/internal/core/domain"
	portssvc "github.com/voyadesk/travel_desk_app/internal/core/ports/services"
	"github.com/voyadesk/travel_desk_app/internal/core/services"
)

type AllowanceServiceTestSuite struct {
	suite.Suite
	mockRateRepo     *MockRateRepository
	mockTravelRepo   *MockTravelRepository
	mockEmployeeRepo *MockEmployeeRepository
	service          portssvc.AllowanceSvcFacade
	ctx              context.Context
	employee         *domain.Employee
}

func (suite *AllowanceServiceTestSuite) SetupTest() {
	suite.mockRateRepo = new(MockRateRepository)
	suite.mockTravelRepo = new(MockTravelRepository)
	suite.mockEmployeeRepo = new(MockEmployeeRepository)
	suite.service = services.NewAllowanceService(suite.mockRateRepo, suite.mockTravelRepo, suite.mockEmployeeRepo)
	suite.ctx = context.Background()
	suite.employee = testEmployee("emp-1", "grade-1", "B-3A")
}

func (suite *AllowanceServiceTestSuite) daRate() *domain.DAIncidentalRate {
	return &domain.DAIncidentalRate{
		RateID:                 "rate-1",
		GradeID:                "grade-1",
		CityCategory:           domain.CategoryA,
		FullDayDA:              decimal.NewFromInt(2000),
		HalfDayDA:              decimal.NewFromInt(1000),
		FullDayIncidental:      decimal.NewFromInt(200),
		HalfDayIncidental:      decimal.NewFromInt(100),
		StayAllowanceCategoryA: decimal.NewFromInt(800),
		StayAllowanceCategoryB: decimal.NewFromInt(500),
		IsActive:               true,
	}
}

func (suite *AllowanceServiceTestSuite) TestCalculateDA_FullDay() {
	suite.mockRateRepo.On("FindEffectiveDARate", suite.ctx, "grade-1", domain.CategoryA, mock.AnythingOfType("time.Time")).
		Return(suite.daRate(), nil).Once()

	result, err := suite.service.CalculateDA(suite.ctx, suite.employee, domain.CategoryA, decimal.NewFromInt(12), nil)

	suite.Require().NoError(err)
	suite.True(result.Eligible)
	suite.Equal(domain.DAFullDay, result.DAType)
	suite.True(result.DAAmount.Equal(decimal.NewFromInt(2000)))
	suite.True(result.IncidentalAmount.Equal(decimal.NewFromInt(200)))
	suite.True(result.Total.Equal(decimal.NewFromInt(2200)))
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *AllowanceServiceTestSuite) TestCalculateDA_HalfDayAtLowerBoundary() {
	suite.mockRateRepo.On("FindEffectiveDARate", suite.ctx, "grade-1", domain.CategoryA, mock.AnythingOfType("time.Time")).
		Return(suite.daRate(), nil).Once()

	result, err := suite.service.CalculateDA(suite.ctx, suite.employee, domain.CategoryA, decimal.NewFromInt(8), nil)

	suite.Require().NoError(err)
	suite.True(result.Eligible)
	suite.Equal(domain.DAHalfDay, result.DAType)
	suite.True(result.Total.Equal(decimal.NewFromInt(1100)))
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *AllowanceServiceTestSuite) TestCalculateDA_BelowMinimumHours() {
	result, err := suite.service.CalculateDA(suite.ctx, suite.employee, domain.CategoryA, decimal.NewFromFloat(7.5), nil)

	suite.Require().NoError(err)
	suite.False(result.Eligible)
	suite.Contains(result.Reason, "below")
	suite.mockRateRepo.AssertNotCalled(suite.T(), "FindEffectiveDARate")
}

func (suite *AllowanceServiceTestSuite) TestCalculateDA_DistanceAtFloorIneligible() {
	result, err := suite.service.CalculateDA(suite.ctx, suite.employee, domain.CategoryA, decimal.NewFromInt(12), decimalPtr(decimal.NewFromInt(50)))

	suite.Require().NoError(err)
	suite.False(result.Eligible)
	suite.Contains(result.Reason, "distance")
	suite.mockRateRepo.AssertNotCalled(suite.T(), "FindEffectiveDARate")
}

func (suite *AllowanceServiceTestSuite) TestCalculateDA_DistanceAboveFloor() {
	suite.mockRateRepo.On("FindEffectiveDARate", suite.ctx, "grade-1", domain.CategoryA, mock.AnythingOfType("time.Time")).
		Return(suite.daRate(), nil).Once()

	result, err := suite.service.CalculateDA(suite.ctx, suite.employee, domain.CategoryA, decimal.NewFromInt(12), decimalPtr(decimal.NewFromInt(51)))

	suite.Require().NoError(err)
	suite.True(result.Eligible)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *AllowanceServiceTestSuite) TestCalculateDA_MissingGrade() {
	employee := &domain.Employee{EmployeeID: "emp-2"}

	result, err := suite.service.CalculateDA(suite.ctx, employee, domain.CategoryA, decimal.NewFromInt(12), nil)

	suite.Require().NoError(err)
	suite.False(result.Eligible)
	suite.Contains(result.Reason, "grade")
}

func (suite *AllowanceServiceTestSuite) TestCalculateDA_RateNotConfigured() {
	suite.mockRateRepo.On("FindEffectiveDARate", suite.ctx, "grade-1", domain.CategoryC, mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.service.CalculateDA(suite.ctx, suite.employee, domain.CategoryC, decimal.NewFromInt(12), nil)

	suite.Require().NoError(err, "a missing rate row is a business outcome, not a fault")
	suite.False(result.Eligible)
	suite.Contains(result.Reason, "rate not configured")
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *AllowanceServiceTestSuite) TestCalculateDA_RepositoryError() {
	suite.mockRateRepo.On("FindEffectiveDARate", suite.ctx, "grade-1", domain.CategoryA, mock.AnythingOfType("time.Time")).
		Return(nil, assert.AnError).Once()

	_, err := suite.service.CalculateDA(suite.ctx, suite.employee, domain.CategoryA, decimal.NewFromInt(12), nil)

	suite.Require().Error(err)
	suite.ErrorIs(err, assert.AnError)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *AllowanceServiceTestSuite) TestCalculateDAForTravel_AggregatesEligibleSegments() {
	dep := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	app := &domain.TravelApplication{
		ApplicationID: "app-1",
		EmployeeID:    "emp-1",
		Segments: []domain.TripSegment{
			{
				SegmentID:        "seg-1",
				FromLocation:     "Mumbai",
				ToLocation:       "Delhi",
				FromCityCategory: domain.CategoryA,
				ToCityCategory:   domain.CategoryA,
				DepartureDate:    dep,
				ReturnDate:       dep.AddDate(0, 0, 2),
			},
			{
				SegmentID:        "seg-2",
				FromLocation:     "Delhi",
				ToLocation:       "Pune",
				FromCityCategory: domain.CategoryB,
				ToCityCategory:   domain.CategoryB,
				DepartureDate:    dep.AddDate(0, 0, 3),
				ReturnDate:       dep.AddDate(0, 0, 4),
			},
		},
	}
	suite.mockTravelRepo.On("FindApplicationByID", suite.ctx, "app-1").Return(app, nil).Once()
	suite.mockEmployeeRepo.On("FindEmployeeByID", suite.ctx, "emp-1").Return(suite.employee, nil).Once()
	suite.mockRateRepo.On("FindEffectiveDARate", suite.ctx, "grade-1", domain.CategoryA, mock.AnythingOfType("time.Time")).
		Return(suite.daRate(), nil).Once()
	suite.mockRateRepo.On("FindEffectiveDARate", suite.ctx, "grade-1", domain.CategoryB, mock.AnythingOfType("time.Time")).
		Return(nil, assert.AnError).Once()

	result, err := suite.service.CalculateDAForTravel(suite.ctx, "app-1")

	suite.Require().NoError(err)
	suite.Require().Len(result.Segments, 2)
	suite.True(result.Segments[0].Result.Eligible)
	suite.Empty(result.Segments[0].Err)
	suite.NotEmpty(result.Segments[1].Err, "a failing segment is recorded, not fatal")
	suite.True(result.TotalDA.Equal(decimal.NewFromInt(2000)))
	suite.True(result.TotalIncidental.Equal(decimal.NewFromInt(200)))
	suite.True(result.GrandTotal.Equal(decimal.NewFromInt(2200)))
	suite.mockRateRepo.AssertExpectations(suite.T())
	suite.mockTravelRepo.AssertExpectations(suite.T())
	suite.mockEmployeeRepo.AssertExpectations(suite.T())
}

func (suite *AllowanceServiceTestSuite) TestCalculateDAForTravel_ApplicationNotFound() {
	suite.mockTravelRepo.On("FindApplicationByID", suite.ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	result, err := suite.service.CalculateDAForTravel(suite.ctx, "missing")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(result)
	suite.mockTravelRepo.AssertExpectations(suite.T())
}

func (suite *AllowanceServiceTestSuite) TestStayAllowance_CategoryA() {
	suite.mockRateRepo.On("FindEffectiveDARate", suite.ctx, "grade-1", domain.CategoryA, mock.AnythingOfType("time.Time")).
		Return(suite.daRate(), nil).Once()

	amount, err := suite.service.StayAllowance(suite.ctx, suite.employee, domain.CategoryA)

	suite.Require().NoError(err)
	suite.True(amount.Equal(decimal.NewFromInt(800)))
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *AllowanceServiceTestSuite) TestStayAllowance_CategoryCPaysCategoryB() {
	suite.mockRateRepo.On("FindEffectiveDARate", suite.ctx, "grade-1", domain.CategoryC, mock.AnythingOfType("time.Time")).
		Return(suite.daRate(), nil).Once()

	amount, err := suite.service.StayAllowance(suite.ctx, suite.employee, domain.CategoryC)

	suite.Require().NoError(err)
	suite.True(amount.Equal(decimal.NewFromInt(500)))
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *AllowanceServiceTestSuite) TestStayAllowance_MissingGrade() {
	employee := &domain.Employee{EmployeeID: "emp-2"}

	_, err := suite.service.StayAllowance(suite.ctx, employee, domain.CategoryA)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrMissingGrade)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "FindEffectiveDARate")
}

func (suite *AllowanceServiceTestSuite) TestStayAllowance_RateNotConfigured() {
	suite.mockRateRepo.On("FindEffectiveDARate", suite.ctx, "grade-1", domain.CategoryB, mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.StayAllowance(suite.ctx, suite.employee, domain.CategoryB)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func TestAllowanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AllowanceServiceTestSuite))
}
