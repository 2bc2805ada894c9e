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
	"github.com/voyadesk/travel_desk_app/internal/dto"
)

type TravelServiceTestSuite struct {
	suite.Suite
	mockTravelRepo      *MockTravelRepository
	mockEntitlementRepo *MockEntitlementRepository
	mockEmployeeSvc     *MockEmployeeReaderSvc
	mockPolicySvc       *MockPolicyValidatorSvc
	mockEntitlementSvc  *MockEntitlementCheckerSvc
	service             portssvc.TravelSvcFacade
	ctx                 context.Context
	employee            *domain.Employee
}

func (suite *TravelServiceTestSuite) SetupTest() {
	suite.mockTravelRepo = new(MockTravelRepository)
	suite.mockEntitlementRepo = new(MockEntitlementRepository)
	suite.mockEmployeeSvc = new(MockEmployeeReaderSvc)
	suite.mockPolicySvc = new(MockPolicyValidatorSvc)
	suite.mockEntitlementSvc = new(MockEntitlementCheckerSvc)
	suite.service = services.NewTravelService(
		suite.mockTravelRepo,
		suite.mockEntitlementRepo,
		suite.mockEmployeeSvc,
		suite.mockPolicySvc,
		suite.mockEntitlementSvc,
	)
	suite.ctx = context.Background()
	suite.employee = testEmployee("emp-1", "grade-1", "B-3A")
}

func (suite *TravelServiceTestSuite) applicationRequest(dep, ret time.Time) dto.CreateTravelApplicationRequest {
	return dto.CreateTravelApplicationRequest{
		EmployeeID: "emp-1",
		Purpose:    "Quarterly review",
		Segments: []dto.CreateTripSegmentRequest{
			{
				FromLocation:     "Mumbai",
				ToLocation:       "Delhi",
				FromCityCategory: "A",
				ToCityCategory:   "A",
				DepartureDate:    dep,
				ReturnDate:       ret,
			},
		},
	}
}

func (suite *TravelServiceTestSuite) testApplication(dep time.Time) *domain.TravelApplication {
	return &domain.TravelApplication{
		ApplicationID: "app-1",
		EmployeeID:    "emp-1",
		Purpose:       "Quarterly review",
		Status:        domain.StatusDraft,
		Segments: []domain.TripSegment{
			{
				SegmentID:        "seg-1",
				ApplicationID:    "app-1",
				FromLocation:     "Mumbai",
				ToLocation:       "Delhi",
				FromCityCategory: domain.CategoryA,
				ToCityCategory:   domain.CategoryB,
				DepartureDate:    dep,
				ReturnDate:       dep.AddDate(0, 0, 3),
			},
		},
	}
}

func (suite *TravelServiceTestSuite) TestCreateApplication_Success() {
	dep := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	ret := dep.AddDate(0, 0, 3)
	req := suite.applicationRequest(dep, ret)

	suite.mockEmployeeSvc.On("GetEmployee", suite.ctx, "emp-1").Return(suite.employee, nil).Once()
	suite.mockPolicySvc.On("ValidateMaxTripDuration", dep, ret, services.DefaultMaxTripDays).Return(nil).Once()
	suite.mockPolicySvc.On("ValidateDADistanceRequirement", (*decimal.Decimal)(nil)).
		Return(domain.DistanceCheck{Determined: false}).Once()
	suite.mockPolicySvc.On("ValidateDuplicateTravel", suite.ctx, "emp-1", dep, ret, "").Return(nil).Once()
	suite.mockTravelRepo.On("SaveApplication", suite.ctx, mock.MatchedBy(func(app domain.TravelApplication) bool {
		return app.EmployeeID == "emp-1" && app.Status == domain.StatusDraft &&
			len(app.Segments) == 1 && app.Segments[0].SegmentID != "" &&
			app.Segments[0].ApplicationID == app.ApplicationID
	})).Return(nil).Once()

	app, warnings, err := suite.service.CreateApplication(suite.ctx, req, "emp-1")

	suite.Require().NoError(err)
	suite.Equal(domain.StatusDraft, app.Status)
	suite.Empty(warnings)
	suite.mockTravelRepo.AssertExpectations(suite.T())
	suite.mockPolicySvc.AssertExpectations(suite.T())
}

func (suite *TravelServiceTestSuite) TestCreateApplication_ShortDistanceWarns() {
	dep := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	ret := dep.AddDate(0, 0, 3)
	req := suite.applicationRequest(dep, ret)
	distance := decimalPtr(decimal.NewFromInt(30))
	req.Segments[0].OneWayDistanceKM = distance

	suite.mockEmployeeSvc.On("GetEmployee", suite.ctx, "emp-1").Return(suite.employee, nil).Once()
	suite.mockPolicySvc.On("ValidateMaxTripDuration", dep, ret, services.DefaultMaxTripDays).Return(nil).Once()
	suite.mockPolicySvc.On("ValidateDADistanceRequirement", distance).
		Return(domain.DistanceCheck{Determined: true, Eligible: false}).Once()
	suite.mockPolicySvc.On("ValidateDuplicateTravel", suite.ctx, "emp-1", dep, ret, "").Return(nil).Once()
	suite.mockTravelRepo.On("SaveApplication", suite.ctx, mock.AnythingOfType("domain.TravelApplication")).Return(nil).Once()

	_, warnings, err := suite.service.CreateApplication(suite.ctx, req, "emp-1")

	suite.Require().NoError(err)
	suite.Require().Len(warnings, 1)
	suite.Equal(domain.SeverityWarning, warnings[0].Severity)
	suite.Contains(warnings[0].Message, "daily allowance")
}

func (suite *TravelServiceTestSuite) TestCreateApplication_DuplicateTravelConflict() {
	dep := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	ret := dep.AddDate(0, 0, 3)
	req := suite.applicationRequest(dep, ret)

	suite.mockEmployeeSvc.On("GetEmployee", suite.ctx, "emp-1").Return(suite.employee, nil).Once()
	suite.mockPolicySvc.On("ValidateMaxTripDuration", dep, ret, services.DefaultMaxTripDays).Return(nil).Once()
	suite.mockPolicySvc.On("ValidateDADistanceRequirement", (*decimal.Decimal)(nil)).
		Return(domain.DistanceCheck{Determined: false}).Once()
	suite.mockPolicySvc.On("ValidateDuplicateTravel", suite.ctx, "emp-1", dep, ret, "").
		Return(apperrors.NewTravelConflictError("app-9", "overlap")).Once()

	_, _, err := suite.service.CreateApplication(suite.ctx, req, "emp-1")

	suite.Require().Error(err)
	var conflict *apperrors.TravelConflictError
	suite.Require().ErrorAs(err, &conflict)
	suite.Equal("app-9", conflict.ApplicationID)
	suite.mockTravelRepo.AssertNotCalled(suite.T(), "SaveApplication")
}

func (suite *TravelServiceTestSuite) TestCreateApplication_MaxDurationExceeded() {
	dep := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	ret := dep.AddDate(0, 0, 120)
	req := suite.applicationRequest(dep, ret)

	suite.mockEmployeeSvc.On("GetEmployee", suite.ctx, "emp-1").Return(suite.employee, nil).Once()
	suite.mockPolicySvc.On("ValidateMaxTripDuration", dep, ret, services.DefaultMaxTripDays).
		Return(apperrors.NewValidationError("trip too long")).Once()

	_, _, err := suite.service.CreateApplication(suite.ctx, req, "emp-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTravelRepo.AssertNotCalled(suite.T(), "SaveApplication")
}

func (suite *TravelServiceTestSuite) TestCreateApplication_InvalidCityCategory() {
	dep := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	ret := dep.AddDate(0, 0, 3)
	req := suite.applicationRequest(dep, ret)
	req.Segments[0].FromCityCategory = "X"

	suite.mockEmployeeSvc.On("GetEmployee", suite.ctx, "emp-1").Return(suite.employee, nil).Once()
	suite.mockPolicySvc.On("ValidateMaxTripDuration", dep, ret, services.DefaultMaxTripDays).Return(nil).Once()

	_, _, err := suite.service.CreateApplication(suite.ctx, req, "emp-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockTravelRepo.AssertNotCalled(suite.T(), "SaveApplication")
}

func (suite *TravelServiceTestSuite) TestSubmitApplication_Success() {
	dep := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	suite.mockTravelRepo.On("FindApplicationByID", suite.ctx, "app-1").Return(suite.testApplication(dep), nil).Once()
	suite.mockTravelRepo.On("UpdateApplicationStatus", suite.ctx, "app-1", domain.StatusSubmitted, "emp-1", mock.AnythingOfType("time.Time")).
		Return(nil).Once()

	err := suite.service.SubmitApplication(suite.ctx, "app-1", "emp-1")

	suite.Require().NoError(err)
	suite.mockTravelRepo.AssertExpectations(suite.T())
}

func (suite *TravelServiceTestSuite) TestSubmitApplication_NotDraft() {
	dep := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	app := suite.testApplication(dep)
	app.Status = domain.StatusSubmitted
	suite.mockTravelRepo.On("FindApplicationByID", suite.ctx, "app-1").Return(app, nil).Once()

	err := suite.service.SubmitApplication(suite.ctx, "app-1", "emp-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrNotDraft)
	suite.mockTravelRepo.AssertNotCalled(suite.T(), "UpdateApplicationStatus")
}

func (suite *TravelServiceTestSuite) TestGetApplication() {
	dep := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	suite.mockTravelRepo.On("FindApplicationByID", suite.ctx, "app-1").Return(suite.testApplication(dep), nil).Once()

	app, err := suite.service.GetApplication(suite.ctx, "app-1")

	suite.Require().NoError(err)
	suite.Equal("app-1", app.ApplicationID)
	suite.mockTravelRepo.AssertExpectations(suite.T())
}

func (suite *TravelServiceTestSuite) TestListApplications_DefaultsLimit() {
	suite.mockTravelRepo.On("ListApplicationsByEmployee", suite.ctx, "emp-1", 20, "").
		Return([]domain.TravelApplication{}, "", nil).Once()

	_, next, err := suite.service.ListApplications(suite.ctx, "emp-1", 0, "")

	suite.Require().NoError(err)
	suite.Empty(next)
	suite.mockTravelRepo.AssertExpectations(suite.T())
}

func (suite *TravelServiceTestSuite) flightSubOption() *domain.TravelSubOption {
	return &domain.TravelSubOption{
		SubOptionID: "sub-1",
		ModeID:      "mode-1",
		ModeName:    domain.ModeFlight,
		Name:        "Economy Class",
		IsActive:    true,
	}
}

func (suite *TravelServiceTestSuite) TestAddBooking_Success() {
	dep := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	cost := decimal.NewFromInt(8000)
	req := dto.CreateBookingRequest{SegmentID: "seg-1", SubOptionID: "sub-1", EstimatedCost: cost}
	leadWarning := []domain.Issue{domain.Warning(domain.IssueAdvanceBooking, "short lead time")}

	suite.mockTravelRepo.On("FindApplicationByID", suite.ctx, "app-1").Return(suite.testApplication(dep), nil).Once()
	suite.mockEmployeeSvc.On("GetEmployee", suite.ctx, "emp-1").Return(suite.employee, nil).Once()
	suite.mockEntitlementRepo.On("FindSubOptionByID", suite.ctx, "sub-1").Return(suite.flightSubOption(), nil).Once()
	suite.mockEntitlementSvc.On("CheckEntitlementForAmount", suite.ctx, suite.employee, "sub-1", (*domain.CityCategory)(nil), cost).
		Return(nil).Once()
	suite.mockPolicySvc.On("ValidateAdvanceBooking", suite.ctx, dep, domain.ModeFlight, cost).
		Return(leadWarning, nil).Once()
	suite.mockTravelRepo.On("SaveBooking", suite.ctx, mock.MatchedBy(func(b domain.Booking) bool {
		return b.SegmentID == "seg-1" && b.ModeName == domain.ModeFlight &&
			b.SubOption == "Economy Class" && b.Status == domain.BookingPending
	})).Return(nil).Once()
	suite.mockTravelRepo.On("RefreshApplicationStatus", suite.ctx, "app-1", "emp-1", mock.AnythingOfType("time.Time"), mock.Anything).
		Return(nil).Once()

	booking, warnings, err := suite.service.AddBooking(suite.ctx, "app-1", req, "emp-1")

	suite.Require().NoError(err)
	suite.Equal(domain.BookingPending, booking.Status)
	suite.Equal(leadWarning, warnings)
	suite.mockTravelRepo.AssertExpectations(suite.T())
	suite.mockEntitlementSvc.AssertExpectations(suite.T())
}

func (suite *TravelServiceTestSuite) TestAddBooking_AccommodationUsesDestinationCategory() {
	dep := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	cost := decimal.NewFromInt(4000)
	req := dto.CreateBookingRequest{SegmentID: "seg-1", SubOptionID: "sub-2", EstimatedCost: cost}
	hotel := &domain.TravelSubOption{
		SubOptionID: "sub-2",
		ModeID:      "mode-4",
		ModeName:    domain.ModeAccommodation,
		Name:        "4 Star Hotel",
		IsActive:    true,
	}

	suite.mockTravelRepo.On("FindApplicationByID", suite.ctx, "app-1").Return(suite.testApplication(dep), nil).Once()
	suite.mockEmployeeSvc.On("GetEmployee", suite.ctx, "emp-1").Return(suite.employee, nil).Once()
	suite.mockEntitlementRepo.On("FindSubOptionByID", suite.ctx, "sub-2").Return(hotel, nil).Once()
	suite.mockEntitlementSvc.On("CheckEntitlementForAmount", suite.ctx, suite.employee, "sub-2",
		mock.MatchedBy(func(c *domain.CityCategory) bool { return c != nil && *c == domain.CategoryB }), cost).
		Return(nil).Once()
	suite.mockPolicySvc.On("ValidateAdvanceBooking", suite.ctx, dep, domain.ModeAccommodation, cost).
		Return(nil, nil).Once()
	suite.mockTravelRepo.On("SaveBooking", suite.ctx, mock.AnythingOfType("domain.Booking")).Return(nil).Once()
	suite.mockTravelRepo.On("RefreshApplicationStatus", suite.ctx, "app-1", "emp-1", mock.AnythingOfType("time.Time"), mock.Anything).
		Return(nil).Once()

	_, _, err := suite.service.AddBooking(suite.ctx, "app-1", req, "emp-1")

	suite.Require().NoError(err)
	suite.mockEntitlementSvc.AssertExpectations(suite.T())
}

func (suite *TravelServiceTestSuite) TestAddBooking_SegmentNotInApplication() {
	dep := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	req := dto.CreateBookingRequest{SegmentID: "seg-other", SubOptionID: "sub-1"}
	suite.mockTravelRepo.On("FindApplicationByID", suite.ctx, "app-1").Return(suite.testApplication(dep), nil).Once()

	_, _, err := suite.service.AddBooking(suite.ctx, "app-1", req, "emp-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, services.ErrSegmentNotInApplication)
	suite.mockTravelRepo.AssertNotCalled(suite.T(), "SaveBooking")
}

func (suite *TravelServiceTestSuite) TestAddBooking_EntitlementDenied() {
	dep := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	cost := decimal.NewFromInt(20000)
	req := dto.CreateBookingRequest{SegmentID: "seg-1", SubOptionID: "sub-1", EstimatedCost: cost}
	denied := apperrors.NewEntitlementDeniedError("B-3A", "Economy Class")

	suite.mockTravelRepo.On("FindApplicationByID", suite.ctx, "app-1").Return(suite.testApplication(dep), nil).Once()
	suite.mockEmployeeSvc.On("GetEmployee", suite.ctx, "emp-1").Return(suite.employee, nil).Once()
	suite.mockEntitlementRepo.On("FindSubOptionByID", suite.ctx, "sub-1").Return(suite.flightSubOption(), nil).Once()
	suite.mockEntitlementSvc.On("CheckEntitlementForAmount", suite.ctx, suite.employee, "sub-1", (*domain.CityCategory)(nil), cost).
		Return(denied).Once()

	_, _, err := suite.service.AddBooking(suite.ctx, "app-1", req, "emp-1")

	suite.Require().Error(err)
	var deniedErr *apperrors.EntitlementDeniedError
	suite.ErrorAs(err, &deniedErr)
	suite.mockTravelRepo.AssertNotCalled(suite.T(), "SaveBooking")
}

func (suite *TravelServiceTestSuite) TestAddBooking_OwnCarSafetyFailureBlocks() {
	dep := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	cost := decimal.NewFromInt(1500)
	details := map[string]any{"airbag_count": float64(2)}
	req := dto.CreateBookingRequest{SegmentID: "seg-1", SubOptionID: "sub-3", EstimatedCost: cost, Details: details}
	ownCar := &domain.TravelSubOption{
		SubOptionID: "sub-3",
		ModeID:      "mode-3",
		ModeName:    domain.ModeCar,
		Name:        "Own Car",
		IsActive:    true,
	}
	safetyIssues := []domain.Issue{domain.Error(domain.IssueAirbagsTooFew, "own car must have a minimum of 6 airbags")}

	suite.mockTravelRepo.On("FindApplicationByID", suite.ctx, "app-1").Return(suite.testApplication(dep), nil).Once()
	suite.mockEmployeeSvc.On("GetEmployee", suite.ctx, "emp-1").Return(suite.employee, nil).Once()
	suite.mockEntitlementRepo.On("FindSubOptionByID", suite.ctx, "sub-3").Return(ownCar, nil).Once()
	suite.mockEntitlementSvc.On("CheckEntitlementForAmount", suite.ctx, suite.employee, "sub-3", (*domain.CityCategory)(nil), cost).
		Return(nil).Once()
	suite.mockPolicySvc.On("ValidateAdvanceBooking", suite.ctx, dep, domain.ModeCar, cost).Return(nil, nil).Once()
	suite.mockPolicySvc.On("ValidateCarSafetyRequirements", suite.ctx, domain.BookingDetails(details), (*decimal.Decimal)(nil)).
		Return(safetyIssues, apperrors.NewValidationError("own car safety requirements not met")).Once()

	_, issues, err := suite.service.AddBooking(suite.ctx, "app-1", req, "emp-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Equal(safetyIssues, issues)
	suite.mockTravelRepo.AssertNotCalled(suite.T(), "SaveBooking")
}

func (suite *TravelServiceTestSuite) TestAddBooking_CarDisposalDurationWarns() {
	dep := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	cost := decimal.NewFromInt(3000)
	req := dto.CreateBookingRequest{SegmentID: "seg-1", SubOptionID: "sub-4", EstimatedCost: cost}
	disposal := &domain.TravelSubOption{
		SubOptionID: "sub-4",
		ModeID:      "mode-3",
		ModeName:    domain.ModeCar,
		Name:        "Car at Disposal",
		IsActive:    true,
	}
	app := suite.testApplication(dep)
	disposalWarning := []domain.Issue{domain.Warning(domain.IssueDisposalDuration, "car at disposal for 7 days exceeds 5 days; CHRO approval required")}

	suite.mockTravelRepo.On("FindApplicationByID", suite.ctx, "app-1").Return(app, nil).Once()
	suite.mockEmployeeSvc.On("GetEmployee", suite.ctx, "emp-1").Return(suite.employee, nil).Once()
	suite.mockEntitlementRepo.On("FindSubOptionByID", suite.ctx, "sub-4").Return(disposal, nil).Once()
	suite.mockEntitlementSvc.On("CheckEntitlementForAmount", suite.ctx, suite.employee, "sub-4", (*domain.CityCategory)(nil), cost).
		Return(nil).Once()
	suite.mockPolicySvc.On("ValidateAdvanceBooking", suite.ctx, dep, domain.ModeCar, cost).Return(nil, nil).Once()
	suite.mockPolicySvc.On("ValidateCarDisposalDuration", dep, app.Segments[0].ReturnDate).Return(disposalWarning).Once()
	suite.mockTravelRepo.On("SaveBooking", suite.ctx, mock.AnythingOfType("domain.Booking")).Return(nil).Once()
	suite.mockTravelRepo.On("RefreshApplicationStatus", suite.ctx, "app-1", "emp-1", mock.AnythingOfType("time.Time"), mock.Anything).
		Return(nil).Once()

	_, warnings, err := suite.service.AddBooking(suite.ctx, "app-1", req, "emp-1")

	suite.Require().NoError(err)
	suite.Equal(disposalWarning, warnings)
	suite.mockPolicySvc.AssertExpectations(suite.T())
}

func (suite *TravelServiceTestSuite) TestAddBooking_RefreshFailureDoesNotFailCreate() {
	dep := time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC)
	cost := decimal.NewFromInt(8000)
	req := dto.CreateBookingRequest{SegmentID: "seg-1", SubOptionID: "sub-1", EstimatedCost: cost}

	suite.mockTravelRepo.On("FindApplicationByID", suite.ctx, "app-1").Return(suite.testApplication(dep), nil).Once()
	suite.mockEmployeeSvc.On("GetEmployee", suite.ctx, "emp-1").Return(suite.employee, nil).Once()
	suite.mockEntitlementRepo.On("FindSubOptionByID", suite.ctx, "sub-1").Return(suite.flightSubOption(), nil).Once()
	suite.mockEntitlementSvc.On("CheckEntitlementForAmount", suite.ctx, suite.employee, "sub-1", (*domain.CityCategory)(nil), cost).
		Return(nil).Once()
	suite.mockPolicySvc.On("ValidateAdvanceBooking", suite.ctx, dep, domain.ModeFlight, cost).Return(nil, nil).Once()
	suite.mockTravelRepo.On("SaveBooking", suite.ctx, mock.AnythingOfType("domain.Booking")).Return(nil).Once()
	suite.mockTravelRepo.On("RefreshApplicationStatus", suite.ctx, "app-1", "emp-1", mock.AnythingOfType("time.Time"), mock.Anything).
		Return(assert.AnError).Once()

	booking, _, err := suite.service.AddBooking(suite.ctx, "app-1", req, "emp-1")

	suite.Require().NoError(err, "the rollup is retried on the next status change")
	suite.NotNil(booking)
	suite.mockTravelRepo.AssertExpectations(suite.T())
}

func (suite *TravelServiceTestSuite) TestUpdateBookingStatus_Success() {
	suite.mockTravelRepo.On("FindApplicationIDForBooking", suite.ctx, "bk-1").Return("app-1", nil).Once()
	suite.mockTravelRepo.On("UpdateBookingStatus", suite.ctx, "bk-1", domain.BookingConfirmed, "desk-1", mock.AnythingOfType("time.Time")).
		Return(nil).Once()
	suite.mockTravelRepo.On("RefreshApplicationStatus", suite.ctx, "app-1", "desk-1", mock.AnythingOfType("time.Time"), mock.Anything).
		Return(nil).Once()

	err := suite.service.UpdateBookingStatus(suite.ctx, "bk-1", domain.BookingConfirmed, "desk-1")

	suite.Require().NoError(err)
	suite.mockTravelRepo.AssertExpectations(suite.T())
}

func (suite *TravelServiceTestSuite) TestUpdateBookingStatus_BookingNotFound() {
	suite.mockTravelRepo.On("FindApplicationIDForBooking", suite.ctx, "bk-x").Return("", apperrors.ErrNotFound).Once()

	err := suite.service.UpdateBookingStatus(suite.ctx, "bk-x", domain.BookingConfirmed, "desk-1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockTravelRepo.AssertNotCalled(suite.T(), "UpdateBookingStatus")
}

func (suite *TravelServiceTestSuite) TestRefreshApplicationStatus_UsesRollupDecision() {
	suite.mockTravelRepo.On("RefreshApplicationStatus", suite.ctx, "app-1", "desk-1", mock.AnythingOfType("time.Time"), mock.Anything).
		Run(func(args mock.Arguments) {
			decide := args.Get(4).(func(domain.ApplicationStatus, []domain.BookingStatus) (domain.ApplicationStatus, bool))

			next, ok := decide(domain.StatusPendingTravelDesk, []domain.BookingStatus{domain.BookingConfirmed})
			suite.True(ok)
			suite.Equal(domain.StatusBooked, next)

			_, ok = decide(domain.StatusBooked, []domain.BookingStatus{domain.BookingConfirmed})
			suite.False(ok, "an already booked application stays put")
		}).Return(nil).Once()

	err := suite.service.RefreshApplicationStatus(suite.ctx, "app-1", "desk-1")

	suite.Require().NoError(err)
	suite.mockTravelRepo.AssertExpectations(suite.T())
}

func TestTravelServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TravelServiceTestSuite))
}
