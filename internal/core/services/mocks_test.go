package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/voyadesk/travel_desk_app/internal/core/domain"
)

// MockRateRepository is a mock for portsrepo.RateRepositoryFacade.
type MockRateRepository struct {
	mock.Mock
}

func (m *MockRateRepository) FindEffectiveDARate(ctx context.Context, gradeID string, category domain.CityCategory, asOf time.Time) (*domain.DAIncidentalRate, error) {
	args := m.Called(ctx, gradeID, category, asOf)
	if rate, ok := args.Get(0).(*domain.DAIncidentalRate); ok {
		return rate, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRateRepository) FindEffectiveConveyanceRate(ctx context.Context, conveyanceType string, asOf time.Time) (*domain.ConveyanceRate, error) {
	args := m.Called(ctx, conveyanceType, asOf)
	if rate, ok := args.Get(0).(*domain.ConveyanceRate); ok {
		return rate, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRateRepository) ListDARates(ctx context.Context, gradeID string) ([]domain.DAIncidentalRate, error) {
	args := m.Called(ctx, gradeID)
	if rates, ok := args.Get(0).([]domain.DAIncidentalRate); ok {
		return rates, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRateRepository) ListConveyanceRates(ctx context.Context) ([]domain.ConveyanceRate, error) {
	args := m.Called(ctx)
	if rates, ok := args.Get(0).([]domain.ConveyanceRate); ok {
		return rates, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRateRepository) SaveDARate(ctx context.Context, rate domain.DAIncidentalRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockRateRepository) SaveConveyanceRate(ctx context.Context, rate domain.ConveyanceRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

// MockEntitlementRepository is a mock for portsrepo.EntitlementRepositoryFacade.
type MockEntitlementRepository struct {
	mock.Mock
}

func (m *MockEntitlementRepository) FindEntitlement(ctx context.Context, gradeID, subOptionID string, category *domain.CityCategory) (*domain.GradeEntitlement, error) {
	args := m.Called(ctx, gradeID, subOptionID, category)
	if row, ok := args.Get(0).(*domain.GradeEntitlement); ok {
		return row, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEntitlementRepository) FindSubOptionByID(ctx context.Context, subOptionID string) (*domain.TravelSubOption, error) {
	args := m.Called(ctx, subOptionID)
	if subOption, ok := args.Get(0).(*domain.TravelSubOption); ok {
		return subOption, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEntitlementRepository) ListEntitlementsForGrade(ctx context.Context, gradeID string) ([]domain.GradeEntitlement, error) {
	args := m.Called(ctx, gradeID)
	if rows, ok := args.Get(0).([]domain.GradeEntitlement); ok {
		return rows, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEntitlementRepository) SaveEntitlement(ctx context.Context, entitlement domain.GradeEntitlement) error {
	args := m.Called(ctx, entitlement)
	return args.Error(0)
}

// MockPolicyRepository is a mock for portsrepo.PolicyRepositoryFacade.
type MockPolicyRepository struct {
	mock.Mock
}

func (m *MockPolicyRepository) FindEffectivePolicy(ctx context.Context, policyType domain.PolicyType, travelMode *string, asOf time.Time) (*domain.TravelPolicy, error) {
	args := m.Called(ctx, policyType, travelMode, asOf)
	if policy, ok := args.Get(0).(*domain.TravelPolicy); ok {
		return policy, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPolicyRepository) ListPolicies(ctx context.Context) ([]domain.TravelPolicy, error) {
	args := m.Called(ctx)
	if policies, ok := args.Get(0).([]domain.TravelPolicy); ok {
		return policies, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPolicyRepository) SavePolicy(ctx context.Context, policy domain.TravelPolicy) error {
	args := m.Called(ctx, policy)
	return args.Error(0)
}

// MockEmployeeRepository is a mock for portsrepo.EmployeeRepositoryFacade.
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	if employee, ok := args.Get(0).(*domain.Employee); ok {
		return employee, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEmployeeRepository) FindGradeByID(ctx context.Context, gradeID string) (*domain.Grade, error) {
	args := m.Called(ctx, gradeID)
	if grade, ok := args.Get(0).(*domain.Grade); ok {
		return grade, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEmployeeRepository) ListGrades(ctx context.Context) ([]domain.Grade, error) {
	args := m.Called(ctx)
	if grades, ok := args.Get(0).([]domain.Grade); ok {
		return grades, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockEmployeeRepository) SaveGrade(ctx context.Context, grade domain.Grade) error {
	args := m.Called(ctx, grade)
	return args.Error(0)
}

// MockTravelRepository is a mock for portsrepo.TravelRepositoryWithTx.
type MockTravelRepository struct {
	mock.Mock
}

func (m *MockTravelRepository) FindApplicationByID(ctx context.Context, applicationID string) (*domain.TravelApplication, error) {
	args := m.Called(ctx, applicationID)
	if app, ok := args.Get(0).(*domain.TravelApplication); ok {
		return app, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTravelRepository) ListApplicationsByEmployee(ctx context.Context, employeeID string, limit int, pageToken string) ([]domain.TravelApplication, string, error) {
	args := m.Called(ctx, employeeID, limit, pageToken)
	if apps, ok := args.Get(0).([]domain.TravelApplication); ok {
		return apps, args.String(1), args.Error(2)
	}
	return nil, args.String(1), args.Error(2)
}

func (m *MockTravelRepository) FindOverlappingApplication(ctx context.Context, employeeID string, start, end time.Time, excludeApplicationID string) (string, error) {
	args := m.Called(ctx, employeeID, start, end, excludeApplicationID)
	return args.String(0), args.Error(1)
}

func (m *MockTravelRepository) FindBookingByID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID)
	if booking, ok := args.Get(0).(*domain.Booking); ok {
		return booking, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTravelRepository) FindApplicationIDForBooking(ctx context.Context, bookingID string) (string, error) {
	args := m.Called(ctx, bookingID)
	return args.String(0), args.Error(1)
}

func (m *MockTravelRepository) SaveApplication(ctx context.Context, app domain.TravelApplication) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *MockTravelRepository) UpdateApplicationStatus(ctx context.Context, applicationID string, status domain.ApplicationStatus, updatedBy string, now time.Time) error {
	args := m.Called(ctx, applicationID, status, updatedBy, now)
	return args.Error(0)
}

func (m *MockTravelRepository) SaveBooking(ctx context.Context, booking domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockTravelRepository) UpdateBookingStatus(ctx context.Context, bookingID string, status domain.BookingStatus, updatedBy string, now time.Time) error {
	args := m.Called(ctx, bookingID, status, updatedBy, now)
	return args.Error(0)
}

func (m *MockTravelRepository) RefreshApplicationStatus(ctx context.Context, applicationID string, updatedBy string, now time.Time,
	decide func(current domain.ApplicationStatus, bookings []domain.BookingStatus) (domain.ApplicationStatus, bool)) error {
	args := m.Called(ctx, applicationID, updatedBy, now, decide)
	return args.Error(0)
}

func (m *MockTravelRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if tx, ok := args.Get(0).(pgx.Tx); ok {
		return tx, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTravelRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockTravelRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// MockEmployeeReaderSvc is a mock for portssvc.EmployeeReaderSvc.
type MockEmployeeReaderSvc struct {
	mock.Mock
}

func (m *MockEmployeeReaderSvc) GetEmployee(ctx context.Context, employeeID string) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	if employee, ok := args.Get(0).(*domain.Employee); ok {
		return employee, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEmployeeReaderSvc) ListGrades(ctx context.Context) ([]domain.Grade, error) {
	args := m.Called(ctx)
	if grades, ok := args.Get(0).([]domain.Grade); ok {
		return grades, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockPolicyValidatorSvc is a mock for portssvc.BookingPolicyValidatorSvc.
type MockPolicyValidatorSvc struct {
	mock.Mock
}

func (m *MockPolicyValidatorSvc) ValidateAdvanceBooking(ctx context.Context, departureDate time.Time, modeName string, estimatedCost decimal.Decimal) ([]domain.Issue, error) {
	args := m.Called(ctx, departureDate, modeName, estimatedCost)
	if issues, ok := args.Get(0).([]domain.Issue); ok {
		return issues, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPolicyValidatorSvc) ValidateOwnCar(ctx context.Context, details domain.BookingDetails, distanceKM *decimal.Decimal) ([]domain.Issue, error) {
	args := m.Called(ctx, details, distanceKM)
	if issues, ok := args.Get(0).([]domain.Issue); ok {
		return issues, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPolicyValidatorSvc) ValidateCarSafetyRequirements(ctx context.Context, details domain.BookingDetails, distanceKM *decimal.Decimal) ([]domain.Issue, error) {
	args := m.Called(ctx, details, distanceKM)
	if issues, ok := args.Get(0).([]domain.Issue); ok {
		return issues, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPolicyValidatorSvc) ValidateDuplicateTravel(ctx context.Context, employeeID string, start, end time.Time, excludeApplicationID string) error {
	args := m.Called(ctx, employeeID, start, end, excludeApplicationID)
	return args.Error(0)
}

func (m *MockPolicyValidatorSvc) ValidateMaxTripDuration(departureDate, returnDate time.Time, maxDays int) error {
	args := m.Called(departureDate, returnDate, maxDays)
	return args.Error(0)
}

func (m *MockPolicyValidatorSvc) ValidateCarDisposalDuration(departureDate, returnDate time.Time) []domain.Issue {
	args := m.Called(departureDate, returnDate)
	if issues, ok := args.Get(0).([]domain.Issue); ok {
		return issues
	}
	return nil
}

func (m *MockPolicyValidatorSvc) ValidateDADistanceRequirement(distanceKM *decimal.Decimal) domain.DistanceCheck {
	args := m.Called(distanceKM)
	return args.Get(0).(domain.DistanceCheck)
}

// MockEntitlementCheckerSvc is a mock for portssvc.EntitlementCheckerSvc.
type MockEntitlementCheckerSvc struct {
	mock.Mock
}

func (m *MockEntitlementCheckerSvc) CheckEntitlement(ctx context.Context, employee *domain.Employee, subOptionID string, category *domain.CityCategory) error {
	args := m.Called(ctx, employee, subOptionID, category)
	return args.Error(0)
}

func (m *MockEntitlementCheckerSvc) CheckEntitlementForAmount(ctx context.Context, employee *domain.Employee, subOptionID string, category *domain.CityCategory, amount decimal.Decimal) error {
	args := m.Called(ctx, employee, subOptionID, category, amount)
	return args.Error(0)
}

// testEmployee builds an employee with an attached grade, the shape most
// service calls expect.
func testEmployee(employeeID, gradeID, gradeName string) *domain.Employee {
	return &domain.Employee{
		EmployeeID: employeeID,
		Name:       "Asha Verma",
		Email:      "asha.verma@example.com",
		GradeID:    gradeID,
		Grade: &domain.Grade{
			GradeID:  gradeID,
			Name:     gradeName,
			IsActive: true,
		},
		IsActive: true,
	}
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func categoryPtr(c domain.CityCategory) *domain.CityCategory {
	return &c
}
